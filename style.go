package phonefield

import "github.com/charmbracelet/lipgloss"

// Styles provides a set of lipgloss styles for consistent widget
// appearance. Replace individual entries to theme the widget.
type Styles struct {
	Prefix      lipgloss.Style // the protected "+<dial>" run
	Digits      lipgloss.Style // national digits
	Placeholder lipgloss.Style // placeholder text
	Selection   lipgloss.Style // selected text inside the field
	Cursor      lipgloss.Style // caret cell
	Selector    lipgloss.Style // collapsed country selector (flag + code)
	Dropdown    lipgloss.Style // dropdown frame
	Option      lipgloss.Style // dropdown rows
	OptionCur   lipgloss.Style // highlighted dropdown row
	Search      lipgloss.Style // dropdown search input
	Empty       lipgloss.Style // "no results" text
	Invalid     lipgloss.Style // applied to digits when the value fails the length check
}

// DefaultStyles returns a dark-terminal friendly style set.
func DefaultStyles() Styles {
	return Styles{
		Prefix:      lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Digits:      lipgloss.NewStyle(),
		Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Selection:   lipgloss.NewStyle().Reverse(true),
		Cursor:      lipgloss.NewStyle().Reverse(true),
		Selector:    lipgloss.NewStyle().Bold(true),
		Dropdown:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
		Option:      lipgloss.NewStyle(),
		OptionCur:   lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
		Search:      lipgloss.NewStyle(),
		Empty:       lipgloss.NewStyle().Faint(true),
		Invalid:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

// MonochromeStyles returns a style set using only text attributes, for
// terminals without color support.
func MonochromeStyles() Styles {
	s := DefaultStyles()
	s.Prefix = lipgloss.NewStyle().Faint(true)
	s.Placeholder = lipgloss.NewStyle().Faint(true)
	s.Selector = lipgloss.NewStyle().Bold(true)
	s.OptionCur = lipgloss.NewStyle().Bold(true)
	s.Invalid = lipgloss.NewStyle().Bold(true).Underline(true)
	return s
}
