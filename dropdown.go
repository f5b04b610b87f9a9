package phonefield

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Option is a concrete dropdown row: what the selector displays and
// what the search matches against. Filtering is a total function over
// this type — no duck-typed lookups.
type Option struct {
	Iso2      string  // selection key
	Label     string  // display text, e.g. "🇫🇷 France +33"
	SearchKey string  // text the filter scores, e.g. "France FR +33"
	Country   Country // backing catalog record
}

// optionOf builds the dropdown row for a country.
func optionOf(c Country, emojiFlags bool) Option {
	var b strings.Builder
	if emojiFlags {
		b.WriteString(c.Flag())
		b.WriteString(" ")
	}
	b.WriteString(c.Name)
	b.WriteString(" +")
	b.WriteString(c.DialCode)
	return Option{
		Iso2:      c.Iso2,
		Label:     b.String(),
		SearchKey: c.Name + " " + c.Iso2 + " +" + c.DialCode,
		Country:   c,
	}
}

// optionsOf builds the dropdown rows: preferred countries pinned first,
// then the rest of the working list in order. A country appearing in
// both lists shows only in the pinned section.
func optionsOf(working, preferred []Country, emojiFlags bool) []Option {
	pinned := make(map[string]bool, len(preferred))
	out := make([]Option, 0, len(working)+len(preferred))
	for _, c := range preferred {
		pinned[c.Iso2] = true
		out = append(out, optionOf(c, emojiFlags))
	}
	for _, c := range working {
		if pinned[c.Iso2] {
			continue
		}
		out = append(out, optionOf(c, emojiFlags))
	}
	return out
}

// Dropdown is the searchable country selector. it composes a search
// input, an OptionFilter and a windowed selection list — the caller
// routes keys and asks for the rendered view.
type Dropdown struct {
	options []Option
	filter  *OptionFilter

	open       bool
	selected   int // index into filter.Items
	offset     int // scroll offset for windowing
	maxVisible int

	search       string
	searchactive bool
	placeholder  string
	emptyText    string
}

// NewDropdown creates a dropdown over the given option rows.
func NewDropdown(options []Option) *Dropdown {
	d := &Dropdown{
		options:     options,
		maxVisible:  8,
		placeholder: "search",
		emptyText:   "no matches",
	}
	d.filter = NewOptionFilter(&d.options)
	d.searchactive = true
	return d
}

// SetOptions replaces the option rows, keeping the current query.
func (d *Dropdown) SetOptions(options []Option) {
	d.options = options
	d.filter.Refresh()
	d.clampSelection()
}

// Open expands the dropdown with a cleared search.
func (d *Dropdown) Open() {
	d.open = true
	d.search = ""
	d.filter.Update("")
	d.selected = 0
	d.offset = 0
}

// Close collapses the dropdown.
func (d *Dropdown) Close() {
	d.open = false
}

// IsOpen reports whether the dropdown is expanded.
func (d *Dropdown) IsOpen() bool {
	return d.open
}

// EnableSearch toggles the search input row.
func (d *Dropdown) EnableSearch(on bool) {
	d.searchactive = on
}

// Placeholder sets the search input placeholder.
func (d *Dropdown) Placeholder(p string) {
	d.placeholder = p
}

// EmptyText sets the text shown when no option matches.
func (d *Dropdown) EmptyText(t string) {
	d.emptyText = t
}

// MaxVisible sets the window height in rows.
func (d *Dropdown) MaxVisible(n int) {
	if n > 0 {
		d.maxVisible = n
	}
}

// Selected returns the highlighted option, or nil when the filtered
// list is empty.
func (d *Dropdown) Selected() *Option {
	if d.selected < 0 || d.selected >= len(d.filter.Items) {
		return nil
	}
	return &d.filter.Items[d.selected]
}

// MoveUp moves the highlight up one row.
func (d *Dropdown) MoveUp() {
	if d.selected > 0 {
		d.selected--
	}
	d.ensureVisible()
}

// MoveDown moves the highlight down one row.
func (d *Dropdown) MoveDown() {
	if d.selected < len(d.filter.Items)-1 {
		d.selected++
	}
	d.ensureVisible()
}

// Highlight moves the highlight to the option with the given ISO2
// code, if it is currently visible.
func (d *Dropdown) Highlight(iso2 string) {
	iso2 = strings.ToUpper(iso2)
	for i := range d.filter.Items {
		if d.filter.Items[i].Iso2 == iso2 {
			d.selected = i
			d.ensureVisible()
			return
		}
	}
}

// TypeRune appends a printable character to the search query.
func (d *Dropdown) TypeRune(r rune) {
	if !d.searchactive {
		return
	}
	d.search += string(r)
	d.sync()
}

// EraseRune removes the last character of the search query.
func (d *Dropdown) EraseRune() {
	if d.search == "" {
		return
	}
	d.search = d.search[:len(d.search)-1]
	d.sync()
}

// Query returns the current search text.
func (d *Dropdown) Query() string {
	return d.search
}

func (d *Dropdown) sync() {
	d.filter.Update(d.search)
	d.clampSelection()
}

func (d *Dropdown) clampSelection() {
	n := len(d.filter.Items)
	if n == 0 {
		d.selected = 0
		d.offset = 0
		return
	}
	if d.selected >= n {
		d.selected = n - 1
	}
	if d.selected < 0 {
		d.selected = 0
	}
	d.ensureVisible()
}

// ensureVisible adjusts the scroll offset so the highlight stays in
// the window.
func (d *Dropdown) ensureVisible() {
	if d.selected < d.offset {
		d.offset = d.selected
	}
	if d.selected >= d.offset+d.maxVisible {
		d.offset = d.selected - d.maxVisible + 1
	}
	if d.offset < 0 {
		d.offset = 0
	}
}

// View renders the expanded dropdown.
func (d *Dropdown) View(st Styles) string {
	if !d.open {
		return ""
	}

	var rows []string
	if d.searchactive {
		q := d.search
		if q == "" {
			rows = append(rows, st.Search.Render("/ ")+st.Placeholder.Render(d.placeholder))
		} else {
			rows = append(rows, st.Search.Render("/ "+q))
		}
	}

	items := d.filter.Items
	if len(items) == 0 {
		rows = append(rows, st.Empty.Render(d.emptyText))
		return st.Dropdown.Render(strings.Join(rows, "\n"))
	}

	end := d.offset + d.maxVisible
	if end > len(items) {
		end = len(items)
	}
	width := 0
	for i := d.offset; i < end; i++ {
		if w := runewidth.StringWidth(items[i].Label); w > width {
			width = w
		}
	}
	for i := d.offset; i < end; i++ {
		label := runewidth.FillRight(items[i].Label, width)
		if i == d.selected {
			rows = append(rows, st.OptionCur.Render("> "+label))
		} else {
			rows = append(rows, st.Option.Render("  "+label))
		}
	}
	return st.Dropdown.Render(strings.Join(rows, "\n"))
}
