package main

import (
	"fmt"
	"log"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"phonefield"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	faintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	resultStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

type state struct {
	phone  *phonefield.PhoneInput
	status string
}

type model struct {
	*state
}

func newModel() model {
	s := &state{status: "type digits | ctrl+o: country | ctrl+x/ctrl+v: cut/paste | esc: quit"}
	s.phone = phonefield.New().
		Country("US").
		Preferred("US", "GB", "DE", "FR").
		Placeholder("phone number").
		OnCountryChange(func(c phonefield.Country) {
			s.status = "switched to " + c.Name
		})
	return model{state: s}
}

func (m model) Init() tea.Cmd {
	return m.phone.Focus()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		quit := key.NewBinding(key.WithKeys("ctrl+c"))
		if key.Matches(k, quit) {
			return m, tea.Quit
		}
		esc := key.NewBinding(key.WithKeys("esc"))
		if key.Matches(k, esc) && !m.phone.DropdownOpen() {
			return m, tea.Quit
		}
	}
	return m, m.phone.Update(msg)
}

func (m model) View() string {
	v := m.phone.Value()
	verdict := "incomplete"
	if v.IsValid {
		verdict = "valid"
	}
	return titleStyle.Render("phone entry") + "\n\n" +
		"  " + m.phone.View() + "\n\n" +
		resultStyle.Render(fmt.Sprintf("  value: %s  national: %s  country: %s  (%s)",
			v.Number, v.NationalNumber, v.Iso2, verdict)) + "\n\n" +
		faintStyle.Render("  "+m.status) + "\n"
}

func main() {
	if _, err := tea.NewProgram(newModel()).Run(); err != nil {
		log.Fatal(err)
	}
}
