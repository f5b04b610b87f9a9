package phonefield

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyPaste(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s), Paste: true}
}

func keyType(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

// focusAndSettle focuses the field and runs the deferred correction
// that would normally arrive through the program loop.
func focusAndSettle(p *PhoneInput) {
	cmd := p.Focus()
	p.Update(cmd())
}

func TestPhoneInputTyping(t *testing.T) {
	p := New().Country("US")
	focusAndSettle(p)

	for _, r := range "2025551234" {
		p.Update(keyRunes(string(r)))
	}

	t.Run("value reflects typed digits", func(t *testing.T) {
		v := p.Value()
		if v.Number != "+12025551234" {
			t.Fatalf("number %q", v.Number)
		}
		if v.NationalNumber != "2025551234" || !v.IsValid {
			t.Errorf("national %q valid %v", v.NationalNumber, v.IsValid)
		}
	})

	t.Run("limit rejects the eleventh digit", func(t *testing.T) {
		p.Update(keyRunes("9"))
		if p.Raw() != "+12025551234" {
			t.Fatalf("raw %q", p.Raw())
		}
	})

	t.Run("backspace to the prefix and not past it", func(t *testing.T) {
		for i := 0; i < 20; i++ {
			p.Update(keyType(tea.KeyBackspace))
		}
		if p.Raw() != "+1" {
			t.Fatalf("raw %q", p.Raw())
		}
	})

	t.Run("letters are ignored", func(t *testing.T) {
		p.Update(keyRunes("x"))
		if p.Raw() != "+1" {
			t.Fatalf("raw %q", p.Raw())
		}
	})
}

func TestPhoneInputCountrySwitch(t *testing.T) {
	var switched []string
	p := New().
		Country("US").
		OnCountryChange(func(c Country) { switched = append(switched, c.Iso2) })
	focusAndSettle(p)
	for _, r := range "2025551234" {
		p.Update(keyRunes(string(r)))
	}

	t.Run("digits survive the switch", func(t *testing.T) {
		p.SetCountry("GB")
		if p.Raw() != "+442025551234" {
			t.Fatalf("raw %q", p.Raw())
		}
		if len(switched) != 1 || switched[0] != "GB" {
			t.Errorf("callbacks %v", switched)
		}
	})

	t.Run("overflow digits trim from the end", func(t *testing.T) {
		p.SetCountry("FR") // nine-digit template
		if p.Raw() != "+33202555123" {
			t.Fatalf("raw %q", p.Raw())
		}
	})

	t.Run("unknown country ignored", func(t *testing.T) {
		before := p.Raw()
		p.SetCountry("ZZ")
		if p.Raw() != before || p.CurrentCountry().Iso2 != "FR" {
			t.Fatalf("raw %q country %s", p.Raw(), p.CurrentCountry().Iso2)
		}
	})

	t.Run("country outside the working list ignored", func(t *testing.T) {
		q := New().Only("US", "GB").Country("US")
		q.SetCountry("DE")
		if q.CurrentCountry().Iso2 != "US" {
			t.Fatalf("country %s", q.CurrentCountry().Iso2)
		}
	})
}

func TestPhoneInputSetValue(t *testing.T) {
	t.Run("dial code re-resolves the country", func(t *testing.T) {
		p := New().Country("US")
		p.SetValue("+447911123456")
		if p.CurrentCountry().Iso2 != "GB" {
			t.Fatalf("country %s", p.CurrentCountry().Iso2)
		}
		if p.Raw() != "+447911123456" {
			t.Errorf("raw %q", p.Raw())
		}
	})

	t.Run("guess outside the working list keeps the selection", func(t *testing.T) {
		p := New().Only("US", "FR").Country("US")
		p.SetValue("+447911123456")
		if p.CurrentCountry().Iso2 != "US" {
			t.Fatalf("country %s", p.CurrentCountry().Iso2)
		}
	})

	t.Run("messy input normalizes", func(t *testing.T) {
		p := New().Country("US")
		p.SetValue("(202) 555-1234")
		if p.Raw() != "+12025551234" {
			t.Fatalf("raw %q", p.Raw())
		}
	})

	t.Run("longest dial code wins", func(t *testing.T) {
		p := New()
		p.SetValue("+18095551234")
		if p.CurrentCountry().Iso2 != "DO" {
			t.Fatalf("country %s", p.CurrentCountry().Iso2)
		}
	})
}

func TestPhoneInputClipboard(t *testing.T) {
	p := New().Country("US")
	focusAndSettle(p)
	for _, r := range "2025551234" {
		p.Update(keyRunes(string(r)))
	}

	t.Run("bracketed paste sanitizes and clamps", func(t *testing.T) {
		p.Clear()
		p.Update(keyPaste("(202) 555-1234 ext 99"))
		if p.Raw() != "+12025551234" {
			t.Fatalf("raw %q", p.Raw())
		}
	})

	t.Run("cut keeps the prefix and fills the register", func(t *testing.T) {
		p.Drag(0, 6) // spans the protected "+1"
		p.Update(keyType(tea.KeyCtrlX))
		if p.Raw() != "+1551234" {
			t.Fatalf("raw %q", p.Raw())
		}
		if p.register != "2025" {
			t.Errorf("register %q", p.register)
		}
	})

	t.Run("register pastes back", func(t *testing.T) {
		p.Update(keyType(tea.KeyCtrlV))
		if p.Raw() != "+12025551234" {
			t.Fatalf("raw %q", p.Raw())
		}
	})
}

func TestPhoneInputDropdown(t *testing.T) {
	p := New().Country("US")
	focusAndSettle(p)
	for _, r := range "202555" {
		p.Update(keyRunes(string(r)))
	}

	t.Run("opens on binding", func(t *testing.T) {
		p.Update(keyType(tea.KeyCtrlO))
		if !p.DropdownOpen() {
			t.Fatal("dropdown should be open")
		}
	})

	t.Run("typeahead plus accept switches country", func(t *testing.T) {
		for _, r := range "germany" {
			p.Update(keyRunes(string(r)))
		}
		p.Update(keyType(tea.KeyEnter))
		if p.DropdownOpen() {
			t.Fatal("dropdown should close on accept")
		}
		if p.CurrentCountry().Iso2 != "DE" {
			t.Fatalf("country %s", p.CurrentCountry().Iso2)
		}
		if p.Raw() != "+49202555" {
			t.Errorf("raw %q", p.Raw())
		}
	})

	t.Run("escape closes without switching", func(t *testing.T) {
		p.Update(keyType(tea.KeyCtrlO))
		p.Update(keyType(tea.KeyDown))
		p.Update(keyType(tea.KeyEscape))
		if p.DropdownOpen() || p.CurrentCountry().Iso2 != "DE" {
			t.Fatalf("open=%v country %s", p.DropdownOpen(), p.CurrentCountry().Iso2)
		}
	})

	t.Run("digits route to the dropdown while open", func(t *testing.T) {
		before := p.Raw()
		p.Update(keyType(tea.KeyCtrlO))
		p.Update(keyRunes("4"))
		if p.Raw() != before {
			t.Fatalf("field text changed to %q while dropdown open", p.Raw())
		}
		p.Update(keyType(tea.KeyEscape))
	})
}

func TestPhoneInputModes(t *testing.T) {
	t.Run("disabled ignores everything", func(t *testing.T) {
		p := New().Country("US").Disabled(true)
		focusAndSettle(p)
		p.Update(keyRunes("5"))
		if p.Raw() != "+1" {
			t.Fatalf("raw %q", p.Raw())
		}
	})

	t.Run("read only allows navigation but not edits", func(t *testing.T) {
		p := New().Country("US")
		focusAndSettle(p)
		for _, r := range "2025551234" {
			p.Update(keyRunes(string(r)))
		}
		p.ReadOnly(true)
		p.Update(keyType(tea.KeyBackspace))
		p.Update(keyRunes("9"))
		if p.Raw() != "+12025551234" {
			t.Fatalf("raw %q", p.Raw())
		}
		p.Update(keyType(tea.KeyHome))
		if p.edit.Caret() != 2 {
			t.Errorf("caret %d", p.edit.Caret())
		}
	})

	t.Run("blurred field ignores keys", func(t *testing.T) {
		p := New().Country("US")
		p.Update(keyRunes("5"))
		if p.Raw() != "+1" {
			t.Fatalf("raw %q", p.Raw())
		}
	})

	t.Run("focus correction snaps the caret", func(t *testing.T) {
		p := New().Country("US")
		focusAndSettle(p)
		for _, r := range "202" {
			p.Update(keyRunes(string(r)))
		}
		p.edit.SelStart, p.edit.SelEnd = 0, 0 // simulate stray placement
		cmd := p.Focus()
		p.Update(cmd())
		if p.edit.Caret() != 2 {
			t.Fatalf("caret %d", p.edit.Caret())
		}
	})
}

func TestPhoneInputCallbacksAndClear(t *testing.T) {
	var values []Value
	p := New().Country("US").OnChange(func(v Value) { values = append(values, v) })
	focusAndSettle(p)

	p.Update(keyRunes("2"))
	p.Update(keyRunes("0"))
	p.Update(keyRunes("x")) // rejected, no callback

	t.Run("change fires per accepted edit", func(t *testing.T) {
		if len(values) != 2 {
			t.Fatalf("got %d callbacks", len(values))
		}
		if values[1].NationalNumber != "20" {
			t.Errorf("last national %q", values[1].NationalNumber)
		}
	})

	t.Run("clear resets to the bare prefix", func(t *testing.T) {
		p.Clear()
		if p.Raw() != "+1" {
			t.Fatalf("raw %q", p.Raw())
		}
		if n := len(values); n == 0 || values[n-1].NationalNumber != "" {
			t.Errorf("clear should emit an empty value")
		}
	})
}

func TestPhoneInputView(t *testing.T) {
	p := New().Country("US").EmojiFlags(false).Styles(Styles{})
	focusAndSettle(p)
	for _, r := range "2025551234" {
		p.Update(keyRunes(string(r)))
	}

	t.Run("renders the formatted number", func(t *testing.T) {
		view := p.View()
		if !strings.Contains(view, "(202) 555-1234") {
			t.Fatalf("view %q", view)
		}
		if !strings.Contains(view, "[+1 ▾]") {
			t.Errorf("selector missing: %q", view)
		}
	})

	t.Run("placeholder shows while empty and blurred", func(t *testing.T) {
		q := New().Country("US").EmojiFlags(false).Styles(Styles{}).Placeholder("phone")
		if view := q.View(); !strings.Contains(view, "phone") {
			t.Fatalf("view %q", view)
		}
	})

	t.Run("parentheses can be disabled", func(t *testing.T) {
		q := New().Country("US").EmojiFlags(false).Styles(Styles{}).DisableParentheses()
		q.SetValue("+12025551234")
		if view := q.View(); strings.Contains(view, "(") {
			t.Fatalf("view %q", view)
		}
	})
}
