package phonefield

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the key bindings for the widget. Field bindings apply
// while the text field has focus; dropdown bindings apply while the
// country selector is open.
type KeyMap struct {
	// text field
	Backspace  key.Binding
	Delete     key.Binding
	Left       key.Binding
	Right      key.Binding
	ShiftLeft  key.Binding
	ShiftRight key.Binding
	Home       key.Binding
	End        key.Binding
	ShiftHome  key.Binding
	ShiftEnd   key.Binding
	Cut        key.Binding
	PasteReg   key.Binding // paste the internal cut register

	// dropdown
	Open   key.Binding
	Close  key.Binding
	Accept key.Binding
	Up     key.Binding
	Down   key.Binding
}

// DefaultKeyMap returns the standard binding set.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Backspace:  key.NewBinding(key.WithKeys("backspace")),
		Delete:     key.NewBinding(key.WithKeys("delete")),
		Left:       key.NewBinding(key.WithKeys("left")),
		Right:      key.NewBinding(key.WithKeys("right")),
		ShiftLeft:  key.NewBinding(key.WithKeys("shift+left")),
		ShiftRight: key.NewBinding(key.WithKeys("shift+right")),
		Home:       key.NewBinding(key.WithKeys("home", "ctrl+a")),
		End:        key.NewBinding(key.WithKeys("end", "ctrl+e")),
		ShiftHome:  key.NewBinding(key.WithKeys("shift+home")),
		ShiftEnd:   key.NewBinding(key.WithKeys("shift+end")),
		Cut:        key.NewBinding(key.WithKeys("ctrl+x")),
		PasteReg:   key.NewBinding(key.WithKeys("ctrl+v")),

		Open:   key.NewBinding(key.WithKeys("ctrl+o", "f2")),
		Close:  key.NewBinding(key.WithKeys("esc")),
		Accept: key.NewBinding(key.WithKeys("enter")),
		Up:     key.NewBinding(key.WithKeys("up", "ctrl+p")),
		Down:   key.NewBinding(key.WithKeys("down", "ctrl+n")),
	}
}
