package form

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines form navigation. Tab is left to the components.
type KeyMap struct {
	Next, Prev key.Binding
	Blur       key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(key.WithKeys("ctrl+n", "f6"), key.WithHelp("ctrl+n", "next field")),
		Prev: key.NewBinding(key.WithKeys("ctrl+p", "shift+f6"), key.WithHelp("ctrl+p", "previous field")),
		Blur: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "leave field")),
	}
}
