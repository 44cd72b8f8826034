package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Quit key.Binding
	Back key.Binding

	// Form navigation
	Next key.Binding
	Prev key.Binding

	// Editor actions
	AddItem    key.Binding
	RemoveItem key.Binding
	Preview    key.Binding

	// Preview actions
	Print key.Binding
	Email key.Binding
}

var DefaultKeyMap = KeyMap{
	Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Back:       key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back to edit")),
	Next:       key.NewBinding(key.WithKeys("tab", "down", "enter"), key.WithHelp("tab", "next field")),
	Prev:       key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "previous field")),
	AddItem:    key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "add item")),
	RemoveItem: key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "remove item")),
	Preview:    key.NewBinding(key.WithKeys("ctrl+s", "ctrl+p"), key.WithHelp("ctrl+s", "preview")),
	Print:      key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "print")),
	Email:      key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "send email")),
}
