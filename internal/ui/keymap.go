// internal/ui/keymap.go

package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings of the picker.
type KeyMap struct {
	Quit           key.Binding
	ClearSelection key.Binding
	Next           key.Binding
	Previous       key.Binding
	First          key.Binding
	Last           key.Binding
	ToggleExpand   key.Binding
	Confirm        key.Binding
	Filter         key.Binding

	// Active only while filtering
	AcceptFilter key.Binding
	CancelFilter key.Binding
}

// DefaultKeyMap returns the fixed key table.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		ClearSelection: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("←/h", "unselect"),
		),
		Next: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "down"),
		),
		Previous: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "up"),
		),
		First: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "top"),
		),
		Last: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "bottom"),
		),
		ToggleExpand: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("→/l", "expand"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "connect"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		AcceptFilter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "apply filter"),
		),
		CancelFilter: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel filter"),
		),
	}
}
