package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keybindings for the TUI. Home-list navigation uses
// letter shortcuts; form bindings avoid printable keys so typing flows into
// the focused input.
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Enter     key.Binding
	PrevField key.Binding
	NextField key.Binding
	Calculate key.Binding
	CycleUnit key.Binding
	Reset     key.Binding
	Back      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap returns the default keybinding configuration.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("up", "shift+tab"),
			key.WithHelp("↑", "prev field"),
		),
		NextField: key.NewBinding(
			key.WithKeys("down", "tab"),
			key.WithHelp("↓/tab", "field"),
		),
		Calculate: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "calculate"),
		),
		CycleUnit: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "unit"),
		),
		Reset: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "reset"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "home"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}
