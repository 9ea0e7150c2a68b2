package remote

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the remote's buttons
type keyMap struct {
	Power    key.Binding
	Mode     key.Binding
	TempUp   key.Binding
	TempDown key.Binding
	Fan      key.Binding
	Send     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Power, k.Mode, k.TempUp, k.TempDown, k.Fan, k.Send, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Power, k.Mode, k.Fan},
		{k.TempUp, k.TempDown},
		{k.Send, k.Help, k.Quit},
	}
}

func newKeyMap() keyMap {
	return keyMap{
		Power: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "power"),
		),
		Mode: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mode"),
		),
		TempUp: key.NewBinding(
			key.WithKeys("+", "=", "up"),
			key.WithHelp("+/↑", "warmer"),
		),
		TempDown: key.NewBinding(
			key.WithKeys("-", "down"),
			key.WithHelp("-/↓", "cooler"),
		),
		Fan: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "fan"),
		),
		Send: key.NewBinding(
			key.WithKeys("s", "enter"),
			key.WithHelp("s", "send"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
