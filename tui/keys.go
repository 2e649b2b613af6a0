package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	LeftUp    key.Binding
	LeftDown  key.Binding
	RightUp   key.Binding
	RightDown key.Binding

	OnePlayer key.Binding
	TwoPlayer key.Binding
	Restart   key.Binding
	Pause     key.Binding
	Menu      key.Binding
	Quit      key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		LeftUp:    key.NewBinding(key.WithKeys("w", "W")),
		LeftDown:  key.NewBinding(key.WithKeys("s", "S")),
		RightUp:   key.NewBinding(key.WithKeys("up")),
		RightDown: key.NewBinding(key.WithKeys("down")),

		OnePlayer: key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "one player")),
		TwoPlayer: key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "two players")),
		Restart:   key.NewBinding(key.WithKeys("r", "R"), key.WithHelp("r", "restart")),
		Pause:     key.NewBinding(key.WithKeys("p", "P"), key.WithHelp("p", "pause")),
		Menu:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "menu")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}
