package main

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Left      key.Binding
	Right     key.Binding
	Up        key.Binding
	Down      key.Binding
	PageUp    key.Binding
	PageDown  key.Binding
	Select    key.Binding
	Preview   key.Binding
	PrevMonth key.Binding
	NextMonth key.Binding
	Jump      key.Binding
	Reset     key.Binding
	NextZone  key.Binding
	Cancel    key.Binding
	Quit      key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Left:      key.NewBinding(key.WithKeys("left"), key.WithHelp("←/→", "day")),
		Right:     key.NewBinding(key.WithKeys("right")),
		Up:        key.NewBinding(key.WithKeys("up"), key.WithHelp("↑/↓", "week")),
		Down:      key.NewBinding(key.WithKeys("down")),
		PageUp:    key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup/pgdn", "month")),
		PageDown:  key.NewBinding(key.WithKeys("pgdown")),
		Select:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "pick")),
		Preview:   key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "preview")),
		PrevMonth: key.NewBinding(key.WithKeys("h"), key.WithHelp("h/l", "scroll")),
		NextMonth: key.NewBinding(key.WithKeys("l")),
		Jump:      key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "jump")),
		Reset:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		NextZone:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "focus")),
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}
