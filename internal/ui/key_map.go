package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for the TUI.
type keyMap struct {
	up     key.Binding
	down   key.Binding
	enter  key.Binding
	move   key.Binding
	toggle key.Binding
	more   key.Binding
	fewer  key.Binding
	upload key.Binding
	back   key.Binding
	quit   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		enter:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		move:   key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "move to playlist")),
		toggle: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch view")),
		more:   key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "more recs")),
		fewer:  key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "fewer recs")),
		upload: key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "upload catalog")),
		back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.enter},
		{k.move, k.toggle, k.upload},
		{k.more, k.fewer, k.quit},
	}
}
