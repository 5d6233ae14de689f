package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Prev      key.Binding
	Next      key.Binding
	DestUp    key.Binding
	DestDown  key.Binding
	Copy      key.Binding
	Delete    key.Binding
	WindowInc key.Binding
	WindowDec key.Binding
	SizeInc   key.Binding
	SizeDec   key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Prev:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous image")),
		Next:      key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next image")),
		DestUp:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "destination up")),
		DestDown:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "destination down")),
		Copy:      key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy to destination")),
		Delete:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete in destination")),
		WindowInc: key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "more images")),
		WindowDec: key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "fewer images")),
		SizeInc:   key.NewBinding(key.WithKeys("ctrl+up"), key.WithHelp("ctrl+↑", "bigger preview")),
		SizeDec:   key.NewBinding(key.WithKeys("ctrl+down"), key.WithHelp("ctrl+↓", "smaller preview")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Copy, k.Delete, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.DestUp, k.DestDown},
		{k.Copy, k.Delete, k.WindowInc, k.WindowDec},
		{k.SizeInc, k.SizeDec, k.Help, k.Quit},
	}
}
