package main

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the demo's key bindings.
type keyMap struct {
	Next       key.Binding
	Prev       key.Binding
	NextRegion key.Binding
	PrevRegion key.Binding
	GoTo       key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next slide"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous slide"),
		),
		NextRegion: key.NewBinding(
			key.WithKeys("tab", "j"),
			key.WithHelp("tab/j", "next carousel"),
		),
		PrevRegion: key.NewBinding(
			key.WithKeys("shift+tab", "k"),
			key.WithHelp("shift+tab/k", "previous carousel"),
		),
		GoTo: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "jump to slide"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.NextRegion, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.GoTo},
		{k.NextRegion, k.PrevRegion},
		{k.Help, k.Quit},
	}
}
