package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Query    key.Binding
	Diamonds key.Binding
	Clubs    key.Binding
	Hearts   key.Binding
	Spades   key.Binding
	Pass     key.Binding

	Left     key.Binding
	Right    key.Binding
	Play     key.Binding
	Continue key.Binding

	Help key.Binding
	Quit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Query: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "query"),
		),
		Diamonds: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "bid ♦"),
		),
		Clubs: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "bid ♣"),
		),
		Hearts: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "bid ♥"),
		),
		Spades: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "bid ♠"),
		),
		Pass: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pass"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "previous card"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "next card"),
		),
		Play: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "play card"),
		),
		Continue: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "next trick"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Query, k.Diamonds, k.Clubs, k.Hearts, k.Spades, k.Pass},
		{k.Left, k.Right, k.Play, k.Continue},
		{k.Help, k.Quit},
	}
}
