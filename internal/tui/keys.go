package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Circle   key.Binding
	Square   key.Binding
	Triangle key.Binding
	Retry    key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Circle: key.NewBinding(
			key.WithKeys("1", "c"),
			key.WithHelp("1/c", "circle"),
		),
		Square: key.NewBinding(
			key.WithKeys("2", "s"),
			key.WithHelp("2/s", "square"),
		),
		Triangle: key.NewBinding(
			key.WithKeys("3", "t"),
			key.WithHelp("3/t", "triangle"),
		),
		Retry: key.NewBinding(
			key.WithKeys("r", "enter"),
			key.WithHelp("r", "retry"),
			key.WithDisabled(),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// setOver flips which bindings are live; symbol keys are dead once the game is over
func (k *keyMap) setOver(over bool) {
	k.Circle.SetEnabled(!over)
	k.Square.SetEnabled(!over)
	k.Triangle.SetEnabled(!over)
	k.Retry.SetEnabled(over)
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Circle, k.Square, k.Triangle, k.Retry, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Circle, k.Square, k.Triangle},
		{k.Retry, k.Help, k.Quit},
	}
}
