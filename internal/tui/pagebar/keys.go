package pagebar

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the page bar key bindings. It satisfies help.KeyMap.
type KeyMap struct {
	Prev        key.Binding
	Next        key.Binding
	JumpBack    key.Binding
	JumpForward key.Binding
	First       key.Binding
	Last        key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Prev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev page"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next page"),
		),
		JumpBack: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "back 10"),
		),
		JumpForward: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "forward 10"),
		),
		First: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g/home", "first page"),
		),
		Last: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G/end", "last page"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.JumpBack, k.JumpForward}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next},
		{k.JumpBack, k.JumpForward},
		{k.First, k.Last},
	}
}
