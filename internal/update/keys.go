package update

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Toggle       key.Binding
	PrevDay      key.Binding
	NextDay      key.Binding
	Today        key.Binding
	PrevActivity key.Binding
	NextActivity key.Binding
	NewActivity  key.Binding
	Help         key.Binding
	SaveQuit     key.Binding
	Quit         key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Toggle: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "toggle activity"),
		),
		PrevDay: key.NewBinding(
			key.WithKeys("j"),
			key.WithHelp("j", "previous day"),
		),
		NextDay: key.NewBinding(
			key.WithKeys("k"),
			key.WithHelp("k", "next day"),
		),
		Today: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "today"),
		),
		PrevActivity: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "previous heat-map activity"),
		),
		NextActivity: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "next heat-map activity"),
		),
		NewActivity: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "new activity"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		SaveQuit: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "save and quit"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit without saving"),
		),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.PrevDay, k.NextDay, k.Today, k.NewActivity, k.SaveQuit, k.Quit, k.Help}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.PrevDay, k.NextDay, k.Today},
		{k.PrevActivity, k.NextActivity, k.NewActivity},
		{k.SaveQuit, k.Quit, k.Help},
	}
}
