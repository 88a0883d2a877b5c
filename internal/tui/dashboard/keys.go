package dashboard

import "github.com/charmbracelet/bubbles/key"

// keyMap lists the bindings active while the item panel has focus.
type keyMap struct {
	Quit        key.Binding
	ToggleTheme key.Binding
	Login       key.Binding
	Logout      key.Binding
	Dismiss     key.Binding
	Undo        key.Binding
	LoadMore    key.Binding
	Filter      key.Binding
	NextPage    key.Binding
	PrevPage    key.Binding
	FocusForm   key.Binding
	Help        key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		ToggleTheme: key.NewBinding(
			key.WithKeys("t", "ctrl+t"),
			key.WithHelp("t", "theme"),
		),
		Login: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "log in"),
		),
		Logout: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "log out"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "dismiss toast"),
		),
		Undo: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "undo dismiss"),
		),
		LoadMore: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "load more"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("right", "pgdown", "n"),
			key.WithHelp("→/n", "next page"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("left", "pgup", "p"),
			key.WithHelp("←/p", "prev page"),
		),
		FocusForm: key.NewBinding(
			key.WithKeys("tab", "f"),
			key.WithHelp("tab", "edit form"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ToggleTheme, k.Login, k.LoadMore, k.Filter, k.FocusForm, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.ToggleTheme, k.Login, k.Logout},
		{k.Dismiss, k.Undo},
		{k.LoadMore, k.Filter, k.NextPage, k.PrevPage},
		{k.FocusForm, k.Help, k.Quit},
	}
}
