package ui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Quit        key.Binding
	Save        key.Binding
	Search      key.Binding
	ClearSearch key.Binding
	Up          key.Binding
	Down        key.Binding
	First       key.Binding
	Last        key.Binding
	PrevPage    key.Binding
	NextPage    key.Binding
}

var Keys = KeyMap{
	Quit:        key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	Save:        key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save")),
	Search:      key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	ClearSearch: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear search")),
	Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("k/up", "up")),
	Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("j/down", "down")),
	First:       key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "first line")),
	Last:        key.NewBinding(key.WithKeys("G"), key.WithHelp("G", "last line")),
	PrevPage:    key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "prev page")),
	NextPage:    key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next page")),
}
