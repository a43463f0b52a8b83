package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up            key.Binding
	down          key.Binding
	enter         key.Binding
	esc           key.Binding
	tab           key.Binding
	backtab       key.Binding
	left          key.Binding
	right         key.Binding
	quit          key.Binding
	forceQuit     key.Binding
	logout        key.Binding
	newNote       key.Binding
	edit          key.Binding
	delete        key.Binding
	share         key.Binding
	filter        key.Binding
	search        key.Binding
	refresh       key.Binding
	notifications key.Binding
	openPublic    key.Binding
	copyLink      key.Binding
	copyContent   key.Binding
	save          key.Binding
	yes           key.Binding
	no            key.Binding
}

var keys = keyMap{
	up:            key.NewBinding(key.WithKeys("up", "k")),
	down:          key.NewBinding(key.WithKeys("down", "j")),
	enter:         key.NewBinding(key.WithKeys("enter")),
	esc:           key.NewBinding(key.WithKeys("esc")),
	tab:           key.NewBinding(key.WithKeys("tab")),
	backtab:       key.NewBinding(key.WithKeys("shift+tab")),
	left:          key.NewBinding(key.WithKeys("left")),
	right:         key.NewBinding(key.WithKeys("right")),
	quit:          key.NewBinding(key.WithKeys("q", "ctrl+c")),
	forceQuit:     key.NewBinding(key.WithKeys("ctrl+c")),
	logout:        key.NewBinding(key.WithKeys("l")),
	newNote:       key.NewBinding(key.WithKeys("n")),
	edit:          key.NewBinding(key.WithKeys("e")),
	delete:        key.NewBinding(key.WithKeys("ctrl+d")),
	share:         key.NewBinding(key.WithKeys("s")),
	filter:        key.NewBinding(key.WithKeys("f")),
	search:        key.NewBinding(key.WithKeys("/")),
	refresh:       key.NewBinding(key.WithKeys("r")),
	notifications: key.NewBinding(key.WithKeys("N")),
	openPublic:    key.NewBinding(key.WithKeys("o")),
	copyLink:      key.NewBinding(key.WithKeys("p")),
	copyContent:   key.NewBinding(key.WithKeys("c")),
	save:          key.NewBinding(key.WithKeys("ctrl+s")),
	yes:           key.NewBinding(key.WithKeys("y", "enter")),
	no:            key.NewBinding(key.WithKeys("n")),
}
