package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	enter    key.Binding
	esc      key.Binding
	tab      key.Binding
	backtab  key.Binding
	quit     key.Binding
	lock     key.Binding
	search   key.Binding
	newItem  key.Binding
	edit     key.Binding
	delete   key.Binding
	copy     key.Binding
	copyUser key.Binding
	reveal   key.Binding
	generate key.Binding
	link     key.Binding
	sync     key.Binding
	unlink   key.Binding
	export   key.Binding
	importDB key.Binding
	reset    key.Binding
	about    key.Binding
	save     key.Binding
	toggle   key.Binding
	yes      key.Binding
	no       key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k")),
	down:     key.NewBinding(key.WithKeys("down", "j")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	tab:      key.NewBinding(key.WithKeys("tab")),
	backtab:  key.NewBinding(key.WithKeys("shift+tab")),
	quit:     key.NewBinding(key.WithKeys("q", "ctrl+c")),
	lock:     key.NewBinding(key.WithKeys("ctrl+l")),
	search:   key.NewBinding(key.WithKeys("/")),
	newItem:  key.NewBinding(key.WithKeys("n")),
	edit:     key.NewBinding(key.WithKeys("e")),
	delete:   key.NewBinding(key.WithKeys("d")),
	copy:     key.NewBinding(key.WithKeys("c")),
	copyUser: key.NewBinding(key.WithKeys("u")),
	reveal:   key.NewBinding(key.WithKeys("r")),
	generate: key.NewBinding(key.WithKeys("g", "ctrl+g")),
	link:     key.NewBinding(key.WithKeys("L")),
	sync:     key.NewBinding(key.WithKeys("s")),
	unlink:   key.NewBinding(key.WithKeys("U")),
	export:   key.NewBinding(key.WithKeys("x")),
	importDB: key.NewBinding(key.WithKeys("i")),
	reset:    key.NewBinding(key.WithKeys("R")),
	about:    key.NewBinding(key.WithKeys("v")),
	save:     key.NewBinding(key.WithKeys("ctrl+s")),
	toggle:   key.NewBinding(key.WithKeys("ctrl+t")),
	yes:      key.NewBinding(key.WithKeys("y")),
	no:       key.NewBinding(key.WithKeys("n", "esc")),
}
