package app

import "charm.land/bubbles/v2/key"

type keyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Drawer key.Binding
	Close  key.Binding
	Quit   key.Binding
}

var keys = keyMap{
	Next:   key.NewBinding(key.WithKeys("right", "n"), key.WithHelp("→/n", "التالي")),
	Prev:   key.NewBinding(key.WithKeys("left", "p"), key.WithHelp("←/p", "السابق")),
	Drawer: key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "الصفحات")),
	Close:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("Esc", "إغلاق")),
	Quit:   key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "خروج")),
}

// pageKey maps the digit keys 1..9 to a page index.
func pageKey(s string) (int, bool) {
	if len(s) != 1 || s[0] < '1' || s[0] > '9' {
		return 0, false
	}
	return int(s[0] - '1'), true
}
