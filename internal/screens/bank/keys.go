package bank

import "charm.land/bubbles/v2/key"

type keyMap struct {
	NextCategory key.Binding
	PrevCategory key.Binding
	NextSubtopic key.Binding
	PrevSubtopic key.Binding
}

var keys = keyMap{
	NextCategory: key.NewBinding(key.WithKeys("tab"), key.WithHelp("Tab", "الفقرة التالية")),
	PrevCategory: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("Shift+Tab", "الفقرة السابقة")),
	NextSubtopic: key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "الاختيار التالي")),
	PrevSubtopic: key.NewBinding(key.WithKeys("["), key.WithHelp("[", "الاختيار السابق")),
}
