package viewui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the viewer key bindings: j/k step the window half a
// span, h/l jump whole days.
type keyMap struct {
	Quit       key.Binding
	Follow     key.Binding
	Grid       key.Binding
	StepBack   key.Binding
	StepFwd    key.Binding
	DayBack    key.Binding
	DayFwd     key.Binding
	Refresh    key.Binding
	NextTab    key.Binding
	Indicators key.Binding
	Tab1       key.Binding
	Tab2       key.Binding
}

var keys = keyMap{
	Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Follow:     key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "follow")),
	Grid:       key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "grid")),
	StepBack:   key.NewBinding(key.WithKeys("j"), key.WithHelp("j", "window ←")),
	StepFwd:    key.NewBinding(key.WithKeys("k"), key.WithHelp("k", "window →")),
	DayBack:    key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "prev day")),
	DayFwd:     key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "next day")),
	Refresh:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh rate")),
	NextTab:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
	Indicators: key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "indicators")),
	Tab1:       key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "reservoir")),
	Tab2:       key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "sensors")),
}
