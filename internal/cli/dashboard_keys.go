package cli

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
)

type dashboardKeyMap struct {
	Consumption key.Binding
	Waste       key.Binding
	Electricity key.Binding
	Fuel        key.Binding
	NextType    key.Binding
	Generate    key.Binding
	Complete    key.Binding
	Fail        key.Binding
	Reset       key.Binding
	Shorter     key.Binding
	Longer      key.Binding
	Help        key.Binding
	Quit        key.Binding

	Confirm key.Binding
	Cancel  key.Binding
}

func newDashboardKeyMap() dashboardKeyMap {
	return dashboardKeyMap{
		Consumption: key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "consumption")),
		Waste:       key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "waste")),
		Electricity: key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "electricity")),
		Fuel:        key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "fuel")),
		NextType:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next type")),
		Generate:    key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "generate")),
		Complete:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "completed")),
		Fail:        key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "not completed")),
		Reset:       key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Shorter:     key.NewBinding(key.WithKeys("["), key.WithHelp("[", "shorter trend")),
		Longer:      key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "longer trend")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),

		Confirm: key.NewBinding(key.WithKeys("y", "enter"), key.WithHelp("y", "reset everything")),
		Cancel:  key.NewBinding(key.WithKeys("n", "esc"), key.WithHelp("n", "keep progress")),
	}
}

// ShortHelp implements help.KeyMap.
func (k dashboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Generate, k.Complete, k.Fail, k.NextType, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k dashboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Consumption, k.Waste, k.Electricity, k.Fuel, k.NextType},
		{k.Generate, k.Complete, k.Fail, k.Reset},
		{k.Shorter, k.Longer, k.Help, k.Quit},
	}
}

// confirmKeyMap is shown while a reset awaits an answer.
type confirmKeyMap struct {
	Confirm key.Binding
	Cancel  key.Binding
}

func (k confirmKeyMap) ShortHelp() []key.Binding  { return []key.Binding{k.Confirm, k.Cancel} }
func (k confirmKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

func dashboardViewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		Up:           key.NewBinding(key.WithKeys("up", "k")),
		Down:         key.NewBinding(key.WithKeys("down", "j")),
	}
}
