package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMap holds the key bindings of the floor plan.
type KeyMap struct {
	FilterAll      key.Binding
	FilterBasic    key.Binding
	FilterSilver   key.Binding
	FilterGold     key.Binding
	FilterPlatinum key.Binding

	CloseModal key.Binding
	Quit       key.Binding
}

var DefaultKeyMap = KeyMap{
	FilterAll: key.NewBinding(
		key.WithKeys("a", "0"),
		key.WithHelp("a", "all"),
	),
	FilterBasic: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "basic"),
	),
	FilterSilver: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "silver"),
	),
	FilterGold: key.NewBinding(
		key.WithKeys("3"),
		key.WithHelp("3", "gold"),
	),
	FilterPlatinum: key.NewBinding(
		key.WithKeys("4"),
		key.WithHelp("4", "platinum"),
	),
	CloseModal: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// filterBindings pairs each filter binding with the filter value it
// selects.
func (k KeyMap) filterBindings() []struct {
	binding key.Binding
	value   string
} {
	return []struct {
		binding key.Binding
		value   string
	}{
		{k.FilterAll, "all"},
		{k.FilterBasic, "basic"},
		{k.FilterSilver, "silver"},
		{k.FilterGold, "gold"},
		{k.FilterPlatinum, "platinum"},
	}
}

// shortHelp renders "key action" pairs for the footer.
func (k KeyMap) shortHelp() string {
	bindings := []key.Binding{
		k.FilterAll, k.FilterBasic, k.FilterSilver, k.FilterGold, k.FilterPlatinum,
		k.CloseModal, k.Quit,
	}

	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, "  ")
}
