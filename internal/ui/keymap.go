package ui

import "github.com/charmbracelet/bubbles/key"

type keymap struct {
	quit           key.Binding
	help           key.Binding
	back           key.Binding
	prevDay        key.Binding
	nextDay        key.Binding
	up             key.Binding
	down           key.Binding
	accept         key.Binding
	refresh        key.Binding
	toggleInactive key.Binding
	switchTab      key.Binding
}

// TODO make configurable.
var defaultKeyMap = keymap{
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "Quit"),
	),
	help: key.NewBinding(
		key.WithKeys("?", "h"),
		key.WithHelp("?", "Help"),
	),
	back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "Back"),
	),
	prevDay: key.NewBinding(
		key.WithKeys("left", "p"),
		key.WithHelp("←", "Previous day"),
	),
	nextDay: key.NewBinding(
		key.WithKeys("right", "n"),
		key.WithHelp("→", "Next day"),
	),
	up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑", "Up"),
	),
	down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓", "Down"),
	),
	accept: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "Open box score"),
	),
	refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "Refresh"),
	),
	toggleInactive: key.NewBinding(
		key.WithKeys("i"),
		key.WithHelp("i", "Toggle inactive players"),
	),
	switchTab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "Switch team"),
	),
}
