package app

import "github.com/charmbracelet/bubbles/key"

type historyKeyMap struct {
	openNote        key.Binding
	editNote        key.Binding
	deleteSelected  key.Binding
	toggleSelect    key.Binding
	selectAll       key.Binding
	selectNone      key.Binding
	togglePin       key.Binding
	startSearch     key.Binding
	exitSearch      key.Binding
	refresh         key.Binding
	switchToEditor  key.Binding
	switchToHistory key.Binding
	linkDrive       key.Binding
	logout          key.Binding
	quit            key.Binding
}

func newHistoryKeyMap() *historyKeyMap {
	return &historyKeyMap{
		openNote: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("↵", "open"),
		),
		editNote: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		deleteSelected: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		toggleSelect: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "select"),
		),
		selectAll: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "select all"),
		),
		selectNone: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "select none"),
		),
		togglePin: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pin"),
		),
		startSearch: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		exitSearch: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear search"),
		),
		refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		switchToEditor: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "editor"),
		),
		switchToHistory: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "history"),
		),
		linkDrive: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "link drive"),
		),
		logout: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "logout"),
		),
		quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
	}
}

type editorKeyMap struct {
	save            key.Binding
	cancelEdit      key.Binding
	switchToHistory key.Binding
	toggleFocus     key.Binding
	linkDrive       key.Binding
	quit            key.Binding
}

func newEditorKeyMap() *editorKeyMap {
	return &editorKeyMap{
		save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save"),
		),
		cancelEdit: key.NewBinding(
			key.WithKeys("ctrl+e"),
			key.WithHelp("ctrl+e", "cancel edit"),
		),
		switchToHistory: key.NewBinding(
			key.WithKeys("ctrl+h"),
			key.WithHelp("ctrl+h", "history"),
		),
		toggleFocus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch field"),
		),
		linkDrive: key.NewBinding(
			key.WithKeys("ctrl+g"),
			key.WithHelp("ctrl+g", "link drive"),
		),
		quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}
