package app

import "fmt"

// confirmModel is the y/n modal gating destructive deletes. While
// active it swallows every key except y and n/esc.
type confirmModel struct {
	active bool
	ids    []string
}

func (m confirmModel) arm(ids []string) confirmModel {
	m.active = true
	m.ids = ids
	return m
}

func (m confirmModel) dismiss() confirmModel {
	m.active = false
	m.ids = nil
	return m
}

func (m confirmModel) View() string {
	noun := "note"
	if len(m.ids) != 1 {
		noun = "notes"
	}
	return confirmStyle.Render(fmt.Sprintf(
		"Delete %d %s from the server?\n\nThis cannot be undone.\n\n%s",
		len(m.ids), noun,
		helpStyle.Render("y confirm • n cancel"),
	))
}
