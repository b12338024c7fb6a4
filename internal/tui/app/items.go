package app

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
)

type ListItem struct {
	row Row
}

func (i ListItem) Title() string {
	var b strings.Builder

	if i.row.Selected {
		b.WriteString("[x] ")
	} else {
		b.WriteString("[ ] ")
	}
	if i.row.Pinned {
		b.WriteString("(PIN) ")
	}

	title := i.row.Note.Title
	if title == "" {
		title = "Untitled"
	}
	b.WriteString(title)

	return b.String()
}

func (i ListItem) Description() string {
	desc := "Updated: " + formatUpdatedAt(i.row.Note.UpdatedAt)
	if i.row.Linked {
		desc += " • Drive"
	}
	return desc
}

func (i ListItem) FilterValue() string {
	return i.row.Note.Title
}

func (i ListItem) ID() string {
	return i.row.Note.ID
}

func castToListItems(rows []Row) []list.Item {
	items := make([]list.Item, len(rows))
	for idx, row := range rows {
		items[idx] = ListItem{row: row}
	}
	return items
}

func formatUpdatedAt(t time.Time) string {
	if t.IsZero() {
		return "unknown"
	}
	return t.Format("2006-01-02 15:04")
}
