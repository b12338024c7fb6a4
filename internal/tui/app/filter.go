package app

import (
	"sort"
	"strings"

	"github.com/Paintersrp/pad/internal/notes"
)

// Row is one rendered line of the history list: the note plus the flags
// the delegate needs to draw its indicators.
type Row struct {
	Note     notes.Note
	Selected bool
	Pinned   bool
	Linked   bool
}

// VisibleRows computes the displayed subset of the cache. It is a pure
// function of its inputs and is re-run on every keystroke of the search
// box and after every cache mutation.
//
// Filter: case-insensitive substring match over title and content; an
// empty term matches everything. Order: pinned notes first, then most
// recently updated, with the stable sort preserving cache order between
// equals.
func VisibleRows(
	all []notes.Note,
	term string,
	pinned func(string) bool,
	selected func(string) bool,
) []Row {
	needle := strings.ToLower(strings.TrimSpace(term))

	rows := make([]Row, 0, len(all))
	for _, n := range all {
		if needle != "" &&
			!strings.Contains(strings.ToLower(n.Title), needle) &&
			!strings.Contains(strings.ToLower(n.Content), needle) {
			continue
		}
		rows = append(rows, Row{
			Note:     n,
			Selected: selected != nil && selected(n.ID),
			Pinned:   pinned != nil && pinned(n.ID),
			Linked:   n.Linked(),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Pinned != rows[j].Pinned {
			return rows[i].Pinned
		}
		return rows[i].Note.UpdatedAt.After(rows[j].Note.UpdatedAt)
	})

	return rows
}
