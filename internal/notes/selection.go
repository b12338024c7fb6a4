package notes

import "sort"

// Selection is the set of note ids checked for a bulk action. It is always
// a subset of the ids the Store knows about; the Store prunes it whenever
// entries disappear.
type Selection struct {
	ids map[string]struct{}
}

func NewSelection() *Selection {
	return &Selection{ids: make(map[string]struct{})}
}

func (sel *Selection) Toggle(id string) {
	if _, ok := sel.ids[id]; ok {
		delete(sel.ids, id)
		return
	}
	sel.ids[id] = struct{}{}
}

// SetAll marks or unmarks every given id.
func (sel *Selection) SetAll(ids []string, selected bool) {
	for _, id := range ids {
		if selected {
			sel.ids[id] = struct{}{}
		} else {
			delete(sel.ids, id)
		}
	}
}

func (sel *Selection) Clear() {
	sel.ids = make(map[string]struct{})
}

func (sel *Selection) Has(id string) bool {
	_, ok := sel.ids[id]
	return ok
}

func (sel *Selection) Len() int {
	return len(sel.ids)
}

// IDs returns the selected ids in a stable order.
func (sel *Selection) IDs() []string {
	out := make([]string, 0, len(sel.ids))
	for id := range sel.ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Prune drops every selected id the keep function rejects.
func (sel *Selection) Prune(keep func(string) bool) {
	for id := range sel.ids {
		if !keep(id) {
			delete(sel.ids, id)
		}
	}
}
