package pin

import "sort"

// PersistFunc writes the pinned id set to durable storage. It receives the
// full set on every mutation.
type PersistFunc func(ids []string) error

// PinManager tracks which notes the user has pinned for priority display.
// Pins are a local preference, keyed by note id, and are written through
// to the config file on every change. A pin for a note that no longer
// exists is harmless; it simply stops affecting rendering.
type PinManager struct {
	pinned  map[string]struct{}
	persist PersistFunc
}

func NewPinManager(ids []string, persist PersistFunc) *PinManager {
	m := &PinManager{
		pinned:  make(map[string]struct{}, len(ids)),
		persist: persist,
	}
	for _, id := range ids {
		if id == "" {
			continue
		}
		m.pinned[id] = struct{}{}
	}
	return m
}

// Toggle flips the pin state for a note id and persists the new set.
func (m *PinManager) Toggle(id string) error {
	if id == "" {
		return nil
	}

	if _, ok := m.pinned[id]; ok {
		delete(m.pinned, id)
	} else {
		m.pinned[id] = struct{}{}
	}

	return m.save()
}

func (m *PinManager) Pinned(id string) bool {
	_, ok := m.pinned[id]
	return ok
}

func (m *PinManager) Len() int {
	return len(m.pinned)
}

// IDs returns the pinned ids in a stable order.
func (m *PinManager) IDs() []string {
	out := make([]string, 0, len(m.pinned))
	for id := range m.pinned {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Clear wipes every pin. Called on logout so pins stay scoped to the
// account that created them.
func (m *PinManager) Clear() error {
	m.pinned = make(map[string]struct{})
	return m.save()
}

func (m *PinManager) save() error {
	if m.persist == nil {
		return nil
	}
	return m.persist(m.IDs())
}
