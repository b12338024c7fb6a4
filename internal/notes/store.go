package notes

// Store is the in-memory mirror of the last successful history fetch.
// It keeps insertion order for rendering and an id index for lookups,
// and guarantees at most one entry per id. The Store owns the bulk-action
// selection so stale selections never survive a refresh or a delete.
type Store struct {
	order     []string
	byID      map[string]Note
	selection *Selection
}

func NewStore() *Store {
	return &Store{
		byID:      make(map[string]Note),
		selection: NewSelection(),
	}
}

// Selection exposes the bulk-action selection set. Entries for ids the
// store no longer holds are pruned by ReplaceAll and Remove.
func (s *Store) Selection() *Selection {
	return s.selection
}

// ReplaceAll swaps the entire cache for a freshly fetched list. Later
// duplicates of an id win over earlier ones.
func (s *Store) ReplaceAll(list []Note) {
	s.order = s.order[:0]
	s.byID = make(map[string]Note, len(list))

	for _, n := range list {
		if _, exists := s.byID[n.ID]; !exists {
			s.order = append(s.order, n.ID)
		}
		s.byID[n.ID] = n
	}

	s.selection.Prune(s.Has)
}

// Upsert inserts or updates a single note by id.
func (s *Store) Upsert(n Note) {
	if _, exists := s.byID[n.ID]; !exists {
		s.order = append(s.order, n.ID)
	}
	s.byID[n.ID] = n
}

// Remove drops the given ids. Unknown ids are ignored.
func (s *Store) Remove(ids []string) {
	drop := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}

	kept := s.order[:0]
	for _, id := range s.order {
		if _, gone := drop[id]; gone {
			delete(s.byID, id)
			continue
		}
		kept = append(kept, id)
	}
	s.order = kept

	s.selection.Prune(s.Has)
}

func (s *Store) Get(id string) (Note, bool) {
	n, ok := s.byID[id]
	return n, ok
}

func (s *Store) Has(id string) bool {
	_, ok := s.byID[id]
	return ok
}

func (s *Store) Len() int {
	return len(s.order)
}

// All returns the cached notes in insertion order.
func (s *Store) All() []Note {
	out := make([]Note, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id])
	}
	return out
}
