package notes

import (
	"testing"
	"time"
)

func TestReplaceAllDeduplicatesByID(t *testing.T) {
	s := NewStore()
	s.ReplaceAll([]Note{
		{ID: "note_1", Title: "first"},
		{ID: "note_2", Title: "second"},
		{ID: "note_1", Title: "first, revised"},
	})

	if s.Len() != 2 {
		t.Fatalf("expected 2 entries after dedupe, got %d", s.Len())
	}

	n, ok := s.Get("note_1")
	if !ok {
		t.Fatal("expected note_1 to be present")
	}
	if n.Title != "first, revised" {
		t.Fatalf("expected the later duplicate to win, got title %q", n.Title)
	}
}

func TestUpsertNeverDuplicates(t *testing.T) {
	s := NewStore()
	s.Upsert(Note{ID: "note_1", Title: "a"})
	s.Upsert(Note{ID: "note_1", Title: "b"})
	s.Upsert(Note{ID: "note_2", Title: "c"})

	if s.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", s.Len())
	}

	all := s.All()
	if all[0].ID != "note_1" || all[0].Title != "b" {
		t.Fatalf("expected note_1 updated in place, got %+v", all[0])
	}
	if all[1].ID != "note_2" {
		t.Fatalf("expected note_2 second, got %+v", all[1])
	}
}

func TestRemoveDropsEntriesAndPrunesSelection(t *testing.T) {
	s := NewStore()
	s.ReplaceAll([]Note{{ID: "a"}, {ID: "b"}, {ID: "c"}})
	s.Selection().Toggle("a")
	s.Selection().Toggle("c")

	s.Remove([]string{"a", "missing"})

	if s.Has("a") {
		t.Fatal("expected a to be removed")
	}
	if s.Len() != 2 {
		t.Fatalf("expected 2 entries left, got %d", s.Len())
	}
	if s.Selection().Has("a") {
		t.Fatal("expected selection entry for a to be pruned")
	}
	if !s.Selection().Has("c") {
		t.Fatal("expected selection entry for c to survive")
	}
}

func TestReplaceAllPrunesStaleSelection(t *testing.T) {
	s := NewStore()
	s.ReplaceAll([]Note{{ID: "a"}, {ID: "b"}})
	s.Selection().Toggle("a")
	s.Selection().Toggle("b")

	s.ReplaceAll([]Note{{ID: "b"}, {ID: "c"}})

	if s.Selection().Has("a") {
		t.Fatal("expected stale selection for a to be pruned")
	}
	if !s.Selection().Has("b") {
		t.Fatal("expected selection for b to survive the refresh")
	}
	if got := s.Selection().Len(); got != 1 {
		t.Fatalf("expected 1 selected id, got %d", got)
	}
}

func TestAllPreservesInsertionOrder(t *testing.T) {
	s := NewStore()
	now := time.Now()
	s.ReplaceAll([]Note{
		{ID: "x", UpdatedAt: now},
		{ID: "y", UpdatedAt: now.Add(-time.Hour)},
	})
	s.Upsert(Note{ID: "z"})

	all := s.All()
	if len(all) != 3 {
		t.Fatalf("expected 3 notes, got %d", len(all))
	}
	if all[0].ID != "x" || all[1].ID != "y" || all[2].ID != "z" {
		t.Fatalf("unexpected order: %v %v %v", all[0].ID, all[1].ID, all[2].ID)
	}
}
