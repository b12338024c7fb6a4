package pin

import (
	"errors"
	"testing"
)

func TestTogglePersistsEveryMutation(t *testing.T) {
	var saved [][]string
	m := NewPinManager(nil, func(ids []string) error {
		saved = append(saved, ids)
		return nil
	})

	if err := m.Toggle("note_1"); err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if err := m.Toggle("note_2"); err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if err := m.Toggle("note_1"); err != nil {
		t.Fatalf("toggle failed: %v", err)
	}

	if len(saved) != 3 {
		t.Fatalf("expected 3 persist calls, got %d", len(saved))
	}

	last := saved[len(saved)-1]
	if len(last) != 1 || last[0] != "note_2" {
		t.Fatalf("expected final persisted set [note_2], got %v", last)
	}
	if m.Pinned("note_1") {
		t.Fatal("expected note_1 to be unpinned after second toggle")
	}
}

func TestToggleIgnoresEmptyID(t *testing.T) {
	calls := 0
	m := NewPinManager(nil, func([]string) error {
		calls++
		return nil
	})

	if err := m.Toggle(""); err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if calls != 0 {
		t.Fatalf("expected no persist call for empty id, got %d", calls)
	}
}

func TestTogglePropagatesPersistError(t *testing.T) {
	wantErr := errors.New("disk full")
	m := NewPinManager(nil, func([]string) error { return wantErr })

	if err := m.Toggle("note_1"); !errors.Is(err, wantErr) {
		t.Fatalf("expected persist error, got %v", err)
	}
}

func TestNewPinManagerSkipsEmptySeeds(t *testing.T) {
	m := NewPinManager([]string{"a", "", "b"}, nil)
	if m.Len() != 2 {
		t.Fatalf("expected 2 pins, got %d", m.Len())
	}

	ids := m.IDs()
	if ids[0] != "a" || ids[1] != "b" {
		t.Fatalf("unexpected ids %v", ids)
	}
}

func TestClearEmptiesTheSet(t *testing.T) {
	m := NewPinManager([]string{"a", "b"}, nil)
	if err := m.Clear(); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	if m.Len() != 0 {
		t.Fatalf("expected empty set, got %d pins", m.Len())
	}
}
