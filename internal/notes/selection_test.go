package notes

import "testing"

func TestSelectionToggle(t *testing.T) {
	sel := NewSelection()

	sel.Toggle("a")
	if !sel.Has("a") {
		t.Fatal("expected a to be selected after toggle")
	}

	sel.Toggle("a")
	if sel.Has("a") {
		t.Fatal("expected a to be unselected after second toggle")
	}
}

func TestSelectionSetAllAndClear(t *testing.T) {
	sel := NewSelection()

	sel.SetAll([]string{"a", "b", "c"}, true)
	if sel.Len() != 3 {
		t.Fatalf("expected 3 selected, got %d", sel.Len())
	}

	sel.SetAll([]string{"b"}, false)
	if sel.Has("b") {
		t.Fatal("expected b to be unselected")
	}

	sel.Clear()
	if sel.Len() != 0 {
		t.Fatalf("expected empty selection after clear, got %d", sel.Len())
	}
}

func TestSelectionIDsAreStable(t *testing.T) {
	sel := NewSelection()
	sel.SetAll([]string{"c", "a", "b"}, true)

	ids := sel.IDs()
	if len(ids) != 3 {
		t.Fatalf("expected 3 ids, got %d", len(ids))
	}
	if ids[0] != "a" || ids[1] != "b" || ids[2] != "c" {
		t.Fatalf("expected sorted ids, got %v", ids)
	}
}
