package history

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/Paintersrp/pad/internal/notes"
)

func TestOrderNotesPutsPinnedFirst(t *testing.T) {
	now := time.Now()
	list := []notes.Note{
		{ID: "new", Title: "Newer unpinned", UpdatedAt: now},
		{ID: "old", Title: "Older pinned", UpdatedAt: now.Add(-24 * time.Hour)},
	}
	pinned := func(id string) bool { return id == "old" }

	orderNotes(list, pinned)

	if list[0].ID != "old" {
		t.Fatalf("expected pinned note first, got %q", list[0].ID)
	}
	if list[1].ID != "new" {
		t.Fatalf("expected unpinned note second, got %q", list[1].ID)
	}
}

func TestOrderNotesSortsByRecencyWithinGroups(t *testing.T) {
	now := time.Now()
	list := []notes.Note{
		{ID: "a", UpdatedAt: now.Add(-2 * time.Hour)},
		{ID: "b", UpdatedAt: now},
		{ID: "c", UpdatedAt: now.Add(-time.Hour)},
	}

	orderNotes(list, func(string) bool { return false })

	if list[0].ID != "b" || list[1].ID != "c" || list[2].ID != "a" {
		t.Fatalf("unexpected order: %s %s %s", list[0].ID, list[1].ID, list[2].ID)
	}
}

func TestOrderNotesKeepsPinnedInsideLimit(t *testing.T) {
	now := time.Now()
	list := []notes.Note{
		{ID: "n1", UpdatedAt: now},
		{ID: "n2", UpdatedAt: now.Add(-time.Hour)},
		{ID: "pinned", UpdatedAt: now.Add(-48 * time.Hour)},
	}

	orderNotes(list, func(id string) bool { return id == "pinned" })
	list = list[:2]

	if list[0].ID != "pinned" {
		t.Fatalf("expected pinned note to survive the limit, got %q first", list[0].ID)
	}
}

func TestTruncateKeepsValidUTF8(t *testing.T) {
	title := strings.Repeat("ü", 50)

	got := truncate(title, 40)

	if !utf8.ValidString(got) {
		t.Fatalf("truncate produced invalid UTF-8: %q", got)
	}
	if !strings.HasSuffix(got, "…") {
		t.Fatalf("expected ellipsis suffix, got %q", got)
	}
	if n := utf8.RuneCountInString(got); n > 40 {
		t.Fatalf("expected at most 40 runes, got %d", n)
	}
}

func TestTruncateLeavesShortTitlesAlone(t *testing.T) {
	if got := truncate("Groceries", 40); got != "Groceries" {
		t.Fatalf("expected title unchanged, got %q", got)
	}
}
