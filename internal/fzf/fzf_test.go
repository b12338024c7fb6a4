package fzf

import (
	"testing"
	"time"

	"github.com/Paintersrp/pad/internal/notes"
)

func TestDisplayTitleFallsBackToUntitled(t *testing.T) {
	got := DisplayTitle(notes.Note{ID: "n1"})
	if got != "Untitled" {
		t.Errorf("expected Untitled, got %q", got)
	}
}

func TestDisplayTitleIncludesDate(t *testing.T) {
	n := notes.Note{
		Title:     "Groceries",
		UpdatedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
	got := DisplayTitle(n)
	if got != "Groceries (2024-05-01)" {
		t.Errorf("unexpected display title %q", got)
	}
}
