// Package fzf wraps the fuzzy finder over the server-side note list,
// with a glamour-rendered preview pane.
package fzf

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/muesli/termenv"

	"github.com/Paintersrp/pad/internal/notes"
)

// FuzzyFinder encapsulates fuzzy selection over a fixed note list.
type FuzzyFinder struct {
	notes  []notes.Note
	Header string
}

func NewFuzzyFinder(list []notes.Note, header string) *FuzzyFinder {
	return &FuzzyFinder{notes: list, Header: header}
}

// Run returns the selected note. A cancelled selection surfaces as an
// error from the finder.
func (f *FuzzyFinder) Run(query string) (notes.Note, error) {
	idx, err := f.find(query)
	if err != nil {
		return notes.Note{}, err
	}
	if idx < 0 || idx >= len(f.notes) {
		return notes.Note{}, fmt.Errorf("no note selected")
	}
	return f.notes[idx], nil
}

func (f *FuzzyFinder) find(query string) (int, error) {
	options := []fuzzyfinder.Option{
		fuzzyfinder.WithPreviewWindow(f.renderPreview),
	}
	if query != "" {
		options = append(options, fuzzyfinder.WithQuery(query))
	}
	if f.Header != "" {
		options = append(options, fuzzyfinder.WithHeader(f.Header))
	}

	return fuzzyfinder.Find(f.notes, func(i int) string {
		return DisplayTitle(f.notes[i])
	}, options...)
}

// renderPreview colorizes the hovered note's content for the preview
// pane.
func (f *FuzzyFinder) renderPreview(i, w, h int) string {
	if i == -1 {
		return ""
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dracula"),
		glamour.WithWordWrap(100),
		glamour.WithColorProfile(termenv.ANSI256),
	)
	if err != nil {
		return f.notes[i].Content
	}

	out, err := r.Render(f.notes[i].Content)
	if err != nil {
		return "Error rendering markdown"
	}
	return out
}

// DisplayTitle is the line shown in the finder list.
func DisplayTitle(n notes.Note) string {
	title := n.Title
	if title == "" {
		title = "Untitled"
	}
	if n.UpdatedAt.IsZero() {
		return title
	}
	return fmt.Sprintf("%s (%s)", title, n.UpdatedAt.Format("2006-01-02"))
}
