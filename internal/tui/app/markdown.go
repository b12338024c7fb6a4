package app

import (
	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
)

// renderMarkdown styles note content for the detail pane. Falls back to
// the raw content when the renderer cannot be built, so the note is
// never unreadable.
func renderMarkdown(content string, width int) string {
	if width <= 0 {
		width = 80
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dracula"),
		glamour.WithWordWrap(width),
		glamour.WithColorProfile(termenv.ANSI256),
	)
	if err != nil {
		return content
	}

	out, err := r.Render(content)
	if err != nil {
		return content
	}
	return out
}
