package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Paintersrp/pad/internal/cache"
	"github.com/Paintersrp/pad/internal/notes"
)

// detailModel is the read-only view of a single note, rendered as
// markdown in a scrollable viewport. Renders are memoized so bouncing
// between the list and a large note stays snappy.
type detailModel struct {
	viewport viewport.Model
	note     notes.Note
	width    int
	renders  *cache.LRUCache
}

func newDetailModel() detailModel {
	vp := viewport.New(80, 20)
	return detailModel{
		viewport: vp,
		width:    80,
		renders:  cache.NewLRUCache(32),
	}
}

func (m detailModel) render(n notes.Note) string {
	key := fmt.Sprintf("%s|%d|%s", n.ID, m.width, n.Content)
	if out, ok := m.renders.Get(key); ok {
		return out
	}

	out := renderMarkdown(n.Content, m.width)
	m.renders.Put(key, out)
	return out
}

func (m detailModel) showNote(n notes.Note) detailModel {
	m.note = n
	m.viewport.SetContent(m.render(n))
	m.viewport.GotoTop()
	return m
}

func (m detailModel) setSize(width, height int) detailModel {
	m.width = width
	m.viewport.Width = width
	if height > 6 {
		m.viewport.Height = height - 6
	}
	if m.note.ID != "" {
		m.viewport.SetContent(m.render(m.note))
	}
	return m
}

func (m detailModel) update(msg tea.Msg) (detailModel, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m detailModel) View() string {
	var b strings.Builder

	title := m.note.Title
	if title == "" {
		title = "Untitled"
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")

	meta := fmt.Sprintf("Updated: %s", formatUpdatedAt(m.note.UpdatedAt))
	if m.note.Linked() {
		meta += " • Drive"
	}
	b.WriteString(helpStyle.Render(meta))
	b.WriteString("\n\n")

	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓ scroll • e edit • esc back • q quit"))

	return b.String()
}
