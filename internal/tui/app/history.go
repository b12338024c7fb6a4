package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// historyModel is the note list screen. The list items are always
// derived from the cache through VisibleRows; the bubbles list is a
// dumb display, its built-in filtering stays off.
type historyModel struct {
	list      list.Model
	search    textinput.Model
	searching bool
	keys      *historyKeyMap

	// counts from the last render pass, for the empty placeholder
	total   int
	visible int
}

func newHistoryModel() historyModel {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = selectedItemStyle
	delegate.Styles.SelectedDesc = selectedItemStyle.Copy().
		Foreground(dimmedColor)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "History"
	l.Styles.Title = titleStyle
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.SetShowStatusBar(false)

	s := textinput.New()
	s.Placeholder = "Search title or content..."
	s.Prompt = "/ "
	s.CharLimit = 128

	return historyModel{
		list:   l,
		search: s,
		keys:   newHistoryKeyMap(),
	}
}

// setRows replaces the visible items while keeping the cursor on the
// same note when it survives the refresh. total is the cache size
// before filtering, so the placeholder can tell "no notes" from "no
// match".
func (m historyModel) setRows(rows []Row, total int) historyModel {
	m.total = total
	var keepID string
	if item, ok := m.list.SelectedItem().(ListItem); ok {
		keepID = item.ID()
	}

	m.list.SetItems(castToListItems(rows))
	m.visible = len(rows)

	if keepID != "" {
		for i, row := range rows {
			if row.Note.ID == keepID {
				m.list.Select(i)
				break
			}
		}
	}
	if m.list.Index() >= len(rows) {
		m.list.Select(0)
	}
	return m
}

func (m historyModel) selectedID() string {
	item, ok := m.list.SelectedItem().(ListItem)
	if !ok {
		return ""
	}
	return item.ID()
}

func (m historyModel) term() string {
	return m.search.Value()
}

func (m historyModel) startSearch() (historyModel, tea.Cmd) {
	m.searching = true
	cmd := m.search.Focus()
	return m, cmd
}

func (m historyModel) stopSearch(clear bool) historyModel {
	m.searching = false
	m.search.Blur()
	if clear {
		m.search.SetValue("")
	}
	return m
}

func (m historyModel) setSize(width, height int) historyModel {
	m.list.SetSize(width, height-4)
	return m
}

func (m historyModel) View() string {
	var b strings.Builder

	if m.searching || m.search.Value() != "" {
		b.WriteString(m.search.View())
		b.WriteString("\n")
	}

	if m.visible == 0 {
		b.WriteString(m.list.Styles.Title.Render(m.list.Title))
		b.WriteString("\n")
		if m.total == 0 {
			b.WriteString(placeholderStyle.Render("No notes yet. Press 1 to write one."))
		} else {
			b.WriteString(placeholderStyle.Render(
				fmt.Sprintf("No notes match %q.", m.search.Value()),
			))
		}
		b.WriteString("\n\n")
	} else {
		b.WriteString(m.list.View())
		b.WriteString("\n")
	}

	if m.searching {
		b.WriteString(helpStyle.Render("type to filter • enter keep filter • esc clear"))
	} else {
		b.WriteString(helpStyle.Render(
			"↵ open • e edit • space select • a/u all/none • p pin • d delete • / search • r refresh • 1 editor • q quit",
		))
	}

	return b.String()
}
