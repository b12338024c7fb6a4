package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// editorModel is the compose/edit screen. A blank editingID means the
// next save creates a new note; otherwise it updates the note being
// edited.
type editorModel struct {
	title     textinput.Model
	content   textarea.Model
	editingID string
	bodyFocus bool
}

func newEditorModel() editorModel {
	ti := textinput.New()
	ti.Placeholder = "Title"
	ti.CharLimit = 128
	ti.Cursor.Style = cursorStyle
	ti.Focus()
	ti.PromptStyle = focusedStyle
	ti.TextStyle = focusedStyle

	ta := textarea.New()
	ta.Placeholder = "Write your note..."
	ta.CharLimit = 0
	ta.SetHeight(12)

	return editorModel{
		title:   ti,
		content: ta,
	}
}

func (m editorModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m editorModel) editing() bool {
	return m.editingID != ""
}

// loadNote switches the editor into edit mode for the given note.
func (m editorModel) loadNote(id, title, content string) editorModel {
	m.editingID = id
	m.title.SetValue(title)
	m.content.SetValue(content)
	return m.focusBody(false)
}

// clear resets the editor back to compose mode with empty fields.
func (m editorModel) clear() editorModel {
	m.editingID = ""
	m.title.SetValue("")
	m.content.SetValue("")
	return m.focusBody(false)
}

// validate returns a user-facing message when the note cannot be
// saved, or "" when it can. The server requires a title, so the check
// happens here before any request goes out.
func (m editorModel) validate() string {
	if strings.TrimSpace(m.title.Value()) == "" {
		return "title is required"
	}
	return ""
}

func (m editorModel) focusBody(body bool) editorModel {
	m.bodyFocus = body
	if body {
		m.title.Blur()
		m.title.PromptStyle = noStyle
		m.title.TextStyle = noStyle
		m.content.Focus()
	} else {
		m.content.Blur()
		m.title.Focus()
		m.title.PromptStyle = focusedStyle
		m.title.TextStyle = focusedStyle
	}
	return m
}

func (m editorModel) toggleFocus() (editorModel, tea.Cmd) {
	m = m.focusBody(!m.bodyFocus)
	if m.bodyFocus {
		return m, textarea.Blink
	}
	return m, textinput.Blink
}

func (m editorModel) updateInputs(msg tea.Msg) (editorModel, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	if m.bodyFocus {
		m.content, cmd = m.content.Update(msg)
	} else {
		m.title, cmd = m.title.Update(msg)
	}
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m editorModel) setSize(width, height int) editorModel {
	if width > 4 {
		m.title.Width = width - 4
		m.content.SetWidth(width - 4)
	}
	if height > 10 {
		m.content.SetHeight(height - 8)
	}
	return m
}

func (m editorModel) View() string {
	var b strings.Builder

	if m.editing() {
		b.WriteString(statusStyle("Editing note") + "\n\n")
	}

	b.WriteString(m.title.View())
	b.WriteString("\n\n")
	b.WriteString(m.content.View())
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("ctrl+s save • tab switch field • ctrl+h history • ctrl+g link drive • ctrl+c quit"))
	if m.editing() {
		b.WriteString("\n" + helpStyle.Render("ctrl+e cancel edit"))
	}

	return b.String()
}
