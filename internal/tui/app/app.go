// Package app is the terminal client's root program: one bubbletea
// model that owns the active view, the note cache, selection and pins,
// and every in-flight sync operation.
package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/Paintersrp/pad/internal/api"
	"github.com/Paintersrp/pad/internal/state"
	"github.com/Paintersrp/pad/internal/views"
)

const statusTimeout = 4 * time.Second

type Model struct {
	state  *state.State
	client SyncClient

	active views.View

	login    formModel
	register formModel
	editor   editorModel
	history  historyModel
	detail   detailModel
	confirm  confirmModel
	spinner  spinner.Model

	editorKeys *editorKeyMap

	busy       bool
	status     string
	statusErr  bool
	statusSeq  int
	historyGen uint64

	width  int
	height int
}

func NewModel(s *state.State) Model {
	return newModel(s, s.Client)
}

// newModel lets tests swap the sync client for a fake.
func newModel(s *state.State, client SyncClient) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		state:      s,
		client:     client,
		active:     views.Login,
		login:      newFormModel(false),
		register:   newFormModel(true),
		editor:     newEditorModel(),
		history:    newHistoryModel(),
		detail:     newDetailModel(),
		spinner:    sp,
		editorKeys: newEditorKeyMap(),
	}

	if s.Session.Active() {
		m.active = views.Editor
	}

	return m
}

func Run(s *state.State) error {
	p := tea.NewProgram(NewModel(s), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run program: %w", err)
	}
	return nil
}

// refreshRequestMsg asks the controller to start a history fetch. Init
// cannot mutate the model, so the initial fetch goes through Update.
type refreshRequestMsg struct{}

func (m Model) Init() tea.Cmd {
	if m.state.Session.Active() {
		return tea.Batch(
			func() tea.Msg { return refreshRequestMsg{} },
			profileCmd(m.client),
			m.editor.Init(),
		)
	}
	return m.login.Init()
}

// beginHistoryFetch bumps the fetch generation and issues the request.
// Any response carrying an older generation is stale and gets dropped.
func (m Model) beginHistoryFetch() (Model, tea.Cmd) {
	m.historyGen++
	m.busy = true
	return m, tea.Batch(historyCmd(m.client, m.historyGen), m.spinner.Tick)
}

// clearStatusNow wipes the banner on a view transition so messages do
// not leak between views. Bumping the sequence disarms pending timers.
func (m Model) clearStatusNow() Model {
	m.status = ""
	m.statusErr = false
	m.statusSeq++
	return m
}

func (m Model) setStatus(text string, isErr bool) (Model, tea.Cmd) {
	m.status = text
	m.statusErr = isErr
	m.statusSeq++
	return m, clearStatusCmd(m.statusSeq, statusTimeout)
}

// refreshRows rebuilds the visible note list from the cache.
func (m Model) refreshRows() Model {
	rows := VisibleRows(
		m.state.Store.All(),
		m.history.term(),
		m.state.Pins.Pinned,
		m.state.Store.Selection().Has,
	)
	m.history = m.history.setRows(rows, m.state.Store.Len())
	return m
}

// forceLogout tears the session down and drops back to the login view.
// Triggered by any 401 from the server.
func (m Model) forceLogout() (Model, tea.Cmd) {
	if err := m.state.Logout(); err != nil {
		m.state.Logger.Warn("logout cleanup failed", zap.Error(err))
	}

	m.busy = false
	m.historyGen++ // invalidate any in-flight fetch
	m.login = m.login.reset()
	m.register = m.register.reset()
	m.editor = m.editor.clear()
	m.history = m.history.stopSearch(true)
	m.confirm = m.confirm.dismiss()
	m.active = views.Login
	m = m.refreshRows()

	var cmd tea.Cmd
	m, cmd = m.setStatus("Session expired, please log in again", true)
	return m, tea.Batch(cmd, m.login.Init())
}

// failSync routes a sync error: auth rejection forces logout, anything
// else lands in the status banner.
func (m Model) failSync(err error) (Model, tea.Cmd) {
	m.busy = false
	if api.IsAuthRejected(err) {
		return m.forceLogout()
	}
	return m.setStatus(err.Error(), true)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.editor = m.editor.setSize(msg.Width, msg.Height)
		m.history = m.history.setSize(msg.Width, msg.Height)
		m.detail = m.detail.setSize(msg.Width, msg.Height)
		return m, nil

	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case refreshRequestMsg:
		var cmd tea.Cmd
		m, cmd = m.beginHistoryFetch()
		return m, cmd

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
			m.statusErr = false
		}
		return m, nil

	case loginDoneMsg:
		return m.handleLoginDone(msg)

	case registerDoneMsg:
		return m.handleRegisterDone(msg)

	case historyMsg:
		if msg.gen != m.historyGen {
			return m, nil
		}
		if msg.err != nil {
			return m.failSync(msg.err)
		}
		m.busy = false
		m.state.Store.ReplaceAll(msg.notes)
		m = m.refreshRows()
		return m, nil

	case saveDoneMsg:
		return m.handleSaveDone(msg)

	case deleteDoneMsg:
		return m.handleDeleteDone(msg)

	case profileMsg:
		if msg.err != nil {
			if api.IsAuthRejected(msg.err) {
				return m.forceLogout()
			}
			m.state.Logger.Warn("profile fetch failed", zap.Error(msg.err))
			return m, nil
		}
		m.state.Session.Email = msg.profile.Email
		m.state.Session.DriveLinked = msg.profile.DriveLinked
		return m, nil

	case driveLinkMsg:
		m.busy = false
		if msg.err != nil {
			return m.failSync(msg.err)
		}
		if err := clipboard.WriteAll(msg.link.AuthURL); err != nil {
			return m.setStatus("Open in your browser: "+msg.link.AuthURL, false)
		}
		return m.setStatus("Drive authorization URL copied to clipboard", false)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.forwardToActive(msg)
}

func (m Model) handleLoginDone(msg loginDoneMsg) (tea.Model, tea.Cmd) {
	m.busy = false
	if msg.err != nil {
		if api.IsAuthRejected(msg.err) {
			// A 401 here is bad credentials, not an expired session.
			return m.setStatus("Invalid email or password", true)
		}
		return m.setStatus(msg.err.Error(), true)
	}

	if err := m.state.EstablishSession(msg.token, msg.email); err != nil {
		return m.setStatus("Failed to store session: "+err.Error(), true)
	}

	m.active = views.Editor
	m.login = m.login.reset()
	m.register = m.register.reset()

	var fetchCmd, statusCmd tea.Cmd
	m, fetchCmd = m.beginHistoryFetch()
	m, statusCmd = m.setStatus("Logged in as "+msg.email, false)
	return m, tea.Batch(fetchCmd, profileCmd(m.client), statusCmd, m.editor.Init())
}

// handleRegisterDone lands on Login with a success message; the user
// logs in with the credentials they just created.
func (m Model) handleRegisterDone(msg registerDoneMsg) (tea.Model, tea.Cmd) {
	m.busy = false
	if msg.err != nil {
		return m.setStatus(msg.err.Error(), true)
	}

	m.active = views.Login
	m.register = m.register.reset()
	m.login = m.login.reset()

	var statusCmd tea.Cmd
	m, statusCmd = m.setStatus("Account created, please log in", false)
	return m, tea.Batch(statusCmd, m.login.Init())
}

func (m Model) handleSaveDone(msg saveDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		return m.failSync(msg.err)
	}
	m.busy = false

	m.editor = m.editor.clear()

	text := msg.result.Message
	if text == "" {
		text = "Note saved"
	}

	var fetchCmd, statusCmd tea.Cmd
	m, fetchCmd = m.beginHistoryFetch()
	m, statusCmd = m.setStatus(text, false)
	return m, tea.Batch(fetchCmd, statusCmd)
}

func (m Model) handleDeleteDone(msg deleteDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		return m.failSync(msg.err)
	}
	m.busy = false

	// Server confirmed; only now drop the notes locally.
	m.state.Store.Remove(msg.ids)
	for _, id := range msg.ids {
		if m.state.Pins.Pinned(id) {
			if err := m.state.Pins.Toggle(id); err != nil {
				m.state.Logger.Warn("failed to unpin deleted note", zap.Error(err))
			}
		}
		if m.active == views.Detail && m.detail.note.ID == id {
			m.active = views.History
		}
	}
	m = m.refreshRows()

	text := msg.message
	if text == "" {
		text = fmt.Sprintf("Deleted %d note(s)", len(msg.ids))
	}

	var fetchCmd, statusCmd tea.Cmd
	m, fetchCmd = m.beginHistoryFetch()
	m, statusCmd = m.setStatus(text, false)
	return m, tea.Batch(fetchCmd, statusCmd)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.confirm.active {
		return m.handleConfirmKey(msg)
	}

	switch m.active {
	case views.Login:
		return m.handleLoginKey(msg)
	case views.Register:
		return m.handleRegisterKey(msg)
	case views.Editor:
		return m.handleEditorKey(msg)
	case views.History:
		return m.handleHistoryKey(msg)
	case views.Detail:
		return m.handleDetailKey(msg)
	}
	return m, nil
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		ids := m.confirm.ids
		m.confirm = m.confirm.dismiss()
		m.busy = true
		return m, tea.Batch(deleteCmd(m.client, ids), m.spinner.Tick)
	case "n", "N", "esc":
		m.confirm = m.confirm.dismiss()
		return m.setStatus("Delete cancelled", false)
	}
	// Everything else is swallowed while the modal is up.
	return m, nil
}

func (m Model) handleLoginKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+r":
		m.active = views.Register
		m = m.clearStatusNow()
		return m, m.register.Init()

	case "tab", "shift+tab", "enter", "up", "down":
		if msg.String() == "enter" && m.login.submitting() {
			if reason := m.login.validate(); reason != "" {
				return m.setStatus(reason, true)
			}
			m.busy = true
			return m, tea.Batch(
				loginCmd(m.client, m.login.email(), m.login.password()),
				m.spinner.Tick,
			)
		}
		var cmd tea.Cmd
		m.login, cmd = m.login.cycleFocus(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.login, cmd = m.login.updateInputs(msg)
	return m, cmd
}

func (m Model) handleRegisterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.active = views.Login
		m.register = m.register.reset()
		m = m.clearStatusNow()
		return m, m.login.Init()

	case "tab", "shift+tab", "enter", "up", "down":
		if msg.String() == "enter" && m.register.submitting() {
			if reason := m.register.validate(); reason != "" {
				return m.setStatus(reason, true)
			}
			m.busy = true
			return m, tea.Batch(
				registerCmd(m.client, m.register.email(), m.register.password()),
				m.spinner.Tick,
			)
		}
		var cmd tea.Cmd
		m.register, cmd = m.register.cycleFocus(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.register, cmd = m.register.updateInputs(msg)
	return m, cmd
}

func (m Model) handleEditorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.editorKeys

	switch {
	case key.Matches(msg, keys.save):
		if reason := m.editor.validate(); reason != "" {
			return m.setStatus(reason, true)
		}
		m.busy = true
		return m, tea.Batch(
			saveCmd(m.client, m.editor.editingID, m.editor.title.Value(), m.editor.content.Value()),
			m.spinner.Tick,
		)

	case key.Matches(msg, keys.cancelEdit):
		if !m.editor.editing() {
			return m, nil
		}
		m.editor = m.editor.clear()
		return m.setStatus("Edit cancelled", false)

	case key.Matches(msg, keys.switchToHistory):
		// Leaving the editor without saving abandons the draft.
		m.editor = m.editor.clear()
		m.active = views.History
		m = m.clearStatusNow()
		var cmd tea.Cmd
		m, cmd = m.beginHistoryFetch()
		return m, cmd

	case key.Matches(msg, keys.linkDrive):
		m.busy = true
		return m, tea.Batch(driveLinkCmd(m.client), m.spinner.Tick)

	case key.Matches(msg, keys.toggleFocus):
		var cmd tea.Cmd
		m.editor, cmd = m.editor.toggleFocus()
		return m, cmd
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.updateInputs(msg)
	return m, cmd
}

func (m Model) handleHistoryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.history.keys

	if m.history.searching {
		switch msg.String() {
		case "esc":
			m.history = m.history.stopSearch(true)
			return m.refreshRows(), nil
		case "enter":
			m.history = m.history.stopSearch(false)
			return m, nil
		case "up", "down":
			var cmd tea.Cmd
			m.history.list, cmd = m.history.list.Update(msg)
			return m, cmd
		}
		var cmd tea.Cmd
		m.history.search, cmd = m.history.search.Update(msg)
		return m.refreshRows(), cmd
	}

	switch {
	case msg.String() == "q":
		return m, tea.Quit

	case key.Matches(msg, keys.startSearch):
		var cmd tea.Cmd
		m.history, cmd = m.history.startSearch()
		return m, cmd

	case key.Matches(msg, keys.exitSearch):
		if m.history.term() != "" {
			m.history = m.history.stopSearch(true)
			return m.refreshRows(), nil
		}
		return m, nil

	case key.Matches(msg, keys.toggleSelect):
		if id := m.history.selectedID(); id != "" {
			m.state.Store.Selection().Toggle(id)
		}
		return m.refreshRows(), nil

	case key.Matches(msg, keys.selectAll):
		rows := VisibleRows(
			m.state.Store.All(),
			m.history.term(),
			m.state.Pins.Pinned,
			m.state.Store.Selection().Has,
		)
		ids := make([]string, 0, len(rows))
		for _, row := range rows {
			ids = append(ids, row.Note.ID)
		}
		m.state.Store.Selection().SetAll(ids, true)
		return m.refreshRows(), nil

	case key.Matches(msg, keys.selectNone):
		m.state.Store.Selection().Clear()
		return m.refreshRows(), nil

	case key.Matches(msg, keys.togglePin):
		if id := m.history.selectedID(); id != "" {
			if err := m.state.Pins.Toggle(id); err != nil {
				return m.setStatus("Failed to persist pins: "+err.Error(), true)
			}
		}
		return m.refreshRows(), nil

	case key.Matches(msg, keys.openNote):
		id := m.history.selectedID()
		note, ok := m.state.Store.Get(id)
		if !ok {
			return m, nil
		}
		m.detail = m.detail.showNote(note)
		m.active = views.Detail
		m = m.clearStatusNow()
		return m, nil

	case key.Matches(msg, keys.editNote):
		id := m.history.selectedID()
		note, ok := m.state.Store.Get(id)
		if !ok {
			return m, nil
		}
		m.editor = m.editor.loadNote(note.ID, note.Title, note.Content)
		m.active = views.Editor
		m.historyGen++
		m.state.Store.Selection().Clear()
		m = m.clearStatusNow()
		m = m.refreshRows()
		return m, m.editor.Init()

	case key.Matches(msg, keys.deleteSelected):
		ids := m.state.Store.Selection().IDs()
		if len(ids) == 0 {
			if id := m.history.selectedID(); id != "" {
				ids = []string{id}
			}
		}
		if len(ids) == 0 {
			return m, nil
		}
		m.confirm = m.confirm.arm(ids)
		return m, nil

	case key.Matches(msg, keys.refresh):
		var cmd tea.Cmd
		m, cmd = m.beginHistoryFetch()
		return m, cmd

	case key.Matches(msg, keys.switchToEditor):
		m.active = views.Editor
		m.historyGen++ // navigating away invalidates in-flight fetches
		m.state.Store.Selection().Clear()
		m.history = m.history.stopSearch(true)
		m = m.clearStatusNow()
		m = m.refreshRows()
		return m, m.editor.Init()

	case key.Matches(msg, keys.linkDrive):
		m.busy = true
		return m, tea.Batch(driveLinkCmd(m.client), m.spinner.Tick)

	case key.Matches(msg, keys.logout):
		if err := m.state.Logout(); err != nil {
			return m.setStatus("Logout failed: "+err.Error(), true)
		}
		m.active = views.Login
		m.login = m.login.reset()
		m.editor = m.editor.clear()
		m.history = m.history.stopSearch(true)
		m = m.refreshRows()
		var statusCmd tea.Cmd
		m, statusCmd = m.setStatus("Logged out", false)
		return m, tea.Batch(statusCmd, m.login.Init())
	}

	var cmd tea.Cmd
	m.history.list, cmd = m.history.list.Update(msg)
	return m, cmd
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc", "2":
		m.active = views.History
		m = m.clearStatusNow()
		return m, nil
	case "e":
		note := m.detail.note
		m.editor = m.editor.loadNote(note.ID, note.Title, note.Content)
		m.active = views.Editor
		m.state.Store.Selection().Clear()
		m = m.clearStatusNow()
		m = m.refreshRows()
		return m, m.editor.Init()
	}

	var cmd tea.Cmd
	m.detail, cmd = m.detail.update(msg)
	return m, cmd
}

// forwardToActive routes non-key messages (blinks, ticks) to whichever
// submodel owns an animating component.
func (m Model) forwardToActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.active {
	case views.Login:
		m.login, cmd = m.login.updateInputs(msg)
	case views.Register:
		m.register, cmd = m.register.updateInputs(msg)
	case views.Editor:
		m.editor, cmd = m.editor.updateInputs(msg)
	case views.Detail:
		m.detail, cmd = m.detail.update(msg)
	}
	return m, cmd
}

func (m Model) View() string {
	var b strings.Builder

	switch m.active {
	case views.Login:
		b.WriteString(titleStyle.Render("Sign in to pad"))
		b.WriteString("\n\n")
		b.WriteString(m.login.View())
	case views.Register:
		b.WriteString(titleStyle.Render("Create a pad account"))
		b.WriteString("\n\n")
		b.WriteString(m.register.View())
	case views.Editor:
		b.WriteString(views.GetTitleForView(m.active, m.state.Session.Email))
		b.WriteString("\n\n")
		b.WriteString(m.editor.View())
	case views.History:
		b.WriteString(views.GetTitleForView(m.active, m.state.Session.Email))
		b.WriteString("\n\n")
		b.WriteString(m.history.View())
	case views.Detail:
		b.WriteString(views.GetTitleForView(m.active, m.state.Session.Email))
		b.WriteString("\n\n")
		b.WriteString(m.detail.View())
	}

	if m.confirm.active {
		b.WriteString("\n\n")
		b.WriteString(m.confirm.View())
	}

	b.WriteString("\n")
	if m.busy {
		b.WriteString("\n" + m.spinner.View() + " syncing...")
	}
	if m.status != "" {
		render := statusStyle
		if m.statusErr {
			render = errorStyle
		}
		b.WriteString("\n" + render(m.status))
	}

	return appStyle.Render(b.String())
}
