package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	fieldEmail = iota
	fieldPassword
	fieldConfirm
)

// formModel is the shared email/password form behind the login and
// register screens. Register mode adds a confirmation field.
type formModel struct {
	focusIndex int
	inputs     []textinput.Model
	register   bool
}

func newFormModel(register bool) formModel {
	count := 2
	if register {
		count = 3
	}

	m := formModel{
		inputs:   make([]textinput.Model, count),
		register: register,
	}

	var t textinput.Model
	for i := range m.inputs {
		t = textinput.New()
		t.Cursor.Style = cursorStyle
		t.CharLimit = 64

		switch i {
		case fieldEmail:
			t.Placeholder = "Email"
			t.Focus()
			t.PromptStyle = focusedStyle
			t.TextStyle = focusedStyle
		case fieldPassword:
			t.Placeholder = "Password"
			t.EchoMode = textinput.EchoPassword
			t.EchoCharacter = '•'
		case fieldConfirm:
			t.Placeholder = "Confirm Password"
			t.EchoMode = textinput.EchoPassword
			t.EchoCharacter = '•'
		}

		m.inputs[i] = t
	}

	return m
}

func (m formModel) Init() tea.Cmd {
	return textinput.Blink
}

// submitting reports whether the focus sits on the submit button.
func (m formModel) submitting() bool {
	return m.focusIndex == len(m.inputs)
}

func (m formModel) email() string {
	return strings.TrimSpace(m.inputs[fieldEmail].Value())
}

func (m formModel) password() string {
	return m.inputs[fieldPassword].Value()
}

// validate returns a user-facing message when the form cannot be
// submitted, or "" when it can.
func (m formModel) validate() string {
	if m.email() == "" {
		return "email is required"
	}
	if m.password() == "" {
		return "password is required"
	}
	if m.register && m.inputs[fieldConfirm].Value() != m.password() {
		return "passwords do not match"
	}
	return ""
}

func (m formModel) cycleFocus(msg tea.KeyMsg) (formModel, tea.Cmd) {
	s := msg.String()
	if s == "up" || s == "shift+tab" {
		m.focusIndex--
	} else {
		m.focusIndex++
	}

	if m.focusIndex > len(m.inputs) {
		m.focusIndex = 0
	} else if m.focusIndex < 0 {
		m.focusIndex = len(m.inputs)
	}

	cmds := make([]tea.Cmd, len(m.inputs))
	for i := 0; i <= len(m.inputs)-1; i++ {
		if i == m.focusIndex {
			cmds[i] = m.inputs[i].Focus()
			m.inputs[i].PromptStyle = focusedStyle
			m.inputs[i].TextStyle = focusedStyle
			continue
		}
		m.inputs[i].Blur()
		m.inputs[i].PromptStyle = noStyle
		m.inputs[i].TextStyle = noStyle
	}

	return m, tea.Batch(cmds...)
}

func (m formModel) updateInputs(msg tea.Msg) (formModel, tea.Cmd) {
	cmds := make([]tea.Cmd, len(m.inputs))

	for i := range m.inputs {
		m.inputs[i], cmds[i] = m.inputs[i].Update(msg)
	}

	return m, tea.Batch(cmds...)
}

func (m formModel) reset() formModel {
	return newFormModel(m.register)
}

func (m formModel) View() string {
	var b strings.Builder

	for i := range m.inputs {
		b.WriteString(m.inputs[i].View())
		if i < len(m.inputs)-1 {
			b.WriteRune('\n')
		}
	}

	button := &blurredButton
	if m.submitting() {
		button = &focusedButton
	}
	fmt.Fprintf(&b, "\n\n%s\n\n", *button)

	if m.register {
		b.WriteString(helpStyle.Render("enter submit • esc back to login • ctrl+c quit"))
	} else {
		b.WriteString(helpStyle.Render("enter submit • ctrl+r register • ctrl+c quit"))
	}

	return b.String()
}
