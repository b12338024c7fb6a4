// Package views names the application's mutually exclusive screens and
// renders the shared title bar.
package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View identifies one of the client's screens. Exactly one is visible at
// a time; Detail overlays History but still owns the keyboard.
type View int

const (
	Login View = iota
	Register
	Editor
	History
	Detail
)

func (v View) String() string {
	switch v {
	case Login:
		return "login"
	case Register:
		return "register"
	case Editor:
		return "editor"
	case History:
		return "history"
	case Detail:
		return "detail"
	default:
		return "unknown"
	}
}

var titlePrefixMap = map[View]string{
	Editor:  "[1] Editor",
	History: "[2] History",
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true)
	activeViewStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#0AF")).
			Padding(0, 1)
	inactiveViewStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#666666")).
				Padding(0, 1)
	dividerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			SetString("│")
	accountStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#0AF")).
			Bold(true)
)

// GetTitleForView renders the tab strip plus the signed-in identity.
// Login, Register, and Detail reuse their parent layout and render no
// tab strip of their own.
func GetTitleForView(active View, email string) string {
	tabs := []View{Editor, History}

	var parts []string
	for _, v := range tabs {
		prefix := titlePrefixMap[v]
		if v == active || (active == Detail && v == History) {
			parts = append(parts, activeViewStyle.Render(prefix))
		} else {
			parts = append(parts, inactiveViewStyle.Render(prefix))
		}
	}

	bar := strings.Join(parts, dividerStyle.String())
	if email != "" {
		bar += dividerStyle.String() + accountStyle.Render(" "+email+" ")
	}

	return titleStyle.Render(bar)
}
