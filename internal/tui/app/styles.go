package app

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	appStyle = lipgloss.NewStyle().Padding(1, 2)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#0AF")).
			Background(lipgloss.Color("transparent")).
			Bold(true).
			Padding(0, 1)

	statusBannerStyle = lipgloss.NewStyle().
				Foreground(lipgloss.AdaptiveColor{Light: "#0AF", Dark: "#0AF"})

	statusStyle = statusBannerStyle.Render

	errorBannerStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#F55")).
				Bold(true)

	errorStyle = errorBannerStyle.Render

	focusedStyle = lipgloss.NewStyle().
			Bold(true).
			Background(lipgloss.Color("#0AF")).
			Foreground(lipgloss.Color("#FFF"))

	noStyle = lipgloss.NewStyle()

	selectedItemStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#0AF")).
				Background(lipgloss.Color("#224")).
				Padding(0, 0)

	confirmStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("#F55")).
			Padding(1, 2)

	dimmedColor = lipgloss.Color("#767676")

	placeholderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#767676")).
				Padding(1, 2)

	cursorStyle = focusedStyle.Copy()

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#cba6f7"))

	focusedButton = focusedStyle.Copy().Render("[ Submit ]")
	blurredButton = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#767676")).
			Render("[ Submit ]")
)
