package open

import (
	"fmt"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/pad/internal/fzf"
	"github.com/Paintersrp/pad/internal/state"
)

func NewCmdOpen(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "open [query]",
		Aliases: []string{"o"},
		Short:   "Fuzzy find a note and print it",
		Long: heredoc.Doc(`
			Fuzzy find across your notes and print the selected one,
			rendered as markdown. An optional query seeds the finder.
		`),
		Example: heredoc.Doc(`
			pad open
			pad open groceries
		`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := s.Client.History(cmd.Context())
			if err != nil {
				return err
			}
			if len(list) == 0 {
				fmt.Println("No notes yet.")
				return nil
			}

			query := ""
			if len(args) > 0 {
				query = args[0]
			}

			finder := fzf.NewFuzzyFinder(list, "Select a note...")
			note, err := finder.Run(query)
			if err != nil {
				return err
			}

			title := note.Title
			if title == "" {
				title = "Untitled"
			}
			fmt.Println("#", title)
			fmt.Println(renderContent(note.Content))
			return nil
		},
	}

	return cmd
}

func renderContent(content string) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dracula"),
		glamour.WithWordWrap(100),
		glamour.WithColorProfile(termenv.ANSI256),
	)
	if err != nil {
		return content
	}

	out, err := r.Render(content)
	if err != nil {
		return content
	}
	return strings.TrimRight(out, "\n")
}
