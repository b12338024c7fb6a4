package history

import (
	"fmt"
	"sort"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/pad/internal/notes"
	"github.com/Paintersrp/pad/internal/state"
)

func NewCmdHistory(s *state.State) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:     "history",
		Aliases: []string{"h", "ls"},
		Short:   "List your notes",
		Long: heredoc.Doc(`
			Print your note history: pinned notes first, then newest
			first. Pinned notes are marked with *.
		`),
		Example: heredoc.Doc(`
			pad history
			pad history --limit 10
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := s.Client.History(cmd.Context())
			if err != nil {
				return err
			}

			if len(list) == 0 {
				fmt.Println("No notes yet.")
				return nil
			}

			orderNotes(list, s.Pins.Pinned)
			if limit > 0 && limit < len(list) {
				list = list[:limit]
			}
			for _, n := range list {
				fmt.Println(formatRow(n, s.Pins.Pinned(n.ID)))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Show at most this many notes.")

	return cmd
}

// orderNotes sorts pinned notes first, then by most recently updated,
// matching the history view. Must run before any --limit slicing so a
// pinned note is never cut off.
func orderNotes(list []notes.Note, pinned func(string) bool) {
	sort.SliceStable(list, func(i, j int) bool {
		pi, pj := pinned(list[i].ID), pinned(list[j].ID)
		if pi != pj {
			return pi
		}
		return list[i].UpdatedAt.After(list[j].UpdatedAt)
	})
}

func formatRow(n notes.Note, pinned bool) string {
	marker := " "
	if pinned {
		marker = "*"
	}

	title := n.Title
	if title == "" {
		title = "Untitled"
	}

	updated := "unknown"
	if !n.UpdatedAt.IsZero() {
		updated = n.UpdatedAt.Format("2006-01-02 15:04")
	}

	drive := ""
	if n.Linked() {
		drive = "  [drive]"
	}

	return fmt.Sprintf("%s %-40s %s  %s%s", marker, truncate(title, 40), updated, n.ID, drive)
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return strings.TrimSpace(string(r[:max-1])) + "…"
}
