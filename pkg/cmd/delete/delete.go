package delete

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/erikgeiser/promptkit/confirmation"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/pad/internal/state"
)

func NewCmdDelete(s *state.State) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "delete <id>...",
		Aliases: []string{"rm", "d"},
		Short:   "Delete notes from the server",
		Long: heredoc.Doc(`
			Delete one or more notes by id. Ids come from 'pad history'.
			Deletion is permanent and asks for confirmation unless --force
			is given.
		`),
		Example: heredoc.Doc(`
			pad delete 3f2a9c.md
			pad delete --force 3f2a9c.md 87be01.md
		`),
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				input := confirmation.New(
					fmt.Sprintf("Delete %d note(s)? This cannot be undone.", len(args)),
					confirmation.No,
				)
				confirmed, err := input.RunPrompt()
				if err != nil {
					return err
				}
				if !confirmed {
					fmt.Println("Cancelled.")
					return nil
				}
			}

			msg, err := s.Client.Delete(cmd.Context(), args)
			if err != nil {
				return err
			}

			for _, id := range args {
				if s.Pins.Pinned(id) {
					if err := s.Pins.Toggle(id); err != nil {
						return fmt.Errorf("failed to unpin deleted note: %w", err)
					}
				}
			}

			if msg == "" {
				msg = fmt.Sprintf("Deleted %d note(s)", len(args))
			}
			fmt.Println(msg)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip the confirmation prompt.")

	return cmd
}
