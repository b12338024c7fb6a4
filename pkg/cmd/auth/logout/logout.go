package logout

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/pad/internal/state"
)

func NewCmdLogout(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Log out of your account",
		Long: heredoc.Doc(`
			Drop the stored session token. Pinned notes belong to the
			session and are cleared with it.
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !s.Config.HasToken() {
				fmt.Println("You are not logged in.")
				return nil
			}
			if err := s.Logout(); err != nil {
				return err
			}
			fmt.Println("Logged out.")
			return nil
		},
	}

	return cmd
}
