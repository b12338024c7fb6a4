package status

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/pad/internal/session"
	"github.com/Paintersrp/pad/internal/state"
)

func NewCmdStatus(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "status",
		Aliases: []string{"st"},
		Short:   "Show server and session status",
		Long: heredoc.Doc(`
			Check that the configured server is reachable and report who
			you are logged in as, whether Drive is linked, and when the
			session token expires.
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("Endpoint:", s.Client.Endpoint())

			health, err := s.Client.Health(cmd.Context())
			if err != nil {
				fmt.Println("Server:  ", "unreachable:", err)
			} else {
				fmt.Println("Server:  ", health.Status)
			}

			if !s.Config.HasToken() {
				fmt.Println("Session: ", "not logged in")
				return nil
			}

			profile, err := s.Client.Me(cmd.Context())
			if err != nil {
				fmt.Println("Session: ", "invalid:", err)
				return nil
			}

			fmt.Println("Account: ", profile.Email)
			if profile.DriveLinked {
				fmt.Println("Drive:   ", "linked")
			} else {
				fmt.Println("Drive:   ", "not linked (run 'pad link')")
			}

			if expiry, ok := session.TokenExpiry(s.Session.Token); ok {
				fmt.Println("Expires: ", expiry.Local().Format("2006-01-02 15:04"))
			}
			return nil
		},
	}

	return cmd
}
