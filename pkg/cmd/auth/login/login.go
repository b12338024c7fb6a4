package login

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/pad/internal/state"
	"github.com/Paintersrp/pad/pkg/cmd/auth/prompt"
)

func NewCmdLogin(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "login",
		Aliases: []string{"l"},
		Short:   "Log in to your account",
		Long: heredoc.Doc(`
			Log in with your email and password. On success the session token
			is stored in ~/.pad/cfg.yaml and used by every other command.
		`),
		Example: heredoc.Doc(`
			pad auth login
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			if s.Config.HasToken() {
				fmt.Println(
					"You are already logged in. Run 'pad auth logout' first to change accounts.",
				)
				return nil
			}

			email, err := prompt.Email()
			if err != nil {
				return err
			}
			password, err := prompt.Password("Password")
			if err != nil {
				return err
			}

			res, err := s.Client.Login(cmd.Context(), email, password)
			if err != nil {
				return fmt.Errorf("login failed: %w", err)
			}
			if err := s.EstablishSession(res.Token, email); err != nil {
				return fmt.Errorf("failed to store session: %w", err)
			}

			fmt.Println("Logged in as", email)
			return nil
		},
	}

	return cmd
}
