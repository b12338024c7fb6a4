package register

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/pad/internal/state"
	"github.com/Paintersrp/pad/pkg/cmd/auth/prompt"
)

func NewCmdRegister(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "register",
		Aliases: []string{"r"},
		Short:   "Create a new account",
		Long: heredoc.Doc(`
			Create an account on the configured pad server, then log in
			with 'pad auth login'.
		`),
		Example: heredoc.Doc(`
			pad auth register
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			if s.Config.HasToken() {
				fmt.Println(
					"You are already logged in. Run 'pad auth logout' first to create another account.",
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
			confirm, err := prompt.Password("Confirm Password")
			if err != nil {
				return err
			}
			if password != confirm {
				return fmt.Errorf("passwords do not match")
			}

			if _, err := s.Client.Register(cmd.Context(), email, password); err != nil {
				return fmt.Errorf("registration failed: %w", err)
			}

			fmt.Println("Account created. Log in with 'pad auth login'.")
			return nil
		},
	}

	return cmd
}
