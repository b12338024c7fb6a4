package auth

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/pad/internal/state"
	"github.com/Paintersrp/pad/pkg/cmd/auth/login"
	"github.com/Paintersrp/pad/pkg/cmd/auth/logout"
	"github.com/Paintersrp/pad/pkg/cmd/auth/register"
)

func NewCmdAuth(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "auth",
		Aliases: []string{"a"},
		Short:   "Manage your pad account session",
		Long: heredoc.Doc(`
			Log in, register, or log out of the pad server configured in
			~/.pad/cfg.yaml.
		`),
		Example: heredoc.Doc(`
			pad auth login
			pad auth register
			pad auth logout
		`),
	}

	cmd.AddCommand(
		login.NewCmdLogin(s),
		register.NewCmdRegister(s),
		logout.NewCmdLogout(s),
	)

	return cmd
}
