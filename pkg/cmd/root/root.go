package root

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Paintersrp/pad/internal/state"
	"github.com/Paintersrp/pad/internal/tui/app"
	"github.com/Paintersrp/pad/pkg/cmd/auth"
	deletecmd "github.com/Paintersrp/pad/pkg/cmd/delete"
	"github.com/Paintersrp/pad/pkg/cmd/history"
	"github.com/Paintersrp/pad/pkg/cmd/link"
	"github.com/Paintersrp/pad/pkg/cmd/open"
	"github.com/Paintersrp/pad/pkg/cmd/save"
	"github.com/Paintersrp/pad/pkg/cmd/status"
)

var endpointOverride string

func NewCmdRoot(s *state.State) (*cobra.Command, error) {
	cmd := &cobra.Command{
		Use:   "pad",
		Short: "A terminal client for your pad notes.",
		Long: heredoc.Doc(`
			pad keeps your notes on a pad server and gives you a terminal UI
			to write, browse, search, pin, and delete them.

			Running pad with no arguments opens the interactive UI.
		`),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if endpointOverride != "" {
				return s.ChangeEndpoint(endpointOverride)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(s)
		},
	}

	cmd.PersistentFlags().
		StringVarP(
			&endpointOverride,
			"endpoint",
			"e",
			"",
			"Server to talk to for this invocation (persisted).",
		)
	viper.BindPFlag("endpoint", cmd.PersistentFlags().Lookup("endpoint"))

	cmd.AddCommand(
		auth.NewCmdAuth(s),
		save.NewCmdSave(s),
		history.NewCmdHistory(s),
		deletecmd.NewCmdDelete(s),
		open.NewCmdOpen(s),
		link.NewCmdLink(s),
		status.NewCmdStatus(s),
	)

	return cmd, nil
}
