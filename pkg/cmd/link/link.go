package link

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/pad/internal/state"
)

func NewCmdLink(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "link",
		Short: "Link your Google Drive for note backups",
		Long: heredoc.Doc(`
			Ask the server for a Google authorization URL. Open it in a
			browser to let the server back your notes up to Drive. The URL
			is copied to the clipboard when possible.
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := s.Client.DriveLinkStart(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Println("Open this URL in your browser to link Google Drive:")
			fmt.Println()
			fmt.Println(" ", res.AuthURL)

			if err := clipboard.WriteAll(res.AuthURL); err == nil {
				fmt.Println()
				fmt.Println("(copied to clipboard)")
			}
			return nil
		},
	}

	return cmd
}
