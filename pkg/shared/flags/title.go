package flags

import (
	"github.com/spf13/cobra"
)

func AddTitle(cmd *cobra.Command) {
	cmd.Flags().
		StringP("title", "t", "", "Title for the new note.")
}

func HandleTitle(cmd *cobra.Command) (string, error) {
	return cmd.Flags().GetString("title")
}
