package save

import (
	"fmt"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/pad/internal/state"
	"github.com/Paintersrp/pad/pkg/shared/arg"
	"github.com/Paintersrp/pad/pkg/shared/flags"
)

func NewCmdSave(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "save [content]",
		Aliases: []string{"s"},
		Short:   "Save a new note without opening the UI",
		Long: heredoc.Doc(`
			Save the given content as a new note. With --paste the content
			comes from the system clipboard instead of the arguments.
		`),
		Example: heredoc.Doc(`
			pad save "pick up milk"
			pad save --title "Groceries" "milk, eggs"
			pad save --paste --title "From clipboard"
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			title, err := flags.HandleTitle(cmd)
			if err != nil {
				return err
			}
			paste, err := flags.HandlePaste(cmd)
			if err != nil {
				return err
			}

			content := arg.HandleContent(args)
			if paste {
				clip, err := clipboard.ReadAll()
				if err != nil {
					return fmt.Errorf("failed to read clipboard: %w", err)
				}
				content = clip
			}

			if strings.TrimSpace(title) == "" {
				title = deriveTitle(content)
			}
			if title == "" {
				return fmt.Errorf("nothing to save")
			}

			res, err := s.Client.Save(cmd.Context(), "", title, content)
			if err != nil {
				return err
			}

			msg := res.Message
			if msg == "" {
				msg = "Note saved"
			}
			fmt.Println(msg)
			return nil
		},
	}

	flags.AddTitle(cmd)
	flags.AddPaste(cmd)

	return cmd
}

// deriveTitle fills the required title from the content's first line
// when --title is not given.
func deriveTitle(content string) string {
	line := strings.TrimSpace(content)
	if idx := strings.IndexByte(line, '\n'); idx >= 0 {
		line = strings.TrimSpace(line[:idx])
	}
	if r := []rune(line); len(r) > 60 {
		line = strings.TrimSpace(string(r[:60]))
	}
	return line
}
