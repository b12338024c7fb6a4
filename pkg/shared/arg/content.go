package arg

import "strings"

// HandleContent joins the positional arguments into the note body.
func HandleContent(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}
