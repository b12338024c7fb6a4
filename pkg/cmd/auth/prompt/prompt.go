// Package prompt reads credentials from the terminal for the non-TUI
// auth commands.
package prompt

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"syscall"

	"golang.org/x/term"
)

func Email() (string, error) {
	fmt.Print("Email: ")
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read email: %w", err)
	}

	email := strings.TrimSpace(line)
	if email == "" {
		return "", fmt.Errorf("email is required")
	}
	return email, nil
}

// Password reads without echo. The prompt label lets register ask twice.
func Password(label string) (string, error) {
	fmt.Printf("%s: ", label)
	raw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	password := string(raw)
	if password == "" {
		return "", fmt.Errorf("password is required")
	}
	return password, nil
}
