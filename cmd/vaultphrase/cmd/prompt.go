package cmd

import (
	"fmt"
	"os"
	"syscall"

	"golang.org/x/term"
)

// promptRootPhrase reads the root phrase with echo disabled. The returned
// bytes are owned by the caller, which must hand them to a derive.Session
// (the session wipes them).
func promptRootPhrase() ([]byte, error) {
	fmt.Fprint(os.Stderr, "Enter your root phrase (input hidden): ")
	phrase, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return nil, fmt.Errorf("reading root phrase: %w", err)
	}
	return phrase, nil
}
