package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/jmcleod/vaultphrase/derive"
	"github.com/jmcleod/vaultphrase/wordlist"
)

// output pairs a derivation label with its display title.
type output struct {
	label derive.Label
	title string
}

// runDerivation is the shared pipeline behind reveal and derive: confirm test
// mode, load the wordlist, prompt for the root phrase, derive one passphrase
// per requested output, then offer to clear the screen. Sensitive buffers are
// owned and wiped by the derive.Session.
func runDerivation(outputs []output, recoveryKit bool) error {
	scheme := derive.SchemeV1()
	params := scheme.Production
	if testMode {
		fmt.Printf("\x1b[33mTEST MODE — weak Argon2id parameters, not for real secrets\x1b[0m\n")
		if !confirmTestMode() {
			return fmt.Errorf("test mode not confirmed; remove --test for secure derivation")
		}
		params = scheme.Test
	}

	wl, err := openWordlist()
	if err != nil {
		return err
	}
	fmt.Printf("Wordlist: %s (%d words) [%s]\n\n", wl.Name(), wl.Size(), shortFingerprint(wl.Fingerprint()))

	rootPhrase, err := promptRootPhrase()
	if err != nil {
		return err
	}

	fmt.Print("Deriving master key...")
	session, err := derive.NewSession(rootPhrase, scheme, params)
	if err != nil {
		fmt.Println()
		return err
	}
	defer session.Destroy()
	fmt.Println(" done")

	fmt.Printf("Root phrase strength: %s\n", session.Strength())
	if session.Strength() == derive.StrengthWeak {
		fmt.Printf("\x1b[33mWarning: weak root phrase (aim for 12+ words, 60+ characters)\x1b[0m\n")
	}

	fmt.Printf("\nDerived passphrases (scheme %s):\n", scheme.Version)
	for _, out := range outputs {
		phrase, err := session.Passphrase(out.label, wl, wordCount, delimiter)
		if err != nil {
			return err
		}
		fmt.Printf("\n  \x1b[1m%s\x1b[0m\n  %s\n", out.title, phrase)
	}

	fmt.Println("\nVerify by running again with the same root phrase.")

	if recoveryKit {
		printRecoveryKit(os.Stdout, scheme, params, wl)
	}

	waitAndClearScreen()
	return nil
}

func openWordlist() (*wordlist.Wordlist, error) {
	if wordlistPath == "" {
		return wordlist.Builtin(), nil
	}
	return wordlist.Load(wordlistPath)
}

func confirmTestMode() bool {
	fmt.Print("  Type 'test' to confirm: ")
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	return strings.ToLower(strings.TrimSpace(line)) == "test"
}

// shortFingerprint abbreviates a hex fingerprint for inline display. The full
// value is available from the wordlist command.
func shortFingerprint(fp string) string {
	if len(fp) <= 16 {
		return fp
	}
	return fp[:16] + "…"
}

// waitAndClearScreen waits for ENTER and clears the screen and scrollback so
// derived phrases do not linger in the terminal. Skipped silently when stdin
// is closed (non-interactive use).
func waitAndClearScreen() {
	fmt.Print("\nPress ENTER to clear screen...")
	if _, err := bufio.NewReader(os.Stdin).ReadString('\n'); err != nil {
		fmt.Println()
		return
	}
	fmt.Print("\x1b[2J\x1b[3J\x1b[H")
}
