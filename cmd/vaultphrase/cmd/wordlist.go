package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var wordlistCmd = &cobra.Command{
	Use:   "wordlist",
	Short: "Show wordlist details for manual verification",
	Long: `Prints the wordlist name, size and full SHA-256 fingerprint so it can be
checked against a published value before any passphrase is revealed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		wl, err := openWordlist()
		if err != nil {
			return err
		}
		fmt.Printf("Wordlist: %s\n", wl.Name())
		fmt.Printf("Words:    %d\n", wl.Size())
		fmt.Printf("SHA-256:  %s\n", wl.Fingerprint())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(wordlistCmd)
}
