package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	wordlistPath string
	wordCount    int
	delimiter    string
	testMode     bool
)

var rootCmd = &cobra.Command{
	Use:   "vaultphrase",
	Short: "VaultPhrase derives independent vault passphrases from one root phrase",
	Long: `Deterministic, offline passphrase derivation: one secret root phrase yields
independent, memorable passphrases for a daily (HOT) vault, an offline (COLD)
vault, or any custom label. The same root phrase always reproduces the same
outputs; nothing is stored and no network is used.
Complete documentation is available at https://github.com/jmcleod/vaultphrase`,
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&wordlistPath, "wordlist", "", "path to a wordlist file (default: built-in BIP-39 English)")
	rootCmd.PersistentFlags().IntVar(&wordCount, "words", 6, "words per derived passphrase")
	rootCmd.PersistentFlags().StringVar(&delimiter, "delimiter", "-", "delimiter between words")
	rootCmd.PersistentFlags().BoolVar(&testMode, "test", false, "fast Argon2id parameters (INSECURE, testing only)")
}
