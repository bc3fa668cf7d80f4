package cmd

import (
	"fmt"

	"github.com/jmcleod/vaultphrase/derive"
	"github.com/spf13/cobra"
)

// Version is the tool version, distinct from the derivation scheme version:
// the tool may change freely, scheme outputs may not.
const Version = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and derivation scheme information",
	Run: func(cmd *cobra.Command, args []string) {
		printBanner()
		scheme := derive.SchemeV1()
		fmt.Printf("  Scheme: %s | KDF: Argon2id (%d MiB, %d iter) | HMAC-SHA256\n",
			scheme.Version, scheme.Production.MemoryKiB/1024, scheme.Production.Time)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
