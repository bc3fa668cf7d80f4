package cmd

import (
	"github.com/jmcleod/vaultphrase/derive"
	"github.com/spf13/cobra"
)

var revealRecoveryKit bool

var revealCmd = &cobra.Command{
	Use:   "reveal",
	Short: "Derive and display the HOT and COLD passphrases",
	Long: `Derives the two reserved passphrases from your root phrase:
HOT for the daily vault and COLD for the offline vault.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDerivation([]output{
			{label: derive.LabelHot(), title: "HOT (daily vault)"},
			{label: derive.LabelCold(), title: "COLD (offline vault)"},
		}, revealRecoveryKit)
	},
}

func init() {
	revealCmd.Flags().BoolVar(&revealRecoveryKit, "recovery-kit", false, "print the recovery kit after the passphrases")
	rootCmd.AddCommand(revealCmd)
}
