package cmd

import (
	"github.com/jmcleod/vaultphrase/derive"
	"github.com/spf13/cobra"
)

var deriveRecoveryKit bool

var deriveCmd = &cobra.Command{
	Use:   "derive LABEL",
	Short: "Derive a passphrase for a custom label",
	Long: `Derives a passphrase for an arbitrary label (e.g. 'ssh', 'gpg').
Custom labels live in their own namespace and can never collide with the
reserved HOT/COLD labels.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		label, err := derive.CustomLabel(args[0])
		if err != nil {
			return err
		}
		return runDerivation([]output{
			{label: label, title: args[0]},
		}, deriveRecoveryKit)
	},
}

func init() {
	deriveCmd.Flags().BoolVar(&deriveRecoveryKit, "recovery-kit", false, "print the recovery kit after the passphrase")
	rootCmd.AddCommand(deriveCmd)
}
