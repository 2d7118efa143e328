package main

import (
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the key files of all identities",
	Long: `Re-hash the SSH key file of every identity and report the ones that changed
or can no longer be read.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cli := mustCreateCLI()
		exitWithError(cli.Validate())
	},
}
