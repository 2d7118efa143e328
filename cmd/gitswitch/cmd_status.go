package main

import (
	"github.com/spf13/cobra"
)

var statusJSON bool

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the effective git identity",
	Long: `Show user.name and user.email as git reads them from the global git config,
and whether they still match the current identity.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cli := mustCreateCLI()
		exitWithError(cli.Status(statusJSON))
	},
}

func init() {
	statusCmd.Flags().BoolVar(&statusJSON, "json", false, "Output as JSON")
}
