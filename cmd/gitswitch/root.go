package main

import (
	"github.com/spf13/cobra"
)

var (
	version = "unknown"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "gitswitch",
	Short: "Switch between git and ssh identities",
	Long: `gitswitch: switch between git and ssh identities.

Register identities made of a name, an email address and an SSH key, then
activate one of them. Activation rewrites the [user] section of the global
git config and the IdentityFile of the "Host *" block in the ssh config.
An identity is only activated while its key file still has the content it
had when it was added.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		// If no subcommand, show help
		_ = cmd.Help()
	},
}

func init() {
	// Persistent flags available to all commands
	rootCmd.PersistentFlags().StringVarP(&globalOpts.ConfigPath, "config", "c", "", "Path to config file")
	rootCmd.PersistentFlags().BoolVarP(&globalOpts.Silent, "silent", "s", false, "Silent mode (suppress warnings)")

	// Add subcommands
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(useCmd)
	rootCmd.AddCommand(currentCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(completionCmd)
}
