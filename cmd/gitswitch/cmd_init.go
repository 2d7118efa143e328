package main

import (
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration",
	Long:  `Initialize the gitswitch configuration file.`,
}

var initConfigForce bool

var initConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Initialize configuration file",
	Long: `Write a configuration file holding the locations of the git config, the ssh
config and the identity store.

By default, creates a configuration file at the XDG config location.
Use -c to specify a custom path.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cli := mustCreateCLI()
		exitWithError(cli.InitConfig(initConfigForce))
	},
}

func init() {
	initConfigCmd.Flags().BoolVarP(&initConfigForce, "force", "f", false, "Overwrite an existing config file")
	initCmd.AddCommand(initConfigCmd)
}
