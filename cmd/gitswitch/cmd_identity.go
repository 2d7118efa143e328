package main

import (
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add USERNAME EMAIL SSH_KEY_PATH",
	Short: "Add or update an identity",
	Long: `Register an identity, or update the identity with the same username.

The SSH key file is hashed and the hash is recorded. Adding an existing
identity again records the current content of its key file, which is how a
replaced key is trusted again.`,
	Args: cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		cli := mustCreateCLI()
		exitWithError(cli.Add(args[0], args[1], args[2]))
	},
}

var removeYes bool

var removeCmd = &cobra.Command{
	Use:               "remove USERNAME",
	Aliases:           []string{"rm"},
	Short:             "Remove an identity",
	Long:              `Remove an identity. The git and ssh config files are left unchanged.`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeUsernames,
	Run: func(cmd *cobra.Command, args []string) {
		cli := mustCreateCLI()
		exitWithError(cli.Remove(args[0], removeYes))
	},
}

var listJSON bool

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List identities",
	Long:    `List registered identities. The current identity is marked with '*'.`,
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cli := mustCreateCLI()
		exitWithError(cli.List(listJSON))
	},
}

var useCmd = &cobra.Command{
	Use:   "use USERNAME",
	Short: "Activate an identity",
	Long: `Activate an identity: write its name and email to the global git config and
its key to the ssh config.

Fails without changing anything if the key file changed since the identity
was added.`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeUsernames,
	Run: func(cmd *cobra.Command, args []string) {
		cli := mustCreateCLI()
		exitWithError(cli.Use(args[0]))
	},
}

var currentJSON bool

var currentCmd = &cobra.Command{
	Use:   "current",
	Short: "Show the current identity",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cli := mustCreateCLI()
		exitWithError(cli.Current(currentJSON))
	},
}

func init() {
	removeCmd.Flags().BoolVarP(&removeYes, "yes", "y", false, "Do not ask for confirmation")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output as JSON")
	currentCmd.Flags().BoolVar(&currentJSON, "json", false, "Output as JSON")
}
