package main

import (
	"os"

	"github.com/spf13/cobra"

	clilib "github.com/gitswitch/gitswitch/internal/cli"
	"github.com/gitswitch/gitswitch/pkg/gitswitch/output"
)

// GlobalOptions holds the global configuration flags
type GlobalOptions struct {
	ConfigPath string
	Silent     bool
}

// globalOpts is the shared global options instance
var globalOpts = &GlobalOptions{}

// createCLI creates a CLI instance from the global options
func createCLI() (*clilib.CLI, error) {
	return clilib.NewCLI(globalOpts.ConfigPath, globalOpts.Silent, os.Stdout, os.Stderr)
}

// mustCreateCLI creates a CLI instance or exits with the error's exit code
func mustCreateCLI() *clilib.CLI {
	cli, err := createCLI()
	if err != nil {
		os.Exit(output.PrintError(os.Stderr, err).Int())
	}
	return cli
}

// exitWithError prints an error and exits with the appropriate code
func exitWithError(err *output.Error) {
	if err != nil {
		os.Exit(output.PrintError(os.Stderr, err).Int())
	}
}

// completeUsernames offers registered usernames for the first argument
func completeUsernames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	cli, err := clilib.NewCLI(globalOpts.ConfigPath, true, cmd.OutOrStdout(), cmd.ErrOrStderr())
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return cli.Usernames(), cobra.ShellCompDirectiveNoFileComp
}
