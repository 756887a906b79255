// Package cli implements the surveyor command-line interface.
package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	verbose   bool
}

var flags rootFlags

// NewRootCmd creates the top-level "surveyor" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "surveyor",
		Short: "A compliance surveyor for design-model graphs",
		Long: "Surveyor traverses a design-model graph, classifies configured\n" +
			"parameters against compliance rules, and renders the aggregated\n" +
			"results as a report.",
		// Do not print usage on errors returned by subcommands.
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flags.configDir, "config-dir", "", "configuration directory (default: .surveyor)")
	root.PersistentFlags().BoolVar(&flags.verbose, "verbose", false, "enable debug logging")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd())
	root.AddCommand(newCheckCmd())

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	os.Exit(exitCode(NewRootCmd().Execute()))
}

// exitCode maps a command result to the process exit code.
func exitCode(err error) int {
	if err != nil {
		return exitUserError
	}
	return exitSuccess
}
