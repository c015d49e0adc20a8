// Package commands implements the planguard CLI commands.
package commands

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/planguard/planguard/cli/internal/ui"
	"github.com/planguard/planguard/internal/debug"
)

// Exit codes of the lint surface. A FAIL verdict is a successful run that
// found an unsafe plan; only unparseable input is an input error.
const (
	ExitPass       = 0
	ExitFail       = 1
	ExitParseError = 2
)

// exitError carries a process exit status through cobra's error return.
// A nil Err means the command already wrote its own output.
type exitError struct {
	Code int
	Err  error
}

func (e *exitError) Error() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

func (e *exitError) Unwrap() error {
	return e.Err
}

var debugFlag bool

var rootCmd = &cobra.Command{
	Use:   "planguard",
	Short: "Migration plan safety linter",
	Long: `planguard lints proposed database schema-migration plans.

Every operation in a plan is classified as SAFE, NEEDS_DATA_MIGRATION or
DESTRUCTIVE, and the lint fails when a destructive operation is present
without an explicit backup acknowledgment.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		debug.Init(debugFlag || os.Getenv("PLANGUARD_DEBUG") != "")
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(newCheckCommand())
	rootCmd.AddCommand(newValidateCommand())
	rootCmd.AddCommand(newFmtCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newWatchCommand())
	rootCmd.AddCommand(newVersionCommand())
}

// Execute runs the CLI and returns the process exit status.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		var exit *exitError
		if errors.As(err, &exit) {
			if exit.Err != nil {
				ui.PrintError("%v", exit.Err)
			}
			return exit.Code
		}
		ui.PrintError("%v", err)
		return 1
	}
	return ExitPass
}
