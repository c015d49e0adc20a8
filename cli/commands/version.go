package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/planguard/planguard/cli/internal/update"
	"github.com/planguard/planguard/cli/internal/version"
	"github.com/planguard/planguard/internal/debug"
)

func newVersionCommand() *cobra.Command {
	var full bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.Get()
			if full {
				fmt.Println(info.FullString())
			} else {
				fmt.Println(info.String())
			}

			if err := update.CheckForUpdates(info.Version); err != nil {
				debug.Warn("update check failed", "error", err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&full, "full", false, "Print build details")

	return cmd
}
