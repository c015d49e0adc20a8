package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/planguard/planguard/cli/internal/config"
	"github.com/planguard/planguard/cli/internal/ui"
	"github.com/planguard/planguard/cli/internal/watch"
)

func newWatchCommand() *cobra.Command {
	var opts checkOptions

	cmd := &cobra.Command{
		Use:   "watch [plan-file]",
		Short: "Relint a plan on every change",
		Long:  "Watch a plan file and rerun the lint whenever it changes",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			if opts.format == "" {
				opts.format = cfg.Format
			}
			if opts.databaseURL == "" {
				opts.databaseURL = cfg.DatabaseURL
			}
			return runWatch(resolvePlanPath(cfg, args), opts)
		},
	}

	cmd.Flags().BoolVar(&opts.backupConfirmed, "backup-confirmed", false, "Acknowledge that a current backup exists for destructive operations")
	cmd.Flags().StringVar(&opts.format, "format", "", "Report format: text or markdown")
	cmd.Flags().StringVar(&opts.databaseURL, "database-url", "", "Cross-check plan targets against a live database")

	return cmd
}

func runWatch(path string, opts checkOptions) error {
	relint := func() error {
		// A FAIL or parse-error result must not stop the watch loop;
		// report it and keep watching.
		if err := runCheck(path, opts); err != nil {
			if exit, ok := err.(*exitError); ok {
				if exit.Err != nil {
					ui.PrintError("%v", exit.Err)
				}
				return nil
			}
			return err
		}
		return nil
	}

	watcher, err := watch.NewWatcher(path, relint)
	if err != nil {
		return err
	}
	defer watcher.Stop()

	if err := watcher.Start(); err != nil {
		return err
	}
	ui.PrintInfo("Watching %s (ctrl-c to stop)", path)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig

	return nil
}
