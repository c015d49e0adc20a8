package commands

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/planguard/planguard/cli/internal/config"
	"github.com/planguard/planguard/cli/internal/ui"
	"github.com/planguard/planguard/plan/formatting"
)

func newFmtCommand() *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:     "fmt [plan-file]",
		Aliases: []string{"format"},
		Short:   "Format a migration plan",
		Long:    "Rewrite a plan file in canonical form with aligned operation kinds",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			return runFmt(resolvePlanPath(cfg, args), cfg.IndentWidth, check)
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "Exit non-zero if the file is not canonically formatted, without rewriting it")

	return cmd
}

func runFmt(path string, indentWidth int, check bool) error {
	_, text, err := loadPlan(path)
	if err != nil {
		return err
	}

	formatted, err := formatting.Reformat(text, indentWidth)
	if err != nil {
		return &exitError{Code: ExitParseError, Err: err}
	}

	if check {
		if formatted != text {
			return &exitError{Code: ExitFail, Err: fmt.Errorf("%s is not canonically formatted", path)}
		}
		ui.PrintSuccess("%s is canonically formatted", path)
		return nil
	}

	if formatted == text {
		ui.PrintSuccess("%s already formatted", path)
		return nil
	}

	if err := afero.WriteFile(config.AppFs, path, []byte(formatted), 0644); err != nil {
		return fmt.Errorf("failed to write formatted plan: %w", err)
	}

	ui.PrintSuccess("Formatted %s", path)
	return nil
}
