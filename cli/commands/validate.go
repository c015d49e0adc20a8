package commands

import (
	"github.com/spf13/cobra"

	"github.com/planguard/planguard/cli/internal/config"
	"github.com/planguard/planguard/cli/internal/ui"
)

func newValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [plan-file]",
		Short: "Validate a migration plan",
		Long:  "Parse a plan file and report syntax or arity errors without linting it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			return runValidate(resolvePlanPath(cfg, args))
		},
	}

	return cmd
}

func runValidate(path string) error {
	plan, _, err := loadPlan(path)
	if err != nil {
		return err
	}

	ui.PrintSuccess("Plan %q is valid (%d operations)", plan.Name, len(plan.Operations))
	return nil
}
