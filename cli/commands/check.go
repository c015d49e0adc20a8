package commands

import (
	"context"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/planguard/planguard/cli/internal/config"
	"github.com/planguard/planguard/cli/internal/ui"
	"github.com/planguard/planguard/internal/debug"
	"github.com/planguard/planguard/plan/ast"
	"github.com/planguard/planguard/plan/classify"
	"github.com/planguard/planguard/plan/diagnostics"
	"github.com/planguard/planguard/plan/report"
	"github.com/planguard/planguard/verify"
)

type checkOptions struct {
	backupConfirmed bool
	format          string
	interactive     bool
	databaseURL     string
	quiet           bool
}

func newCheckCommand() *cobra.Command {
	var opts checkOptions

	cmd := &cobra.Command{
		Use:   "check [plan-file]",
		Short: "Lint a migration plan",
		Long: `Classify every operation of a migration plan and report a verdict.

The lint passes unless the plan contains a destructive operation without a
backup acknowledgment (--backup-confirmed). Exit status: 0 on PASS, 1 on
FAIL, 2 on parse error.`,
		Args: cobra.MaximumNArgs(1),
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
			return runCheck(resolvePlanPath(cfg, args), opts)
		},
	}

	cmd.Flags().BoolVar(&opts.backupConfirmed, "backup-confirmed", false, "Acknowledge that a current backup exists for destructive operations")
	cmd.Flags().StringVar(&opts.format, "format", "", "Report format: text or markdown")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "Prompt for backup acknowledgment when destructive operations are found")
	cmd.Flags().StringVar(&opts.databaseURL, "database-url", "", "Cross-check plan targets against a live database")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "Plain, unstyled output")

	return cmd
}

func runCheck(path string, opts checkOptions) error {
	plan, _, err := loadPlan(path)
	if err != nil {
		return err
	}
	debug.Debug("parsed plan", "name", plan.Name, "operations", len(plan.Operations))

	r := report.New(plan, opts.backupConfirmed)

	if opts.databaseURL != "" {
		r.AddWarnings(verifyAgainstDatabase(plan, opts.databaseURL))
	}

	if opts.interactive && !r.BackupConfirmed && r.DestructiveCount() > 0 && ui.IsInteractive() {
		confirmed, err := ui.ConfirmBackup(r.DestructiveCount())
		if err == nil {
			r.BackupConfirmed = confirmed
		}
	}

	if err := renderReport(r, opts); err != nil {
		return err
	}

	if r.Verdict() == report.Fail {
		return &exitError{Code: ExitFail}
	}
	return nil
}

// verifyAgainstDatabase introspects the target database and returns one
// warning per plan target that does not line up with the live schema.
// Connection or introspection failures degrade to a single warning; the
// verdict never depends on database availability.
func verifyAgainstDatabase(plan *ast.Plan, databaseURL string) []diagnostics.PlanWarning {
	db, err := verify.Open(databaseURL)
	if err != nil {
		debug.Warn("database verification skipped", "error", err)
		return []diagnostics.PlanWarning{diagnostics.NewVerifySkippedWarning(err.Error(), diagnostics.EmptySpan())}
	}
	defer db.Close()

	schema, err := db.Introspect(context.Background())
	if err != nil {
		debug.Warn("database introspection failed", "error", err)
		return []diagnostics.PlanWarning{diagnostics.NewVerifySkippedWarning(err.Error(), diagnostics.EmptySpan())}
	}

	return verify.Check(plan, schema)
}

func renderReport(r *report.Report, opts checkOptions) error {
	if opts.quiet {
		return r.WriteText(os.Stdout)
	}

	switch opts.format {
	case "markdown":
		return ui.PrintMarkdown(r.Markdown())
	default:
		renderStyledReport(r)
		return nil
	}
}

func renderStyledReport(r *report.Report) {
	ui.PrintInfo("Plan %q (%d operations)", r.Plan.Name, len(r.Operations))

	rows := make([][]string, 0, len(r.Operations))
	for i, op := range r.Operations {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			op.Classification.String(),
			op.Operation.String(),
			classify.Advice(op.Classification),
		})
	}
	ui.PrintTable([]string{"#", "RISK", "OPERATION", "ADVICE"}, rows)

	for _, warn := range r.Warnings {
		ui.PrintWarning("%s", warn.Message())
	}

	if r.Verdict() == report.Pass {
		ui.PrintSuccess("PASS (%s)", r.Summary())
	} else {
		ui.PrintError("FAIL (%s)", r.Summary())
	}
}
