package commands

import (
	"fmt"
	"os"

	"github.com/spf13/afero"

	"github.com/planguard/planguard/cli/internal/config"
	"github.com/planguard/planguard/plan/ast"
	"github.com/planguard/planguard/plan/parsing"
)

// resolvePlanPath returns the plan path using consistent logic:
// 1. Use first argument if provided
// 2. Fall back to the configured plan_path
func resolvePlanPath(cfg *config.Config, args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return cfg.PlanPath
}

// loadPlan reads and parses a plan file. Any parse failure is written to
// stderr with source excerpts and surfaces as exit status 2; no report is
// emitted for unparseable input.
func loadPlan(path string) (*ast.Plan, string, error) {
	content, err := afero.ReadFile(config.AppFs, path)
	if err != nil {
		return nil, "", &exitError{Code: ExitParseError, Err: fmt.Errorf("cannot read plan file: %w", err)}
	}

	text := string(content)
	plan, diags := parsing.ParseString(path, text)
	if diags.HasErrors() {
		fmt.Fprint(os.Stderr, diags.ToPrettyString(path, text))
		return nil, "", &exitError{Code: ExitParseError}
	}
	return plan, text, nil
}
