// Package report turns a classified plan into lint output and a verdict.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/planguard/planguard/plan/ast"
	"github.com/planguard/planguard/plan/classify"
	"github.com/planguard/planguard/plan/diagnostics"
)

// Verdict is the overall result of linting one plan.
type Verdict int

const (
	// Pass means the plan carries no unacknowledged destructive operation.
	Pass Verdict = iota
	// Fail means at least one destructive operation lacks a backup acknowledgment.
	Fail
)

// String returns the report label of the verdict.
func (v Verdict) String() string {
	if v == Pass {
		return "PASS"
	}
	return "FAIL"
}

// Report is the lint result for a single plan.
type Report struct {
	Plan            *ast.Plan
	Operations      []classify.ClassifiedOperation
	BackupConfirmed bool
	Warnings        []diagnostics.PlanWarning
}

// New classifies the plan and builds its report. Operation order is the plan
// order, end to end.
func New(plan *ast.Plan, backupConfirmed bool) *Report {
	return &Report{
		Plan:            plan,
		Operations:      classify.Plan(plan),
		BackupConfirmed: backupConfirmed,
	}
}

// AddWarnings attaches non-fatal warnings (for example from live-database
// verification). Warnings never change the verdict.
func (r *Report) AddWarnings(warnings []diagnostics.PlanWarning) {
	r.Warnings = append(r.Warnings, warnings...)
}

// DestructiveCount returns the number of destructive operations in the plan.
func (r *Report) DestructiveCount() int {
	count := 0
	for _, op := range r.Operations {
		if op.Classification == classify.Destructive {
			count++
		}
	}
	return count
}

// Verdict computes the overall result. A FAIL verdict is not an execution
// error: the lint run succeeded and found the plan unsafe.
func (r *Report) Verdict() Verdict {
	if r.DestructiveCount() > 0 && !r.BackupConfirmed {
		return Fail
	}
	return Pass
}

// Lines returns one report line per operation, in plan order.
func (r *Report) Lines() []string {
	lines := make([]string, 0, len(r.Operations))
	for i, op := range r.Operations {
		lines = append(lines, fmt.Sprintf("%2d. %-20s %s", i+1, op.Classification, op.Operation.String()))
	}
	return lines
}

// Summary returns the one-line verdict explanation.
func (r *Report) Summary() string {
	destructive := r.DestructiveCount()
	switch {
	case destructive == 0:
		return "no destructive operations"
	case r.BackupConfirmed:
		return fmt.Sprintf("%d destructive operation(s), backup confirmed", destructive)
	default:
		return fmt.Sprintf("%d destructive operation(s) without backup confirmation", destructive)
	}
}

// WriteText writes the plain-text report to a writer.
func (r *Report) WriteText(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "Plan %q (%d operations)\n\n", r.Plan.Name, len(r.Operations)); err != nil {
		return err
	}
	for _, line := range r.Lines() {
		if _, err := fmt.Fprintf(w, "%s\n", line); err != nil {
			return err
		}
	}
	for _, warn := range r.Warnings {
		if _, err := fmt.Fprintf(w, "\nwarning: %s", warn.Message()); err != nil {
			return err
		}
	}
	if len(r.Warnings) > 0 {
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "\nVerdict: %s (%s)\n", r.Verdict(), r.Summary())
	return err
}

// Markdown renders the report as a Markdown document.
func (r *Report) Markdown() string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Plan %q\n\n", r.Plan.Name)
	b.WriteString("| # | Classification | Operation | Advice |\n")
	b.WriteString("|---|----------------|-----------|--------|\n")
	for i, op := range r.Operations {
		fmt.Fprintf(&b, "| %d | %s | `%s` | %s |\n",
			i+1, op.Classification, op.Operation.String(), classify.Advice(op.Classification))
	}

	if len(r.Warnings) > 0 {
		b.WriteString("\n## Warnings\n\n")
		for _, warn := range r.Warnings {
			fmt.Fprintf(&b, "- %s\n", warn.Message())
		}
	}

	fmt.Fprintf(&b, "\n**Verdict: %s** — %s\n", r.Verdict(), r.Summary())
	return b.String()
}
