// Package formatting renders migration plans in canonical form.
package formatting

import (
	"fmt"
	"strings"

	"github.com/planguard/planguard/plan/ast"
	"github.com/planguard/planguard/plan/parsing"
)

// Reformat reformats a migration plan string. indentWidth specifies the
// number of spaces for indentation (defaults to 2 if 0). Comments are not
// preserved; the plan is re-rendered from the parsed representation.
func Reformat(input string, indentWidth int) (string, error) {
	plan, diags := parsing.ParseString("plan", input)
	if diags.HasErrors() {
		return "", fmt.Errorf("cannot reformat invalid plan: %v", diags.ToResult())
	}

	if indentWidth == 0 {
		indentWidth = 2
	}

	return Render(plan, indentWidth), nil
}

// Render renders an ast.Plan to its canonical string form. Operation kinds
// are aligned into a column so targets line up.
func Render(plan *ast.Plan, indentWidth int) string {
	var builder strings.Builder
	indent := strings.Repeat(" ", indentWidth)

	kindWidth := 0
	for _, op := range plan.Operations {
		if len(op.Kind) > kindWidth {
			kindWidth = len(op.Kind)
		}
	}

	builder.WriteString(fmt.Sprintf("plan %q {\n", plan.Name))
	for _, op := range plan.Operations {
		builder.WriteString(indent)
		builder.WriteString(fmt.Sprintf("%-*s %s", kindWidth, string(op.Kind), op.Target()))
		if op.Kind == ast.KindRenameColumn {
			builder.WriteString(fmt.Sprintf(" -> %s", op.NewName))
		}
		builder.WriteString("\n")
	}
	builder.WriteString("}\n")

	return builder.String()
}
