package parsing

import (
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/planguard/planguard/plan/ast"
	"github.com/planguard/planguard/plan/diagnostics"
)

// convertRawPlan validates the raw parse tree and produces an ordered plan.
// All arity and kind problems are accumulated so a single run reports every
// offending statement at once.
func convertRawPlan(raw *RawPlan) (*ast.Plan, diagnostics.Diagnostics) {
	diags := diagnostics.NewDiagnostics()

	plan := &ast.Plan{
		Name:       raw.Name,
		Operations: make([]ast.Operation, 0, len(raw.Statements)),
		Span:       spanBetween(raw.Pos, raw.EndPos),
	}

	for _, stmt := range raw.Statements {
		op, ok := convertStatement(stmt, &diags)
		if ok {
			plan.Operations = append(plan.Operations, op)
		}
	}

	if len(raw.Statements) == 0 {
		diags.PushError(diagnostics.NewEmptyPlanError(raw.Name, spanBetween(raw.Pos, raw.EndPos)))
	}

	if diags.HasErrors() {
		return nil, diags
	}
	return plan, diags
}

func convertStatement(stmt *RawStatement, diags *diagnostics.Diagnostics) (ast.Operation, bool) {
	stmtSpan := spanBetween(stmt.Pos, stmt.EndPos)
	kindSpan := diagnostics.NewSpan(stmt.Pos.Offset, stmt.Pos.Offset+len(stmt.Kind))

	kind, ok := ast.KindFromString(stmt.Kind)
	if !ok {
		diags.PushError(diagnostics.NewUnknownKindError(stmt.Kind, kindSpan))
		return ast.Operation{}, false
	}

	valid := true

	if kind.RequiresField() && stmt.Field == "" {
		diags.PushError(diagnostics.NewMissingFieldError(stmt.Kind, stmt.Entity, stmtSpan))
		valid = false
	}
	if !kind.RequiresField() && stmt.Field != "" {
		diags.PushError(diagnostics.NewUnexpectedFieldError(stmt.Kind, stmt.Entity, stmt.Field, stmtSpan))
		valid = false
	}

	switch {
	case kind == ast.KindRenameColumn && stmt.NewName == "":
		diags.PushError(diagnostics.NewMissingRenameTargetError(stmt.Entity, stmt.Field, stmtSpan))
		valid = false
	case kind != ast.KindRenameColumn && stmt.NewName != "":
		diags.PushError(diagnostics.NewUnexpectedRenameTargetError(stmt.Kind, stmtSpan))
		valid = false
	}

	if !valid {
		return ast.Operation{}, false
	}

	return ast.Operation{
		Kind:    kind,
		Entity:  stmt.Entity,
		Field:   stmt.Field,
		NewName: stmt.NewName,
		Span:    stmtSpan,
	}, true
}

func spanBetween(start, end lexer.Position) diagnostics.Span {
	return diagnostics.NewSpan(start.Offset, end.Offset)
}
