package parsing

import (
	"strings"
	"testing"

	"github.com/planguard/planguard/plan/ast"
)

func TestParseBasicPlan(t *testing.T) {
	input := `
plan "2024_06_add_email" {
  add-column users.email
  drop-table sessions
}
`
	plan, diags := ParseString("test.plan", input)
	if diags.HasErrors() {
		t.Fatalf("Failed to parse plan: %v", diags.ToResult())
	}

	if plan.Name != "2024_06_add_email" {
		t.Errorf("Expected plan name '2024_06_add_email', got '%s'", plan.Name)
	}

	if len(plan.Operations) != 2 {
		t.Fatalf("Expected 2 operations, got %d", len(plan.Operations))
	}

	first := plan.Operations[0]
	if first.Kind != ast.KindAddColumn {
		t.Errorf("Expected kind add-column, got '%s'", first.Kind)
	}
	if first.Entity != "users" || first.Field != "email" {
		t.Errorf("Expected target users.email, got '%s'", first.Target())
	}

	second := plan.Operations[1]
	if second.Kind != ast.KindDropTable {
		t.Errorf("Expected kind drop-table, got '%s'", second.Kind)
	}
	if second.Field != "" {
		t.Errorf("Expected no field for drop-table, got '%s'", second.Field)
	}
}

func TestParsePreservesStatementOrder(t *testing.T) {
	input := `
plan "ordered" {
  drop-table audit_log
  add-column users.email
  rename-column users.name -> full_name
  add-constraint users.email_unique
  drop-column users.age
}
`
	plan, diags := ParseString("test.plan", input)
	if diags.HasErrors() {
		t.Fatalf("Failed to parse plan: %v", diags.ToResult())
	}

	expected := []ast.Kind{
		ast.KindDropTable,
		ast.KindAddColumn,
		ast.KindRenameColumn,
		ast.KindAddConstraint,
		ast.KindDropColumn,
	}
	if len(plan.Operations) != len(expected) {
		t.Fatalf("Expected %d operations, got %d", len(expected), len(plan.Operations))
	}
	for i, kind := range expected {
		if plan.Operations[i].Kind != kind {
			t.Errorf("Operation %d: expected kind '%s', got '%s'", i, kind, plan.Operations[i].Kind)
		}
	}
}

func TestParseRenameColumn(t *testing.T) {
	input := `
plan "rename" {
  rename-column users.name -> full_name
}
`
	plan, diags := ParseString("test.plan", input)
	if diags.HasErrors() {
		t.Fatalf("Failed to parse plan: %v", diags.ToResult())
	}

	op := plan.Operations[0]
	if op.NewName != "full_name" {
		t.Errorf("Expected new name 'full_name', got '%s'", op.NewName)
	}
	if op.String() != "rename-column users.name -> full_name" {
		t.Errorf("Unexpected canonical form: '%s'", op.String())
	}
}

func TestParseComments(t *testing.T) {
	input := `
// legacy cleanup, see migration runbook
plan "cleanup" {
  /* the sessions table moved to redis */
  drop-table sessions
  add-column users.last_seen // backfilled separately
}
`
	plan, diags := ParseString("test.plan", input)
	if diags.HasErrors() {
		t.Fatalf("Failed to parse plan: %v", diags.ToResult())
	}
	if len(plan.Operations) != 2 {
		t.Fatalf("Expected 2 operations, got %d", len(plan.Operations))
	}
}

func TestParseUnknownKind(t *testing.T) {
	input := `
plan "bad" {
  drop-schema analytics.events
}
`
	plan, diags := ParseString("test.plan", input)
	if !diags.HasErrors() {
		t.Fatal("Expected errors for unknown operation kind")
	}
	if plan != nil {
		t.Error("Expected nil plan when diagnostics carry errors")
	}

	errs := diags.Errors()
	if len(errs) != 1 {
		t.Fatalf("Expected 1 error, got %d", len(errs))
	}
	if !strings.Contains(errs[0].Message(), "drop-schema") {
		t.Errorf("Expected message to name the unknown kind, got '%s'", errs[0].Message())
	}

	// The span must cover exactly the kind token.
	span := errs[0].Span()
	if got := input[span.Start:span.End]; got != "drop-schema" {
		t.Errorf("Expected span to cover 'drop-schema', got '%s'", got)
	}
}

func TestParseFieldArity(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		message string
	}{
		{
			name:    "drop-column without field",
			input:   `plan "p" { drop-column users }`,
			message: "requires a field target",
		},
		{
			name:    "drop-table with field",
			input:   `plan "p" { drop-table users.email }`,
			message: "does not take a field",
		},
		{
			name:    "rename-column without target",
			input:   `plan "p" { rename-column users.name }`,
			message: "requires a new name",
		},
		{
			name:    "arrow on add-column",
			input:   `plan "p" { add-column users.email -> mail }`,
			message: "does not take a rename target",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, diags := ParseString("test.plan", tt.input)
			if !diags.HasErrors() {
				t.Fatal("Expected errors")
			}
			if plan != nil {
				t.Error("Expected nil plan")
			}
			found := false
			for _, err := range diags.Errors() {
				if strings.Contains(err.Message(), tt.message) {
					found = true
				}
			}
			if !found {
				t.Errorf("Expected an error containing '%s', got %v", tt.message, diags.Errors())
			}
		})
	}
}

func TestParseAccumulatesErrors(t *testing.T) {
	input := `
plan "many_problems" {
  drop-schema analytics
  drop-column users
  add-column users.email
}
`
	_, diags := ParseString("test.plan", input)
	if len(diags.Errors()) != 2 {
		t.Fatalf("Expected 2 accumulated errors, got %d", len(diags.Errors()))
	}
}

func TestParseEmptyPlan(t *testing.T) {
	_, diags := ParseString("test.plan", `plan "empty" { }`)
	if !diags.HasErrors() {
		t.Fatal("Expected error for empty plan")
	}
}

func TestParseSyntaxError(t *testing.T) {
	plan, diags := ParseString("test.plan", `plan missing_quotes { add-column users.email }`)
	if !diags.HasErrors() {
		t.Fatal("Expected syntax error")
	}
	if plan != nil {
		t.Error("Expected nil plan on syntax error")
	}
}
