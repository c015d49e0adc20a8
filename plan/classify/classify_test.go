package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planguard/planguard/plan/ast"
	"github.com/planguard/planguard/plan/parsing"
)

func TestFixedTable(t *testing.T) {
	expected := map[ast.Kind]Classification{
		ast.KindAddColumn:     Safe,
		ast.KindRenameColumn:  NeedsDataMigration,
		ast.KindAddConstraint: NeedsDataMigration,
		ast.KindDropColumn:    Destructive,
		ast.KindDropTable:     Destructive,
	}

	for kind, want := range expected {
		op := ast.Operation{Kind: kind, Entity: "users", Field: "email"}
		assert.Equal(t, want, Classify(op), "kind %s", kind)
	}
}

func TestClassificationIsDeterministic(t *testing.T) {
	op := ast.Operation{Kind: ast.KindDropColumn, Entity: "users", Field: "age"}
	first := Classify(op)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Classify(op))
	}
}

func TestEveryKindIsClassified(t *testing.T) {
	for _, kind := range ast.Kinds() {
		assert.NotPanics(t, func() {
			Classify(ast.Operation{Kind: kind, Entity: "users", Field: "email"})
		}, "kind %s must be in the table", kind)
	}
}

func TestUnvalidatedKindPanics(t *testing.T) {
	assert.Panics(t, func() {
		Classify(ast.Operation{Kind: ast.Kind("drop-schema"), Entity: "analytics"})
	})
}

func TestClassificationString(t *testing.T) {
	assert.Equal(t, "SAFE", Safe.String())
	assert.Equal(t, "NEEDS_DATA_MIGRATION", NeedsDataMigration.String())
	assert.Equal(t, "DESTRUCTIVE", Destructive.String())
}

func TestPlanPreservesOrder(t *testing.T) {
	plan := parsing.MustParseString("test.plan", `
plan "ordered" {
  drop-table sessions
  add-column users.email
  rename-column users.name -> full_name
}
`)

	classified := Plan(plan)
	require.Len(t, classified, 3)

	assert.Equal(t, ast.KindDropTable, classified[0].Operation.Kind)
	assert.Equal(t, Destructive, classified[0].Classification)
	assert.Equal(t, ast.KindAddColumn, classified[1].Operation.Kind)
	assert.Equal(t, Safe, classified[1].Classification)
	assert.Equal(t, ast.KindRenameColumn, classified[2].Operation.Kind)
	assert.Equal(t, NeedsDataMigration, classified[2].Classification)
}
