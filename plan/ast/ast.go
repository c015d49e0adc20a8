// Package ast defines the validated representation of a migration plan.
package ast

import (
	"fmt"

	"github.com/planguard/planguard/plan/diagnostics"
)

// Kind represents the kind of a schema operation.
type Kind string

const (
	KindAddColumn     Kind = "add-column"
	KindDropColumn    Kind = "drop-column"
	KindDropTable     Kind = "drop-table"
	KindRenameColumn  Kind = "rename-column"
	KindAddConstraint Kind = "add-constraint"
)

// Kinds lists every valid operation kind in a stable order.
func Kinds() []Kind {
	return []Kind{
		KindAddColumn,
		KindDropColumn,
		KindDropTable,
		KindRenameColumn,
		KindAddConstraint,
	}
}

// KindFromString resolves a raw kind token. The second return value is false
// for unrecognized kinds.
func KindFromString(s string) (Kind, bool) {
	switch Kind(s) {
	case KindAddColumn, KindDropColumn, KindDropTable, KindRenameColumn, KindAddConstraint:
		return Kind(s), true
	default:
		return "", false
	}
}

// RequiresField reports whether the kind targets an entity field. drop-table
// is the only kind operating on a whole entity.
func (k Kind) RequiresField() bool {
	return k != KindDropTable
}

// Operation is one schema change inside a plan.
type Operation struct {
	Kind   Kind
	Entity string
	// Field is empty for drop-table, set for every other kind.
	Field string
	// NewName is set only for rename-column.
	NewName string
	Span    diagnostics.Span
}

// Target returns the dotted target of the operation.
func (o Operation) Target() string {
	if o.Field == "" {
		return o.Entity
	}
	return fmt.Sprintf("%s.%s", o.Entity, o.Field)
}

// String returns the canonical statement form of the operation.
func (o Operation) String() string {
	if o.Kind == KindRenameColumn {
		return fmt.Sprintf("%s %s -> %s", o.Kind, o.Target(), o.NewName)
	}
	return fmt.Sprintf("%s %s", o.Kind, o.Target())
}

// Plan is one migration unit: a named, ordered sequence of operations.
type Plan struct {
	Name       string
	Operations []Operation
	Span       diagnostics.Span
}

// Entities returns the distinct entity names touched by the plan, in first
// occurrence order.
func (p *Plan) Entities() []string {
	seen := make(map[string]bool, len(p.Operations))
	var entities []string
	for _, op := range p.Operations {
		if !seen[op.Entity] {
			seen[op.Entity] = true
			entities = append(entities, op.Entity)
		}
	}
	return entities
}
