// Package classify labels schema operations by the risk they carry.
package classify

import (
	"fmt"

	"github.com/planguard/planguard/plan/ast"
)

// Classification is the risk label of a schema operation.
type Classification int

const (
	// Safe operations are purely additive and cannot discard data.
	Safe Classification = iota
	// NeedsDataMigration operations preserve data only when paired with a
	// data migration (backfill, constraint validation pass).
	NeedsDataMigration
	// Destructive operations can discard existing data.
	Destructive
)

// String returns the report label of the classification.
func (c Classification) String() string {
	switch c {
	case Safe:
		return "SAFE"
	case NeedsDataMigration:
		return "NEEDS_DATA_MIGRATION"
	case Destructive:
		return "DESTRUCTIVE"
	default:
		return fmt.Sprintf("Classification(%d)", int(c))
	}
}

// table is the fixed kind→classification mapping. Classification is a pure
// function of operation kind and must stay deterministic across runs.
var table = map[ast.Kind]Classification{
	ast.KindAddColumn:     Safe,
	ast.KindRenameColumn:  NeedsDataMigration,
	ast.KindAddConstraint: NeedsDataMigration,
	ast.KindDropColumn:    Destructive,
	ast.KindDropTable:     Destructive,
}

// Classify returns the classification of a single operation. It is total
// over validated input: unknown kinds are rejected by the parser, so a miss
// here is a programming error.
func Classify(op ast.Operation) Classification {
	c, ok := table[op.Kind]
	if !ok {
		panic(fmt.Sprintf("classify: unvalidated operation kind %q", op.Kind))
	}
	return c
}

// Advice returns the operator guidance attached to a classification.
func Advice(c Classification) string {
	switch c {
	case Safe:
		return "no action required"
	case NeedsDataMigration:
		return "pair with a data migration and validate on staging first"
	case Destructive:
		return "take a backup before applying"
	default:
		return ""
	}
}

// ClassifiedOperation pairs an operation with its classification.
type ClassifiedOperation struct {
	Operation      ast.Operation
	Classification Classification
}

// Plan classifies every operation of a plan, preserving plan order.
func Plan(p *ast.Plan) []ClassifiedOperation {
	classified := make([]ClassifiedOperation, 0, len(p.Operations))
	for _, op := range p.Operations {
		classified = append(classified, ClassifiedOperation{
			Operation:      op,
			Classification: Classify(op),
		})
	}
	return classified
}
