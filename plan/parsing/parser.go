// Package parsing provides a parser for migration plan files using Participle.
package parsing

import (
	"io"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/planguard/planguard/plan/ast"
	"github.com/planguard/planguard/plan/diagnostics"
)

// RawPlan is the raw parse tree structure that matches the grammar.
// This is converted to an ast.Plan after parsing.
type RawPlan struct {
	Pos        lexer.Position
	Name       string          `parser:"'plan' @String"`
	Statements []*RawStatement `parser:"'{' @@* '}'"`
	EndPos     lexer.Position
}

// RawStatement is one unvalidated operation line. Kind names and field arity
// are checked by the converter, not the grammar, so that a misspelled kind
// still produces a span-accurate diagnostic instead of a grammar failure.
type RawStatement struct {
	Pos     lexer.Position
	Kind    string `parser:"@Ident"`
	Entity  string `parser:"@Ident"`
	Field   string `parser:"('.' @Ident)?"`
	NewName string `parser:"('->' @Ident)?"`
	EndPos  lexer.Position
}

// parser is the Participle parser instance.
var parser = participle.MustBuild[RawPlan](
	participle.Lexer(PlanLexer),
	participle.Elide("Whitespace", "Newline", "Comment", "MultiLineComment"),
	participle.Unquote("String"),
)

// Parse parses a migration plan from an io.Reader. Errors are accumulated in
// the returned diagnostics; the plan is nil when the collection has errors.
func Parse(filename string, r io.Reader) (*ast.Plan, diagnostics.Diagnostics) {
	raw, err := parser.Parse(filename, r)
	if err != nil {
		return nil, diagnostics.FromError(syntaxError(err))
	}
	return convertRawPlan(raw)
}

// ParseString parses a migration plan from a string.
func ParseString(filename, input string) (*ast.Plan, diagnostics.Diagnostics) {
	return Parse(filename, strings.NewReader(input))
}

// MustParseString parses a migration plan from a string, panicking on error.
func MustParseString(filename, input string) *ast.Plan {
	plan, diags := ParseString(filename, input)
	if diags.HasErrors() {
		panic(diags.ToResult())
	}
	return plan
}

// syntaxError converts a participle error into a span-carrying PlanError.
func syntaxError(err error) diagnostics.PlanError {
	if perr, ok := err.(participle.Error); ok {
		offset := perr.Position().Offset
		return diagnostics.NewPlanError(perr.Message(), diagnostics.NewSpan(offset, offset+1))
	}
	return diagnostics.NewPlanError(err.Error(), diagnostics.EmptySpan())
}
