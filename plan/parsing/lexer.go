package parsing

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// PlanLexer defines the token types for the migration plan language.
var PlanLexer = lexer.MustSimple([]lexer.SimpleRule{
	// Rename target arrow (must come before anything matching '-')
	{Name: "Arrow", Pattern: `->`},

	// Punctuation
	{Name: "LBrace", Pattern: `\{`},
	{Name: "RBrace", Pattern: `\}`},
	{Name: "Dot", Pattern: `\.`},

	// Literals
	{Name: "String", Pattern: `"(?:\\.|[^"\\])*"`},

	// Identifiers, including hyphenated operation kinds
	{Name: "Ident", Pattern: `[\p{L}\p{N}_][\p{L}\p{N}_-]*`},

	// Comments
	{Name: "Comment", Pattern: `//[^\n]*`},
	{Name: "MultiLineComment", Pattern: `/\*(?:[^*]|\*[^/])*\*/`},

	// Whitespace and newlines
	{Name: "Newline", Pattern: `[\r\n]+`},
	{Name: "Whitespace", Pattern: `[ \t]+`},
})
