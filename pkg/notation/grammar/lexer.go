package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// ExpressionLexer splits an infix expression into single-character tokens.
// Multi-character names and numbers are deliberately not recognised.
var ExpressionLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `\s+`},

	{Name: "Operand", Pattern: `[a-zA-Z0-9]`},
	{Name: "Operator", Pattern: `[-+*/^]`},

	{Name: "LParen", Pattern: `\(`},
	{Name: "RParen", Pattern: `\)`},
})
