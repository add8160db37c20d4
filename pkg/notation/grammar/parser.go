package grammar

import (
	"fmt"
	"io"

	"github.com/alecthomas/participle/v2"
)

// Parser is a strict infix expression parser. Unlike the conversion engine
// it rejects unbalanced parentheses, dangling operators and unknown symbols.
type Parser struct {
	parser *participle.Parser[Expression]
}

// NewParser creates a new expression parser instance
func NewParser() (*Parser, error) {
	parser, err := participle.Build[Expression](
		participle.Lexer(ExpressionLexer),
		participle.Elide("Whitespace"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build parser: %w", err)
	}

	return &Parser{parser: parser}, nil
}

// Parse parses an expression from a reader
func (p *Parser) Parse(r io.Reader) (*Expression, error) {
	expr, err := p.parser.Parse("", r)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	return expr, nil
}

// ParseString parses an expression from a string
func (p *Parser) ParseString(input string) (*Expression, error) {
	expr, err := p.parser.ParseString("", input)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	return expr, nil
}
