package grammar

import (
	"fmt"
	"strings"

	"github.com/OpenTraceLab/notation/pkg/notation"
	"github.com/chewxy/sexp"
)

// Node is a binary expression tree. Leaves carry an operand in Value and
// have no children.
type Node struct {
	Value    string
	Operator string
	Left     *Node
	Right    *Node
}

// IsLeaf reports whether the node is a single operand.
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// Infix renders the tree fully parenthesised, e.g. (A+(B*C)).
func (n *Node) Infix() string {
	if n.IsLeaf() {
		return n.Value
	}
	return "(" + n.Left.Infix() + n.Operator + n.Right.Infix() + ")"
}

// Postfix renders the tree in reverse Polish notation.
func (n *Node) Postfix() string {
	if n.IsLeaf() {
		return n.Value
	}
	return n.Left.Postfix() + n.Right.Postfix() + n.Operator
}

// Prefix renders the tree in Polish notation.
func (n *Node) Prefix() string {
	if n.IsLeaf() {
		return n.Value
	}
	return n.Operator + n.Left.Prefix() + n.Right.Prefix()
}

// Sexp renders the tree as an S-expression, e.g. (+ A (* B C)).
func (n *Node) Sexp() string {
	if n.IsLeaf() {
		return n.Value
	}
	return "(" + n.Operator + " " + n.Left.Sexp() + " " + n.Right.Sexp() + ")"
}

// Depth returns the number of levels in the tree. A leaf has depth 1.
func (n *Node) Depth() int {
	if n.IsLeaf() {
		return 1
	}
	return 1 + max(n.Left.Depth(), n.Right.Depth())
}

// Operands returns the leaves from left to right.
func (n *Node) Operands() []string {
	if n.IsLeaf() {
		return []string{n.Value}
	}
	return append(n.Left.Operands(), n.Right.Operands()...)
}

// Tree builds the binary tree for a parsed expression, grouping operators by
// the conversion engine's precedence and associativity tables.
func Tree(expr *Expression) (*Node, error) {
	if expr == nil || expr.Head == nil {
		return nil, fmt.Errorf("grammar: empty expression")
	}
	b := &treeBuilder{units: []*Unit{expr.Head}}
	for _, t := range expr.Tail {
		if len(t.Operator) != 1 {
			return nil, fmt.Errorf("grammar: invalid operator %q", t.Operator)
		}
		b.ops = append(b.ops, []rune(t.Operator)[0])
		b.units = append(b.units, t.Unit)
	}
	return b.climb(1)
}

// ParseTree parses input and builds its tree in one step.
func (p *Parser) ParseTree(input string) (*Node, error) {
	expr, err := p.ParseString(input)
	if err != nil {
		return nil, err
	}
	return Tree(expr)
}

type treeBuilder struct {
	units []*Unit
	ops   []rune
	next  int
}

// climb implements precedence climbing over the flat unit/operator list.
func (b *treeBuilder) climb(minPrec int) (*Node, error) {
	lhs, err := b.unit()
	if err != nil {
		return nil, err
	}
	for b.next-1 < len(b.ops) {
		op := b.ops[b.next-1]
		prec := notation.Precedence(op)
		if prec < minPrec {
			break
		}
		nextMin := prec + 1
		if notation.Associativity(op) == notation.Right {
			nextMin = prec
		}
		rhs, err := b.climb(nextMin)
		if err != nil {
			return nil, err
		}
		lhs = &Node{Operator: string(op), Left: lhs, Right: rhs}
	}
	return lhs, nil
}

func (b *treeBuilder) unit() (*Node, error) {
	if b.next >= len(b.units) {
		return nil, fmt.Errorf("grammar: missing operand")
	}
	u := b.units[b.next]
	b.next++
	switch {
	case u.Group != nil:
		return Tree(u.Group)
	case u.Operand != "":
		return &Node{Value: u.Operand}, nil
	}
	return nil, fmt.Errorf("grammar: empty unit")
}

// SexpInfo summarises an S-expression rendering after it has been read back.
type SexpInfo struct {
	Text        string
	Expressions int
	Leaf        bool
	LeafCount   int
}

// ValidateSexp reads n.Sexp() back with an S-expression parser and checks
// that it forms exactly one expression. A single operand renders as a bare
// atom, which the parser does not report as an expression, so leaves are
// returned as-is.
func ValidateSexp(n *Node) (*SexpInfo, error) {
	text := n.Sexp()
	if n.IsLeaf() {
		return &SexpInfo{Text: text, Expressions: 1, Leaf: true}, nil
	}
	sexps, err := sexp.ParseString(text)
	if err != nil {
		return nil, fmt.Errorf("grammar: sexp %q: %w", text, err)
	}
	if len(sexps) != 1 {
		return nil, fmt.Errorf("grammar: sexp %q: expected 1 expression, got %d", text, len(sexps))
	}
	info := &SexpInfo{
		Text:        text,
		Expressions: len(sexps),
		Leaf:        sexps[0].IsLeaf(),
	}
	if !info.Leaf {
		info.LeafCount = sexps[0].LeafCount()
	}
	return info, nil
}

// Describe returns a short multi-line summary of the tree.
func Describe(n *Node) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "infix:   %s\n", n.Infix())
	fmt.Fprintf(&sb, "postfix: %s\n", n.Postfix())
	fmt.Fprintf(&sb, "prefix:  %s\n", n.Prefix())
	fmt.Fprintf(&sb, "sexp:    %s\n", n.Sexp())
	fmt.Fprintf(&sb, "depth:   %d\n", n.Depth())
	return sb.String()
}
