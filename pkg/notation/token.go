package notation

import "unicode"

// Assoc is the associativity of a binary operator.
type Assoc int

const (
	// Left associative operators group a-b-c as (a-b)-c.
	Left Assoc = iota
	// Right associative operators group a^b^c as a^(b^c).
	Right
)

func (a Assoc) String() string {
	if a == Right {
		return "right"
	}
	return "left"
}

// Operators lists the supported binary operators.
const Operators = "+-*/^"

var precedence = map[rune]int{
	'+': 1,
	'-': 1,
	'*': 2,
	'/': 2,
	'^': 3,
}

var associativity = map[rune]Assoc{
	'+': Left,
	'-': Left,
	'*': Left,
	'/': Left,
	'^': Right,
}

// IsOperator reports whether c is one of + - * / ^.
func IsOperator(c rune) bool {
	_, ok := precedence[c]
	return ok
}

// IsOperand reports whether c is a single ASCII letter or digit.
func IsOperand(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

// Precedence returns the binding rank of op. Higher binds tighter; anything
// that is not an operator ranks 0.
func Precedence(op rune) int {
	return precedence[op]
}

// Associativity returns the associativity of op. Unknown symbols are Left.
func Associativity(op rune) Assoc {
	return associativity[op]
}

// Tokenize strips whitespace and returns one token per remaining character.
func Tokenize(expr string) []rune {
	tokens := make([]rune, 0, len(expr))
	for _, r := range expr {
		if unicode.IsSpace(r) {
			continue
		}
		tokens = append(tokens, r)
	}
	return tokens
}

// Reverse returns tokens in reverse order. With swapParens set, '(' and ')'
// trade places so that a reversed infix expression stays balanced.
func Reverse(tokens []rune, swapParens bool) []rune {
	out := make([]rune, len(tokens))
	for i, r := range tokens {
		if swapParens {
			switch r {
			case '(':
				r = ')'
			case ')':
				r = '('
			}
		}
		out[len(tokens)-1-i] = r
	}
	return out
}
