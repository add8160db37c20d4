package notation

import (
	"fmt"
	"math"
)

// EvaluatePostfix evaluates a postfix expression of single-digit operands.
// For each operator the first pop is the right operand b, the second the
// left operand a, and a OP b is pushed.
func EvaluatePostfix(expr string) Evaluation {
	return evaluate(Tokenize(expr), false)
}

// EvaluatePrefix reverses a prefix expression and evaluates it, popping the
// left operand a first and the right operand b second.
func EvaluatePrefix(expr string) Evaluation {
	return evaluate(Reverse(Tokenize(expr), false), true)
}

func evaluate(tokens []rune, leftFirst bool) Evaluation {
	stack := NewStack[float64]()
	steps := make([]EvalStep, 0, len(tokens))

	for _, c := range tokens {
		tok := string(c)
		var action string
		switch {
		case IsOperand(c):
			v := operandValue(c)
			stack.Push(v)
			action = fmt.Sprintf("Push %s", FormatNumber(v))

		case IsOperator(c):
			first := popOrNaN(stack)
			second := popOrNaN(stack)
			a, b := second, first
			if leftFirst {
				a, b = first, second
			}
			r := Apply(c, a, b)
			stack.Push(r)
			action = fmt.Sprintf("Pop %s and %s, push %s %s %s = %s",
				FormatNumber(a), FormatNumber(b), FormatNumber(a), tok, FormatNumber(b), FormatNumber(r))

		default:
			action = fmt.Sprintf("Ignore unrecognised token %s", tok)
		}

		steps = append(steps, EvalStep{
			Token:  tok,
			Stack:  stack.Snapshot(),
			Action: action,
		})
	}

	result, _ := stack.Peek()
	return Evaluation{Steps: steps, Result: result}
}

// Apply computes a OP b with float64 semantics. Division by zero yields an
// infinity or NaN; unknown operators yield NaN.
func Apply(op rune, a, b float64) float64 {
	switch op {
	case '+':
		return a + b
	case '-':
		return a - b
	case '*':
		return a * b
	case '/':
		return a / b
	case '^':
		return math.Pow(a, b)
	default:
		return math.NaN()
	}
}

// operandValue parses a single digit. Letters have no numeric value and
// evaluate to NaN.
func operandValue(c rune) float64 {
	if c >= '0' && c <= '9' {
		return float64(c - '0')
	}
	return math.NaN()
}

func popOrNaN(stack *Stack[float64]) float64 {
	v, ok := stack.Pop()
	if !ok {
		return math.NaN()
	}
	return v
}
