package notation

import (
	"fmt"
	"strings"
)

// InfixToPostfix converts an infix expression with the shunting-yard
// algorithm. Each token yields one step; operators left on the stack after
// the input is exhausted are flushed one step at a time.
func InfixToPostfix(expr string) Conversion {
	return infixToPostfix(Tokenize(expr))
}

func infixToPostfix(tokens []rune) Conversion {
	var (
		stack  = NewStack[string]()
		output strings.Builder
		steps  = make([]Step, 0, len(tokens))
	)
	record := func(kind StepKind, token, action string) {
		steps = append(steps, Step{
			Kind:   kind,
			Token:  token,
			Stack:  stack.Snapshot(),
			Output: output.String(),
			Action: action,
		})
	}

	for _, c := range tokens {
		tok := string(c)
		switch {
		case IsOperand(c):
			output.WriteString(tok)
			record(TokenStep, tok, fmt.Sprintf("Append operand %s to output", tok))

		case c == '(':
			stack.Push(tok)
			record(TokenStep, tok, "Push ( onto stack")

		case c == ')':
			var popped []string
			for {
				top, ok := stack.Peek()
				if !ok || top == "(" {
					break
				}
				stack.Pop()
				output.WriteString(top)
				popped = append(popped, top)
			}
			// Discard the matching '(' if there is one.
			stack.Pop()
			action := "Pop until ( and discard it"
			if len(popped) > 0 {
				action = fmt.Sprintf("Pop %s to output until ( and discard it", strings.Join(popped, " "))
			}
			record(TokenStep, tok, action)

		case IsOperator(c):
			var popped []string
			for {
				top, ok := stack.Peek()
				if !ok || top == "(" {
					break
				}
				t := []rune(top)[0]
				if Precedence(t) > Precedence(c) ||
					(Precedence(t) == Precedence(c) && Associativity(c) == Left) {
					stack.Pop()
					output.WriteString(top)
					popped = append(popped, top)
					continue
				}
				break
			}
			stack.Push(tok)
			action := fmt.Sprintf("Push operator %s onto stack", tok)
			if len(popped) > 0 {
				action = fmt.Sprintf("Pop %s to output, then push operator %s", strings.Join(popped, " "), tok)
			}
			record(TokenStep, tok, action)

		default:
			record(TokenStep, tok, fmt.Sprintf("Ignore unrecognised token %s", tok))
		}
	}

	for !stack.IsEmpty() {
		top, _ := stack.Pop()
		output.WriteString(top)
		record(FlushStep, MarkerEnd, fmt.Sprintf("End of input: pop %s to output", top))
	}

	return Conversion{Steps: steps, Result: output.String()}
}

// InfixToPrefix mirrors the input (swapping parentheses), converts the mirror
// to postfix and reverses that result. The trace is the reverse-input step,
// the full postfix trace and the reverse-result step.
func InfixToPrefix(expr string) Conversion {
	tokens := Tokenize(expr)
	if len(tokens) == 0 {
		return Conversion{Steps: []Step{}}
	}
	mirrored := Reverse(tokens, true)

	postfix := infixToPostfix(mirrored)
	result := string(Reverse([]rune(postfix.Result), false))

	steps := make([]Step, 0, len(postfix.Steps)+2)
	steps = append(steps, Step{
		Kind:   ReverseInputStep,
		Token:  MarkerReverseInput,
		Stack:  []string{},
		Output: string(mirrored),
		Action: fmt.Sprintf("Reverse input and swap parentheses: %s", string(mirrored)),
	})
	steps = append(steps, postfix.Steps...)
	steps = append(steps, Step{
		Kind:   ReverseResultStep,
		Token:  MarkerReverseResult,
		Stack:  []string{},
		Output: result,
		Action: fmt.Sprintf("Reverse postfix %s to get prefix %s", postfix.Result, result),
	})

	return Conversion{Steps: steps, Result: result}
}

// combineFunc joins two operands with an operator into a sub-expression.
type combineFunc func(left, right, op string) string

func infixForm(left, right, op string) string {
	return "(" + left + op + right + ")"
}

func prefixForm(left, right, op string) string {
	return op + left + right
}

func postfixForm(left, right, op string) string {
	return left + right + op
}

// scanPostfix scans tokens left to right. The first pop of an operator is its
// right operand, the second its left operand.
func scanPostfix(tokens []rune, combine combineFunc) Conversion {
	return scanExpressions(tokens, combine, false)
}

// scanReversedPrefix scans an already reversed prefix expression. Operands
// come off the stack in the opposite order: left first, then right.
func scanReversedPrefix(tokens []rune, combine combineFunc) Conversion {
	return scanExpressions(tokens, combine, true)
}

func scanExpressions(tokens []rune, combine combineFunc, leftFirst bool) Conversion {
	stack := NewStack[string]()
	steps := make([]Step, 0, len(tokens))

	for _, c := range tokens {
		tok := string(c)
		var action string
		switch {
		case IsOperand(c):
			stack.Push(tok)
			action = fmt.Sprintf("Push operand %s", tok)

		case IsOperator(c):
			first := popOrAbsent(stack)
			second := popOrAbsent(stack)
			left, right := second, first
			if leftFirst {
				left, right = first, second
			}
			combined := combine(left, right, tok)
			stack.Push(combined)
			action = fmt.Sprintf("Pop %s and %s, push %s", left, right, combined)

		default:
			action = fmt.Sprintf("Ignore unrecognised token %s", tok)
		}

		top, _ := stack.Peek()
		steps = append(steps, Step{
			Kind:   TokenStep,
			Token:  tok,
			Stack:  stack.Snapshot(),
			Output: top,
			Action: action,
		})
	}

	result, _ := stack.Peek()
	return Conversion{Steps: steps, Result: result}
}

func popOrAbsent(stack *Stack[string]) string {
	v, ok := stack.Pop()
	if !ok {
		return Absent
	}
	return v
}

// PostfixToInfix rebuilds a fully parenthesised infix expression.
func PostfixToInfix(expr string) Conversion {
	return scanPostfix(Tokenize(expr), infixForm)
}

// PostfixToPrefix rewrites a postfix expression in prefix form.
func PostfixToPrefix(expr string) Conversion {
	return scanPostfix(Tokenize(expr), prefixForm)
}

// PrefixToInfix rebuilds a fully parenthesised infix expression from prefix.
func PrefixToInfix(expr string) Conversion {
	return scanReversedPrefix(Reverse(Tokenize(expr), false), infixForm)
}

// PrefixToPostfix rewrites a prefix expression in postfix form.
func PrefixToPostfix(expr string) Conversion {
	return scanReversedPrefix(Reverse(Tokenize(expr), false), postfixForm)
}
