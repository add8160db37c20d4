package notation

import (
	"errors"
	"fmt"
	"strings"
)

// Operation selects one of the engine's eight entry points.
type Operation string

const (
	OpInfixToPostfix  Operation = "infixToPostfix"
	OpInfixToPrefix   Operation = "infixToPrefix"
	OpPostfixToInfix  Operation = "postfixToInfix"
	OpPostfixToPrefix Operation = "postfixToPrefix"
	OpPrefixToInfix   Operation = "prefixToInfix"
	OpPrefixToPostfix Operation = "prefixToPostfix"
	OpEvaluatePostfix Operation = "evaluatePostfix"
	OpEvaluatePrefix  Operation = "evaluatePrefix"
)

// ErrUnknownOperation is returned for an operation identifier outside the
// fixed set.
var ErrUnknownOperation = errors.New("notation: unknown operation")

var operations = []Operation{
	OpInfixToPostfix,
	OpInfixToPrefix,
	OpPostfixToInfix,
	OpPostfixToPrefix,
	OpPrefixToInfix,
	OpPrefixToPostfix,
	OpEvaluatePostfix,
	OpEvaluatePrefix,
}

// Operations returns every supported operation in canonical order.
func Operations() []Operation {
	out := make([]Operation, len(operations))
	copy(out, operations)
	return out
}

// ParseOperation resolves an identifier such as "infixToPostfix". Matching is
// case-insensitive and dashes or underscores are ignored, so
// "infix-to-postfix" is accepted too.
func ParseOperation(s string) (Operation, error) {
	key := normalizeOperation(s)
	for _, op := range operations {
		if normalizeOperation(string(op)) == key {
			return op, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownOperation, s)
}

func normalizeOperation(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("-", "", "_", "", " ", "").Replace(s)
}

// IsEvaluation reports whether the operation produces a number.
func (op Operation) IsEvaluation() bool {
	return op == OpEvaluatePostfix || op == OpEvaluatePrefix
}

// Source returns the notation the operation reads: infix, postfix or prefix.
func (op Operation) Source() string {
	switch op {
	case OpInfixToPostfix, OpInfixToPrefix:
		return "infix"
	case OpPostfixToInfix, OpPostfixToPrefix, OpEvaluatePostfix:
		return "postfix"
	case OpPrefixToInfix, OpPrefixToPostfix, OpEvaluatePrefix:
		return "prefix"
	}
	return ""
}

// Target returns the notation the operation produces, or "value" for the
// evaluations.
func (op Operation) Target() string {
	switch op {
	case OpPostfixToInfix, OpPrefixToInfix:
		return "infix"
	case OpInfixToPostfix, OpPrefixToPostfix:
		return "postfix"
	case OpInfixToPrefix, OpPostfixToPrefix:
		return "prefix"
	case OpEvaluatePostfix, OpEvaluatePrefix:
		return "value"
	}
	return ""
}

// Outcome is the result of Run. Exactly one of Conversion and Evaluation is
// set, depending on the operation.
type Outcome struct {
	Operation  Operation
	Input      string
	Conversion *Conversion
	Evaluation *Evaluation
}

// ResultString returns the final result as text.
func (o *Outcome) ResultString() string {
	if o.Evaluation != nil {
		return FormatNumber(o.Evaluation.Result)
	}
	if o.Conversion != nil {
		return o.Conversion.Result
	}
	return ""
}

// StepCount returns the number of trace entries.
func (o *Outcome) StepCount() int {
	if o.Evaluation != nil {
		return len(o.Evaluation.Steps)
	}
	if o.Conversion != nil {
		return len(o.Conversion.Steps)
	}
	return 0
}

// Run executes op on expr. The only error is ErrUnknownOperation; the
// conversions and evaluations themselves always produce a result.
func Run(op Operation, expr string) (*Outcome, error) {
	out := &Outcome{Operation: op, Input: expr}
	var conv Conversion
	switch op {
	case OpInfixToPostfix:
		conv = InfixToPostfix(expr)
	case OpInfixToPrefix:
		conv = InfixToPrefix(expr)
	case OpPostfixToInfix:
		conv = PostfixToInfix(expr)
	case OpPostfixToPrefix:
		conv = PostfixToPrefix(expr)
	case OpPrefixToInfix:
		conv = PrefixToInfix(expr)
	case OpPrefixToPostfix:
		conv = PrefixToPostfix(expr)
	case OpEvaluatePostfix:
		eval := EvaluatePostfix(expr)
		out.Evaluation = &eval
		return out, nil
	case OpEvaluatePrefix:
		eval := EvaluatePrefix(expr)
		out.Evaluation = &eval
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownOperation, string(op))
	}
	out.Conversion = &conv
	return out, nil
}
