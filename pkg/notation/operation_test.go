package notation

import (
	"errors"
	"testing"
)

func TestParseOperation(t *testing.T) {
	tests := []struct {
		in   string
		want Operation
	}{
		{"infixToPostfix", OpInfixToPostfix},
		{"INFIXTOPREFIX", OpInfixToPrefix},
		{"postfix-to-infix", OpPostfixToInfix},
		{"postfix_to_prefix", OpPostfixToPrefix},
		{" prefixToInfix ", OpPrefixToInfix},
		{"prefix-to-postfix", OpPrefixToPostfix},
		{"evaluate-postfix", OpEvaluatePostfix},
		{"evaluatePrefix", OpEvaluatePrefix},
	}

	for _, tt := range tests {
		got, err := ParseOperation(tt.in)
		if err != nil {
			t.Errorf("ParseOperation(%q) failed: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseOperation(%q) = %q, expected %q", tt.in, got, tt.want)
		}
	}

	if _, err := ParseOperation("infixToLisp"); !errors.Is(err, ErrUnknownOperation) {
		t.Errorf("Expected ErrUnknownOperation, got %v", err)
	}
}

func TestOperationsListing(t *testing.T) {
	ops := Operations()
	if len(ops) != 8 {
		t.Fatalf("Expected 8 operations, got %d", len(ops))
	}

	ops[0] = "mutated"
	if Operations()[0] != OpInfixToPostfix {
		t.Error("Operations should return a copy")
	}

	for _, op := range Operations() {
		if op.Source() == "" || op.Target() == "" {
			t.Errorf("%s: missing source or target notation", op)
		}
		if op.IsEvaluation() != (op.Target() == "value") {
			t.Errorf("%s: IsEvaluation disagrees with target %q", op, op.Target())
		}
	}
}

func TestRun(t *testing.T) {
	tests := []struct {
		op     Operation
		input  string
		result string
		steps  int
	}{
		{OpInfixToPostfix, "A+B*C", "ABC*+", 7},
		{OpInfixToPrefix, "A+B*C", "+A*BC", 8},
		{OpPostfixToInfix, "ABC*+", "(A+(B*C))", 5},
		{OpPostfixToPrefix, "ABC*+", "+A*BC", 5},
		{OpPrefixToInfix, "+A*BC", "(A+(B*C))", 5},
		{OpPrefixToPostfix, "+A*BC", "ABC*+", 5},
		{OpEvaluatePostfix, "234*+", "14", 5},
		{OpEvaluatePrefix, "+2*34", "14", 5},
	}

	for _, tt := range tests {
		t.Run(string(tt.op), func(t *testing.T) {
			out, err := Run(tt.op, tt.input)
			if err != nil {
				t.Fatalf("Run failed: %v", err)
			}
			if out.ResultString() != tt.result {
				t.Errorf("Expected result %q, got %q", tt.result, out.ResultString())
			}
			if out.StepCount() != tt.steps {
				t.Errorf("Expected %d steps, got %d", tt.steps, out.StepCount())
			}
			if tt.op.IsEvaluation() {
				if out.Evaluation == nil || out.Conversion != nil {
					t.Error("Evaluation outcome should only carry an Evaluation")
				}
			} else if out.Conversion == nil || out.Evaluation != nil {
				t.Error("Conversion outcome should only carry a Conversion")
			}
		})
	}

	if _, err := Run("bogus", "A"); !errors.Is(err, ErrUnknownOperation) {
		t.Errorf("Expected ErrUnknownOperation, got %v", err)
	}
}

func TestRunEmptyInput(t *testing.T) {
	for _, op := range Operations() {
		out, err := Run(op, "")
		if err != nil {
			t.Fatalf("%s: %v", op, err)
		}
		want := ""
		if op.IsEvaluation() {
			want = "0"
		}
		if out.ResultString() != want {
			t.Errorf("%s: expected %q, got %q", op, want, out.ResultString())
		}
		if out.StepCount() != 0 {
			t.Errorf("%s: expected no steps, got %d", op, out.StepCount())
		}
	}
}
