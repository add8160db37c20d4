package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// runCLI executes the root command with args and returns what it printed to
// stdout.
func runCLI(t *testing.T, historyFile string, args ...string) (string, error) {
	t.Helper()
	return runCLIWithInput(t, historyFile, nil, args...)
}

// runCLIWithInput is runCLI with stdin replaced by in.
func runCLIWithInput(t *testing.T, historyFile string, in io.Reader, args ...string) (string, error) {
	t.Helper()

	// Capture stdout
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	// Read in background to prevent pipe buffer from blocking
	var buf bytes.Buffer
	done := make(chan struct{})
	go func() {
		buf.ReadFrom(r)
		close(done)
	}()

	// Reset flags to prevent accumulation between tests
	verbose = false
	showSteps = false
	outputFormat = "text"
	stepIndex = -1
	explainMaxSteps = 0
	noHistory = historyFile == ""
	historyPath = historyFile

	rootCmd.SetIn(in)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	rootCmd.SetIn(nil)

	// Restore stdout and wait for reader
	w.Close()
	os.Stdout = old
	<-done

	return buf.String(), err
}

func TestConvertE2E(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		wantErr     bool
		wantContain []string
	}{
		{
			name:        "infix to postfix",
			args:        []string{"convert", "infixToPostfix", "A+B*C"},
			wantContain: []string{"Operation: infixToPostfix", "Input:     A+B*C", "Result:    ABC*+"},
		},
		{
			name:        "expression split over arguments",
			args:        []string{"convert", "infixToPostfix", "A", "+", "B"},
			wantContain: []string{"Result:    AB+"},
		},
		{
			name: "infix to prefix with steps",
			args: []string{"convert", "infix-to-prefix", "(A+B)*C", "--steps"},
			wantContain: []string{
				"Result:    *+ABC",
				"Steps (10):",
				"reverse-input",
				"reverse-result",
				"Reverse postfix CBA+* to get prefix *+ABC",
			},
		},
		{
			name:        "single step",
			args:        []string{"convert", "infixToPostfix", "A+B", "--step", "0"},
			wantContain: []string{"Steps (1):", "Append operand A to output"},
		},
		{
			name:    "step out of range",
			args:    []string{"convert", "infixToPostfix", "A+B", "--step", "9"},
			wantErr: true,
		},
		{
			name:        "postfix to infix",
			args:        []string{"convert", "postfixToInfix", "ABC*+"},
			wantContain: []string{"Result:    (A+(B*C))"},
		},
		{
			name:        "evaluation as yaml",
			args:        []string{"convert", "evaluatePostfix", "92/", "--format", "yaml"},
			wantContain: []string{"operation: evaluatePostfix", "4.5", "steps:"},
		},
		{
			name:        "prefix evaluation as json",
			args:        []string{"eval", "prefix", "+2*34", "--format", "json"},
			wantContain: []string{`"operation": "evaluatePrefix"`, `"result": "14"`},
		},
		{
			name:        "postfix evaluation",
			args:        []string{"eval", "postfix", "234*+"},
			wantContain: []string{"Result:    14"},
		},
		{
			name:        "empty expression",
			args:        []string{"eval", "postfix"},
			wantContain: []string{"Result:    0"},
		},
		{
			name:    "unknown operation",
			args:    []string{"convert", "infixToLisp", "A+B"},
			wantErr: true,
		},
		{
			name:    "unknown notation",
			args:    []string{"eval", "infix", "2+3"},
			wantErr: true,
		},
		{
			name:    "unknown format",
			args:    []string{"convert", "infixToPostfix", "A+B", "--format", "xml"},
			wantErr: true,
		},
		{
			name:        "list operations",
			args:        []string{"ops"},
			wantContain: []string{"infixToPostfix", "evaluatePrefix", "prefix -> value"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := runCLI(t, "", tt.args...)

			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected error but got none\nOutput: %s", output)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v\nOutput: %s", err, output)
			}
			for _, want := range tt.wantContain {
				if !strings.Contains(output, want) {
					t.Errorf("Output missing expected string: %q\nGot:\n%s", want, output)
				}
			}
		})
	}
}

func TestTreeE2E(t *testing.T) {
	output, err := runCLI(t, "", "tree", "A+B*C")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	for _, want := range []string{"infix:   (A+(B*C))", "postfix: ABC*+", "prefix:  +A*BC", "sexp:    (+ A (* B C))", "operands: A B C"} {
		if !strings.Contains(output, want) {
			t.Errorf("Output missing expected string: %q\nGot:\n%s", want, output)
		}
	}

	if _, err := runCLI(t, "", "tree", "A+"); err == nil {
		t.Error("Expected an error for a dangling operator")
	}
}

func TestTreeSingleOperandE2E(t *testing.T) {
	tests := []struct {
		input   string
		operand string
	}{
		{"A", "A"},
		{"((x))", "x"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			output, err := runCLI(t, "", "tree", tt.input)
			if err != nil {
				t.Fatalf("Unexpected error: %v\nOutput: %s", err, output)
			}
			for _, want := range []string{"infix:   " + tt.operand, "sexp:    " + tt.operand, "depth:   1"} {
				if !strings.Contains(output, want) {
					t.Errorf("Output missing expected string: %q\nGot:\n%s", want, output)
				}
			}
		})
	}
}

func TestTreeFromStdinE2E(t *testing.T) {
	output, err := runCLIWithInput(t, "", strings.NewReader("A*(B+C)\n"), "tree")
	if err != nil {
		t.Fatalf("Unexpected error: %v\nOutput: %s", err, output)
	}
	for _, want := range []string{"infix:   (A*(B+C))", "postfix: ABC+*", "prefix:  *A+BC"} {
		if !strings.Contains(output, want) {
			t.Errorf("Output missing expected string: %q\nGot:\n%s", want, output)
		}
	}

	if _, err := runCLIWithInput(t, "", strings.NewReader("(A+B"), "tree"); err == nil {
		t.Error("Expected an error for unbalanced input on stdin")
	}
}

func TestExplainE2E(t *testing.T) {
	output, err := runCLI(t, "", "explain", "infixToPostfix", "A+B")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	for _, want := range []string{"Result: AB+", `to postfix notation gives "AB+"`, "The trace has 4 steps:"} {
		if !strings.Contains(output, want) {
			t.Errorf("Output missing expected string: %q\nGot:\n%s", want, output)
		}
	}
}

func TestHistoryE2E(t *testing.T) {
	historyFile := filepath.Join(t.TempDir(), "history.yaml")

	if _, err := runCLI(t, historyFile, "convert", "infixToPostfix", "A*B+C"); err != nil {
		t.Fatalf("convert failed: %v", err)
	}
	if _, err := runCLI(t, historyFile, "eval", "postfix", "23^"); err != nil {
		t.Fatalf("eval failed: %v", err)
	}

	output, err := runCLI(t, historyFile, "history", "list")
	if err != nil {
		t.Fatalf("history list failed: %v", err)
	}
	for _, want := range []string{"infixToPostfix", "AB*C+", "evaluatePostfix", "23^"} {
		if !strings.Contains(output, want) {
			t.Errorf("history list missing %q\nGot:\n%s", want, output)
		}
	}

	output, err = runCLI(t, historyFile, "history", "replay", "1")
	if err != nil {
		t.Fatalf("history replay failed: %v", err)
	}
	for _, want := range []string{"Replaying #1", "Result:    AB*C+", "Steps (6):", "End of input: pop + to output"} {
		if !strings.Contains(output, want) {
			t.Errorf("history replay missing %q\nGot:\n%s", want, output)
		}
	}
	if showSteps {
		t.Error("replay should not leave the --steps flag switched on")
	}

	output, err = runCLI(t, historyFile, "history", "show", "2")
	if err != nil {
		t.Fatalf("history show failed: %v", err)
	}
	if !strings.Contains(output, "Result:    8") {
		t.Errorf("history show missing result\nGot:\n%s", output)
	}

	if _, err := runCLI(t, historyFile, "history", "show", "7"); err == nil {
		t.Error("Expected an error for an unknown record")
	}
	if _, err := runCLI(t, historyFile, "history", "show", "abc"); err == nil {
		t.Error("Expected an error for a non-numeric id")
	}

	if _, err := runCLI(t, historyFile, "history", "clear"); err != nil {
		t.Fatalf("history clear failed: %v", err)
	}
	output, err = runCLI(t, historyFile, "history", "list")
	if err != nil {
		t.Fatalf("history list failed: %v", err)
	}
	if !strings.Contains(output, "No history recorded") {
		t.Errorf("Expected empty history\nGot:\n%s", output)
	}
}
