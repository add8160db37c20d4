package notation

import "fmt"

// StepKind separates ordinary token steps from the synthetic phase markers
// that some operations add around their scan.
type StepKind int

const (
	// TokenStep records the state after processing one input token.
	TokenStep StepKind = iota
	// ReverseInputStep shows the mirrored input used by infix to prefix.
	ReverseInputStep
	// FlushStep records one operator popped after the input is exhausted.
	FlushStep
	// ReverseResultStep shows the final reversal that produces a prefix result.
	ReverseResultStep
)

// Reserved tokens used for the synthetic steps.
const (
	MarkerReverseInput  = "reverse-input"
	MarkerEnd           = "end"
	MarkerReverseResult = "reverse-result"
)

// Absent is the text an empty-stack pop contributes to a combined expression.
const Absent = "undefined"

func (k StepKind) String() string {
	switch k {
	case ReverseInputStep:
		return "reverse-input"
	case FlushStep:
		return "flush"
	case ReverseResultStep:
		return "reverse-result"
	default:
		return "token"
	}
}

// MarshalText encodes the kind by name.
func (k StepKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText decodes a kind written by MarshalText.
func (k *StepKind) UnmarshalText(text []byte) error {
	for _, kind := range []StepKind{TokenStep, ReverseInputStep, FlushStep, ReverseResultStep} {
		if kind.String() == string(text) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("notation: unknown step kind %q", text)
}

// Step is one entry of a conversion trace. Stack is a bottom-to-top copy.
type Step struct {
	Kind   StepKind `json:"kind" yaml:"kind"`
	Token  string   `json:"token" yaml:"token"`
	Stack  []string `json:"stack" yaml:"stack"`
	Output string   `json:"output" yaml:"output"`
	Action string   `json:"action" yaml:"action"`
}

// EvalStep is one entry of an evaluation trace. The running partial result is
// the top of Stack.
type EvalStep struct {
	Token  string    `json:"token" yaml:"token"`
	Stack  []float64 `json:"stack" yaml:"stack"`
	Action string    `json:"action" yaml:"action"`
}

// Conversion is the result of a notation conversion.
type Conversion struct {
	Steps  []Step `json:"steps" yaml:"steps"`
	Result string `json:"result" yaml:"result"`
}

// Evaluation is the result of evaluating a postfix or prefix expression.
type Evaluation struct {
	Steps  []EvalStep `json:"steps" yaml:"steps"`
	Result float64    `json:"result" yaml:"result"`
}
