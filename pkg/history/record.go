package history

import (
	"time"

	"github.com/OpenTraceLab/notation/pkg/notation"
)

// Record is one persisted computation: the operation, its input, the final
// result and the full trace. Evaluation stacks are stored as formatted text so
// that conversions and evaluations share one shape.
type Record struct {
	ID        int                `json:"id" yaml:"id"`
	Operation notation.Operation `json:"operation" yaml:"operation"`
	Input     string             `json:"input" yaml:"input"`
	Result    string             `json:"result" yaml:"result"`
	Steps     []RecordStep       `json:"steps" yaml:"steps"`
	CreatedAt time.Time          `json:"created_at" yaml:"created_at"`
}

// RecordStep is a trace entry in storage form.
type RecordStep struct {
	Kind   string   `json:"kind,omitempty" yaml:"kind,omitempty"`
	Token  string   `json:"token" yaml:"token"`
	Stack  []string `json:"stack" yaml:"stack,flow"`
	Output string   `json:"output,omitempty" yaml:"output,omitempty"`
	Action string   `json:"action" yaml:"action"`
}

// NewRecord captures an outcome. The ID is assigned when the record is added
// to a repository.
func NewRecord(out *notation.Outcome, at time.Time) Record {
	rec := Record{
		Operation: out.Operation,
		Input:     out.Input,
		Result:    out.ResultString(),
		CreatedAt: at,
	}
	switch {
	case out.Conversion != nil:
		rec.Steps = make([]RecordStep, 0, len(out.Conversion.Steps))
		for _, s := range out.Conversion.Steps {
			rec.Steps = append(rec.Steps, RecordStep{
				Kind:   s.Kind.String(),
				Token:  s.Token,
				Stack:  append([]string{}, s.Stack...),
				Output: s.Output,
				Action: s.Action,
			})
		}
	case out.Evaluation != nil:
		rec.Steps = make([]RecordStep, 0, len(out.Evaluation.Steps))
		for _, s := range out.Evaluation.Steps {
			stack := make([]string, len(s.Stack))
			for i, v := range s.Stack {
				stack[i] = notation.FormatNumber(v)
			}
			rec.Steps = append(rec.Steps, RecordStep{
				Kind:   notation.TokenStep.String(),
				Token:  s.Token,
				Stack:  stack,
				Action: s.Action,
			})
		}
	}
	return rec
}

// Replay returns the stored computation as it was recorded. Nothing is
// recomputed.
func Replay(rec Record) Record {
	out := rec
	out.Steps = make([]RecordStep, len(rec.Steps))
	for i, s := range rec.Steps {
		s.Stack = append([]string{}, s.Stack...)
		out.Steps[i] = s
	}
	return out
}
