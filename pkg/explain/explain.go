package explain

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/OpenTraceLab/notation/pkg/history"
	"github.com/OpenTraceLab/notation/pkg/notation"
)

// Request carries the read-only context an explainer may use.
type Request struct {
	Operation notation.Operation
	Input     string
	Result    string
	Steps     []history.RecordStep
}

// RequestFromRecord builds a request from a stored or fresh record.
func RequestFromRecord(rec history.Record) Request {
	return Request{
		Operation: rec.Operation,
		Input:     rec.Input,
		Result:    rec.Result,
		Steps:     rec.Steps,
	}
}

// Explainer turns a computation into prose.
type Explainer interface {
	Explain(ctx context.Context, req Request) (string, error)
}

// Narrator explains a computation by walking its trace. It works offline and
// only fails when ctx is done.
type Narrator struct {
	// MaxSteps limits how many trace entries are narrated; 0 means all.
	MaxSteps int
}

// Explain implements Explainer.
func (n *Narrator) Explain(ctx context.Context, req Request) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var sb strings.Builder
	src, dst := req.Operation.Source(), req.Operation.Target()
	if req.Operation.IsEvaluation() {
		fmt.Fprintf(&sb, "Evaluating the %s expression %q gives %s.\n", src, req.Input, req.Result)
	} else {
		fmt.Fprintf(&sb, "Converting the %s expression %q to %s notation gives %q.\n", src, req.Input, dst, req.Result)
	}

	if len(req.Steps) == 0 {
		sb.WriteString("The input has no tokens, so there is nothing to do.\n")
		return sb.String(), nil
	}

	switch req.Operation {
	case notation.OpInfixToPostfix:
		sb.WriteString("Operands go straight to the output; operators wait on a stack until an operator of lower precedence, a closing parenthesis or the end of input releases them.\n")
	case notation.OpInfixToPrefix:
		sb.WriteString("The input is mirrored with parentheses swapped, converted to postfix, and the postfix result is reversed.\n")
	case notation.OpPrefixToInfix, notation.OpPrefixToPostfix, notation.OpEvaluatePrefix:
		sb.WriteString("The prefix input is scanned right to left, so each operator finds its left operand on top of the stack.\n")
	default:
		sb.WriteString("The input is scanned left to right; each operator combines the two most recent entries on the stack.\n")
	}

	fmt.Fprintf(&sb, "The trace has %d steps:\n", len(req.Steps))
	for i, step := range req.Steps {
		if n.MaxSteps > 0 && i >= n.MaxSteps {
			fmt.Fprintf(&sb, "  ... %d more\n", len(req.Steps)-i)
			break
		}
		if err := ctx.Err(); err != nil {
			return "", err
		}
		fmt.Fprintf(&sb, "  %d. [%s] %s\n", i+1, step.Token, step.Action)
	}
	return sb.String(), nil
}

// Chain tries explainers in order and returns the first explanation. A
// recoverable failure moves on to the next explainer; any other failure is
// returned immediately.
func Chain(explainers ...Explainer) Explainer {
	return chain(explainers)
}

type chain []Explainer

func (c chain) Explain(ctx context.Context, req Request) (string, error) {
	var errs []error
	for _, e := range c {
		text, err := e.Explain(ctx, req)
		if err == nil {
			return text, nil
		}
		if !IsRecoverable(err) {
			return "", err
		}
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		return "", &Error{Kind: KindUnavailable, Err: errors.New("no explainers configured")}
	}
	return "", errors.Join(errs...)
}
