package explain

import (
	"errors"
	"fmt"
)

// Kind classifies an explanation failure.
type Kind int

const (
	KindUnknown Kind = iota
	KindMissingCredentials
	KindRateLimited
	KindUnavailable
)

func (k Kind) String() string {
	switch k {
	case KindMissingCredentials:
		return "missing credentials"
	case KindRateLimited:
		return "rate limited"
	case KindUnavailable:
		return "service unavailable"
	default:
		return "unknown"
	}
}

var (
	ErrMissingCredentials = &Error{Kind: KindMissingCredentials}
	ErrRateLimited        = &Error{Kind: KindRateLimited}
	ErrUnavailable        = &Error{Kind: KindUnavailable}
)

// Error is an explanation failure. It never invalidates the computed result.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return "explain: " + e.Kind.String()
	}
	return fmt.Sprintf("explain: %s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same kind, so errors.Is(err, ErrRateLimited)
// works for wrapped failures.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Wrap attaches a kind to err.
func Wrap(kind Kind, err error) error {
	return &Error{Kind: kind, Err: err}
}

// IsRecoverable reports whether another explainer may be tried after err.
// Missing credentials, rate limiting and outages are recoverable.
func IsRecoverable(err error) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind != KindUnknown
}
