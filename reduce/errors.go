package reduce

import (
	"errors"
	"fmt"
)

// Kind classifies a reduce.Error without tying callers to a concrete error
// type per failure mode, matching the "kinds, not types" taxonomy this
// package's entry points fail with.
type Kind int

const (
	// InvalidInput means the graph handed to an entry point has an
	// unsupported shape or type flag: not directed, weighted, self-loops or
	// multi-edges permitted, too few vertices, and so on.
	InvalidInput Kind = iota

	// NotAcyclic means DagReduce was invoked with cycle-checking enabled and
	// a cycle was found.
	NotAcyclic

	// InternalInvariant means a contract-level impossibility was observed,
	// such as the Hamiltonian searcher failing on a component already known
	// to be strongly connected. It should never be triggered by well-formed
	// input.
	InternalInvariant
)

func (k Kind) String() string {
	switch k {
	case InvalidInput:
		return "invalid input"
	case NotAcyclic:
		return "not acyclic"
	case InternalInvariant:
		return "internal invariant violated"
	default:
		return "unknown"
	}
}

// Error is the concrete error type every entry point in this package
// returns. Its Kind is comparable with errors.Is against the sentinel
// ErrInvalidInput, ErrNotAcyclic and ErrInternalInvariant values.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrNotAcyclic        = errors.New("graph is not acyclic")
	ErrInternalInvariant = errors.New("internal invariant violated")
)

func kindSentinel(k Kind) error {
	switch k {
	case InvalidInput:
		return ErrInvalidInput
	case NotAcyclic:
		return ErrNotAcyclic
	case InternalInvariant:
		return ErrInternalInvariant
	default:
		return nil
	}
}

func newError(k Kind, message string, cause error) *Error {
	return &Error{Kind: k, Message: message, Cause: cause}
}

// Is makes errors.Is against the package-level Err* sentinels succeed
// according to e's Kind, regardless of the message or cause attached.
func (e *Error) Is(target error) bool {
	return target == kindSentinel(e.Kind)
}

func wrap(k Kind, message string, cause error) error {
	return newError(k, message, cause)
}
