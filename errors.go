package outcome

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotAFunction is returned by New when the initializer is nil.
	ErrNotAFunction = errors.New("outcome: initializer is not a function")

	// ErrSelfResolution is the rejection reason of an outcome that was
	// resolved with itself.
	ErrSelfResolution = errors.New("outcome: outcome resolved with itself")
)

// HandlerFailure wraps a value recovered from a panicking reaction handler.
// The downstream outcome of the failed handler rejects with it.
type HandlerFailure struct {
	v interface{}
}

func newHandlerFailure(v interface{}) *HandlerFailure {
	return &HandlerFailure{v: v}
}

func (e *HandlerFailure) Error() string {
	return fmt.Sprintf("outcome: handler failed: %v", e.v)
}

// Value returns the recovered panic value.
func (e *HandlerFailure) Value() interface{} {
	return e.v
}

func (e *HandlerFailure) Unwrap() error {
	if err, ok := e.v.(error); ok {
		return err
	}
	return nil
}

// AggregateError is the rejection reason of Any when every input rejected.
// Reasons are kept in input order.
type AggregateError struct {
	reasons []error
}

func newAggregateError(reasons []error) *AggregateError {
	return &AggregateError{reasons: reasons}
}

func (e *AggregateError) Error() string {
	b := strings.Builder{}
	b.WriteString("outcome: all outcomes rejected")
	for _, reason := range e.reasons {
		b.WriteString(": ")
		b.WriteString(reason.Error())
	}
	return b.String()
}

// Reasons returns the individual rejection reasons, in input order.
func (e *AggregateError) Reasons() []error {
	return e.reasons
}

func (e *AggregateError) Unwrap() []error {
	return e.reasons
}
