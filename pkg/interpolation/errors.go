package interpolation

import (
	"fmt"
)

// ErrDegenerateInput is returned when a sample set cannot define an
// interpolator: too few samples, repeated parameters, or (for strategies
// with extra requirements) a layout the strategy cannot handle.
//
// Individual problems, when there are several, are available via
// errors.Unwrap as a *multierror.Error.
type ErrDegenerateInput struct {
	Kind   Kind
	Reason string
	cause  error
}

func (e *ErrDegenerateInput) Error() string {
	if e.cause == nil {
		return fmt.Sprintf("degenerate input for %s interpolation: %s", e.Kind, e.Reason)
	}
	return fmt.Sprintf("degenerate input for %s interpolation: %s: %v", e.Kind, e.Reason, e.cause)
}

func (e *ErrDegenerateInput) Unwrap() error { return e.cause }

// NewErrDegenerateInput builds an ErrDegenerateInput; cause may be nil.
func NewErrDegenerateInput(kind Kind, reason string, cause error) *ErrDegenerateInput {
	return &ErrDegenerateInput{
		Kind:   kind,
		Reason: reason,
		cause:  cause,
	}
}

// ErrDuplicateParameter describes two samples sharing a parameter.
type ErrDuplicateParameter struct {
	First  int
	Second int
}

func (e ErrDuplicateParameter) Error() string {
	return fmt.Sprintf("samples #%d and #%d have equal parameters", e.First, e.Second)
}
