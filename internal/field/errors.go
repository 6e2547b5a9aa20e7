package field

import (
	"errors"
	"fmt"
)

// Boundary errors. The calculators themselves never return errors; these
// are produced by validation and parsing at the edge of the engine.
var (
	// ErrInvalidParameter indicates a size or density outside its valid range.
	ErrInvalidParameter = errors.New("field: invalid parameter")

	// ErrUnsupportedDistribution indicates an unknown distribution type name.
	ErrUnsupportedDistribution = errors.New("field: unsupported distribution")

	// ErrEmptyGrid indicates grid bounds or spacing that produce no samples.
	ErrEmptyGrid = errors.New("field: grid has no sample points")
)

// ParamError wraps an error with the offending parameter.
type ParamError struct {
	Param   string
	Value   float64
	Wrapped error
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%s: %s=%g", e.Wrapped.Error(), e.Param, e.Value)
}

func (e *ParamError) Unwrap() error {
	return e.Wrapped
}

// Invalid is shorthand for a ParamError wrapping ErrInvalidParameter.
func Invalid(param string, value float64) error {
	return &ParamError{Param: param, Value: value, Wrapped: ErrInvalidParameter}
}
