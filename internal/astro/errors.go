package astro

import "fmt"

// EphemerisError wraps a failure of the underlying astronomy primitive.
// Astronomical data is load-bearing: any body failing aborts the whole run.
type EphemerisError struct {
	Body string
	Err  error
}

func (e *EphemerisError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("ephemeris failure for %s: %v", e.Body, e.Err)
	}
	return fmt.Sprintf("ephemeris failure: %v", e.Err)
}

func (e *EphemerisError) Unwrap() error { return e.Err }

// ValidationError reports a malformed BirthInput field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// CalculationError reports an internal invariant violation mid-pipeline,
// such as a missing fixed-table entry. It indicates a defect, not bad input.
type CalculationError struct {
	Stage string
	Err   error
}

func (e *CalculationError) Error() string {
	return fmt.Sprintf("calculation failed at %s: %v", e.Stage, e.Err)
}

func (e *CalculationError) Unwrap() error { return e.Err }

func calcErrorf(stage, format string, args ...interface{}) *CalculationError {
	return &CalculationError{Stage: stage, Err: fmt.Errorf(format, args...)}
}
