package trend

import "fmt"

// InsufficientDataError is returned when there are no values to fit or score.
type InsufficientDataError struct{}

func (e *InsufficientDataError) Error() string {
	return "insufficient data: at least one sample is required"
}

// LengthMismatchError is returned when observed and predicted differ in length.
type LengthMismatchError struct {
	Observed  int
	Predicted int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("length mismatch: %d observed vs %d predicted", e.Observed, e.Predicted)
}

// DegenerateMetricError is returned when R² is undefined: the observed values
// are constant but the prediction does not reproduce them.
type DegenerateMetricError struct {
	SSRes float64
}

func (e *DegenerateMetricError) Error() string {
	return fmt.Sprintf("r2 undefined: observed values are constant but residual sum of squares is %g", e.SSRes)
}
