package trend

import (
	"fmt"

	"github.com/montanaflynn/stats"
)

// Model is a fitted line: value = Slope*index + Intercept.
type Model struct {
	Slope     float64
	Intercept float64
}

// Predict returns the model's value at indexes 0..n-1.
func (m Model) Predict(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = m.Slope*float64(i) + m.Intercept
	}
	return out
}

// FitLine computes the ordinary least-squares line of values against their
// index. A single value, or a run of identical values, fits a flat line
// through that value exactly.
func FitLine(values []float64) (Model, error) {
	if len(values) == 0 {
		return Model{}, &InsufficientDataError{}
	}
	if constant(values) {
		return Model{Slope: 0, Intercept: values[0]}, nil
	}

	yMean, err := stats.Mean(values)
	if err != nil {
		return Model{}, fmt.Errorf("fit line: %w", err)
	}
	xMean := float64(len(values)-1) / 2

	var sxy, sxx float64
	for i, y := range values {
		dx := float64(i) - xMean
		sxy += dx * (y - yMean)
		sxx += dx * dx
	}

	slope := sxy / sxx
	return Model{Slope: slope, Intercept: yMean - slope*xMean}, nil
}

// Fit returns the trend line's prediction for every position in values.
// len(result) == len(values).
func Fit(values []float64) ([]float64, error) {
	m, err := FitLine(values)
	if err != nil {
		return nil, err
	}
	return m.Predict(len(values)), nil
}

func constant(values []float64) bool {
	for _, v := range values[1:] {
		if v != values[0] {
			return false
		}
	}
	return true
}
