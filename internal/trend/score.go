package trend

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
)

// Metrics holds goodness-of-fit statistics.
type Metrics struct {
	R2  float64 `json:"r2"`
	MAE float64 `json:"mae"`
	MSE float64 `json:"mse"`
}

// Score compares observed to predicted values and returns R², MAE and MSE.
//
// R² is 1 - SS_res/SS_tot. When the observed values are constant (SS_tot = 0)
// R² is 1 if the prediction is exact and undefined otherwise, reported as a
// *DegenerateMetricError. No partial result is returned on error.
func Score(observed, predicted []float64) (Metrics, error) {
	if len(observed) != len(predicted) {
		return Metrics{}, &LengthMismatchError{Observed: len(observed), Predicted: len(predicted)}
	}
	if len(observed) == 0 {
		return Metrics{}, &InsufficientDataError{}
	}

	mean, err := stats.Mean(observed)
	if err != nil {
		return Metrics{}, fmt.Errorf("score: %w", err)
	}
	flat := constant(observed)

	var ssRes, ssTot, absSum float64
	for i, o := range observed {
		r := o - predicted[i]
		ssRes += r * r
		absSum += math.Abs(r)
		if !flat {
			d := o - mean
			ssTot += d * d
		}
	}

	n := float64(len(observed))
	m := Metrics{MAE: absSum / n, MSE: ssRes / n}

	switch {
	case ssTot != 0:
		m.R2 = 1 - ssRes/ssTot
	case ssRes == 0:
		m.R2 = 1
	default:
		return Metrics{}, &DegenerateMetricError{SSRes: ssRes}
	}

	return m, nil
}
