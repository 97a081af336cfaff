package harness

import (
	"context"
	"fmt"
)

// evaluateAssertions checks final-state assertions and returns failure messages.
func (h *Harness) evaluateAssertions(ctx context.Context, assertions []Assertion) []string {
	var errs []string

	for i, a := range assertions {
		if err := h.evaluate(ctx, a); err != nil {
			errs = append(errs, fmt.Sprintf("assertion %d (%s): %v", i+1, a.Type, err))
		}
	}

	return errs
}

func (h *Harness) evaluate(ctx context.Context, a Assertion) error {
	switch a.Type {
	case AssertSampleCount:
		n, err := h.store.SampleCount(ctx)
		if err != nil {
			return err
		}
		if n != a.Count {
			return fmt.Errorf("expected %d samples, got %d", a.Count, n)
		}

	case AssertHistoryCount:
		history, err := h.store.FitHistory(ctx)
		if err != nil {
			return err
		}
		if len(history) != a.Count {
			return fmt.Errorf("expected %d fit records, got %d", a.Count, len(history))
		}

	case AssertNoMetrics:
		_, ok, err := h.store.LatestFitRecord(ctx)
		if err != nil {
			return err
		}
		if ok {
			return fmt.Errorf("expected no fit record, found one")
		}

	default:
		return fmt.Errorf("unknown assertion type %q", a.Type)
	}

	return nil
}
