package harness

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/roach88/trendlab/internal/pipeline"
	"github.com/roach88/trendlab/internal/store"
	"github.com/roach88/trendlab/internal/testutil"
	"github.com/roach88/trendlab/internal/trend"
)

// defaultTolerance applies when a metrics expectation sets none.
const defaultTolerance = 1e-9

// Harness executes scenario steps against one pipeline.
type Harness struct {
	store    *store.Store
	pipeline *pipeline.Pipeline
	logger   *slog.Logger
}

// Run executes a scenario and returns the result.
//
// Each scenario runs in a fresh in-memory database for isolation.
// A returned error means the scenario could not be executed at all;
// failed expectations are reported in Result.Errors.
func Run(scenario *Scenario) (*Result, error) {
	st, err := store.OpenMemory()
	if err != nil {
		return nil, fmt.Errorf("failed to create in-memory store: %w", err)
	}
	defer st.Close()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil)) // Suppress logs in tests

	h := &Harness{
		store: st,
		pipeline: pipeline.New(st,
			pipeline.WithLogger(logger),
			pipeline.WithCycleIDs(testutil.NewSequentialIDs("cycle").Next),
		),
		logger: logger,
	}

	ctx := context.Background()
	result := NewResult()

	for i, step := range scenario.Steps {
		h.executeStep(ctx, i+1, step, result)
	}

	for _, errMsg := range h.evaluateAssertions(ctx, scenario.Assertions) {
		result.AddError(errMsg)
	}

	return result, nil
}

// executeStep runs one step, appends its trace event, and checks its expect clause.
func (h *Harness) executeStep(ctx context.Context, seq int, step Step, result *Result) {
	event := TraceEvent{Seq: seq, Action: step.Action, Code: pipeline.CodeOK}

	var err error
	switch step.Action {
	case ActionSubmit:
		var res pipeline.SubmitResult
		res, err = h.pipeline.SubmitInput(ctx, step.Values, step.Note)
		if err == nil {
			event.Inserted = res.Inserted
			if res.Notice != nil {
				event.Code = res.Notice.Code
			}
		}
	case ActionFit:
		var res pipeline.FitResult
		res, err = h.pipeline.RunFitCycle(ctx)
		if err == nil {
			m := res.Metrics
			event.RecordID = res.RecordID
			event.Metrics = &m
			event.Predicted = res.Predicted
		}
	case ActionMetrics:
		var (
			m  trend.Metrics
			ok bool
		)
		m, ok, err = h.pipeline.CurrentMetrics(ctx)
		if err == nil && ok {
			event.Metrics = &m
		}
	}

	if err != nil {
		event.Code = pipeline.Describe(err).Code
		h.logger.Debug("step failed", "seq", seq, "action", step.Action, "error", err)
	}
	result.Trace = append(result.Trace, event)

	for _, msg := range checkExpect(step, event) {
		result.AddError(fmt.Sprintf("step %d (%s): %s", seq, step.Action, msg))
	}
}

// checkExpect compares a step's trace event with its expect clause.
// Without an expect clause, any error code fails the step.
func checkExpect(step Step, event TraceEvent) []string {
	exp := step.Expect
	if exp == nil {
		if event.Code != pipeline.CodeOK {
			return []string{fmt.Sprintf("unexpected code %s", event.Code)}
		}
		return nil
	}

	var errs []string
	wantCode := exp.Code
	if wantCode == "" {
		wantCode = pipeline.CodeOK
	}
	if event.Code != wantCode {
		errs = append(errs, fmt.Sprintf("code: expected %s, got %s", wantCode, event.Code))
	}

	if exp.Inserted != nil && *exp.Inserted != event.Inserted {
		errs = append(errs, fmt.Sprintf("inserted: expected %d, got %d", *exp.Inserted, event.Inserted))
	}

	if exp.Metrics != nil {
		if event.Metrics == nil {
			errs = append(errs, "metrics: expected values, got none")
		} else {
			errs = append(errs, compareMetrics(*exp.Metrics, *event.Metrics)...)
		}
	}

	return errs
}

func compareMetrics(want MetricsExpect, got trend.Metrics) []string {
	tol := want.Tolerance
	if tol == 0 {
		tol = defaultTolerance
	}

	var errs []string
	check := func(name string, w, g float64) {
		if math.Abs(w-g) > tol {
			errs = append(errs, fmt.Sprintf("%s: expected %g, got %g (tolerance %g)", name, w, g, tol))
		}
	}
	check("r2", want.R2, got.R2)
	check("mae", want.MAE, got.MAE)
	check("mse", want.MSE, got.MSE)
	return errs
}
