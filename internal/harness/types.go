package harness

import "github.com/roach88/trendlab/internal/trend"

// TraceEvent records the outcome of one step.
type TraceEvent struct {
	Seq       int            `json:"seq"`
	Action    string         `json:"action"`
	Code      string         `json:"code"`
	Inserted  int            `json:"inserted,omitempty"`
	RecordID  int64          `json:"record_id,omitempty"`
	Metrics   *trend.Metrics `json:"metrics,omitempty"`
	Predicted []float64      `json:"predicted,omitempty"`
}

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass is true if every expect clause and assertion held.
	Pass bool `json:"pass"`

	// Trace has one event per step, in order.
	Trace []TraceEvent `json:"trace"`

	// Errors contains validation error messages.
	// Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Trace:  []TraceEvent{},
		Errors: []string{},
	}
}

// AddError adds a validation error and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}
