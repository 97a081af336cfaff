package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario defines a sequence of user actions and the expected outcome.
type Scenario struct {
	// Name uniquely identifies this scenario. Also names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Steps are executed in order against one store.
	Steps []Step `yaml:"steps"`

	// Assertions validate the final state.
	Assertions []Assertion `yaml:"assertions,omitempty"`
}

// Step is one user action.
type Step struct {
	// Action is one of "submit", "fit", "metrics".
	Action string `yaml:"action"`

	// Values is the raw comma-separated input (submit only).
	Values string `yaml:"values,omitempty"`

	// Note is attached to every submitted sample (submit only).
	Note string `yaml:"note,omitempty"`

	// Expect validates the step outcome. If nil the step must not fail.
	Expect *Expect `yaml:"expect,omitempty"`
}

// Expect specifies the expected outcome of a step.
type Expect struct {
	// Code is the expected notice code ("OK", "W001", "E002", ...).
	Code string `yaml:"code,omitempty"`

	// Inserted is the expected number of stored samples (submit only).
	Inserted *int `yaml:"inserted,omitempty"`

	// Metrics are the expected fit metrics (fit and metrics only).
	Metrics *MetricsExpect `yaml:"metrics,omitempty"`
}

// MetricsExpect holds expected metrics compared within Tolerance.
type MetricsExpect struct {
	R2        float64 `yaml:"r2"`
	MAE       float64 `yaml:"mae"`
	MSE       float64 `yaml:"mse"`
	Tolerance float64 `yaml:"tolerance,omitempty"`
}

// Assertion validates the final store state.
type Assertion struct {
	// Type specifies the assertion type:
	// - "sample_count": number of stored samples equals Count
	// - "history_count": number of fit records equals Count
	// - "no_metrics": no fit has been recorded
	Type string `yaml:"type"`

	// Count is the expected number of rows (used by sample_count, history_count).
	Count int `yaml:"count,omitempty"`
}

// Step actions.
const (
	ActionSubmit  = "submit"
	ActionFit     = "fit"
	ActionMetrics = "metrics"
)

// Assertion type constants.
const (
	AssertSampleCount  = "sample_count"
	AssertHistoryCount = "history_count"
	AssertNoMetrics    = "no_metrics"
)

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if len(s.Steps) == 0 {
		return fmt.Errorf("steps list is required and must be non-empty")
	}

	for i, step := range s.Steps {
		switch step.Action {
		case ActionSubmit, ActionFit, ActionMetrics:
		default:
			return fmt.Errorf("step %d: unknown action %q", i+1, step.Action)
		}
	}

	for i, a := range s.Assertions {
		switch a.Type {
		case AssertSampleCount, AssertHistoryCount, AssertNoMetrics:
		default:
			return fmt.Errorf("assertion %d: unknown type %q", i+1, a.Type)
		}
	}

	return nil
}
