package pipeline

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/roach88/trendlab/internal/store"
)

// ParseError reports a token that is not a finite real number.
type ParseError struct {
	// Token is the offending token after trimming.
	Token string

	// Position is the 1-based position of the token in the input.
	Position int

	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid number %q at position %d", e.Token, e.Position)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// SubmitResult reports what a submission did.
type SubmitResult struct {
	Inserted int `json:"inserted"`

	// Notice is set for outcomes the user should see, such as an empty input.
	Notice *Notice `json:"notice,omitempty"`
}

// ParseValues splits a comma-separated list and parses every token as a
// real number. It fails on the first invalid token; nothing is returned in
// that case.
func ParseValues(raw string) ([]float64, error) {
	tokens := strings.Split(raw, ",")
	values := make([]float64, 0, len(tokens))

	for i, tok := range tokens {
		v, err := parseToken(strings.TrimSpace(tok), i+1)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}

	return values, nil
}

func parseToken(tok string, pos int) (float64, error) {
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, &ParseError{Token: tok, Position: pos, Err: err}
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &ParseError{Token: tok, Position: pos, Err: fmt.Errorf("not a finite number")}
	}
	return v, nil
}

// SubmitInput parses a comma-separated list of numbers and stores each one
// with note. Empty input is a no-op answered with a warning notice. A single
// malformed token rejects the whole submission before anything is stored.
func (p *Pipeline) SubmitInput(ctx context.Context, raw, note string) (SubmitResult, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return SubmitResult{Notice: &Notice{
			Severity: SeverityWarning,
			Code:     CodeEmptyInput,
			Message:  "Enter data to add",
		}}, nil
	}

	values, err := ParseValues(raw)
	if err != nil {
		return SubmitResult{}, err
	}

	note = strings.TrimSpace(note)
	entries := make([]store.SampleEntry, len(values))
	for i, v := range values {
		entries[i] = store.SampleEntry{Value: v, Note: note}
	}

	if err := p.SubmitSamples(ctx, entries); err != nil {
		return SubmitResult{}, err
	}

	return SubmitResult{
		Inserted: len(entries),
		Notice: &Notice{
			Severity: SeverityInfo,
			Code:     CodeOK,
			Message:  "Data successfully added to the database",
		},
	}, nil
}
