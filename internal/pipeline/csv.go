package pipeline

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/roach88/trendlab/internal/store"
)

// csvSample is one row of an import file with header "value,note".
type csvSample struct {
	Value string `csv:"value"`
	Note  string `csv:"note"`
}

// ImportCSV reads samples from r and stores them in one submission.
// Values are validated like form input; any bad row rejects the whole file.
// Returns the number of samples stored.
func (p *Pipeline) ImportCSV(ctx context.Context, r io.Reader) (int, error) {
	var rows []*csvSample
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return 0, fmt.Errorf("import csv: %w", err)
	}

	entries := make([]store.SampleEntry, 0, len(rows))
	for i, row := range rows {
		v, err := parseToken(strings.TrimSpace(row.Value), i+1)
		if err != nil {
			return 0, err
		}
		entries = append(entries, store.SampleEntry{Value: v, Note: strings.TrimSpace(row.Note)})
	}

	if len(entries) == 0 {
		return 0, nil
	}

	if err := p.SubmitSamples(ctx, entries); err != nil {
		return 0, err
	}
	return len(entries), nil
}
