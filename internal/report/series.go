package report

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
)

// SeriesPoint is one row of the plot export.
type SeriesPoint struct {
	Index     int     `csv:"index" json:"index"`
	Observed  float64 `csv:"observed" json:"observed"`
	Predicted float64 `csv:"predicted" json:"predicted"`
}

// Series zips observed and predicted over a shared index axis.
// Both slices must have the same length.
func Series(observed, predicted []float64) ([]SeriesPoint, error) {
	if len(observed) != len(predicted) {
		return nil, fmt.Errorf("series: %d observed vs %d predicted", len(observed), len(predicted))
	}

	points := make([]SeriesPoint, len(observed))
	for i := range observed {
		points[i] = SeriesPoint{Index: i, Observed: observed[i], Predicted: predicted[i]}
	}
	return points, nil
}

// WriteSeriesCSV writes the observed and predicted series as CSV with an
// "index,observed,predicted" header.
func WriteSeriesCSV(w io.Writer, observed, predicted []float64) error {
	points, err := Series(observed, predicted)
	if err != nil {
		return err
	}
	if err := gocsv.Marshal(&points, w); err != nil {
		return fmt.Errorf("write series csv: %w", err)
	}
	return nil
}
