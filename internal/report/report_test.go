package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/trendlab/internal/store"
	"github.com/roach88/trendlab/internal/trend"
)

func newGoldie(t *testing.T) *goldie.Goldie {
	t.Helper()
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestMetrics_Golden(t *testing.T) {
	var buf bytes.Buffer
	err := Metrics(&buf, &trend.Metrics{R2: 0.987654, MAE: 1.5, MSE: 2.0 / 3.0}, 2)
	require.NoError(t, err)

	newGoldie(t).Assert(t, "metrics", buf.Bytes())
}

func TestMetrics_None(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Metrics(&buf, nil, 2))
	assert.Equal(t, NoMetrics+"\n", buf.String())
}

func TestNumber_Decimals(t *testing.T) {
	assert.Equal(t, "0.67", Number(2.0/3.0, 2))
	assert.Equal(t, "0.6667", Number(2.0/3.0, 4))
	assert.Equal(t, "1", Number(1, 0))
	assert.Equal(t, "-3.00", Number(-3, 2))
}

func TestTables_Golden(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Tables(&buf, []string{"fit_records", "samples"}))

	newGoldie(t).Assert(t, "tables", buf.Bytes())
}

func TestTables_None(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Tables(&buf, nil))
	assert.Equal(t, NoTables+"\n", buf.String())
}

func TestHistory(t *testing.T) {
	var buf bytes.Buffer
	History(&buf, []store.FitRecord{
		{ID: 1, R2: 1, MAE: 0, MSE: 0},
		{ID: 2, R2: 0.5, MAE: 0.25, MSE: 0.125},
	}, 2)

	out := buf.String()
	assert.Contains(t, out, "MAE")
	assert.Contains(t, out, "1.00")
	assert.Contains(t, out, "0.50")
	assert.Contains(t, out, "0.13")
}

func TestSamples(t *testing.T) {
	var buf bytes.Buffer
	Samples(&buf, []store.Sample{{ID: 7, Value: 10, Note: "first batch"}}, 2)

	out := buf.String()
	assert.Contains(t, out, "NOTE")
	assert.Contains(t, out, "10.00")
	assert.Contains(t, out, "first batch")
}

func TestWriteSeriesCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSeriesCSV(&buf, []float64{10, 20, 40}, []float64{8, 23, 38}))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "index,observed,predicted", lines[0])
}

func TestSeries_LengthMismatch(t *testing.T) {
	_, err := Series([]float64{1, 2}, []float64{1})
	assert.Error(t, err)
}
