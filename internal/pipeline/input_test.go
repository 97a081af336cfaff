package pipeline

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValues(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []float64
	}{
		{"single", "5", []float64{5}},
		{"spaces", " 1 , 2.5 ,-3 ", []float64{1, 2.5, -3}},
		{"exponent", "1e3,2E-1", []float64{1000, 0.2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseValues(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseValues_Invalid(t *testing.T) {
	tests := []struct {
		raw      string
		token    string
		position int
	}{
		{"1,abc,3", "abc", 2},
		{"1,,3", "", 2},
		{"NaN", "NaN", 1},
		{"1,+Inf", "+Inf", 2},
		{"1;2", "1;2", 1},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			_, err := ParseValues(tt.raw)
			require.Error(t, err)

			var pe *ParseError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, tt.token, pe.Token)
			assert.Equal(t, tt.position, pe.Position)
		})
	}
}

func TestSubmitInput_ParseErrorInsertsNothing(t *testing.T) {
	p, st := newTestPipeline(t)
	ctx := context.Background()

	_, err := p.SubmitInput(ctx, "7", "seed")
	require.NoError(t, err)

	_, err = p.SubmitInput(ctx, "1,abc,3", "bad")
	var pe *ParseError
	require.ErrorAs(t, err, &pe)

	n, err := st.SampleCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestSubmitInput_EmptyIsWarning(t *testing.T) {
	p, st := newTestPipeline(t)
	ctx := context.Background()

	for _, raw := range []string{"", "   "} {
		res, err := p.SubmitInput(ctx, raw, "note")
		require.NoError(t, err)
		assert.Equal(t, 0, res.Inserted)
		require.NotNil(t, res.Notice)
		assert.Equal(t, SeverityWarning, res.Notice.Severity)
		assert.Equal(t, CodeEmptyInput, res.Notice.Code)
	}

	n, err := st.SampleCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestSubmitInput_StoresNoteOnEverySample(t *testing.T) {
	p, _ := newTestPipeline(t)
	ctx := context.Background()

	res, err := p.SubmitInput(ctx, "1, 2, 3", "  batch one ")
	require.NoError(t, err)
	assert.Equal(t, 3, res.Inserted)
	assert.Equal(t, SeverityInfo, res.Notice.Severity)

	samples, err := p.Samples(ctx)
	require.NoError(t, err)
	require.Len(t, samples, 3)
	for i, smp := range samples {
		assert.Equal(t, float64(i+1), smp.Value)
		assert.Equal(t, "batch one", smp.Note)
	}
}
