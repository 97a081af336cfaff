package store

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllSampleValues_EmptyStore(t *testing.T) {
	s := createTestStore(t)

	values, err := s.AllSampleValues(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, values)
	assert.Empty(t, values)
}

func TestAppendSamples_PreservesInsertionOrder(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AppendSamples(ctx, entries(3, 1, 2)))
	require.NoError(t, s.AppendSamples(ctx, entries(-7.5)))

	values, err := s.AllSampleValues(ctx)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 1, 2, -7.5}, values)
}

func TestAppendSamples_NoDedup(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	dup := []SampleEntry{{Value: 10, Note: "a"}, {Value: 10, Note: "a"}}
	require.NoError(t, s.AppendSamples(ctx, dup))
	require.NoError(t, s.AppendSamples(ctx, dup))

	samples, err := s.ReadSamples(ctx)
	require.NoError(t, err)
	require.Len(t, samples, 4)
	for i := 1; i < len(samples); i++ {
		assert.Greater(t, samples[i].ID, samples[i-1].ID)
	}
}

func TestAppendSamples_EmptyIsNoOp(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AppendSamples(ctx, nil))

	n, err := s.SampleCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestAppendSamples_NormalizesNote(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	// "e" + combining acute accent composes to U+00E9.
	require.NoError(t, s.AppendSamples(ctx, []SampleEntry{{Value: 1, Note: "cafe\u0301"}}))

	samples, err := s.ReadSamples(ctx)
	require.NoError(t, err)
	require.Len(t, samples, 1)
	assert.Equal(t, "caf\u00e9", samples[0].Note)
}

func TestAppendSamples_AllOrNothing(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AppendSamples(ctx, entries(1)))

	// SQLite binds NaN as NULL, which violates NOT NULL on samples.value.
	err := s.AppendSamples(ctx, []SampleEntry{{Value: 2}, {Value: math.NaN()}})
	require.Error(t, err)
	assert.True(t, IsPersistenceError(err))

	n, err := s.SampleCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
