package durationaccumulator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDurationAccumulator_Empty(t *testing.T) {
	accumulator := NewDurationAccumulator()

	assert.Zero(t, accumulator.GetTotalDuration())
	_, err := accumulator.GetAverageDuration()
	assert.ErrorIs(t, err, ErrEmptyAccumulator)
	_, err = accumulator.GetMinDuration()
	assert.ErrorIs(t, err, ErrEmptyAccumulator)
	_, err = accumulator.GetMaxDuration()
	assert.ErrorIs(t, err, ErrEmptyAccumulator)
}

func TestDurationAccumulator_Aggregates(t *testing.T) {
	accumulator := NewDurationAccumulator()
	for _, duration := range []float64{300, 120.5, 600, 0} {
		accumulator.UpdateAccumulator(duration)
	}

	assert.Equal(t, 4, accumulator.GetCounter())
	assert.InDelta(t, 1020.5, accumulator.GetTotalDuration(), 1e-9)

	average, err := accumulator.GetAverageDuration()
	require.NoError(t, err)
	assert.InDelta(t, 1020.5/4, average, 1e-9)

	minDuration, err := accumulator.GetMinDuration()
	require.NoError(t, err)
	assert.Zero(t, minDuration)

	maxDuration, err := accumulator.GetMaxDuration()
	require.NoError(t, err)
	assert.Equal(t, 600.0, maxDuration)
}
