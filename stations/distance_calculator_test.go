package stations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bikeshare/domain/entities/station"
)

func TestGetDistance(t *testing.T) {
	calculator := NewDistanceCalculator(map[string]station.StationData{
		"A": station.NewStationData("chicago", "A", 41.8781, -87.6298),
		"B": station.NewStationData("chicago", "B", 41.9742, -87.9073),
	})

	distance, ok := calculator.GetDistance("A", "B")
	require.True(t, ok)
	assert.InDelta(t, 25.2, distance, 0.5)

	back, ok := calculator.GetDistance("B", "A")
	require.True(t, ok)
	assert.InDelta(t, distance, back, 1e-9)

	same, ok := calculator.GetDistance("A", "A")
	require.True(t, ok)
	assert.Zero(t, same)
}

func TestGetDistance_UnknownStation(t *testing.T) {
	calculator := NewDistanceCalculator(map[string]station.StationData{
		"A": station.NewStationData("chicago", "A", 41.8781, -87.6298),
	})

	_, ok := calculator.GetDistance("A", "Z")
	assert.False(t, ok)

	_, ok = NewDistanceCalculator(nil).GetDistance("A", "A")
	assert.False(t, ok)
}
