package durationaccumulator

import (
	"errors"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

var ErrEmptyAccumulator = errors.New("no durations accumulated")

// DurationAccumulator struct that collects the durations of trips.
// + durations: duration of each trip, in seconds
type DurationAccumulator struct {
	durations []float64
}

func NewDurationAccumulator() *DurationAccumulator {
	return &DurationAccumulator{}
}

func (da *DurationAccumulator) UpdateAccumulator(duration float64) {
	da.durations = append(da.durations, duration)
}

func (da *DurationAccumulator) GetCounter() int {
	return len(da.durations)
}

// GetTotalDuration returns the sum of all durations, zero if the accumulator is empty
func (da *DurationAccumulator) GetTotalDuration() float64 {
	if len(da.durations) == 0 {
		return 0
	}
	return floats.Sum(da.durations)
}

func (da *DurationAccumulator) GetAverageDuration() (float64, error) {
	if len(da.durations) == 0 {
		return 0, ErrEmptyAccumulator
	}
	return stat.Mean(da.durations, nil), nil
}

func (da *DurationAccumulator) GetMinDuration() (float64, error) {
	if len(da.durations) == 0 {
		return 0, ErrEmptyAccumulator
	}
	return floats.Min(da.durations), nil
}

func (da *DurationAccumulator) GetMaxDuration() (float64, error) {
	if len(da.durations) == 0 {
		return 0, ErrEmptyAccumulator
	}
	return floats.Max(da.durations), nil
}
