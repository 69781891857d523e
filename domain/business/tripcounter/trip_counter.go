package tripcounter

import (
	"cmp"
	"slices"
)

// Mode is the most frequent value of a field and the amount of times it appears
type Mode[K cmp.Ordered] struct {
	Value K   `json:"value"`
	Count int `json:"count"`
}

// TripCounter counts how many trips carry each value of a field (an hour, a station, a trip label...)
// + counters: amount of trips per value
// + total: amount of values counted
type TripCounter[K cmp.Ordered] struct {
	counters map[K]int
	total    int
}

func NewTripCounter[K cmp.Ordered]() *TripCounter[K] {
	return &TripCounter[K]{
		counters: make(map[K]int),
	}
}

func (tc *TripCounter[K]) UpdateCounter(key K) {
	tc.counters[key] += 1
	tc.total += 1
}

func (tc *TripCounter[K]) GetCounter(key K) int {
	return tc.counters[key]
}

func (tc *TripCounter[K]) IsEmpty() bool {
	return tc.total == 0
}

// Counts returns a copy of the counters
func (tc *TripCounter[K]) Counts() map[K]int {
	counts := make(map[K]int, len(tc.counters))
	for key, counter := range tc.counters {
		counts[key] = counter
	}
	return counts
}

// Keys returns the counted values in ascending order
func (tc *TripCounter[K]) Keys() []K {
	keys := make([]K, 0, len(tc.counters))
	for key := range tc.counters {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}

// GetMode returns the most frequent value. When several values are equally frequent
// the smallest one wins. Returns nil if nothing was counted.
func (tc *TripCounter[K]) GetMode() *Mode[K] {
	if tc.IsEmpty() {
		return nil
	}

	var mode *Mode[K]
	for _, key := range tc.Keys() {
		counter := tc.counters[key]
		if mode == nil || counter > mode.Count {
			mode = &Mode[K]{Value: key, Count: counter}
		}
	}
	return mode
}
