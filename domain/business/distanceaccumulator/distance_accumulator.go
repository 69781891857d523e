package distanceaccumulator

import "errors"

var ErrEmptyAccumulator = errors.New("no distances accumulated")

// DistanceAccumulator struct that collects data about the distance traveled in trips
// + Counter: counts the amount of trips with a known distance
// + TotalDistance: sum of distances traveled, in km
type DistanceAccumulator struct {
	Counter       int     `json:"counter"`
	TotalDistance float64 `json:"total_distance"`
}

func NewDistanceAccumulator() *DistanceAccumulator {
	return &DistanceAccumulator{}
}

func (da *DistanceAccumulator) UpdateAccumulator(newDistance float64) {
	da.Counter += 1
	da.TotalDistance += newDistance
}

func (da *DistanceAccumulator) GetAverageDistance() (float64, error) {
	if da.Counter == 0 {
		return 0, ErrEmptyAccumulator
	}
	return da.TotalDistance / float64(da.Counter), nil
}
