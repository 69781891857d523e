package stations

import (
	"github.com/umahmood/haversine"

	"bikeshare/domain/entities/station"
)

// DistanceCalculator calculates the distance between two stations of a city.
// Distances are cached by pair of stations.
type DistanceCalculator struct {
	stations       map[string]station.StationData
	distancesCache map[string]float64
}

func NewDistanceCalculator(stations map[string]station.StationData) *DistanceCalculator {
	return &DistanceCalculator{
		stations:       stations,
		distancesCache: make(map[string]float64),
	}
}

// GetDistance returns the distance in km between two stations. The second value is false
// if any of the stations has unknown coordinates.
func (dc *DistanceCalculator) GetDistance(startStationName string, endStationName string) (float64, bool) {
	mapKey := startStationName + "|" + endStationName
	if distance, ok := dc.distancesCache[mapKey]; ok {
		return distance, true
	}

	startStation, ok := dc.stations[startStationName]
	if !ok {
		return 0, false
	}
	endStation, ok := dc.stations[endStationName]
	if !ok {
		return 0, false
	}

	distance := calculateDistance(startStation, endStation)
	dc.distancesCache[mapKey] = distance
	return distance, true
}

func calculateDistance(startStation station.StationData, endStation station.StationData) float64 {
	latStartStation, longStartStation := startStation.GetCoordinates()
	latEndStation, longEndStation := endStation.GetCoordinates()
	station1 := haversine.Coord{Lat: latStartStation, Lon: longStartStation}
	station2 := haversine.Coord{Lat: latEndStation, Lon: longEndStation}

	_, km := haversine.Distance(station1, station2)
	return km
}
