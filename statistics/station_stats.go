package statistics

import (
	"bikeshare/domain/business/distanceaccumulator"
	"bikeshare/domain/business/tripcounter"
	"bikeshare/domain/entities"
	"bikeshare/domain/entities/dataset"
	"bikeshare/domain/entities/trip"
	"bikeshare/stations"
)

const stationStatsType = "station-stats"

// StationStats most popular stations and trip.
// Distances are only computed when the dataset has station coordinates, and are nil otherwise.
type StationStats struct {
	Metadata               entities.Metadata         `json:"metadata"`
	Empty                  bool                      `json:"empty"`
	MostCommonStartStation *tripcounter.Mode[string] `json:"most_common_start_station"`
	MostCommonEndStation   *tripcounter.Mode[string] `json:"most_common_end_station"`
	MostCommonTrip         *tripcounter.Mode[string] `json:"most_common_trip"`
	MostCommonTripDistance *float64                  `json:"most_common_trip_distance_km,omitempty"`
	AverageTripDistance    *float64                  `json:"average_trip_distance_km,omitempty"`
}

// MostCommonTripCount returns how many times the most common trip was made, zero if the dataset is empty
func (ss StationStats) MostCommonTripCount() int {
	if ss.MostCommonTrip == nil {
		return 0
	}
	return ss.MostCommonTrip.Count
}

// ComputeStationStats returns the most common start station, end station and trip
func ComputeStationStats(fd *dataset.FilteredDataset) StationStats {
	startStations := tripcounter.NewTripCounter[string]()
	endStations := tripcounter.NewTripCounter[string]()
	trips := tripcounter.NewTripCounter[string]()

	var distanceCalculator *stations.DistanceCalculator
	distances := distanceaccumulator.NewDistanceAccumulator()
	if fd.HasStationsData() {
		distanceCalculator = stations.NewDistanceCalculator(fd.Stations)
	}

	fd.Each(func(record trip.TripRecord) {
		startStations.UpdateCounter(record.StartStation)
		endStations.UpdateCounter(record.EndStation)
		trips.UpdateCounter(record.Trip)

		if distanceCalculator != nil {
			if distance, ok := distanceCalculator.GetDistance(record.StartStation, record.EndStation); ok {
				distances.UpdateAccumulator(distance)
			}
		}
	})

	report := StationStats{
		Metadata:               newMetadata(fd, stationStatsType),
		Empty:                  fd.IsEmpty(),
		MostCommonStartStation: startStations.GetMode(),
		MostCommonEndStation:   endStations.GetMode(),
		MostCommonTrip:         trips.GetMode(),
	}

	if distanceCalculator == nil || report.MostCommonTrip == nil {
		return report
	}

	if average, err := distances.GetAverageDistance(); err == nil {
		report.AverageTripDistance = &average
	}

	// station names may contain " to ", take the stations from a record of the trip
	fd.Each(func(record trip.TripRecord) {
		if report.MostCommonTripDistance != nil || record.Trip != report.MostCommonTrip.Value {
			return
		}
		if distance, ok := distanceCalculator.GetDistance(record.StartStation, record.EndStation); ok {
			report.MostCommonTripDistance = &distance
		}
	})

	return report
}
