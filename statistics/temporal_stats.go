package statistics

import (
	"time"

	"bikeshare/domain/business/tripcounter"
	"bikeshare/domain/entities"
	"bikeshare/domain/entities/dataset"
	"bikeshare/domain/entities/trip"
)

const temporalStatsType = "temporal-stats"

// TemporalStats most frequent times of travel. Every mode is nil when the dataset is empty.
type TemporalStats struct {
	Metadata            entities.Metadata         `json:"metadata"`
	Empty               bool                      `json:"empty"`
	MostCommonMonth     *tripcounter.Mode[string] `json:"most_common_month"`
	MostCommonDayOfWeek *tripcounter.Mode[string] `json:"most_common_day_of_week"`
	MostCommonHour      *tripcounter.Mode[int]    `json:"most_common_hour"`
}

// ComputeTemporalStats returns the most common month, day of week and start hour of the trips
func ComputeTemporalStats(fd *dataset.FilteredDataset) TemporalStats {
	months := tripcounter.NewTripCounter[int]()
	days := tripcounter.NewTripCounter[string]()
	hours := tripcounter.NewTripCounter[int]()

	fd.Each(func(record trip.TripRecord) {
		months.UpdateCounter(record.Month)
		days.UpdateCounter(record.DayOfWeek)
		hours.UpdateCounter(record.Hour)
	})

	return TemporalStats{
		Metadata:            newMetadata(fd, temporalStatsType),
		Empty:               fd.IsEmpty(),
		MostCommonMonth:     getMonthName(months.GetMode()),
		MostCommonDayOfWeek: days.GetMode(),
		MostCommonHour:      hours.GetMode(),
	}
}

func getMonthName(mode *tripcounter.Mode[int]) *tripcounter.Mode[string] {
	if mode == nil {
		return nil
	}
	return &tripcounter.Mode[string]{
		Value: time.Month(mode.Value).String(),
		Count: mode.Count,
	}
}

func newMetadata(fd *dataset.FilteredDataset, reportType string) entities.Metadata {
	return entities.NewMetadata(fd.City, reportType, fd.DescribeFilter(), fd.Len())
}
