package statistics

import (
	"fmt"

	"bikeshare/domain/business/durationaccumulator"
	"bikeshare/domain/entities"
	"bikeshare/domain/entities/dataset"
	"bikeshare/domain/entities/trip"
)

const durationStatsType = "duration-stats"

// DurationStats total and average trip duration, in seconds.
// AverageDuration, MinDuration and MaxDuration are nil when the dataset is empty.
type DurationStats struct {
	Metadata        entities.Metadata `json:"metadata"`
	Empty           bool              `json:"empty"`
	Trips           int               `json:"trips"`
	TotalDuration   float64           `json:"total_duration"`
	AverageDuration *float64          `json:"average_duration"`
	MinDuration     *float64          `json:"min_duration"`
	MaxDuration     *float64          `json:"max_duration"`
}

// Average returns the average duration or ErrEmptyDataset if there were no trips
func (ds DurationStats) Average() (float64, error) {
	if ds.AverageDuration == nil {
		return 0, fmt.Errorf("%w: average duration is undefined", ErrEmptyDataset)
	}
	return *ds.AverageDuration, nil
}

// ComputeDurationStats returns the total and average trip duration. The report is always returned;
// for an empty dataset the total is zero, the average is undefined and the error wraps ErrEmptyDataset.
func ComputeDurationStats(fd *dataset.FilteredDataset) (DurationStats, error) {
	accumulator := durationaccumulator.NewDurationAccumulator()
	fd.Each(func(record trip.TripRecord) {
		accumulator.UpdateAccumulator(record.TripDuration)
	})

	report := DurationStats{
		Metadata:      newMetadata(fd, durationStatsType),
		Empty:         fd.IsEmpty(),
		Trips:         accumulator.GetCounter(),
		TotalDuration: accumulator.GetTotalDuration(),
	}

	average, err := accumulator.GetAverageDuration()
	if err != nil {
		return report, fmt.Errorf("%w: %s", ErrEmptyDataset, fd.DescribeFilter())
	}
	minDuration, _ := accumulator.GetMinDuration()
	maxDuration, _ := accumulator.GetMaxDuration()

	report.AverageDuration = &average
	report.MinDuration = &minDuration
	report.MaxDuration = &maxDuration
	return report, nil
}
