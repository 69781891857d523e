package statistics

import (
	"bikeshare/domain/business/tripcounter"
	"bikeshare/domain/entities"
	"bikeshare/domain/entities/dataset"
	"bikeshare/domain/entities/trip"
)

const userStatsType = "user-stats"

// BirthYearStats earliest, most recent and most common year of birth
type BirthYearStats struct {
	Earliest   int                   `json:"earliest"`
	Latest     int                   `json:"latest"`
	MostCommon tripcounter.Mode[int] `json:"most_common"`
}

// UserStats demographics of the users.
// + UserTypeCounts: trips per user type, users without type are not counted
// + GenderCounts: trips per gender. nil when the dataset has no gender data, which is not the same as an empty map
// + BirthYears: nil when the dataset has no birth year data or no trip records one
type UserStats struct {
	Metadata         entities.Metadata `json:"metadata"`
	Empty            bool              `json:"empty"`
	UserTypeCounts   map[string]int    `json:"user_type_counts"`
	HasGenderData    bool              `json:"has_gender_data"`
	GenderCounts     map[string]int    `json:"gender_counts,omitempty"`
	HasBirthYearData bool              `json:"has_birth_year_data"`
	BirthYears       *BirthYearStats   `json:"birth_years,omitempty"`
}

// ComputeUserStats returns counts of user types and genders and birth year statistics
func ComputeUserStats(fd *dataset.FilteredDataset) UserStats {
	userTypes := tripcounter.NewTripCounter[string]()
	genders := tripcounter.NewTripCounter[string]()
	birthYears := tripcounter.NewTripCounter[int]()

	fd.Each(func(record trip.TripRecord) {
		if record.UserType != "" {
			userTypes.UpdateCounter(record.UserType)
		}
		if record.Gender != "" {
			genders.UpdateCounter(record.Gender)
		}
		if record.HasBirthYear() {
			birthYears.UpdateCounter(record.BirthYear)
		}
	})

	report := UserStats{
		Metadata:         newMetadata(fd, userStatsType),
		Empty:            fd.IsEmpty(),
		UserTypeCounts:   userTypes.Counts(),
		HasGenderData:    fd.HasGenderData(),
		HasBirthYearData: fd.HasBirthYearData(),
	}

	if report.HasGenderData {
		report.GenderCounts = genders.Counts()
	}

	if report.HasBirthYearData && !birthYears.IsEmpty() {
		years := birthYears.Keys()
		report.BirthYears = &BirthYearStats{
			Earliest:   years[0],
			Latest:     years[len(years)-1],
			MostCommon: *birthYears.GetMode(),
		}
	}

	return report
}
