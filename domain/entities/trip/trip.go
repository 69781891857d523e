package trip

import "time"

const tripSeparator = " to "

// TripRecord struct that contains one row of a city dataset
// + StartTime: date in which the trip begins
// + EndTime: date in which the trip ends, kept as it comes in the source file
// + TripDuration: duration of the trip in seconds
// + StartStation: name of the station in which the trip begins
// + EndStation: name of the station in which the trip ends
// + UserType: kind of user, e.g. Subscriber or Customer
// + Gender: gender of the user. Empty if the dataset or the row doesn't record it
// + BirthYear: birth year of the user. Zero if the dataset or the row doesn't record it
//
// Derived fields, set once by NewTripRecord:
// + Month: month of StartTime (1-12)
// + DayOfWeek: weekday name of StartTime
// + Hour: hour of StartTime (0-23)
// + Trip: "{StartStation} to {EndStation}"
type TripRecord struct {
	StartTime    time.Time `json:"start_time"`
	EndTime      string    `json:"end_time"`
	TripDuration float64   `json:"trip_duration"`
	StartStation string    `json:"start_station"`
	EndStation   string    `json:"end_station"`
	UserType     string    `json:"user_type"`
	Gender       string    `json:"gender,omitempty"`
	BirthYear    int       `json:"birth_year,omitempty"`
	Month        int       `json:"month"`
	DayOfWeek    string    `json:"day_of_week"`
	Hour         int       `json:"hour"`
	Trip         string    `json:"trip"`
}

// NewTripRecord builds a TripRecord and computes its derived fields from startTime and the stations
func NewTripRecord(startTime time.Time, endTime string, duration float64, startStation string, endStation string) TripRecord {
	return TripRecord{
		StartTime:    startTime,
		EndTime:      endTime,
		TripDuration: duration,
		StartStation: startStation,
		EndStation:   endStation,
		Month:        int(startTime.Month()),
		DayOfWeek:    startTime.Weekday().String(),
		Hour:         startTime.Hour(),
		Trip:         JoinStations(startStation, endStation),
	}
}

// WithUser returns a copy of the record with the user fields set
func (tr TripRecord) WithUser(userType string, gender string, birthYear int) TripRecord {
	tr.UserType = userType
	tr.Gender = gender
	tr.BirthYear = birthYear
	return tr
}

func (tr TripRecord) HasBirthYear() bool {
	return tr.BirthYear != 0
}

// JoinStations returns the trip label for a pair of stations
func JoinStations(startStation string, endStation string) string {
	return startStation + tripSeparator + endStation
}
