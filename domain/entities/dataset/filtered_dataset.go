package dataset

import (
	"fmt"

	"bikeshare/domain/entities/station"
	"bikeshare/domain/entities/trip"
)

const allFilter = "all"

// Schema describes which optional columns the source file of a dataset carries.
// Optional columns are a dataset-level property: either every row has the column or none has it.
type Schema struct {
	Gender    bool `json:"gender"`
	BirthYear bool `json:"birth_year"`
}

// FilteredDataset contains the trips of a city that passed the month/day filter, in source order.
// + City: city which belongs the data
// + Month: month filter applied, "all" when no month filter was applied
// + Day: day filter applied, "all" when no day filter was applied
// + Schema: optional columns present in the source file
// + Stations: coordinates of the city stations, nil when the city has no stations file
type FilteredDataset struct {
	City     string
	Month    string
	Day      string
	Schema   Schema
	Stations map[string]station.StationData
	records  []trip.TripRecord
}

func NewFilteredDataset(city string, month string, day string, schema Schema, records []trip.TripRecord) *FilteredDataset {
	if records == nil {
		records = []trip.TripRecord{}
	}
	return &FilteredDataset{
		City:    city,
		Month:   month,
		Day:     day,
		Schema:  schema,
		records: records,
	}
}

// WithStations returns a dataset sharing the same records with the stations coordinates set
func (fd *FilteredDataset) WithStations(stations map[string]station.StationData) *FilteredDataset {
	withStations := *fd
	withStations.Stations = stations
	return &withStations
}

func (fd *FilteredDataset) Len() int {
	return len(fd.records)
}

func (fd *FilteredDataset) IsEmpty() bool {
	return len(fd.records) == 0
}

// Records returns a copy of the dataset records
func (fd *FilteredDataset) Records() []trip.TripRecord {
	records := make([]trip.TripRecord, len(fd.records))
	copy(records, fd.records)
	return records
}

// Each calls fn for every record in source order
func (fd *FilteredDataset) Each(fn func(record trip.TripRecord)) {
	for idx := range fd.records {
		fn(fd.records[idx])
	}
}

func (fd *FilteredDataset) HasGenderData() bool {
	return fd.Schema.Gender
}

func (fd *FilteredDataset) HasBirthYearData() bool {
	return fd.Schema.BirthYear
}

func (fd *FilteredDataset) HasStationsData() bool {
	return len(fd.Stations) > 0
}

// Window returns at most count records starting at start, preserving source order.
// A start beyond the end of the dataset returns an empty slice.
func (fd *FilteredDataset) Window(start int, count int) []trip.TripRecord {
	if start < 0 || count <= 0 || start >= len(fd.records) {
		return []trip.TripRecord{}
	}

	end := min(start+count, len(fd.records))
	window := make([]trip.TripRecord, end-start)
	copy(window, fd.records[start:end])
	return window
}

// DescribeFilter returns a readable description of the applied filter, e.g. "month: March, day: all"
func (fd *FilteredDataset) DescribeFilter() string {
	month, day := fd.Month, fd.Day
	if month == "" {
		month = allFilter
	}
	if day == "" {
		day = allFilter
	}
	return fmt.Sprintf("month: %s, day: %s", month, day)
}
