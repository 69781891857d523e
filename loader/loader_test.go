package loader

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bikeshare/catalog"
	"bikeshare/domain/entities/dataset"
	"bikeshare/domain/entities/trip"
)

func newTestResource(t *testing.T, city string, file string) catalog.Resource {
	t.Helper()
	return catalog.Resource{City: city, Path: filepath.Join("testdata", file)}
}

func mustFilter(t *testing.T, month string, day string) Filter {
	t.Helper()
	filter, err := NewFilter(month, day)
	require.NoError(t, err)
	return filter
}

func TestLoad_NoFilterKeepsEveryTrip(t *testing.T) {
	tripLoader := NewTripLoader(DefaultConfig())

	fd, err := tripLoader.Load(newTestResource(t, "chicago", "chicago.csv"), mustFilter(t, "all", "all"))
	require.NoError(t, err)

	require.Equal(t, 6, fd.Len())
	assert.True(t, fd.HasGenderData())
	assert.True(t, fd.HasBirthYearData())
	assert.False(t, fd.HasStationsData())

	first := fd.Window(0, 1)[0]
	assert.Equal(t, 1, first.Month)
	assert.Equal(t, "Monday", first.DayOfWeek)
	assert.Equal(t, 8, first.Hour)
	assert.Equal(t, "A to B", first.Trip)
	assert.Equal(t, 600.0, first.TripDuration)
	assert.Equal(t, "Male", first.Gender)
	assert.Equal(t, 1985, first.BirthYear)
	assert.Equal(t, "2017-01-02 08:15:00", first.EndTime)

	// blank cells are not recorded values
	third := fd.Window(2, 1)[0]
	assert.Empty(t, third.Gender)
	assert.False(t, third.HasBirthYear())
}

func TestLoad_MonthFilter(t *testing.T) {
	tripLoader := NewTripLoader(DefaultConfig())

	fd, err := tripLoader.Load(newTestResource(t, "chicago", "chicago.csv"), mustFilter(t, "March", "all"))
	require.NoError(t, err)

	require.Equal(t, 3, fd.Len())
	fd.Each(func(record trip.TripRecord) {
		assert.Equal(t, 3, record.Month)
	})
	assert.Equal(t, "March", fd.Month)
	assert.Equal(t, "all", fd.Day)
}

func TestLoad_DayFilter(t *testing.T) {
	tripLoader := NewTripLoader(DefaultConfig())

	fd, err := tripLoader.Load(newTestResource(t, "chicago", "chicago.csv"), mustFilter(t, "all", "friday"))
	require.NoError(t, err)

	require.Equal(t, 3, fd.Len())
	fd.Each(func(record trip.TripRecord) {
		assert.Equal(t, "Friday", record.DayOfWeek)
	})

	// source order is preserved
	hours := []int{}
	fd.Each(func(record trip.TripRecord) {
		hours = append(hours, record.Hour)
	})
	assert.Equal(t, []int{14, 8, 14}, hours)
}

func TestLoad_FilterWithoutMatchesIsEmpty(t *testing.T) {
	tripLoader := NewTripLoader(DefaultConfig())

	fd, err := tripLoader.Load(newTestResource(t, "washington", "washington.csv"), mustFilter(t, "January", "all"))
	require.NoError(t, err)

	assert.True(t, fd.IsEmpty())
	assert.Empty(t, fd.Window(0, 5))
}

func TestLoad_DatasetWithoutOptionalColumns(t *testing.T) {
	tripLoader := NewTripLoader(DefaultConfig())

	fd, err := tripLoader.Load(newTestResource(t, "washington", "washington.csv"), Filter{})
	require.NoError(t, err)

	require.Equal(t, 3, fd.Len())
	assert.Equal(t, dataset.Schema{}, fd.Schema)
	assert.InDelta(t, 489.066, fd.Window(0, 1)[0].TripDuration, 1e-9)
}

func TestLoad_WithStations(t *testing.T) {
	tripLoader := NewTripLoader(DefaultConfig())
	resource := newTestResource(t, "chicago", "chicago.csv")
	resource.StationsPath = filepath.Join("testdata", "stations.csv")

	fd, err := tripLoader.Load(resource, Filter{})
	require.NoError(t, err)

	require.True(t, fd.HasStationsData())
	assert.Len(t, fd.Stations, 2)
	assert.Equal(t, 41.8781, fd.Stations["A"].Latitude)
}

func TestLoad_Errors(t *testing.T) {
	testCases := []struct {
		name          string
		file          string
		stations      string
		expectedError error
	}{
		{name: "missing file", file: "missing.csv", expectedError: ErrDatasetRead},
		{name: "unparseable start time", file: "bad_date.csv", expectedError: ErrInvalidDate},
		{name: "unparseable duration", file: "bad_duration.csv", expectedError: ErrInvalidDurationType},
		{name: "missing required column", file: "missing_column.csv", expectedError: ErrMissingColumn},
		{name: "invalid station coordinates", file: "washington.csv", stations: "bad_stations.csv", expectedError: ErrInvalidCoordinates},
	}

	tripLoader := NewTripLoader(DefaultConfig())
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resource := newTestResource(t, "chicago", tc.file)
			if tc.stations != "" {
				resource.StationsPath = filepath.Join("testdata", tc.stations)
			}

			fd, err := tripLoader.Load(resource, Filter{})

			require.Error(t, err)
			assert.Nil(t, fd)
			assert.ErrorIs(t, err, ErrDatasetRead)
			assert.ErrorIs(t, err, tc.expectedError)
		})
	}
}

func TestLoad_InvalidFilterIsCheckedFirst(t *testing.T) {
	tripLoader := NewTripLoader(DefaultConfig())

	_, err := tripLoader.Load(newTestResource(t, "chicago", "missing.csv"), Filter{Month: "July"})

	require.ErrorIs(t, err, ErrInvalidFilter)
	assert.NotErrorIs(t, err, ErrDatasetRead)
}

func TestLoadFrom_InvalidBirthYear(t *testing.T) {
	data := "Start Time,End Time,Trip Duration,Start Station,End Station,User Type,Gender,Birth Year\n" +
		"2017-01-02 08:05:00,2017-01-02 08:15:00,600,A,B,Subscriber,Male,nineteen\n"

	_, err := NewTripLoader(DefaultConfig()).LoadFrom("chicago", strings.NewReader(data), Filter{})

	require.ErrorIs(t, err, ErrInvalidBirthYearType)
	assert.ErrorIs(t, err, ErrDatasetRead)
}

func TestLoadFrom_CustomColumnsAndLayouts(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Columns.StartTime = "started_at"
	cfg.TimeLayouts = []string{"02/01/2006 15:04"}
	data := "started_at,End Time,Trip Duration,Start Station,End Station,User Type\n" +
		"05/03/2017 10:15,x,60,A,B,Customer\n"

	fd, err := NewTripLoader(cfg).LoadFrom("new york", strings.NewReader(data), Filter{})
	require.NoError(t, err)

	record := fd.Window(0, 1)[0]
	assert.Equal(t, 3, record.Month)
	assert.Equal(t, 10, record.Hour)
	assert.Equal(t, "Customer", record.UserType)
}

func TestLoad_HeaderOnlyFileIsEmpty(t *testing.T) {
	tripLoader := NewTripLoader(DefaultConfig())
	resource := newTestResource(t, "chicago", "header_only.csv")
	resource.StationsPath = filepath.Join("testdata", "header_only_stations.csv")

	fd, err := tripLoader.Load(resource, Filter{})
	require.NoError(t, err)

	assert.True(t, fd.IsEmpty())
	assert.Equal(t, dataset.Schema{Gender: true, BirthYear: true}, fd.Schema)
	assert.False(t, fd.HasStationsData())
	assert.Empty(t, fd.Window(0, 5))
}

func TestLoadFrom_HeaderOnlyStillChecksColumns(t *testing.T) {
	data := "Start Time,End Time,Trip Duration,Start Station,End Station\n"

	fd, err := NewTripLoader(DefaultConfig()).LoadFrom("chicago", strings.NewReader(data), Filter{})

	assert.Nil(t, fd)
	assert.ErrorIs(t, err, ErrMissingColumn)
	assert.ErrorIs(t, err, ErrDatasetRead)
}

func TestLoadFrom_EmptyFile(t *testing.T) {
	_, err := NewTripLoader(DefaultConfig()).LoadFrom("chicago", strings.NewReader(""), Filter{})

	assert.ErrorIs(t, err, ErrDatasetRead)
}

func TestLoadFrom_KeepsRawTextOfRequiredColumns(t *testing.T) {
	data := "Start Time,End Time,Trip Duration,Start Station,End Station,User Type,Gender\n" +
		"2017-01-02 08:05:00,NA,600,NA,B,Subscriber,NA\n"

	fd, err := NewTripLoader(DefaultConfig()).LoadFrom("chicago", strings.NewReader(data), Filter{})
	require.NoError(t, err)

	record := fd.Window(0, 1)[0]
	assert.Equal(t, "NA", record.StartStation)
	assert.Equal(t, "NA to B", record.Trip)
	assert.Equal(t, "NA", record.EndTime)
	// optional columns still treat NA as not recorded
	assert.Empty(t, record.Gender)
}
