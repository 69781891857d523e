package loader

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"bikeshare/catalog"
	"bikeshare/domain/entities/dataset"
	"bikeshare/domain/entities/trip"
)

const loaderType = "trip-loader"

type TripLoader struct {
	config        TripLoaderConfig
	missingValues map[string]bool
}

func NewTripLoader(config TripLoaderConfig) *TripLoader {
	defaults := DefaultConfig()
	if len(config.TimeLayouts) == 0 {
		config.TimeLayouts = defaults.TimeLayouts
	}
	if config.MissingValues == nil {
		config.MissingValues = defaults.MissingValues
	}

	missingValues := make(map[string]bool, len(config.MissingValues))
	for _, value := range config.MissingValues {
		missingValues[value] = true
	}

	return &TripLoader{
		config:        config,
		missingValues: missingValues,
	}
}

func getLogMessage(city string, method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[component: %s][city: %s][method: %s][status: ERROR] %s: %s", loaderType, city, method, message, err.Error())
	}
	return fmt.Sprintf("[component: %s][city: %s][method: %s][status: OK] %s", loaderType, city, method, message)
}

// Load reads all the trips of the resource, derives month, day of week, hour and trip for each one
// and keeps the ones that pass the filter, in file order.
// Errors wrap ErrInvalidFilter (checked before reading anything) or ErrDatasetRead.
func (tl *TripLoader) Load(resource catalog.Resource, filter Filter) (*dataset.FilteredDataset, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	dataFile, err := os.Open(resource.Path)
	if err != nil {
		log.Debug(getLogMessage(resource.City, "Load", "error opening trips file", err))
		return nil, fmt.Errorf("%w: %s", ErrDatasetRead, err)
	}

	defer func(dataFile *os.File) {
		err := dataFile.Close()
		if err != nil {
			log.Error(getLogMessage(resource.City, "Load", fmt.Sprintf("error closing %s", resource.Path), err))
		}
	}(dataFile)

	filtered, err := tl.LoadFrom(resource.City, dataFile, filter)
	if err != nil {
		log.Error(getLogMessage(resource.City, "Load", fmt.Sprintf("error loading %s", resource.Path), err))
		return nil, err
	}

	if resource.HasStations() {
		stations, err := tl.LoadStations(resource.City, resource.StationsPath)
		if err != nil {
			log.Error(getLogMessage(resource.City, "Load", fmt.Sprintf("error loading %s", resource.StationsPath), err))
			return nil, err
		}
		filtered = filtered.WithStations(stations)
	}

	log.Debug(getLogMessage(resource.City, "Load", fmt.Sprintf("%v trips kept with filter %s in %s", filtered.Len(), filter, time.Since(start)), nil))
	return filtered, nil
}

// LoadFrom works like Load but reads the trips from reader
func (tl *TripLoader) LoadFrom(city string, reader io.Reader, filter Filter) (*dataset.FilteredDataset, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	table, err := readCSV(reader)
	if err != nil {
		return nil, err
	}

	columns, schema, err := tl.getColumns(table)
	if err != nil {
		return nil, err
	}

	var records []trip.TripRecord
	totalRows := table.rows()
	for row := 0; row < totalRows; row++ {
		record, err := tl.getTripRecord(columns, row)
		if err != nil {
			// header is line 1
			return nil, fmt.Errorf("%w: line %v: %w", ErrDatasetRead, row+2, err)
		}

		if filter.matches(record.Month, record.DayOfWeek) {
			records = append(records, record)
		}
	}

	log.Debug(getLogMessage(city, "LoadFrom", fmt.Sprintf("%v trips read, gender data: %v, birth year data: %v", totalRows, schema.Gender, schema.BirthYear), nil))
	return dataset.NewFilteredDataset(city, filter.MonthName(), filter.DayName(), schema, records), nil
}

// tripColumns contains the values of each column to analyze. Optional columns are nil when the file doesn't have them.
type tripColumns struct {
	startTime    []string
	endTime      []string
	tripDuration []string
	startStation []string
	endStation   []string
	userType     []string
	gender       []string
	birthYear    []string
}

func (tl *TripLoader) getColumns(table *csvTable) (*tripColumns, dataset.Schema, error) {
	var missing []string
	requiredColumn := func(name string) []string {
		values := table.column(name)
		if values == nil {
			missing = append(missing, name)
		}
		return values
	}
	optionalColumn := table.column

	cfg := tl.config.Columns
	columns := &tripColumns{
		startTime:    requiredColumn(cfg.StartTime),
		endTime:      requiredColumn(cfg.EndTime),
		tripDuration: requiredColumn(cfg.TripDuration),
		startStation: requiredColumn(cfg.StartStation),
		endStation:   requiredColumn(cfg.EndStation),
		userType:     requiredColumn(cfg.UserType),
		gender:       optionalColumn(cfg.Gender),
		birthYear:    optionalColumn(cfg.BirthYear),
	}
	if len(missing) > 0 {
		return nil, dataset.Schema{}, fmt.Errorf("%w: %w: %s", ErrDatasetRead, ErrMissingColumn, strings.Join(missing, ", "))
	}

	schema := dataset.Schema{
		Gender:    columns.gender != nil,
		BirthYear: columns.birthYear != nil,
	}
	return columns, schema, nil
}

func (tl *TripLoader) getTripRecord(columns *tripColumns, row int) (trip.TripRecord, error) {
	startTime, err := tl.parseTime(columns.startTime[row])
	if err != nil {
		log.Debugf("Invalid start time: %v", columns.startTime[row])
		return trip.TripRecord{}, err
	}

	duration, err := strconv.ParseFloat(strings.TrimSpace(columns.tripDuration[row]), 64)
	if err != nil || math.IsNaN(duration) || math.IsInf(duration, 0) {
		log.Debugf("Invalid duration type: %v", columns.tripDuration[row])
		return trip.TripRecord{}, fmt.Errorf("%w: %q", ErrInvalidDurationType, columns.tripDuration[row])
	}

	record := trip.NewTripRecord(
		startTime,
		columns.endTime[row],
		duration,
		columns.startStation[row],
		columns.endStation[row],
	)

	var gender string
	if columns.gender != nil {
		gender = tl.getOptionalValue(columns.gender[row])
	}

	var birthYear int
	if columns.birthYear != nil {
		birthYear, err = tl.parseBirthYear(columns.birthYear[row])
		if err != nil {
			log.Debugf("Invalid birth year: %v", columns.birthYear[row])
			return trip.TripRecord{}, err
		}
	}

	return record.WithUser(tl.getOptionalValue(columns.userType[row]), gender, birthYear), nil
}

func (tl *TripLoader) parseTime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range tl.config.TimeLayouts {
		parsed, err := time.Parse(layout, value)
		if err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
}

// parseBirthYear returns zero if the value is not recorded. Years may come as floats, e.g. 1989.0
func (tl *TripLoader) parseBirthYear(value string) (int, error) {
	value = tl.getOptionalValue(value)
	if value == "" {
		return 0, nil
	}

	year, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidBirthYearType, value)
	}
	if math.IsInf(year, 0) || year <= 0 || year != math.Trunc(year) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidBirthYearType, value)
	}
	return int(year), nil
}

// getOptionalValue returns the trimmed value, or the empty string if the value is not recorded
func (tl *TripLoader) getOptionalValue(value string) string {
	value = strings.TrimSpace(value)
	if tl.missingValues[value] {
		return ""
	}
	return value
}
