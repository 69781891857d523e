package loader

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"bikeshare/domain/entities/station"
)

// LoadStations reads the stations file of a city and returns the stations by name.
// A station with invalid coordinates aborts the load with an error wrapping ErrDatasetRead.
func (tl *TripLoader) LoadStations(city string, path string) (map[string]station.StationData, error) {
	stationsFile, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrDatasetRead, err)
	}
	defer func(stationsFile *os.File) {
		err := stationsFile.Close()
		if err != nil {
			log.Error(getLogMessage(city, "LoadStations", fmt.Sprintf("error closing %s", path), err))
		}
	}(stationsFile)

	table, err := readCSV(stationsFile)
	if err != nil {
		return nil, err
	}

	cfg := tl.config.StationColumns
	for _, required := range []string{cfg.Name, cfg.Latitude, cfg.Longitude} {
		if !table.hasColumn(required) {
			return nil, fmt.Errorf("%w: %w: %s", ErrDatasetRead, ErrMissingColumn, required)
		}
	}

	stationNames := table.column(cfg.Name)
	latitudes := table.column(cfg.Latitude)
	longitudes := table.column(cfg.Longitude)

	stations := make(map[string]station.StationData, len(stationNames))
	for idx := range stationNames {
		latitude, latErr := strconv.ParseFloat(strings.TrimSpace(latitudes[idx]), 64)
		longitude, longErr := strconv.ParseFloat(strings.TrimSpace(longitudes[idx]), 64)
		stationData := station.NewStationData(city, strings.TrimSpace(stationNames[idx]), latitude, longitude)
		if latErr != nil || longErr != nil || !stationData.IsValid() {
			return nil, fmt.Errorf("%w: line %v: %w: %q", ErrDatasetRead, idx+2, ErrInvalidCoordinates, stationNames[idx])
		}
		stations[stationData.Name] = stationData
	}

	log.Debug(getLogMessage(city, "LoadStations", fmt.Sprintf("%v stations loaded from %s", len(stations), path), nil))
	return stations, nil
}
