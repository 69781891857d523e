package catalog

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

const (
	Chicago    = "chicago"
	NewYork    = "new york"
	Washington = "washington"
)

// DefaultCityData maps each city to the file holding its trips
var DefaultCityData = map[string]string{
	Chicago:    "chicago.csv",
	NewYork:    "new_york_city.csv",
	Washington: "washington.csv",
}

// Resource is the backing data of a city
// + City: normalized city name
// + Path: path to the trips file
// + StationsPath: path to the stations coordinates file, empty if the city has none
type Resource struct {
	City         string
	Path         string
	StationsPath string
}

func (r Resource) HasStations() bool {
	return r.StationsPath != ""
}

// Catalog static mapping between a city name and its resources
type Catalog struct {
	dataDir  string
	files    map[string]string
	stations map[string]string
}

// NewCatalog returns a catalog whose files are relative to dataDir. Only the three supported
// cities are kept from files and stations, other entries are ignored.
func NewCatalog(dataDir string, files map[string]string, stations map[string]string) *Catalog {
	cityFiles := make(map[string]string, len(DefaultCityData))
	for city, file := range DefaultCityData {
		cityFiles[city] = file
	}
	for city, file := range files {
		city = normalize(city)
		if _, ok := DefaultCityData[city]; ok && file != "" {
			cityFiles[city] = file
		}
	}

	stationFiles := make(map[string]string)
	for city, file := range stations {
		city = normalize(city)
		if _, ok := DefaultCityData[city]; ok && file != "" {
			stationFiles[city] = file
		}
	}

	return &Catalog{
		dataDir:  dataDir,
		files:    cityFiles,
		stations: stationFiles,
	}
}

// Resolve returns the resource of the given city. An error wrapping ErrUnknownCity is returned
// if the city is not one of chicago, new york or washington.
func (c *Catalog) Resolve(city string) (Resource, error) {
	name := normalize(city)
	file, ok := c.files[name]
	if !ok {
		return Resource{}, fmt.Errorf("%w: %q, valid cities are %s", ErrUnknownCity, city, strings.Join(c.Cities(), ", "))
	}

	resource := Resource{
		City: name,
		Path: c.path(file),
	}
	if stationsFile, ok := c.stations[name]; ok {
		resource.StationsPath = c.path(stationsFile)
	}
	return resource, nil
}

// Cities returns the supported cities sorted by name
func (c *Catalog) Cities() []string {
	cities := make([]string, 0, len(c.files))
	for city := range c.files {
		cities = append(cities, city)
	}
	sort.Strings(cities)
	return cities
}

func (c *Catalog) path(file string) string {
	if filepath.IsAbs(file) || c.dataDir == "" {
		return file
	}
	return filepath.Join(c.dataDir, file)
}

func normalize(city string) string {
	return strings.ToLower(strings.TrimSpace(city))
}
