package loader

// Columns contains the name of each column to analyze in a trips file
type Columns struct {
	StartTime    string `yaml:"start_time" validate:"required"`
	EndTime      string `yaml:"end_time" validate:"required"`
	TripDuration string `yaml:"trip_duration" validate:"required"`
	StartStation string `yaml:"start_station" validate:"required"`
	EndStation   string `yaml:"end_station" validate:"required"`
	UserType     string `yaml:"user_type" validate:"required"`
	Gender       string `yaml:"gender" validate:"required"`
	BirthYear    string `yaml:"birth_year" validate:"required"`
}

// StationColumns contains the name of each column of a stations file
type StationColumns struct {
	Name      string `yaml:"name" validate:"required"`
	Latitude  string `yaml:"latitude" validate:"required"`
	Longitude string `yaml:"longitude" validate:"required"`
}

// TripLoaderConfig configuration of the TripLoader
// + Columns: column names of the trips files
// + StationColumns: column names of the stations files
// + TimeLayouts: layouts accepted for Start Time, tried in order
// + MissingValues: cell values considered as not recorded in optional columns
type TripLoaderConfig struct {
	Columns        Columns        `yaml:"columns"`
	StationColumns StationColumns `yaml:"station_columns"`
	TimeLayouts    []string       `yaml:"time_layouts" validate:"required,min=1,dive,required"`
	MissingValues  []string       `yaml:"missing_values"`
}

// DefaultConfig returns the configuration matching the bikeshare files
func DefaultConfig() TripLoaderConfig {
	return TripLoaderConfig{
		Columns: Columns{
			StartTime:    "Start Time",
			EndTime:      "End Time",
			TripDuration: "Trip Duration",
			StartStation: "Start Station",
			EndStation:   "End Station",
			UserType:     "User Type",
			Gender:       "Gender",
			BirthYear:    "Birth Year",
		},
		StationColumns: StationColumns{
			Name:      "name",
			Latitude:  "latitude",
			Longitude: "longitude",
		},
		TimeLayouts: []string{
			"2006-01-02 15:04:05",
			"2006-01-02T15:04:05",
			"2006-01-02 15:04",
			"1/2/2006 15:04:05",
			"1/2/2006 15:04",
		},
		MissingValues: []string{"", "NaN", "NA", "nan", "<nil>"},
	}
}
