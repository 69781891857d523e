package station

// StationData struct that contains the coordinates of a station
type StationData struct {
	City      string  `json:"city"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func NewStationData(city string, name string, latitude float64, longitude float64) StationData {
	return StationData{
		City:      city,
		Name:      name,
		Latitude:  latitude,
		Longitude: longitude,
	}
}

func (sd StationData) GetCoordinates() (float64, float64) {
	return sd.Latitude, sd.Longitude
}

// IsValid returns true if latitude is between -90 and 90 and longitude between -180 and 180
func (sd StationData) IsValid() bool {
	if sd.Name == "" {
		return false
	}
	if sd.Latitude < -90 || sd.Latitude > 90 {
		return false
	}
	return sd.Longitude >= -180 && sd.Longitude <= 180
}
