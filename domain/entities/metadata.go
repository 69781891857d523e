package entities

// Metadata this struct contains extra information about a report produced in an analysis cycle
// + City: city which belongs the data
// + Type: this field helps us to recognize what kind of report it is
// + Filter: description of the month/day filter applied before the report was computed
// + Records: amount of trips the report was computed from
type Metadata struct {
	City    string `json:"city"`
	Type    string `json:"type"`
	Filter  string `json:"filter"`
	Records int    `json:"records"`
}

func NewMetadata(city string, reportType string, filter string, records int) Metadata {
	return Metadata{
		City:    city,
		Type:    reportType,
		Filter:  filter,
		Records: records,
	}
}

func (m Metadata) GetCity() string {
	return m.City
}

func (m Metadata) GetFilter() string {
	return m.Filter
}

func (m Metadata) GetRecords() int {
	return m.Records
}
