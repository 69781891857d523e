package loader

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// csvTable is a csv file read as strings. Cells keep their raw text, missing values are
// resolved by the loader only on optional columns.
// + header: column names of the file
// + frame: data rows, nil when the file only has the header
type csvTable struct {
	header []string
	frame  *dataframe.DataFrame
}

func readCSV(reader io.Reader) (*csvTable, error) {
	records, err := csv.NewReader(reader).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrDatasetRead, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: file has no header", ErrDatasetRead)
	}

	table := &csvTable{header: records[0]}
	if len(records) == 1 {
		return table, nil
	}

	df := dataframe.LoadRecords(
		records,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues([]string{}),
	)
	if df.Err != nil {
		return nil, fmt.Errorf("%w: %s", ErrDatasetRead, df.Err)
	}
	table.frame = &df
	return table, nil
}

func (ct *csvTable) hasColumn(name string) bool {
	for _, column := range ct.header {
		if column == name {
			return true
		}
	}
	return false
}

func (ct *csvTable) rows() int {
	if ct.frame == nil {
		return 0
	}
	return ct.frame.Nrow()
}

// column returns the raw values of the column, nil if the file doesn't have it
func (ct *csvTable) column(name string) []string {
	if !ct.hasColumn(name) {
		return nil
	}
	if ct.frame == nil {
		return []string{}
	}
	return ct.frame.Col(name).Records()
}
