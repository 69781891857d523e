package statistics

import "errors"

// ErrEmptyDataset is returned along with a report computed over a dataset without trips
var ErrEmptyDataset = errors.New("no trips match the filter")
