package loader

import "errors"

var (
	ErrDatasetRead          = errors.New("error reading dataset")
	ErrInvalidFilter        = errors.New("invalid filter")
	ErrMissingColumn        = errors.New("missing column")
	ErrInvalidDate          = errors.New("invalid date")
	ErrInvalidDurationType  = errors.New("invalid duration type")
	ErrInvalidBirthYearType = errors.New("invalid birth year type")
	ErrInvalidCoordinates   = errors.New("invalid station coordinates")
)
