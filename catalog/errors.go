package catalog

import "errors"

var ErrUnknownCity = errors.New("unknown city")
