package country

import "errors"

var (
	ErrInvalidNames = errors.New("country: invalid name table")
	ErrNoRegions    = errors.New("country: metadata returned no regions")
)
