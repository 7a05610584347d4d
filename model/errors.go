package model

import "github.com/pkg/errors"

var (
	// ErrOutOfBounds is returned when a coordinate lies outside the grid
	ErrOutOfBounds = errors.New("coordinate out of bounds")
	// ErrInvalidDimensions is returned for non-positive or mismatched grid sizes
	ErrInvalidDimensions = errors.New("invalid grid dimensions")
	// ErrUnknownPattern is returned when a pattern name is not in the catalog
	ErrUnknownPattern = errors.New("unknown pattern")
)
