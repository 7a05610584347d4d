package game

import "github.com/pkg/errors"

var (
	// ErrInvalidTransition is returned when an operation is not allowed in the current phase
	ErrInvalidTransition = errors.New("invalid state transition")
	// ErrInvalidInterval is returned for non-positive generation intervals or speeds
	ErrInvalidInterval = errors.New("invalid generation interval")
	// ErrInvalidDistribution is returned for random densities outside [0, 1]
	ErrInvalidDistribution = errors.New("invalid random distribution")
	// ErrCellOccupied is returned when toggling a cell the other player owns
	ErrCellOccupied = errors.New("cell owned by the other player")
)
