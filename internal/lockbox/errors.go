package lockbox

import "errors"

var (
	// ErrOutOfRange is returned by Toggle for coordinates outside the grid.
	ErrOutOfRange = errors.New("cell position out of range")

	// ErrSingular is returned when elimination finds a pivotless column.
	// The row-and-column toggle structure always yields a full-rank
	// system for positive dimensions, so hitting this means the system
	// was built wrong, not that the box is unsolvable.
	ErrSingular = errors.New("toggle system is singular")
)
