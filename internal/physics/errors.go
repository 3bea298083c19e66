package physics

import "errors"

var (
	// ErrInvalidLayout is returned when a tile sequence cannot form a
	// rectangular grid of the requested width.
	ErrInvalidLayout = errors.New("physics: invalid tile layout")

	// ErrInvalidHandle is returned for a handle that was never issued by this
	// world or whose slot has since been removed.
	ErrInvalidHandle = errors.New("physics: invalid handle")
)
