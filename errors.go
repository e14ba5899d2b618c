package gridpath

import "errors"

var (
	// ErrInvalidInput is returned when a grid, start or goal cannot be searched.
	ErrInvalidInput = errors.New("invalid input")
	// ErrCancelled is returned when the context ends before the search does.
	ErrCancelled = errors.New("search cancelled")
	// ErrClosed is returned by a Stepper after Close.
	ErrClosed = errors.New("stepper closed")
)
