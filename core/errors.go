package core

import "errors"

var (
	// ErrConfiguration marks unknown environment or agent names and
	// parameter combinations that cannot be simulated.
	ErrConfiguration = errors.New("configuration error")
	// ErrInvalidArgument marks an action or prediction outside [0,k).
	ErrInvalidArgument = errors.New("invalid argument")
	ErrCancelled       = errors.New("context cancelled")
)
