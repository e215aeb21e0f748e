package engine

import "errors"

var (
	// ErrInvalidConfiguration is returned by New when the board size is outside [1, MaxSize].
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrOutOfRange is returned by JumpTo for a step outside the history.
	ErrOutOfRange = errors.New("step out of range")

	// ErrInvariantViolation marks an internal consistency failure.
	// It signals a bug in the engine, never bad user input.
	ErrInvariantViolation = errors.New("invariant violation")
)
