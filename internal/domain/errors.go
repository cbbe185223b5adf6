package domain

import "errors"

var (
	// ErrInvalidArgument marks a precondition failure, such as generating
	// pairs from an empty drawing set.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInsufficientPairs is returned when the attempt cap is reached before
	// enough distinct pairs were found.
	ErrInsufficientPairs = errors.New("insufficient distinct harness pairs")

	// ErrStorage wraps any failure talking to the drawing database.
	ErrStorage = errors.New("storage error")

	// ErrNotFound is returned when a requested drawing does not exist.
	ErrNotFound = errors.New("not found")
)
