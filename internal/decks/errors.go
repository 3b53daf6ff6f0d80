package decks

import "errors"

var (
	// ErrEmptyInput is returned when a generate action carries no usable images.
	ErrEmptyInput = errors.New("no images provided")
	// ErrSerialization marks a failure while writing the presentation file.
	ErrSerialization = errors.New("presentation serialization failed")
	// ErrNotFound is returned when a deck ID is unknown.
	ErrNotFound = errors.New("deck not found")
)
