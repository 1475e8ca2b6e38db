package ncdgo

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyBatch is returned when a batch call receives no items.
	ErrEmptyBatch = errors.New("batch must contain at least one item")

	// ErrEmptyItem is returned when an item resolves to empty content.
	// Compressed-size ratios are meaningless for empty input.
	ErrEmptyItem = errors.New("item must not be empty")
)

// ErrFileOpen indicates a file-mode item whose path could not be
// opened for reading.
//
// The original underlying error can be accessed via errors.Unwrap, so
// errors.Is(err, fs.ErrNotExist) works as expected.
type ErrFileOpen struct {
	Path  string
	cause error
}

func (e *ErrFileOpen) Error() string {
	return fmt.Sprintf("open item %q: %v", e.Path, e.cause)
}

func (e *ErrFileOpen) Unwrap() error { return e.cause }
