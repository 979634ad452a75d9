package domain

import (
	"errors"
	"fmt"
)

// ErrEmptyInput signals that there were no records to aggregate or export.
// It is informational: aggregations still return an empty table.
var ErrEmptyInput = errors.New("no records")

// InputError reports an unusable scan root. It is raised before any
// traversal starts and no partial results accompany it.
type InputError struct {
	Path   string
	Reason string
	Err    error
}

func (e *InputError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid root %s: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid root %s: %s", e.Path, e.Reason)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// ExtractionError reports a file whose metadata could not be read
type ExtractionError struct {
	Path string
	Op   string // "stat" or "owner"
	Err  error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// TraversalError reports a directory whose contents could not be listed
type TraversalError struct {
	Path string
	Err  error
}

func (e *TraversalError) Error() string {
	return fmt.Sprintf("read dir %s: %v", e.Path, e.Err)
}

func (e *TraversalError) Unwrap() error {
	return e.Err
}

// IsInputError reports whether err is, or wraps, an InputError
func IsInputError(err error) bool {
	var inputErr *InputError
	return errors.As(err, &inputErr)
}
