package entities

import (
	"errors"
	"fmt"
)

// ErrEmptySelection is returned when a submission carries no selected
// values. Nothing is graded or recorded.
var ErrEmptySelection = errors.New("no answers selected")

// NetworkError reports a failed fetch of a question source. It is
// recoverable when a cached copy of the source exists.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("fetching %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// DecodeError reports that a source document could not be decoded as
// plain JSON nor as Base64-wrapped JSON. Err carries the direct-parse
// failure, which is the more useful of the two.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding question data: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// StoreError reports a failed persistence operation. Reads that fail are
// treated as "not found"; writes that fail are surfaced as warnings and
// never discard valid in-memory data.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }
