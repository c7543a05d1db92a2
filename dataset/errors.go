package dataset

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDataset indicates the file could not be parsed at all.
	ErrInvalidDataset = errors.New("dataset could not be parsed")

	// ErrUnsupportedFormat indicates a file extension other than .json or .csv.
	ErrUnsupportedFormat = errors.New("unsupported dataset format")
)

// RecordError describes a single rejected record.
type RecordError struct {
	Index int    // zero-based position in the input
	Id    string // record id when one could be determined
	Err   error
}

func (e *RecordError) Error() string {
	if e.Id != "" {
		return fmt.Sprintf("record %d (%s): %v", e.Index, e.Id, e.Err)
	}
	return fmt.Sprintf("record %d: %v", e.Index, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}
