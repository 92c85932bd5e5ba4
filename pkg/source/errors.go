package source

import (
	"fmt"
)

// SourceUnavailableError is returned when the catalog cannot be read.
type SourceUnavailableError struct {
	Path string
	Err  error
}

func (err SourceUnavailableError) Error() string {
	return fmt.Sprintf("catalog %q is unavailable: %v", err.Path, err.Err)
}

func (err SourceUnavailableError) Unwrap() error {
	return err.Err
}

var _ error = SourceUnavailableError{}

// DecodeError is returned when the catalog content is malformed. Index is
// the position of the offending entry, or -1 when the document as a whole
// could not be decoded.
type DecodeError struct {
	Path  string
	Index int
	Err   error
}

func (err DecodeError) Error() string {
	if err.Index < 0 {
		return fmt.Sprintf("failed to decode catalog %q: %v", err.Path, err.Err)
	}
	return fmt.Sprintf("failed to decode catalog %q: entry %d: %v", err.Path, err.Index, err.Err)
}

func (err DecodeError) Unwrap() error {
	return err.Err
}

var _ error = DecodeError{}
