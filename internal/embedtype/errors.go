package embedtype

import (
	"errors"
	"fmt"
)

// Sentinel errors for container operations.
var (
	// ErrBadMagic is returned when the preamble does not start with the container magic.
	ErrBadMagic = errors.New("embedfs: bad magic")

	// ErrBadVersion is returned when the fixed version field is not 1.
	ErrBadVersion = errors.New("embedfs: bad version")

	// ErrTruncated is returned when a header or payload extends past the end of the container.
	ErrTruncated = errors.New("embedfs: truncated container")

	// ErrBadHeader is returned when header length fields contradict each other.
	ErrBadHeader = errors.New("embedfs: malformed header")

	// ErrUnterminatedName is returned when a name field has no null terminator.
	ErrUnterminatedName = errors.New("embedfs: unterminated name")

	// ErrSizeOverflow is returned when a length does not fit in a 32-bit header field.
	ErrSizeOverflow = errors.New("embedfs: size overflow")

	// ErrTooManyFiles is returned when the file count exceeds the configured limit.
	ErrTooManyFiles = errors.New("embedfs: too many files")
)

// FormatError describes a malformed container.
//
// Err is one of the sentinel errors above, so callers can match with errors.Is
// and still recover the offset and field details with errors.As.
type FormatError struct {
	// Offset is the byte offset of the header or field that failed to parse.
	Offset int

	// Field names the header field that was checked (e.g. "magic", "totalLen").
	Field string

	// Expected and Actual describe the mismatch. Expected may be empty.
	Expected string
	Actual   string

	Err error
}

func (e *FormatError) Error() string {
	if e.Expected == "" {
		return fmt.Sprintf("%v at offset %#x: %s %s", e.Err, e.Offset, e.Field, e.Actual)
	}
	return fmt.Sprintf("%v at offset %#x: %s: expected %s, got %s", e.Err, e.Offset, e.Field, e.Expected, e.Actual)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}
