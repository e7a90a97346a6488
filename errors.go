package embedfs

import "github.com/meigma/embedfs/internal/embedtype"

// Sentinel errors re-exported from internal/embedtype.
//
// Format errors are returned wrapped in a *FormatError carrying the byte
// offset and the offending field; match them with errors.Is. Filesystem
// errors are passed through wrapped and stay reachable with errors.As
// (*fs.PathError).
var (
	// ErrBadMagic is returned when the container does not start with the magic word.
	ErrBadMagic = embedtype.ErrBadMagic

	// ErrBadVersion is returned when the version word is not 1.
	ErrBadVersion = embedtype.ErrBadVersion

	// ErrTruncated is returned when a header or payload extends past the end of the container.
	ErrTruncated = embedtype.ErrTruncated

	// ErrBadHeader is returned when header length fields contradict each other.
	ErrBadHeader = embedtype.ErrBadHeader

	// ErrUnterminatedName is returned when a name has no null terminator.
	ErrUnterminatedName = embedtype.ErrUnterminatedName

	// ErrSizeOverflow is returned when a file or directory does not fit the 32-bit length fields.
	ErrSizeOverflow = embedtype.ErrSizeOverflow

	// ErrTooManyFiles is returned when the source tree has more files than allowed.
	ErrTooManyFiles = embedtype.ErrTooManyFiles
)
