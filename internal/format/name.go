package format

import (
	"bytes"

	"github.com/meigma/embedfs/internal/embedtype"
	"github.com/meigma/embedfs/internal/pathutil"
)

// EncodeName converts name to container separators and returns it null
// terminated and zero padded to a 4-byte boundary.
func EncodeName(name string) []byte {
	raw := pathutil.ToContainer(name)
	out := make([]byte, PaddedNameLen(raw))
	copy(out, raw)
	return out
}

// PaddedNameLen returns the on-wire size of name including its terminator.
func PaddedNameLen(name string) int {
	return Pad4(len(name) + 1)
}

// AppendName appends the encoded name with no header around it. The
// producer writes the last directory's name this way after the sentinel.
func AppendName(buf []byte, name string) []byte {
	return append(buf, EncodeName(name)...)
}

// DecodeName reads the null-terminated name starting at off and converts
// container separators back to slashes.
func DecodeName(buf []byte, off int) (string, error) {
	if off < 0 || off > len(buf) {
		return "", &embedtype.FormatError{
			Offset: off,
			Field:  "name",
			Actual: "starts past end of container",
			Err:    embedtype.ErrTruncated,
		}
	}
	n := bytes.IndexByte(buf[off:], 0)
	if n < 0 {
		return "", &embedtype.FormatError{
			Offset: off,
			Field:  "name",
			Actual: "has no terminator before end of container",
			Err:    embedtype.ErrUnterminatedName,
		}
	}
	return pathutil.FromContainer(string(buf[off : off+n])), nil
}
