package format

import (
	"encoding/binary"
	"fmt"

	"github.com/meigma/embedfs/internal/embedtype"
)

const (
	// Magic is the first word of a little-endian container.
	Magic uint32 = 0x87654321

	// MagicBigEndian is the magic written by big-endian producers. Such
	// containers are recognized only to report them as unsupported.
	MagicBigEndian uint32 = 0x12345678

	// Version is the fixed value of the second preamble word.
	Version uint32 = 1

	// PreambleSize is the size of magic plus version.
	PreambleSize = 8

	// HeaderSize is the fixed part of both header kinds: three uint32 words.
	HeaderSize = 12

	// SentinelSize is the length of the all-zero end marker.
	SentinelSize = 12

	// Alignment is the boundary every header starts on.
	Alignment = 4
)

var order = binary.LittleEndian

// Pad4 returns the smallest multiple of 4 that is >= n.
func Pad4(n int) int {
	return (n + Alignment - 1) &^ (Alignment - 1)
}

// AppendPreamble appends magic and version to buf.
func AppendPreamble(buf []byte) []byte {
	buf = order.AppendUint32(buf, Magic)
	return order.AppendUint32(buf, Version)
}

// CheckPreamble validates the magic and version words at the start of buf.
func CheckPreamble(buf []byte) error {
	if len(buf) < PreambleSize {
		return &embedtype.FormatError{
			Field:    "preamble",
			Expected: fmt.Sprintf("%d bytes", PreambleSize),
			Actual:   fmt.Sprintf("%d bytes", len(buf)),
			Err:      embedtype.ErrTruncated,
		}
	}

	if magic := order.Uint32(buf); magic != Magic {
		actual := hex32(magic)
		if magic == MagicBigEndian {
			actual += " (big-endian containers are not supported)"
		}
		return &embedtype.FormatError{
			Field:    "magic",
			Expected: hex32(Magic),
			Actual:   actual,
			Err:      embedtype.ErrBadMagic,
		}
	}

	if version := order.Uint32(buf[4:]); version != Version {
		return &embedtype.FormatError{
			Offset:   4,
			Field:    "version",
			Expected: hex32(Version),
			Actual:   hex32(version),
			Err:      embedtype.ErrBadVersion,
		}
	}
	return nil
}

// AppendSentinel appends the 12-byte end marker.
func AppendSentinel(buf []byte) []byte {
	return append(buf, make([]byte, SentinelSize)...)
}

// IsSentinel reports whether the entries end at off: either 12 zero bytes
// start there, or fewer than 12 bytes remain.
func IsSentinel(buf []byte, off int) bool {
	if off < 0 || len(buf)-off < SentinelSize {
		return true
	}
	for _, b := range buf[off : off+SentinelSize] {
		if b != 0 {
			return false
		}
	}
	return true
}

// LooksLikeDirectory reports whether the header at off is a directory
// header, i.e. its second word is zero.
//
// This is the only discriminator the format has. A file header whose
// headerLen word were zero would be taken for a directory; containers in
// the wild rely on exactly this test, so it must not be strengthened.
func LooksLikeDirectory(buf []byte, off int) bool {
	if off < 0 || len(buf)-off < 8 {
		return false
	}
	return order.Uint32(buf[off+4:]) == 0
}

func hex32(v uint32) string {
	return fmt.Sprintf("0x%08x", v)
}
