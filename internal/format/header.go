package format

import (
	"fmt"

	"github.com/meigma/embedfs/internal/embedtype"
	"github.com/meigma/embedfs/internal/sizing"
)

// DirHeader is the header of a directory entry.
type DirHeader struct {
	HeaderLen uint32
	Reserved  uint32 // zero; the directory discriminator
	TotalLen  uint32 // header plus the directory's direct file entries
	Name      string // slash form, "/" for the root
}

// FileHeader is the header of a file entry.
type FileHeader struct {
	TotalLen  uint32 // header, name, and padded payload
	HeaderLen uint32 // offset from entry start to payload
	FileLen   uint32 // unpadded payload length
	Name      string
}

// AppendDirHeader appends a directory header for name. TotalLen is written
// as the header size; callers backfill it with SetDirTotalLen once the
// directory's files are appended.
func AppendDirHeader(buf []byte, name string) ([]byte, uint32) {
	enc := EncodeName(name)
	headerLen := uint32(HeaderSize + len(enc)) //nolint:gosec // names are far below 4GiB
	buf = order.AppendUint32(buf, headerLen)
	buf = order.AppendUint32(buf, 0)
	buf = order.AppendUint32(buf, headerLen)
	return append(buf, enc...), headerLen
}

// SetDirTotalLen overwrites the totalLen field of the directory header at off.
func SetDirTotalLen(buf []byte, off int, total uint32) {
	order.PutUint32(buf[off+8:], total)
}

// AppendFileEntry appends a file header, its name, and the payload padded
// to a 4-byte boundary. It returns the entry's totalLen.
func AppendFileEntry(buf []byte, name string, data []byte) ([]byte, uint32, error) {
	enc := EncodeName(name)
	headerLen := HeaderSize + len(enc)
	span := Pad4(headerLen + len(data))

	fileLen, err := sizing.ToUint32(len(data), embedtype.ErrSizeOverflow)
	if err != nil {
		return buf, 0, fmt.Errorf("file %q: %w", name, err)
	}
	totalLen, err := sizing.ToUint32(span, embedtype.ErrSizeOverflow)
	if err != nil {
		return buf, 0, fmt.Errorf("file %q: %w", name, err)
	}

	buf = order.AppendUint32(buf, totalLen)
	buf = order.AppendUint32(buf, uint32(headerLen)) //nolint:gosec // bounded by totalLen
	buf = order.AppendUint32(buf, fileLen)
	buf = append(buf, enc...)
	buf = append(buf, data...)
	return append(buf, make([]byte, span-headerLen-len(data))...), totalLen, nil
}

// ParseDirHeader decodes the directory header at off and checks that the
// header and the span it claims lie inside buf.
func ParseDirHeader(buf []byte, off int) (DirHeader, error) {
	if !sizing.Fits(off, HeaderSize, len(buf)) {
		return DirHeader{}, truncated(off, "dirHeader", HeaderSize, len(buf)-off)
	}
	h := DirHeader{
		HeaderLen: order.Uint32(buf[off:]),
		Reserved:  order.Uint32(buf[off+4:]),
		TotalLen:  order.Uint32(buf[off+8:]),
	}
	if err := checkHeaderLen(buf, off, off, h.HeaderLen); err != nil {
		return DirHeader{}, err
	}
	if h.TotalLen < h.HeaderLen {
		return DirHeader{}, &embedtype.FormatError{
			Offset:   off + 8,
			Field:    "totalLen",
			Expected: fmt.Sprintf(">= headerLen (%d)", h.HeaderLen),
			Actual:   fmt.Sprint(h.TotalLen),
			Err:      embedtype.ErrBadHeader,
		}
	}
	if !sizing.Fits(off, uint64(h.TotalLen), len(buf)) {
		return DirHeader{}, truncated(off+8, "totalLen", uint64(h.TotalLen), len(buf)-off)
	}

	name, err := DecodeName(buf, off+HeaderSize)
	if err != nil {
		return DirHeader{}, err
	}
	h.Name = name
	return h, nil
}

// ParseFileHeader decodes the file header at off and checks that the
// header, payload, and padded span lie inside buf.
func ParseFileHeader(buf []byte, off int) (FileHeader, error) {
	if !sizing.Fits(off, HeaderSize, len(buf)) {
		return FileHeader{}, truncated(off, "fileHeader", HeaderSize, len(buf)-off)
	}
	h := FileHeader{
		TotalLen:  order.Uint32(buf[off:]),
		HeaderLen: order.Uint32(buf[off+4:]),
		FileLen:   order.Uint32(buf[off+8:]),
	}
	if err := checkHeaderLen(buf, off, off+4, h.HeaderLen); err != nil {
		return FileHeader{}, err
	}
	if end := uint64(h.HeaderLen) + uint64(h.FileLen); end > uint64(h.TotalLen) {
		return FileHeader{}, &embedtype.FormatError{
			Offset:   off,
			Field:    "totalLen",
			Expected: fmt.Sprintf(">= headerLen+fileLen (%d)", end),
			Actual:   fmt.Sprint(h.TotalLen),
			Err:      embedtype.ErrBadHeader,
		}
	}
	if !sizing.Fits(off, uint64(h.TotalLen), len(buf)) {
		return FileHeader{}, truncated(off, "totalLen", uint64(h.TotalLen), len(buf)-off)
	}

	name, err := DecodeName(buf, off+HeaderSize)
	if err != nil {
		return FileHeader{}, err
	}
	h.Name = name
	return h, nil
}

// Payload returns the file data of the entry at off. The slice aliases buf
// and is capped so appends cannot overwrite the following entry.
func (h FileHeader) Payload(buf []byte, off int) []byte {
	start := off + int(h.HeaderLen)
	end := start + int(h.FileLen)
	return buf[start:end:end]
}

// checkHeaderLen validates the headerLen field (read at fieldOff) of the
// entry starting at off. Both header kinds share the rules.
func checkHeaderLen(buf []byte, off, fieldOff int, headerLen uint32) error {
	if headerLen < HeaderSize {
		return &embedtype.FormatError{
			Offset:   fieldOff,
			Field:    "headerLen",
			Expected: fmt.Sprintf(">= %d", HeaderSize),
			Actual:   fmt.Sprint(headerLen),
			Err:      embedtype.ErrBadHeader,
		}
	}
	if !sizing.Fits(off, uint64(headerLen), len(buf)) {
		return truncated(fieldOff, "headerLen", uint64(headerLen), len(buf)-off)
	}
	return nil
}

func truncated(off int, field string, want uint64, remaining int) error {
	return &embedtype.FormatError{
		Offset:   off,
		Field:    field,
		Expected: fmt.Sprintf("%d bytes", want),
		Actual:   fmt.Sprintf("%d bytes remaining", remaining),
		Err:      embedtype.ErrTruncated,
	}
}
