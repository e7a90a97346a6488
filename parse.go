package embedfs

import (
	"fmt"
	"log/slog"

	"github.com/meigma/embedfs/internal/format"
)

// parsedDir is a directory entry located in a container.
type parsedDir struct {
	offset int
	header format.DirHeader
	files  []parsedFile
}

// parsedFile is a file entry; data aliases the container buffer.
type parsedFile struct {
	offset int
	header format.FileHeader
	data   []byte
}

// parse validates data and locates every directory and file entry.
//
// Entries are read the way the device firmware does: directory headers
// follow one another until the sentinel (or the end of the buffer) or
// until the next header no longer looks like a directory. Within a
// directory, file headers follow until the sentinel or a header that looks
// like a directory. The name written after the sentinel is never read.
func parse(data []byte, log *slog.Logger) ([]parsedDir, error) {
	if err := format.CheckPreamble(data); err != nil {
		return nil, err
	}

	var dirs []parsedDir
	cursor := format.PreambleSize
	for !format.IsSentinel(data, cursor) && format.LooksLikeDirectory(data, cursor) {
		dh, err := format.ParseDirHeader(data, cursor)
		if err != nil {
			return nil, err
		}
		log.Debug("dir header", "offset", cursor, "header_len", dh.HeaderLen, "total_len", dh.TotalLen, "name", dh.Name)

		dir := parsedDir{offset: cursor, header: dh}
		fileCursor := cursor + int(dh.HeaderLen)
		for !format.IsSentinel(data, fileCursor) && !format.LooksLikeDirectory(data, fileCursor) {
			fh, err := format.ParseFileHeader(data, fileCursor)
			if err != nil {
				return nil, err
			}
			log.Debug("file header", "offset", fileCursor, "total_len", fh.TotalLen, "header_len", fh.HeaderLen, "file_len", fh.FileLen, "name", fh.Name)

			dir.files = append(dir.files, parsedFile{
				offset: fileCursor,
				header: fh,
				data:   fh.Payload(data, fileCursor),
			})
			fileCursor += int(fh.TotalLen)
		}

		dirs = append(dirs, dir)
		cursor += int(dh.TotalLen)
	}

	// Fewer than 12 bytes left means the container was cut inside a header,
	// not that it ended on the sentinel.
	if rem := len(data) - cursor; rem > 0 && rem < format.SentinelSize {
		return nil, &FormatError{
			Offset:   cursor,
			Field:    "header",
			Expected: fmt.Sprintf("%d bytes", format.HeaderSize),
			Actual:   fmt.Sprintf("%d bytes remaining", rem),
			Err:      ErrTruncated,
		}
	}
	return dirs, nil
}
