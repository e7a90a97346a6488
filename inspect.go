package embedfs

import (
	"log/slog"

	digest "github.com/opencontainers/go-digest"

	"github.com/meigma/embedfs/internal/pathutil"
)

// Inspect validates data and returns its entries in container order: each
// directory followed by its files. Nothing is written to disk.
//
// Inspect accepts exactly the containers Unpack accepts, except that it
// does not reject names that would escape a destination directory.
func Inspect(data []byte) ([]Entry, error) {
	dirs, err := parse(data, slog.New(slog.DiscardHandler))
	if err != nil {
		return nil, err
	}

	var entries []Entry //nolint:prealloc // file count unknown until iteration
	for _, d := range dirs {
		local := pathutil.Local(d.header.Name)
		entries = append(entries, Entry{
			Kind:      KindDir,
			Path:      local,
			Offset:    d.offset,
			HeaderLen: d.header.HeaderLen,
			TotalLen:  d.header.TotalLen,
		})
		for _, f := range d.files {
			entries = append(entries, Entry{
				Kind:      KindFile,
				Path:      joinLocal(local, f.header.Name),
				Offset:    f.offset,
				HeaderLen: f.header.HeaderLen,
				TotalLen:  f.header.TotalLen,
				Size:      f.header.FileLen,
				Digest:    digest.FromBytes(f.data),
			})
		}
	}
	return entries, nil
}
