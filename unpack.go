package embedfs

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	digest "github.com/opencontainers/go-digest"

	"github.com/meigma/embedfs/internal/pathutil"
)

// Unpack recreates the directory tree stored in data under destDir.
//
// The whole container is validated before anything is written, so a
// malformed container leaves destDir untouched. destDir is created if
// needed; directories that already exist are reused and existing files are
// overwritten. Entry names that would resolve outside destDir are rejected
// with an *fs.PathError wrapping fs.ErrInvalid.
//
// File contents are written straight from data without copying.
func Unpack(ctx context.Context, data []byte, destDir string, opts ...UnpackOption) error {
	cfg := unpackConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	u := &unpacker{log: orDiscard(cfg.logger), progress: progress{fn: cfg.progress}}
	return u.unpack(ctx, data, destDir)
}

// unpacker holds state for a single unpack operation.
type unpacker struct {
	log      *slog.Logger
	progress progress
}

// plannedDir is a parsed directory with its destination resolved.
type plannedDir struct {
	local string // slash path relative to destDir, "." for the root
	dir   *parsedDir
	files []string // slash paths relative to destDir, parallel to dir.files
}

func (u *unpacker) unpack(ctx context.Context, data []byte, destDir string) error {
	u.progress.report(StageParsing, "", 0, uint64(len(data)), 0, 0)
	dirs, err := parse(data, u.log)
	if err != nil {
		return err
	}
	plan, fileCount, byteCount, err := resolvePaths("unpack", dirs)
	if err != nil {
		return err
	}
	u.log.Info("unpacking container",
		"dest", destDir,
		"dir_count", len(plan),
		"file_count", fileCount)
	if u.log.Enabled(ctx, slog.LevelDebug) {
		u.log.Debug("container digest", "digest", digest.FromBytes(data))
	}

	if err := os.MkdirAll(destDir, 0o750); err != nil {
		return fmt.Errorf("create destination directory: %w", err)
	}
	root, err := os.OpenRoot(destDir)
	if err != nil {
		return err
	}
	defer root.Close()

	var filesDone int
	var bytesDone uint64
	for _, pd := range plan {
		if err := ctx.Err(); err != nil {
			return err
		}
		if pd.local != "." {
			if err := root.MkdirAll(filepath.FromSlash(pd.local), 0o750); err != nil {
				return fmt.Errorf("create directory %s: %w", pd.local, err)
			}
		}
		for i, f := range pd.dir.files {
			if err := ctx.Err(); err != nil {
				return err
			}
			target := pd.files[i]
			if err := root.WriteFile(filepath.FromSlash(target), f.data, 0o644); err != nil { //nolint:gosec // extracted files are world-readable like their sources
				return fmt.Errorf("write %s: %w", target, err)
			}
			filesDone++
			bytesDone += uint64(len(f.data))
			u.log.Debug("extracted file", "path", target, "size", len(f.data))
			u.progress.report(StageExtracting, target, bytesDone, byteCount, filesDone, fileCount)
		}
	}

	u.log.Info("container unpacked", "dest", destDir, "file_count", filesDone, "payload_bytes", bytesDone)
	return nil
}

// resolvePaths maps every directory and file to a slash path relative to
// the container root and rejects names that are not local paths. op names
// the operation in the returned *fs.PathError.
func resolvePaths(op string, dirs []parsedDir) (plan []plannedDir, files int, bytes uint64, err error) {
	plan = make([]plannedDir, 0, len(dirs))
	for i := range dirs {
		d := &dirs[i]
		local := pathutil.Local(d.header.Name)
		if !fs.ValidPath(local) {
			return nil, 0, 0, &fs.PathError{Op: op, Path: d.header.Name, Err: fs.ErrInvalid}
		}

		pd := plannedDir{local: local, dir: d, files: make([]string, len(d.files))}
		for j, f := range d.files {
			target := joinLocal(local, f.header.Name)
			if f.header.Name == "" || !fs.ValidPath(target) {
				return nil, 0, 0, &fs.PathError{Op: op, Path: f.header.Name, Err: fs.ErrInvalid}
			}
			pd.files[j] = target
			files++
			bytes += uint64(len(f.data))
		}
		plan = append(plan, pd)
	}
	return plan, files, bytes, nil
}

// joinLocal joins a file name to its directory without cleaning, so that
// fs.ValidPath still sees any "." or ".." elements in name.
func joinLocal(dir, name string) string {
	if dir == "." {
		return name
	}
	return dir + "/" + name
}
