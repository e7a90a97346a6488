package embedfs

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"

	digest "github.com/opencontainers/go-digest"

	"github.com/meigma/embedfs/internal/format"
	"github.com/meigma/embedfs/internal/pathutil"
	"github.com/meigma/embedfs/internal/sizing"
	"github.com/meigma/embedfs/internal/walk"
)

// Pack builds a container from the directory tree rooted at dir.
//
// Every directory, including empty ones and the root, becomes an entry
// holding its direct regular files. Directories and files appear in the
// order the operating system lists them; that order is part of the byte
// layout. Symbolic links to files and directories inside dir are followed
// and packed under the link's name. Broken links, links leaving dir, links
// back to an enclosing directory, and special files are skipped.
//
// Pack keeps one directory's files in memory at a time in addition to the
// returned buffer. The context is checked between directories and files.
func Pack(ctx context.Context, dir string, opts ...PackOption) ([]byte, error) {
	root, err := os.OpenRoot(dir)
	if err != nil {
		return nil, err
	}
	defer root.Close()

	return PackFS(ctx, root.FS(), opts...)
}

// PackFS builds a container from fsys, treating "." as the root directory.
//
// Directory listings come from fs.ReadDirFile.ReadDir(-1) when the opened
// directory supports it, so the raw enumeration order of the file system
// is preserved. See Pack.
func PackFS(ctx context.Context, fsys fs.FS, opts ...PackOption) ([]byte, error) {
	cfg := packConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.maxFiles == 0 {
		cfg.maxFiles = DefaultMaxFiles
	}

	p := &packer{cfg: cfg, fsys: fsys, log: orDiscard(cfg.logger), progress: progress{fn: cfg.progress}}
	return p.pack(ctx)
}

// packer holds state for a single pack operation.
type packer struct {
	cfg      packConfig
	fsys     fs.FS
	log      *slog.Logger
	progress progress

	files int
	bytes uint64
}

func (p *packer) pack(ctx context.Context) ([]byte, error) {
	p.progress.report(StageWalking, "", 0, 0, 0, 0)
	dirs, err := walk.Dirs(".", walk.FSLister{FS: p.fsys, Log: p.log})
	if err != nil {
		return nil, fmt.Errorf("walk directories: %w", err)
	}
	p.log.Info("packing container", "dir_count", len(dirs))

	buf := format.AppendPreamble(make([]byte, 0, 64*1024))
	for _, dir := range dirs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rec, err := p.loadDir(ctx, dir)
		if err != nil {
			return nil, err
		}
		buf, err = p.appendDir(buf, &rec)
		if err != nil {
			return nil, err
		}
	}
	buf = format.AppendSentinel(buf)

	// Existing images repeat the last directory's name after the sentinel
	// whenever a subdirectory exists. Readers ignore it.
	if len(dirs) > 1 {
		buf = format.AppendName(buf, pathutil.DirName(dirs[len(dirs)-1]))
	}

	p.log.Info("container packed",
		"dir_count", len(dirs),
		"file_count", p.files,
		"payload_bytes", p.bytes,
		"size", len(buf))
	if p.log.Enabled(ctx, slog.LevelDebug) {
		p.log.Debug("container digest", "digest", digest.FromBytes(buf))
	}
	return buf, nil
}

// loadDir reads the direct regular files of dir in enumeration order.
// Subdirectories are skipped here; they are entries of their own.
func (p *packer) loadDir(ctx context.Context, dir string) (Dir, error) {
	entries, err := walk.ReadDir(p.fsys, dir)
	if err != nil {
		return Dir{}, fmt.Errorf("read directory %s: %w", dir, err)
	}

	rec := Dir{Path: dir}
	for _, e := range entries {
		switch walk.Resolve(p.fsys, dir, e, p.log) {
		case walk.KindDir:
			continue
		case walk.KindSkip:
			if walk.Classify(e) != walk.KindLink {
				p.log.Debug("skipped non-regular file", "path", path.Join(dir, e.Name()), "type", e.Type().String())
			}
			continue
		}
		if err := ctx.Err(); err != nil {
			return Dir{}, err
		}
		if p.cfg.maxFiles > 0 && p.files >= p.cfg.maxFiles {
			return Dir{}, ErrTooManyFiles
		}

		name := path.Join(dir, e.Name())
		data, err := fs.ReadFile(p.fsys, name)
		if err != nil {
			return Dir{}, fmt.Errorf("read %s: %w", name, err)
		}
		rec.Files = append(rec.Files, File{Name: e.Name(), Data: data})
		p.files++
		p.bytes += uint64(len(data))
		p.progress.report(StagePacking, name, p.bytes, 0, p.files, 0)
	}
	return rec, nil
}

// appendDir serializes rec: its header, then each file entry, then the
// header's totalLen backfilled with the size of everything appended.
func (p *packer) appendDir(buf []byte, rec *Dir) ([]byte, error) {
	name := pathutil.DirName(rec.Path)
	start := len(buf)
	buf, total := format.AppendDirHeader(buf, name)
	p.log.Debug("dir header", "offset", start, "name", name, "header_len", total, "files", len(rec.Files))

	for _, f := range rec.Files {
		off := len(buf)
		var (
			entryLen uint32
			err      error
		)
		buf, entryLen, err = format.AppendFileEntry(buf, f.Name, f.Data)
		if err != nil {
			return nil, err
		}
		var ok bool
		if total, ok = sizing.AddUint32(total, entryLen); !ok {
			return nil, fmt.Errorf("directory %s: %w", rec.Path, ErrSizeOverflow)
		}
		p.log.Debug("file header", "offset", off, "name", f.Name, "total_len", entryLen, "file_len", len(f.Data))
	}

	format.SetDirTotalLen(buf, start, total)
	return buf, nil
}
