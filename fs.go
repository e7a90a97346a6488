package embedfs

import (
	"bytes"
	"io"
	"io/fs"
	"log/slog"
	"path"
	"slices"
	"strings"
	"time"
)

// FS is a read-only view of a container held in memory.
//
// FS implements [fs.FS], [fs.StatFS], [fs.ReadFileFS], and [fs.ReadDirFS],
// so a container can be served with http.FileServerFS or walked with
// fs.WalkDir the way the device firmware reads it. File contents alias the
// container buffer; the buffer must not be modified while the FS is in use.
//
// Directories are listed in name order. Files and directories carry no
// timestamps or permissions in the container; files report mode 0444 and
// directories 0555.
type FS struct {
	files map[string][]byte
	dirs  map[string][]fs.DirEntry
}

// NewFS validates data and returns a view of the tree it stores.
//
// NewFS accepts exactly the containers Unpack accepts. A directory that is
// only implied by a nested directory name is synthesized. A file that
// appears more than once resolves to its last occurrence; a path used both
// as a file and as a directory is rejected with fs.ErrExist.
func NewFS(data []byte) (*FS, error) {
	dirs, err := parse(data, slog.New(slog.DiscardHandler))
	if err != nil {
		return nil, err
	}
	plan, _, _, err := resolvePaths("newfs", dirs)
	if err != nil {
		return nil, err
	}

	b := &fsBuilder{
		files:    make(map[string][]byte),
		children: map[string]map[string]*fileInfo{".": {}},
	}
	for _, pd := range plan {
		if err := b.addDir(pd.local); err != nil {
			return nil, err
		}
		for i, f := range pd.dir.files {
			if err := b.addFile(pd.files[i], f.data); err != nil {
				return nil, err
			}
		}
	}
	return b.build(), nil
}

// fsBuilder collects the tree while NewFS walks the parsed container.
type fsBuilder struct {
	files    map[string][]byte
	children map[string]map[string]*fileInfo
}

func (b *fsBuilder) addDir(name string) error {
	if _, ok := b.children[name]; ok {
		return nil
	}
	if _, ok := b.files[name]; ok {
		return &fs.PathError{Op: "newfs", Path: name, Err: fs.ErrExist}
	}
	parent := path.Dir(name)
	if err := b.addDir(parent); err != nil {
		return err
	}
	b.children[name] = map[string]*fileInfo{}
	base := path.Base(name)
	b.children[parent][base] = &fileInfo{name: base, mode: fs.ModeDir | 0o555}
	return nil
}

func (b *fsBuilder) addFile(name string, data []byte) error {
	if _, ok := b.children[name]; ok {
		return &fs.PathError{Op: "newfs", Path: name, Err: fs.ErrExist}
	}
	parent := path.Dir(name)
	if err := b.addDir(parent); err != nil {
		return err
	}
	b.files[name] = data
	base := path.Base(name)
	b.children[parent][base] = &fileInfo{name: base, size: int64(len(data)), mode: 0o444}
	return nil
}

func (b *fsBuilder) build() *FS {
	fsys := &FS{files: b.files, dirs: make(map[string][]fs.DirEntry, len(b.children))}
	for dir, kids := range b.children {
		entries := make([]fs.DirEntry, 0, len(kids))
		for _, info := range kids {
			entries = append(entries, info)
		}
		slices.SortFunc(entries, func(a, b fs.DirEntry) int {
			return strings.Compare(a.Name(), b.Name())
		})
		fsys.dirs[dir] = entries
	}
	return fsys
}

// Open implements fs.FS.
//
// Opened files also implement io.ReaderAt and io.Seeker.
func (f *FS) Open(name string) (fs.File, error) {
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrInvalid}
	}
	if data, ok := f.files[name]; ok {
		return &openFile{Reader: bytes.NewReader(data), info: f.fileInfo(name, data)}, nil
	}
	if entries, ok := f.dirs[name]; ok {
		return &openDir{info: dirInfo(name), entries: entries}, nil
	}
	return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
}

// Stat implements fs.StatFS.
func (f *FS) Stat(name string) (fs.FileInfo, error) {
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "stat", Path: name, Err: fs.ErrInvalid}
	}
	if data, ok := f.files[name]; ok {
		return f.fileInfo(name, data), nil
	}
	if _, ok := f.dirs[name]; ok {
		return dirInfo(name), nil
	}
	return nil, &fs.PathError{Op: "stat", Path: name, Err: fs.ErrNotExist}
}

// ReadFile implements fs.ReadFileFS. The returned slice is a copy.
func (f *FS) ReadFile(name string) ([]byte, error) {
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "readfile", Path: name, Err: fs.ErrInvalid}
	}
	data, ok := f.files[name]
	if !ok {
		err := fs.ErrNotExist
		if _, isDir := f.dirs[name]; isDir {
			err = fs.ErrInvalid
		}
		return nil, &fs.PathError{Op: "readfile", Path: name, Err: err}
	}
	return bytes.Clone(data), nil
}

// ReadDir implements fs.ReadDirFS. Entries are sorted by name.
func (f *FS) ReadDir(name string) ([]fs.DirEntry, error) {
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "readdir", Path: name, Err: fs.ErrInvalid}
	}
	entries, ok := f.dirs[name]
	if !ok {
		err := fs.ErrNotExist
		if _, isFile := f.files[name]; isFile {
			err = fs.ErrInvalid
		}
		return nil, &fs.PathError{Op: "readdir", Path: name, Err: err}
	}
	return slices.Clone(entries), nil
}

func (f *FS) fileInfo(name string, data []byte) *fileInfo {
	return &fileInfo{name: path.Base(name), size: int64(len(data)), mode: 0o444}
}

func dirInfo(name string) *fileInfo {
	return &fileInfo{name: path.Base(name), mode: fs.ModeDir | 0o555}
}

// fileInfo serves as both fs.FileInfo and fs.DirEntry.
type fileInfo struct {
	name string
	size int64
	mode fs.FileMode
}

func (i *fileInfo) Name() string               { return i.name }
func (i *fileInfo) Size() int64                { return i.size }
func (i *fileInfo) Mode() fs.FileMode          { return i.mode }
func (i *fileInfo) ModTime() time.Time         { return time.Time{} }
func (i *fileInfo) IsDir() bool                { return i.mode.IsDir() }
func (i *fileInfo) Sys() any                   { return nil }
func (i *fileInfo) Type() fs.FileMode          { return i.mode.Type() }
func (i *fileInfo) Info() (fs.FileInfo, error) { return i, nil }

// openFile is an open regular file.
type openFile struct {
	*bytes.Reader
	info *fileInfo
}

func (f *openFile) Stat() (fs.FileInfo, error) { return f.info, nil }

func (f *openFile) Close() error { return nil }

// openDir implements fs.ReadDirFile for a directory.
type openDir struct {
	info    *fileInfo
	entries []fs.DirEntry
	off     int
}

func (d *openDir) Read(_ []byte) (int, error) {
	return 0, &fs.PathError{Op: "read", Path: d.info.name, Err: fs.ErrInvalid}
}

func (d *openDir) Stat() (fs.FileInfo, error) { return d.info, nil }

func (d *openDir) Close() error { return nil }

func (d *openDir) ReadDir(n int) ([]fs.DirEntry, error) {
	rest := d.entries[d.off:]
	if n <= 0 {
		d.off = len(d.entries)
		return slices.Clone(rest), nil
	}
	if len(rest) == 0 {
		return nil, io.EOF
	}
	n = min(n, len(rest))
	d.off += n
	return slices.Clone(rest[:n]), nil
}
