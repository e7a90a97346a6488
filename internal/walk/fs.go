package walk

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path"
)

// Kind classifies a directory entry for packing.
type Kind uint8

const (
	// KindSkip entries are not serialized: devices, pipes, sockets.
	KindSkip Kind = iota
	KindDir
	KindFile
	// KindLink entries are symbolic links; call Follow to classify the target.
	KindLink
)

// ErrCycle is returned by Follow for a directory link that points at one of
// its own ancestors.
var ErrCycle = errors.New("walk: symlink cycle")

// Classify reports how a directory entry is packed, without following
// symbolic links.
func Classify(d fs.DirEntry) Kind {
	t := d.Type()
	switch {
	case t&fs.ModeSymlink != 0:
		return KindLink
	case t.IsDir():
		return KindDir
	case t.IsRegular():
		return KindFile
	default:
		return KindSkip
	}
}

// Follow classifies the target of the symbolic link at name by stating it
// through fsys. On an os.Root file system a link that is broken or leaves
// the root fails here. A directory link whose target is name's parent or
// any further ancestor fails with ErrCycle; ancestors are compared with
// os.SameFile, so cycles are only detected on OS-backed file systems.
func Follow(fsys fs.FS, name string) (Kind, error) {
	target, err := fs.Stat(fsys, name)
	if err != nil {
		return KindSkip, err
	}
	switch {
	case target.Mode().IsRegular():
		return KindFile, nil
	case target.IsDir():
		for dir := path.Dir(name); ; dir = path.Dir(dir) {
			if info, err := fs.Stat(fsys, dir); err == nil && os.SameFile(info, target) {
				return KindSkip, ErrCycle
			}
			if dir == "." {
				return KindDir, nil
			}
		}
	default:
		return KindSkip, nil
	}
}

// Resolve classifies the entry d of directory dir, following it if it is a
// symbolic link. Links that cannot be followed, or whose target is neither
// a regular file nor a directory, are logged at debug level and reported
// as KindSkip.
func Resolve(fsys fs.FS, dir string, d fs.DirEntry, log *slog.Logger) Kind {
	kind := Classify(d)
	if kind != KindLink {
		return kind
	}
	name := path.Join(dir, d.Name())
	kind, err := Follow(fsys, name)
	if kind == KindSkip && log != nil {
		log.Debug("skipped symlink", "path", name, "error", err)
	}
	return kind
}

// ReadDir lists the directory name in fsys in the order the file system
// enumerates it.
//
// fs.ReadDir sorts by name, which would change the byte layout of the
// container. When the opened directory implements fs.ReadDirFile (as
// *os.File does) its unsorted listing is used instead; other file systems
// fall back to fs.ReadDir.
func ReadDir(fsys fs.FS, name string) ([]fs.DirEntry, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if rd, ok := f.(fs.ReadDirFile); ok {
		return rd.ReadDir(-1)
	}
	return fs.ReadDir(fsys, name)
}

// FSLister lists subdirectories of a slash-separated fs.FS, including
// symbolic links to directories. Log, if set, receives skipped links.
type FSLister struct {
	FS  fs.FS
	Log *slog.Logger
}

// Subdirs implements Lister.
func (l FSLister) Subdirs(dir string) ([]string, error) {
	entries, err := ReadDir(l.FS, dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if Resolve(l.FS, dir, e, l.Log) == KindDir {
			names = append(names, e.Name())
		}
	}
	return names, nil
}
