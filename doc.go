// Package embedfs packs a directory tree into an EmbedFS container and
// unpacks containers back into directories.
//
// An EmbedFS container is a flat, offset-addressable blob read in place by
// devices that have no filesystem:
//
//	u32 magic (0x87654321) | u32 version (1)
//	DirEntry...            | 12 zero bytes
//	[name of the last directory, when there is more than one]
//
// Each DirEntry is a directory header followed by the headers and payloads
// of that directory's direct files. Subdirectories are not nested: every
// directory is its own top-level entry, ordered siblings first (see
// internal/walk). Names use backslash separators on the wire.
//
// # Quick Start
//
// Pack a directory:
//
//	data, err := embedfs.Pack(ctx, "./website")
//	if err != nil {
//	    return err
//	}
//
// Unpack it somewhere else:
//
//	err = embedfs.Unpack(ctx, data, "./out")
//
// List the entries without writing anything:
//
//	entries, err := embedfs.Inspect(data)
//
// Or read it in place, as the device does:
//
//	fsys, err := embedfs.NewFS(data)
//	http.Handle("/", http.FileServerFS(fsys))
//
// The layout is reproduced byte for byte, including its quirks: the
// directory/file discriminator is the second header word being zero, and
// the last directory's name is repeated after the end marker.
package embedfs
