// Package embedtype holds the types shared between the container codec
// packages and the public embedfs API.
package embedtype

import digest "github.com/opencontainers/go-digest"

// Dir is one directory of the source tree as it is serialized.
type Dir struct {
	// Path is the directory path relative to the root in slash form.
	// The root itself is ".".
	Path string

	// Files are the directory's direct files in enumeration order.
	// The order is written verbatim into the container.
	Files []File
}

// File is a single file owned by a Dir.
type File struct {
	// Name is the file name relative to its directory.
	Name string

	// Data is the raw payload.
	Data []byte
}

// EntryKind distinguishes directory headers from file headers.
type EntryKind uint8

const (
	KindDir EntryKind = iota
	KindFile
)

// String returns the human-readable name of the kind.
func (k EntryKind) String() string {
	switch k {
	case KindDir:
		return "dir"
	case KindFile:
		return "file"
	default:
		return "unknown"
	}
}

// Entry describes one header found in a container.
type Entry struct {
	// Kind is KindDir or KindFile.
	Kind EntryKind

	// Path is the slash-separated path relative to the container root.
	// Directories use "." for the root; files are joined to their directory.
	Path string

	// Offset is the byte offset of the entry's header in the container.
	Offset int

	// HeaderLen is the header size including the padded name.
	HeaderLen uint32

	// TotalLen is the span of the entry. For directories it covers the
	// header and the directory's direct files only.
	TotalLen uint32

	// Size is the unpadded payload length. Zero for directories.
	Size uint32

	// Digest is the SHA256 digest of the payload. Empty for directories.
	Digest digest.Digest
}
