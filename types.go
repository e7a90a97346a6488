package embedfs

import "github.com/meigma/embedfs/internal/embedtype"

// Re-export types from internal/embedtype for the public API.
type (
	// Dir is one directory of a packed tree.
	Dir = embedtype.Dir

	// File is a file owned by a Dir.
	File = embedtype.File

	// Entry describes one header found in a container.
	Entry = embedtype.Entry

	// EntryKind distinguishes directory headers from file headers.
	EntryKind = embedtype.EntryKind

	// FormatError describes a malformed container.
	FormatError = embedtype.FormatError
)

// Entry kinds.
const (
	KindDir  = embedtype.KindDir
	KindFile = embedtype.KindFile
)
