// Package format implements the on-wire primitives of the EmbedFS container:
// 4-byte alignment, null-terminated names, the preamble, directory and file
// headers, and the end-of-entries sentinel.
//
// All integers are little-endian uint32. Every header is followed by its
// null-terminated name padded to a 4-byte boundary, so headerLen is always
// 12 + Pad4(len(name)+1).
package format
