// Package pathutil translates between slash-separated host paths and the
// backslash-separated names stored in a container.
package pathutil

import "strings"

// Separator is the path separator used inside a container.
const Separator = '\\'

// ToContainer rewrites slash separators in p to the container separator.
func ToContainer(p string) string {
	return strings.ReplaceAll(p, "/", string(Separator))
}

// FromContainer rewrites container separators in name to slashes.
func FromContainer(name string) string {
	return strings.ReplaceAll(name, string(Separator), "/")
}

// DirName returns the slash-form directory name stored for the root-relative
// directory rel. The root ("." or "") becomes "/"; every other directory gets
// a leading separator, e.g. "www/img" becomes "/www/img". EncodeName turns
// the slashes into container separators.
func DirName(rel string) string {
	if rel == "" || rel == "." {
		return "/"
	}
	return "/" + strings.Trim(rel, "/")
}

// Local converts a decoded directory name ("/", "/www/img") back to a
// root-relative slash path ("." or "www/img").
//
// Local does not validate the result; callers reject names that fail
// fs.ValidPath before touching the filesystem.
func Local(name string) string {
	name = strings.TrimLeft(name, "/")
	name = strings.TrimSuffix(name, "/")
	if name == "" {
		return "."
	}
	return name
}
