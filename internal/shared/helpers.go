// Package shared provides common utility functions used across multiple
// packages in the inversion-spec codebase.
package shared

import "strings"

// JoinPath renders a document path (sequence of names) as a
// slash-separated string for human-readable diagnostics.
func JoinPath(path []string) string {
	if len(path) == 0 {
		return "/"
	}
	return "/" + strings.Join(path, "/")
}

// ExtendPath copies a path and appends further elements.  Callers keep
// paths immutable while walking the document tree, so appends must not
// share backing arrays.
func ExtendPath(path []string, elems ...string) []string {
	extended := make([]string, 0, len(path)+len(elems))
	extended = append(extended, path...)
	extended = append(extended, elems...)
	return extended
}
