package search

import (
	"path/filepath"
	"strings"
)

// includedPath reports whether a directory is eligible for descent.
// Eligible: the bundle root itself, the top-level logs/ and nodes/
// category directories, and anything below a "logs" path segment.
// This prunes non-log categories such as exported resource manifests.
func includedPath(root, dir string) bool {
	if dir == root {
		return true
	}
	if dir == filepath.Join(root, "logs") || dir == filepath.Join(root, "nodes") {
		return true
	}
	for _, seg := range strings.Split(filepath.ToSlash(dir), "/") {
		if seg == "logs" {
			return true
		}
	}
	return false
}
