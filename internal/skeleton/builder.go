package skeleton

import (
	"io"
	"log/slog"
	"strings"

	"acstools/internal/model"
)

// Build inserts every entry into a fresh tree and returns its root.
// The resulting shape does not depend on the order of entries.
func Build(entries []string) *model.TreeNode {
	root := model.NewRoot()
	for _, entry := range entries {
		Insert(root, entry)
	}
	return root
}

// Load reads a listing from r and builds its tree.
func Load(r io.Reader, nul bool) (*model.TreeNode, error) {
	entries, err := NewReader(nul).Read(r)
	if err != nil {
		return nil, err
	}
	slog.Debug("read path listing", "entries", len(entries))
	return Build(entries), nil
}

// Insert adds one relative path below root. Entries without any segment
// (empty, or nothing but slashes) are skipped and reported as false.
func Insert(root *model.TreeNode, entry string) bool {
	entry = strings.TrimSpace(entry)
	segments := Segments(entry)
	if len(segments) == 0 {
		slog.Debug("skipping malformed path entry", "entry", entry)
		return false
	}

	explicitDir := strings.HasSuffix(entry, "/")
	curr := root
	for i, segment := range segments {
		curr = curr.Child(segment)
		// Only ever set, never cleared: a node stays a directory once it is one.
		if i < len(segments)-1 || explicitDir {
			curr.Dir = true
		}
	}
	return true
}

// Segments splits a path on runs of '/', so "a//b/" yields [a b].
func Segments(path string) []string {
	return strings.FieldsFunc(path, func(r rune) bool { return r == '/' })
}
