package model

import (
	"path/filepath"
	"regexp"
	"strings"
)

// RequestItem is a single manifest entry: what the operator asked for, the
// category section it appeared under, and the optional sub-directory that
// was active at that point.
//
// Example:
//
//	item := model.RequestItem{Query: "Bar", Category: model.CategoryPlugin, SubDir: "extra"}
//	item.Destination(".", res) // "plugins/extra/<file name>"
type RequestItem struct {
	// Query is the human-written project name or slug.
	Query string

	// Category is the manifest section the entry belongs to.
	Category Category

	// SubDir is an optional directory below the category directory.
	// Empty means the file goes directly into the category directory.
	SubDir string
}

// Dir returns the directory the item's file is placed in, relative to root.
//
// SubDir may contain nested segments separated by "/"; each segment is
// sanitized and "." or ".." segments are dropped so the result always stays
// below the category directory.
func (i RequestItem) Dir(root string) string {
	parts := []string{root, i.Category.Dir()}
	for _, seg := range strings.FieldsFunc(i.SubDir, isPathSeparator) {
		seg = sanitizeFileName(strings.TrimSpace(seg))
		if seg == "" || seg == "." || seg == ".." {
			continue
		}
		parts = append(parts, seg)
	}
	return filepath.Join(parts...)
}

// Destination computes the full path the resolved file is written to:
// root/<category dir>/[<sub dir>/]<file name>.
func (i RequestItem) Destination(root string, res Resolution) string {
	return filepath.Join(i.Dir(root), res.FileName())
}

// String returns a short label such as "mod:sodium".
func (i RequestItem) String() string {
	return i.Category.String() + ":" + i.Query
}

func isPathSeparator(r rune) bool {
	return r == '/' || r == '\\'
}

var (
	invalidFileChars = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)
	trailingDots     = regexp.MustCompile(`\.+$`)
	whitespaceRuns   = regexp.MustCompile(`\s+`)
)

// sanitizeFileName removes or replaces characters that are invalid in file/folder names.
//
// The following transformations are applied:
//   - Invalid characters (<>:"/\|?* and control chars) are replaced with underscore
//   - Trailing dots are removed (Windows limitation), except for "." and ".."
//   - Multiple whitespace is collapsed to single space
//   - Trailing whitespace is removed
//
// Example:
//
//	sanitizeFileName("Song: Part 1/2") // Returns "Song_ Part 1_2"
func sanitizeFileName(name string) string {
	name = invalidFileChars.ReplaceAllString(name, "_")
	if name != "." && name != ".." {
		name = trailingDots.ReplaceAllString(name, "")
	}
	name = whitespaceRuns.ReplaceAllString(name, " ")
	return strings.TrimRight(name, " ")
}
