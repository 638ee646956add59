package bundle

import "path/filepath"

// ReadmeName is the only base name treated as a README
const ReadmeName = "README.md"

// Document is one unit of output content: a file's text plus the metadata
// the renderers need. Documents are immutable after collection except for
// Index, which Order reassigns once the full set is known.
type Document struct {
	// Index is the 1-based position in the final output, assigned by Order
	Index int

	// Source is the file path, the unique key for de-duplication
	Source string

	// Content is the full decoded text of the file
	Content string

	// IsReadme is true iff the base name is exactly README.md
	IsReadme bool

	// Depth is the number of path segments in Source, used only for ordering
	Depth int
}

// IsReadmePath reports whether path names a README file.
func IsReadmePath(path string) bool {
	return filepath.Base(path) == ReadmeName
}
