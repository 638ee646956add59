package resolve

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FindReadmes walks from path upward to root, collecting README.md files,
// then adds root's own README.md if not already included.
//
// The walk stops at root or at the user's home directory, whichever comes
// first, and never visits root's parent. The result is sorted so that the
// "highest-level" README (fewest path segments) comes first, with
// case-insensitive alphabetical order breaking ties; that is the order the
// READMEs should be injected in. File contents are not read here.
func FindReadmes(path, root string) []string {
	home, _ := os.UserHomeDir()

	// The walk boundary is a string comparison, so a trailing slash in
	// either argument would step past root
	root = filepath.Clean(root)

	var readmes []string

	// Traverse upward
	current := filepath.Clean(path)
	for current != root && current != home {
		candidate := filepath.Join(current, "README.md")
		if fileExists(candidate) {
			readmes = append(readmes, candidate)
		}
		parent := filepath.Dir(current)
		if parent == current {
			// Reached filesystem root
			break
		}
		current = parent
	}

	// Check for a README in the root itself
	rootReadme := filepath.Join(root, "README.md")
	if fileExists(rootReadme) && !containsPath(readmes, rootReadme) {
		readmes = append(readmes, rootReadme)
	}

	// Fewest path segments (highest up) first; ties => alphabetical
	sort.SliceStable(readmes, func(i, j int) bool {
		di, dj := SegmentCount(readmes[i]), SegmentCount(readmes[j])
		if di != dj {
			return di < dj
		}
		return strings.ToLower(readmes[i]) < strings.ToLower(readmes[j])
	})

	return readmes
}

// SegmentCount returns the number of non-empty path segments in path.
// Used as the depth component of README and document ordering.
func SegmentCount(path string) int {
	count := 0
	for _, segment := range strings.Split(filepath.ToSlash(path), "/") {
		if segment != "" {
			count++
		}
	}
	return count
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func containsPath(paths []string, target string) bool {
	for _, p := range paths {
		if p == target {
			return true
		}
	}
	return false
}
