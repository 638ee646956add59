// Package ignore loads .gitignore-style rule lists and answers whether a
// path should be excluded from collection.
//
// Matching is deliberately naive: a rule matches a candidate when its glob
// pattern matches the candidate's base name, or, for directories, the base
// name with a trailing slash. Anchored patterns, negation, and nested
// .gitignore files are not supported.
package ignore

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Rules is an ordered list of glob patterns read from a .gitignore file.
// A nil Rules matches nothing.
type Rules []string

// Load reads the .gitignore file in dir, skipping blank lines and comments.
// A missing .gitignore is not an error; it yields an empty rule set.
func Load(dir string) (Rules, error) {
	path := filepath.Join(dir, ".gitignore")

	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return nil, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var rules Rules
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		rules = append(rules, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return rules, nil
}

// Match reports whether the entry at path should be ignored. The base name
// is checked against every rule; directories are additionally checked with
// a trailing slash so "build/"-style rules apply.
func (r Rules) Match(path string, isDir bool) bool {
	name := filepath.Base(path)
	for _, rule := range r {
		if ok, err := doublestar.Match(rule, name); err == nil && ok {
			return true
		}
		if isDir {
			if ok, err := doublestar.Match(rule, name+"/"); err == nil && ok {
				return true
			}
		}
	}
	return false
}
