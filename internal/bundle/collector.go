package bundle

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/harrison/codectx/internal/ignore"
	"github.com/harrison/codectx/internal/resolve"
)

// WarnFunc receives non-fatal per-file warnings during collection.
type WarnFunc func(format string, args ...interface{})

// Collector walks files and directory trees and turns text files into
// Documents. It owns the de-duplication set for one invocation: a source
// path produces at most one Document no matter how many collection calls
// see it. Collector is not safe for concurrent use; the tool is single-pass
// and never needs it to be.
type Collector struct {
	seen       map[string]bool
	extensions []string
	warnf      WarnFunc

	// Skipped records files dropped because they are not text, for the
	// end-of-run summary.
	Skipped []string
}

// NewCollector creates a Collector with the given extension filter
// (suffixes including the dot; empty = accept all text files) and warning
// sink. A nil warnf discards warnings.
func NewCollector(extensions []string, warnf WarnFunc) *Collector {
	if warnf == nil {
		warnf = func(string, ...interface{}) {}
	}
	return &Collector{
		seen:       make(map[string]bool),
		extensions: extensions,
		warnf:      warnf,
	}
}

// Collect walks path and returns the Documents found, in deterministic
// order. A single file yields at most one Document. For a directory, each
// level excludes hidden entries (leading dot) and entries matched by rules
// before any recursion, then processes the remaining files in ascending
// name order and recurses into the remaining subdirectories in name order.
// The same rules apply at every level of one Collect call.
func (c *Collector) Collect(path string, rules ignore.Rules) []Document {
	info, err := os.Stat(path)
	if err != nil {
		c.warnf("cannot access %s: %v", path, err)
		return nil
	}

	if !info.IsDir() {
		var docs []Document
		c.collectFile(path, &docs)
		return docs
	}

	var docs []Document
	c.collectDir(path, rules, &docs)
	return docs
}

func (c *Collector) collectDir(dir string, rules ignore.Rules, docs *[]Document) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		c.warnf("cannot read directory %s: %v", dir, err)
		return
	}

	// ReadDir returns entries sorted by name, which gives the deterministic
	// per-level ordering: files first in name order, then subdirectories.
	var files, subdirs []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		full := filepath.Join(dir, name)
		if rules.Match(full, entry.IsDir()) {
			// An ignored directory's contents are never visited
			continue
		}
		if entry.IsDir() {
			subdirs = append(subdirs, full)
		} else {
			files = append(files, full)
		}
	}

	sort.Strings(files)
	for _, file := range files {
		c.collectFile(file, docs)
	}
	for _, subdir := range subdirs {
		c.collectDir(subdir, rules, docs)
	}
}

// collectFile appends a Document for path unless it was already collected,
// fails the extension filter, or is not valid text. A filtered-out or
// non-text file is not marked as processed.
func (c *Collector) collectFile(path string, docs *[]Document) {
	if c.seen[path] {
		return
	}
	if !c.matchesExtension(path) {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		c.warnf("skipping file %s: %v", path, err)
		return
	}
	if !isText(data) {
		c.warnf("skipping file %s: not valid text", path)
		c.Skipped = append(c.Skipped, path)
		return
	}

	c.seen[path] = true
	*docs = append(*docs, Document{
		Source:   path,
		Content:  string(data),
		IsReadme: IsReadmePath(path),
		Depth:    resolve.SegmentCount(path),
	})
}

func (c *Collector) matchesExtension(path string) bool {
	if len(c.extensions) == 0 {
		return true
	}
	for _, ext := range c.extensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

// isText reports whether data decodes as text: valid UTF-8 with no NUL
// bytes.
func isText(data []byte) bool {
	return utf8.Valid(data) && !bytes.ContainsRune(data, 0)
}
