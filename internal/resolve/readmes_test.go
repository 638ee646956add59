package resolve

import (
	"path/filepath"
	"testing"
)

// TestFindReadmesAncestorChain verifies READMEs are collected from the path
// up to (but not including) the root's parent, ordered shallowest first
func TestFindReadmesAncestorChain(t *testing.T) {
	root := t.TempDir()
	leaf := filepath.Join(root, "proj", "proj", "env")
	mustMkdirAll(t, leaf)

	top := filepath.Join(root, "proj", "README.md")
	mid := filepath.Join(root, "proj", "proj", "README.md")
	deep := filepath.Join(leaf, "README.md")
	mustWriteFile(t, deep, "# deep")
	mustWriteFile(t, top, "# top")
	mustWriteFile(t, mid, "# mid")

	got := FindReadmes(leaf, root)

	want := []string{top, mid, deep}
	if len(got) != len(want) {
		t.Fatalf("FindReadmes() returned %d paths, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("FindReadmes()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

// TestFindReadmesIncludesRootReadme verifies the root's own README is
// appended even though the walk stops before reaching it
func TestFindReadmesIncludesRootReadme(t *testing.T) {
	root := t.TempDir()
	leaf := filepath.Join(root, "proj")
	mustMkdirAll(t, leaf)

	rootReadme := filepath.Join(root, "README.md")
	projReadme := filepath.Join(leaf, "README.md")
	mustWriteFile(t, rootReadme, "# root")
	mustWriteFile(t, projReadme, "# proj")

	got := FindReadmes(leaf, root)

	if len(got) != 2 {
		t.Fatalf("FindReadmes() returned %d paths, want 2: %v", len(got), got)
	}
	// Root README has fewer segments, so it sorts first
	if got[0] != rootReadme {
		t.Errorf("FindReadmes()[0] = %q, want %q", got[0], rootReadme)
	}
	if got[1] != projReadme {
		t.Errorf("FindReadmes()[1] = %q, want %q", got[1], projReadme)
	}
}

// TestFindReadmesRootReadmeNotDuplicated verifies the root README appears
// once even when reachable through the upward walk path
func TestFindReadmesRootReadmeNotDuplicated(t *testing.T) {
	root := t.TempDir()
	mustWriteFile(t, filepath.Join(root, "README.md"), "# root")

	got := FindReadmes(root, root)

	if len(got) != 1 {
		t.Fatalf("FindReadmes() returned %d paths, want 1: %v", len(got), got)
	}
}

// TestFindReadmesStopsAtRoot verifies the walk never collects READMEs from
// above the configured root, including when the root carries a trailing
// slash
func TestFindReadmesStopsAtRoot(t *testing.T) {
	outer := t.TempDir()
	aboveRoot := filepath.Join(outer, "README.md")
	mustWriteFile(t, aboveRoot, "# outside")

	root := filepath.Join(outer, "code")
	leaf := filepath.Join(root, "proj", "sub")
	mustMkdirAll(t, leaf)
	projReadme := filepath.Join(root, "proj", "README.md")
	mustWriteFile(t, projReadme, "# proj")

	for _, rootArg := range []string{root, root + string(filepath.Separator)} {
		got := FindReadmes(leaf, rootArg)

		if len(got) != 1 || got[0] != projReadme {
			t.Errorf("FindReadmes(%q, %q) = %v, want [%s]", leaf, rootArg, got, projReadme)
		}
		for _, path := range got {
			if path == aboveRoot {
				t.Errorf("FindReadmes(%q, %q) collected %q from above the root", leaf, rootArg, path)
			}
		}
	}
}

// TestFindReadmesNone verifies an empty result when no READMEs exist
func TestFindReadmesNone(t *testing.T) {
	root := t.TempDir()
	leaf := filepath.Join(root, "proj", "sub")
	mustMkdirAll(t, leaf)

	if got := FindReadmes(leaf, root); len(got) != 0 {
		t.Errorf("FindReadmes() = %v, want empty", got)
	}
}

// TestSegmentCount verifies path segment counting
func TestSegmentCount(t *testing.T) {
	tests := []struct {
		path string
		want int
	}{
		{"/", 0},
		{"/a", 1},
		{"/a/b/c.txt", 3},
		{"a/b", 2},
		{"/a//b/", 2},
	}

	for _, tt := range tests {
		if got := SegmentCount(tt.path); got != tt.want {
			t.Errorf("SegmentCount(%q) = %d, want %d", tt.path, got, tt.want)
		}
	}
}
