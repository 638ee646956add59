package ignore

import (
	"os"
	"path/filepath"
	"testing"
)

// TestLoadMissingFile verifies a missing .gitignore yields an empty rule set
func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()

	rules, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(rules) != 0 {
		t.Errorf("Load() = %v, want empty", rules)
	}
}

// TestLoadSkipsCommentsAndBlanks verifies comment and blank lines are dropped
func TestLoadSkipsCommentsAndBlanks(t *testing.T) {
	dir := t.TempDir()
	content := `# build artifacts
*.log

build/
  secrets.txt
`
	if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte(content), 0644); err != nil {
		t.Fatalf("failed to write .gitignore: %v", err)
	}

	rules, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := []string{"*.log", "build/", "secrets.txt"}
	if len(rules) != len(want) {
		t.Fatalf("Load() = %v, want %v", rules, want)
	}
	for i := range want {
		if rules[i] != want[i] {
			t.Errorf("Load()[%d] = %q, want %q", i, rules[i], want[i])
		}
	}
}

// TestMatchBaseName verifies glob matching against base names only
func TestMatchBaseName(t *testing.T) {
	rules := Rules{"*.log", "secrets.txt"}

	tests := []struct {
		path  string
		isDir bool
		want  bool
	}{
		{"/src/proj/debug.log", false, true},
		{"/src/proj/nested/deep.log", false, true},
		{"/src/proj/secrets.txt", false, true},
		{"/src/proj/main.py", false, false},
		// Rule matches base name, not the full path
		{"/src/debug.log.d/file.py", false, false},
	}

	for _, tt := range tests {
		if got := rules.Match(tt.path, tt.isDir); got != tt.want {
			t.Errorf("Match(%q, %v) = %v, want %v", tt.path, tt.isDir, got, tt.want)
		}
	}
}

// TestMatchDirectoryRule verifies "name/"-style rules match directories only
func TestMatchDirectoryRule(t *testing.T) {
	rules := Rules{"build/"}

	if !rules.Match("/src/proj/build", true) {
		t.Error("Match() = false for directory build against build/, want true")
	}
	if rules.Match("/src/proj/build", false) {
		t.Error("Match() = true for file build against build/, want false")
	}
}

// TestMatchNilRules verifies a nil rule set matches nothing
func TestMatchNilRules(t *testing.T) {
	var rules Rules
	if rules.Match("/src/anything.log", false) {
		t.Error("Match() = true with nil rules, want false")
	}
}
