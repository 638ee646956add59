// Package resolve maps user-supplied path tokens to directories under the
// codebase root and locates the ancestor README chain for a resolved path.
package resolve

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Resolve converts a path token to an absolute path following codebase
// conventions:
//  1. Root codebase directory ("myproj")
//  2. Direct subpath ("myproj/env")
//  3. Auto-prefixed ("myproj/env" -> "myproj/myproj/env")
//
// The "tests" single-segment subpath is a fixed special case and bypasses
// the auto-prefix logic. When neither the direct nor the prefixed candidate
// exists, the direct candidate is returned anyway; the caller is expected to
// check existence and warn. Only an empty token is an error.
func Resolve(token, root string) (string, error) {
	parts := strings.Split(token, "/")
	codebase := parts[0]
	subpath := parts[1:]

	if codebase == "" {
		return "", fmt.Errorf("empty path token")
	}

	if len(subpath) == 0 {
		// e.g. "manabot" => $CODE_CONTEXT_ROOT/manabot
		return filepath.Join(root, codebase), nil
	}
	if len(subpath) == 1 && subpath[0] == "tests" {
		// e.g. "manabot/tests"
		return filepath.Join(root, codebase, "tests"), nil
	}

	direct := filepath.Join(root, codebase, filepath.Join(subpath...))
	if pathExists(direct) {
		return direct, nil
	}

	// If direct doesn't exist, try auto-prefix
	if subpath[0] != codebase {
		prefixed := filepath.Join(root, codebase, codebase, filepath.Join(subpath...))
		if pathExists(prefixed) {
			return prefixed, nil
		}
	}

	return direct, nil
}

func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
