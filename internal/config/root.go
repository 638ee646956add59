package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnvRoot is the environment variable that overrides the codebase root
const EnvRoot = "CODE_CONTEXT_ROOT"

// ResolveRoot returns the codebase root directory
// Priority order:
//  1. --root flag value (if non-empty)
//  2. CODE_CONTEXT_ROOT environment variable (if set)
//  3. root setting from the config file (if non-empty)
//  4. $HOME/src (fallback)
//
// The result is cleaned so that trailing slashes and redundant separators
// never leak into path comparisons downstream.
func ResolveRoot(flagRoot, configRoot string) (string, error) {
	if flagRoot != "" {
		return filepath.Clean(flagRoot), nil
	}

	if root := os.Getenv(EnvRoot); root != "" {
		return filepath.Clean(root), nil
	}

	if configRoot != "" {
		return filepath.Clean(configRoot), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	return filepath.Join(home, "src"), nil
}
