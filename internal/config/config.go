package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Output format names accepted by the Format setting
const (
	FormatTagged = "xml"
	FormatRaw    = "raw"
)

// Config represents codectx configuration options
type Config struct {
	// Root is the base directory under which codebase names are resolved
	Root string `yaml:"root"`

	// Extensions is the list of file suffixes to include (empty = all text files)
	Extensions []string `yaml:"extensions"`

	// Format selects the output mode: "xml" (tagged) or "raw"
	Format string `yaml:"format"`

	// LogLevel sets the logging verbosity (debug, info, warn, error)
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns a Config with sensible default values.
// Root is left empty here; ResolveRoot fills it in from the environment
// or the home-directory default.
func DefaultConfig() *Config {
	return &Config{
		Root:       "",
		Extensions: nil,
		Format:     FormatTagged,
		LogLevel:   "info",
	}
}

// DefaultConfigPath returns the default config file location:
// $HOME/.codectx/config.yaml
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".codectx", "config.yaml"), nil
}

// LoadConfig loads configuration from the specified file path
// If the file doesn't exist, returns default configuration without error
// If the file exists but is malformed, returns an error
func LoadConfig(path string) (*Config, error) {
	// Start with defaults
	cfg := DefaultConfig()

	// Check if file exists
	if _, err := os.Stat(path); os.IsNotExist(err) {
		// File doesn't exist, return defaults (not an error)
		return cfg, nil
	}

	// Read the file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Apply non-zero values from file (merging with defaults)
	if fileCfg.Root != "" {
		cfg.Root = fileCfg.Root
	}
	if len(fileCfg.Extensions) > 0 {
		cfg.Extensions = NormalizeExtensions(fileCfg.Extensions)
	}
	if fileCfg.Format != "" {
		cfg.Format = fileCfg.Format
	}
	if fileCfg.LogLevel != "" {
		cfg.LogLevel = fileCfg.LogLevel
	}

	return cfg, nil
}

// MergeWithFlags merges CLI flags into the configuration
// Non-nil flag values override configuration values
// This allows CLI flags to take precedence over config file settings
func (c *Config) MergeWithFlags(root *string, extensions *[]string, raw *bool) {
	if root != nil {
		c.Root = *root
	}
	if extensions != nil {
		c.Extensions = NormalizeExtensions(*extensions)
	}
	if raw != nil {
		if *raw {
			c.Format = FormatRaw
		} else {
			c.Format = FormatTagged
		}
	}
}

// Validate validates the configuration values
// Returns an error if any values are invalid
func (c *Config) Validate() error {
	if c.Root == "" {
		return fmt.Errorf("root cannot be empty")
	}
	if !filepath.IsAbs(c.Root) {
		return fmt.Errorf("root must be an absolute path, got %q", c.Root)
	}

	if c.Format != FormatTagged && c.Format != FormatRaw {
		return fmt.Errorf("invalid format %q, must be %q or %q", c.Format, FormatTagged, FormatRaw)
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("invalid log_level %q, must be one of: debug, info, warn, error", c.LogLevel)
	}

	return nil
}

// NormalizeExtensions ensures every suffix starts with a dot, so both
// "-e py" and "-e .py" (and the same spellings in the config file) match
// files ending in ".py".
func NormalizeExtensions(exts []string) []string {
	normalized := make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		normalized = append(normalized, ext)
	}
	return normalized
}
