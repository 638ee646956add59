package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harrison/codectx/internal/config"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for codectx
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "codectx <paths>",
		Short: "Bundle codebase context for LLM prompts",
		Long: `Codectx collects the text files of one or more codebases under a
configured root directory and emits them as a single bundle, with every
README.md found between the root and the requested path injected first.

PATHS is a comma-separated list of codebase paths relative to the root.
A bare name addresses the whole codebase; a subpath narrows the collection.
When "proj/sub" does not exist, "proj/proj/sub" is tried automatically, so
src-layout projects can be addressed without repeating the project name.

The root directory is resolved from --root, the CODE_CONTEXT_ROOT
environment variable, the config file, or $HOME/src, in that order.

Examples:
  # Bundle one codebase in the default XML-tagged format
  codectx manabot

  # Bundle two trees, Python files only, raw format
  codectx "manabot,managym/tests" -e .py -r

  # Copy the bundle to the clipboard instead of printing it
  codectx manabot -p`,
		Version: Version,
		Args:    cobra.ExactArgs(1),
		RunE:    runBundle,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
	}

	cmd.PersistentFlags().String("root", "", "Codebase root directory (overrides CODE_CONTEXT_ROOT and the config file)")
	cmd.PersistentFlags().String("config", "", "Path to config file (default: ~/.codectx/config.yaml)")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Show detailed collection information")

	cmd.Flags().BoolP("pbcopy", "p", false, "Copy output to the clipboard instead of printing it")
	cmd.Flags().BoolP("raw", "r", false, "Output in raw format instead of XML")
	cmd.Flags().StringArrayP("extension", "e", nil, "File extensions to include (e.g. -e .py -e .js)")

	cmd.AddCommand(NewReadmesCommand())

	return cmd
}

// loadConfig builds the effective configuration for a command: config file
// (explicit path or default location), then root resolution, then flag
// overrides, then validation.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		defaultPath, err := config.DefaultConfigPath()
		if err != nil {
			return nil, err
		}
		configPath = defaultPath
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	flagRoot, _ := cmd.Flags().GetString("root")
	root, err := config.ResolveRoot(flagRoot, cfg.Root)
	if err != nil {
		return nil, err
	}
	cfg.Root = root

	// Build flag pointers for merge (only values the user actually set)
	var extensionsPtr *[]string
	if cmd.Flags().Changed("extension") {
		extensions, _ := cmd.Flags().GetStringArray("extension")
		extensionsPtr = &extensions
	}
	var rawPtr *bool
	if cmd.Flags().Changed("raw") {
		raw, _ := cmd.Flags().GetBool("raw")
		rawPtr = &raw
	}
	cfg.MergeWithFlags(nil, extensionsPtr, rawPtr)

	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		cfg.LogLevel = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}
