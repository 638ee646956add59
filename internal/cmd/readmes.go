package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/harrison/codectx/internal/logger"
	"github.com/harrison/codectx/internal/markdown"
	"github.com/harrison/codectx/internal/resolve"
)

// NewReadmesCommand creates the readmes command
func NewReadmesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "readmes <path>",
		Short: "List the README chain for a codebase path",
		Long: `List the README.md files that would be injected ahead of a bundle for
the given codebase path, in injection order (root first), together with
each file's title.

Examples:
  codectx readmes manabot
  codectx readmes managym/tests`,
		Args: cobra.ExactArgs(1),
		RunE: runReadmes,
	}
}

// runReadmes implements the readmes command logic
func runReadmes(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log := logger.NewConsoleLogger(cmd.ErrOrStderr(), cfg.LogLevel)

	token := strings.TrimSpace(args[0])
	if token == "" {
		return fmt.Errorf("empty path token")
	}

	resolved, err := resolve.Resolve(token, cfg.Root)
	if err != nil {
		return fmt.Errorf("invalid path token %q: %w", token, err)
	}
	if _, err := os.Stat(resolved); err != nil {
		return fmt.Errorf("path does not exist: %s", resolved)
	}

	readmes := resolve.FindReadmes(resolved, cfg.Root)
	if len(readmes) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No README.md files found")
		return nil
	}

	for _, path := range readmes {
		data, err := os.ReadFile(path)
		if err != nil {
			log.Warnf("cannot read %s: %v", path, err)
			continue
		}
		if title := markdown.Title(data); title != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "%s  (%s)\n", path, title)
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), path)
		}
	}

	return nil
}
