package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/harrison/codectx/internal/bundle"
	"github.com/harrison/codectx/internal/clipboard"
	"github.com/harrison/codectx/internal/config"
	"github.com/harrison/codectx/internal/display"
	"github.com/harrison/codectx/internal/ignore"
	"github.com/harrison/codectx/internal/logger"
	"github.com/harrison/codectx/internal/resolve"
)

// runBundle implements the root command logic
func runBundle(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log := logger.NewConsoleLogger(cmd.ErrOrStderr(), cfg.LogLevel)

	// An unreadable root is structural, unlike the per-token skips below
	if _, err := os.Stat(cfg.Root); err != nil {
		return fmt.Errorf("codebase root not accessible: %w", err)
	}

	collector := bundle.NewCollector(cfg.Extensions, log.Warnf)

	var docs []bundle.Document
	for _, token := range strings.Split(args[0], ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			return fmt.Errorf("empty path token in %q", args[0])
		}

		resolved, err := resolve.Resolve(token, cfg.Root)
		if err != nil {
			return fmt.Errorf("invalid path token %q: %w", token, err)
		}

		if _, err := os.Stat(resolved); err != nil {
			log.Warnf("path does not exist: %s", resolved)
			continue
		}
		log.Debugf("collecting %q from %s", token, resolved)

		// Ancestor READMEs come first and are not subject to the
		// requested tree's ignore rules
		for _, readme := range resolve.FindReadmes(resolved, cfg.Root) {
			docs = append(docs, collector.Collect(readme, nil)...)
		}

		rules, err := ignore.Load(resolved)
		if err != nil {
			log.Warnf("reading ignore rules for %s: %v", resolved, err)
		}
		docs = append(docs, collector.Collect(resolved, rules)...)
	}

	docs = bundle.Order(docs)
	log.Debugf("bundled %d documents", len(docs))

	var out string
	if cfg.Format == config.FormatRaw {
		out = bundle.Raw(docs)
	} else {
		out = bundle.Tagged(docs)
	}

	if len(collector.Skipped) > 0 {
		displaySkipped(cmd.ErrOrStderr(), collector.Skipped)
	}

	if pbcopy, _ := cmd.Flags().GetBool("pbcopy"); pbcopy {
		if err := clipboard.Copy(out); err != nil {
			log.Warnf("clipboard integration skipped: %v", err)
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		}
		log.Infof("copied %d document(s) to clipboard", len(docs))
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

// displaySkipped shows the end-of-run summary of files dropped from the
// bundle. The colored block is reserved for interactive terminals.
func displaySkipped(out io.Writer, files []string) {
	if f, ok := out.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		display.WarnSkippedFiles(files).Display(out)
		return
	}

	fmt.Fprintf(out, "Warning: %d non-text file(s) skipped:\n", len(files))
	for _, file := range files {
		fmt.Fprintf(out, "  %s\n", file)
	}
}
