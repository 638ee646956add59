// Package display provides terminal formatting for user-facing warnings.
//
// All functions accept io.Writer interfaces for testability; colored output
// uses raw ANSI codes and is gated by the caller on TTY detection.
package display

import (
	"fmt"
	"io"
	"strings"
)

// Warning represents a user-facing warning message
type Warning struct {
	Title      string   // Main warning title
	Message    string   // Detailed explanation (optional)
	Files      []string // Related files (optional)
	Suggestion string   // Action to take (optional)
}

// Display shows a formatted warning in yellow
func (w Warning) Display(out io.Writer) {
	var b strings.Builder

	fmt.Fprintf(&b, "\x1b[33m⚠️  Warning: %s\n", w.Title)

	if w.Message != "" {
		fmt.Fprintf(&b, "    %s\n", w.Message)
	}

	if len(w.Files) > 0 {
		if len(w.Files) == 1 {
			b.WriteString("    Affected file:\n")
		} else {
			b.WriteString("    Affected files:\n")
		}
		for i, file := range w.Files {
			fmt.Fprintf(&b, "      %d. %s\n", i+1, file)
		}
	}

	if w.Suggestion != "" {
		fmt.Fprintf(&b, "    Suggestion:\n    %s\n", w.Suggestion)
	}

	b.WriteString("\x1b[0m")

	fmt.Fprint(out, b.String())
}

// WarnSkippedFiles creates a warning for files dropped from the bundle
// because they could not be decoded as text
func WarnSkippedFiles(files []string) Warning {
	return Warning{
		Title:      "Non-text files skipped",
		Message:    "These files could not be decoded as text and were left out of the bundle.",
		Files:      files,
		Suggestion: "Use --extension to filter collection to source files.",
	}
}
