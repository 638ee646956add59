// Package clipboard is the optional output sink for bundled content.
package clipboard

import (
	"errors"
	"fmt"

	ac "github.com/atotto/clipboard"
)

// ErrUnavailable indicates the platform has no usable clipboard mechanism.
// Callers degrade to a warning plus stdout echo rather than failing.
var ErrUnavailable = errors.New("clipboard unavailable on this platform")

// Copy writes content to the system clipboard.
func Copy(content string) error {
	if ac.Unsupported {
		return ErrUnavailable
	}
	if err := ac.WriteAll(content); err != nil {
		return fmt.Errorf("write to clipboard: %w", err)
	}
	return nil
}
