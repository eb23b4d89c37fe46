// Package clipboard copies estimate summaries to the system clipboard.
package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

// ErrUnsupported is returned when no clipboard utility is available
var ErrUnsupported = errors.New("clipboard not supported on this system")

// Writer puts text on a clipboard
type Writer interface {
	WriteAll(text string) error
}

// Logger is the subset of the engine logger used here
type Logger interface {
	Debugf(format string, args ...interface{})
	Warnf(format string, args ...interface{})
}

// System writes to the operating system clipboard
type System struct{}

func (System) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	return clipboard.WriteAll(text)
}

// Copy writes text through w. A nil logger is allowed.
func Copy(w Writer, text string, logger Logger) error {
	if err := w.WriteAll(text); err != nil {
		if logger != nil {
			logger.Warnf("clipboard copy failed: %v", err)
		}
		return fmt.Errorf("could not copy to clipboard: %w", err)
	}
	if logger != nil {
		logger.Debugf("copied %d bytes to clipboard", len(text))
	}
	return nil
}
