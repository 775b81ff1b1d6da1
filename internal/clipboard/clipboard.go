// Package clipboard provides text writing to the system clipboard.
package clipboard

import (
	"fmt"

	"golang.design/x/clipboard"

	"github.com/zhubert/tally/internal/logger"
)

// initialized tracks whether the clipboard has been initialized
var initialized bool

// Init initializes the clipboard. Must be called before other functions.
// This is safe to call multiple times.
func Init() error {
	if initialized {
		return nil
	}

	if err := clipboard.Init(); err != nil {
		logger.Debug("Clipboard: Failed to initialize: %v", err)
		return fmt.Errorf("failed to initialize clipboard: %w", err)
	}

	initialized = true
	logger.Debug("Clipboard: Initialized successfully")
	return nil
}

// WriteText copies text to the system clipboard.
func WriteText(text string) error {
	if !initialized {
		if err := Init(); err != nil {
			return err
		}
	}

	clipboard.Write(clipboard.FmtText, []byte(text))
	logger.Debug("Clipboard: Wrote %d bytes of text", len(text))
	return nil
}
