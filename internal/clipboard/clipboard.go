// Package clipboard copies text to the system clipboard on a best-effort
// basis: failures are logged and never returned to the caller.
package clipboard

import (
	"errors"

	"github.com/atotto/clipboard"
)

var ErrUnsupported = errors.New("clipboard is not supported on this system")

// Writer copies text to the clipboard backend resolved at construction.
type Writer struct {
	backend Backend
	logger  Logger
}

// New returns a Writer using the system clipboard if it is available
// on the host, and an unsupported backend otherwise.
// If enabled is false, the returned Writer never touches the clipboard.
func New(enabled bool, logger Logger) *Writer {
	return newWriter(enabled, !clipboard.Unsupported, systemBackend{}, logger)
}

func newWriter(enabled, supported bool, system Backend, logger Logger) *Writer {
	var b Backend
	switch {
	case !enabled:
		b = disabled{}
	case !supported:
		b = unsupported{}
	default:
		b = system
	}
	return &Writer{
		backend: b,
		logger:  logger,
	}
}

// Copy copies text to the clipboard. Any failure is logged and swallowed.
func (w *Writer) Copy(text string) {
	err := w.backend.Write(text)
	switch {
	case err == nil:
		w.logger.Info("IP address copied to clipboard")
	case errors.Is(err, errDisabled):
		w.logger.Debug("clipboard copy is disabled")
	case errors.Is(err, ErrUnsupported):
		w.logger.Warn(err.Error() + ", skipping clipboard copy")
	default:
		w.logger.Error("copying to clipboard: " + err.Error())
	}
}
