package gallery

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Decode workers log concurrently
// with the UI goroutine, so access is atomic.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger shared by gallery and its sub-packages.
// By default nothing is logged. Pass nil to restore the silent default.
//
// What gets logged, by package:
//   - library: a failed decode at Warn (the tile keeps its placeholder);
//     decodes or resamples slower than a second and the image count per root
//     at Info; every finished decode, skipped file and unreadable root at
//     Debug
//   - internal/parallel: a panicking decode task at Error
//   - config: writing the default file at Info, an ignored line at Debug
//   - internal/window: opening the window at Info, resizes at Debug
//   - gui: a memory report that could not be written at Warn
//
// Example:
//
//	gallery.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger.
// Sub-packages (library/, config/, internal/parallel/, gui/) call this to share one
// configuration without import cycles.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
