package library

import (
	"sync/atomic"
	"time"

	gallery "github.com/gogpu/nanogallery"
	"github.com/gogpu/nanogallery/internal/image"
)

// PicoMaxAlloc is the decode allocation cap for constrained (pico) mode.
const PicoMaxAlloc = 50 << 20

// slowPhase is the duration at which decode and resample phases are logged.
const slowPhase = time.Second

// Executor runs decode tasks in the background.
// *parallel.Pool implements it.
type Executor interface {
	Execute(task func())
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithInline decodes on the calling goroutine instead of the executor.
// Constrained devices use this to keep a single decode in memory at a time.
func WithInline() LoaderOption {
	return func(l *Loader) {
		l.inline = true
	}
}

// WithMaxAlloc rejects images whose decoded pixels would exceed n bytes.
// Zero means unlimited.
func WithMaxAlloc(n int64) LoaderOption {
	return func(l *Loader) {
		l.maxAlloc = n
	}
}

// WithNotify sets a callback run after each successful decode, typically
// marking the UI dirty. It may run on any goroutine.
func WithNotify(fn func()) LoaderOption {
	return func(l *Loader) {
		l.notify = fn
	}
}

// Loader decodes and resamples library images.
//
// Thread safety: Loader is safe for concurrent use.
type Loader struct {
	exec     Executor
	inline   bool
	maxAlloc int64
	notify   func()

	scheduled atomic.Int64
}

// NewLoader creates a loader that runs decode tasks on exec.
// A nil exec decodes inline.
func NewLoader(exec Executor, opts ...LoaderOption) *Loader {
	l := &Loader{exec: exec}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Scheduled returns the number of decode tasks started so far.
func (l *Loader) Scheduled() int64 {
	return l.scheduled.Load()
}

func (l *Loader) runInline() bool {
	return l.inline || l.exec == nil
}

func (l *Loader) claim() {
	l.scheduled.Add(1)
}

// load decodes img, resamples it to its display size and stores the result
// in s. Failures are logged and leave s loading.
func (l *Loader) load(img *Image, s *Slot) {
	log := gallery.Logger()
	start := time.Now()

	src, format, err := image.Load(img.path, l.maxAlloc)
	if err != nil {
		log.Warn("library: failed to decode image", "path", img.path, "err", err)
		return
	}
	decoded := time.Since(start)
	if decoded >= slowPhase {
		log.Info("library: slow decode", "name", img.name, "elapsed", decoded)
	}

	buf := gallery.Scale(gallery.NewImageView(src), img.size)
	s.store(buf)

	scaled := time.Since(start) - decoded
	if scaled >= slowPhase {
		log.Info("library: slow resample", "name", img.name, "elapsed", scaled)
	}
	log.Debug("library: loaded", "name", img.name, "format", format,
		"size", img.size, "elapsed", time.Since(start))

	if l.notify != nil {
		l.notify()
	}
}
