// Package gui holds the gallery's UI state, widgets and input handling.
//
// Everything a frame needs lives on one State passed to every widget. A
// single mutex serializes frame rendering, resizing and input; decode
// workers only touch the atomic dirty flag, so a decode finishing while a
// frame is being drawn (including an inline decode started by that frame)
// never waits on the lock.
package gui

import (
	"io"
	"os"
	"sync"
	"sync/atomic"

	gallery "github.com/gogpu/nanogallery"
	"github.com/gogpu/nanogallery/config"
	"github.com/gogpu/nanogallery/internal/cache"
	"github.com/gogpu/nanogallery/library"
	"github.com/gogpu/nanogallery/text"
)

// Option configures a State.
type Option func(*State)

// WithCaptions draws file names under each tile.
func WithCaptions(c *text.Captioner) Option {
	return func(s *State) {
		s.captions = c
	}
}

// WithReportOutput sets where the Report action writes. Default os.Stdout.
func WithReportOutput(w io.Writer) Option {
	return func(s *State) {
		s.reportOut = w
	}
}

// State is the UI state shared by the window, widgets and decode workers.
type State struct {
	mu    sync.Mutex
	dirty atomic.Bool

	config   config.Config
	library  *library.Library
	loader   *library.Loader
	exec     library.Executor
	screen   *gallery.Buffer
	view     *View
	captions *text.Captioner
	resident *cache.LRU[*library.Image]

	reportOut io.Writer
}

// NewState creates the UI state for lib. Decodes run on exec; in pico mode
// they run inline under library.PicoMaxAlloc instead.
func NewState(cfg config.Config, lib *library.Library, exec library.Executor, opts ...Option) *State {
	s := &State{
		config:    cfg,
		library:   lib,
		exec:      exec,
		screen:    gallery.EmptyBuffer(),
		view:      NewView(),
		reportOut: os.Stdout,
	}
	for _, opt := range opts {
		opt(s)
	}

	loaderOpts := []library.LoaderOption{library.WithNotify(s.MarkDirty)}
	if cfg.Pico {
		loaderOpts = append(loaderOpts, library.WithInline(), library.WithMaxAlloc(library.PicoMaxAlloc))
	}
	s.loader = library.NewLoader(exec, loaderOpts...)
	// Tiles still decoding are pinned until their result lands.
	s.resident = cache.NewLRU(
		func(img *library.Image) { img.Unload() },
		(*library.Image).Loading,
	)
	s.dirty.Store(true)
	return s
}

// MarkDirty requests a redraw. Safe to call from any goroutine.
func (s *State) MarkDirty() {
	s.dirty.Store(true)
}

// Dirty reports whether a redraw is pending.
func (s *State) Dirty() bool {
	return s.dirty.Load()
}

// Resize reallocates the screen and lays the view out again when size
// changed. It returns true if it did.
func (s *State) Resize(size gallery.Vec2) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if size == s.screen.Size() {
		return false
	}
	s.screen = gallery.NewBuffer(size)
	s.view.resize(s)
	s.MarkDirty()
	return true
}

// Tick advances the scroll animation by dt seconds.
func (s *State) Tick(dt float32) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.view.scroller.Active() {
		return
	}
	pos, _ := s.view.scroller.Update(dt)
	s.view.scroll = min(pos, s.view.maxScroll(s.screen.Size().Y))
	s.MarkDirty()
}

// Render redraws the screen if dirty and returns whether it did.
// The dirty flag is cleared before drawing, so a decode finishing
// mid-frame schedules another frame.
func (s *State) Render() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.dirty.CompareAndSwap(true, false) {
		return false
	}
	s.screen.Clear(s.config.BackgroundColor)
	s.view.draw(s)
	return true
}

// Screen returns the frame buffer. Only valid on the rendering goroutine
// between Render calls.
func (s *State) Screen() *gallery.Buffer {
	return s.screen
}

// Scroll returns the current scroll offset.
func (s *State) Scroll() uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view.scroll
}

// ContentHeight returns the laid-out height of the gallery.
func (s *State) ContentHeight() uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view.height
}

// Loader returns the loader decoding this state's images.
func (s *State) Loader() *library.Loader {
	return s.loader
}

// Library returns the image library.
func (s *State) Library() *library.Library {
	return s.library
}
