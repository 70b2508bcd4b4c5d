package library

import (
	"sync"

	gallery "github.com/gogpu/nanogallery"
)

// SlotState is the lifecycle of a decoded image.
type SlotState int32

const (
	// Unloaded means no decode has been claimed.
	Unloaded SlotState = iota
	// Loading means a decode was claimed and has not stored a result.
	// A failed decode leaves the slot here until it is unloaded.
	Loading
	// Loaded means the resampled surface is available.
	Loaded
)

// String returns the state name.
func (s SlotState) String() string {
	switch s {
	case Unloaded:
		return "unloaded"
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	default:
		return "unknown"
	}
}

// Slot holds the decoded surface of one Image. It is shared between the
// Image and any decode task in flight; the last holder to let go frees it.
//
// The UI only uses the non-blocking TryView so a frame never waits on a
// worker that is storing its result.
type Slot struct {
	mu    sync.RWMutex
	state SlotState
	buf   *gallery.Buffer
}

// State returns the current state.
func (s *Slot) State() SlotState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// TryView calls fn with the decoded surface and returns true if the slot is
// loaded and not being written. It never blocks.
func (s *Slot) TryView(fn func(gallery.BufferView)) bool {
	if !s.mu.TryRLock() {
		return false
	}
	defer s.mu.RUnlock()
	if s.state != Loaded {
		return false
	}
	fn(s.buf)
	return true
}

// Bytes returns the memory held by the decoded surface, 0 unless loaded.
func (s *Slot) Bytes() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.buf == nil {
		return 0
	}
	return s.buf.Bytes()
}

// store publishes buf. A concurrent Unload may have run since the claim;
// the later write wins.
func (s *Slot) store(buf *gallery.Buffer) {
	s.mu.Lock()
	s.state = Loaded
	s.buf = buf
	s.mu.Unlock()
}

// Image is one library entry: a file on disk and the lazily decoded,
// display-sized surface.
type Image struct {
	path string
	name string
	size gallery.Vec2
	slot *Slot
}

// NewImage creates an unloaded entry that decodes path to size on demand.
func NewImage(path, name string, size gallery.Vec2) *Image {
	return &Image{path: path, name: name, size: size, slot: &Slot{}}
}

// Path returns the file path.
func (img *Image) Path() string { return img.path }

// Name returns the display name.
func (img *Image) Name() string { return img.name }

// Size returns the display size the image is resampled to.
func (img *Image) Size() gallery.Vec2 { return img.size }

// Get returns the image slot, claiming and scheduling a decode on l first
// if none has been claimed yet.
//
// The claim is non-blocking: if the slot is busy (a worker is storing its
// result, or another caller is claiming) Get returns immediately and the
// caller retries next frame. At most one decode is scheduled per claim.
func (img *Image) Get(l *Loader) *Slot {
	s := img.slot
	if !s.mu.TryLock() {
		return s
	}
	if s.state != Unloaded {
		s.mu.Unlock()
		return s
	}
	s.state = Loading

	if l.runInline() {
		s.mu.Unlock()
		l.claim()
		l.load(img, s)
		return s
	}
	l.claim()
	l.exec.Execute(func() { l.load(img, s) })
	s.mu.Unlock()
	return s
}

// Unload drops the decoded surface so the next Get decodes again.
func (img *Image) Unload() {
	s := img.slot
	s.mu.Lock()
	s.state = Unloaded
	s.buf = nil
	s.mu.Unlock()
}

// Loaded reports whether the decoded surface is available. A claimed but
// unfinished decode is not loaded.
func (img *Image) Loaded() bool {
	return img.slot.State() == Loaded
}

// Loading reports whether a decode has been claimed but has not stored its
// result. A decode that failed stays loading.
func (img *Image) Loading() bool {
	return img.slot.State() == Loading
}

// Bytes returns the memory held by the decoded surface.
func (img *Image) Bytes() int {
	return img.slot.Bytes()
}
