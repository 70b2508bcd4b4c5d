package library

import (
	"math"

	gallery "github.com/gogpu/nanogallery"
)

// DefaultBounds is the thumbnail bounding box used when none is configured.
var DefaultBounds = gallery.V2(500, 500)

// FitSize returns the display size of an image of the given native size:
// the largest aspect-preserving size that fits in bounds. Images already
// inside bounds keep their native size. A zero bounds disables fitting.
func FitSize(native, bounds gallery.Vec2) gallery.Vec2 {
	if native.IsZero() || bounds.IsZero() {
		return native
	}
	if native.X <= bounds.X && native.Y <= bounds.Y {
		return native
	}

	w, h := float64(native.X), float64(native.Y)
	ratio := math.Min(float64(bounds.X)/w, float64(bounds.Y)/h)
	return gallery.V2(
		max(uint32(math.Round(w*ratio)), 1),
		max(uint32(math.Round(h*ratio)), 1),
	)
}
