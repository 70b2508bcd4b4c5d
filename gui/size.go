package gui

import gallery "github.com/gogpu/nanogallery"

// Window size limits.
var (
	MinWindow = gallery.V2(100, 100)
	MaxWindow = gallery.V2(1920, 1080)
)

// ClampWindow limits a window size reported by the platform to the range
// the gallery renders at.
func ClampWindow(w, h int) gallery.Vec2 {
	return gallery.V2(
		uint32(min(max(w, int(MinWindow.X)), int(MaxWindow.X))),
		uint32(min(max(h, int(MinWindow.Y)), int(MaxWindow.Y))),
	)
}
