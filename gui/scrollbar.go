package gui

import gallery "github.com/gogpu/nanogallery"

const (
	scrollbarWidth     = 10
	scrollbarMinLength = 10
)

// Scrollbar draws the scroll position along the right edge when the
// content is taller than the viewport.
type Scrollbar struct {
	viewport gallery.Vec2
}

// Resize implements Widget.
func (b *Scrollbar) Resize(s *State) {
	b.viewport = s.screen.Size()
}

// Draw implements Widget.
func (b *Scrollbar) Draw(s *State) {
	x, y0, y1, ok := b.thumb(s.view.height, s.view.scroll)
	if !ok {
		return
	}
	s.screen.Line(x, y0, x, y1, scrollbarWidth, s.config.SecondaryColor)
}

// thumb returns the thumb stroke: column x from y0 to y1.
func (b *Scrollbar) thumb(height, scroll uint32) (x, y0, y1 uint32, ok bool) {
	viewport := float32(b.viewport.Y) - 1
	content := float32(height)
	if content <= viewport || b.viewport.X < scrollbarWidth/2 {
		return 0, 0, 0, false
	}

	length := max(viewport/content*viewport, scrollbarMinLength)
	maxScroll := max(content-viewport, 1)
	maxY := max(viewport-length, 0)
	y := min(max(float32(scroll)/maxScroll*maxY, 0), maxY)

	x = b.viewport.X - scrollbarWidth/2
	return x, uint32(y), uint32(y + length), true
}
