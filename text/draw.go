package text

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Draw renders s onto dst with its baseline origin at (x, y).
func (f *Face) Draw(dst draw.Image, s string, x, y int, col color.Color) {
	if s == "" {
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: f.ot,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

// rasterWidth returns the rasterizer's advance of s, used to center text
// the way it will actually be drawn.
func (f *Face) rasterWidth(s string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return font.MeasureString(f.ot, s).Ceil()
}
