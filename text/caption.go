package text

import (
	gallery "github.com/gogpu/nanogallery"
	"github.com/gogpu/nanogallery/internal/cache"
)

// captionPad is the vertical padding above and below a caption line.
const captionPad = 2

// captionCacheSize bounds the number of rendered strips kept.
const captionCacheSize = 512

type captionKey struct {
	name  string
	width uint32
}

// Captioner renders file names into fixed-height strips and caches them.
//
// Thread safety: Captioner is safe for concurrent use.
type Captioner struct {
	face   *Face
	fg, bg uint32
	strips *cache.Cache[captionKey, *gallery.Buffer]
}

// NewCaptioner creates a captioner drawing fg text on a bg strip.
func NewCaptioner(face *Face, fg, bg uint32) *Captioner {
	return &Captioner{
		face:   face,
		fg:     fg,
		bg:     bg,
		strips: cache.New[captionKey, *gallery.Buffer](captionCacheSize),
	}
}

// Height returns the strip height in pixels.
func (c *Captioner) Height() uint32 {
	return uint32(c.face.Height() + 2*captionPad)
}

// Render returns a width×Height() strip with name centered on it,
// ellipsized to fit. The returned buffer is shared; do not modify it.
func (c *Captioner) Render(name string, width uint32) *gallery.Buffer {
	return c.strips.GetOrCreate(captionKey{name, width}, func() *gallery.Buffer {
		return c.render(name, width)
	})
}

func (c *Captioner) render(name string, width uint32) *gallery.Buffer {
	strip := gallery.NewBuffer(gallery.V2(width, c.Height()))
	strip.Clear(c.bg)

	label := Ellipsize(c.face, name, float64(width))
	if label == "" {
		return strip
	}
	x := max((int(width)-c.face.rasterWidth(label))/2, 0)
	c.face.Draw(strip.Canvas(), label, x, captionPad+c.face.Ascent(), gallery.ToColor(c.fg))
	return strip
}

// Cached returns the number of strips currently cached.
func (c *Captioner) Cached() int {
	return c.strips.Len()
}

// Stats returns caption cache statistics.
func (c *Captioner) Stats() cache.Stats {
	return c.strips.Stats()
}
