package text

import (
	"bytes"
	"fmt"
	"sync"

	gtfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Face is one font at one pixel size.
//
// Thread safety: Face is safe for concurrent use. The x/image face keeps
// glyph caches and is guarded by a mutex; shaping uses a pooled
// HarfbuzzShaper per call.
type Face struct {
	size float64

	mu sync.Mutex
	ot font.Face

	// shapeFont is read-only and safe for concurrent use, unlike gtfont.Face.
	shapeFont  *gtfont.Font
	shaperPool sync.Pool

	ascent, descent, height int
}

// NewFace parses TrueType/OpenType data and returns a face at size pixels.
func NewFace(data []byte, size float64) (*Face, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	if !(size > 0) {
		return nil, ErrInvalidSize
	}

	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: parse font: %w", err)
	}
	ot, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("text: create face: %w", err)
	}

	// ParseTTF returns a *Face which embeds the thread-safe *Font.
	shapeFace, err := gtfont.ParseTTF(bytes.NewReader(data))
	if err != nil {
		_ = ot.Close()
		return nil, fmt.Errorf("text: parse font for shaping: %w", err)
	}

	m := ot.Metrics()
	f := &Face{
		size:      size,
		ot:        ot,
		shapeFont: shapeFace.Font,
		ascent:    m.Ascent.Ceil(),
		descent:   m.Descent.Ceil(),
		height:    m.Height.Ceil(),
	}
	f.shaperPool.New = func() any { return &shaping.HarfbuzzShaper{} }
	return f, nil
}

// Default returns the Go Regular font at size pixels.
func Default(size float64) (*Face, error) {
	return NewFace(goregular.TTF, size)
}

// Size returns the font size in pixels.
func (f *Face) Size() float64 {
	return f.size
}

// Ascent returns the distance from the top of a line to the baseline.
func (f *Face) Ascent() int {
	return f.ascent
}

// Descent returns the distance from the baseline to the bottom of a line.
func (f *Face) Descent() int {
	return f.descent
}

// Height returns the line height in whole pixels.
func (f *Face) Height() int {
	return max(f.height, f.ascent+f.descent)
}

// Close releases the rasterizer.
func (f *Face) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.ot.Close()
}
