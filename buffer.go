package gallery

import (
	"image"
	"image/color"
	"image/draw"
)

// Buffer is an owned raster of packed 0xAARRGGBB pixels.
//
// Pixels are stored row-major: (x, y) lives at index y*Size().X + x.
// Writes outside the surface are silently dropped; reads outside it are a
// caller error.
//
// Thread safety: Buffer has no internal locking. The frame compositor owns
// the screen buffer; decoded image buffers are guarded by their library slot.
type Buffer struct {
	size Vec2
	data []uint32
}

// NewBuffer creates a buffer of the given size filled with opaque white.
func NewBuffer(size Vec2) *Buffer {
	data := make([]uint32, size.Area())
	for i := range data {
		data[i] = White
	}
	return &Buffer{size: size, data: data}
}

// EmptyBuffer returns a 0×0 buffer.
func EmptyBuffer() *Buffer {
	return &Buffer{}
}

// Size returns the buffer dimensions.
func (b *Buffer) Size() Vec2 {
	return b.size
}

// Get returns the pixel at pos. pos must be inside the buffer.
func (b *Buffer) Get(pos Vec2) uint32 {
	return b.data[int(pos.Y)*int(b.size.X)+int(pos.X)]
}

// Set writes the pixel at pos. Out-of-range positions are ignored.
func (b *Buffer) Set(pos Vec2, c uint32) {
	if pos.X < b.size.X && pos.Y < b.size.Y {
		b.data[int(pos.Y)*int(b.size.X)+int(pos.X)] = c
	}
}

// Data returns the raw pixel slice.
func (b *Buffer) Data() []uint32 {
	return b.data
}

// Row returns the pixels of row y, or nil if y is out of range.
func (b *Buffer) Row(y uint32) []uint32 {
	if y >= b.size.Y {
		return nil
	}
	start := int(y) * int(b.size.X)
	return b.data[start : start+int(b.size.X)]
}

// Clone returns a deep copy.
func (b *Buffer) Clone() *Buffer {
	data := make([]uint32, len(b.data))
	copy(data, b.data)
	return &Buffer{size: b.size, data: data}
}

// Clear fills the entire surface with one color.
func (b *Buffer) Clear(c uint32) {
	for i := range b.data {
		b.data[i] = c
	}
}

// Bytes returns the memory held by the pixel data.
func (b *Buffer) Bytes() int {
	return cap(b.data) * 4
}

// RGBA writes the buffer as tightly packed RGBA bytes into dst, growing it
// if needed, and returns the result. Alpha is copied as stored.
func (b *Buffer) RGBA(dst []byte) []byte {
	n := len(b.data) * 4
	if cap(dst) < n {
		dst = make([]byte, n)
	}
	dst = dst[:n]
	for i, c := range b.data {
		a, r, g, bl := Unpack(c)
		o := i * 4
		dst[o+0] = r
		dst[o+1] = g
		dst[o+2] = bl
		dst[o+3] = a
	}
	return dst
}

// Canvas returns a draw.Image view of the buffer so image/draw and
// golang.org/x/image/font can render into it.
func (b *Buffer) Canvas() draw.Image {
	return canvas{b}
}

// canvas adapts Buffer to draw.Image. Buffer.Set already takes a packed
// color, so the adapter carries the color.Color signature.
type canvas struct {
	b *Buffer
}

func (c canvas) ColorModel() color.Model {
	return color.NRGBAModel
}

func (c canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, int(c.b.size.X), int(c.b.size.Y))
}

func (c canvas) At(x, y int) color.Color {
	if x < 0 || y < 0 || x >= int(c.b.size.X) || y >= int(c.b.size.Y) {
		return color.NRGBA{}
	}
	return ToColor(c.b.Get(V2(uint32(x), uint32(y))))
}

func (c canvas) Set(x, y int, col color.Color) {
	if x < 0 || y < 0 {
		return
	}
	c.b.Set(V2(uint32(x), uint32(y)), FromColor(col))
}
