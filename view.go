package gallery

// BufferView is the read-only pixel capability shared by owned buffers and
// decoded images. Derived operations (Scale, Rotate, FlipH, FlipV, Clone)
// are written once against it and always allocate a fresh Buffer.
type BufferView interface {
	// Size returns the view dimensions.
	Size() Vec2
	// Get returns the packed pixel at pos, which must be inside Size().
	Get(pos Vec2) uint32
}

var _ BufferView = (*Buffer)(nil)

// Clone copies any view into a new Buffer.
func Clone(v BufferView) *Buffer {
	if b, ok := v.(*Buffer); ok {
		return b.Clone()
	}
	size := v.Size()
	out := NewBuffer(size)
	for y := uint32(0); y < size.Y; y++ {
		row := out.Row(y)
		for x := uint32(0); x < size.X; x++ {
			row[x] = v.Get(V2(x, y))
		}
	}
	return out
}

// Rotate returns v rotated 90° clockwise. The result is Size().Y wide and
// Size().X tall; input (x, y) lands at (Size().Y-1-y, x).
func Rotate(v BufferView) *Buffer {
	size := v.Size()
	out := NewBuffer(V2(size.Y, size.X))
	for y := uint32(0); y < size.Y; y++ {
		for x := uint32(0); x < size.X; x++ {
			out.Set(V2(size.Y-1-y, x), v.Get(V2(x, y)))
		}
	}
	return out
}

// FlipH mirrors v left to right.
func FlipH(v BufferView) *Buffer {
	size := v.Size()
	out := NewBuffer(size)
	for y := uint32(0); y < size.Y; y++ {
		row := out.Row(y)
		for x := uint32(0); x < size.X; x++ {
			row[size.X-1-x] = v.Get(V2(x, y))
		}
	}
	return out
}

// FlipV mirrors v top to bottom.
func FlipV(v BufferView) *Buffer {
	size := v.Size()
	out := NewBuffer(size)
	for y := uint32(0); y < size.Y; y++ {
		row := out.Row(size.Y - 1 - y)
		for x := uint32(0); x < size.X; x++ {
			row[x] = v.Get(V2(x, y))
		}
	}
	return out
}
