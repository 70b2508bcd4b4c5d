package gallery

// rgb is one column of the vertical pass.
type rgb struct {
	r, g, b uint8
}

// Scale resamples v to size with separable tent filtering and returns a new
// opaque Buffer. A view already of the requested size is cloned; a
// zero-sized source or target yields a fresh NewBuffer(size).
//
// The vertical pass blends each source column into a scratch row for the
// current output row, the horizontal pass blends across that row. Every
// channel*weight term is truncated to a byte before it is added, so each
// pass may lose up to one step per term and solid colors darken slightly.
func Scale(v BufferView, size Vec2) *Buffer {
	src := v.Size()
	if size == src {
		return Clone(v)
	}
	out := NewBuffer(size)
	if src.IsZero() || size.IsZero() {
		return out
	}

	weightsX := ComputeWeights(src.X, size.X)
	weightsY := ComputeWeights(src.Y, size.Y)
	line := make([]rgb, src.X)

	for outY := range size.Y {
		wy := weightsY[outY]
		for x := range src.X {
			var r, g, b uint32
			for i, w := range wy.W {
				_, cr, cg, cb := Unpack(v.Get(V2(x, wy.Start+uint32(i))))
				r += term(cr, w)
				g += term(cg, w)
				b += term(cb, w)
			}
			line[x] = rgb{sat8(r), sat8(g), sat8(b)}
		}

		row := out.Row(outY)
		for outX := range size.X {
			wx := weightsX[outX]
			var r, g, b uint32
			for i, w := range wx.W {
				c := line[wx.Start+uint32(i)]
				r += term(c.r, w)
				g += term(c.g, w)
				b += term(c.b, w)
			}
			row[outX] = Pack(0xFF, sat8(r), sat8(g), sat8(b))
		}
	}
	return out
}

// term returns the truncated contribution of channel c at weight w.
func term(c uint8, w float32) uint32 {
	return uint32(toU8(float32(c) * w))
}

// sat8 clamps an accumulated channel to a byte.
func sat8(v uint32) uint8 {
	return uint8(min(v, 255))
}

// toU8 truncates like a float-to-byte cast, saturating at 255.
func toU8(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
