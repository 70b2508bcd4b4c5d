package gallery

import "math"

// SetTransparent blends c over the pixel at pos with the given coverage.
// Each RGB channel is interpolated linearly and truncated; the result is
// opaque. alpha is clamped to [0, 1]. Out-of-range positions are ignored.
func (b *Buffer) SetTransparent(pos Vec2, c uint32, alpha float32) {
	if pos.X >= b.size.X || pos.Y >= b.size.Y {
		return
	}
	if !(alpha > 0) { // also catches NaN
		alpha = 0
	} else if alpha > 1 {
		alpha = 1
	}

	_, sr, sg, sb := Unpack(c)
	_, dr, dg, db := Unpack(b.Get(pos))
	inv := 1 - alpha
	r := uint8(float32(sr)*alpha + float32(dr)*inv)
	g := uint8(float32(sg)*alpha + float32(dg)*inv)
	bl := uint8(float32(sb)*alpha + float32(db)*inv)
	b.Set(pos, Pack(0xFF, r, g, bl))
}

// Line strokes an anti-aliased capsule from (x1, y1) to (x2, y2).
//
// A disc of radius thickness/2 is stamped at each of ceil(length) steps
// along the segment; interior discs are inset by half a pixel so that
// adjacent stamps do not double up. Coverage falls off with
// 1 - smoothstep(distance/radius). A zero-length segment draws nothing.
func (b *Buffer) Line(x1, y1, x2, y2, thickness uint32, c uint32) {
	if b.size.IsZero() {
		return
	}
	x0, y0 := float32(x1), float32(y1)
	dx, dy := float32(x2)-x0, float32(y2)-y0
	length := sqrt32(dx*dx + dy*dy)
	if length == 0 {
		return
	}

	half := float32(thickness) / 2
	steps := int(math.Ceil(float64(length)))
	inset := int(thickness) / 2
	maxX, maxY := int(b.size.X)-1, int(b.size.Y)-1

	for i := inset; i <= steps-inset; i++ {
		t := float32(i) / float32(steps)
		px, py := x0+t*dx, y0+t*dy

		radius := half - 0.5
		if i == 0 || i == steps {
			radius = half
		}
		r2 := radius * radius

		minx := clampInt(int(math.Floor(float64(px-radius))), 0, maxX)
		maxx := clampInt(int(math.Ceil(float64(px+radius))), 0, maxX)
		miny := clampInt(int(math.Floor(float64(py-radius))), 0, maxY)
		maxy := clampInt(int(math.Ceil(float64(py+radius))), 0, maxY)

		for sx := minx; sx <= maxx; sx++ {
			for sy := miny; sy <= maxy; sy++ {
				ddx, ddy := float32(sx)-px, float32(sy)-py
				dist2 := ddx*ddx + ddy*ddy
				if dist2 > r2 {
					continue
				}
				// A zero radius only admits the exact center pixel.
				alpha := float32(1)
				if r2 > 0 {
					s := min(max(sqrt32(dist2/r2), 0), 1)
					alpha = 1 - s*s*(3-2*s)
				}
				b.SetTransparent(V2(uint32(sx), uint32(sy)), c, alpha)
			}
		}
	}
}

// CopyFrom overwrites b with v placed at column x and row y.
//
// y may be negative to clip the top of v; rows landing at y+row <= 0 are
// skipped. Pixels falling outside b are dropped. No blending is done.
func (b *Buffer) CopyFrom(v BufferView, x uint32, y int32) {
	src := v.Size()
	if x >= b.size.X {
		return
	}
	n := min(src.X, b.size.X-x)
	sb, direct := v.(*Buffer)

	for j := range int64(src.Y) {
		dy := int64(y) + j
		if dy <= 0 {
			continue
		}
		if dy >= int64(b.size.Y) {
			return
		}
		dst := b.Row(uint32(dy))[x : x+n]
		if direct {
			copy(dst, sb.Row(uint32(j))[:n])
			continue
		}
		for i := range n {
			dst[i] = v.Get(V2(i, uint32(j)))
		}
	}
}

// FillRect overwrites the rectangle at pos with the given size, clipped to b.
func (b *Buffer) FillRect(pos, size Vec2, c uint32) {
	if pos.X >= b.size.X || pos.Y >= b.size.Y {
		return
	}
	w := min(size.X, b.size.X-pos.X)
	h := min(size.Y, b.size.Y-pos.Y)
	for y := pos.Y; y < pos.Y+h; y++ {
		row := b.Row(y)[pos.X : pos.X+w]
		for i := range row {
			row[i] = c
		}
	}
}

// StrokeRect outlines the rectangle at pos with Line strokes.
func (b *Buffer) StrokeRect(pos, size Vec2, thickness, c uint32) {
	if size.IsZero() {
		return
	}
	x0, y0 := pos.X, pos.Y
	x1, y1 := pos.X+size.X-1, pos.Y+size.Y-1
	b.Line(x0, y0, x1, y0, thickness, c)
	b.Line(x1, y0, x1, y1, thickness, c)
	b.Line(x1, y1, x0, y1, thickness, c)
	b.Line(x0, y1, x0, y0, thickness, c)
}

func sqrt32(v float32) float32 {
	return float32(math.Sqrt(float64(v)))
}
