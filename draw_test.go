package gallery

import "testing"

func TestSetTransparent(t *testing.T) {
	tests := []struct {
		name  string
		dst   uint32
		src   uint32
		alpha float32
		want  uint32
	}{
		{"full coverage", Black, 0xFFFF8040, 1, 0xFFFF8040},
		{"no coverage keeps rgb", 0x7F102030, White, 0, 0xFF102030},
		{"half", Black, White, 0.5, 0xFF7F7F7F},
		{"clamped above one", Black, White, 3, White},
		{"quarter red over blue", 0xFF0000FF, 0xFFFF0000, 0.25, 0xFF3F00BF},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuffer(V2(1, 1))
			b.Set(V2(0, 0), tt.dst)
			b.SetTransparent(V2(0, 0), tt.src, tt.alpha)
			if got := b.Get(V2(0, 0)); got != tt.want {
				t.Errorf("SetTransparent = %#08x, want %#08x", got, tt.want)
			}
		})
	}
}

func TestLine_Horizontal(t *testing.T) {
	b := NewBuffer(V2(5, 5))
	b.Clear(Black)

	b.Line(0, 0, 4, 0, 1, White)

	for x := range uint32(5) {
		_, r, g, bl := Unpack(b.Get(V2(x, 0)))
		if r < 0xF0 || g < 0xF0 || bl < 0xF0 {
			t.Errorf("row 0 pixel %d = %#08x, want white", x, b.Get(V2(x, 0)))
		}
	}
	for y := uint32(1); y < 5; y++ {
		for x := range uint32(5) {
			if got := b.Get(V2(x, y)); got != Black {
				t.Errorf("(%d,%d) = %#08x, want untouched black", x, y, got)
			}
		}
	}
}

func TestLine_Degenerate(t *testing.T) {
	b := patterned(4, 4)
	orig := b.Clone()
	b.Line(2, 2, 2, 2, 5, White)
	equalBuffers(t, b, orig)
}

func TestLine_ThickVertical(t *testing.T) {
	b := NewBuffer(V2(20, 40))
	b.Clear(Black)

	b.Line(10, 5, 10, 30, 10, White)

	// The stroke center is covered; overlapping stamps may lose a bit to
	// truncation.
	if _, r, _, _ := Unpack(b.Get(V2(10, 15))); r < 0xF0 {
		t.Errorf("center = %#08x, want white", b.Get(V2(10, 15)))
	}
	// Far outside the capsule nothing changes.
	for _, p := range []Vec2{V2(0, 15), V2(19, 15), V2(10, 0), V2(10, 39)} {
		if got := b.Get(p); got != Black {
			t.Errorf("%v = %#08x, want black", p, got)
		}
	}
	// Edges are anti-aliased: somewhere between the center and the rim a
	// pixel is partially covered.
	_, r, _, _ := Unpack(b.Get(V2(14, 15)))
	if r == 0 || r == 0xFF {
		t.Errorf("rim pixel red = %d, want partial coverage", r)
	}
}

func TestLine_ClipsToBuffer(t *testing.T) {
	b := NewBuffer(V2(8, 8))
	b.Clear(Black)
	// Runs off the right edge; must not panic.
	b.Line(4, 4, 30, 4, 4, White)
	if b.Get(V2(7, 4)) == Black {
		t.Error("visible part of a clipped line was not drawn")
	}

	empty := EmptyBuffer()
	empty.Line(0, 0, 5, 5, 2, White)
}

func TestStrokeRect(t *testing.T) {
	b := NewBuffer(V2(10, 10))
	b.Clear(Black)
	b.StrokeRect(V2(1, 1), V2(8, 8), 1, White)
	if b.Get(V2(1, 1)) != White || b.Get(V2(8, 8)) != White {
		t.Error("StrokeRect corners not drawn")
	}
	if b.Get(V2(4, 4)) != Black {
		t.Error("StrokeRect filled the interior")
	}
}
