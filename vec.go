package gallery

// Vec2 is an integer 2D size or position.
//
// Arithmetic wraps like unsigned integers; callers that may subtract past
// zero must clamp first or use the saturating helpers.
type Vec2 struct {
	X, Y uint32
}

// V2 is a convenience function to create a Vec2.
func V2(x, y uint32) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v with n added to both components.
func (v Vec2) Add(n uint32) Vec2 {
	return Vec2{X: v.X + n, Y: v.Y + n}
}

// Sub returns v with n subtracted from both components.
func (v Vec2) Sub(n uint32) Vec2 {
	return Vec2{X: v.X - n, Y: v.Y - n}
}

// Sub2 returns v with x and y subtracted from the respective components.
func (v Vec2) Sub2(x, y uint32) Vec2 {
	return Vec2{X: v.X - x, Y: v.Y - y}
}

// SatSub is Sub clamped at zero.
func (v Vec2) SatSub(n uint32) Vec2 {
	return v.SatSub2(n, n)
}

// SatSub2 is Sub2 clamped at zero.
func (v Vec2) SatSub2(x, y uint32) Vec2 {
	return Vec2{X: satSub(v.X, x), Y: satSub(v.Y, y)}
}

// Area returns X*Y without overflowing.
func (v Vec2) Area() uint64 {
	return uint64(v.X) * uint64(v.Y)
}

// IsZero reports whether either component is zero, i.e. the size holds no pixels.
func (v Vec2) IsZero() bool {
	return v.X == 0 || v.Y == 0
}

// Less reports whether both components of v are strictly less than w's.
func (v Vec2) Less(w Vec2) bool {
	return v.X < w.X && v.Y < w.Y
}

// Greater reports whether both components of v are strictly greater than w's.
func (v Vec2) Greater(w Vec2) bool {
	return v.X > w.X && v.Y > w.Y
}

// Compare orders v against w under component-wise dominance.
// It returns -1, 0 or +1 with ok=true when both components agree,
// and ok=false when the vectors are incomparable.
func (v Vec2) Compare(w Vec2) (order int, ok bool) {
	cx, cy := cmp(v.X, w.X), cmp(v.Y, w.Y)
	if cx != cy {
		return 0, false
	}
	return cx, true
}

func cmp(a, b uint32) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func satSub(a, b uint32) uint32 {
	if b >= a {
		return 0
	}
	return a - b
}
