package common

import "github.com/jakecoffman/cp"

// Rect is an axis-aligned rectangle; X/Y is the top-left corner.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Intersects reports whether both projections overlap with open intervals, so
// rectangles that only share an edge do not intersect. Zero-area rectangles
// never intersect anything.
func (r Rect) Intersects(other Rect) bool {
	if r.Empty() || other.Empty() {
		return false
	}
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

func (r Rect) Right() float64  { return r.X + r.Width }
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Empty reports whether the rect has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

func (r Rect) Center() Vector2 {
	return Vec(r.X+r.Width/2, r.Y+r.Height/2)
}

// Translate returns r moved by d.
func (r Rect) Translate(d Vector2) Rect {
	r.X += d.X
	r.Y += d.Y
	return r
}

// BB converts r to a chipmunk bounding box. Y grows downward here, so the
// box's "bottom" holds the smaller Y.
func (r Rect) BB() cp.BB {
	return cp.BB{L: r.X, B: r.Y, R: r.X + r.Width, T: r.Y + r.Height}
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Vector2) bool {
	return r.BB().ContainsVect(p)
}
