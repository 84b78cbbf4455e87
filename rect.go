package underline

import "math"

// Rect represents an axis-aligned rectangle.
// Min is the top-left corner, Max is the bottom-right corner.
type Rect struct {
	Min, Max Point
}

// R creates a rectangle from edge coordinates. The edges are normalized
// so Min <= Max.
func R(left, top, right, bottom float64) Rect {
	return Rect{
		Min: Point{X: math.Min(left, right), Y: math.Min(top, bottom)},
		Max: Point{X: math.Max(left, right), Y: math.Max(top, bottom)},
	}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return !(r.Max.X > r.Min.X) || !(r.Max.Y > r.Min.Y)
}

// Intersect returns the largest rectangle contained by both r and other.
// The result is the zero Rect when they do not overlap.
func (r Rect) Intersect(other Rect) Rect {
	out := Rect{
		Min: Point{X: math.Max(r.Min.X, other.Min.X), Y: math.Max(r.Min.Y, other.Min.Y)},
		Max: Point{X: math.Min(r.Max.X, other.Max.X), Y: math.Min(r.Max.Y, other.Max.Y)},
	}
	if out.Empty() {
		return Rect{}
	}
	return out
}

// Overlaps reports whether r and other share interior area.
func (r Rect) Overlaps(other Rect) bool {
	return r.Min.X < other.Max.X && other.Min.X < r.Max.X &&
		r.Min.Y < other.Max.Y && other.Min.Y < r.Max.Y
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		Min: Point{X: math.Min(r.Min.X, other.Min.X), Y: math.Min(r.Min.Y, other.Min.Y)},
		Max: Point{X: math.Max(r.Max.X, other.Max.X), Y: math.Max(r.Max.Y, other.Max.Y)},
	}
}

// Inset shrinks the rectangle by dx on the left and right and dy on the top
// and bottom. Negative values grow it.
func (r Rect) Inset(dx, dy float64) Rect {
	return Rect{
		Min: Point{X: r.Min.X + dx, Y: r.Min.Y + dy},
		Max: Point{X: r.Max.X - dx, Y: r.Max.Y - dy},
	}
}

// Contains returns true if the point is inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}
