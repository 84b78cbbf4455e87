// Package boolop implements boolean operations on polygonal regions.
//
// A Shape is a union of Regions. Each Region is a set of closed contours
// interpreted under its own fill rule, so a glyph outline filled with the
// even-odd rule and a set of overlapping capsules filled with the non-zero
// rule can take part in the same operation without being merged first.
//
// Operations decompose the plane into horizontal slabs between every vertex
// and edge crossing. Inside a slab no two edges cross, so membership can be
// decided once per gap between consecutive edges and emitted as a trapezoid.
// The output is a list of non-overlapping, consistently oriented quads.
package boolop

import (
	"errors"
	"math"
)

// ErrNonFinite is returned when an operand contains a NaN or infinite coordinate.
var ErrNonFinite = errors.New("boolop: non-finite coordinate")

// Point is a 2D point. Y grows downward.
type Point struct {
	X, Y float64
}

// Contour is a closed polygon. The closing edge from the last point back to
// the first is implicit.
type Contour []Point

// FillRule decides membership from a winding number.
type FillRule int

const (
	// NonZero treats any non-zero winding as inside.
	NonZero FillRule = iota
	// EvenOdd treats odd winding as inside.
	EvenOdd
)

func (r FillRule) inside(winding int) bool {
	if r == EvenOdd {
		return winding%2 != 0
	}
	return winding != 0
}

// Region is a set of contours filled with one rule.
type Region struct {
	Contours []Contour
	Rule     FillRule
}

// Shape is the union of its regions.
type Shape []Region

// Rect is an axis-aligned rectangle.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return !(r.MaxX > r.MinX) || !(r.MaxY > r.MinY)
}

// Overlaps reports whether r and o share interior area.
func (r Rect) Overlaps(o Rect) bool {
	return r.MinX < o.MaxX && o.MinX < r.MaxX && r.MinY < o.MaxY && o.MinY < r.MaxY
}

func emptyRect() Rect {
	return Rect{MinX: math.Inf(1), MinY: math.Inf(1), MaxX: math.Inf(-1), MaxY: math.Inf(-1)}
}

func (r *Rect) add(p Point) {
	r.MinX = math.Min(r.MinX, p.X)
	r.MinY = math.Min(r.MinY, p.Y)
	r.MaxX = math.Max(r.MaxX, p.X)
	r.MaxY = math.Max(r.MaxY, p.Y)
}

// Bounds returns the bounding box of the contour.
func (c Contour) Bounds() Rect {
	r := emptyRect()
	for _, p := range c {
		r.add(p)
	}
	return r
}

// Area returns the signed shoelace area of the contour. It is positive for
// contours that run clockwise on screen.
func (c Contour) Area() float64 {
	var a float64
	for i := range c {
		p, q := c[i], c[(i+1)%len(c)]
		a += p.X*q.Y - q.X*p.Y
	}
	return a / 2
}

// Bounds returns the bounding box of every contour in the shape and false
// when the shape has no points.
func (s Shape) Bounds() (Rect, bool) {
	r := emptyRect()
	for _, reg := range s {
		for _, c := range reg.Contours {
			for _, p := range c {
				r.add(p)
			}
		}
	}
	return r, r.MinX <= r.MaxX
}

// Empty reports whether the shape has no contour with at least three points.
func (s Shape) Empty() bool {
	for _, reg := range s {
		for _, c := range reg.Contours {
			if len(c) >= 3 {
				return false
			}
		}
	}
	return true
}

// Contains reports whether p lies inside any region of the shape.
func (s Shape) Contains(p Point) bool {
	for _, reg := range s {
		w := 0
		for _, c := range reg.Contours {
			w += winding(c, p)
		}
		if reg.Rule.inside(w) {
			return true
		}
	}
	return false
}

func winding(c Contour, p Point) int {
	w := 0
	for i := range c {
		a, b := c[i], c[(i+1)%len(c)]
		cross := (b.X-a.X)*(p.Y-a.Y) - (p.X-a.X)*(b.Y-a.Y)
		if a.Y <= p.Y && b.Y > p.Y && cross > 0 {
			w++
		} else if a.Y > p.Y && b.Y <= p.Y && cross < 0 {
			w--
		}
	}
	return w
}

func finite(s Shape) bool {
	for _, reg := range s {
		for _, c := range reg.Contours {
			for _, p := range c {
				if math.IsNaN(p.X) || math.IsInf(p.X, 0) || math.IsNaN(p.Y) || math.IsInf(p.Y, 0) {
					return false
				}
			}
		}
	}
	return true
}
