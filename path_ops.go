package underline

import "math"

// Path operations for area calculation, winding number, containment testing,
// bounding box computation and flattening.

// DefaultTolerance is the flattening tolerance in pixels used when a caller
// passes a non-positive value.
const DefaultTolerance = 0.1

// windingTolerance is the flattening tolerance used by Winding for curves.
const windingTolerance = 0.02

// Area returns the signed area enclosed by the path.
// Positive for clockwise paths (as seen with y growing downward), negative
// for counter-clockwise. Uses the shoelace formula extended for curves
// (Green's theorem). Open subpaths are treated as closed.
func (p *Path) Area() float64 {
	var area float64
	var current, start Point
	open := false

	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			if open {
				area += lineArea(current, start)
			}
			start = e.Point
			current = e.Point
			open = true
		case LineTo:
			area += lineArea(current, e.Point)
			current = e.Point
		case QuadTo:
			area += quadArea(current, e.Control, e.Point)
			current = e.Point
		case CubicTo:
			area += cubicArea(current, e.Control1, e.Control2, e.Point)
			current = e.Point
		case Close:
			area += lineArea(current, start)
			current = start
			open = false
		}
	}
	if open {
		area += lineArea(current, start)
	}

	return area
}

// lineArea computes the contribution of a line segment to the signed area.
func lineArea(p0, p1 Point) float64 {
	return 0.5 * p0.Cross(p1)
}

// quadArea computes the contribution of a quadratic Bezier to the signed area.
func quadArea(p0, p1, p2 Point) float64 {
	return (2*p0.Cross(p1) + 2*p1.Cross(p2) + p0.Cross(p2)) / 6.0
}

// cubicArea computes the contribution of a cubic Bezier to the signed area.
func cubicArea(p0, p1, p2, p3 Point) float64 {
	return (6*p0.Cross(p1) + 3*p0.Cross(p2) + p0.Cross(p3) +
		3*p1.Cross(p2) + 3*p1.Cross(p3) + 6*p2.Cross(p3)) / 20.0
}

// Winding returns the winding number of a point relative to the path.
// Uses ray casting with a horizontal ray. Curves are flattened finely and
// every subpath is treated as closed, as a filler would.
func (p *Path) Winding(pt Point) int {
	var winding int
	for _, c := range p.Contours(windingTolerance) {
		for i := range c {
			winding += lineWinding(c[i], c[(i+1)%len(c)], pt)
		}
	}
	return winding
}

// lineWinding computes the winding contribution of a line segment.
func lineWinding(p0, p1, pt Point) int {
	if p0.Y <= pt.Y && p1.Y > pt.Y {
		if isLeft(p0, p1, pt) > 0 {
			return 1
		}
	} else if p0.Y > pt.Y && p1.Y <= pt.Y {
		if isLeft(p0, p1, pt) < 0 {
			return -1
		}
	}
	return 0
}

// isLeft returns positive if pt is left of line p0-p1, negative if right, 0 if on.
func isLeft(p0, p1, pt Point) float64 {
	return (p1.X-p0.X)*(pt.Y-p0.Y) - (pt.X-p0.X)*(p1.Y-p0.Y)
}

// Contains tests if a point is inside the path under the given fill rule.
func (p *Path) Contains(pt Point, rule FillRule) bool {
	return rule.Inside(p.Winding(pt))
}

// BoundingBox returns the axis-aligned bounding box of all points and
// control points of the path. Curves lie inside their control hull, so the
// box always covers the filled area.
func (p *Path) BoundingBox() Rect {
	if p.IsEmpty() {
		return Rect{}
	}

	bbox := Rect{
		Min: Point{X: math.MaxFloat64, Y: math.MaxFloat64},
		Max: Point{X: -math.MaxFloat64, Y: -math.MaxFloat64},
	}
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			bbox = expandBBox(bbox, e.Point)
		case LineTo:
			bbox = expandBBox(bbox, e.Point)
		case QuadTo:
			bbox = expandBBox(expandBBox(bbox, e.Control), e.Point)
		case CubicTo:
			bbox = expandBBox(expandBBox(expandBBox(bbox, e.Control1), e.Control2), e.Point)
		}
	}

	if bbox.Min.X == math.MaxFloat64 {
		return Rect{}
	}
	return bbox
}

// expandBBox expands the bounding box to include the point.
func expandBBox(bbox Rect, pt Point) Rect {
	return Rect{
		Min: Point{X: math.Min(bbox.Min.X, pt.X), Y: math.Min(bbox.Min.Y, pt.Y)},
		Max: Point{X: math.Max(bbox.Max.X, pt.X), Y: math.Max(bbox.Max.Y, pt.Y)},
	}
}

// IsFinite reports whether every point of the path is finite.
func (p *Path) IsFinite() bool {
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			if !e.Point.IsFinite() {
				return false
			}
		case LineTo:
			if !e.Point.IsFinite() {
				return false
			}
		case QuadTo:
			if !e.Control.IsFinite() || !e.Point.IsFinite() {
				return false
			}
		case CubicTo:
			if !e.Control1.IsFinite() || !e.Control2.IsFinite() || !e.Point.IsFinite() {
				return false
			}
		}
	}
	return true
}

// Contours flattens the path into one polyline per subpath. Every polyline
// is implicitly closed: the closing edge from the last point back to the
// first is not repeated. The flattened polyline stays within tolerance of
// the true curve. Subpaths with fewer than two distinct points are dropped.
func (p *Path) Contours(tolerance float64) [][]Point {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}

	var contours [][]Point
	var cur []Point
	var current Point

	flush := func() {
		if len(cur) > 1 && cur[len(cur)-1] == cur[0] {
			cur = cur[:len(cur)-1]
		}
		if len(cur) >= 2 {
			contours = append(contours, cur)
		}
		cur = nil
	}
	emit := func(pt Point) {
		if n := len(cur); n > 0 && cur[n-1] == pt {
			return
		}
		cur = append(cur, pt)
	}

	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			flush()
			emit(e.Point)
			current = e.Point
		case LineTo:
			if cur == nil {
				emit(current)
			}
			emit(e.Point)
			current = e.Point
		case QuadTo:
			if cur == nil {
				emit(current)
			}
			flattenQuad(current, e.Control, e.Point, tolerance, emit)
			current = e.Point
		case CubicTo:
			if cur == nil {
				emit(current)
			}
			flattenCubic(current, e.Control1, e.Control2, e.Point, tolerance, emit)
			current = e.Point
		case Close:
			if len(cur) > 0 {
				current = cur[0]
			}
			flush()
		}
	}
	flush()

	return contours
}

// flattenQuad flattens a quadratic Bezier curve, emitting every point after p0.
func flattenQuad(p0, p1, p2 Point, tolerance float64, fn func(pt Point)) {
	flattenQuadRecursive(p0, p1, p2, tolerance*tolerance, 0, fn)
}

// flattenQuadRecursive recursively subdivides the quadratic. The curve
// deviates from its chord by at most half the distance between the control
// point and the chord midpoint.
func flattenQuadRecursive(p0, p1, p2 Point, toleranceSq float64, depth int, fn func(pt Point)) {
	mid := p0.Lerp(p2, 0.5)
	if depth >= maxFlattenDepth || p1.Sub(mid).LengthSquared() <= 4*toleranceSq {
		fn(p2)
		return
	}

	a := p0.Lerp(p1, 0.5)
	b := p1.Lerp(p2, 0.5)
	m := a.Lerp(b, 0.5)
	flattenQuadRecursive(p0, a, m, toleranceSq, depth+1, fn)
	flattenQuadRecursive(m, b, p2, toleranceSq, depth+1, fn)
}

// flattenCubic flattens a cubic Bezier curve, emitting every point after p0.
func flattenCubic(p0, p1, p2, p3 Point, tolerance float64, fn func(pt Point)) {
	flattenCubicRecursive(p0, p1, p2, p3, tolerance*tolerance, 0, fn)
}

// flattenCubicRecursive recursively subdivides the cubic until the standard
// flatness bound guarantees the chord is within tolerance.
func flattenCubicRecursive(p0, p1, p2, p3 Point, toleranceSq float64, depth int, fn func(pt Point)) {
	if depth >= maxFlattenDepth || cubicFlatness(p0, p1, p2, p3) <= toleranceSq*16 {
		fn(p3)
		return
	}

	ab := p0.Lerp(p1, 0.5)
	bc := p1.Lerp(p2, 0.5)
	cd := p2.Lerp(p3, 0.5)
	abc := ab.Lerp(bc, 0.5)
	bcd := bc.Lerp(cd, 0.5)
	m := abc.Lerp(bcd, 0.5)
	flattenCubicRecursive(p0, ab, abc, m, toleranceSq, depth+1, fn)
	flattenCubicRecursive(m, bcd, cd, p3, toleranceSq, depth+1, fn)
}

// maxFlattenDepth bounds the subdivision of degenerate curves.
const maxFlattenDepth = 16

// cubicFlatness returns 16 times the squared upper bound of the distance
// between the cubic and its chord.
func cubicFlatness(p0, p1, p2, p3 Point) float64 {
	ux := 3.0*p1.X - 2.0*p0.X - p3.X
	uy := 3.0*p1.Y - 2.0*p0.Y - p3.Y
	vx := 3.0*p2.X - p0.X - 2.0*p3.X
	vy := 3.0*p2.Y - p0.Y - 2.0*p3.Y

	return math.Max(ux*ux, vx*vx) + math.Max(uy*uy, vy*vy)
}
