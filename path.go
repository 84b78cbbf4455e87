package underline

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// FillRule specifies how to determine which areas are inside a path.
type FillRule int

const (
	// FillRuleNonZero uses the non-zero winding rule.
	FillRuleNonZero FillRule = iota
	// FillRuleEvenOdd uses the even-odd rule.
	FillRuleEvenOdd
)

// String returns the rule name.
func (r FillRule) String() string {
	switch r {
	case FillRuleNonZero:
		return "nonzero"
	case FillRuleEvenOdd:
		return "evenodd"
	default:
		return "unknown"
	}
}

// Inside reports whether a winding number counts as inside under the rule.
func (r FillRule) Inside(winding int) bool {
	if r == FillRuleEvenOdd {
		return winding%2 != 0
	}
	return winding != 0
}

// Direction is the orientation in which AddRect emits its corners.
// Clockwise is as seen on screen, with y growing downward.
type Direction int

const (
	// Clockwise emits top-left, top-right, bottom-right, bottom-left.
	Clockwise Direction = iota
	// CounterClockwise emits top-left, bottom-left, bottom-right, top-right.
	CounterClockwise
)

// Path represents a vector path in device space.
type Path struct {
	elements []PathElement
	start    Point // Starting point of current subpath
	current  Point // Current point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// MoveTo moves to a point without drawing.
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a line to a point.
func (p *Path) LineTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// QuadraticTo draws a quadratic Bezier curve.
func (p *Path) QuadraticTo(cx, cy, x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, QuadTo{Control: Pt(cx, cy), Point: pt})
	p.current = pt
}

// CubicTo draws a cubic Bezier curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, CubicTo{
		Control1: Pt(c1x, c1y),
		Control2: Pt(c2x, c2y),
		Point:    pt,
	})
	p.current = pt
}

// Close closes the current subpath by drawing a line to the start point.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Clear removes all elements from the path.
func (p *Path) Clear() {
	p.elements = p.elements[:0]
	p.start = Point{}
	p.current = Point{}
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// IsEmpty reports whether the path has no elements.
func (p *Path) IsEmpty() bool {
	return p == nil || len(p.elements) == 0
}

// AddRect appends r as a closed subpath wound in dir.
func (p *Path) AddRect(r Rect, dir Direction) {
	p.MoveTo(r.Min.X, r.Min.Y)
	if dir == CounterClockwise {
		p.LineTo(r.Min.X, r.Max.Y)
		p.LineTo(r.Max.X, r.Max.Y)
		p.LineTo(r.Max.X, r.Min.Y)
	} else {
		p.LineTo(r.Max.X, r.Min.Y)
		p.LineTo(r.Max.X, r.Max.Y)
		p.LineTo(r.Min.X, r.Max.Y)
	}
	p.Close()
}

// AddPolygon appends pts as a closed subpath. Fewer than two points are ignored.
func (p *Path) AddPolygon(pts []Point) {
	if len(pts) < 2 {
		return
	}
	p.MoveTo(pts[0].X, pts[0].Y)
	for _, pt := range pts[1:] {
		p.LineTo(pt.X, pt.Y)
	}
	p.Close()
}

// Append copies all elements of other onto the end of p.
func (p *Path) Append(other *Path) {
	if other.IsEmpty() {
		return
	}
	p.elements = append(p.elements, other.elements...)
	p.start = other.start
	p.current = other.current
}

// Offset translates every point of the path in place.
func (p *Path) Offset(dx, dy float64) {
	if dx == 0 && dy == 0 {
		return
	}
	d := Pt(dx, dy)
	for i, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			p.elements[i] = MoveTo{Point: e.Point.Add(d)}
		case LineTo:
			p.elements[i] = LineTo{Point: e.Point.Add(d)}
		case QuadTo:
			p.elements[i] = QuadTo{Control: e.Control.Add(d), Point: e.Point.Add(d)}
		case CubicTo:
			p.elements[i] = CubicTo{
				Control1: e.Control1.Add(d),
				Control2: e.Control2.Add(d),
				Point:    e.Point.Add(d),
			}
		}
	}
	p.start = p.start.Add(d)
	p.current = p.current.Add(d)
}

// Transform returns a copy of the path with fn applied to every point.
func (p *Path) Transform(fn func(Point) Point) *Path {
	result := NewPath()
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			pt := fn(e.Point)
			result.MoveTo(pt.X, pt.Y)
		case LineTo:
			pt := fn(e.Point)
			result.LineTo(pt.X, pt.Y)
		case QuadTo:
			ctrl := fn(e.Control)
			pt := fn(e.Point)
			result.QuadraticTo(ctrl.X, ctrl.Y, pt.X, pt.Y)
		case CubicTo:
			c1 := fn(e.Control1)
			c2 := fn(e.Control2)
			pt := fn(e.Point)
			result.CubicTo(c1.X, c1.Y, c2.X, c2.Y, pt.X, pt.Y)
		case Close:
			result.Close()
		}
	}
	return result
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	elements := make([]PathElement, len(p.elements))
	copy(elements, p.elements)
	return &Path{
		elements: elements,
		start:    p.start,
		current:  p.current,
	}
}
