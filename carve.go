package underline

import (
	"fmt"
	"math"

	"github.com/gogpu/underline/internal/boolop"
)

// Carving is the outcome of Carve. All paths are owned by the Carving and
// never alias each other.
type Carving struct {
	// Underline is the uncut underline rectangle.
	Underline *Path
	// Band is the clearance band rectangle.
	Band *Path
	// Halo is the part of the outline inside the band grown by the halo
	// radius. It is only filled when Carve runs WithHalo and something
	// crosses the band.
	Halo *Path
	// Result is the underline with the halo removed. It is never nil.
	Result *Path
	// Err is the failure that made Carve fall back to the uncut underline.
	Err error
}

// Offset translates every path of the carving.
func (c *Carving) Offset(dx, dy float64) {
	for _, p := range []*Path{c.Underline, c.Band, c.Halo, c.Result} {
		if p != nil {
			p.Offset(dx, dy)
		}
	}
}

// Carve removes from the underline rectangle every point closer than
// radius to the parts of outline that fall inside band.
//
// The outline is flattened, clipped to the band and grown by radius plus the
// flattening tolerance, then subtracted from the underline. Every point of
// Result is therefore at least radius away from the ink of outline that
// lies within band, and Result never leaves the underline rectangle.
//
// When nothing crosses the band, or the grown region does not reach the
// underline, Result is a copy of Underline. A zero-area underline gives an
// empty Result. Carve never panics: when the boolean operation fails it
// logs a warning, records the error in Err and returns the uncut underline.
func Carve(outline *Path, underline, band Rect, radius float64, opts ...CarveOption) Carving {
	o := defaultCarveOptions()
	for _, opt := range opts {
		opt(&o)
	}

	c := Carving{Underline: NewPath(), Band: NewPath(), Halo: NewPath()}
	if underline.Empty() {
		c.Result = NewPath()
		return c
	}
	c.Underline.AddRect(underline, Clockwise)
	if !band.Empty() {
		c.Band.AddRect(band, Clockwise)
	}
	c.Result = c.Underline.Clone()

	if outline.IsEmpty() || band.Empty() {
		return c
	}
	if !outline.IsFinite() || !c.Underline.IsFinite() || !c.Band.IsFinite() || math.IsNaN(radius) || math.IsInf(radius, 0) {
		return c.fallback(fmt.Errorf("carve: %w", boolop.ErrNonFinite))
	}
	if !outline.BoundingBox().Overlaps(band) {
		return c
	}

	hits := boolop.ClipRect(boolop.Region{
		Contours: toContours(outline.Contours(o.tolerance)),
		Rule:     toRule(o.fillRule),
	}, toBoolRect(band))
	if len(hits.Contours) == 0 {
		return c
	}

	halo := boolop.Dilate(hits, math.Max(radius, 0)+o.tolerance, o.diskSegments)
	if o.halo {
		merged, err := boolop.Union(halo)
		if err != nil {
			return c.fallback(fmt.Errorf("carve halo: %w", err))
		}
		c.Halo = fromContours(merged)
	}

	hb, ok := halo.Bounds()
	if !ok || !toBoolRect(underline).Overlaps(hb) {
		return c
	}

	u := boolop.Shape{{Contours: []boolop.Contour{rectContour(underline)}, Rule: boolop.NonZero}}
	carved, err := boolop.Difference(u, halo)
	if err != nil {
		return c.fallback(fmt.Errorf("carve: %w", err))
	}
	c.Result = fromContours(carved)
	return c
}

func (c Carving) fallback(err error) Carving {
	Logger().Warn("underline: carving failed, drawing uncut underline", "err", err)
	c.Err = err
	c.Result = c.Underline.Clone()
	return c
}

func toRule(r FillRule) boolop.FillRule {
	if r == FillRuleEvenOdd {
		return boolop.EvenOdd
	}
	return boolop.NonZero
}

func toBoolRect(r Rect) boolop.Rect {
	return boolop.Rect{MinX: r.Min.X, MinY: r.Min.Y, MaxX: r.Max.X, MaxY: r.Max.Y}
}

func rectContour(r Rect) boolop.Contour {
	return boolop.Contour{
		{X: r.Min.X, Y: r.Min.Y},
		{X: r.Max.X, Y: r.Min.Y},
		{X: r.Max.X, Y: r.Max.Y},
		{X: r.Min.X, Y: r.Max.Y},
	}
}

func toContours(pts [][]Point) []boolop.Contour {
	out := make([]boolop.Contour, 0, len(pts))
	for _, c := range pts {
		if len(c) < 3 {
			continue
		}
		bc := make(boolop.Contour, len(c))
		for i, p := range c {
			bc[i] = boolop.Point{X: p.X, Y: p.Y}
		}
		out = append(out, bc)
	}
	return out
}

func fromContours(cs []boolop.Contour) *Path {
	p := NewPath()
	for _, c := range cs {
		if len(c) < 3 {
			continue
		}
		p.MoveTo(c[0].X, c[0].Y)
		for _, pt := range c[1:] {
			p.LineTo(pt.X, pt.Y)
		}
		p.Close()
	}
	return p
}
