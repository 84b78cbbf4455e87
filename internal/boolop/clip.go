package boolop

// ClipRect intersects every contour of the region with the rectangle.
//
// Sutherland-Hodgman clipping against the four half-planes is exact for a
// convex window and keeps the winding of every point inside the window, so
// the clipped region keeps its fill rule. Contours entirely outside the
// window are dropped. Degenerate edges along the window border may remain;
// they enclose no area.
func ClipRect(reg Region, clip Rect) Region {
	out := Region{Rule: reg.Rule}
	if clip.Empty() {
		return out
	}
	for _, c := range reg.Contours {
		if len(c) < 3 {
			continue
		}
		b := c.Bounds()
		if !b.Overlaps(clip) {
			continue
		}
		if b.MinX >= clip.MinX && b.MaxX <= clip.MaxX && b.MinY >= clip.MinY && b.MaxY <= clip.MaxY {
			out.Contours = append(out.Contours, append(Contour(nil), c...))
			continue
		}
		clipped := clipContour(c, clip)
		if len(clipped) >= 3 {
			out.Contours = append(out.Contours, clipped)
		}
	}
	return out
}

// boundary is one half-plane of the clip window.
type boundary int

const (
	boundLeft boundary = iota
	boundRight
	boundTop
	boundBottom
)

func clipContour(c Contour, r Rect) Contour {
	pts := c
	for _, b := range [...]boundary{boundLeft, boundRight, boundTop, boundBottom} {
		if len(pts) == 0 {
			return nil
		}
		pts = clipHalfPlane(pts, r, b)
	}
	return pts
}

func clipHalfPlane(in Contour, r Rect, b boundary) Contour {
	out := make(Contour, 0, len(in)+4)
	prev := in[len(in)-1]
	prevIn := isInside(prev, r, b)
	for _, cur := range in {
		curIn := isInside(cur, r, b)
		switch {
		case curIn && prevIn:
			out = append(out, cur)
		case curIn && !prevIn:
			out = append(out, crossing(prev, cur, r, b), cur)
		case !curIn && prevIn:
			out = append(out, crossing(prev, cur, r, b))
		}
		prev, prevIn = cur, curIn
	}
	return out
}

func isInside(p Point, r Rect, b boundary) bool {
	switch b {
	case boundLeft:
		return p.X >= r.MinX
	case boundRight:
		return p.X <= r.MaxX
	case boundTop:
		return p.Y >= r.MinY
	default:
		return p.Y <= r.MaxY
	}
}

// crossing returns the point where segment a-b meets the boundary line.
// The boundary coordinate is assigned exactly so clipped vertices sit on it.
func crossing(a, b Point, r Rect, bd boundary) Point {
	switch bd {
	case boundLeft, boundRight:
		x := r.MinX
		if bd == boundRight {
			x = r.MaxX
		}
		t := (x - a.X) / (b.X - a.X)
		return Point{X: x, Y: a.Y + t*(b.Y-a.Y)}
	default:
		y := r.MinY
		if bd == boundBottom {
			y = r.MaxY
		}
		t := (y - a.Y) / (b.Y - a.Y)
		return Point{X: a.X + t*(b.X-a.X), Y: y}
	}
}
