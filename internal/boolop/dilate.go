package boolop

import "math"

// MinDiskSegments is the coarsest polygon accepted for the dilation disk.
const MinDiskSegments = 8

// Dilate returns the Minkowski sum of the region with a disk of the given
// radius: the region itself, a quad around every boundary edge and a
// polygonal disk at every vertex. The disks circumscribe the true circle, so
// the result always covers every point within radius of the region.
//
// Quads and disks are all wound clockwise and collected in one non-zero
// region, which makes their union exact without merging them.
func Dilate(reg Region, radius float64, segments int) Shape {
	if radius <= 0 {
		return Shape{reg}
	}
	if segments < MinDiskSegments {
		segments = MinDiskSegments
	}

	disk := unitDisk(segments, radius/math.Cos(math.Pi/float64(segments)))
	halo := Region{Rule: NonZero}
	for _, c := range reg.Contours {
		for i := range c {
			p, q := c[i], c[(i+1)%len(c)]
			halo.Contours = append(halo.Contours, translate(disk, p))
			if quad := edgeQuad(p, q, radius); quad != nil {
				halo.Contours = append(halo.Contours, quad)
			}
		}
	}
	return Shape{reg, halo}
}

// unitDisk returns a regular polygon with the given vertex radius centred on
// the origin, wound clockwise.
func unitDisk(segments int, r float64) Contour {
	c := make(Contour, segments)
	for i := range c {
		a := 2 * math.Pi * float64(i) / float64(segments)
		c[i] = Point{X: r * math.Cos(a), Y: r * math.Sin(a)}
	}
	return c
}

func translate(c Contour, d Point) Contour {
	out := make(Contour, len(c))
	for i, p := range c {
		out[i] = Point{X: p.X + d.X, Y: p.Y + d.Y}
	}
	return out
}

// edgeQuad returns the rectangle of half-width r around segment p-q, wound
// clockwise, or nil for a zero-length segment.
func edgeQuad(p, q Point, r float64) Contour {
	dx, dy := q.X-p.X, q.Y-p.Y
	l := math.Hypot(dx, dy)
	if l == 0 {
		return nil
	}
	nx, ny := -dy/l*r, dx/l*r
	quad := Contour{
		{X: p.X + nx, Y: p.Y + ny},
		{X: q.X + nx, Y: q.Y + ny},
		{X: q.X - nx, Y: q.Y - ny},
		{X: p.X - nx, Y: p.Y - ny},
	}
	if quad.Area() < 0 {
		quad[1], quad[3] = quad[3], quad[1]
	}
	return quad
}
