package boolop

import (
	"math"
	"slices"
	"sort"
)

// Op selects the boolean operation applied by Apply.
type Op int

const (
	// OpUnion keeps points inside either operand.
	OpUnion Op = iota
	// OpIntersect keeps points inside both operands.
	OpIntersect
	// OpDifference keeps points inside the first operand but not the second.
	OpDifference
	// OpXor keeps points inside exactly one operand.
	OpXor
)

// String returns the operation name.
func (op Op) String() string {
	switch op {
	case OpUnion:
		return "union"
	case OpIntersect:
		return "intersect"
	case OpDifference:
		return "difference"
	case OpXor:
		return "xor"
	default:
		return "unknown"
	}
}

func (op Op) keep(inA, inB bool) bool {
	switch op {
	case OpIntersect:
		return inA && inB
	case OpDifference:
		return inA && !inB
	case OpXor:
		return inA != inB
	default:
		return inA || inB
	}
}

// eps is the smallest slab height and trapezoid width that is emitted.
const eps = 1e-9

// Union returns the union of the regions of a.
func Union(a Shape) ([]Contour, error) {
	return Apply(OpUnion, a, nil)
}

// Intersect returns a ∩ b.
func Intersect(a, b Shape) ([]Contour, error) {
	return Apply(OpIntersect, a, b)
}

// Difference returns a \ b.
func Difference(a, b Shape) ([]Contour, error) {
	return Apply(OpDifference, a, b)
}

// Apply computes op(a, b) as a list of clockwise trapezoids that do not
// overlap. Trapezoids stacked on the same pair of edges are merged.
//
// For intersection and difference the result lies inside a, so only the
// bounds of a are swept, and the contours of b are grouped into clusters
// that do not overlap horizontally. Every cluster is swept in its own
// vertical strip, keeping the cost proportional to the parts of b that
// actually reach a. Clusters with many contours, such as a row of
// overlapping descender halos, are cut into narrower strips.
func Apply(op Op, a, b Shape) ([]Contour, error) {
	if !finite(a) || !finite(b) {
		return nil, ErrNonFinite
	}

	ab, okA := a.Bounds()
	bb, okB := b.Bounds()
	switch {
	case !okA && !okB:
		return nil, nil
	case op == OpIntersect && (!okA || !okB):
		return nil, nil
	case op == OpDifference && !okA:
		return nil, nil
	}

	if (op == OpDifference || op == OpIntersect) && okB {
		return applyStrips(op, a, b, ab), nil
	}

	regions := make([]Region, 0, len(a)+len(b))
	regions = append(regions, a...)
	regions = append(regions, b...)
	window := ab
	if !okA {
		window = bb
	} else if okB {
		window = Rect{
			MinX: math.Min(ab.MinX, bb.MinX), MinY: math.Min(ab.MinY, bb.MinY),
			MaxX: math.Max(ab.MaxX, bb.MaxX), MaxY: math.Max(ab.MaxY, bb.MaxY),
		}
	}
	return sweep(regions, len(a), op, window.MinY, window.MaxY), nil
}

// cluster is a group of b contours whose x extents overlap.
type cluster struct {
	minX, maxX float64
	members    []member
}

type member struct {
	region  int
	contour Contour
}

func clusters(b Shape, window Rect) []cluster {
	var ms []member
	var spans []Rect
	for ri, reg := range b {
		for _, c := range reg.Contours {
			if len(c) < 2 {
				continue
			}
			cb := c.Bounds()
			if cb.MaxX <= window.MinX || cb.MinX >= window.MaxX || cb.MaxY <= window.MinY || cb.MinY >= window.MaxY {
				continue
			}
			ms = append(ms, member{region: ri, contour: c})
			spans = append(spans, cb)
		}
	}

	order := make([]int, len(ms))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool { return spans[order[i]].MinX < spans[order[j]].MinX })

	var out []cluster
	for _, i := range order {
		s := spans[i]
		if n := len(out); n > 0 && s.MinX <= out[n-1].maxX {
			out[n-1].maxX = math.Max(out[n-1].maxX, s.MaxX)
			out[n-1].members = append(out[n-1].members, ms[i])
			continue
		}
		out = append(out, cluster{minX: s.MinX, maxX: s.MaxX, members: []member{ms[i]}})
	}
	return out
}

// maxStripMembers is the largest number of b contours swept in one strip.
const maxStripMembers = 48

// split cuts the part of the cluster between x0 and x1 into strips of equal
// width holding about maxStripMembers contours each. Members are clipped to a
// window slightly wider than their strip, which keeps their winding inside
// it.
func (cl *cluster) split(x0, x1 float64, window Rect) []cluster {
	n := (len(cl.members) + maxStripMembers - 1) / maxStripMembers
	if n <= 1 || x1-x0 <= eps {
		return []cluster{{minX: x0, maxX: x1, members: cl.members}}
	}
	w := (x1 - x0) / float64(n)
	pad := math.Max(w, 1)
	out := make([]cluster, 0, n)
	for i := range n {
		lo, hi := x0+float64(i)*w, x0+float64(i+1)*w
		if i == n-1 {
			hi = x1
		}
		clip := Rect{MinX: lo - pad, MinY: window.MinY - pad, MaxX: hi + pad, MaxY: window.MaxY + pad}
		piece := cluster{minX: lo, maxX: hi}
		for _, m := range cl.members {
			b := m.contour.Bounds()
			if b.MaxX <= lo || b.MinX >= hi {
				continue
			}
			if c := clipContour(m.contour, clip); len(c) >= 3 {
				piece.members = append(piece.members, member{region: m.region, contour: c})
			}
		}
		out = append(out, piece)
	}
	return out
}

func applyStrips(op Op, a, b Shape, window Rect) []Contour {
	var out []Contour
	x := window.MinX
	strip := func(x0, x1 float64, cl *cluster) {
		if x1-x0 <= eps {
			return
		}
		clip := Rect{MinX: x0, MinY: window.MinY, MaxX: x1, MaxY: window.MaxY}
		regions := make([]Region, 0, len(a)+len(b))
		for _, reg := range a {
			regions = append(regions, ClipRect(reg, clip))
		}
		if cl == nil {
			if op == OpIntersect {
				return
			}
			out = append(out, sweep(regions, len(a), op, window.MinY, window.MaxY)...)
			return
		}
		for _, reg := range b {
			regions = append(regions, Region{Rule: reg.Rule})
		}
		for _, m := range cl.members {
			r := &regions[len(a)+m.region]
			r.Contours = append(r.Contours, m.contour)
		}
		out = append(out, sweep(regions, len(a), op, window.MinY, window.MaxY)...)
	}

	cls := clusters(b, window)
	for i := range cls {
		cl := &cls[i]
		x0 := math.Max(cl.minX, window.MinX)
		x1 := math.Min(cl.maxX, window.MaxX)
		strip(x, x0, nil)
		for _, piece := range cl.split(math.Max(x, x0), x1, window) {
			strip(piece.minX, piece.maxX, &piece)
		}
		x = math.Max(x, x1)
	}
	strip(x, window.MaxX, nil)
	return out
}

// edge is a non-horizontal polygon edge with y0 < y1.
type edge struct {
	x0, y0, x1, y1 float64
	dir            int
	region         int
}

func (e *edge) xAt(y float64) float64 {
	t := (y - e.y0) / (e.y1 - e.y0)
	if t <= 0 {
		return e.x0
	}
	if t >= 1 {
		return e.x1
	}
	return e.x0 + t*(e.x1-e.x0)
}

// crossY returns the y of a proper crossing between two edges.
func crossY(a, b *edge) (float64, bool) {
	rx, ry := a.x1-a.x0, a.y1-a.y0
	sx, sy := b.x1-b.x0, b.y1-b.y0
	den := rx*sy - ry*sx
	if den == 0 {
		return 0, false
	}
	qx, qy := b.x0-a.x0, b.y0-a.y0
	t := (qx*sy - qy*sx) / den
	u := (qx*ry - qy*rx) / den
	if t <= 0 || t >= 1 || u <= 0 || u >= 1 {
		return 0, false
	}
	return a.y0 + t*ry, true
}

func collectEdges(regions []Region, yMin, yMax float64) []edge {
	var edges []edge
	for ri, reg := range regions {
		for _, c := range reg.Contours {
			for i := range c {
				p, q := c[i], c[(i+1)%len(c)]
				if p.Y == q.Y {
					continue
				}
				e := edge{x0: p.X, y0: p.Y, x1: q.X, y1: q.Y, dir: 1, region: ri}
				if q.Y < p.Y {
					e = edge{x0: q.X, y0: q.Y, x1: p.X, y1: p.Y, dir: -1, region: ri}
				}
				if e.y1 <= yMin || e.y0 >= yMax {
					continue
				}
				edges = append(edges, e)
			}
		}
	}
	return edges
}

// events returns the sorted, distinct y coordinates inside [yMin, yMax]
// where the edge order may change: the window limits, every edge endpoint
// and every crossing.
func events(edges []edge, yMin, yMax float64) []float64 {
	ys := []float64{yMin, yMax}
	for i := range edges {
		if y := edges[i].y0; y > yMin && y < yMax {
			ys = append(ys, y)
		}
		if y := edges[i].y1; y > yMin && y < yMax {
			ys = append(ys, y)
		}
	}

	byX := make([]int, len(edges))
	minX := make([]float64, len(edges))
	maxX := make([]float64, len(edges))
	for i := range edges {
		byX[i] = i
		minX[i] = math.Min(edges[i].x0, edges[i].x1)
		maxX[i] = math.Max(edges[i].x0, edges[i].x1)
	}
	sort.Slice(byX, func(i, j int) bool { return minX[byX[i]] < minX[byX[j]] })
	for i, ei := range byX {
		a := &edges[ei]
		for _, ej := range byX[i+1:] {
			if minX[ej] > maxX[ei] {
				break
			}
			b := &edges[ej]
			if b.y1 <= a.y0 || b.y0 >= a.y1 {
				continue
			}
			if y, ok := crossY(a, b); ok && y > yMin && y < yMax {
				ys = append(ys, y)
			}
		}
	}

	slices.Sort(ys)
	out := ys[:1]
	for _, y := range ys[1:] {
		if y-out[len(out)-1] > eps {
			out = append(out, y)
		}
	}
	return out
}

// trap is an output trapezoid bounded by two edges and two scanlines.
type trap struct {
	top, bottom      float64
	topL, topR       float64
	bottomL, bottomR float64
}

type slabEdge struct {
	id     int
	xa, xb float64
}

func sweep(regions []Region, nA int, op Op, yMin, yMax float64) []Contour {
	edges := collectEdges(regions, yMin, yMax)
	if len(edges) == 0 {
		return nil
	}
	ys := events(edges, yMin, yMax)

	byY := make([]int, len(edges))
	for i := range byY {
		byY[i] = i
	}
	sort.Slice(byY, func(i, j int) bool { return edges[byY[i]].y0 < edges[byY[j]].y0 })

	var traps []trap
	var active []int
	var slab []slabEdge
	next := 0
	winding := make([]int, len(regions))
	open := map[[2]int]int{}

	for k := 0; k+1 < len(ys); k++ {
		ya, yb := ys[k], ys[k+1]

		kept := active[:0]
		for _, id := range active {
			if edges[id].y1 > ya+eps {
				kept = append(kept, id)
			}
		}
		active = kept
		for next < len(byY) && edges[byY[next]].y0 < yb-eps {
			if id := byY[next]; edges[id].y1 > ya+eps {
				active = append(active, id)
			}
			next++
		}
		if len(active) == 0 {
			clear(open)
			continue
		}

		slab = slab[:0]
		for _, id := range active {
			e := &edges[id]
			slab = append(slab, slabEdge{id: id, xa: e.xAt(ya), xb: e.xAt(yb)})
		}
		sort.Slice(slab, func(i, j int) bool {
			mi := slab[i].xa + slab[i].xb
			mj := slab[j].xa + slab[j].xb
			if mi != mj {
				return mi < mj
			}
			return slab[i].id < slab[j].id
		})

		clear(winding)
		merged := make(map[[2]int]int, len(open))
		inside := false
		left := -1
		for i, se := range slab {
			winding[edges[se.id].region] += edges[se.id].dir
			now := op.keep(insideAny(regions, winding, 0, nA), insideAny(regions, winding, nA, len(regions)))
			if now == inside {
				continue
			}
			inside = now
			if now {
				left = i
				continue
			}
			l, r := slab[left], se
			if r.xa-l.xa <= eps && r.xb-l.xb <= eps {
				continue
			}
			key := [2]int{l.id, r.id}
			if idx, ok := open[key]; ok && traps[idx].bottom == ya {
				traps[idx].bottom = yb
				traps[idx].bottomL = l.xb
				traps[idx].bottomR = math.Max(r.xb, l.xb)
				merged[key] = idx
				continue
			}
			traps = append(traps, trap{
				top: ya, bottom: yb,
				topL: l.xa, topR: math.Max(r.xa, l.xa),
				bottomL: l.xb, bottomR: math.Max(r.xb, l.xb),
			})
			merged[key] = len(traps) - 1
		}
		open = merged
	}

	out := make([]Contour, 0, len(traps))
	for _, t := range traps {
		out = append(out, Contour{
			{X: t.topL, Y: t.top},
			{X: t.topR, Y: t.top},
			{X: t.bottomR, Y: t.bottom},
			{X: t.bottomL, Y: t.bottom},
		})
	}
	return out
}

func insideAny(regions []Region, winding []int, from, to int) bool {
	for i := from; i < to; i++ {
		if regions[i].Rule.inside(winding[i]) {
			return true
		}
	}
	return false
}
