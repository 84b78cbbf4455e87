package text

import (
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/underline"
)

// segmentOp is the type of an outline segment.
type segmentOp uint8

const (
	opMoveTo segmentOp = iota
	opLineTo
	opQuadTo
	opCubicTo
)

// segment is one glyph outline segment in pixels, relative to the glyph
// origin on the baseline, with y growing downward.
type segment struct {
	op  segmentOp
	pts [3]underline.Point
}

// outline returns the scaled outline of a glyph. Glyphs without an outline
// (spaces, missing or color glyphs) return nil.
func (s *FontSource) outline(gid GlyphID, size float64) []segment {
	s.copyCheck()
	return s.outlines.GetOrCreate(outlineKey{gid: gid, size: size}, func() []segment {
		buf := s.bufPool.Get().(*sfnt.Buffer)
		defer s.bufPool.Put(buf)

		segs, err := s.sfnt.LoadGlyph(buf, sfnt.GlyphIndex(gid), floatToFixed(size), nil)
		if err != nil || len(segs) == 0 {
			return nil
		}

		// segs is owned by buf, so it is converted before buf is reused.
		out := make([]segment, 0, len(segs))
		for _, seg := range segs {
			var o segment
			switch seg.Op {
			case sfnt.SegmentOpMoveTo:
				o = segment{op: opMoveTo, pts: [3]underline.Point{toPoint(seg.Args[0])}}
			case sfnt.SegmentOpLineTo:
				o = segment{op: opLineTo, pts: [3]underline.Point{toPoint(seg.Args[0])}}
			case sfnt.SegmentOpQuadTo:
				o = segment{op: opQuadTo, pts: [3]underline.Point{toPoint(seg.Args[0]), toPoint(seg.Args[1])}}
			case sfnt.SegmentOpCubeTo:
				o = segment{op: opCubicTo, pts: [3]underline.Point{toPoint(seg.Args[0]), toPoint(seg.Args[1]), toPoint(seg.Args[2])}}
			default:
				continue
			}
			out = append(out, o)
		}
		return out
	})
}

func toPoint(p fixed.Point26_6) underline.Point {
	return underline.Pt(fixedToFloat(p.X), fixedToFloat(p.Y))
}

// appendOutline appends segs to path, scaling x by scaleX and translating
// the glyph origin to (x, y). Every contour is closed.
func appendOutline(path *underline.Path, segs []segment, x, y, scaleX float64) {
	tr := func(p underline.Point) underline.Point {
		return underline.Pt(x+p.X*scaleX, y+p.Y)
	}
	open := false
	for _, seg := range segs {
		switch seg.op {
		case opMoveTo:
			if open {
				path.Close()
			}
			p := tr(seg.pts[0])
			path.MoveTo(p.X, p.Y)
			open = true
		case opLineTo:
			p := tr(seg.pts[0])
			path.LineTo(p.X, p.Y)
		case opQuadTo:
			c, p := tr(seg.pts[0]), tr(seg.pts[1])
			path.QuadraticTo(c.X, c.Y, p.X, p.Y)
		case opCubicTo:
			c1, c2, p := tr(seg.pts[0]), tr(seg.pts[1]), tr(seg.pts[2])
			path.CubicTo(c1.X, c1.Y, c2.X, c2.Y, p.X, p.Y)
		}
	}
	if open {
		path.Close()
	}
}
