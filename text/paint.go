package text

import (
	"image/color"

	"github.com/gogpu/underline"
)

// Align is the horizontal alignment of a paragraph's lines.
type Align int

const (
	// AlignLeft aligns lines to the left edge (default).
	AlignLeft Align = iota

	// AlignCenter centers lines between the edges.
	AlignCenter

	// AlignRight aligns lines to the right edge.
	AlignRight
)

// String returns the alignment name.
func (a Align) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "unknown"
	}
}

// Paint holds the style used to measure and draw text: the font, its size
// and horizontal scale, the color and a few drawing flags.
//
// Paint is a plain value. Copy it with Clone or Set before mutating a paint
// that belongs to someone else.
type Paint struct {
	// Source is the font. A nil Source measures every string as zero width.
	Source *FontSource

	// Size is the text size in pixels.
	Size float64

	// ScaleX stretches glyphs horizontally. Zero is treated as 1.
	ScaleX float64

	// Align is the paragraph alignment the paint is laid out with.
	Align Align

	// Color is the fill color.
	Color color.NRGBA

	// AntiAlias enables anti-aliased filling.
	AntiAlias bool

	// UnderlineText asks the layout engine to draw a flat underline
	// beneath the text.
	UnderlineText bool

	// UnderlineParams shapes the flat underline. Nil means
	// underline.DefaultParams.
	UnderlineParams *underline.Params
}

// NewPaint returns an anti-aliased opaque black paint for src at size.
func NewPaint(src *FontSource, size float64) *Paint {
	return &Paint{
		Source:    src,
		Size:      size,
		ScaleX:    1,
		Color:     color.NRGBA{A: 0xff},
		AntiAlias: true,
	}
}

// Clone returns a copy of p.
func (p *Paint) Clone() *Paint {
	c := *p
	return &c
}

// Set copies every attribute of other into p.
func (p *Paint) Set(other *Paint) {
	*p = *other
}

// Alpha returns the color alpha.
func (p *Paint) Alpha() uint8 {
	return p.Color.A
}

// SetAlpha replaces the color alpha and keeps the color channels.
func (p *Paint) SetAlpha(a uint8) {
	p.Color.A = a
}

// UnderlineMetrics returns the flat underline geometry at the paint size.
func (p *Paint) UnderlineMetrics() underline.Metrics {
	params := underline.DefaultParams()
	if p.UnderlineParams != nil {
		params = *p.UnderlineParams
	}
	return params.Scale(p.Size)
}

// Metrics returns the font metrics at the paint size.
func (p *Paint) Metrics() Metrics {
	if p.Source == nil {
		return Metrics{}
	}
	return p.Source.Metrics(p.Size)
}

// MeasureText returns the advance width of s[start:end].
// The range is clamped to s; an empty range measures zero.
func (p *Paint) MeasureText(s string, start, end int) float64 {
	start, end = clampRange(len(s), start, end)
	if p.Source == nil || start >= end {
		return 0
	}
	glyphs := p.Source.Shape([]rune(s[start:end]), p.Size)
	return advance(glyphs) * p.scaleX()
}

// TextPath returns the outlines of the glyphs of s[start:end] with the pen
// starting at (x, y) on the baseline. Coordinates grow downward.
func (p *Paint) TextPath(s string, start, end int, x, y float64) *underline.Path {
	path := underline.NewPath()
	start, end = clampRange(len(s), start, end)
	if p.Source == nil || start >= end {
		return path
	}

	sx := p.scaleX()
	for _, g := range p.Source.Shape([]rune(s[start:end]), p.Size) {
		segs := p.Source.outline(g.ID, p.Size)
		if len(segs) == 0 {
			continue
		}
		appendOutline(path, segs, x+g.X*sx, y+g.Y, sx)
	}
	return path
}

func (p *Paint) scaleX() float64 {
	if p.ScaleX == 0 {
		return 1
	}
	return p.ScaleX
}

func clampRange(n, start, end int) (int, int) {
	start = min(max(start, 0), n)
	end = min(max(end, 0), n)
	return start, end
}
