package styled

import (
	"image/color"

	"github.com/gogpu/underline/canvas"
	"github.com/gogpu/underline/text"
)

// MetricAffecting is implemented by styles that change the font metrics
// of the text they cover (size, typeface, horizontal scale).
type MetricAffecting interface {
	UpdateMeasureState(p *text.Paint)
}

// CharacterStyle is implemented by styles that change how the covered
// text is drawn.
type CharacterStyle interface {
	UpdateDrawState(p *text.Paint)
}

// LeadingMargin is implemented by paragraph styles that indent lines.
type LeadingMargin interface {
	// LeadingMargin returns the indent in pixels for the first lines of
	// the paragraph (first is true) or for the remaining lines.
	LeadingMargin(first bool) int
}

// LeadingMarginLines is a LeadingMargin whose first-line margin covers
// more than one line.
type LeadingMarginLines interface {
	LeadingMargin

	// LeadingMarginLineCount returns how many lines use the first-line margin.
	LeadingMarginLineCount() int
}

// LineBackground is implemented by styles that draw behind whole lines.
// The layout engine calls DrawBackground once per line the style touches,
// before drawing the glyphs of that line.
type LineBackground interface {
	DrawBackground(c canvas.Canvas, p *text.Paint, left, right, top, baseline, bottom int,
		t Sequence, lineStart, lineEnd, lineNum int)
}

// AbsoluteSize sets the text size in pixels.
type AbsoluteSize struct {
	Size float64
}

// UpdateMeasureState sets the paint size.
func (s AbsoluteSize) UpdateMeasureState(p *text.Paint) { p.Size = s.Size }

// UpdateDrawState sets the paint size.
func (s AbsoluteSize) UpdateDrawState(p *text.Paint) { p.Size = s.Size }

// RelativeSize scales the text size.
type RelativeSize struct {
	Proportion float64
}

// UpdateMeasureState multiplies the paint size by Proportion.
func (s RelativeSize) UpdateMeasureState(p *text.Paint) { p.Size *= s.Proportion }

// UpdateDrawState multiplies the paint size by Proportion.
func (s RelativeSize) UpdateDrawState(p *text.Paint) { p.Size *= s.Proportion }

// Typeface switches the font.
type Typeface struct {
	Source *text.FontSource
}

// UpdateMeasureState replaces the paint font.
func (s Typeface) UpdateMeasureState(p *text.Paint) { p.Source = s.Source }

// UpdateDrawState replaces the paint font.
func (s Typeface) UpdateDrawState(p *text.Paint) { p.Source = s.Source }

// ScaleX stretches the text horizontally relative to the current scale.
type ScaleX struct {
	Scale float64
}

// UpdateMeasureState multiplies the paint horizontal scale by Scale.
func (s ScaleX) UpdateMeasureState(p *text.Paint) { p.ScaleX = effectiveScaleX(p) * s.Scale }

// UpdateDrawState multiplies the paint horizontal scale by Scale.
func (s ScaleX) UpdateDrawState(p *text.Paint) { p.ScaleX = effectiveScaleX(p) * s.Scale }

func effectiveScaleX(p *text.Paint) float64 {
	if p.ScaleX == 0 {
		return 1
	}
	return p.ScaleX
}

// ForegroundColor changes the text color.
type ForegroundColor struct {
	Color color.NRGBA
}

// UpdateDrawState sets the paint color.
func (s ForegroundColor) UpdateDrawState(p *text.Paint) { p.Color = s.Color }

// Margin indents the first line of a paragraph by First pixels and the
// other lines by Rest pixels.
type Margin struct {
	First, Rest int
}

// LeadingMargin implements LeadingMargin.
func (m Margin) LeadingMargin(first bool) int {
	if first {
		return m.First
	}
	return m.Rest
}

// MarginLines indents the first Lines lines of a paragraph by First
// pixels and the other lines by Rest pixels.
type MarginLines struct {
	First, Rest int
	Lines       int
}

// LeadingMargin implements LeadingMargin.
func (m MarginLines) LeadingMargin(first bool) int {
	if first {
		return m.First
	}
	return m.Rest
}

// LeadingMarginLineCount implements LeadingMarginLines.
func (m MarginLines) LeadingMarginLineCount() int { return m.Lines }
