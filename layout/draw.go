package layout

import (
	"math"

	"github.com/gogpu/underline"
	"github.com/gogpu/underline/canvas"
	"github.com/gogpu/underline/styled"
	"github.com/gogpu/underline/text"
)

// Draw draws the layout on c with its top left corner at (x, y).
//
// For every line, the LineBackground spans touching the line are called
// first, then the glyphs are filled segment by segment with the paint
// produced by the character styles covering each segment.
func (l *Layout) Draw(c canvas.Canvas, x, y int) {
	left, right := x, x+l.width
	for _, ln := range l.lines {
		top := y + int(math.Round(ln.Top))
		baseline := y + int(math.Round(ln.Baseline))
		bottom := y + int(math.Round(ln.Bottom))

		if l.spanned != nil {
			for _, sp := range styled.Find[styled.LineBackground](l.spanned, ln.Start, ln.End) {
				sp.Style.DrawBackground(c, l.paint, left, right, top, baseline, bottom, l.text, ln.Start, ln.End, ln.Num)
			}
		}
		l.drawLine(c, ln, left, right, baseline)
	}
}

// drawLine fills the glyphs of ln on the baseline.
func (l *Layout) drawLine(c canvas.Canvas, ln Line, left, right, baseline int) {
	s := l.text.String()
	lineLeft := left + l.leadingMargin(ln.Start, ln.End, ln.Num)
	lineLeft += styled.AlignmentOffset(l.paint, lineLeft, right, s, ln.Start, ln.End)

	pen := float64(lineLeft)
	for cur := ln.Start; cur < ln.End; {
		next := ln.End
		p := &l.scratch
		p.Set(l.paint)
		if l.spanned != nil {
			next = l.spanned.NextTransition(cur, ln.End, isStyle)
			for _, sp := range l.spanned.Spans(cur, next) {
				switch st := sp.Style.(type) {
				case styled.CharacterStyle:
					st.UpdateDrawState(p)
				case styled.MetricAffecting:
					st.UpdateMeasureState(p)
				}
			}
		}

		path := p.TextPath(s, cur, next, pen, float64(baseline))
		if !path.IsEmpty() {
			c.DrawPath(path, p)
		}
		w := p.MeasureText(s, cur, next)
		if p.UnderlineText {
			drawFlatUnderline(c, p, pen, pen+w, float64(baseline))
		}
		pen += w
		cur = next
	}
}

// drawFlatUnderline draws a plain underline through the descenders.
func drawFlatUnderline(c canvas.Canvas, p *text.Paint, left, right, baseline float64) {
	r := p.UnderlineMetrics().UnderlineRect(left, right)
	if r.Empty() {
		return
	}
	path := underline.NewPath()
	path.AddRect(r, underline.Clockwise)
	path.Offset(0, baseline)
	c.DrawPath(path, p)
}

func isStyle(style any) bool {
	switch style.(type) {
	case styled.CharacterStyle, styled.MetricAffecting:
		return true
	}
	return false
}
