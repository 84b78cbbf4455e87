package styled

import (
	"math"

	"github.com/gogpu/underline/text"
)

// MeasureWidth returns the advance width of [start, end) of t drawn with
// base, honoring every MetricAffecting span on the way.
//
// The range is walked in segments delimited by metric-affecting span
// boundaries. Each segment is measured with scratch reset to base and
// updated by the spans covering it, in span order. scratch is overwritten;
// a nil scratch allocates one.
func MeasureWidth(base *text.Paint, t Spanned, start, end int, scratch *text.Paint) float64 {
	if scratch == nil {
		scratch = new(text.Paint)
	}
	s := t.String()

	var width float64
	for cur := start; cur < end; {
		next := t.NextTransition(cur, end, Is[MetricAffecting])
		scratch.Set(base)
		for _, sp := range Find[MetricAffecting](t, cur, next) {
			sp.Style.UpdateMeasureState(scratch)
		}
		width += scratch.MeasureText(s, cur, next)
		cur = next
	}
	return width
}

// ParagraphLeadingMargin returns the total leading margin of line lineNum
// spanning [lineStart, lineEnd).
//
// The first-line margin applies to line 0 and to every line below the
// largest LeadingMarginLineCount of the LeadingMarginLines spans present.
func ParagraphLeadingMargin(t Spanned, lineStart, lineEnd, lineNum int) int {
	spans := Find[LeadingMargin](t, lineStart, lineEnd)
	if len(spans) == 0 {
		return 0
	}

	first := lineNum == 0
	for _, sp := range spans {
		if ml, ok := sp.Style.(LeadingMarginLines); ok {
			first = first || lineNum < ml.LeadingMarginLineCount()
		}
	}

	margin := 0
	for _, sp := range spans {
		margin += sp.Style.LeadingMargin(first)
	}
	return margin
}

// AlignmentOffset returns how far the line [lineStart, lineEnd) of s is
// shifted right of left by the alignment of p, when the line is laid out
// between left and right. The line is measured with p alone, ignoring spans.
func AlignmentOffset(p *text.Paint, left, right int, s string, lineStart, lineEnd int) int {
	switch p.Align {
	case text.AlignCenter:
		return roundHalfUp((float64(right-left) - p.MeasureText(s, lineStart, lineEnd)) / 2)
	case text.AlignRight:
		return roundHalfUp(float64(right-left) - p.MeasureText(s, lineStart, lineEnd))
	default:
		return 0
	}
}

// roundHalfUp rounds x to the nearest integer, halves toward +Inf.
func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}
