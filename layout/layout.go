// Package layout breaks styled text into lines and draws it.
//
// It is a small static layout engine: greedy word wrapping, hard breaks at
// '\n', leading margins, left, center and right alignment, and a line
// background callback for every line, which is where the underline
// decorations hook in. Text is always laid out left to right.
package layout

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/bidi"

	"github.com/gogpu/underline"
	"github.com/gogpu/underline/styled"
	"github.com/gogpu/underline/text"
)

// Line is one laid out line.
type Line struct {
	// Start and End delimit the text of the line. Trailing spaces and the
	// paragraph separator are not part of it.
	Start, End int

	// Num is the number of the line within its paragraph.
	Num int

	// Top, Baseline and Bottom are vertical positions relative to the top
	// of the layout.
	Top, Baseline, Bottom float64

	// Width is the advance width of the line text.
	Width float64
}

// Height returns the height of the line.
func (l Line) Height() float64 {
	return l.Bottom - l.Top
}

// Layout is styled text broken into lines of a fixed width.
//
// Layout is not safe for concurrent use.
type Layout struct {
	text    styled.Sequence
	spanned styled.Spanned // nil for text without spans
	paint   *text.Paint
	width   int
	opts    options

	lines   []Line
	height  float64
	scratch text.Paint
}

// New lays t out in lines at most width pixels wide, styled with the base
// paint p. Spans of t that implement the styled capability interfaces
// change sizes, fonts, colors and margins.
func New(t styled.Sequence, p *text.Paint, width int, opts ...Option) *Layout {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	l := &Layout{
		text:  t,
		paint: p,
		width: max(width, 0),
		opts:  o,
	}
	l.spanned, _ = t.(styled.Spanned)
	l.breakLines()
	return l
}

// Lines returns the laid out lines.
func (l *Layout) Lines() []Line {
	return l.lines
}

// Width returns the layout width in pixels.
func (l *Layout) Width() int {
	return l.width
}

// Height returns the total height of all lines.
func (l *Layout) Height() float64 {
	return l.height
}

// Paint returns the base paint.
func (l *Layout) Paint() *text.Paint {
	return l.paint
}

// breakLines splits the text into paragraphs and each paragraph into lines.
func (l *Layout) breakLines() {
	s := l.text.String()
	var y float64
	start := 0
	for i, para := range strings.Split(s, "\n") {
		end := start + len(para)
		if l.opts.checkBidi && hasRTL(para) {
			underline.Logger().Warn("layout: right-to-left text is laid out left to right", "paragraph", i)
		}
		for num, r := range l.wrapParagraph(s, start, end) {
			line := l.measureLine(r[0], r[1], num, y)
			l.lines = append(l.lines, line)
			y = line.Bottom
		}
		start = end + 1
	}
	l.height = y
}

// wrapParagraph returns the line ranges of the paragraph [start, end).
func (l *Layout) wrapParagraph(s string, start, end int) [][2]int {
	if start == end {
		return [][2]int{{start, end}}
	}

	var lines [][2]int
	lineStart := start
	for num := 0; lineStart < end; num++ {
		avail := float64(l.width - l.leadingMargin(lineStart, end, num))
		lineEnd := l.findLineEnd(s, lineStart, end, avail)
		lines = append(lines, [2]int{lineStart, lineEnd})

		lineStart = lineEnd
		for lineStart < end {
			r, size := utf8.DecodeRuneInString(s[lineStart:])
			if !unicode.IsSpace(r) {
				break
			}
			lineStart += size
		}
	}
	return lines
}

// findLineEnd returns the end of the longest prefix starting at lineStart
// that ends at a break opportunity and fits in avail, without its trailing
// spaces. Lines break after spaces, after hyphens and around ideographs. A
// first word wider than avail is broken between runes, keeping at least one
// rune on the line.
func (l *Layout) findLineEnd(s string, lineStart, end int, avail float64) int {
	lastFit := -1
	prev, size := utf8.DecodeRuneInString(s[lineStart:])
	for i := lineStart + size; i <= end; i += size {
		var r rune
		if i < end {
			r, size = utf8.DecodeRuneInString(s[i:])
		}
		if i == end || canBreakBefore(prev, r) {
			if e := trimSpace(s, lineStart, i); e > lineStart && e > lastFit {
				if l.measure(lineStart, e) > avail {
					break
				}
				lastFit = e
			}
		}
		if i == end {
			break
		}
		prev = r
	}
	if lastFit > lineStart {
		return lastFit
	}
	return l.breakWord(s, lineStart, end, avail)
}

// trimSpace returns i moved back over the spaces that end s[lineStart:i].
func trimSpace(s string, lineStart, i int) int {
	for i > lineStart {
		r, size := utf8.DecodeLastRuneInString(s[lineStart:i])
		if !unicode.IsSpace(r) {
			break
		}
		i -= size
	}
	return i
}

// breakWord returns the end of the longest prefix of [lineStart, end) that
// fits in avail, at least one rune long.
func (l *Layout) breakWord(s string, lineStart, end int, avail float64) int {
	_, size := utf8.DecodeRuneInString(s[lineStart:])
	fit := lineStart + size
	for i := fit; i < end; {
		_, size := utf8.DecodeRuneInString(s[i:])
		if l.measure(lineStart, i+size) > avail {
			break
		}
		i += size
		fit = i
	}
	return fit
}

// measure returns the styled width of [start, end).
func (l *Layout) measure(start, end int) float64 {
	if l.spanned == nil {
		return l.paint.MeasureText(l.text.String(), start, end)
	}
	return styled.MeasureWidth(l.paint, l.spanned, start, end, &l.scratch)
}

func (l *Layout) leadingMargin(lineStart, lineEnd, lineNum int) int {
	if l.spanned == nil {
		return 0
	}
	return styled.ParagraphLeadingMargin(l.spanned, lineStart, lineEnd, lineNum)
}

// measureLine computes the vertical metrics of the line [start, end) whose
// top is at y. The tallest style on the line sets its ascent and descent.
func (l *Layout) measureLine(start, end, num int, y float64) Line {
	m := l.paint.Metrics()
	ascent, descent, gap := m.Ascent, m.Descent, m.LineGap
	if l.spanned != nil {
		for cur := start; cur < end; {
			next := l.spanned.NextTransition(cur, end, styled.Is[styled.MetricAffecting])
			l.scratch.Set(l.paint)
			for _, sp := range styled.Find[styled.MetricAffecting](l.spanned, cur, next) {
				sp.Style.UpdateMeasureState(&l.scratch)
			}
			sm := l.scratch.Metrics()
			ascent = math.Max(ascent, sm.Ascent)
			descent = math.Max(descent, sm.Descent)
			gap = math.Max(gap, sm.LineGap)
			cur = next
		}
	}

	height := (ascent + descent + gap) * l.opts.lineSpacing
	return Line{
		Start:    start,
		End:      end,
		Num:      num,
		Top:      y,
		Baseline: y + ascent,
		Bottom:   y + height,
		Width:    l.measure(start, end),
	}
}

// hasRTL reports whether the paragraph contains right-to-left runs.
func hasRTL(para string) bool {
	if para == "" {
		return false
	}
	p := bidi.Paragraph{}
	if _, err := p.SetString(para, bidi.DefaultDirection(bidi.LeftToRight)); err != nil {
		return false
	}
	ordering, err := p.Order()
	if err != nil {
		return false
	}
	for i := 0; i < ordering.NumRuns(); i++ {
		run := ordering.Run(i)
		if run.Direction() == bidi.RightToLeft {
			return true
		}
	}
	return false
}
