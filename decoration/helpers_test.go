package decoration

import (
	"image"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/underline"
	"github.com/gogpu/underline/canvas"
	"github.com/gogpu/underline/styled"
	"github.com/gogpu/underline/text"
)

func testPaint(t *testing.T, size float64) *text.Paint {
	t.Helper()
	src, err := text.NewFontSource(goregular.TTF)
	require.NoError(t, err)
	return text.NewPaint(src, size)
}

// snippetCall is one recorded DrawSnippetBackground call.
type snippetCall struct {
	start, end int
	bounds     image.Rectangle
	baseline   int
}

// snippetRecorder is a SnippetBackground that records where it was asked to draw.
type snippetRecorder struct {
	calls []snippetCall
}

func (p *snippetRecorder) DrawSnippetBackground(_ canvas.Canvas, _ *text.Paint, _ styled.Spanned,
	start, end int, bounds image.Rectangle, baseline int,
) {
	p.calls = append(p.calls, snippetCall{start: start, end: end, bounds: bounds, baseline: baseline})
}

// gaps returns the runs of the horizontal line y in [x0, x1] that path does
// not cover.
func gaps(path *underline.Path, y, x0, x1 float64) [][2]float64 {
	const step = 0.05
	var runs [][2]float64
	open := false
	var start float64
	for x := x0 + step/2; x < x1; x += step {
		in := path.Contains(underline.Pt(x, y), underline.FillRuleNonZero)
		switch {
		case !in && !open:
			start, open = x, true
		case in && open:
			runs = append(runs, [2]float64{start, x})
			open = false
		}
	}
	if open {
		runs = append(runs, [2]float64{start, x1})
	}
	return runs
}

// clearOf reports whether no point of ink lies within radius of pt, probing
// rings around pt.
func clearOf(ink *underline.Path, pt underline.Point, radius float64) bool {
	if ink.Contains(pt, underline.FillRuleNonZero) {
		return false
	}
	for _, r := range []float64{radius / 2, radius} {
		for i := range 16 {
			a := 2 * math.Pi * float64(i) / 16
			q := pt.Add(underline.Pt(r*math.Cos(a), r*math.Sin(a)))
			if ink.Contains(q, underline.FillRuleNonZero) {
				return false
			}
		}
	}
	return true
}
