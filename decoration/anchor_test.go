package decoration

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/underline"
	"github.com/gogpu/underline/canvas"
	"github.com/gogpu/underline/styled"
)

const (
	testSize     = 36
	testLeft     = 10
	testBaseline = 40
)

// drawWord draws an anchor under the whole of word and returns the recorder.
func drawWord(t *testing.T, a *Anchor, word string, size float64) (*canvas.Recorder, image.Rectangle) {
	t.Helper()
	p := testPaint(t, size)
	txt := styled.New(word)
	w := p.MeasureText(word, 0, len(word))
	bounds := image.Rect(testLeft, 0, testLeft+int(w), 60)

	rec := canvas.NewRecorder()
	a.DrawSnippetBackground(rec, p, txt, 0, len(word), bounds, testBaseline)
	return rec, bounds
}

func TestNewAnchor(t *testing.T) {
	a := NewAnchor("https://go.dev")
	assert.Equal(t, "https://go.dev", a.URL)
	assert.Equal(t, underline.DefaultParams(), a.Params)
	assert.Equal(t, DemoElegantUnderline, a.State)
	assert.False(t, a.Legacy)

	params := underline.DefaultParams()
	params.Alpha = 200
	b := NewAnchor("", WithParams(params), WithLegacy(true), WithDemoState(DemoWideUnderline))
	assert.Equal(t, uint8(200), b.Params.Alpha)
	assert.True(t, b.Legacy)
	assert.Equal(t, DemoWideUnderline, b.State)
}

func TestAnchorNoDescendersIsSolid(t *testing.T) {
	rec, bounds := drawWord(t, NewAnchor(""), "abc", testSize)
	require.Equal(t, 1, rec.Len())

	op := rec.Ops[0]
	want := underline.R(float64(bounds.Min.X), testBaseline+3, float64(bounds.Max.X), testBaseline+5)
	box := op.Path.BoundingBox()
	assert.InDelta(t, want.Min.X, box.Min.X, 1e-9)
	assert.InDelta(t, want.Min.Y, box.Min.Y, 1e-9)
	assert.InDelta(t, want.Max.X, box.Max.X, 1e-9)
	assert.InDelta(t, want.Max.Y, box.Max.Y, 1e-9)
	assert.InDelta(t, want.Width()*2, op.Path.Area(), 1e-9, "no cut-outs")

	assert.Equal(t, uint8(128), op.Paint.Alpha())
	assert.True(t, op.Paint.AntiAlias)
}

func TestAnchorDescendersLeaveGaps(t *testing.T) {
	rec, bounds := drawWord(t, NewAnchor(""), "jpg", testSize)
	require.Equal(t, 1, rec.Len())
	result := rec.Ops[0].Path

	runs := gaps(result, testBaseline+4, float64(bounds.Min.X), float64(bounds.Max.X))
	require.Len(t, runs, 3, "one gap beneath each of j, p and g")
	for _, r := range runs {
		assert.GreaterOrEqual(t, r[1]-r[0], 4.0, "gap %v", r)
	}

	full := float64(bounds.Dx()) * 2
	assert.Less(t, result.Area(), full)
	assert.Positive(t, result.Area())
}

func TestAnchorKeepsClearance(t *testing.T) {
	p := testPaint(t, testSize)
	rec, bounds := drawWord(t, NewAnchor(""), "jpg", testSize)
	require.Equal(t, 1, rec.Len())
	result := rec.Ops[0].Path
	ink := p.TextPath("jpg", 0, 3, testLeft, testBaseline)

	// The halo radius is half the clearance: 2 px at 36 px.
	const radius = 2 - 0.05
	checked := 0
	for y := testBaseline + 3.125; y < testBaseline+5; y += 0.25 {
		for x := float64(bounds.Min.X) + 0.125; x < float64(bounds.Max.X); x += 0.25 {
			pt := underline.Pt(x, y)
			if !result.Contains(pt, underline.FillRuleNonZero) {
				continue
			}
			checked++
			assert.True(t, clearOf(ink, pt, radius), "point %v too close to ink", pt)
		}
	}
	assert.Positive(t, checked)
}

func TestAnchorStaysInsideUnderline(t *testing.T) {
	rec, bounds := drawWord(t, NewAnchor(""), "jpg", testSize)
	require.Equal(t, 1, rec.Len())

	box := rec.Ops[0].Path.BoundingBox()
	assert.GreaterOrEqual(t, box.Min.X, float64(bounds.Min.X)-1e-9)
	assert.LessOrEqual(t, box.Max.X, float64(bounds.Max.X)+1e-9)
	assert.GreaterOrEqual(t, box.Min.Y, testBaseline+3-1e-9)
	assert.LessOrEqual(t, box.Max.Y, testBaseline+5+1e-9)
}

func TestAnchorInheritsColor(t *testing.T) {
	p := testPaint(t, testSize)
	p.Color = color.NRGBA{R: 0x20, G: 0x40, B: 0xc0, A: 0xff}
	p.AntiAlias = false
	txt := styled.New("abc")

	rec := canvas.NewRecorder()
	NewAnchor("").DrawSnippetBackground(rec, p, txt, 0, 3, image.Rect(0, 0, 50, 50), 40)
	require.Equal(t, 1, rec.Len())

	assert.Equal(t, color.NRGBA{R: 0x20, G: 0x40, B: 0xc0, A: 128}, rec.Ops[0].Paint.Color)
	assert.True(t, rec.Ops[0].Paint.AntiAlias)
	assert.Equal(t, uint8(0xff), p.Alpha(), "the base paint is not modified")
	assert.False(t, p.AntiAlias)
}

func TestAnchorDemoStates(t *testing.T) {
	tests := []struct {
		state     DemoState
		ops       int
		color     color.NRGBA
		minY      float64
		maxY      float64
		checkBand bool
	}{
		{state: DemoNone, ops: 0},
		{state: DemoSimpleUnderline, ops: 1, color: color.NRGBA{A: 128}, minY: testBaseline + 3, maxY: testBaseline + 5},
		{state: DemoWideUnderline, ops: 1, color: DebugColor, minY: testBaseline - 1, maxY: testBaseline + 9},
		{state: DemoIntersections, ops: 1, color: DebugColor},
		{state: DemoElegantUnderline, ops: 1, color: color.NRGBA{A: 128}, minY: testBaseline + 3, maxY: testBaseline + 5},
	}
	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			rec, _ := drawWord(t, NewAnchor("", WithDemoState(tt.state)), "jpg", testSize)
			require.Equal(t, tt.ops, rec.Len())
			if tt.ops == 0 {
				return
			}
			op := rec.Ops[0]
			assert.Equal(t, tt.color, op.Paint.Color)
			if tt.maxY > 0 {
				box := op.Path.BoundingBox()
				assert.InDelta(t, tt.minY, box.Min.Y, 1e-9)
				assert.InDelta(t, tt.maxY, box.Max.Y, 1e-9)
			}
		})
	}
}

func TestAnchorIntersectionsAboveUnderline(t *testing.T) {
	// The bowls of a, b and c dip into the band without reaching the underline.
	rec, _ := drawWord(t, NewAnchor("", WithDemoState(DemoIntersections)), "abc", testSize)
	require.Equal(t, 1, rec.Len())
	assert.Less(t, rec.Ops[0].Path.BoundingBox().Max.Y, float64(testBaseline+3))

	rec, _ = drawWord(t, NewAnchor("", WithDemoState(DemoIntersections)), "''", testSize)
	assert.Zero(t, rec.Len(), "apostrophes never reach the band")
}

func TestAnchorEmptySnippet(t *testing.T) {
	p := testPaint(t, testSize)
	txt := styled.New("jpg")
	rec := canvas.NewRecorder()
	a := NewAnchor("")

	a.DrawSnippetBackground(rec, p, txt, 1, 1, image.Rect(10, 0, 40, 50), 40)
	a.DrawSnippetBackground(rec, p, txt, 0, 3, image.Rect(10, 0, 10, 50), 40)
	assert.Zero(t, rec.Len())
}

func TestAnchorSmallTextIsUncut(t *testing.T) {
	rec, bounds := drawWord(t, NewAnchor(""), "jpg", 7)
	require.Equal(t, 1, rec.Len())

	m := underline.DefaultParams().Scale(7)
	want := float64(bounds.Dx()) * m.StrokeWidth
	assert.InDelta(t, want, rec.Ops[0].Path.Area(), 1e-9)
}

func TestAnchorLegacy(t *testing.T) {
	a := NewAnchor("", WithLegacy(true))
	rec, _ := drawWord(t, a, "jpg", testSize)
	assert.Zero(t, rec.Len())

	p := testPaint(t, testSize)
	a.UpdateDrawState(p)
	assert.True(t, p.UnderlineText)
	require.NotNil(t, p.UnderlineParams)
	assert.Equal(t, a.Params, *p.UnderlineParams)

	q := testPaint(t, testSize)
	NewAnchor("").UpdateDrawState(q)
	assert.False(t, q.UnderlineText)
	assert.Nil(t, q.UnderlineParams)
}

func TestAnchorLegacyParamsAreCopied(t *testing.T) {
	params := underline.DefaultParams()
	params.UnderlineOffsetRatio = 0.3
	a := NewAnchor("", WithParams(params), WithLegacy(true))

	p := testPaint(t, testSize)
	a.UpdateDrawState(p)
	a.Params.UnderlineOffsetRatio = 0.5
	assert.InDelta(t, 0.3, p.UnderlineParams.UnderlineOffsetRatio, 0)
}

func TestAnchorClick(t *testing.T) {
	a := NewAnchor("")
	assert.Equal(t, DemoNone, a.Click())
	assert.Equal(t, DemoSimpleUnderline, a.Click())
	assert.Equal(t, DemoSimpleUnderline, a.State)
}
