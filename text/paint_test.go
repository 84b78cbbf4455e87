package text

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/underline"
)

func TestNewPaint(t *testing.T) {
	src := testSource(t)
	p := NewPaint(src, 24)

	assert.Same(t, src, p.Source)
	assert.InDelta(t, 24.0, p.Size, 0)
	assert.InDelta(t, 1.0, p.ScaleX, 0)
	assert.Equal(t, color.NRGBA{A: 0xff}, p.Color)
	assert.True(t, p.AntiAlias)
	assert.False(t, p.UnderlineText)
	assert.Equal(t, AlignLeft, p.Align)
}

func TestPaintCloneAndSet(t *testing.T) {
	p := NewPaint(testSource(t), 24)
	p.Color = color.NRGBA{R: 10, G: 20, B: 30, A: 255}

	c := p.Clone()
	c.Size = 48
	c.SetAlpha(128)
	assert.InDelta(t, 24.0, p.Size, 0, "clone must not alias the original")
	assert.Equal(t, uint8(255), p.Alpha())
	assert.Equal(t, color.NRGBA{R: 10, G: 20, B: 30, A: 128}, c.Color)

	var scratch Paint
	scratch.Set(c)
	assert.Equal(t, *c, scratch)
}

func TestPaintMeasureText(t *testing.T) {
	p := NewPaint(testSource(t), 36)

	abc := p.MeasureText("abc", 0, 3)
	assert.Positive(t, abc)
	assert.Less(t, p.MeasureText("abc", 0, 1), abc)

	tests := []struct {
		name       string
		start, end int
		want       float64
	}{
		{"empty", 1, 1, 0},
		{"inverted", 2, 1, 0},
		{"clamped", -5, 10, abc},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, p.MeasureText("abc", tt.start, tt.end), 1e-9)
		})
	}
}

func TestPaintMeasureTextScaleX(t *testing.T) {
	p := NewPaint(testSource(t), 36)
	base := p.MeasureText("Hello", 0, 5)

	p.ScaleX = 2
	assert.InDelta(t, 2*base, p.MeasureText("Hello", 0, 5), 1e-9)

	p.ScaleX = 0
	assert.InDelta(t, base, p.MeasureText("Hello", 0, 5), 1e-9)
}

func TestPaintMeasureTextMultiByte(t *testing.T) {
	p := NewPaint(testSource(t), 36)
	s := "héllo"

	assert.InDelta(t, p.MeasureText("hé", 0, len("hé")), p.MeasureText(s, 0, len("hé")), 1e-9)
	assert.Greater(t, p.MeasureText(s, 0, len(s)), p.MeasureText(s, 0, len("hé")))
}

func TestPaintNilSource(t *testing.T) {
	p := &Paint{Size: 36}
	assert.Zero(t, p.MeasureText("abc", 0, 3))
	assert.True(t, p.TextPath("abc", 0, 3, 0, 0).IsEmpty())
	assert.Equal(t, Metrics{}, p.Metrics())
}

func TestPaintTextPathDescenders(t *testing.T) {
	p := NewPaint(testSource(t), 36)

	flat := p.TextPath("abc", 0, 3, 0, 0).BoundingBox()
	assert.Less(t, flat.Max.Y, 1.0, "abc has no descenders")
	assert.Less(t, flat.Min.Y, -15.0, "ascender of b rises above the baseline")

	deep := p.TextPath("jpg", 0, 3, 0, 0).BoundingBox()
	assert.Greater(t, deep.Max.Y, 5.0, "j, p and g descend below the baseline")
}

func TestPaintTextPathOrigin(t *testing.T) {
	p := NewPaint(testSource(t), 36)

	base := p.TextPath("jpg", 0, 3, 0, 0).BoundingBox()
	moved := p.TextPath("jpg", 0, 3, 10, 20).BoundingBox()
	assert.InDelta(t, base.Min.X+10, moved.Min.X, 1e-9)
	assert.InDelta(t, base.Min.Y+20, moved.Min.Y, 1e-9)
	assert.InDelta(t, base.Max.X+10, moved.Max.X, 1e-9)
	assert.InDelta(t, base.Max.Y+20, moved.Max.Y, 1e-9)
}

func TestPaintTextPathScaleX(t *testing.T) {
	p := NewPaint(testSource(t), 36)
	base := p.TextPath("Hello", 0, 5, 0, 0).BoundingBox()

	p.ScaleX = 2
	wide := p.TextPath("Hello", 0, 5, 0, 0).BoundingBox()
	assert.InDelta(t, 2*base.Min.X, wide.Min.X, 1e-9)
	assert.InDelta(t, 2*base.Max.X, wide.Max.X, 1e-9)
	assert.InDelta(t, base.Max.Y, wide.Max.Y, 1e-9)
}

func TestPaintTextPathSpaceOnly(t *testing.T) {
	p := NewPaint(testSource(t), 36)
	assert.True(t, p.TextPath("   ", 0, 3, 0, 0).IsEmpty())
}

func TestPaintTextPathIsClosedAndFilled(t *testing.T) {
	p := NewPaint(testSource(t), 36)
	path := p.TextPath("o", 0, 1, 0, 0)
	require.False(t, path.IsEmpty())

	box := path.BoundingBox()
	center := box.Min.Add(box.Max).Mul(0.5)
	assert.False(t, path.Contains(center, underline.FillRuleNonZero), "the counter of o is a hole")
	assert.Positive(t, p.Metrics().XHeight)
}

func TestAlignString(t *testing.T) {
	assert.Equal(t, "left", AlignLeft.String())
	assert.Equal(t, "center", AlignCenter.String())
	assert.Equal(t, "right", AlignRight.String())
	assert.Equal(t, "unknown", Align(9).String())
}

func TestPaintUnderlineMetrics(t *testing.T) {
	custom := underline.DefaultParams()
	custom.UnderlineOffsetRatio = 0.3
	custom.UnderlineStrokeRatio = 0.1

	tests := []struct {
		name   string
		params *underline.Params
		want   underline.Metrics
	}{
		{"default", nil, underline.DefaultParams().Scale(20)},
		{"custom", &custom, custom.Scale(20)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPaint(testSource(t), 20)
			p.UnderlineParams = tt.params
			assert.Equal(t, tt.want, p.UnderlineMetrics())
		})
	}
}
