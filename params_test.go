package underline

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultParamsScale(t *testing.T) {
	p := DefaultParams()
	assert.NoError(t, p.Validate())
	assert.Equal(t, uint8(128), p.Alpha)

	m := p.Scale(36)
	assert.InDelta(t, 4, m.Offset, 1e-12)
	assert.InDelta(t, 2, m.StrokeWidth, 1e-12)
	assert.InDelta(t, 4, m.Clearance, 1e-12)
	assert.InDelta(t, 10, m.BandHeight(), 1e-12)

	u := m.UnderlineRect(10, 50)
	assert.Equal(t, R(10, 3, 50, 5), u)
	b := m.BandRect(10, 50)
	assert.Equal(t, R(10, -1, 50, 9), b)
	assert.InDelta(t, (u.Min.Y+u.Max.Y)/2, (b.Min.Y+b.Max.Y)/2, 1e-12, "band and underline share a centre line")
}

func TestParamsValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Params)
	}{
		{"zero offset", func(p *Params) { p.UnderlineOffsetRatio = 0 }},
		{"negative stroke", func(p *Params) { p.UnderlineStrokeRatio = -1 }},
		{"nan clearance", func(p *Params) { p.ClearanceRatio = math.NaN() }},
		{"infinite clearance", func(p *Params) { p.ClearanceRatio = math.Inf(1) }},
		{"negative min size", func(p *Params) { p.MinTextSize = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParams()
			tt.mutate(&p)
			assert.ErrorIs(t, p.Validate(), ErrInvalidParams)
		})
	}
}
