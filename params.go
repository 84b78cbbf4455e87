package underline

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidParams is returned by Params.Validate.
var ErrInvalidParams = errors.New("underline: invalid parameters")

// Params holds the visual parameters of the elegant underline. Ratios are
// multiplied by the text size in pixels.
type Params struct {
	// UnderlineOffsetRatio places the centre of the underline below the baseline.
	UnderlineOffsetRatio float64
	// UnderlineStrokeRatio is the thickness of the underline.
	UnderlineStrokeRatio float64
	// ClearanceRatio is the distance kept between glyph ink and the underline.
	ClearanceRatio float64
	// Alpha overrides the alpha of the paint color when filling the underline.
	Alpha uint8
	// MinTextSize is the text size in pixels below which the underline is
	// drawn without cut-outs.
	MinTextSize float64
}

// DefaultParams returns the default visual parameters.
func DefaultParams() Params {
	return Params{
		UnderlineOffsetRatio: 1.0 / 9.0,
		UnderlineStrokeRatio: 1.0 / 18.0,
		ClearanceRatio:       1.0 / 9.0,
		Alpha:                128,
		MinTextSize:          8,
	}
}

// Validate reports whether every ratio is positive and finite.
func (p Params) Validate() error {
	check := func(name string, v float64) error {
		if !(v > 0) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s must be positive and finite, got %v", ErrInvalidParams, name, v)
		}
		return nil
	}
	if err := check("underline_offset_ratio", p.UnderlineOffsetRatio); err != nil {
		return err
	}
	if err := check("underline_stroke_ratio", p.UnderlineStrokeRatio); err != nil {
		return err
	}
	if err := check("clearance_ratio", p.ClearanceRatio); err != nil {
		return err
	}
	if p.MinTextSize < 0 || math.IsNaN(p.MinTextSize) || math.IsInf(p.MinTextSize, 0) {
		return fmt.Errorf("%w: min_text_size must be a finite non-negative size, got %v", ErrInvalidParams, p.MinTextSize)
	}
	return nil
}

// Metrics are Params resolved for one text size, in pixels.
type Metrics struct {
	// Offset is the distance from the baseline to the centre of the underline.
	Offset float64
	// StrokeWidth is the underline thickness.
	StrokeWidth float64
	// Clearance is the gap kept between ink and the underline.
	Clearance float64
}

// Scale resolves the ratios for the given text size.
func (p Params) Scale(textSize float64) Metrics {
	return Metrics{
		Offset:      textSize * p.UnderlineOffsetRatio,
		StrokeWidth: textSize * p.UnderlineStrokeRatio,
		Clearance:   textSize * p.ClearanceRatio,
	}
}

// BandHeight returns the height of the clearance band: the stroke plus the
// clearance on both sides.
func (m Metrics) BandHeight() float64 {
	return m.StrokeWidth + 2*m.Clearance
}

// UnderlineRect returns the underline rectangle spanning [left, right],
// relative to a baseline at y=0.
func (m Metrics) UnderlineRect(left, right float64) Rect {
	return R(left, m.Offset-m.StrokeWidth/2, right, m.Offset+m.StrokeWidth/2)
}

// BandRect returns the clearance band spanning [left, right], relative to a
// baseline at y=0. It shares its centre line with UnderlineRect.
func (m Metrics) BandRect(left, right float64) Rect {
	h := m.BandHeight()
	return R(left, m.Offset-h/2, right, m.Offset+h/2)
}
