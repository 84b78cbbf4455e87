package underline

// CarveOption configures Carve.
//
// Example:
//
//	c := underline.Carve(outline, u, band, radius,
//	    underline.WithTolerance(0.05),
//	    underline.WithFillRule(underline.FillRuleEvenOdd))
type CarveOption func(*carveOptions)

// carveOptions holds optional configuration for Carve.
type carveOptions struct {
	tolerance    float64
	fillRule     FillRule
	diskSegments int
	halo         bool
}

// DefaultDiskSegments is the polygon resolution of the dilation disk.
const DefaultDiskSegments = 16

// defaultCarveOptions returns the default carve options.
func defaultCarveOptions() carveOptions {
	return carveOptions{
		tolerance:    DefaultTolerance,
		fillRule:     FillRuleNonZero,
		diskSegments: DefaultDiskSegments,
	}
}

// WithTolerance sets the curve flattening tolerance in pixels. The halo is
// grown by the same amount so flattening never lets ink reach the result.
// Non-positive values are ignored.
func WithTolerance(px float64) CarveOption {
	return func(o *carveOptions) {
		if px > 0 {
			o.tolerance = px
		}
	}
}

// WithFillRule sets the fill rule of the glyph outline. Outlines produced by
// the text package use the non-zero rule.
func WithFillRule(rule FillRule) CarveOption {
	return func(o *carveOptions) {
		o.fillRule = rule
	}
}

// WithDiskSegments sets the number of sides of the polygon used as the
// dilation disk. Values below 8 are raised to 8.
func WithDiskSegments(n int) CarveOption {
	return func(o *carveOptions) {
		o.diskSegments = n
	}
}

// WithHalo makes Carve fill Carving.Halo with the dilated intersection.
// It costs an extra boolean union, so it is off by default.
func WithHalo() CarveOption {
	return func(o *carveOptions) {
		o.halo = true
	}
}
