package layout

// Option configures a Layout.
type Option func(*options)

// options holds optional layout configuration.
type options struct {
	lineSpacing float64
	checkBidi   bool
}

// defaultOptions returns the default layout options.
func defaultOptions() options {
	return options{
		lineSpacing: 1.0,
		checkBidi:   true,
	}
}

// WithLineSpacing sets a multiplier for the line height.
// 1.0 uses the font's natural line height; 1.5 adds 50% extra space.
// Non-positive values are ignored.
func WithLineSpacing(f float64) Option {
	return func(o *options) {
		if f > 0 {
			o.lineSpacing = f
		}
	}
}

// WithBidiCheck enables or disables the warning logged for paragraphs
// that contain right-to-left text. It is enabled by default.
func WithBidiCheck(enabled bool) Option {
	return func(o *options) {
		o.checkBidi = enabled
	}
}
