package text

// SourceOption configures FontSource creation.
type SourceOption func(*sourceConfig)

// sourceConfig holds configuration for FontSource.
type sourceConfig struct {
	cacheLimit int
	name       string
	language   string
}

// defaultSourceConfig returns the default source configuration.
func defaultSourceConfig() sourceConfig {
	return sourceConfig{
		cacheLimit: 512,
		language:   "en",
	}
}

// WithCacheLimit sets the maximum number of cached glyph outlines.
// A value of 0 disables the cache limit.
func WithCacheLimit(n int) SourceOption {
	return func(c *sourceConfig) {
		c.cacheLimit = n
	}
}

// WithName overrides the font name read from the font file.
func WithName(name string) SourceOption {
	return func(c *sourceConfig) {
		c.name = name
	}
}

// WithLanguage sets the language tag used for shaping (e.g., "en", "de").
func WithLanguage(lang string) SourceOption {
	return func(c *sourceConfig) {
		c.language = lang
	}
}
