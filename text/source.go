package text

import (
	"bytes"
	"fmt"
	"os"
	"sync"

	"github.com/go-text/typesetting/font"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// GlyphID is a glyph index within a font.
type GlyphID uint16

// FontSource represents a loaded font file (TTF or OTF).
// FontSource is heavyweight and should be shared across the application;
// paints of any size refer to it.
//
// FontSource is safe for concurrent use.
// FontSource must not be copied after creation (enforced by copyCheck).
type FontSource struct {
	// addr is used for copy protection (Ebitengine pattern).
	// It must point to the FontSource itself.
	addr *FontSource

	data   []byte
	sfnt   *opentype.Font // outlines and metrics
	gotext *font.Font     // shaping; read-only and safe for concurrent use

	name     string
	language string

	// bufPool holds sfnt.Buffer values, which are not safe for concurrent use.
	bufPool  sync.Pool
	outlines *Cache[outlineKey, []segment]
}

// NewFontSource creates a FontSource from font data (TTF or OTF).
// The data slice is copied internally and can be reused after this call.
func NewFontSource(data []byte, opts ...SourceOption) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	config := defaultSourceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	parsed, err := opentype.Parse(dataCopy)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	face, err := font.ParseTTF(bytes.NewReader(dataCopy))
	if err != nil {
		return nil, fmt.Errorf("text: failed to load font for shaping: %w", err)
	}

	s := &FontSource{
		data:     dataCopy,
		sfnt:     parsed,
		gotext:   face.Font,
		name:     config.name,
		language: config.language,
		outlines: NewCache[outlineKey, []segment](config.cacheLimit),
	}
	s.addr = s
	s.bufPool.New = func() any { return new(sfnt.Buffer) }

	if s.name == "" {
		s.name = extractFontName(parsed)
	}
	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string, opts ...SourceOption) (*FontSource, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}
	return NewFontSource(data, opts...)
}

// Name returns the font name.
func (s *FontSource) Name() string {
	s.copyCheck()
	return s.name
}

// Metrics returns the font metrics at the given size in pixels.
func (s *FontSource) Metrics(size float64) Metrics {
	s.copyCheck()
	buf := s.bufPool.Get().(*sfnt.Buffer)
	defer s.bufPool.Put(buf)

	m, err := s.sfnt.Metrics(buf, floatToFixed(size), xfont.HintingNone)
	if err != nil {
		return Metrics{}
	}

	ascent := fixedToFloat(m.Ascent)
	descent := fixedToFloat(m.Descent)
	if descent < 0 {
		descent = -descent
	}
	return Metrics{
		Ascent:    ascent,
		Descent:   descent,
		LineGap:   max(fixedToFloat(m.Height)-ascent-descent, 0),
		XHeight:   fixedToFloat(m.XHeight),
		CapHeight: fixedToFloat(m.CapHeight),
	}
}

// copyCheck panics if FontSource was copied by value.
// This is the Ebitengine pattern for preventing accidental copies.
func (s *FontSource) copyCheck() {
	if s.addr != s {
		panic("text: FontSource must not be copied by value")
	}
}

// extractFontName extracts the font family name, falling back to the full name.
func extractFontName(f *opentype.Font) string {
	if name, err := f.Name(nil, sfnt.NameIDFamily); err == nil && name != "" {
		return name
	}
	if name, err := f.Name(nil, sfnt.NameIDFull); err == nil && name != "" {
		return name
	}
	return "Unknown Font"
}

// floatToFixed converts a float64 font size to fixed.Int26_6.
func floatToFixed(size float64) fixed.Int26_6 {
	return fixed.Int26_6(size * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
