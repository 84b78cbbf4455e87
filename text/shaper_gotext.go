package text

import (
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
)

// Glyph is a shaped glyph positioned along a left-to-right run.
type Glyph struct {
	// ID is the glyph index in the font.
	ID GlyphID

	// Cluster is the index of the first rune of the run that maps to this glyph.
	Cluster int

	// X is the horizontal pen position of the glyph origin, including the
	// shaper's fine offset. Y is the vertical offset, positive downward.
	X, Y float64

	// Advance is the horizontal advance of the glyph.
	Advance float64
}

// shaperPool pools HarfbuzzShaper instances. HarfbuzzShaper has internal
// mutable state and is NOT safe for concurrent use, but reusing it across
// sequential calls is efficient.
var shaperPool = sync.Pool{
	New: func() any {
		return &shaping.HarfbuzzShaper{}
	},
}

// Shape converts runes into positioned glyphs at the given size in pixels
// using HarfBuzz shaping from go-text/typesetting. Kerning and ligatures are
// applied; text is always shaped left to right.
//
// Shape is safe for concurrent use. Each call creates a lightweight
// font.Face because font.Face is NOT safe for concurrent use.
func (s *FontSource) Shape(runes []rune, size float64) []Glyph {
	s.copyCheck()
	if len(runes) == 0 || size <= 0 {
		return nil
	}

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      font.NewFace(s.gotext),
		Size:      floatToFixed(size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage(s.language),
	}

	hb := shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := hb.Shape(input)
	shaperPool.Put(hb)

	return convertGlyphs(output.Glyphs)
}

// detectScript inspects the runes and returns the script of the first
// non-space character. Mixed-script text is shaped with that one script.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// convertGlyphs converts go-text/typesetting output glyphs to Glyph values.
func convertGlyphs(glyphs []shaping.Glyph) []Glyph {
	if len(glyphs) == 0 {
		return nil
	}

	result := make([]Glyph, len(glyphs))
	var x float64
	for i, g := range glyphs {
		adv := fixedToFloat(g.Advance)
		result[i] = Glyph{
			ID:      GlyphID(uint16(g.GlyphID)), //nolint:gosec // glyph indices fit in uint16 for sfnt fonts
			Cluster: g.TextIndex(),
			X:       x + fixedToFloat(g.XOffset),
			Y:       -fixedToFloat(g.YOffset),
			Advance: adv,
		}
		x += adv
	}
	return result
}

// advance returns the total advance of shaped glyphs.
func advance(glyphs []Glyph) float64 {
	var w float64
	for _, g := range glyphs {
		w += g.Advance
	}
	return w
}
