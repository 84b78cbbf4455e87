// Package text measures and outlines text for the underline decorations.
//
// The package is split the same way as most text stacks:
//
//   - FontSource: heavyweight, shared font resource (parses TTF/OTF data)
//   - Paint: lightweight style value (font, size, horizontal scale, color)
//
// Shaping uses HarfBuzz from go-text/typesetting, so advances include
// kerning and ligatures. Glyph outlines come from golang.org/x/image/font/sfnt
// and are cached per source.
//
// # Example usage
//
//	source, err := text.NewFontSource(goregular.TTF)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	p := text.NewPaint(source, 36)
//	width := p.MeasureText("jpg", 0, 3)
//	outline := p.TextPath("jpg", 0, 3, 0, 0) // baseline at y=0
//
// Ranges are byte offsets into the string and must lie on rune boundaries.
// Coordinates follow the screen convention: y grows downward and glyph
// descenders have positive y.
package text
