// Package underline draws hyperlink underlines that skip glyph descenders.
//
// # Overview
//
// An elegant underline is a thin, continuous line under a run of text with
// void spaces carved around every glyph stroke that would cross it, such as
// the descenders of g, j, p, q and y. The carving is pure path algebra:
//
//	outline ∩ band      the ink that reaches the underline area
//	⊕ disk(radius)      grown by the clearance
//	underline \ halo    removed from the underline
//
// # Quick Start
//
//	m := underline.DefaultParams().Scale(36)
//	u := m.UnderlineRect(left, right)
//	band := m.BandRect(left, right)
//	c := underline.Carve(glyphs, u, band, m.Clearance/2)
//	c.Offset(0, baseline)
//	canvas.DrawPath(c.Result, paint)
//
// # Architecture
//
// The library is organized into:
//   - underline: Path, Rect, Params and Carve (the path algebra)
//   - text: font sources, shaping, glyph outlines and Paint
//   - styled: span-capable text and width measurement across style changes
//   - decoration: the Anchor snippet renderer and the Shim line dispatcher
//   - layout: a minimal paragraph layout that calls line backgrounds
//   - canvas: an anti-aliased image canvas and a recording canvas
//   - markup: Markdown to styled text, with links turned into anchors
//
// # Logging
//
// Logging is silent by default. See [SetLogger].
package underline
