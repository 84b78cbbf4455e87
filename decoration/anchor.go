package decoration

import (
	"image"
	"image/color"

	"github.com/gogpu/underline"
	"github.com/gogpu/underline/canvas"
	"github.com/gogpu/underline/styled"
	"github.com/gogpu/underline/text"
)

// DebugColor is the color of the band and halo in the demo states.
var DebugColor = color.NRGBA{R: 0x57, G: 0xAD, B: 0x68, A: 0x70}

// Anchor is a link style that draws an underline beneath its text with
// gaps around every glyph stroke that would cross it.
//
// Anchor must be attached to a text that also carries a Shim, which calls
// DrawSnippetBackground for every line the anchor touches.
type Anchor struct {
	// URL is the link destination.
	URL string

	// Params are the visual parameters of the underline.
	Params underline.Params

	// State selects what is drawn. It defaults to DemoElegantUnderline.
	State DemoState

	// Legacy replaces the carved underline with the flat underline the
	// layout engine draws for Paint.UnderlineText.
	Legacy bool
}

// AnchorOption configures an Anchor.
type AnchorOption func(*Anchor)

// WithParams sets the visual parameters.
func WithParams(p underline.Params) AnchorOption {
	return func(a *Anchor) {
		a.Params = p
	}
}

// WithLegacy switches the anchor to the flat underline fallback.
func WithLegacy(legacy bool) AnchorOption {
	return func(a *Anchor) {
		a.Legacy = legacy
	}
}

// WithDemoState sets the initial demo state.
func WithDemoState(s DemoState) AnchorOption {
	return func(a *Anchor) {
		a.State = s
	}
}

// NewAnchor creates an anchor linking to url with the default parameters.
func NewAnchor(url string, opts ...AnchorOption) *Anchor {
	a := &Anchor{
		URL:    url,
		Params: underline.DefaultParams(),
		State:  DemoElegantUnderline,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Click advances the demo state and returns the new one.
func (a *Anchor) Click() DemoState {
	a.State = a.State.Next()
	underline.Logger().Info("decoration: demo state changed", "url", a.URL, "state", a.State.String())
	return a.State
}

// UpdateDrawState implements styled.CharacterStyle. In legacy mode it asks
// the layout engine for a flat underline shaped by the anchor's Params.
func (a *Anchor) UpdateDrawState(p *text.Paint) {
	if a.Legacy {
		p.UnderlineText = true
		params := a.Params
		p.UnderlineParams = &params
	}
}

// DrawSnippetBackground implements SnippetBackground.
//
// The glyph outlines of [start, end) are placed at bounds.Min.X, the ink
// inside the clearance band is grown by half the clearance and removed
// from the underline, and the result is filled below baseline with the
// color of p at the anchor's alpha.
func (a *Anchor) DrawSnippetBackground(c canvas.Canvas, p *text.Paint, t styled.Spanned,
	start, end int, bounds image.Rectangle, baseline int,
) {
	if a.Legacy || a.State == DemoNone {
		return
	}
	if start >= end || bounds.Dx() <= 0 {
		return
	}

	m := a.Params.Scale(p.Size)
	left, right := float64(bounds.Min.X), float64(bounds.Max.X)
	ul := m.UnderlineRect(left, right)
	band := m.BandRect(left, right)

	var opts []underline.CarveOption
	if a.State == DemoIntersections {
		opts = append(opts, underline.WithHalo())
	}

	var outline *underline.Path
	if p.Size >= a.Params.MinTextSize {
		outline = p.TextPath(t.String(), start, end, 0, 0)
		outline.Offset(left, 0)
	} else {
		underline.Logger().Debug("decoration: text too small to carve, drawing uncut underline",
			"size", p.Size, "min", a.Params.MinTextSize)
	}

	carving := underline.Carve(outline, ul, band, m.Clearance/2, opts...)
	carving.Offset(0, float64(baseline))

	underlinePaint := p.Clone()
	underlinePaint.AntiAlias = true
	underlinePaint.SetAlpha(a.Params.Alpha)

	debugPaint := underlinePaint.Clone()
	debugPaint.Color = DebugColor

	switch a.State {
	case DemoSimpleUnderline:
		fill(c, carving.Underline, underlinePaint)
	case DemoWideUnderline:
		fill(c, carving.Band, debugPaint)
	case DemoIntersections:
		fill(c, carving.Halo, debugPaint)
	case DemoElegantUnderline:
		fill(c, carving.Result, underlinePaint)
	}
}

func fill(c canvas.Canvas, path *underline.Path, p *text.Paint) {
	if path.IsEmpty() {
		return
	}
	c.DrawPath(path, p)
}
