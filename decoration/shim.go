// Package decoration draws link underlines that leave room around glyph
// descenders.
//
// Two spans cooperate. A Shim spans a whole paragraph and is called by the
// layout engine once per line; it finds the SnippetBackground spans on the
// line, works out where their text sits and asks each of them to draw.
// Anchor is the SnippetBackground that draws the carved underline.
//
//	t := styled.New("jumping pygmy giraffes")
//	_, _ = decoration.Link(t, "https://example.com", 0, t.Len())
//	l := layout.New(t, paint, 400)
//	l.Draw(c, 10, 10)
package decoration

import (
	"image"

	"github.com/gogpu/underline"
	"github.com/gogpu/underline/canvas"
	"github.com/gogpu/underline/styled"
	"github.com/gogpu/underline/text"
)

// SnippetBackground is implemented by spans that draw behind the part of
// a line they cover. bounds spans the snippet horizontally and the whole
// line vertically; baseline is the line's baseline in canvas coordinates.
type SnippetBackground interface {
	DrawSnippetBackground(c canvas.Canvas, p *text.Paint, t styled.Spanned,
		start, end int, bounds image.Rectangle, baseline int)
}

// Shim is the line background span that dispatches to the
// SnippetBackground spans of each line.
//
// A Shim keeps a scratch paint for measuring and must not be shared
// between paragraphs drawn concurrently.
type Shim struct {
	scratch text.Paint
}

// NewShim creates a Shim.
func NewShim() *Shim {
	return &Shim{}
}

// DrawBackground implements styled.LineBackground. Text without spans is
// ignored.
func (s *Shim) DrawBackground(c canvas.Canvas, p *text.Paint, left, right, top, baseline, bottom int,
	t styled.Sequence, lineStart, lineEnd, lineNum int,
) {
	spanned, ok := t.(styled.Spanned)
	if !ok {
		return
	}
	for _, sp := range styled.Find[SnippetBackground](spanned, lineStart, lineEnd) {
		s.drawSnippet(sp, c, p, left, right, top, baseline, bottom, spanned, lineStart, lineEnd, lineNum)
	}
}

// drawSnippet computes where the snippet of sp on this line starts and how
// wide it is, then hands it to the span.
func (s *Shim) drawSnippet(sp styled.Ranged[SnippetBackground], c canvas.Canvas, p *text.Paint,
	left, right, top, baseline, bottom int, t styled.Spanned, lineStart, lineEnd, lineNum int,
) {
	start := max(sp.Start, lineStart)
	end := min(sp.End, lineEnd)
	if start > end {
		underline.Logger().Debug("decoration: snippet outside line", "start", start, "end", end, "line", lineNum)
		return
	}

	left += styled.ParagraphLeadingMargin(t, lineStart, lineEnd, lineNum)
	left += styled.AlignmentOffset(p, left, right, t.String(), lineStart, lineEnd)

	leftOffset := styled.MeasureWidth(p, t, lineStart, start, &s.scratch)
	width := styled.MeasureWidth(p, t, start, end, &s.scratch)

	bounds := image.Rect(left+int(leftOffset), top, left+int(leftOffset+width), bottom)
	sp.Style.DrawSnippetBackground(c, p, t, start, end, bounds, baseline)
}
