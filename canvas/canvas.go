// Package canvas provides the drawing surfaces the decorations paint on.
//
// Two implementations are included: Image, which fills paths into an RGBA
// image with golang.org/x/image/vector, and Recorder, which captures draw
// calls for later replay or inspection.
package canvas

import (
	"github.com/gogpu/underline"
	"github.com/gogpu/underline/text"
)

// Canvas is a surface that can fill paths.
type Canvas interface {
	// DrawPath fills path with the color of p using the non-zero rule.
	// p.AntiAlias selects anti-aliased coverage.
	DrawPath(path *underline.Path, p *text.Paint)
}

// Op is one recorded DrawPath call.
type Op struct {
	Path  *underline.Path
	Paint text.Paint
}

// Recorder is a Canvas that records draw calls instead of rasterizing.
// Paths and paints are copied, so callers may reuse theirs.
//
// The zero value is ready to use. Recorder is not safe for concurrent use.
type Recorder struct {
	Ops []Op
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// DrawPath implements Canvas.
func (r *Recorder) DrawPath(path *underline.Path, p *text.Paint) {
	r.Ops = append(r.Ops, Op{Path: path.Clone(), Paint: *p})
}

// Len returns the number of recorded operations.
func (r *Recorder) Len() int {
	return len(r.Ops)
}

// Reset discards all recorded operations.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}

// Replay draws every recorded operation onto c in recording order.
func (r *Recorder) Replay(c Canvas) {
	for i := range r.Ops {
		op := &r.Ops[i]
		c.DrawPath(op.Path, &op.Paint)
	}
}
