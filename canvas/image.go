package canvas

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/vector"

	"github.com/gogpu/underline"
	"github.com/gogpu/underline/text"
)

// Image is a Canvas backed by an *image.RGBA.
//
// Image is not safe for concurrent use.
type Image struct {
	img  *image.RGBA
	ras  *vector.Rasterizer
	mask *image.Alpha
}

// New creates a transparent canvas of the given size in pixels.
func New(width, height int) *Image {
	return NewFromRGBA(image.NewRGBA(image.Rect(0, 0, max(width, 0), max(height, 0))))
}

// NewFromRGBA creates a canvas that draws into img.
func NewFromRGBA(img *image.RGBA) *Image {
	b := img.Bounds()
	return &Image{
		img:  img,
		ras:  vector.NewRasterizer(b.Dx(), b.Dy()),
		mask: image.NewAlpha(image.Rect(0, 0, b.Dx(), b.Dy())),
	}
}

// RGBA returns the backing image.
func (c *Image) RGBA() *image.RGBA {
	return c.img
}

// Bounds returns the canvas bounds.
func (c *Image) Bounds() image.Rectangle {
	return c.img.Bounds()
}

// Clear fills the whole canvas with col.
func (c *Image) Clear(col color.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

// DrawPath implements Canvas. Path coordinates are relative to the top left
// corner of the canvas.
func (c *Image) DrawPath(path *underline.Path, p *text.Paint) {
	if path.IsEmpty() || p.Color.A == 0 {
		return
	}

	b := c.img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return
	}

	c.ras.Reset(w, h)
	c.ras.DrawOp = draw.Src
	trace(c.ras, path)

	clear(c.mask.Pix)
	c.ras.Draw(c.mask, c.mask.Bounds(), image.Opaque, image.Point{})
	if !p.AntiAlias {
		threshold(c.mask)
	}

	draw.DrawMask(c.img, b, image.NewUniform(p.Color), image.Point{}, c.mask, image.Point{}, draw.Over)
}

// EncodePNG writes the canvas as PNG to the given writer.
func (c *Image) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.img)
}

// SavePNG saves the canvas to a PNG file.
func (c *Image) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("canvas: %w", err)
	}
	if err := c.EncodePNG(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("canvas: encode %s: %w", path, err)
	}
	return f.Close()
}

// trace feeds path into the rasterizer. Open subpaths are closed, as
// filling implies.
func trace(ras *vector.Rasterizer, path *underline.Path) {
	open := false
	for _, el := range path.Elements() {
		switch e := el.(type) {
		case underline.MoveTo:
			if open {
				ras.ClosePath()
			}
			ras.MoveTo(float32(e.Point.X), float32(e.Point.Y))
			open = true
		case underline.LineTo:
			ras.LineTo(float32(e.Point.X), float32(e.Point.Y))
			open = true
		case underline.QuadTo:
			ras.QuadTo(float32(e.Control.X), float32(e.Control.Y), float32(e.Point.X), float32(e.Point.Y))
			open = true
		case underline.CubicTo:
			ras.CubeTo(float32(e.Control1.X), float32(e.Control1.Y),
				float32(e.Control2.X), float32(e.Control2.Y),
				float32(e.Point.X), float32(e.Point.Y))
			open = true
		case underline.Close:
			if open {
				ras.ClosePath()
				open = false
			}
		}
	}
	if open {
		ras.ClosePath()
	}
}

// threshold turns partial coverage into all-or-nothing coverage.
func threshold(mask *image.Alpha) {
	for i, a := range mask.Pix {
		if a >= 0x80 {
			mask.Pix[i] = 0xff
		} else {
			mask.Pix[i] = 0
		}
	}
}
