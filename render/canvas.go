package render

import (
	"image"

	"github.com/gogpu/gg"
)

// Canvas is a drawing surface bound to a Context. Resizing replaces
// the underlying gg context only when the pixel size actually
// changes, so configure storms that repeat the same size are free.
type Canvas struct {
	ctx  *Context
	gg   *gg.Context
	w, h int
}

func NewCanvas(ctx *Context, width, height int) *Canvas {
	c := Canvas{ctx: ctx}
	c.reset(width, height)
	return &c
}

func (c *Canvas) reset(width, height int) {
	if c.gg != nil {
		c.gg.Close()
	}
	c.w, c.h = width, height
	c.gg = gg.NewContext(width, height, gg.WithRenderer(c.ctx.NewRenderer(width, height)))
}

// Resize adapts the canvas to a new pixel size. Drawing state does
// not survive a real resize.
func (c *Canvas) Resize(width, height int) {
	if width == c.w && height == c.h {
		return
	}
	c.reset(width, height)
}

func (c *Canvas) Size() (width, height int) {
	return c.w, c.h
}

// GG exposes the drawing API.
func (c *Canvas) GG() *gg.Context {
	return c.gg
}

// Image returns the rendered pixels. Backend renderers rasterize
// through the context synchronously, so the pixmap holds every
// completed Fill and Stroke by the time this returns.
func (c *Canvas) Image() image.Image {
	return c.gg.Image()
}

func (c *Canvas) Close() {
	if c.gg != nil {
		c.gg.Close()
		c.gg = nil
	}
}
