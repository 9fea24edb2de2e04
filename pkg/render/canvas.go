// Package render backs the interpreter's drawing surface with a raster
// canvas and writes the result out as PNG.
package render

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"

	"github.com/drawlang/drawlang/pkg/interp"
)

// strokeWidth matches the interpreter's fixed visual stroke width.
const strokeWidth = 2

// Canvas is an interp.Surface drawing into an in-memory RGBA image.
// Coordinates are y-down device pixels, same as the DSL.
type Canvas struct {
	dc     *gg.Context
	width  int
	height int
}

// NewCanvas creates a white canvas of the given pixel size.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{dc: gg.NewContext(width, height), width: width, height: height}
	c.Clear()
	return c
}

func (c *Canvas) DrawLine(x1, y1, x2, y2 int, stroke color.RGBA) {
	c.dc.SetColor(stroke)
	c.dc.SetLineWidth(strokeWidth)
	c.dc.DrawLine(float64(x1), float64(y1), float64(x2), float64(y2))
	c.dc.Stroke()
}

func (c *Canvas) DrawEllipse(box interp.Rect, outline color.RGBA, fill *color.RGBA) {
	cx := float64(box.X1+box.X2) / 2
	cy := float64(box.Y1+box.Y2) / 2
	rx := float64(box.X2-box.X1) / 2
	ry := float64(box.Y2-box.Y1) / 2
	c.dc.DrawEllipse(cx, cy, rx, ry)
	c.paint(outline, fill)
}

func (c *Canvas) DrawRectangle(box interp.Rect, outline color.RGBA, fill *color.RGBA) {
	c.dc.DrawRectangle(float64(box.X1), float64(box.Y1), float64(box.X2-box.X1), float64(box.Y2-box.Y1))
	c.paint(outline, fill)
}

// Clear repaints the whole canvas white.
func (c *Canvas) Clear() {
	c.dc.SetColor(color.White)
	c.dc.Clear()
}

// paint fills (when requested) and strokes the current path.
func (c *Canvas) paint(outline color.RGBA, fill *color.RGBA) {
	if fill != nil {
		c.dc.SetColor(*fill)
		c.dc.FillPreserve()
	}
	c.dc.SetColor(outline)
	c.dc.SetLineWidth(strokeWidth)
	c.dc.Stroke()
}

// Image returns the rendered image.
func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

// SavePNG writes the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	return c.dc.SavePNG(path)
}

// Size returns the canvas dimensions in pixels.
func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}
