package render_test

import (
	"image/color"
	"testing"

	"github.com/drawlang/drawlang/pkg/interp"
	"github.com/drawlang/drawlang/pkg/render"
)

func TestNewCanvasIsWhite(t *testing.T) {
	c := render.NewCanvas(100, 80)

	w, h := c.Size()
	if w != 100 || h != 80 {
		t.Fatalf("Size() = %dx%d, want 100x80", w, h)
	}
	img := c.Image()
	if got := img.Bounds().Dx(); got != 100 {
		t.Errorf("image width = %d, want 100", got)
	}

	r, g, b, _ := img.At(50, 40).RGBA()
	if r != 0xFFFF || g != 0xFFFF || b != 0xFFFF {
		t.Errorf("fresh canvas pixel = (%d, %d, %d), want white", r, g, b)
	}
}

func TestDrawLinePaintsPixels(t *testing.T) {
	c := render.NewCanvas(100, 100)
	c.DrawLine(0, 50, 100, 50, color.RGBA{A: 0xFF})

	r, g, b, _ := c.Image().At(50, 50).RGBA()
	if r == 0xFFFF && g == 0xFFFF && b == 0xFFFF {
		t.Error("pixel on the stroke is still white")
	}
}

func TestClearErasesDrawing(t *testing.T) {
	c := render.NewCanvas(100, 100)
	c.DrawRectangle(interp.Rect{X1: 10, Y1: 10, X2: 90, Y2: 90}, color.RGBA{A: 0xFF}, nil)
	c.Clear()

	r, g, b, _ := c.Image().At(10, 10).RGBA()
	if r != 0xFFFF || g != 0xFFFF || b != 0xFFFF {
		t.Errorf("pixel after Clear = (%d, %d, %d), want white", r, g, b)
	}
}

func TestCanvasImplementsSurface(t *testing.T) {
	var _ interp.Surface = render.NewCanvas(1, 1)
}
