package interp

import "image/color"

// Rect is an integer-pixel bounding box with inclusive corners
// (X1, Y1) top-left and (X2, Y2) bottom-right.
type Rect struct {
	X1, Y1, X2, Y2 int
}

// Surface is the drawing capability the interpreter renders against.
// Coordinates are device pixels; a nil fill means outline only.
// Implementations: pkg/render for raster output, Recorder for tests.
type Surface interface {
	DrawLine(x1, y1, x2, y2 int, stroke color.RGBA)
	DrawEllipse(box Rect, outline color.RGBA, fill *color.RGBA)
	DrawRectangle(box Rect, outline color.RGBA, fill *color.RGBA)
	Clear()
}

// Call records one surface invocation.
type Call struct {
	Op             string // "line", "ellipse", "rectangle", "clear"
	X1, Y1, X2, Y2 int
	Box            Rect
	Stroke         color.RGBA
	Outline        color.RGBA
	Fill           *color.RGBA
}

// Recorder is an in-memory Surface that captures every call for
// inspection. Useful for tests and dry runs.
type Recorder struct {
	Calls []Call
}

func (r *Recorder) DrawLine(x1, y1, x2, y2 int, stroke color.RGBA) {
	r.Calls = append(r.Calls, Call{Op: "line", X1: x1, Y1: y1, X2: x2, Y2: y2, Stroke: stroke})
}

func (r *Recorder) DrawEllipse(box Rect, outline color.RGBA, fill *color.RGBA) {
	r.Calls = append(r.Calls, Call{Op: "ellipse", Box: box, Outline: outline, Fill: fill})
}

func (r *Recorder) DrawRectangle(box Rect, outline color.RGBA, fill *color.RGBA) {
	r.Calls = append(r.Calls, Call{Op: "rectangle", Box: box, Outline: outline, Fill: fill})
}

func (r *Recorder) Clear() {
	r.Calls = append(r.Calls, Call{Op: "clear"})
}
