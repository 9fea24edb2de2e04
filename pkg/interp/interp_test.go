package interp_test

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drawlang/drawlang/pkg/interp"
	"github.com/drawlang/drawlang/pkg/lang/command"
)

func newTestInterpreter() (*interp.Interpreter, *interp.Recorder) {
	rec := &interp.Recorder{}
	return interp.New(rec, 800, 600), rec
}

func TestInitialState(t *testing.T) {
	in, _ := newTestInterpreter()
	x, y := in.Pen()
	assert.Equal(t, 400, x)
	assert.Equal(t, 300, y)
	assert.True(t, in.PenIsDown())
	assert.Equal(t, interp.Black, in.Color())
}

func TestDrawLine(t *testing.T) {
	in, rec := newTestInterpreter()

	result := in.Execute(&command.DrawLine{X1: 1, Y1: 2, X2: 30, Y2: 40})
	assert.Equal(t, "Drew line from (1, 2) to (30, 40)", result)

	require.Len(t, rec.Calls, 1)
	call := rec.Calls[0]
	assert.Equal(t, "line", call.Op)
	assert.Equal(t, [4]int{1, 2, 30, 40}, [4]int{call.X1, call.Y1, call.X2, call.Y2})
	assert.Equal(t, interp.Black, call.Stroke)

	x, y := in.Pen()
	assert.Equal(t, 30, x)
	assert.Equal(t, 40, y)
}

func TestDrawLineTruncatesCoordinates(t *testing.T) {
	in, rec := newTestInterpreter()

	result := in.Execute(&command.DrawLine{X1: 1.9, Y1: 2.9, X2: 3.9, Y2: 4.9})
	assert.Equal(t, "Drew line from (1, 2) to (3, 4)", result)
	require.Len(t, rec.Calls, 1)
	assert.Equal(t, 3, rec.Calls[0].X2)
}

func TestDrawCircleBoundingBox(t *testing.T) {
	in, rec := newTestInterpreter()

	in.Execute(&command.SetColor{Name: "blue"})
	result := in.Execute(&command.DrawCircle{X: 400, Y: 300, Radius: 50})
	assert.Equal(t, "Drew circle at (400, 300) with radius 50", result)

	require.Len(t, rec.Calls, 1)
	call := rec.Calls[0]
	assert.Equal(t, "ellipse", call.Op)
	assert.Equal(t, interp.Rect{X1: 350, Y1: 250, X2: 450, Y2: 350}, call.Box)
	assert.Equal(t, interp.LookupColor("blue"), call.Outline)
	// Fill mode is never reachable through the grammar, so shapes stay outlines.
	assert.Nil(t, call.Fill)

	x, y := in.Pen()
	assert.Equal(t, 400, x)
	assert.Equal(t, 300, y)
}

func TestDrawRectanglePenToBottomRight(t *testing.T) {
	in, rec := newTestInterpreter()

	result := in.Execute(&command.DrawRectangle{X: 10, Y: 20, Width: 100, Height: 80})
	assert.Equal(t, "Drew rectangle at (10, 20) with size 100x80", result)

	require.Len(t, rec.Calls, 1)
	call := rec.Calls[0]
	assert.Equal(t, "rectangle", call.Op)
	assert.Equal(t, interp.Rect{X1: 10, Y1: 20, X2: 110, Y2: 100}, call.Box)
	assert.Nil(t, call.Fill)

	x, y := in.Pen()
	assert.Equal(t, 110, x)
	assert.Equal(t, 100, y)
}

func TestPenUpFreezesShapePenTracking(t *testing.T) {
	in, rec := newTestInterpreter()

	assert.Equal(t, "Pen lifted", in.Execute(&command.PenUp{}))
	assert.False(t, in.PenIsDown())

	// Drawing is unconditional, but pen position must not move.
	in.Execute(&command.DrawLine{X1: 0, Y1: 0, X2: 5, Y2: 5})
	in.Execute(&command.DrawCircle{X: 100, Y: 100, Radius: 10})
	in.Execute(&command.DrawRectangle{X: 1, Y: 1, Width: 2, Height: 2})
	assert.Len(t, rec.Calls, 3)

	x, y := in.Pen()
	assert.Equal(t, 400, x)
	assert.Equal(t, 300, y)

	assert.Equal(t, "Pen lowered", in.Execute(&command.PenDown{}))
	assert.True(t, in.PenIsDown())
}

func TestMoveWithPenDown(t *testing.T) {
	in, rec := newTestInterpreter()

	result := in.Execute(&command.Move{X: 100, Y: 150})
	assert.Equal(t, "Pen moved to (100, 150)", result)

	// Pen was down: a line trails from the old position (surface center).
	require.Len(t, rec.Calls, 1)
	call := rec.Calls[0]
	assert.Equal(t, "line", call.Op)
	assert.Equal(t, [4]int{400, 300, 100, 150}, [4]int{call.X1, call.Y1, call.X2, call.Y2})

	x, y := in.Pen()
	assert.Equal(t, 100, x)
	assert.Equal(t, 150, y)
}

func TestMoveWithPenUpStillUpdatesPosition(t *testing.T) {
	in, rec := newTestInterpreter()

	in.Execute(&command.PenUp{})
	in.Execute(&command.Move{X: 10, Y: 10})

	// No trailing line, but the position update is unconditional.
	assert.Empty(t, rec.Calls)
	x, y := in.Pen()
	assert.Equal(t, 10, x)
	assert.Equal(t, 10, y)
}

func TestSetColor(t *testing.T) {
	in, _ := newTestInterpreter()

	assert.Equal(t, "Color set to red", in.Execute(&command.SetColor{Name: "red"}))
	assert.Equal(t, color.RGBA{R: 0xFF, A: 0xFF}, in.Color())

	// Case-insensitive resolution.
	in.Execute(&command.SetColor{Name: "Red"})
	assert.Equal(t, color.RGBA{R: 0xFF, A: 0xFF}, in.Color())

	// Unrecognized names fall back to black.
	assert.Equal(t, "Color set to notacolor", in.Execute(&command.SetColor{Name: "notacolor"}))
	assert.Equal(t, interp.Black, in.Color())
}

func TestClearKeepsState(t *testing.T) {
	in, rec := newTestInterpreter()

	in.Execute(&command.SetColor{Name: "green"})
	in.Execute(&command.Move{X: 50, Y: 50})
	in.Execute(&command.PenUp{})

	assert.Equal(t, "Canvas cleared", in.Execute(&command.Clear{}))
	assert.Equal(t, "clear", rec.Calls[len(rec.Calls)-1].Op)

	// Clear wipes pixels only; interpreter state survives.
	x, y := in.Pen()
	assert.Equal(t, 50, x)
	assert.Equal(t, 50, y)
	assert.False(t, in.PenIsDown())
	assert.Equal(t, interp.LookupColor("green"), in.Color())
}

// panicSurface faults on every draw call.
type panicSurface struct{ interp.Recorder }

func (p *panicSurface) DrawLine(x1, y1, x2, y2 int, stroke color.RGBA) {
	panic("surface gone")
}

func TestExecuteContainsFaults(t *testing.T) {
	surface := &panicSurface{}
	in := interp.New(surface, 800, 600)

	result := in.Execute(&command.DrawLine{X1: 0, Y1: 0, X2: 1, Y2: 1})
	assert.Contains(t, result, "Error executing command")
	assert.Contains(t, result, "surface gone")

	// A fault in one command must not poison the next.
	assert.Equal(t, "Pen lifted", in.Execute(&command.PenUp{}))
}

func TestLookupColor(t *testing.T) {
	assert.Equal(t, color.RGBA{B: 0xFF, A: 0xFF}, interp.LookupColor("blue"))
	assert.Equal(t, interp.LookupColor("gray"), interp.LookupColor("grey"))
	assert.Equal(t, interp.LookupColor("RED"), interp.LookupColor("red"))
	assert.Equal(t, interp.Black, interp.LookupColor("notacolor"))
}
