// Package interp executes parsed drawing commands against a Surface,
// tracking pen position, current color, and fill mode.
package interp

import (
	"fmt"
	"image/color"

	"github.com/drawlang/drawlang/pkg/lang/command"
)

// Interpreter owns the mutable drawing state for one session. It is
// single-threaded; the surface handle must not be shared with anyone
// else while the session runs.
type Interpreter struct {
	surface Surface
	width   int
	height  int

	currentColor color.RGBA
	penX, penY   int
	penDown      bool
	// fillMode is tracked but no command sets it: the language reserves
	// a fill keyword without grammar for it, so shapes always render as
	// outlines. Kept to match the reference behavior.
	fillMode bool
}

// New creates an interpreter for a surface of the given pixel size.
// The pen starts at the surface center, down, drawing in black.
func New(surface Surface, width, height int) *Interpreter {
	return &Interpreter{
		surface:      surface,
		width:        width,
		height:       height,
		currentColor: Black,
		penX:         width / 2,
		penY:         height / 2,
		penDown:      true,
	}
}

// Pen reports the current pen position.
func (in *Interpreter) Pen() (x, y int) {
	return in.penX, in.penY
}

// PenIsDown reports whether the pen is down.
func (in *Interpreter) PenIsDown() bool {
	return in.penDown
}

// Color reports the current drawing color.
func (in *Interpreter) Color() color.RGBA {
	return in.currentColor
}

// Execute runs a single command and returns a human-readable result.
// It never fails the caller's loop: any fault raised mid-command is
// recovered and reported as the command's result string.
func (in *Interpreter) Execute(cmd command.Command) (result string) {
	defer func() {
		if r := recover(); r != nil {
			result = fmt.Sprintf("Error executing command: %v", r)
		}
	}()

	switch c := cmd.(type) {
	case *command.DrawLine:
		return in.drawLine(c)
	case *command.DrawCircle:
		return in.drawCircle(c)
	case *command.DrawRectangle:
		return in.drawRectangle(c)
	case *command.SetColor:
		in.currentColor = LookupColor(c.Name)
		return fmt.Sprintf("Color set to %s", c.Name)
	case *command.Clear:
		// Clears pixels only; pen, color, and modes survive.
		in.surface.Clear()
		return "Canvas cleared"
	case *command.Move:
		return in.move(c)
	case *command.PenUp:
		in.penDown = false
		return "Pen lifted"
	case *command.PenDown:
		in.penDown = true
		return "Pen lowered"
	default:
		return fmt.Sprintf("Error: unknown command type %T", cmd)
	}
}

func (in *Interpreter) drawLine(c *command.DrawLine) string {
	x1, y1 := int(c.X1), int(c.Y1)
	x2, y2 := int(c.X2), int(c.Y2)

	in.surface.DrawLine(x1, y1, x2, y2, in.currentColor)

	if in.penDown {
		in.penX, in.penY = x2, y2
	}
	return fmt.Sprintf("Drew line from (%d, %d) to (%d, %d)", x1, y1, x2, y2)
}

func (in *Interpreter) drawCircle(c *command.DrawCircle) string {
	x, y := int(c.X), int(c.Y)
	radius := int(c.Radius)

	box := Rect{X1: x - radius, Y1: y - radius, X2: x + radius, Y2: y + radius}
	in.surface.DrawEllipse(box, in.currentColor, in.fill())

	if in.penDown {
		in.penX, in.penY = x, y
	}
	return fmt.Sprintf("Drew circle at (%d, %d) with radius %d", x, y, radius)
}

func (in *Interpreter) drawRectangle(c *command.DrawRectangle) string {
	x, y := int(c.X), int(c.Y)
	width, height := int(c.Width), int(c.Height)

	box := Rect{X1: x, Y1: y, X2: x + width, Y2: y + height}
	in.surface.DrawRectangle(box, in.currentColor, in.fill())

	if in.penDown {
		in.penX, in.penY = box.X2, box.Y2
	}
	return fmt.Sprintf("Drew rectangle at (%d, %d) with size %dx%d", x, y, width, height)
}

func (in *Interpreter) move(c *command.Move) string {
	x, y := int(c.X), int(c.Y)

	// Only the trailing line is gated on the pen; the position update
	// is unconditional.
	if in.penDown {
		in.surface.DrawLine(in.penX, in.penY, x, y, in.currentColor)
	}
	in.penX, in.penY = x, y
	return fmt.Sprintf("Pen moved to (%d, %d)", x, y)
}

// fill returns the fill color for shape commands, nil when outlining.
func (in *Interpreter) fill() *color.RGBA {
	if !in.fillMode {
		return nil
	}
	c := in.currentColor
	return &c
}
