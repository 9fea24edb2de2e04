// Package command defines the instruction vocabulary shared by the
// parser (producer) and the interpreter (consumer).
package command

// Command is a single executable drawing instruction. The set of
// implementations is closed; the interpreter dispatches over it
// exhaustively.
type Command interface {
	// Pos returns the source line and column of the command's leading
	// keyword, for diagnostics.
	Pos() (line, column int)
	cmdNode()
}

// DrawLine draws a straight line from (X1, Y1) to (X2, Y2).
type DrawLine struct {
	X1, Y1, X2, Y2 float64
	Line, Column   int
}

// DrawCircle draws a circle centered at (X, Y).
type DrawCircle struct {
	X, Y, Radius float64
	Line, Column int
}

// DrawRectangle draws a rectangle with top-left corner (X, Y).
type DrawRectangle struct {
	X, Y, Width, Height float64
	Line, Column        int
}

// SetColor changes the current drawing color. Name is kept as written;
// resolution against the color table happens at execution time.
type SetColor struct {
	Name         string
	Line, Column int
}

// Clear wipes the drawing surface. Interpreter state is untouched.
type Clear struct {
	Line, Column int
}

// Move repositions the pen, drawing a trailing line when the pen is down.
type Move struct {
	X, Y         float64
	Line, Column int
}

// PenUp lifts the pen.
type PenUp struct {
	Line, Column int
}

// PenDown lowers the pen.
type PenDown struct {
	Line, Column int
}

func (c *DrawLine) Pos() (int, int)      { return c.Line, c.Column }
func (c *DrawCircle) Pos() (int, int)    { return c.Line, c.Column }
func (c *DrawRectangle) Pos() (int, int) { return c.Line, c.Column }
func (c *SetColor) Pos() (int, int)      { return c.Line, c.Column }
func (c *Clear) Pos() (int, int)         { return c.Line, c.Column }
func (c *Move) Pos() (int, int)          { return c.Line, c.Column }
func (c *PenUp) Pos() (int, int)         { return c.Line, c.Column }
func (c *PenDown) Pos() (int, int)       { return c.Line, c.Column }

func (c *DrawLine) cmdNode()      {}
func (c *DrawCircle) cmdNode()    {}
func (c *DrawRectangle) cmdNode() {}
func (c *SetColor) cmdNode()      {}
func (c *Clear) cmdNode()         {}
func (c *Move) cmdNode()          {}
func (c *PenUp) cmdNode()         {}
func (c *PenDown) cmdNode()       {}
