// Package parser turns a token sequence into an ordered command list.
// It is a recursive-descent parser with a single token of look-ahead
// and no error recovery: the first structural error aborts the whole
// parse and no commands are returned.
package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/drawlang/drawlang/pkg/lang/command"
	"github.com/drawlang/drawlang/pkg/lang/lexer"
)

// Parse consumes the token sequence and returns one command per
// statement. A trailing EOF sentinel is tolerated but not required.
func Parse(tokens []lexer.Token) ([]command.Command, error) {
	p := &parser{tokens: tokens}
	var cmds []command.Command
	for {
		if _, ok := p.current(); !ok {
			return cmds, nil
		}
		cmd, err := p.parseCommand()
		if err != nil {
			return nil, err
		}
		cmds = append(cmds, cmd)
	}
}

type parser struct {
	tokens []lexer.Token
	pos    int
}

// current returns the look-ahead token. The EOF sentinel counts as
// exhausted input.
func (p *parser) current() (lexer.Token, bool) {
	if p.pos >= len(p.tokens) || p.tokens[p.pos].Kind == lexer.KindEOF {
		return lexer.Token{}, false
	}
	return p.tokens[p.pos], true
}

func (p *parser) advance() {
	p.pos++
}

func (p *parser) parseCommand() (command.Command, error) {
	tok, _ := p.current()
	if tok.Kind != lexer.KindKeyword {
		return nil, p.errorf("Expected command keyword, got %s", tok.Kind)
	}
	line, column := tok.Line, tok.Column
	p.advance()

	switch tok.Text {
	case "draw":
		return p.parseDraw(line, column)
	case "set":
		return p.parseSetColor(line, column)
	case "clear":
		return &command.Clear{Line: line, Column: column}, nil
	case "move":
		return p.parseMove(line, column)
	case "pen":
		return p.parsePen(line, column)
	default:
		return nil, p.errorAt(line, column, "Unknown command: %s", tok.Text)
	}
}

func (p *parser) parseDraw(line, column int) (command.Command, error) {
	tok, ok := p.current()
	if !ok || tok.Kind != lexer.KindKeyword {
		return nil, p.errorf("Expected shape type after 'draw'")
	}
	p.advance()

	switch tok.Text {
	case "line":
		args, err := p.numbers(4)
		if err != nil {
			return nil, p.errorf("draw line requires 4 numbers: x1 y1 x2 y2")
		}
		return &command.DrawLine{X1: args[0], Y1: args[1], X2: args[2], Y2: args[3], Line: line, Column: column}, nil
	case "circle":
		args, err := p.numbers(3)
		if err != nil {
			return nil, p.errorf("draw circle requires 3 numbers: x y radius")
		}
		return &command.DrawCircle{X: args[0], Y: args[1], Radius: args[2], Line: line, Column: column}, nil
	case "rectangle":
		args, err := p.numbers(4)
		if err != nil {
			return nil, p.errorf("draw rectangle requires 4 numbers: x y width height")
		}
		return &command.DrawRectangle{X: args[0], Y: args[1], Width: args[2], Height: args[3], Line: line, Column: column}, nil
	default:
		return nil, p.errorAt(tok.Line, tok.Column, "Unknown shape type: %s", tok.Text)
	}
}

func (p *parser) parseSetColor(line, column int) (command.Command, error) {
	tok, ok := p.current()
	if !ok || !strings.EqualFold(tok.Text, "color") {
		return nil, p.errorf("Expected 'color' after 'set'")
	}
	p.advance()

	tok, ok = p.current()
	if !ok || (tok.Kind != lexer.KindColor && tok.Kind != lexer.KindString) {
		return nil, p.errorf("Expected color name after 'set color'")
	}
	p.advance()
	return &command.SetColor{Name: tok.Text, Line: line, Column: column}, nil
}

func (p *parser) parseMove(line, column int) (command.Command, error) {
	args, err := p.numbers(2)
	if err != nil {
		return nil, p.errorf("move requires 2 numbers: x y")
	}
	return &command.Move{X: args[0], Y: args[1], Line: line, Column: column}, nil
}

func (p *parser) parsePen(line, column int) (command.Command, error) {
	tok, ok := p.current()
	if !ok {
		return nil, p.errorf("Expected 'up' or 'down' after 'pen'")
	}
	p.advance()

	switch tok.Text {
	case "up":
		return &command.PenUp{Line: line, Column: column}, nil
	case "down":
		return &command.PenDown{Line: line, Column: column}, nil
	default:
		return nil, p.errorAt(tok.Line, tok.Column, "Expected 'up' or 'down', got '%s'", tok.Text)
	}
}

// numbers parses n consecutive number tokens. Callers wrap any failure
// in a command-specific message.
func (p *parser) numbers(n int) ([]float64, error) {
	out := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		v, err := p.number()
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func (p *parser) number() (float64, error) {
	tok, ok := p.current()
	if !ok || tok.Kind != lexer.KindNumber {
		return 0, p.errorf("Expected %s, got %s", lexer.KindNumber, tok.Kind)
	}
	p.advance()
	v, err := strconv.ParseFloat(tok.Text, 64)
	if err != nil {
		return 0, p.errorAt(tok.Line, tok.Column, "Invalid number: %s", tok.Text)
	}
	return v, nil
}

// errorf positions the message at the look-ahead token, falling back to
// the last token when input is exhausted.
func (p *parser) errorf(format string, args ...any) error {
	line, column := 0, 0
	if p.pos < len(p.tokens) {
		line, column = p.tokens[p.pos].Line, p.tokens[p.pos].Column
	} else if len(p.tokens) > 0 {
		last := p.tokens[len(p.tokens)-1]
		line, column = last.Line, last.Column
	}
	return p.errorAt(line, column, format, args...)
}

func (p *parser) errorAt(line, column int, format string, args ...any) error {
	return fmt.Errorf("line %d, column %d: %s", line, column, fmt.Sprintf(format, args...))
}
