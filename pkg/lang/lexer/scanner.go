package lexer

import (
	"fmt"
	"strings"
)

// keywords is the fixed reserved-word set of the drawing language.
var keywords = map[string]bool{
	"draw": true, "line": true, "circle": true, "rectangle": true,
	"set": true, "color": true, "clear": true, "move": true,
	"to": true, "from": true, "pen": true, "up": true, "down": true,
	"fill": true,
}

// colorNames is the set of identifiers lexed as KindColor.
var colorNames = map[string]bool{
	"red": true, "green": true, "blue": true, "yellow": true,
	"orange": true, "purple": true, "pink": true, "black": true,
	"white": true, "gray": true, "grey": true, "brown": true,
	"cyan": true, "magenta": true,
}

// Scanner performs lexical analysis on drawing-language source.
type Scanner struct {
	source string
	cursor int
	line   int
	column int
}

// NewScanner creates a new scanner for the given source.
func NewScanner(source string) *Scanner {
	return &Scanner{source: source, line: 1}
}

// Tokenize scans the entire source and returns every token in order,
// ending with exactly one EOF sentinel. The only possible failure is an
// unterminated string literal.
func Tokenize(source string) ([]Token, error) {
	s := NewScanner(source)
	var tokens []Token
	for {
		tok, err := s.Next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == KindEOF {
			return tokens, nil
		}
	}
}

// Next returns the next token from the source.
func (s *Scanner) Next() (Token, error) {
	for s.cursor < len(s.source) {
		ch := s.source[s.cursor]

		if isSpace(ch) {
			s.skipWhitespace()
			continue
		}

		// Full-line comment.
		if ch == '#' {
			s.skipComment()
			continue
		}

		if isDigit(ch) || (ch == '.' && isDigit(s.peek())) {
			return s.scanNumber(), nil
		}

		if ch == '"' {
			return s.scanString()
		}

		if isAlpha(ch) || ch == '_' {
			return s.scanIdentifier(), nil
		}

		line, column := s.line, s.column
		s.advance()
		switch ch {
		case '(':
			return Token{Kind: KindLParen, Text: "(", Line: line, Column: column}, nil
		case ')':
			return Token{Kind: KindRParen, Text: ")", Line: line, Column: column}, nil
		case ',':
			return Token{Kind: KindComma, Text: ",", Line: line, Column: column}, nil
		}
		return Token{Kind: KindUnknown, Text: string(ch), Line: line, Column: column}, nil
	}

	return Token{Kind: KindEOF, Line: s.line, Column: s.column}, nil
}

// advance moves past the current character, tracking line and column.
func (s *Scanner) advance() {
	if s.source[s.cursor] == '\n' {
		s.line++
		s.column = 0
	} else {
		s.column++
	}
	s.cursor++
}

func (s *Scanner) peek() byte {
	if s.cursor+1 >= len(s.source) {
		return 0
	}
	return s.source[s.cursor+1]
}

func (s *Scanner) skipWhitespace() {
	for s.cursor < len(s.source) && isSpace(s.source[s.cursor]) {
		s.advance()
	}
}

// skipComment consumes through the end of the current line.
func (s *Scanner) skipComment() {
	for s.cursor < len(s.source) && s.source[s.cursor] != '\n' {
		s.advance()
	}
	if s.cursor < len(s.source) {
		s.advance() // the newline itself
	}
}

// scanNumber reads digits with at most one decimal point. A second dot
// terminates the token without being consumed.
func (s *Scanner) scanNumber() Token {
	line, column := s.line, s.column
	start := s.cursor
	dots := 0
	for s.cursor < len(s.source) {
		ch := s.source[s.cursor]
		if ch == '.' {
			dots++
			if dots > 1 {
				break
			}
		} else if !isDigit(ch) {
			break
		}
		s.advance()
	}
	return Token{Kind: KindNumber, Text: s.source[start:s.cursor], Line: line, Column: column}
}

// scanString reads a double-quoted literal. Recognizes \n and \t; any
// other escaped character is taken literally. Running out of input
// before the closing quote is the one hard lexical error.
func (s *Scanner) scanString() (Token, error) {
	line, column := s.line, s.column
	s.advance() // opening quote

	var b strings.Builder
	for s.cursor < len(s.source) && s.source[s.cursor] != '"' {
		ch := s.source[s.cursor]
		if ch == '\\' {
			s.advance()
			if s.cursor >= len(s.source) {
				return Token{}, s.errorf("unterminated string")
			}
			switch s.source[s.cursor] {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			default:
				b.WriteByte(s.source[s.cursor])
			}
		} else {
			b.WriteByte(ch)
		}
		s.advance()
	}

	if s.cursor >= len(s.source) {
		return Token{}, s.errorf("unterminated string")
	}
	s.advance() // closing quote
	return Token{Kind: KindString, Text: b.String(), Line: line, Column: column}, nil
}

// scanIdentifier reads an identifier and classifies it. Identifiers that
// are neither reserved words nor color names are still emitted as
// keywords; the parser rejects them if they lead a command.
func (s *Scanner) scanIdentifier() Token {
	line, column := s.line, s.column
	start := s.cursor
	for s.cursor < len(s.source) && (isAlpha(s.source[s.cursor]) || isDigit(s.source[s.cursor]) || s.source[s.cursor] == '_') {
		s.advance()
	}
	text := strings.ToLower(s.source[start:s.cursor])

	kind := KindKeyword
	if !keywords[text] && colorNames[text] {
		kind = KindColor
	}
	return Token{Kind: kind, Text: text, Line: line, Column: column}
}

func (s *Scanner) errorf(format string, args ...any) error {
	pos := fmt.Sprintf("line %d, column %d: ", s.line, s.column)
	return fmt.Errorf(pos+format, args...)
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' || ch == '\v' || ch == '\f'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isAlpha(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}
