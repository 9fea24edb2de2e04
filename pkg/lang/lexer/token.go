package lexer

// Kind classifies a lexical unit.
type Kind uint8

const (
	KindEOF Kind = iota
	KindKeyword
	KindNumber
	KindString
	KindColor
	KindLParen // (
	KindRParen // )
	KindComma  // ,
	KindUnknown
)

func (k Kind) String() string {
	switch k {
	case KindEOF:
		return "EOF"
	case KindKeyword:
		return "KEYWORD"
	case KindNumber:
		return "NUMBER"
	case KindString:
		return "STRING"
	case KindColor:
		return "COLOR"
	case KindLParen:
		return "LPAREN"
	case KindRParen:
		return "RPAREN"
	case KindComma:
		return "COMMA"
	case KindUnknown:
		return "UNKNOWN"
	}
	return "INVALID"
}

// Token is a classified lexical unit pointing back to its source position.
// Line counts from 1, Column from 0. Immutable once produced.
type Token struct {
	Kind   Kind
	Text   string
	Line   int
	Column int
}
