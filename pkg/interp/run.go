package interp

import (
	"github.com/drawlang/drawlang/pkg/lang/lexer"
	"github.com/drawlang/drawlang/pkg/lang/parser"
)

// RunProgram runs a whole source text through the pipeline: tokenize,
// drop the EOF sentinel, parse, then execute every command in order
// against a fresh interpreter. A lexical or syntax error aborts before
// anything is drawn; execution faults land in the per-command result
// lines instead.
func RunProgram(src string, surface Surface, width, height int) ([]string, error) {
	tokens, err := lexer.Tokenize(src)
	if err != nil {
		return nil, err
	}
	if n := len(tokens); n > 0 && tokens[n-1].Kind == lexer.KindEOF {
		tokens = tokens[:n-1]
	}

	cmds, err := parser.Parse(tokens)
	if err != nil {
		return nil, err
	}

	in := New(surface, width, height)
	results := make([]string, 0, len(cmds))
	for _, cmd := range cmds {
		results = append(results, in.Execute(cmd))
	}
	return results, nil
}
