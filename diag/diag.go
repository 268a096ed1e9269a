// Package diag holds the source-location type shared by the lexer,
// parser, and evaluator. Each stage defines its own closed error type
// (LexError, ParseError, EvalError) but all three carry one of these.
package diag

import "fmt"

// Location is a (file, line, column) triple attached to every token and
// AST node. It exists for diagnostics only; no pipeline stage branches on
// it.
type Location struct {
	File   string
	Line   int // 1-based
	Column int // 1-based
}

func (l Location) String() string {
	if l.File == "" {
		return fmt.Sprintf("%d:%d", l.Line, l.Column)
	}
	return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
}
