// Package parser turns a token stream into an AST (spec §4.2). Parsing
// reads right to left: the grammar's operator precedence in J runs
// right-to-left, so rather than reversing the token stream up front, a
// Parser walks its token slice from the tail and calls the position
// pos, mirroring the value.Statement pattern this package is grounded
// on (prev/peek consuming from the end of a fixed slice).
package parser

import (
	"fmt"

	"github.com/aengebretson/tensorj/diag"
)

// Error is the parser's error taxonomy (spec §7: ParseError).
type Error struct {
	Code string // "UnexpectedToken" | "UnclosedParen" | "UnmatchedRightParen" | "MissingOperand" | "BadAssignmentTarget"
	Pos  diag.Location
	Msg  string
}

func (e *Error) Error() string { return e.Pos.String() + ": " + e.Msg }

// abort is the internal panic value a Parser raises to unwind out of a
// deeply recursive descent once a syntax error is found. Parse recovers
// it and returns the wrapped *Error; nothing outside this package ever
// observes the panic.
type abort struct{ err *Error }

func (p *Parser) errorf(code string, pos diag.Location, format string, args ...interface{}) {
	panic(abort{&Error{Code: code, Pos: pos, Msg: fmt.Sprintf(format, args...)}})
}
