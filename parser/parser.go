package parser

import (
	"github.com/aengebretson/tensorj/ast"
	"github.com/aengebretson/tensorj/diag"
	"github.com/aengebretson/tensorj/token"
)

// Parser holds one statement's worth of tokens and a cursor that walks
// them from the tail. toks is never mutated; pos counts how many
// leading tokens (toks[0:pos]) remain unconsumed.
type Parser struct {
	toks []token.Token
	pos  int
	file string
}

// Parse splits src's already-scanned tokens into statements at Newline
// boundaries, strips Comment and interior Newline tokens (spec §4.2),
// and parses each surviving statement independently. Parse stops at the
// first syntax error and returns it with a nil Program; statements after
// the failing one are not parsed.
func Parse(file string, toks []token.Token) (*ast.Program, *Error) {
	statements := splitStatements(toks)
	prog := &ast.Program{}
	for _, stmt := range statements {
		if len(stmt) == 0 {
			continue
		}
		node, err := parseOne(file, stmt)
		if err != nil {
			return nil, err
		}
		prog.Statements = append(prog.Statements, node)
	}
	return prog, nil
}

// splitStatements breaks toks at Newline boundaries, dropping Comment
// and Newline tokens themselves and the trailing Eof.
func splitStatements(toks []token.Token) [][]token.Token {
	var out [][]token.Token
	var cur []token.Token
	for _, t := range toks {
		switch t.Kind {
		case token.Comment:
			continue
		case token.Newline:
			out = append(out, cur)
			cur = nil
		case token.Eof:
			if len(cur) > 0 {
				out = append(out, cur)
			}
			cur = nil
		default:
			cur = append(cur, t)
		}
	}
	if len(cur) > 0 {
		out = append(out, cur)
	}
	return out
}

func parseOne(file string, stmt []token.Token) (node ast.Node, err *Error) {
	p := &Parser{toks: stmt, pos: len(stmt), file: file}
	defer func() {
		if r := recover(); r != nil {
			ab, ok := r.(abort)
			if !ok {
				panic(r)
			}
			err = ab.err
		}
	}()
	node = p.parseExpr()
	if p.pos != 0 {
		p.errorf("UnexpectedToken", p.peek().Pos, "unexpected token %s", p.peek())
	}
	return node, nil
}

// eofToken is returned by peek/advance once every token has been
// consumed; its Kind never matches a case a caller branches on except
// the explicit end-of-input checks.
func (p *Parser) eofToken() token.Token {
	pos := diag.Location{File: p.file}
	if len(p.toks) > 0 {
		pos = p.toks[len(p.toks)-1].Pos
	}
	return token.Token{Kind: token.Eof, Pos: pos}
}

// peek returns the rightmost unconsumed token without consuming it.
func (p *Parser) peek() token.Token {
	if p.pos == 0 {
		return p.eofToken()
	}
	return p.toks[p.pos-1]
}

// advance consumes and returns the rightmost unconsumed token.
func (p *Parser) advance() token.Token {
	tok := p.peek()
	if p.pos > 0 {
		p.pos--
	}
	return tok
}

// atOperandStart reports whether the rightmost unconsumed token can
// begin a noun-producing operand: a literal, a name, or a parenthesized
// group. Used by parseExpr to decide monadic vs. dyadic application.
func (p *Parser) atOperandStart() bool {
	switch p.peek().Kind {
	case token.IntLit, token.FloatLit, token.StringLit, token.Name, token.RParen:
		return true
	default:
		return false
	}
}
