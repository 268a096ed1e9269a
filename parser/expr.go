package parser

import (
	"github.com/aengebretson/tensorj/ast"
	"github.com/aengebretson/tensorj/token"
)

// parseExpr parses one full expression, reading right to left: first
// the rightmost operand, then repeatedly looking at what remains to its
// left to decide whether a verb-expression (possibly followed by a
// further left operand, making the application dyadic) or an assignment
// operator sits there.
func (p *Parser) parseExpr() ast.Node {
	right := p.parseOperand()
	for {
		tok := p.peek()
		switch tok.Kind {
		case token.Eof, token.LParen:
			return right

		case token.AssignLocal, token.AssignGlobal:
			p.advance()
			nameTok := p.advance()
			if nameTok.Kind != token.Name {
				p.errorf("BadAssignmentTarget", nameTok.Pos, "assignment target must be a name, found %s", nameTok)
			}
			return &ast.Assignment{
				Location: nameTok.Pos,
				Name:     nameTok.Lexeme,
				Expr:     right,
				IsGlobal: tok.Kind == token.AssignGlobal,
			}

		case token.Verb, token.Adverb, token.Conjunction, token.RParen:
			verb := p.parseVerbExpr()
			if p.atOperandStart() {
				left := p.parseOperand()
				right = &ast.DyadicApply{Location: verb.Pos(), Left: left, Verb: verb, Right: right}
			} else {
				right = &ast.MonadicApply{Location: verb.Pos(), Verb: verb, Right: right}
			}

		default:
			p.errorf("UnexpectedToken", tok.Pos, "unexpected token %s", tok)
		}
	}
}

// parseOperand parses a single primary atom, then collapses a run of
// two or more adjacent numeric literals into a VectorLiteral (spec
// §4.2's "vector literal collapsing" rule). Strings and names never
// join a run; "1 2 3" is one vector, while in "1 'a' 2" the string ends
// the run at "2" and, with no verb between the atoms, parseExpr then
// fails with UnexpectedToken.
func (p *Parser) parseOperand() ast.Node {
	first := p.parseElement()
	lit, isNum := first.(*ast.NounLiteral)
	if !isNum || !isNumericValue(lit.Value) {
		return first
	}
	elems := []*ast.NounLiteral{lit}
	for p.peek().Kind == token.IntLit || p.peek().Kind == token.FloatLit {
		elems = append(elems, p.parseElement().(*ast.NounLiteral))
	}
	if len(elems) == 1 {
		return elems[0]
	}
	for i, j := 0, len(elems)-1; i < j; i, j = i+1, j-1 {
		elems[i], elems[j] = elems[j], elems[i]
	}
	return &ast.VectorLiteral{Location: elems[0].Pos(), Elements: elems}
}

func isNumericValue(v interface{}) bool {
	switch v.(type) {
	case int64, float64:
		return true
	default:
		return false
	}
}

// parseElement parses exactly one primary atom: a literal, a name, or a
// parenthesized group.
func (p *Parser) parseElement() ast.Node {
	tok := p.advance()
	switch tok.Kind {
	case token.IntLit:
		return &ast.NounLiteral{Location: tok.Pos, Value: tok.Literal.(int64)}
	case token.FloatLit:
		return &ast.NounLiteral{Location: tok.Pos, Value: tok.Literal.(float64)}
	case token.StringLit:
		return &ast.NounLiteral{Location: tok.Pos, Value: tok.Literal.(string)}
	case token.Name:
		return &ast.Name{Location: tok.Pos, Ident: tok.Lexeme}
	case token.RParen:
		return p.parseParenGroup(tok)
	default:
		p.errorf("MissingOperand", tok.Pos, "expected operand, found %s", tok)
		panic("unreachable")
	}
}
