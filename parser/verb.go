package parser

import (
	"github.com/aengebretson/tensorj/ast"
	"github.com/aengebretson/tensorj/token"
)

// parseVerbExpr consumes whatever verb-like expression sits immediately
// to the left of the cursor: a bare verb, a verb bound to a conjunction
// ("u . v"), an adverb-derived verb ("+/"), or a parenthesized group
// (a train, or a transparently-wrapped single expression). It never
// consumes a bare noun token; a parenthesized group that holds a noun
// expression is returned as it is, and the evaluator rejects it in the
// verb slot.
func (p *Parser) parseVerbExpr() ast.Node {
	tok := p.peek()
	switch tok.Kind {
	case token.RParen:
		p.advance()
		return p.parseParenGroup(tok)

	case token.Adverb:
		p.advance()
		base := p.parseVerbExpr()
		return &ast.AdverbApply{
			Location: base.Pos(),
			Verb:     base,
			Adverb:   &ast.Adverb{Location: tok.Pos, Glyph: tok.Lexeme},
		}

	case token.Verb:
		p.advance()
		v := &ast.Verb{Location: tok.Pos, Glyph: tok.Lexeme}
		if p.peek().Kind == token.Conjunction {
			conjTok := p.advance()
			leftTok := p.advance()
			if !leftTok.IsVerbLike() {
				p.errorf("MissingOperand", conjTok.Pos, "conjunction %q requires a verb to its left", conjTok.Lexeme)
			}
			left := &ast.Verb{Location: leftTok.Pos, Glyph: leftTok.Lexeme}
			return &ast.ConjunctionApply{
				Location:     left.Pos(),
				Left:         left,
				Conjunction:  &ast.Conjunction{Location: conjTok.Pos, Glyph: conjTok.Lexeme},
				RightOperand: v,
			}
		}
		return v

	case token.Conjunction:
		p.errorf("MissingOperand", tok.Pos, "conjunction %q missing its right operand", tok.Lexeme)
		panic("unreachable")

	default:
		p.errorf("UnexpectedToken", tok.Pos, "expected a verb expression, found %s", tok)
		panic("unreachable")
	}
}

// parseParenGroup handles a parenthesized group once its closing paren
// has already been consumed (closeTok). It locates the matching open
// paren by a backward bracket-count over the live token slice, then
// tries the inner tokens as a train (spec §4.2's "inside (), first try
// to parse as a train" rule) before falling back to an ordinary
// sub-expression. Both outcomes are transparent: a train of length 1
// unwraps to its sole verb-like node, and a non-train sub-expression
// returns whatever its own parse produced, with no wrapper.
func (p *Parser) parseParenGroup(closeTok token.Token) ast.Node {
	depth := 1
	idx := p.pos
	for idx > 0 {
		idx--
		switch p.toks[idx].Kind {
		case token.RParen:
			depth++
		case token.LParen:
			depth--
			if depth == 0 {
				goto found
			}
		}
	}
	p.errorf("UnclosedParen", closeTok.Pos, "unmatched )")
found:
	inner := p.toks[idx+1 : p.pos]
	p.pos = idx

	if len(inner) == 0 {
		p.errorf("MissingOperand", closeTok.Pos, "empty parentheses")
	}

	if items, ok := parseVerbSequence(inner); ok {
		if len(items) == 1 {
			return items[0]
		}
		return &ast.Train{Location: items[0].Pos(), Verbs: items}
	}

	sub := &Parser{toks: inner, pos: len(inner), file: p.file}
	result := sub.parseExpr()
	if sub.pos != 0 {
		p.errorf("UnexpectedToken", sub.peek().Pos, "unexpected token %s inside parentheses", sub.peek())
	}
	return result
}

// parseVerbSequence greedily classifies toks, left to right, as a run
// of verb-like components: a bare verb, a verb+adverb pair, a
// conjunction-bound pair, or a nested parenthesized component. It
// reports ok=false the moment it finds anything that cannot be part of
// a train (a noun, a name, an unmatched paren), letting the caller fall
// back to ordinary sub-expression parsing.
func parseVerbSequence(toks []token.Token) ([]ast.Node, bool) {
	var items []ast.Node
	i := 0
	for i < len(toks) {
		tok := toks[i]
		switch tok.Kind {
		case token.Verb:
			v := &ast.Verb{Location: tok.Pos, Glyph: tok.Lexeme}
			i++
			switch {
			case i < len(toks) && toks[i].Kind == token.Adverb:
				items = append(items, &ast.AdverbApply{
					Location: tok.Pos,
					Verb:     v,
					Adverb:   &ast.Adverb{Location: toks[i].Pos, Glyph: toks[i].Lexeme},
				})
				i++
			case i < len(toks) && toks[i].Kind == token.Conjunction:
				conjTok := toks[i]
				i++
				if i >= len(toks) || !toks[i].IsVerbLike() {
					return nil, false
				}
				v2 := &ast.Verb{Location: toks[i].Pos, Glyph: toks[i].Lexeme}
				i++
				items = append(items, &ast.ConjunctionApply{
					Location:     tok.Pos,
					Left:         v,
					Conjunction:  &ast.Conjunction{Location: conjTok.Pos, Glyph: conjTok.Lexeme},
					RightOperand: v2,
				})
			default:
				items = append(items, v)
			}

		case token.LParen:
			depth := 1
			j := i + 1
			for j < len(toks) && depth > 0 {
				switch toks[j].Kind {
				case token.LParen:
					depth++
				case token.RParen:
					depth--
				}
				j++
			}
			if depth != 0 {
				return nil, false
			}
			nested, ok := parseVerbSequence(toks[i+1 : j-1])
			if !ok {
				return nil, false
			}
			switch len(nested) {
			case 0:
				return nil, false
			case 1:
				items = append(items, nested[0])
			default:
				items = append(items, &ast.Train{Location: toks[i].Pos, Verbs: nested})
			}
			i = j

		default:
			return nil, false
		}
	}
	if len(items) == 0 {
		return nil, false
	}
	return items, true
}
