package lexer

import (
	"testing"

	"github.com/aengebretson/tensorj/token"
)

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func TestTokenizeBasicVerb(t *testing.T) {
	toks, diags := Tokenize("t", "2 + 2")
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	got := kinds(toks)
	want := []token.Kind{token.IntLit, token.Verb, token.IntLit, token.Eof}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestTokenizeReduceNoSpace(t *testing.T) {
	// "<./" must split as Verb("<") then Adverb("./"), never as a
	// 2-char "<." glyph swallowing the dot.
	toks, diags := Tokenize("t", "<./ 5 2 8")
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if toks[0].Kind != token.Verb || toks[0].Lexeme != "<" {
		t.Fatalf("toks[0] = %v, want Verb(<)", toks[0])
	}
	if toks[1].Kind != token.Adverb || toks[1].Lexeme != "./" {
		t.Fatalf("toks[1] = %v, want Adverb(./)", toks[1])
	}
}

func TestTokenizeControlWordIota(t *testing.T) {
	toks, _ := Tokenize("t", "i. 5")
	if toks[0].Kind != token.Verb || toks[0].Lexeme != "i." {
		t.Fatalf("toks[0] = %v, want Verb(i.)", toks[0])
	}
}

func TestTokenizeNegativeAndFloat(t *testing.T) {
	toks, _ := Tokenize("t", "_3 2.5")
	if toks[0].Kind != token.IntLit || toks[0].Literal.(int64) != -3 {
		t.Fatalf("toks[0] = %v, want IntLit(-3)", toks[0])
	}
	if toks[1].Kind != token.FloatLit || toks[1].Literal.(float64) != 2.5 {
		t.Fatalf("toks[1] = %v, want FloatLit(2.5)", toks[1])
	}
}

func TestTokenizeAssignForms(t *testing.T) {
	toks, _ := Tokenize("t", "x =. 1")
	if toks[1].Kind != token.AssignLocal {
		t.Fatalf("toks[1] = %v, want AssignLocal", toks[1])
	}
	toks, _ = Tokenize("t", "x =: 1")
	if toks[1].Kind != token.AssignGlobal {
		t.Fatalf("toks[1] = %v, want AssignGlobal", toks[1])
	}
}

func TestTokenizeString(t *testing.T) {
	toks, diags := Tokenize("t", "'it''s'")
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if toks[0].Kind != token.StringLit || toks[0].Literal.(string) != "it's" {
		t.Fatalf("toks[0] = %v, want StringLit(it's)", toks[0])
	}
}

func TestTokenizeUnterminatedString(t *testing.T) {
	_, diags := Tokenize("t", "'abc")
	if len(diags) != 1 || diags[0].Code != "UnterminatedString" {
		t.Fatalf("diags = %v, want one UnterminatedString", diags)
	}
}

func TestTokenizeUnknownCharacter(t *testing.T) {
	_, diags := Tokenize("t", "@")
	if len(diags) != 1 || diags[0].Code != "UnknownCharacter" {
		t.Fatalf("diags = %v, want one UnknownCharacter", diags)
	}
}

func TestTokenizeComment(t *testing.T) {
	toks, _ := Tokenize("t", "1 NB. comment\n2")
	var gotComment bool
	for _, tok := range toks {
		if tok.Kind == token.Comment {
			gotComment = true
		}
	}
	if !gotComment {
		t.Fatalf("expected a Comment token in %v", toks)
	}
}

func TestTokenizeFusedInnerProductGlyph(t *testing.T) {
	toks, _ := Tokenize("t", "+.*")
	if len(toks) != 2 || toks[0].Kind != token.Verb || toks[0].Lexeme != "+.*" {
		t.Fatalf("toks = %v, want single fused Verb(+.*)", toks)
	}
}
