package eval

import (
	"testing"

	"github.com/aengebretson/tensorj/array"
	"github.com/aengebretson/tensorj/lexer"
	"github.com/aengebretson/tensorj/parser"
)

func run(t *testing.T, src string) array.Array {
	t.Helper()
	toks, diags := lexer.Tokenize("t", src)
	if len(diags) != 0 {
		t.Fatalf("lex errors for %q: %v", src, diags)
	}
	prog, perr := parser.Parse("t", toks)
	if perr != nil {
		t.Fatalf("parse error for %q: %v", src, perr)
	}
	env := NewEnvironment()
	results, eerr := EvalProgram(prog, env)
	if eerr != nil {
		t.Fatalf("eval error for %q: %v", src, eerr)
	}
	if len(results) != 1 {
		t.Fatalf("got %d results for %q, want 1", len(results), src)
	}
	return results[0]
}

func TestEndToEndScenarios(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"2 + 2", "4"},
		{"i. 5", "0 1 2 3 4"},
		{"+/ i. 5", "10"},
		{"*/ 1 2 3 4", "24"},
		{"1 2 3 + 4 5 6", "5 7 9"},
		{"(+/ % #) 1 2 3 4", "2.5"},
		{"<./ 5 2 8", "2"},
		{"2 * 3 + 4", "14"},
	}
	for _, c := range cases {
		got := run(t, c.src).Format()
		if got != c.want {
			t.Errorf("%s => %q, want %q", c.src, got, c.want)
		}
	}
}

func TestAssignmentPersistsAcrossStatements(t *testing.T) {
	toks, _ := lexer.Tokenize("t", "x =: 1 2 3\nx + 1")
	prog, err := parser.Parse("t", toks)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	env := NewEnvironment()
	results, eerr := EvalProgram(prog, env)
	if eerr != nil {
		t.Fatalf("eval error: %v", eerr)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if got := results[1].Format(); got != "2 3 4" {
		t.Fatalf("got %q, want \"2 3 4\"", got)
	}
}

func TestUnboundNameFails(t *testing.T) {
	toks, _ := lexer.Tokenize("t", "y + 1")
	prog, _ := parser.Parse("t", toks)
	_, err := EvalProgram(prog, NewEnvironment())
	if err == nil || err.Code != "UnboundName" {
		t.Fatalf("err = %v, want UnboundName", err)
	}
}

func TestDivisionByZeroFails(t *testing.T) {
	toks, _ := lexer.Tokenize("t", "1 % 0")
	prog, _ := parser.Parse("t", toks)
	_, err := EvalProgram(prog, NewEnvironment())
	if err == nil || err.Code != "DivisionByZero" {
		t.Fatalf("err = %v, want DivisionByZero", err)
	}
}

func TestVerbUsedAsValueFails(t *testing.T) {
	// A bare "+" has no right operand, so the parser itself rejects it
	// (MissingOperand) before eval ever sees it. "(+/)" parses cleanly to
	// a lone AdverbApply statement root with nothing applying it, which
	// is what actually reaches eval's VerbNotNoun case.
	toks, _ := lexer.Tokenize("t", "(+/)")
	prog, perr := parser.Parse("t", toks)
	if perr != nil {
		t.Fatalf("parse error: %v", perr)
	}
	_, err := EvalProgram(prog, NewEnvironment())
	if err == nil || err.Code != "VerbNotNoun" {
		t.Fatalf("err = %v, want VerbNotNoun", err)
	}
}

func TestBareVerbFailsToParse(t *testing.T) {
	toks, _ := lexer.Tokenize("t", "+")
	_, err := parser.Parse("t", toks)
	if err == nil || err.Code != "MissingOperand" {
		t.Fatalf("err = %v, want MissingOperand", err)
	}
}

func TestHookMonadic(t *testing.T) {
	// (- %) y = y - (% y) = y - 1/y
	got := run(t, "(- %) 2")
	if got.Format() != "1.5" {
		t.Fatalf("got %q, want 1.5", got.Format())
	}
}
