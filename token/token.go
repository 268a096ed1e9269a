// Package token defines the lexical vocabulary shared by the lexer and
// parser: token kinds, the Token record itself, and the primitive glyph
// table the lexer consults to classify J's overloaded punctuation.
package token

import (
	"fmt"

	"github.com/aengebretson/tensorj/diag"
)

// Kind identifies what a Token represents.
type Kind int

const (
	Eof Kind = iota
	Unknown

	IntLit
	FloatLit
	StringLit

	Verb
	Adverb
	Conjunction

	Name
	AssignLocal  // =.
	AssignGlobal // =:

	LParen
	RParen
	Newline

	Comment
	Whitespace
)

var kindNames = map[Kind]string{
	Eof:          "Eof",
	Unknown:      "Unknown",
	IntLit:       "IntLit",
	FloatLit:     "FloatLit",
	StringLit:    "StringLit",
	Verb:         "Verb",
	Adverb:       "Adverb",
	Conjunction:  "Conjunction",
	Name:         "Name",
	AssignLocal:  "AssignLocal",
	AssignGlobal: "AssignGlobal",
	LParen:       "LParen",
	RParen:       "RParen",
	Newline:      "Newline",
	Comment:      "Comment",
	Whitespace:   "Whitespace",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Token is a tagged record: kind, exact source substring, optional
// literal value, and the location it was scanned from.
type Token struct {
	Kind    Kind
	Lexeme  string
	Literal interface{} // int64, float64, or string; nil otherwise
	Pos     diag.Location
}

func (t Token) String() string {
	if len(t.Lexeme) > 16 {
		return fmt.Sprintf("%s %.16q...", t.Kind, t.Lexeme)
	}
	return fmt.Sprintf("%s %q", t.Kind, t.Lexeme)
}

// IsVerbLike reports whether a token can stand in the "verb" slot of a
// derived-verb expression: a bare verb, or anything the parser will have
// already folded into one (adverb/conjunction applications and trains are
// AST-level concerns, not token-level, so this only covers the token
// itself).
func (t Token) IsVerbLike() bool {
	return t.Kind == Verb
}
