// Package ast defines the syntax-tree node types the parser produces and
// the evaluator walks. It is a closed sum type: every variant implements
// Node, and the unexported node() method keeps the set closed to this
// package so a switch over Node can be exhaustive by inspection.
//
// Ownership is tree-shaped by construction: a parent struct holds its
// children as plain fields (no shared pointers, no back-references), so
// an AST is reclaimed by the garbage collector as soon as nothing above
// it references the root.
package ast

import "github.com/aengebretson/tensorj/diag"

// Node is any syntax-tree element. All nodes carry a source location for
// diagnostics; nothing in the parser or evaluator branches on it.
type Node interface {
	Pos() diag.Location
	node()
}

// NounLiteral is a single scalar: an IntLit, FloatLit, or StringLit
// token collapsed into a value.
type NounLiteral struct {
	Location diag.Location
	Value    interface{} // int64, float64, or string
}

func (n *NounLiteral) Pos() diag.Location { return n.Location }
func (*NounLiteral) node()                {}

// VectorLiteral is a run of two or more numeric literals formed by
// whitespace-separated adjacency, e.g. "1 2 3".
type VectorLiteral struct {
	Location diag.Location
	Elements []*NounLiteral
}

func (n *VectorLiteral) Pos() diag.Location { return n.Location }
func (*VectorLiteral) node()                {}

// Name is a variable reference.
type Name struct {
	Location diag.Location
	Ident    string
}

func (n *Name) Pos() diag.Location { return n.Location }
func (*Name) node()                {}

// Verb is a reference to a primitive verb glyph, e.g. "+" or "<:".
type Verb struct {
	Location diag.Location
	Glyph    string
}

func (n *Verb) Pos() diag.Location { return n.Location }
func (*Verb) node()                {}

// Adverb is a reference to a primitive adverb glyph, e.g. "/".
type Adverb struct {
	Location diag.Location
	Glyph    string
}

func (n *Adverb) Pos() diag.Location { return n.Location }
func (*Adverb) node()                {}

// Conjunction is a reference to a primitive conjunction glyph, e.g. "^:"
// or ".".
type Conjunction struct {
	Location diag.Location
	Glyph    string
}

func (n *Conjunction) Pos() diag.Location { return n.Location }
func (*Conjunction) node()                {}

// MonadicApply applies a verb-like expression to a single right argument.
type MonadicApply struct {
	Location diag.Location
	Verb     Node
	Right    Node
}

func (n *MonadicApply) Pos() diag.Location { return n.Location }
func (*MonadicApply) node()                {}

// DyadicApply applies a verb-like expression between a left and right
// argument.
type DyadicApply struct {
	Location diag.Location
	Left     Node
	Verb     Node
	Right    Node
}

func (n *DyadicApply) Pos() diag.Location { return n.Location }
func (*DyadicApply) node()                {}

// AdverbApply binds an adverb to a verb-like expression, forming a
// derived verb (e.g. "+/").
type AdverbApply struct {
	Location diag.Location
	Verb     Node
	Adverb   *Adverb
}

func (n *AdverbApply) Pos() diag.Location { return n.Location }
func (*AdverbApply) node()                {}

// ConjunctionApply binds a conjunction between two verb-like operands,
// forming a derived verb (e.g. "+ . *"). The parser builds one only from
// two bare verb tokens around the conjunction; a conjunction missing an
// operand is a parse error, so RightOperand is never nil.
type ConjunctionApply struct {
	Location     diag.Location
	Left         Node
	Conjunction  *Conjunction
	RightOperand Node
}

func (n *ConjunctionApply) Pos() diag.Location { return n.Location }
func (*ConjunctionApply) node()                {}

// Train is a parenthesized sequence of verb-like expressions forming a
// hook (length 2) or fork (length 3+, reduced right-associatively).
type Train struct {
	Location diag.Location
	Verbs    []Node
}

func (n *Train) Pos() diag.Location { return n.Location }
func (*Train) node()                {}

// Assignment binds the value of Expr to Name, either locally (=.) or
// globally (=:). Both forms share one scope in this evaluator (spec
// §4.4), so IsGlobal is recorded but does not change lookup behavior.
type Assignment struct {
	Location diag.Location
	Name     string
	Expr     Node
	IsGlobal bool
}

func (n *Assignment) Pos() diag.Location { return n.Location }
func (*Assignment) node()                {}

// Program is the root produced by one call to Parse: the source is split
// into statements at newline boundaries (spec §4.2), and each survives
// as one independently-evaluable Node.
type Program struct {
	Statements []Node
}
