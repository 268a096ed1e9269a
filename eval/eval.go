// Package eval walks the AST the parser produces and performs the
// computation, dispatching primitive verbs, adverbs, and conjunctions
// into the array package's kernels. It is the only stage that carries
// mutable state: a name environment threaded through recursive descent,
// mirroring robpike-ivy's Context/execution split but collapsed into a
// single map since this core has no user-defined operators or scopes.
package eval

import (
	"fmt"

	"github.com/aengebretson/tensorj/array"
	"github.com/aengebretson/tensorj/ast"
	"github.com/aengebretson/tensorj/diag"
)

// Error is the evaluator's error taxonomy (spec §7: EvalError).
type Error struct {
	Code string // "UnboundName" | "ShapeMismatch" | "RankError" | "DivisionByZero" | "EmptyReduce" | "TypeError" | "UnknownVerb" | "VerbNotNoun"
	Pos  diag.Location
	Msg  string
}

func (e *Error) Error() string { return e.Pos.String() + ": " + e.Msg }

// abort is the internal panic value raised by errorf and by kernel
// failures translated in invoke; EvalProgram recovers it.
type abort struct{ err *Error }

func errorf(code string, pos diag.Location, format string, args ...interface{}) {
	panic(abort{&Error{Code: code, Pos: pos, Msg: fmt.Sprintf(format, args...)}})
}

// invoke calls fn, translating any array.OpError it panics into an
// *Error located at loc — the AST node that triggered the call, which
// is the only place that knows where in the source the failing kernel
// was invoked from.
func invoke(loc diag.Location, fn func() array.Array) (result array.Array) {
	defer func() {
		if r := recover(); r != nil {
			if oe, ok := r.(array.OpError); ok {
				panic(abort{&Error{Code: oe.Code, Pos: loc, Msg: oe.Msg}})
			}
			panic(r)
		}
	}()
	return fn()
}

// Environment holds name bindings. Spec §4.4 gives =. and =: the same
// scope in this single-pass evaluator, so there is exactly one table;
// IsGlobal on an *ast.Assignment is recorded for fidelity but does not
// route to a different map.
type Environment struct {
	vars map[string]array.Array
}

func NewEnvironment() *Environment {
	return &Environment{vars: make(map[string]array.Array)}
}

func (e *Environment) Get(name string) (array.Array, bool) {
	v, ok := e.vars[name]
	return v, ok
}

func (e *Environment) Set(name string, v array.Array) {
	e.vars[name] = v
}

// EvalProgram evaluates every statement in prog against env in order,
// returning the value each one produced. A failing statement aborts the
// whole call: the spec requires no partial results within one
// expression, and since one invocation is ordinarily a single line,
// there is nothing meaningful to keep evaluating once an error surfaces.
func EvalProgram(prog *ast.Program, env *Environment) (results []array.Array, err *Error) {
	defer func() {
		if r := recover(); r != nil {
			ab, ok := r.(abort)
			if !ok {
				panic(r)
			}
			results, err = nil, ab.err
		}
	}()
	for _, stmt := range prog.Statements {
		results = append(results, Eval(stmt, env))
	}
	return results, nil
}

// Eval evaluates a single AST node to a noun value. It panics (abort)
// on any EvalError condition and does not recover it itself; callers
// that are not already inside EvalProgram's recover frame must add one
// of their own.
func Eval(n ast.Node, env *Environment) array.Array {
	switch v := n.(type) {
	case *ast.NounLiteral:
		return literalArray(v)

	case *ast.VectorLiteral:
		return vectorArray(v)

	case *ast.Name:
		val, ok := env.Get(v.Ident)
		if !ok {
			errorf("UnboundName", v.Location, "undefined name: %s", v.Ident)
		}
		return val

	case *ast.Assignment:
		val := Eval(v.Expr, env)
		env.Set(v.Name, val)
		return val

	case *ast.MonadicApply:
		right := Eval(v.Right, env)
		return applyMonadic(v.Verb, right, env, v.Location)

	case *ast.DyadicApply:
		left := Eval(v.Left, env)
		right := Eval(v.Right, env)
		return applyDyadic(v.Verb, left, right, env, v.Location)

	case *ast.Verb, *ast.Adverb, *ast.Conjunction, *ast.AdverbApply, *ast.ConjunctionApply, *ast.Train:
		errorf("VerbNotNoun", n.Pos(), "a verb expression was used where a value was expected")

	default:
		errorf("TypeError", n.Pos(), "cannot evaluate %T", n)
	}
	panic("unreachable")
}

func literalArray(n *ast.NounLiteral) array.Array {
	switch val := n.Value.(type) {
	case int64:
		return array.ScalarInt(val)
	case float64:
		return array.ScalarFloat(val)
	default:
		return array.ScalarString(val.(string))
	}
}

// vectorArray builds a rank-1 array from a VectorLiteral's elements,
// promoting to Float64 if any element is a float (spec §5 promotion
// rule applied at construction time rather than deferred to first use).
func vectorArray(n *ast.VectorLiteral) array.Array {
	forceFloat := false
	for _, el := range n.Elements {
		if _, ok := el.Value.(float64); ok {
			forceFloat = true
		}
	}
	if forceFloat {
		out := make([]float64, len(n.Elements))
		for i, el := range n.Elements {
			switch val := el.Value.(type) {
			case float64:
				out[i] = val
			case int64:
				out[i] = float64(val)
			}
		}
		return array.FromFloats(out, []int{len(out)})
	}
	out := make([]int64, len(n.Elements))
	for i, el := range n.Elements {
		out[i] = el.Value.(int64)
	}
	return array.FromInts(out, []int{len(out)})
}
