package eval

import (
	"github.com/aengebretson/tensorj/array"
	"github.com/aengebretson/tensorj/ast"
	"github.com/aengebretson/tensorj/diag"
)

// applyMonadic resolves verbNode to a callable and applies it to y. loc
// is the location to attach to a kernel failure; it is the application
// site, not verbNode's own position, so diagnostics point at the call
// rather than the glyph's definition.
func applyMonadic(verbNode ast.Node, y array.Array, env *Environment, loc diag.Location) array.Array {
	switch v := verbNode.(type) {
	case *ast.Verb:
		fn, ok := array.MonadicOps[v.Glyph]
		if !ok {
			errorf("UnknownVerb", v.Location, "%s: no monadic definition", v.Glyph)
		}
		return invoke(loc, func() array.Array { return fn(y) })

	case *ast.AdverbApply:
		return applyAdverbMonadic(v, y, env, loc)

	case *ast.ConjunctionApply:
		errorf("TypeError", v.Location, "%s%s%s: conjunction expressions have no monadic form",
			glyphOf(v.Left), v.Conjunction.Glyph, glyphOf(v.RightOperand))

	case *ast.Train:
		return evalTrainMonadic(v.Verbs, y, env, loc)

	default:
		errorf("TypeError", verbNode.Pos(), "value used as a verb")
	}
	panic("unreachable")
}

// applyDyadic is applyMonadic's dyadic counterpart.
func applyDyadic(verbNode ast.Node, x, y array.Array, env *Environment, loc diag.Location) array.Array {
	switch v := verbNode.(type) {
	case *ast.Verb:
		fn, ok := array.DyadicOps[v.Glyph]
		if !ok {
			errorf("UnknownVerb", v.Location, "%s: no dyadic definition", v.Glyph)
		}
		return invoke(loc, func() array.Array { return fn(x, y) })

	case *ast.AdverbApply:
		errorf("TypeError", v.Location, "%s%s: adverb-derived verbs have no dyadic form",
			glyphOf(v.Verb), v.Adverb.Glyph)

	case *ast.ConjunctionApply:
		u, uOK := v.Left.(*ast.Verb)
		vb, vOK := v.RightOperand.(*ast.Verb)
		if !uOK || !vOK {
			errorf("TypeError", v.Location, "inner product requires two bare verb operands")
		}
		return invoke(loc, func() array.Array { return array.InnerProduct(u.Glyph, vb.Glyph, x, y) })

	case *ast.Train:
		return evalTrainDyadic(v.Verbs, x, y, env, loc)

	default:
		errorf("TypeError", verbNode.Pos(), "value used as a verb")
	}
	panic("unreachable")
}

// applyAdverbMonadic dispatches the two adverb families spec §4.3
// names. "/" and "./" are reduce, folding v.Verb's dyadic kernel along
// y's leading axis; v.Verb must be a bare primitive verb, since
// array.Reduce dispatches by glyph. "\\" and ".\\" (prefix scan) are
// lexically recognized but have no kernel in this core.
func applyAdverbMonadic(v *ast.AdverbApply, y array.Array, env *Environment, loc diag.Location) array.Array {
	switch v.Adverb.Glyph {
	case "/", "./":
		base, ok := v.Verb.(*ast.Verb)
		if !ok {
			errorf("TypeError", v.Location, "reduce requires a bare verb, found %s", describe(v.Verb))
		}
		return invoke(loc, func() array.Array { return array.Reduce(base.Glyph, y) })
	default:
		errorf("TypeError", v.Location, "%s: scan adverbs are not implemented", v.Adverb.Glyph)
		panic("unreachable")
	}
}

// evalTrainMonadic applies a train to a single argument. A length-1
// train degenerates to its sole verb. A length-2 train is a hook:
// (f g) y = y f (g y). A length-3-or-more train is a fork, reduced
// right-associatively: (f g ...rest) y = (f y) g (rest y).
func evalTrainMonadic(items []ast.Node, y array.Array, env *Environment, loc diag.Location) array.Array {
	switch len(items) {
	case 1:
		return applyMonadic(items[0], y, env, loc)
	case 2:
		gy := applyMonadic(items[1], y, env, loc)
		return applyDyadic(items[0], y, gy, env, loc)
	default:
		fy := applyMonadic(items[0], y, env, loc)
		hy := evalTrainMonadic(items[2:], y, env, loc)
		return applyDyadic(items[1], fy, hy, env, loc)
	}
}

// evalTrainDyadic is evalTrainMonadic's dyadic counterpart: a length-2
// hook is x (f g) y = x f (g y); a fork is x (f g ...rest) y =
// (x f y) g (x rest y).
func evalTrainDyadic(items []ast.Node, x, y array.Array, env *Environment, loc diag.Location) array.Array {
	switch len(items) {
	case 1:
		return applyDyadic(items[0], x, y, env, loc)
	case 2:
		gy := applyMonadic(items[1], y, env, loc)
		return applyDyadic(items[0], x, gy, env, loc)
	default:
		fxy := applyDyadic(items[0], x, y, env, loc)
		hxy := evalTrainDyadic(items[2:], x, y, env, loc)
		return applyDyadic(items[1], fxy, hxy, env, loc)
	}
}

func glyphOf(n ast.Node) string {
	if v, ok := n.(*ast.Verb); ok {
		return v.Glyph
	}
	return "?"
}

func describe(n ast.Node) string {
	switch n.(type) {
	case *ast.Verb:
		return "a bare verb"
	case *ast.AdverbApply:
		return "an adverb-derived verb"
	case *ast.ConjunctionApply:
		return "a conjunction-derived verb"
	case *ast.Train:
		return "a train"
	default:
		return "a value"
	}
}
