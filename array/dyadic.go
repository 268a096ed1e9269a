package array

import "math"

// DyadicFn is the shape of every dyadic verb kernel. Kernels panic
// (OpError) rather than return an error, following the same shape as
// their monadic counterparts; the evaluator recovers at the call site
// where it has the AST location to attach.
type DyadicFn func(a, b Array) Array

// DyadicOps is the primitive registry's dyadic half: glyph -> kernel.
var DyadicOps = map[string]DyadicFn{
	"+":  Add,
	"-":  Sub,
	"*":  Mul,
	"%":  Div,
	"^":  Pow,
	"=":  Eq,
	"<":  Lt,
	">":  Gt,
	"<:": Le,
	">:": Ge,
	",":  Append,
	"$":  Reshape,
}

// PlusDot is the fused glyph "+.*": sum-of-products between paired
// elements, equivalent to InnerProduct("+", "*", a, b) (so only the
// rank-1/rank-1 and rank-2/rank-2 cases are accepted) but registered
// directly so it dispatches through DyadicOps like
// any other verb rather than through the general conjunction path.
func PlusDot(a, b Array) Array {
	return InnerProduct("+", "*", a, b)
}

func init() {
	DyadicOps["+.*"] = PlusDot
}

// elementwiseNumeric applies intFn/floatFn elementwise under scalar
// agreement, promoting to Float64 if either operand is Float64 or if
// forceFloat is set (spec: "%" and "^" always yield Float64).
func elementwiseNumeric(name string, a, b Array, intFn func(x, y int64) int64, floatFn func(x, y float64) float64, forceFloat bool) Array {
	requireNumeric(name, a, b)
	shape := agree(a, b)
	n := Product(shape)
	if forceFloat || a.DType == Float64 || b.DType == Float64 {
		out := make([]float64, n)
		for i := 0; i < n; i++ {
			out[i] = floatFn(floatAt(a, i), floatAt(b, i))
		}
		return FromFloats(out, shape)
	}
	out := make([]int64, n)
	for i := 0; i < n; i++ {
		out[i] = intFn(intAt(a, i), intAt(b, i))
	}
	return FromInts(out, shape)
}

// comparison applies cmp elementwise under scalar agreement and returns
// an Int64 0/1 result (J's boolean representation).
func comparison(name string, a, b Array, cmp func(x, y float64) bool) Array {
	requireNumeric(name, a, b)
	shape := agree(a, b)
	n := Product(shape)
	out := make([]int64, n)
	for i := 0; i < n; i++ {
		if cmp(floatAt(a, i), floatAt(b, i)) {
			out[i] = 1
		}
	}
	return FromInts(out, shape)
}

func Add(a, b Array) Array {
	return elementwiseNumeric("+", a, b,
		func(x, y int64) int64 { return x + y },
		func(x, y float64) float64 { return x + y },
		false)
}

func Sub(a, b Array) Array {
	return elementwiseNumeric("-", a, b,
		func(x, y int64) int64 { return x - y },
		func(x, y float64) float64 { return x - y },
		false)
}

func Mul(a, b Array) Array {
	return elementwiseNumeric("*", a, b,
		func(x, y int64) int64 { return x * y },
		func(x, y float64) float64 { return x * y },
		false)
}

// Div is dyadic "%": divide, always Float64. Any zero divisor fails
// with DivisionByZero even in the broadcast case, matching the monadic
// reciprocal's behavior.
func Div(a, b Array) Array {
	requireNumeric("%", a, b)
	shape := agree(a, b)
	n := Product(shape)
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		divisor := floatAt(b, i)
		if divisor == 0 {
			fail("DivisionByZero", "division by zero")
		}
		out[i] = floatAt(a, i) / divisor
	}
	return FromFloats(out, shape)
}

func Pow(a, b Array) Array {
	return elementwiseNumeric("^", a, b, nil, math.Pow, true)
}

func Eq(a, b Array) Array { return comparison("=", a, b, func(x, y float64) bool { return x == y }) }
func Lt(a, b Array) Array { return comparison("<", a, b, func(x, y float64) bool { return x < y }) }
func Gt(a, b Array) Array { return comparison(">", a, b, func(x, y float64) bool { return x > y }) }
func Le(a, b Array) Array { return comparison("<:", a, b, func(x, y float64) bool { return x <= y }) }
func Ge(a, b Array) Array { return comparison(">:", a, b, func(x, y float64) bool { return x >= y }) }

// Min and Max are not primitive verbs on their own; they back the "<"
// and ">" reduction cases (spec §4.3, §8: "<./" folds to the smaller of
// each pair rather than a boolean). "<" and ">" applied directly stay
// comparisons; only Reduce reaches for these.
func Min(a, b Array) Array {
	return elementwiseNumeric("<./", a, b,
		func(x, y int64) int64 {
			if x < y {
				return x
			}
			return y
		},
		func(x, y float64) float64 {
			if x < y {
				return x
			}
			return y
		},
		false)
}

func Max(a, b Array) Array {
	return elementwiseNumeric(">./", a, b,
		func(x, y int64) int64 {
			if x > y {
				return x
			}
			return y
		},
		func(x, y float64) float64 {
			if x > y {
				return x
			}
			return y
		},
		false)
}

// Append ("," dyadic) concatenates the flattened data of a and b along
// the leading axis. A scalar contributes a leading dimension of 1.
func Append(a, b Array) Array {
	if a.DType == String || b.DType == String {
		if a.DType != b.DType {
			fail("TypeError", ",: cannot mix String with numeric operands")
		}
		return FromStrings(append(flatStrings(a), flatStrings(b)...), appendShape(a, b))
	}
	forceFloat := a.DType == Float64 || b.DType == Float64
	shape := appendShape(a, b)
	if forceFloat {
		return FromFloats(append(flatFloats(a), flatFloats(b)...), shape)
	}
	return FromInts(append(flatInts(a), flatInts(b)...), shape)
}

func leadDim(a Array) int {
	if a.Rank() == 0 {
		return 1
	}
	return a.Shape[0]
}

// appendShape computes the result shape for "," per spec §4.3: rank
// max(1, rank(a), rank(b)) with leading dim = sum of leading dims. Cell
// shapes beyond the leading axis are not validated against each other;
// this core only exercises the rank-0/rank-1 cases used by trains and
// reductions, so that simplification never hides a real mismatch.
func appendShape(a, b Array) []int {
	rank := 1
	if a.Rank() > rank {
		rank = a.Rank()
	}
	if b.Rank() > rank {
		rank = b.Rank()
	}
	shape := make([]int, rank)
	shape[0] = leadDim(a) + leadDim(b)
	for i := 1; i < rank; i++ {
		if i < a.Rank() {
			shape[i] = a.Shape[i]
		} else if i < b.Rank() {
			shape[i] = b.Shape[i]
		}
	}
	return shape
}

func flatInts(a Array) []int64 {
	out := make([]int64, a.Len())
	copy(out, a.I)
	return out
}

func flatFloats(a Array) []float64 {
	if a.DType == Float64 {
		out := make([]float64, a.Len())
		copy(out, a.F)
		return out
	}
	out := make([]float64, a.Len())
	for i := range a.I {
		out[i] = float64(a.I[i])
	}
	return out
}

func flatStrings(a Array) []string {
	out := make([]string, a.Len())
	copy(out, a.S)
	return out
}

// Reshape is dyadic "$": the left operand gives the new shape (a scalar
// or rank-1 Int64 array), the right operand's flattened data is cycled
// to fill it.
func Reshape(shapeArg, data Array) Array {
	if shapeArg.DType != Int64 {
		fail("TypeError", "$: shape operand must be integer")
	}
	var newShape []int
	if shapeArg.IsScalar() {
		newShape = []int{int(shapeArg.I[0])}
	} else if shapeArg.Rank() == 1 {
		newShape = make([]int, shapeArg.Len())
		for i, v := range shapeArg.I {
			newShape[i] = int(v)
		}
	} else {
		fail("RankError", "$: shape operand must be rank 0 or 1")
	}
	n := Product(newShape)
	switch data.DType {
	case String:
		src := flatStrings(data)
		out := cycle(src, n)
		return FromStrings(out, newShape)
	case Float64:
		src := flatFloats(data)
		out := cycle(src, n)
		return FromFloats(out, newShape)
	default:
		src := flatInts(data)
		out := cycle(src, n)
		return FromInts(out, newShape)
	}
}

func cycle[T any](src []T, n int) []T {
	out := make([]T, n)
	if len(src) == 0 {
		return out
	}
	for i := range out {
		out[i] = src[i%len(src)]
	}
	return out
}
