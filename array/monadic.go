package array

// MonadicFn is the shape of every monadic verb kernel.
type MonadicFn func(a Array) Array

// MonadicOps is the primitive registry's monadic half: glyph -> kernel.
var MonadicOps = map[string]MonadicFn{
	"-":  Negate,
	"*:": Square,
	"%":  Reciprocal,
	"i.": IotaOf,
	"$":  ShapeOf,
	"#":  TallyOf,
}

// Negate is monadic "-": elementwise arithmetic negation.
func Negate(a Array) Array {
	requireNumeric("-", a)
	if a.DType == Float64 {
		out := make([]float64, a.Len())
		for i, v := range a.F {
			out[i] = -v
		}
		return FromFloats(out, a.Shape)
	}
	out := make([]int64, a.Len())
	for i, v := range a.I {
		out[i] = -v
	}
	return FromInts(out, a.Shape)
}

// Square is monadic "*:": elementwise x*x.
func Square(a Array) Array {
	requireNumeric("*:", a)
	if a.DType == Float64 {
		out := make([]float64, a.Len())
		for i, v := range a.F {
			out[i] = v * v
		}
		return FromFloats(out, a.Shape)
	}
	out := make([]int64, a.Len())
	for i, v := range a.I {
		out[i] = v * v
	}
	return FromInts(out, a.Shape)
}

// Reciprocal is monadic "%": elementwise 1/x, always Float64. Any zero
// element fails with DivisionByZero.
func Reciprocal(a Array) Array {
	requireNumeric("%", a)
	src := flatFloats(a)
	out := make([]float64, len(src))
	for i, v := range src {
		if v == 0 {
			fail("DivisionByZero", "reciprocal of zero")
		}
		out[i] = 1 / v
	}
	return FromFloats(out, a.Shape)
}

// IotaOf is monadic "i.": requires a rank-0 Int64 argument n and
// returns [0, ..., n-1].
func IotaOf(a Array) Array {
	if a.DType != Int64 || a.Rank() != 0 {
		fail("RankError", "i.: argument must be a scalar integer")
	}
	return Iota(a.I[0])
}

// ShapeOf is monadic "$": the argument's shape as a rank-1 Int64 vector.
func ShapeOf(a Array) Array { return Shape(a) }

// TallyOf is monadic "#": size of the leading axis (1 for scalars).
func TallyOf(a Array) Array { return Tally(a) }
