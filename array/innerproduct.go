package array

// elemAt returns the scalar at a's flat index i, regardless of rank.
func elemAt(a Array, i int) Array {
	switch a.DType {
	case Int64:
		return ScalarInt(a.I[i])
	case Float64:
		return ScalarFloat(a.F[i])
	default:
		return ScalarString(a.S[i])
	}
}

// stackScalars assembles a rank-1 array from scalar results, promoting
// to Float64 if any element is Float64.
func stackScalars(elems []Array) Array {
	n := len(elems)
	forceFloat := false
	for _, e := range elems {
		if e.DType == Float64 {
			forceFloat = true
		}
	}
	if forceFloat {
		out := make([]float64, n)
		for i, e := range elems {
			out[i] = floatAt(e, 0)
		}
		return FromFloats(out, []int{n})
	}
	out := make([]int64, n)
	for i, e := range elems {
		out[i] = intAt(e, 0)
	}
	return FromInts(out, []int{n})
}

// InnerProduct implements the conjunction "." : x (u . v) y applies v
// elementwise between aligned cells of x and y, then reduces with u
// along the inner axis. Per spec §4.3, this core supports only the
// vector dot-product case (both operands rank 1, equal length) and the
// rank-2/rank-2 matrix-multiply case.
func InnerProduct(uGlyph, vGlyph string, x, y Array) Array {
	vFn, ok := DyadicOps[vGlyph]
	if !ok {
		fail("UnknownVerb", "%s: not a verb", vGlyph)
	}

	switch {
	case x.Rank() == 1 && y.Rank() == 1:
		if x.Len() != y.Len() {
			fail("ShapeMismatch", "%s.%s: lengths %d and %d disagree", uGlyph, vGlyph, x.Len(), y.Len())
		}
		n := x.Len()
		prods := make([]Array, n)
		for i := 0; i < n; i++ {
			prods[i] = vFn(elemAt(x, i), elemAt(y, i))
		}
		return Reduce(uGlyph, stackScalars(prods))

	case x.Rank() == 2 && y.Rank() == 2:
		rows, mid, cols := x.Shape[0], x.Shape[1], y.Shape[1]
		if x.Shape[1] != y.Shape[0] {
			fail("ShapeMismatch", "%s.%s: inner dimensions %d and %d disagree", uGlyph, vGlyph, x.Shape[1], y.Shape[0])
		}
		cells := make([]Array, rows*cols)
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				prods := make([]Array, mid)
				for k := 0; k < mid; k++ {
					prods[k] = vFn(elemAt(x, i*mid+k), elemAt(y, k*cols+j))
				}
				cells[i*cols+j] = Reduce(uGlyph, stackScalars(prods))
			}
		}
		flat := stackScalars(cells)
		flat.Shape = []int{rows, cols}
		return flat

	default:
		fail("RankError", "%s.%s: operands must both be rank 1 (dot product) or rank 2 (matrix product)", uGlyph, vGlyph)
		return Array{} // unreachable
	}
}
