package array

// Cell extracts the i-th item along a's leading axis: a slice of shape
// a.Shape[1:] sharing no storage with a (kernels never mutate inputs, so
// a defensive copy here keeps that invariant cheap to maintain upstream).
func Cell(a Array, i int) Array {
	cellShape := a.Shape[1:]
	n := Product(cellShape)
	lo, hi := i*n, (i+1)*n
	switch a.DType {
	case Int64:
		out := make([]int64, n)
		copy(out, a.I[lo:hi])
		return FromInts(out, cellShape)
	case Float64:
		out := make([]float64, n)
		copy(out, a.F[lo:hi])
		return FromFloats(out, cellShape)
	default:
		out := make([]string, n)
		copy(out, a.S[lo:hi])
		return FromStrings(out, cellShape)
	}
}

// reduceIdentity gives the J-conventional identity element for an empty
// reduction of op, or reports that none exists.
func reduceIdentity(op string) (Array, bool) {
	switch op {
	case "+":
		return ScalarInt(0), true
	case "*":
		return ScalarInt(1), true
	default:
		return Array{}, false
	}
}

// reducers holds the fold function used per op by Reduce. "<" and ">"
// fold to the smaller/larger of each pair (spec §8: "<./ 5 2 8 -> 2"),
// not the 0/1 comparison DyadicOps["<"] returns for direct dyadic use.
var reducers = map[string]DyadicFn{
	"+": Add,
	"*": Mul,
	"<": Min,
	">": Max,
}

// Reduce implements the adverb "/" (insert/reduce): fold the verb named
// op between items along y's leading axis, producing a result of
// rank(y)-1. Supported ops are the associative set named in spec §4.3:
// "+ * < >".
func Reduce(op string, y Array) Array {
	fn, ok := reducers[op]
	if !ok {
		fail("TypeError", "%s/: reduction is not supported for this verb", op)
	}
	if y.Rank() == 0 {
		return y
	}
	n := y.Shape[0]
	if n == 0 {
		id, ok := reduceIdentity(op)
		if !ok {
			fail("EmptyReduce", "%s/: empty reduction has no identity element", op)
		}
		return id
	}
	acc := Cell(y, n-1)
	for i := n - 2; i >= 0; i-- {
		acc = fn(Cell(y, i), acc)
	}
	return acc
}
