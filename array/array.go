// Package array implements the sole runtime noun shape — a
// shape/dtype/flat-buffer tensor — and the primitive kernels that act on
// it. Kernels never mutate their inputs; every operation returns a fresh
// Array, so values can be freely shared between environment bindings.
package array

import "fmt"

// DType is the element type carried by an Array. This core supports
// only the three named in spec §3: bigint/bigrat/complex are an explicit
// non-goal.
type DType int

const (
	Int64 DType = iota
	Float64
	String
)

func (d DType) String() string {
	switch d {
	case Int64:
		return "Int64"
	case Float64:
		return "Float64"
	case String:
		return "String"
	default:
		return fmt.Sprintf("DType(%d)", int(d))
	}
}

// Array is the sole runtime noun shape. Exactly one of I, F, S holds
// data, selected by DType. Invariant: len(that slice) == Product(Shape).
type Array struct {
	Shape []int
	DType DType
	I     []int64
	F     []float64
	S     []string
}

// Product returns the product of a shape's dimensions; the empty product
// (rank 0) is 1.
func Product(shape []int) int {
	p := 1
	for _, d := range shape {
		p *= d
	}
	return p
}

// Rank is the number of dimensions; rank 0 is a scalar.
func (a Array) Rank() int { return len(a.Shape) }

// Len returns the number of elements, i.e. Product(a.Shape).
func (a Array) Len() int {
	switch a.DType {
	case Int64:
		return len(a.I)
	case Float64:
		return len(a.F)
	default:
		return len(a.S)
	}
}

func (a Array) IsScalar() bool { return a.Rank() == 0 }

// OpError is the error panicked by a kernel when it cannot complete. The
// evaluator recovers it and attaches the AST node's source location to
// build an EvalError; array kernels have no location of their own to
// report.
type OpError struct {
	Code string
	Msg  string
}

func (e OpError) Error() string { return e.Msg }

func fail(code, format string, args ...interface{}) {
	panic(OpError{Code: code, Msg: fmt.Sprintf(format, args...)})
}

func cloneShape(s []int) []int {
	out := make([]int, len(s))
	copy(out, s)
	return out
}

// ScalarInt, ScalarFloat, and ScalarString build rank-0 arrays.
func ScalarInt(v int64) Array     { return Array{DType: Int64, I: []int64{v}} }
func ScalarFloat(v float64) Array { return Array{DType: Float64, F: []float64{v}} }
func ScalarString(v string) Array { return Array{DType: String, S: []string{v}} }

// FromInts, FromFloats, and FromStrings build an array from a flat
// buffer and a shape, panicking loudly (OpError "RankError") if the
// sizes disagree — the spec requires construction to fail rather than
// silently truncate or pad.
func FromInts(data []int64, shape []int) Array {
	if len(data) != Product(shape) {
		fail("RankError", "data length %d does not match shape %v", len(data), shape)
	}
	return Array{Shape: cloneShape(shape), DType: Int64, I: data}
}

func FromFloats(data []float64, shape []int) Array {
	if len(data) != Product(shape) {
		fail("RankError", "data length %d does not match shape %v", len(data), shape)
	}
	return Array{Shape: cloneShape(shape), DType: Float64, F: data}
}

func FromStrings(data []string, shape []int) Array {
	if len(data) != Product(shape) {
		fail("RankError", "data length %d does not match shape %v", len(data), shape)
	}
	return Array{Shape: cloneShape(shape), DType: String, S: data}
}

// Zeros builds an array of the given shape and dtype filled with the
// zero value for that type.
func Zeros(shape []int, dtype DType) Array {
	n := Product(shape)
	switch dtype {
	case Int64:
		return FromInts(make([]int64, n), shape)
	case Float64:
		return FromFloats(make([]float64, n), shape)
	default:
		return FromStrings(make([]string, n), shape)
	}
}

// Iota generates [0, 1, ..., n-1] as a rank-1 Int64 array. n must be a
// non-negative scalar; n == 0 yields an empty rank-1 array.
func Iota(n int64) Array {
	if n < 0 {
		fail("RankError", "i. of negative %d", n)
	}
	data := make([]int64, n)
	for i := range data {
		data[i] = int64(i)
	}
	return FromInts(data, []int{int(n)})
}

// Shape returns a rank-1 Int64 vector of a's shape (empty for scalars).
func Shape(a Array) Array {
	data := make([]int64, a.Rank())
	for i, d := range a.Shape {
		data[i] = int64(d)
	}
	return FromInts(data, []int{a.Rank()})
}

// Tally returns the size of the leading axis (1 for rank 0).
func Tally(a Array) Array {
	if a.Rank() == 0 {
		return ScalarInt(1)
	}
	return ScalarInt(int64(a.Shape[0]))
}
