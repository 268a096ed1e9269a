package array

import (
	"strconv"
	"strings"
)

// Format renders a in canonical J form (spec §6): a rank-0 array prints
// as a bare scalar, a rank-1 array as space-separated elements, and a
// rank-2 array as newline-separated rows of space-separated elements.
// An array of rank 3 or more (dyadic "$" can build one) prints like a
// rank-2 array: one line per leading-axis item, with the remaining axes
// flattened into that line.
func (a Array) Format() string {
	switch a.Rank() {
	case 0:
		return a.elemString(0)
	case 1:
		elems := make([]string, a.Len())
		for i := range elems {
			elems[i] = a.elemString(i)
		}
		return strings.Join(elems, " ")
	default:
		rows := a.Shape[0]
		rowLen := Product(a.Shape[1:])
		lines := make([]string, rows)
		for r := 0; r < rows; r++ {
			elems := make([]string, rowLen)
			for c := 0; c < rowLen; c++ {
				elems[c] = a.elemString(r*rowLen + c)
			}
			lines[r] = strings.Join(elems, " ")
		}
		return strings.Join(lines, "\n")
	}
}

func (a Array) elemString(i int) string {
	switch a.DType {
	case Int64:
		return strconv.FormatInt(a.I[i], 10)
	case Float64:
		return strconv.FormatFloat(a.F[i], 'g', -1, 64)
	default:
		return a.S[i]
	}
}
