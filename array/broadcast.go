package array

// agree implements the simplified scalar-broadcasting agreement rule
// (spec §4.3): two arrays agree if their shapes are identical, or if
// either operand is a scalar. It returns the shape the result will
// carry, or panics with OpError{"ShapeMismatch"} otherwise. Full
// rank-prefix agreement is a non-goal for this core.
func agree(a, b Array) []int {
	switch {
	case a.IsScalar():
		return cloneShape(b.Shape)
	case b.IsScalar():
		return cloneShape(a.Shape)
	case sameShape(a.Shape, b.Shape):
		return cloneShape(a.Shape)
	default:
		fail("ShapeMismatch", "shapes %v and %v do not agree", a.Shape, b.Shape)
		return nil // unreachable
	}
}

func sameShape(x, y []int) bool {
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if x[i] != y[i] {
			return false
		}
	}
	return true
}

// intAt and floatAt read element i of a, replicating a scalar operand
// across every index (the broadcast half of scalar agreement).
func intAt(a Array, i int) int64 {
	switch a.DType {
	case Int64:
		if a.IsScalar() {
			return a.I[0]
		}
		return a.I[i]
	case Float64:
		v := floatAt(a, i)
		return int64(v)
	default:
		fail("TypeError", "non-numeric operand")
		return 0
	}
}

func floatAt(a Array, i int) float64 {
	switch a.DType {
	case Float64:
		if a.IsScalar() {
			return a.F[0]
		}
		return a.F[i]
	case Int64:
		if a.IsScalar() {
			return float64(a.I[0])
		}
		return float64(a.I[i])
	default:
		fail("TypeError", "non-numeric operand")
		return 0
	}
}

func requireNumeric(name string, arrays ...Array) {
	for _, a := range arrays {
		if a.DType == String {
			fail("TypeError", "%s: non-numeric operand", name)
		}
	}
}
