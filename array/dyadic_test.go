package array

import "testing"

func TestAddVector(t *testing.T) {
	a := FromInts([]int64{1, 2, 3}, []int{3})
	b := FromInts([]int64{4, 5, 6}, []int{3})
	got := Add(a, b)
	want := []int64{5, 7, 9}
	for i, v := range want {
		if got.I[i] != v {
			t.Fatalf("got %v, want %v", got.I, want)
		}
	}
}

func TestAddScalarBroadcast(t *testing.T) {
	got := Add(ScalarInt(10), FromInts([]int64{1, 2, 3}, []int{3}))
	want := []int64{11, 12, 13}
	for i, v := range want {
		if got.I[i] != v {
			t.Fatalf("got %v, want %v", got.I, want)
		}
	}
}

func TestAddShapeMismatchFails(t *testing.T) {
	defer func() {
		r := recover()
		oe, ok := r.(OpError)
		if !ok || oe.Code != "ShapeMismatch" {
			t.Fatalf("recover() = %v, want OpError{ShapeMismatch}", r)
		}
	}()
	Add(FromInts([]int64{1, 2}, []int{2}), FromInts([]int64{1, 2, 3}, []int{3}))
}

func TestDivAlwaysFloat(t *testing.T) {
	got := Div(ScalarInt(5), ScalarInt(2))
	if got.DType != Float64 || got.F[0] != 2.5 {
		t.Fatalf("got %v, want Float64 2.5", got)
	}
}

func TestDivByZeroFails(t *testing.T) {
	defer func() {
		r := recover()
		oe, ok := r.(OpError)
		if !ok || oe.Code != "DivisionByZero" {
			t.Fatalf("recover() = %v, want OpError{DivisionByZero}", r)
		}
	}()
	Div(ScalarInt(1), ScalarInt(0))
}

func TestPowAlwaysFloat(t *testing.T) {
	got := Pow(ScalarInt(2), ScalarInt(3))
	if got.DType != Float64 || got.F[0] != 8 {
		t.Fatalf("got %v, want Float64 8", got)
	}
}

func TestComparisonsYieldIntBoolean(t *testing.T) {
	got := Lt(ScalarInt(1), ScalarInt(2))
	if got.DType != Int64 || got.I[0] != 1 {
		t.Fatalf("got %v, want Int64 1", got)
	}
	got = Gt(ScalarInt(1), ScalarInt(2))
	if got.DType != Int64 || got.I[0] != 0 {
		t.Fatalf("got %v, want Int64 0", got)
	}
}

func TestAppendVectors(t *testing.T) {
	a := FromInts([]int64{1, 2}, []int{2})
	b := FromInts([]int64{3, 4, 5}, []int{3})
	got := Append(a, b)
	if got.Rank() != 1 || got.Len() != 5 {
		t.Fatalf("got shape %v", got.Shape)
	}
	want := []int64{1, 2, 3, 4, 5}
	for i, v := range want {
		if got.I[i] != v {
			t.Fatalf("got %v, want %v", got.I, want)
		}
	}
}

func TestReshapeCyclesData(t *testing.T) {
	shapeArg := FromInts([]int64{2, 3}, []int{2})
	data := FromInts([]int64{1, 2}, []int{2})
	got := Reshape(shapeArg, data)
	want := []int64{1, 2, 1, 2, 1, 2}
	if got.Rank() != 2 || got.Shape[0] != 2 || got.Shape[1] != 3 {
		t.Fatalf("got shape %v", got.Shape)
	}
	for i, v := range want {
		if got.I[i] != v {
			t.Fatalf("got %v, want %v", got.I, want)
		}
	}
}

func TestFusedInnerProductGlyphRegistered(t *testing.T) {
	fn, ok := DyadicOps["+.*"]
	if !ok {
		t.Fatal("+.* is not registered in DyadicOps")
	}
	x := FromInts([]int64{1, 2, 3}, []int{3})
	y := FromInts([]int64{4, 5, 6}, []int{3})
	got := fn(x, y)
	if got.I[0] != 32 { // 1*4 + 2*5 + 3*6
		t.Fatalf("got %v, want 32", got)
	}
}
