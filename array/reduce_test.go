package array

import "testing"

func TestReduceSum(t *testing.T) {
	got := Reduce("+", Iota(5))
	if got.DType != Int64 || got.I[0] != 10 {
		t.Fatalf("got %v, want 10", got)
	}
}

func TestReduceProduct(t *testing.T) {
	got := Reduce("*", FromInts([]int64{1, 2, 3, 4}, []int{4}))
	if got.I[0] != 24 {
		t.Fatalf("got %v, want 24", got)
	}
}

func TestReduceMin(t *testing.T) {
	got := Reduce("<", FromInts([]int64{5, 2, 8}, []int{3}))
	if got.I[0] != 2 {
		t.Fatalf("got %v, want 2", got)
	}
}

func TestReduceMax(t *testing.T) {
	got := Reduce(">", FromInts([]int64{5, 2, 8}, []int{3}))
	if got.I[0] != 8 {
		t.Fatalf("got %v, want 8", got)
	}
}

func TestReduceEmptyUsesIdentity(t *testing.T) {
	got := Reduce("+", FromInts([]int64{}, []int{0}))
	if got.I[0] != 0 {
		t.Fatalf("got %v, want identity 0", got)
	}
}

func TestReduceEmptyNoIdentityFails(t *testing.T) {
	defer func() {
		r := recover()
		oe, ok := r.(OpError)
		if !ok || oe.Code != "EmptyReduce" {
			t.Fatalf("recover() = %v, want OpError{EmptyReduce}", r)
		}
	}()
	Reduce("<", FromInts([]int64{}, []int{0}))
}

func TestReduceScalarIsIdentity(t *testing.T) {
	got := Reduce("+", ScalarInt(7))
	if got.I[0] != 7 {
		t.Fatalf("got %v, want 7", got)
	}
}

func TestInnerProductDotProduct(t *testing.T) {
	x := FromInts([]int64{1, 2, 3}, []int{3})
	y := FromInts([]int64{4, 5, 6}, []int{3})
	got := InnerProduct("+", "*", x, y)
	if got.I[0] != 32 {
		t.Fatalf("got %v, want 32", got)
	}
}

func TestInnerProductMatrixMultiply(t *testing.T) {
	x := FromInts([]int64{1, 2, 3, 4}, []int{2, 2})
	y := FromInts([]int64{5, 6, 7, 8}, []int{2, 2})
	got := InnerProduct("+", "*", x, y)
	want := []int64{19, 22, 43, 50}
	if got.Rank() != 2 || got.Shape[0] != 2 || got.Shape[1] != 2 {
		t.Fatalf("got shape %v", got.Shape)
	}
	for i, v := range want {
		if got.I[i] != v {
			t.Fatalf("got %v, want %v", got.I, want)
		}
	}
}
