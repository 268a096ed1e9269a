package array

import "testing"

func TestIota(t *testing.T) {
	a := Iota(5)
	if a.Rank() != 1 || a.Len() != 5 {
		t.Fatalf("shape = %v", a.Shape)
	}
	want := []int64{0, 1, 2, 3, 4}
	for i, v := range want {
		if a.I[i] != v {
			t.Fatalf("a.I[%d] = %d, want %d", i, a.I[i], v)
		}
	}
}

func TestIotaNegativeFails(t *testing.T) {
	defer func() {
		r := recover()
		oe, ok := r.(OpError)
		if !ok || oe.Code != "RankError" {
			t.Fatalf("recover() = %v, want OpError{RankError}", r)
		}
	}()
	Iota(-1)
}

func TestFromIntsRejectsMismatchedShape(t *testing.T) {
	defer func() {
		r := recover()
		oe, ok := r.(OpError)
		if !ok || oe.Code != "RankError" {
			t.Fatalf("recover() = %v, want OpError{RankError}", r)
		}
	}()
	FromInts([]int64{1, 2, 3}, []int{2, 2})
}

func TestShapeAndTally(t *testing.T) {
	a := FromInts([]int64{1, 2, 3, 4, 5, 6}, []int{2, 3})
	sh := Shape(a)
	if sh.Len() != 2 || sh.I[0] != 2 || sh.I[1] != 3 {
		t.Fatalf("Shape = %v", sh.I)
	}
	if Tally(a).I[0] != 2 {
		t.Fatalf("Tally = %v", Tally(a))
	}
	if Tally(ScalarInt(9)).I[0] != 1 {
		t.Fatalf("Tally of scalar should be 1")
	}
}

func TestFormat(t *testing.T) {
	cases := []struct {
		a    Array
		want string
	}{
		{ScalarInt(5), "5"},
		{FromInts([]int64{1, 2, 3}, []int{3}), "1 2 3"},
		{FromInts([]int64{1, 2, 3, 4}, []int{2, 2}), "1 2\n3 4"},
		{ScalarFloat(2.5), "2.5"},
	}
	for _, c := range cases {
		if got := c.a.Format(); got != c.want {
			t.Errorf("Format() = %q, want %q", got, c.want)
		}
	}
}
