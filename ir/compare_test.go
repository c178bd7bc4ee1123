package ir

import "testing"

func TestCompareScalars(t *testing.T) {
	tests := []struct {
		A, B *Node
		Want int
	}{
		{Null(), Null(), 0},
		{Null(), FromBool(false), -1},
		{FromBool(false), FromBool(true), -1},
		{FromInt(1), FromInt(2), -1},
		{FromInt(2), FromInt(2), 0},
		{FromFloat(1.5), FromFloat(1.5), 0},
		{FromString("a"), FromString("b"), -1},
		{FromString("a"), FromInt(100), 1},
		{FromSlice(nil), FromString("z"), 1},
		{FromMap(nil), FromSlice(nil), 1},
	}
	for i := range tests {
		test := &tests[i]
		if got := Compare(test.A, test.B); got != test.Want {
			t.Errorf("test case %d: got %d, want %d", i, got, test.Want)
		}
		if got := Compare(test.B, test.A); got != -test.Want {
			t.Errorf("test case %d reversed: got %d", i, got)
		}
	}
}

func TestCompareContainers(t *testing.T) {
	a := FromSlice([]*Node{FromInt(1), FromInt(2)})
	b := FromSlice([]*Node{FromInt(1), FromInt(3)})
	if Compare(a, b) != -1 {
		t.Errorf("got %d", Compare(a, b))
	}
	shorter := FromSlice([]*Node{FromInt(1)})
	if Compare(shorter, a) != -1 {
		t.Errorf("got %d", Compare(shorter, a))
	}
}

func TestEqualIgnoresFieldOrder(t *testing.T) {
	a := FromKeyVals([]KeyVal{
		{Key: FromString("x"), Val: FromInt(1)},
		{Key: FromString("y"), Val: FromInt(2)},
	})
	b := FromKeyVals([]KeyVal{
		{Key: FromString("y"), Val: FromInt(2)},
		{Key: FromString("x"), Val: FromInt(1)},
	})
	if !Equal(a, b) {
		t.Errorf("order-permuted objects not equal")
	}
	// Compare, in contrast, is order-sensitive
	if Compare(a, b) == 0 {
		t.Errorf("Compare ignored field order")
	}

	c := FromKeyVals([]KeyVal{
		{Key: FromString("x"), Val: FromInt(1)},
		{Key: FromString("y"), Val: FromInt(3)},
	})
	if Equal(a, c) {
		t.Errorf("unequal values reported equal")
	}
}

func TestEqualArraysOrdered(t *testing.T) {
	a := FromSlice([]*Node{FromInt(1), FromInt(2)})
	b := FromSlice([]*Node{FromInt(2), FromInt(1)})
	if Equal(a, b) {
		t.Errorf("permuted arrays reported equal")
	}
	if !Equal(a, a.Clone()) {
		t.Errorf("clone not equal")
	}
}

func TestEqualIgnoresTags(t *testing.T) {
	a := FromSlice([]*Node{FromInt(1)})
	b := FromSlice([]*Node{FromInt(1)}).WithTag("!contents")
	if !Equal(a, b) {
		t.Errorf("tag affected equality")
	}
}

func TestHashConsistentWithEqual(t *testing.T) {
	a := FromKeyVals([]KeyVal{
		{Key: FromString("x"), Val: FromInt(1)},
		{Key: FromString("y"), Val: FromSlice([]*Node{FromString("a")})},
	})
	b := FromKeyVals([]KeyVal{
		{Key: FromString("y"), Val: FromSlice([]*Node{FromString("a")})},
		{Key: FromString("x"), Val: FromInt(1)},
	})
	if a.Hash() != b.Hash() {
		t.Errorf("equal nodes hash differently")
	}
	c := FromKeyVals([]KeyVal{
		{Key: FromString("x"), Val: FromInt(2)},
	})
	if a.Hash() == c.Hash() {
		t.Errorf("likely hash collision on unequal nodes")
	}
}
