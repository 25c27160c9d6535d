package speculative

import "testing"

func TestAnd(t *testing.T) {
	yes := func() bool { return true }
	no := func() bool { return false }
	cases := []struct {
		predicates []func() bool
		expected   bool
	}{
		{nil, true},
		{[]func() bool{yes}, true},
		{[]func() bool{no}, false},
		{[]func() bool{yes, yes, yes}, true},
		{[]func() bool{yes, no, yes, yes}, false},
		{[]func() bool{yes, yes, yes, no}, false},
	}
	for i, c := range cases {
		if result := And(c.predicates...); result != c.expected {
			t.Errorf("case %v: expected %v, got %v", i, c.expected, result)
		}
	}
}

func TestRangeAnd(t *testing.T) {
	data := make([]int, 10000)
	for i := range data {
		data[i] = i
	}
	increasing := func(low, high int) bool {
		for i := max(low, 1); i < high; i++ {
			if data[i] < data[i-1] {
				return false
			}
		}
		return true
	}
	if !RangeAnd(0, len(data), 0, increasing) {
		t.Error("expected increasing data to be accepted")
	}
	data[7777] = -1
	if RangeAnd(0, len(data), 0, increasing) {
		t.Error("expected out-of-order element to be detected")
	}
}
