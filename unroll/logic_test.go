package unroll_test

import (
	"testing"

	"github.com/lguimbarda/unrolled/unroll"
)

func isEven(x int) bool { return x%2 == 0 }

func TestAny(t *testing.T) {
	tests := []struct {
		name  string
		input [4]int
		want  bool
	}{
		{name: "some match", input: [4]int{1, 3, 4, 5}, want: true},
		{name: "first matches", input: [4]int{2, 1, 1, 1}, want: true},
		{name: "last matches", input: [4]int{1, 1, 1, 2}, want: true},
		{name: "none match", input: [4]int{1, 3, 5, 7}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := unroll.Any4(isEven, tt.input); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAnyEmptyIdentity(t *testing.T) {
	if unroll.Any0(isEven, [0]int{}) {
		t.Error("any over no elements must be false")
	}
}

func TestAllEmptyIdentity(t *testing.T) {
	if !unroll.All0(isEven, [0]int{}) {
		t.Error("all over no elements must be true")
	}
}

// All is the De Morgan dual of Any for total predicates.
func TestAllDual(t *testing.T) {
	inputs := [][4]int{
		{2, 4, 6, 8},
		{2, 4, 5, 8},
		{1, 3, 5, 7},
	}
	for _, s := range inputs {
		all := unroll.All4(isEven, s)
		dual := !unroll.Any4(func(x int) bool { return !isEven(x) }, s)
		if all != dual {
			t.Errorf("All4(%v) = %v, want %v", s, all, dual)
		}
	}
}

func TestAnyShortCircuits(t *testing.T) {
	calls := 0
	unroll.Any4(func(x int) bool {
		calls++
		return x == 20
	}, [4]int{10, 20, 30, 40})
	if calls != 2 {
		t.Errorf("predicate called %d times, want 2", calls)
	}
}

func TestAllShortCircuits(t *testing.T) {
	calls := 0
	unroll.All4(func(x int) bool {
		calls++
		return x < 30
	}, [4]int{10, 20, 30, 40})
	if calls != 3 {
		t.Errorf("predicate called %d times, want 3", calls)
	}
}

func TestContains(t *testing.T) {
	s := [4]string{"a", "b", "c", "d"}
	if !unroll.Contains4("c", s) {
		t.Error("want true for present element")
	}
	if unroll.Contains4("z", s) {
		t.Error("want false for absent element")
	}
	if unroll.Contains0("a", [0]string{}) {
		t.Error("want false for empty sequence")
	}
}

// Pointer elements compare by identity: a distinct pointer to an equal
// value is not contained.
func TestContainsPointerIdentity(t *testing.T) {
	a, b := 1, 1
	s := [2]*int{&a, &b}
	if !unroll.Contains2(&a, s) {
		t.Error("same pointer must be contained")
	}
	c := 1
	if unroll.Contains2(&c, s) {
		t.Error("distinct pointer to an equal value must not be contained")
	}
}
