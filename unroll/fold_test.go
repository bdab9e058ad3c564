package unroll_test

import (
	"testing"

	"github.com/lguimbarda/unrolled/unroll"
)

func add(a, b int) int { return a + b }
func sub(a, b int) int { return a - b }

func TestReduce(t *testing.T) {
	if got := unroll.Reduce4(add, [4]int{1, 2, 3, 4}); got != 10 {
		t.Errorf("got %d, want 10", got)
	}
	if got := unroll.Reduce1(add, [1]int{7}); got != 7 {
		t.Errorf("got %d, want 7", got)
	}
}

// Subtraction is not associative, so the result pins the left-to-right
// combination order: ((1-2)-3)-4.
func TestReduceLeftAssociates(t *testing.T) {
	if got := unroll.Reduce4(sub, [4]int{1, 2, 3, 4}); got != -8 {
		t.Errorf("got %d, want -8", got)
	}
}

func TestFold(t *testing.T) {
	if got := unroll.Fold4(add, 100, [4]int{1, 2, 3, 4}); got != 110 {
		t.Errorf("got %d, want 110", got)
	}
	if got := unroll.Fold0(add, 42, [0]int{}); got != 42 {
		t.Errorf("got %d, want 42", got)
	}
}

// Folding with an init is the same as reducing with the init prepended.
func TestFoldReduceEquivalence(t *testing.T) {
	s := [4]int{1, 2, 3, 4}
	fold := unroll.Fold4(sub, 100, s)
	reduce := unroll.Reduce5(sub, unroll.Concat1x4([1]int{100}, s))
	if fold != reduce {
		t.Errorf("Fold4 = %d, Reduce5 over prepended init = %d", fold, reduce)
	}
}

func TestFoldAccumulatorType(t *testing.T) {
	got := unroll.Fold3(func(acc []int, x int) []int { return append(acc, x*x) }, nil, [3]int{1, 2, 3})
	want := []int{1, 4, 9}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got %v, want %v", got, want)
			break
		}
	}
}

func TestMapReduce(t *testing.T) {
	got := unroll.MapReduce4(func(x int) int { return x * x }, add, [4]int{1, 2, 3, 4})
	if got != 30 {
		t.Errorf("got %d, want 30", got)
	}
}

func TestMapFold(t *testing.T) {
	got := unroll.MapFold4(func(x int) int { return x * x }, add, 100, [4]int{1, 2, 3, 4})
	if got != 130 {
		t.Errorf("got %d, want 130", got)
	}
	if got := unroll.MapFold0(func(x int) int { return x * x }, add, 9, [0]int{}); got != 9 {
		t.Errorf("got %d, want 9", got)
	}
}

func TestMapFoldEvaluatesOncePerElement(t *testing.T) {
	calls := 0
	unroll.MapFold4(func(x int) int {
		calls++
		return x
	}, add, 0, [4]int{1, 2, 3, 4})
	if calls != 4 {
		t.Errorf("got %d transform calls, want 4", calls)
	}
}
