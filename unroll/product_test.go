package unroll_test

import (
	"testing"

	"github.com/lguimbarda/unrolled/unroll"
)

// The first operand cycles fastest and the second slowest. Callers pattern
// on pair positions, so the emission order is part of the contract.
func TestProductOrder(t *testing.T) {
	got := unroll.Product2x2([2]int{1, 2}, [2]string{"a", "b"})
	want := [4]unroll.Pair[int, string]{
		{V1: 1, V2: "a"},
		{V1: 2, V2: "a"},
		{V1: 1, V2: "b"},
		{V1: 2, V2: "b"},
	}
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestProductAsymmetric(t *testing.T) {
	got := unroll.Product3x2([3]int{1, 2, 3}, [2]int{10, 20})
	want := [6]unroll.Pair[int, int]{
		{V1: 1, V2: 10},
		{V1: 2, V2: 10},
		{V1: 3, V2: 10},
		{V1: 1, V2: 20},
		{V1: 2, V2: 20},
		{V1: 3, V2: 20},
	}
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestProductEmpty(t *testing.T) {
	if got := unroll.Product0x3([0]int{}, [3]int{1, 2, 3}); got != [0]unroll.Pair[int, int]{} {
		t.Errorf("got %v, want empty", got)
	}
	if got := unroll.Product3x0([3]int{1, 2, 3}, [0]int{}); got != [0]unroll.Pair[int, int]{} {
		t.Errorf("got %v, want empty", got)
	}
}
