package unroll_test

import (
	"slices"
	"testing"

	"github.com/lguimbarda/unrolled/unroll"
)

// Length-50 sequences exercise the deepest specializations the default
// configuration emits.

func seq50() [50]int {
	var s [50]int
	for i := range s {
		s[i] = i
	}
	return s
}

func TestMapDeep(t *testing.T) {
	got := unroll.Map50(func(x int) int { return x * 2 }, seq50())
	for i, v := range got {
		if v != i*2 {
			t.Fatalf("index %d: got %d, want %d", i, v, i*2)
		}
	}
}

func TestReduceDeep(t *testing.T) {
	if got := unroll.Reduce50(add, seq50()); got != 1225 {
		t.Errorf("got %d, want 1225", got)
	}
}

func TestFilterDeep(t *testing.T) {
	got := unroll.Filter50(isEven, seq50())
	if len(got) != 25 {
		t.Fatalf("got %d elements, want 25", len(got))
	}
	for i, v := range got {
		if v != i*2 {
			t.Errorf("index %d: got %d, want %d", i, v, i*2)
		}
	}
}

func TestPartitionDeep(t *testing.T) {
	match, rest := unroll.Partition50(isEven, seq50())
	if len(match) != 25 || len(rest) != 25 {
		t.Fatalf("got %d/%d elements, want 25/25", len(match), len(rest))
	}
}

func TestUniqueDeep(t *testing.T) {
	var s [50]int
	for i := range s {
		s[i] = i % 10
	}
	got := unroll.Unique50(s)
	if !slices.Equal(got, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}) {
		t.Errorf("got %v, want first ten naturals", got)
	}
}

func TestFlatMapDeep(t *testing.T) {
	got := unroll.FlatMap50x2(func(x int) [2]int { return [2]int{x, x} }, seq50())
	for i, v := range got {
		if v != i/2 {
			t.Fatalf("index %d: got %d, want %d", i, v, i/2)
		}
	}
}
