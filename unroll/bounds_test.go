package unroll_test

import (
	"testing"

	"github.com/lguimbarda/unrolled/unroll"
)

func TestTake(t *testing.T) {
	s := [4]int{10, 20, 30, 40}
	if got := unroll.Take2Of4(s); got != [2]int{10, 20} {
		t.Errorf("got %v, want [10 20]", got)
	}
	if got := unroll.Take0Of4(s); got != [0]int{} {
		t.Errorf("got %v, want empty", got)
	}
	if got := unroll.Take4Of4(s); got != s {
		t.Errorf("got %v, want %v", got, s)
	}
}

func TestDrop(t *testing.T) {
	s := [4]int{10, 20, 30, 40}
	if got := unroll.Drop2Of4(s); got != [2]int{30, 40} {
		t.Errorf("got %v, want [30 40]", got)
	}
	if got := unroll.Drop0Of4(s); got != s {
		t.Errorf("got %v, want %v", got, s)
	}
	if got := unroll.Drop4Of4(s); got != [0]int{} {
		t.Errorf("got %v, want empty", got)
	}
}

// Taking the first k elements and dropping them partitions the sequence:
// their concatenation reconstructs the input for every valid k.
func TestTakeDropRoundTrip(t *testing.T) {
	s := [4]int{10, 20, 30, 40}
	roundTrips := []struct {
		k   int
		got [4]int
	}{
		{0, unroll.Concat0x4(unroll.Take0Of4(s), unroll.Drop0Of4(s))},
		{1, unroll.Concat1x3(unroll.Take1Of4(s), unroll.Drop1Of4(s))},
		{2, unroll.Concat2x2(unroll.Take2Of4(s), unroll.Drop2Of4(s))},
		{3, unroll.Concat3x1(unroll.Take3Of4(s), unroll.Drop3Of4(s))},
		{4, unroll.Concat4x0(unroll.Take4Of4(s), unroll.Drop4Of4(s))},
	}
	for _, rt := range roundTrips {
		if rt.got != s {
			t.Errorf("k=%d: got %v, want %v", rt.k, rt.got, s)
		}
	}
}

func TestConcat(t *testing.T) {
	got := unroll.Concat2x3([2]int{1, 2}, [3]int{3, 4, 5})
	want := [5]int{1, 2, 3, 4, 5}
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	if got := unroll.Concat0x0([0]int{}, [0]int{}); got != [0]int{} {
		t.Errorf("got %v, want empty", got)
	}
}

func TestFlatten(t *testing.T) {
	s := [3][2]int{{1, 2}, {3, 4}, {5, 6}}
	got := unroll.Flatten3x2(s)
	want := [6]int{1, 2, 3, 4, 5, 6}
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

// Ragged input flattens through concatenation of the differently sized
// pieces.
func TestFlattenRagged(t *testing.T) {
	got := unroll.Concat2x3([2]int{1, 2}, unroll.Concat1x2([1]int{3}, [2]int{4, 5}))
	want := [5]int{1, 2, 3, 4, 5}
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestFlatMap(t *testing.T) {
	got := unroll.FlatMap3x2(func(x int) [2]int { return [2]int{x, -x} }, [3]int{1, 2, 3})
	want := [6]int{1, -1, 2, -2, 3, -3}
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
