package unroll_test

import (
	"testing"

	"github.com/lguimbarda/unrolled/unroll"
)

func TestEachOrderAndEvaluationCount(t *testing.T) {
	var seen []int
	unroll.Each4(func(x int) { seen = append(seen, x) }, [4]int{10, 20, 30, 40})

	want := []int{10, 20, 30, 40}
	if len(seen) != len(want) {
		t.Fatalf("got %d calls, want %d", len(seen), len(want))
	}
	for i, v := range want {
		if seen[i] != v {
			t.Errorf("call %d: got %d, want %d", i, seen[i], v)
		}
	}
}

func TestEachEmpty(t *testing.T) {
	calls := 0
	unroll.Each0(func(int) { calls++ }, [0]int{})
	if calls != 0 {
		t.Errorf("got %d calls, want 0", calls)
	}
}

func TestEachZip(t *testing.T) {
	var seen []string
	unroll.EachZip3(func(a string, b int) {
		seen = append(seen, a)
		if b != len(seen) {
			t.Errorf("pair %d: got second element %d, want %d", len(seen)-1, b, len(seen))
		}
	}, [3]string{"a", "b", "c"}, [3]int{1, 2, 3})

	if got := len(seen); got != 3 {
		t.Fatalf("got %d calls, want 3", got)
	}
	for i, v := range []string{"a", "b", "c"} {
		if seen[i] != v {
			t.Errorf("call %d: got %q, want %q", i, seen[i], v)
		}
	}
}
