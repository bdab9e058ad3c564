package unroll_test

import (
	"strconv"
	"testing"

	"github.com/lguimbarda/unrolled/unroll"
)

func TestMap(t *testing.T) {
	got := unroll.Map4(strconv.Itoa, [4]int{1, 2, 3, 4})
	want := [4]string{"1", "2", "3", "4"}
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestMapEvaluatesOncePerElement(t *testing.T) {
	calls := 0
	unroll.Map4(func(x int) int {
		calls++
		return x * 2
	}, [4]int{1, 2, 3, 4})
	if calls != 4 {
		t.Errorf("got %d calls, want 4", calls)
	}
}

func TestMapEmpty(t *testing.T) {
	got := unroll.Map0(strconv.Itoa, [0]int{})
	if got != [0]string{} {
		t.Errorf("got %v, want empty", got)
	}
}

func TestZipWith(t *testing.T) {
	got := unroll.ZipWith3(func(a, b int) int { return a + b }, [3]int{1, 2, 3}, [3]int{10, 20, 30})
	want := [3]int{11, 22, 33}
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

// Operands of different lengths truncate to the shorter one.
func TestZipWithTruncates(t *testing.T) {
	a := [3]int{1, 2, 3}
	b := [5]int{10, 20, 30, 40, 50}
	got := unroll.ZipWith3x5(func(x, y int) int { return x + y }, a, b)
	want := [3]int{11, 22, 33}
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestZip(t *testing.T) {
	got := unroll.Zip3([3]string{"a", "b", "c"}, [3]int{1, 2, 3})
	want := [3]unroll.Pair[string, int]{
		{V1: "a", V2: 1},
		{V1: "b", V2: 2},
		{V1: "c", V2: 3},
	}
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

// Three sequences pair up through nesting, as the package doc describes.
func TestZipNested(t *testing.T) {
	got := unroll.Zip3(unroll.Zip3([3]int{1, 2, 3}, [3]string{"a", "b", "c"}), [3]bool{true, false, true})
	want := [3]unroll.Pair[unroll.Pair[int, string], bool]{
		{V1: unroll.Pair[int, string]{V1: 1, V2: "a"}, V2: true},
		{V1: unroll.Pair[int, string]{V1: 2, V2: "b"}, V2: false},
		{V1: unroll.Pair[int, string]{V1: 3, V2: "c"}, V2: true},
	}
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestZipTruncates(t *testing.T) {
	got := unroll.Zip3x5([3]string{"a", "b", "c"}, [5]int{1, 2, 3, 4, 5})
	want := [3]unroll.Pair[string, int]{
		{V1: "a", V2: 1},
		{V1: "b", V2: 2},
		{V1: "c", V2: 3},
	}
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
