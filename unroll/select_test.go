package unroll_test

import (
	"slices"
	"testing"

	"github.com/lguimbarda/unrolled/unroll"
)

func TestFilter(t *testing.T) {
	tests := []struct {
		name  string
		input [4]int
		want  []int
	}{
		{name: "some match", input: [4]int{1, 2, 3, 4}, want: []int{2, 4}},
		{name: "all match", input: [4]int{2, 4, 6, 8}, want: []int{2, 4, 6, 8}},
		{name: "none match", input: [4]int{1, 3, 5, 7}, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := unroll.Filter4(isEven, tt.input)
			if !slices.Equal(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilterEvaluatesOncePerElement(t *testing.T) {
	calls := 0
	unroll.Filter4(func(x int) bool {
		calls++
		return x%2 == 0
	}, [4]int{1, 2, 3, 4})
	if calls != 4 {
		t.Errorf("got %d calls, want 4", calls)
	}
}

func TestPartition(t *testing.T) {
	match, rest := unroll.Partition4(isEven, [4]int{1, 2, 3, 4})
	if !slices.Equal(match, []int{2, 4}) {
		t.Errorf("match: got %v, want [2 4]", match)
	}
	if !slices.Equal(rest, []int{1, 3}) {
		t.Errorf("rest: got %v, want [1 3]", rest)
	}
}

func TestPartitionEvaluatesOncePerElement(t *testing.T) {
	calls := 0
	unroll.Partition4(func(x int) bool {
		calls++
		return x%2 == 0
	}, [4]int{1, 2, 3, 4})
	if calls != 4 {
		t.Errorf("got %d calls, want 4", calls)
	}
}

func TestUnique(t *testing.T) {
	tests := []struct {
		name  string
		input [5]int
		want  []int
	}{
		{name: "duplicates keep first occurrence", input: [5]int{1, 2, 1, 3, 2}, want: []int{1, 2, 3}},
		{name: "already distinct", input: [5]int{5, 4, 3, 2, 1}, want: []int{5, 4, 3, 2, 1}},
		{name: "all equal", input: [5]int{7, 7, 7, 7, 7}, want: []int{7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := unroll.Unique5(tt.input)
			if !slices.Equal(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}
