package tuple_test

import (
	"testing"

	"github.com/lguimbarda/unrolled/unroll/tuple"
)

func TestMakePair(t *testing.T) {
	p := tuple.MakePair(1, "one")
	if p.V1 != 1 || p.V2 != "one" {
		t.Fatalf("got %v, want (1, one)", p)
	}
}

func TestValues(t *testing.T) {
	a, b := tuple.MakePair("x", 2.5).Values()
	if a != "x" || b != 2.5 {
		t.Fatalf("got (%v, %v), want (x, 2.5)", a, b)
	}
}

func TestSwap(t *testing.T) {
	p := tuple.MakePair(1, "one").Swap()
	if p.V1 != "one" || p.V2 != 1 {
		t.Fatalf("got %v, want (one, 1)", p)
	}
}

func TestString(t *testing.T) {
	got := tuple.MakePair(1, "one").String()
	if got != "(1, one)" {
		t.Fatalf("got %q, want %q", got, "(1, one)")
	}
}
