package gen_test

import (
	"errors"
	"testing"

	"github.com/lguimbarda/unrolled/unroll/gen"
)

func TestMinLen(t *testing.T) {
	tests := []struct {
		name   string
		shapes []gen.Shape
		want   int
	}{
		{name: "single", shapes: []gen.Shape{gen.Arity(4)}, want: 4},
		{name: "single empty", shapes: []gen.Shape{gen.Arity(0)}, want: 0},
		{name: "two equal", shapes: []gen.Shape{gen.Arity(3), gen.Arity(3)}, want: 3},
		{name: "truncates to min", shapes: []gen.Shape{gen.Arity(3), gen.Arity(5)}, want: 3},
		{name: "min anywhere", shapes: []gen.Shape{gen.Arity(7), gen.Arity(2), gen.Arity(9)}, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := gen.MinLen("map", tt.shapes...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMinLenZeroShapes(t *testing.T) {
	_, err := gen.MinLen("map")
	var arity *gen.ArityError
	if !errors.As(err, &arity) {
		t.Fatalf("got %v, want *ArityError", err)
	}
	if arity.Op != "map" {
		t.Errorf("Op = %q, want %q", arity.Op, "map")
	}
}

func TestMinLenUnknownShape(t *testing.T) {
	_, err := gen.MinLen("foreach", gen.Arity(2), gen.UnknownShape())
	var unsupported *gen.UnsupportedShapeError
	if !errors.As(err, &unsupported) {
		t.Fatalf("got %v, want *UnsupportedShapeError", err)
	}
}
