package gen_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/lguimbarda/unrolled/unroll/gen"
)

func term(i int) string {
	return fmt.Sprintf("f(s[%d])", i)
}

func TestSynthesize(t *testing.T) {
	tests := []struct {
		name string
		kind gen.Kind
		n    int
		want string
	}{
		{name: "or chain", kind: gen.ShortCircuitOr, n: 3, want: "f(s[0]) || f(s[1]) || f(s[2])"},
		{name: "or identity", kind: gen.ShortCircuitOr, n: 0, want: "false"},
		{name: "or single", kind: gen.ShortCircuitOr, n: 1, want: "f(s[0])"},
		{name: "and chain", kind: gen.ShortCircuitAnd, n: 2, want: "f(s[0]) && f(s[1])"},
		{name: "and identity", kind: gen.ShortCircuitAnd, n: 0, want: "true"},
		{name: "sequencing", kind: gen.Sequencing, n: 3, want: "f(s[0])\nf(s[1])\nf(s[2])"},
		{name: "sequencing empty", kind: gen.Sequencing, n: 0, want: ""},
		{name: "tuple", kind: gen.TupleConstruction, n: 3, want: "f(s[0]), f(s[1]), f(s[2])"},
		{name: "tuple empty", kind: gen.TupleConstruction, n: 0, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := gen.Synthesize(tt.kind, tt.n, term)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSynthesizeLeftFoldRejected(t *testing.T) {
	_, err := gen.Synthesize(gen.LeftFold, 3, term)
	if err == nil {
		t.Fatal("want error directing to SynthesizeFold")
	}
	if !strings.Contains(err.Error(), "SynthesizeFold") {
		t.Errorf("got %v, want mention of SynthesizeFold", err)
	}
}

func TestSynthesizeNegativeCount(t *testing.T) {
	if _, err := gen.Synthesize(gen.ShortCircuitOr, -1, term); err == nil {
		t.Fatal("want error for negative count")
	}
}

func combine(acc, t string) string {
	return fmt.Sprintf("op(%s, %s)", acc, t)
}

func TestSynthesizeFoldSeeded(t *testing.T) {
	got, err := gen.SynthesizeFold("fold", 3, "init", func(i int) string { return fmt.Sprintf("s[%d]", i) }, combine)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{
		"acc := op(init, s[0])",
		"acc = op(acc, s[1])",
		"acc = op(acc, s[2])",
	}
	assertStmts(t, got, want)
}

func TestSynthesizeFoldSeededEmpty(t *testing.T) {
	got, err := gen.SynthesizeFold("fold", 0, "init", func(i int) string { return fmt.Sprintf("s[%d]", i) }, combine)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertStmts(t, got, []string{"acc := init"})
}

func TestSynthesizeFoldUnseeded(t *testing.T) {
	got, err := gen.SynthesizeFold("reduce", 3, "", func(i int) string { return fmt.Sprintf("s[%d]", i) }, combine)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{
		"acc := s[0]",
		"acc = op(acc, s[1])",
		"acc = op(acc, s[2])",
	}
	assertStmts(t, got, want)
}

func TestSynthesizeFoldUnseededEmpty(t *testing.T) {
	_, err := gen.SynthesizeFold("reduce", 0, "", func(i int) string { return fmt.Sprintf("s[%d]", i) }, combine)
	var empty *gen.EmptyInputError
	if !errors.As(err, &empty) {
		t.Fatalf("got %v, want *EmptyInputError", err)
	}
	if empty.Op != "reduce" {
		t.Errorf("Op = %q, want %q", empty.Op, "reduce")
	}
}

func TestKindString(t *testing.T) {
	kinds := map[gen.Kind]string{
		gen.ShortCircuitOr:    "ShortCircuitOr",
		gen.ShortCircuitAnd:   "ShortCircuitAnd",
		gen.Sequencing:        "Sequencing",
		gen.TupleConstruction: "TupleConstruction",
		gen.LeftFold:          "LeftFold",
	}
	for kind, want := range kinds {
		if got := kind.String(); got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	}
}

func assertStmts(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d statements %q, want %d", len(got), got, len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("stmt[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
