package gen_test

import (
	"slices"
	"strings"
	"testing"

	"github.com/lguimbarda/unrolled/unroll/gen"
)

func TestGenerate(t *testing.T) {
	files, err := gen.Generate(gen.DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantFiles := []string{
		"zz_generated_logic.go",
		"zz_generated_each.go",
		"zz_generated_map.go",
		"zz_generated_fold.go",
		"zz_generated_bounds.go",
		"zz_generated_select.go",
		"zz_generated_product.go",
	}
	for _, name := range wantFiles {
		if _, ok := files[name]; !ok {
			t.Errorf("missing file %s", name)
		}
	}
	for name, src := range files {
		if !strings.HasPrefix(string(src), "// Code generated by unrollgen. DO NOT EDIT.") {
			t.Errorf("%s: missing generated-code header", name)
		}
	}

	logic := string(files["zz_generated_logic.go"])
	for _, want := range []string{
		"func Any0[T any](f func(T) bool, s [0]T) bool {\n\treturn false\n}",
		"func All0[T any](f func(T) bool, s [0]T) bool {\n\treturn true\n}",
		"return f(s[0]) || f(s[1]) || f(s[2])",
		"return f(s[0]) && f(s[1])",
	} {
		if !strings.Contains(logic, want) {
			t.Errorf("logic file missing %q", want)
		}
	}

	fold := string(files["zz_generated_fold.go"])
	if strings.Contains(fold, "func Reduce0") {
		t.Error("Reduce0 must not be generated: empty reduce has no identity")
	}
	if !strings.Contains(fold, "func Reduce1[T any](op func(T, T) T, s [1]T) T") {
		t.Error("fold file missing Reduce1")
	}
	if !strings.Contains(fold, "func Fold0[A, T any](op func(A, T) A, init A, s [0]T) A") {
		t.Error("fold file missing Fold0")
	}

	bounds := string(files["zz_generated_bounds.go"])
	if strings.Contains(bounds, "func Take9Of8") {
		t.Error("take beyond the sequence length must not be generated")
	}
	if !strings.Contains(bounds, "func Take2Of4[T any](s [4]T) [2]T {\n\treturn [2]T{s[0], s[1]}\n}") {
		t.Error("bounds file missing Take2Of4 body")
	}
	if !strings.Contains(bounds, "func Drop2Of4[T any](s [4]T) [2]T {\n\treturn [2]T{s[2], s[3]}\n}") {
		t.Error("bounds file missing Drop2Of4 body")
	}
}

func TestGenerateMixedShapes(t *testing.T) {
	cfg := gen.DefaultConfig()
	cfg.Shapes["zipwith"] = [][]int{{3, 5}}
	cfg.Shapes["zip"] = [][]int{{3, 5}}
	cfg.Shapes["flatmap"] = [][]int{{12, 2}}
	cfg.Arities = map[string]int{"map": 16}

	files, err := gen.Generate(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mapSrc := string(files["zz_generated_map.go"])
	if !strings.Contains(mapSrc, "func ZipWith3x5[A, B, R any](f func(A, B) R, a [3]A, b [5]B) [3]R {\n\treturn ZipWith3(f, a, Take3Of5(b))\n}") {
		t.Error("mixed zipwith must truncate through Take3Of5")
	}
	if !strings.Contains(mapSrc, "func Zip3x5[A, B any](a [3]A, b [5]B) [3]tuple.Pair[A, B]") {
		t.Error("missing mixed zip")
	}

	bounds := string(files["zz_generated_bounds.go"])
	if !strings.Contains(bounds, "func Flatten12x2") {
		t.Error("flatmap shape must imply its flatten")
	}
	if !strings.Contains(bounds, "func FlatMap12x2[T, R any](f func(T) [2]R, s [12]T) [24]R {\n\treturn Flatten12x2(Map12(f, s))\n}") {
		t.Error("missing flatmap composition")
	}
}

func TestGenerateDependencyCaps(t *testing.T) {
	tests := []struct {
		name string
		mut  func(*gen.Config)
	}{
		{name: "contains beyond any", mut: func(c *gen.Config) { c.Arities = map[string]int{"contains": 20, "any": 16} }},
		{name: "zip beyond zipwith", mut: func(c *gen.Config) { c.Arities = map[string]int{"zip": 20, "zipwith": 16} }},
		{name: "filter beyond fold", mut: func(c *gen.Config) { c.Arities = map[string]int{"filter": 50} }},
		{name: "flatmap beyond map", mut: func(c *gen.Config) { c.Shapes = map[string][][]int{"flatmap": {{40, 2}}} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := gen.DefaultConfig()
			tt.mut(&cfg)
			if _, err := gen.Generate(cfg); err == nil {
				t.Fatal("want error")
			}
		})
	}
}

func TestPlan(t *testing.T) {
	names, err := gen.Plan(gen.DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"Any0", "All16", "Map16", "Reduce1", "Fold0", "Take2Of4", "Product6x6", "Unique16"} {
		if !slices.Contains(names, want) {
			t.Errorf("plan missing %s", want)
		}
	}
	if slices.Contains(names, "Reduce0") {
		t.Error("plan must not contain Reduce0")
	}
	if slices.Contains(names, "MapReduce0") {
		t.Error("plan must not contain MapReduce0")
	}
}
