package gen_test

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/lguimbarda/unrolled/unroll/gen"
)

func TestDefaultConfigNormalize(t *testing.T) {
	cfg := gen.DefaultConfig()
	if err := cfg.Normalize(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Package != "unroll" {
		t.Errorf("Package = %q, want %q", cfg.Package, "unroll")
	}
	for _, fam := range []string{"any", "map", "fold", "unique"} {
		if got := cfg.Arities[fam]; got != gen.DefaultMaxArity {
			t.Errorf("Arities[%q] = %d, want %d", fam, got, gen.DefaultMaxArity)
		}
	}
	if cfg.BoundsArity != 8 || cfg.FlattenArity != 6 {
		t.Errorf("bounds/flatten = %d/%d, want 8/6", cfg.BoundsArity, cfg.FlattenArity)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	cfg := gen.DefaultConfig()
	cfg.Arities["map"] = 50
	cfg.Shapes["zipwith"] = [][]int{{3, 5}}
	if err := cfg.Normalize(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	once := cfg
	onceArities := make(map[string]int, len(cfg.Arities))
	for k, v := range cfg.Arities {
		onceArities[k] = v
	}
	if err := cfg.Normalize(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Package != once.Package || cfg.BoundsArity != once.BoundsArity {
		t.Error("second Normalize changed scalar fields")
	}
	if !reflect.DeepEqual(cfg.Arities, onceArities) {
		t.Errorf("second Normalize changed arities: %v != %v", cfg.Arities, onceArities)
	}
}

func TestNormalizeRejects(t *testing.T) {
	tests := []struct {
		name string
		mut  func(*gen.Config)
	}{
		{name: "unknown family", mut: func(c *gen.Config) { c.Arities["reverse"] = 4 }},
		{name: "negative arity", mut: func(c *gen.Config) { c.Arities["map"] = -1 }},
		{name: "over hard limit", mut: func(c *gen.Config) { c.Arities["map"] = gen.ArityHardLimit + 1 }},
		{name: "shape on plain family", mut: func(c *gen.Config) { c.Shapes["any"] = [][]int{{1, 2}} }},
		{name: "malformed shape", mut: func(c *gen.Config) { c.Shapes["concat"] = [][]int{{1, 2, 3}} }},
		{name: "negative shape", mut: func(c *gen.Config) { c.Shapes["concat"] = [][]int{{-1, 2}} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := gen.DefaultConfig()
			tt.mut(&cfg)
			if err := cfg.Normalize(); err == nil {
				t.Fatal("want error")
			}
		})
	}
}

func TestNormalizeTakeOverCount(t *testing.T) {
	cfg := gen.DefaultConfig()
	cfg.Shapes["take"] = [][]int{{5, 3}}
	err := cfg.Normalize()
	var bounds *gen.BoundsError
	if !errors.As(err, &bounds) {
		t.Fatalf("got %v, want *BoundsError", err)
	}
	if bounds.Count != 5 || bounds.Len != 3 {
		t.Errorf("got count %d len %d, want 5 and 3", bounds.Count, bounds.Len)
	}
}

func TestRaiseArity(t *testing.T) {
	cfg := gen.DefaultConfig()
	cfg.Arities["map"] = 50

	cfg.RaiseArity(32)
	if got := cfg.Arities["any"]; got != 32 {
		t.Errorf("Arities[any] = %d, want 32", got)
	}
	if got := cfg.Arities["map"]; got != 50 {
		t.Errorf("Arities[map] = %d, want 50 (never lowered)", got)
	}

	// Idempotent: applying the same relaxation twice changes nothing.
	before := make(map[string]int, len(cfg.Arities))
	for k, v := range cfg.Arities {
		before[k] = v
	}
	cfg.RaiseArity(32)
	if !reflect.DeepEqual(cfg.Arities, before) {
		t.Errorf("second RaiseArity changed arities: %v != %v", cfg.Arities, before)
	}

	cfg.RaiseArity(0)
	if !reflect.DeepEqual(cfg.Arities, before) {
		t.Error("RaiseArity(0) must be a no-op")
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "unrollgen.yaml")
	data := `package: unroll
arities:
  map: 50
  fold: 50
bounds_arity: 8
shapes:
  zipwith:
    - [3, 5]
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := gen.LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Arities["map"] != 50 || cfg.Arities["fold"] != 50 {
		t.Errorf("arities = %v, want map/fold at 50", cfg.Arities)
	}
	if got := cfg.Shapes["zipwith"]; len(got) != 1 || got[0][0] != 3 || got[0][1] != 5 {
		t.Errorf("zipwith shapes = %v, want [[3 5]]", got)
	}
}

func TestLoadConfigUnknownField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "unrollgen.yaml")
	if err := os.WriteFile(path, []byte("arity_limit: 9000\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := gen.LoadConfig(path); err == nil {
		t.Fatal("want error for unknown field")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := gen.LoadConfig(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("want error for missing file")
	}
}
