package gen

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultMaxArity is the conservative arity cap applied to any operation
// family absent from the configuration. Deep composition chains (filter,
// partition, unique, flatmap over long sequences) need caps proportional to
// sequence length; raise those families in the config, or raise everything
// at once with the UNROLLGEN_MAX_ARITY environment variable.
const DefaultMaxArity = 16

// ArityHardLimit bounds every requested arity and shape dimension.
const ArityHardLimit = 128

// arityFamilies are the operation families whose generated surface is a
// range of single arities, in output order.
var arityFamilies = []string{
	"any", "all", "contains",
	"each", "eachzip",
	"map", "zipwith", "zip",
	"reduce", "fold", "mapreduce", "mapfold",
	"filter", "partition", "unique",
}

// shapeFamilies are the operation families that accept extra explicit
// shapes (pairs of dimensions) beyond their default ranges.
var shapeFamilies = map[string]bool{
	"zipwith": true,
	"zip":     true,
	"flatmap": true,
	"flatten": true,
	"concat":  true,
	"take":    true,
	"drop":    true,
	"product": true,
}

// Config is the specialization request list: which operation families to
// generate, and up to which arity or for which explicit shapes.
type Config struct {
	// Package is the package name of the generated files.
	Package string `yaml:"package"`

	// Arities caps each single-arity family. Families not listed default
	// to DefaultMaxArity.
	Arities map[string]int `yaml:"arities"`

	// BoundsArity generates Take and Drop for every 0 <= k <= n up to this n.
	BoundsArity int `yaml:"bounds_arity"`

	// ConcatArity generates Concat for every pair of lengths up to this value.
	ConcatArity int `yaml:"concat_arity"`

	// FlattenArity generates Flatten and FlatMap for every outer and inner
	// length pair up to this value.
	FlattenArity int `yaml:"flatten_arity"`

	// ProductArity generates Product for every pair of lengths up to this value.
	ProductArity int `yaml:"product_arity"`

	// Shapes requests extra explicit shapes per family, each entry a
	// [first, second] dimension pair.
	Shapes map[string][][]int `yaml:"shapes"`
}

// DefaultConfig returns the configuration used when no config file is given.
func DefaultConfig() Config {
	return Config{
		Package:      "unroll",
		Arities:      map[string]int{},
		BoundsArity:  8,
		ConcatArity:  8,
		FlattenArity: 6,
		ProductArity: 6,
		Shapes:       map[string][][]int{},
	}
}

// LoadConfig reads a YAML configuration file. Unknown fields are rejected.
// The result is not yet normalized; apply overrides first, then Normalize.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("unrollgen: read config: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var cfg Config
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("unrollgen: parse config %s: %w", path, err)
	}
	return cfg, nil
}

// RaiseArity raises every single-arity family cap to at least n. It is the
// one-shot relaxation hook behind UNROLLGEN_MAX_ARITY and is idempotent.
func (c *Config) RaiseArity(n int) {
	if n <= 0 {
		return
	}
	if c.Arities == nil {
		c.Arities = map[string]int{}
	}
	for _, fam := range arityFamilies {
		cur, ok := c.Arities[fam]
		if !ok {
			cur = DefaultMaxArity
		}
		if n > cur {
			c.Arities[fam] = n
		} else {
			c.Arities[fam] = cur
		}
	}
}

// Normalize fills defaults and validates the configuration. It is
// idempotent: normalizing an already normalized config changes nothing.
func (c *Config) Normalize() error {
	if c.Package == "" {
		c.Package = "unroll"
	}
	if c.Arities == nil {
		c.Arities = map[string]int{}
	}
	for fam := range c.Arities {
		if !isArityFamily(fam) {
			return fmt.Errorf("unrollgen: unknown operation family %q in arities", fam)
		}
	}
	for _, fam := range arityFamilies {
		n, ok := c.Arities[fam]
		if !ok {
			c.Arities[fam] = DefaultMaxArity
			continue
		}
		if n < 0 || n > ArityHardLimit {
			return fmt.Errorf("unrollgen: arity %d for %s outside [0, %d]", n, fam, ArityHardLimit)
		}
	}
	if err := c.normalizeRange(&c.BoundsArity, 8, "bounds_arity"); err != nil {
		return err
	}
	if err := c.normalizeRange(&c.ConcatArity, 8, "concat_arity"); err != nil {
		return err
	}
	if err := c.normalizeRange(&c.FlattenArity, 6, "flatten_arity"); err != nil {
		return err
	}
	if err := c.normalizeRange(&c.ProductArity, 6, "product_arity"); err != nil {
		return err
	}
	if c.Shapes == nil {
		c.Shapes = map[string][][]int{}
	}
	for fam, shapes := range c.Shapes {
		if !shapeFamilies[fam] {
			return fmt.Errorf("unrollgen: family %q does not take explicit shapes", fam)
		}
		for _, sh := range shapes {
			if len(sh) != 2 {
				return fmt.Errorf("unrollgen: shape %v for %s: want [first, second]", sh, fam)
			}
			if sh[0] < 0 || sh[1] < 0 || sh[0] > ArityHardLimit || sh[1] > ArityHardLimit {
				return fmt.Errorf("unrollgen: shape %v for %s outside [0, %d]", sh, fam, ArityHardLimit)
			}
			if (fam == "take" || fam == "drop") && sh[0] > sh[1] {
				return &BoundsError{Op: fam, Count: sh[0], Len: sh[1]}
			}
		}
	}
	return nil
}

func (c *Config) normalizeRange(v *int, def int, name string) error {
	if *v == 0 {
		*v = def
		return nil
	}
	if *v < 0 || *v > ArityHardLimit {
		return fmt.Errorf("unrollgen: %s %d outside [0, %d]", name, *v, ArityHardLimit)
	}
	return nil
}

func isArityFamily(name string) bool {
	for _, fam := range arityFamilies {
		if fam == name {
			return true
		}
	}
	return false
}
