// Command unrollgen generates the unrolled operation specializations of the
// unroll package from a YAML specialization request list.
//
// Each entry in the config asks for one concrete shape (an arity cap per
// operation family, or an explicit dimension pair); running the generator
// materializes those shapes as straight-line Go functions. Adding a call
// site with a new shape is a config edit plus `go generate`.
//
// Environment overrides:
//
//	UNROLLGEN_MAX_ARITY  raise every per-family arity cap to at least N
//	UNROLLGEN_OUT        override the output directory
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"

	"github.com/xyproto/env/v2"

	"github.com/lguimbarda/unrolled/unroll/gen"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("unrollgen: ")

	configPath := flag.String("config", "", "YAML specialization request list (default: built-in config)")
	out := flag.String("out", ".", "output directory for generated files")
	pkg := flag.String("pkg", "", "package name override for generated files")
	list := flag.Bool("list", false, "print planned symbols without writing files")
	flag.Parse()

	cfg, err := buildConfig(*configPath, *pkg)
	if err != nil {
		log.Fatal(err)
	}

	if *list {
		names, err := gen.Plan(cfg)
		if err != nil {
			log.Fatal(err)
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return
	}

	files, err := gen.Generate(cfg)
	if err != nil {
		log.Fatal(err)
	}

	outDir := env.Str("UNROLLGEN_OUT", *out)
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		path := filepath.Join(outDir, name)
		if err := os.WriteFile(path, files[name], 0o644); err != nil {
			log.Fatal(err)
		}
		log.Printf("wrote %s (%d bytes)", path, len(files[name]))
	}
}

// buildConfig loads the config file (or the defaults), applies the package
// override and the one-shot arity relaxation from the environment.
func buildConfig(configPath, pkg string) (gen.Config, error) {
	cfg := gen.DefaultConfig()
	if configPath != "" {
		loaded, err := gen.LoadConfig(configPath)
		if err != nil {
			return gen.Config{}, err
		}
		cfg = loaded
	}
	if pkg != "" {
		cfg.Package = pkg
	}
	cfg.RaiseArity(env.Int("UNROLLGEN_MAX_ARITY", 0))
	return cfg, nil
}
