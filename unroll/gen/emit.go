package gen

import (
	"bytes"
	"fmt"
	"go/format"
)

// header marks every generated file.
const header = "// Code generated by unrollgen. DO NOT EDIT.\n"

// tupleImport is the import path of the pair type used by zip, partition
// and product specializations.
const tupleImport = "github.com/lguimbarda/unrolled/unroll/tuple"

// plannedFile groups the rendered operation families that land in one
// output file.
type plannedFile struct {
	name    string
	imports []string
	symbols []symbol
}

// pairSet keeps an ordered, deduplicated list of dimension pairs.
type pairSet struct {
	seen  map[[2]int]bool
	pairs [][2]int
}

func newPairSet() *pairSet {
	return &pairSet{seen: map[[2]int]bool{}}
}

func (ps *pairSet) add(a, b int) {
	p := [2]int{a, b}
	if ps.seen[p] {
		return
	}
	ps.seen[p] = true
	ps.pairs = append(ps.pairs, p)
}

// plan resolves a normalized config into the full set of files and symbols
// to generate. It also resolves the shapes one family implies in another
// (a mixed zip needs a truncating take; a flatmap needs its flatten and
// map) and rejects requests that exceed a dependency's configured cap.
func plan(cfg Config) ([]plannedFile, error) {
	ar := cfg.Arities

	if ar["contains"] > ar["any"] {
		return nil, fmt.Errorf("unrollgen: contains arity %d exceeds any arity %d", ar["contains"], ar["any"])
	}
	if ar["zip"] > ar["zipwith"] {
		return nil, fmt.Errorf("unrollgen: zip arity %d exceeds zipwith arity %d", ar["zip"], ar["zipwith"])
	}
	if ar["mapreduce"] > ar["reduce"] || ar["mapreduce"] > ar["map"] {
		return nil, fmt.Errorf("unrollgen: mapreduce arity %d exceeds reduce or map arity", ar["mapreduce"])
	}
	if ar["mapfold"] > ar["fold"] || ar["mapfold"] > ar["map"] {
		return nil, fmt.Errorf("unrollgen: mapfold arity %d exceeds fold or map arity", ar["mapfold"])
	}
	for _, fam := range []string{"filter", "partition", "unique"} {
		if ar[fam] > ar["fold"] {
			return nil, fmt.Errorf("unrollgen: %s arity %d exceeds fold arity %d; raise fold", fam, ar[fam], ar["fold"])
		}
	}

	// Shape resolution. Mixed zipwith shapes imply a truncating take and
	// an equal-arity zipwith at the shorter length; zip shapes imply
	// zipwith shapes; flatmap shapes imply flatten shapes and a map at the
	// outer length.
	zipWith := newPairSet()
	for n := 0; n <= ar["zipwith"]; n++ {
		zipWith.add(n, n)
	}
	for _, sh := range cfg.Shapes["zipwith"] {
		zipWith.add(sh[0], sh[1])
	}
	zip := newPairSet()
	for n := 0; n <= ar["zip"]; n++ {
		zip.add(n, n)
	}
	for _, sh := range cfg.Shapes["zip"] {
		zip.add(sh[0], sh[1])
		zipWith.add(sh[0], sh[1])
	}

	take := newPairSet()
	for n := 0; n <= cfg.BoundsArity; n++ {
		for k := 0; k <= n; k++ {
			take.add(k, n)
		}
	}
	for _, sh := range cfg.Shapes["take"] {
		take.add(sh[0], sh[1])
	}
	drop := newPairSet()
	for n := 0; n <= cfg.BoundsArity; n++ {
		for k := 0; k <= n; k++ {
			drop.add(k, n)
		}
	}
	for _, sh := range cfg.Shapes["drop"] {
		drop.add(sh[0], sh[1])
	}
	for _, p := range zipWith.pairs {
		if p[0] == p[1] {
			continue
		}
		k, err := MinLen("zipwith", Arity(p[0]), Arity(p[1]))
		if err != nil {
			return nil, err
		}
		if k > ar["zipwith"] {
			zipWith.add(k, k)
		}
		if p[0] > p[1] {
			take.add(k, p[0])
		} else {
			take.add(k, p[1])
		}
	}

	concat := newPairSet()
	for n := 0; n <= cfg.ConcatArity; n++ {
		for m := 0; m <= cfg.ConcatArity; m++ {
			concat.add(n, m)
		}
	}
	for _, sh := range cfg.Shapes["concat"] {
		concat.add(sh[0], sh[1])
	}

	flatten := newPairSet()
	for n := 0; n <= cfg.FlattenArity; n++ {
		for m := 0; m <= cfg.FlattenArity; m++ {
			flatten.add(n, m)
		}
	}
	for _, sh := range cfg.Shapes["flatten"] {
		flatten.add(sh[0], sh[1])
	}
	flatMap := newPairSet()
	for n := 0; n <= cfg.FlattenArity; n++ {
		for m := 0; m <= cfg.FlattenArity; m++ {
			flatMap.add(n, m)
		}
	}
	for _, sh := range cfg.Shapes["flatmap"] {
		flatMap.add(sh[0], sh[1])
		flatten.add(sh[0], sh[1])
	}
	for _, p := range flatMap.pairs {
		if p[0] > ar["map"] {
			return nil, fmt.Errorf("unrollgen: flatmap shape %dx%d exceeds map arity %d; raise map", p[0], p[1], ar["map"])
		}
	}

	product := newPairSet()
	for n := 0; n <= cfg.ProductArity; n++ {
		for m := 0; m <= cfg.ProductArity; m++ {
			product.add(n, m)
		}
	}
	for _, sh := range cfg.Shapes["product"] {
		product.add(sh[0], sh[1])
	}

	var files []plannedFile

	logic := plannedFile{name: "zz_generated_logic.go"}
	for n := 0; n <= ar["any"]; n++ {
		if err := logic.add(renderAny(n)); err != nil {
			return nil, err
		}
	}
	for n := 0; n <= ar["all"]; n++ {
		if err := logic.add(renderAll(n)); err != nil {
			return nil, err
		}
	}
	for n := 0; n <= ar["contains"]; n++ {
		if err := logic.add(renderContains(n)); err != nil {
			return nil, err
		}
	}
	files = append(files, logic)

	each := plannedFile{name: "zz_generated_each.go"}
	for n := 0; n <= ar["each"]; n++ {
		if err := each.add(renderEach(n)); err != nil {
			return nil, err
		}
	}
	for n := 0; n <= ar["eachzip"]; n++ {
		if err := each.add(renderEachZip(n)); err != nil {
			return nil, err
		}
	}
	files = append(files, each)

	mapFile := plannedFile{name: "zz_generated_map.go", imports: []string{tupleImport}}
	for n := 0; n <= ar["map"]; n++ {
		if err := mapFile.add(renderMap(n)); err != nil {
			return nil, err
		}
	}
	for _, p := range zipWith.pairs {
		if err := mapFile.add(renderZipWith(p[0], p[1])); err != nil {
			return nil, err
		}
	}
	for _, p := range zip.pairs {
		if err := mapFile.add(renderZip(p[0], p[1])); err != nil {
			return nil, err
		}
	}
	files = append(files, mapFile)

	fold := plannedFile{name: "zz_generated_fold.go"}
	for n := 1; n <= ar["reduce"]; n++ {
		if err := fold.add(renderReduce(n)); err != nil {
			return nil, err
		}
	}
	for n := 0; n <= ar["fold"]; n++ {
		if err := fold.add(renderFold(n)); err != nil {
			return nil, err
		}
	}
	for n := 1; n <= ar["mapreduce"]; n++ {
		if err := fold.add(renderMapReduce(n)); err != nil {
			return nil, err
		}
	}
	for n := 0; n <= ar["mapfold"]; n++ {
		if err := fold.add(renderMapFold(n)); err != nil {
			return nil, err
		}
	}
	files = append(files, fold)

	bounds := plannedFile{name: "zz_generated_bounds.go"}
	for _, p := range take.pairs {
		if err := bounds.add(renderTake(p[0], p[1])); err != nil {
			return nil, err
		}
	}
	for _, p := range drop.pairs {
		if err := bounds.add(renderDrop(p[0], p[1])); err != nil {
			return nil, err
		}
	}
	for _, p := range concat.pairs {
		if err := bounds.add(renderConcat(p[0], p[1])); err != nil {
			return nil, err
		}
	}
	for _, p := range flatten.pairs {
		if err := bounds.add(renderFlatten(p[0], p[1])); err != nil {
			return nil, err
		}
	}
	for _, p := range flatMap.pairs {
		if err := bounds.add(renderFlatMap(p[0], p[1])); err != nil {
			return nil, err
		}
	}
	files = append(files, bounds)

	sel := plannedFile{name: "zz_generated_select.go", imports: []string{tupleImport, "slices"}}
	for n := 0; n <= ar["filter"]; n++ {
		if err := sel.add(renderFilter(n)); err != nil {
			return nil, err
		}
	}
	for n := 0; n <= ar["partition"]; n++ {
		if err := sel.add(renderPartition(n)); err != nil {
			return nil, err
		}
	}
	for n := 0; n <= ar["unique"]; n++ {
		if err := sel.add(renderUnique(n)); err != nil {
			return nil, err
		}
	}
	files = append(files, sel)

	prod := plannedFile{name: "zz_generated_product.go", imports: []string{tupleImport}}
	for _, p := range product.pairs {
		if err := prod.add(renderProduct(p[0], p[1])); err != nil {
			return nil, err
		}
	}
	files = append(files, prod)

	return files, nil
}

func (pf *plannedFile) add(sym symbol, err error) error {
	if err != nil {
		return err
	}
	pf.symbols = append(pf.symbols, sym)
	return nil
}

// Generate renders every requested specialization into gofmt-formatted
// files, keyed by file name. It is all-or-nothing: any failure returns with
// no partial output.
func Generate(cfg Config) (map[string][]byte, error) {
	c := cfg
	if err := c.Normalize(); err != nil {
		return nil, err
	}
	files, err := plan(c)
	if err != nil {
		return nil, err
	}
	out := make(map[string][]byte, len(files))
	for _, pf := range files {
		src, err := renderFile(c.Package, pf)
		if err != nil {
			return nil, err
		}
		out[pf.name] = src
	}
	return out, nil
}

// Plan lists the symbols Generate would produce, in output order, without
// rendering files.
func Plan(cfg Config) ([]string, error) {
	c := cfg
	if err := c.Normalize(); err != nil {
		return nil, err
	}
	files, err := plan(c)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, pf := range files {
		for _, sym := range pf.symbols {
			names = append(names, sym.name)
		}
	}
	return names, nil
}

func renderFile(pkg string, pf plannedFile) ([]byte, error) {
	var b bytes.Buffer
	b.WriteString(header)
	fmt.Fprintf(&b, "\npackage %s\n", pkg)
	if len(pf.imports) > 0 {
		b.WriteString("\nimport (\n")
		for _, imp := range pf.imports {
			fmt.Fprintf(&b, "\t%q\n", imp)
		}
		b.WriteString(")\n")
	}
	for _, sym := range pf.symbols {
		b.WriteString("\n")
		b.WriteString(sym.source)
	}
	src, err := format.Source(b.Bytes())
	if err != nil {
		return nil, fmt.Errorf("unrollgen: format %s: %w", pf.name, err)
	}
	return src, nil
}
