package gen

import (
	"fmt"
	"strings"
)

// symbol is one rendered operation specialization.
type symbol struct {
	name   string
	source string
}

// literal renders a composite literal of n elements, one element per line
// beyond 8 elements.
func literal(typ string, n int, term Term) string {
	if n <= 8 {
		elems, _ := Synthesize(TupleConstruction, n, term)
		return typ + "{" + elems + "}"
	}
	var b strings.Builder
	b.WriteString(typ)
	b.WriteString("{\n")
	for i := 0; i < n; i++ {
		b.WriteString("\t\t")
		b.WriteString(term(i))
		b.WriteString(",\n")
	}
	b.WriteString("\t}")
	return b.String()
}

// stmtBody renders a statement-list body at one tab of indentation.
func stmtBody(stmts []string) string {
	var b strings.Builder
	for _, s := range stmts {
		b.WriteString("\t")
		b.WriteString(strings.ReplaceAll(s, "\n", "\n\t"))
		b.WriteString("\n")
	}
	return b.String()
}

func renderAny(n int) (symbol, error) {
	expr, err := Synthesize(ShortCircuitOr, n, func(i int) string { return fmt.Sprintf("f(s[%d])", i) })
	if err != nil {
		return symbol{}, err
	}
	name := fmt.Sprintf("Any%d", n)
	var b strings.Builder
	if n == 0 {
		fmt.Fprintf(&b, "// %s reports whether f returns true for any element of s. With no\n", name)
		fmt.Fprintf(&b, "// elements the result is the identity false; f is never called.\n")
	} else {
		fmt.Fprintf(&b, "// %s reports whether f returns true for any element of s, evaluating\n", name)
		fmt.Fprintf(&b, "// in index order and stopping at the first true result.\n")
	}
	fmt.Fprintf(&b, "func %s[T any](f func(T) bool, s [%d]T) bool {\n\treturn %s\n}\n", name, n, expr)
	return symbol{name: name, source: b.String()}, nil
}

func renderAll(n int) (symbol, error) {
	expr, err := Synthesize(ShortCircuitAnd, n, func(i int) string { return fmt.Sprintf("f(s[%d])", i) })
	if err != nil {
		return symbol{}, err
	}
	name := fmt.Sprintf("All%d", n)
	var b strings.Builder
	if n == 0 {
		fmt.Fprintf(&b, "// %s reports whether f returns true for every element of s. With no\n", name)
		fmt.Fprintf(&b, "// elements the result is the identity true; f is never called.\n")
	} else {
		fmt.Fprintf(&b, "// %s reports whether f returns true for every element of s, evaluating\n", name)
		fmt.Fprintf(&b, "// in index order and stopping at the first false result.\n")
	}
	fmt.Fprintf(&b, "func %s[T any](f func(T) bool, s [%d]T) bool {\n\treturn %s\n}\n", name, n, expr)
	return symbol{name: name, source: b.String()}, nil
}

func renderContains(n int) (symbol, error) {
	name := fmt.Sprintf("Contains%d", n)
	var b strings.Builder
	fmt.Fprintf(&b, "// %s reports whether item is equal to some element of s. Comparison\n", name)
	fmt.Fprintf(&b, "// uses ==: identity for pointer and interface values, value equality\n")
	fmt.Fprintf(&b, "// otherwise, so distinct but equal values compare as present.\n")
	fmt.Fprintf(&b, "func %s[T comparable](item T, s [%d]T) bool {\n", name, n)
	fmt.Fprintf(&b, "\treturn Any%d(func(x T) bool { return x == item }, s)\n}\n", n)
	return symbol{name: name, source: b.String()}, nil
}

func renderEach(n int) (symbol, error) {
	name := fmt.Sprintf("Each%d", n)
	var b strings.Builder
	fmt.Fprintf(&b, "// %s calls f once per element of s, in index order.\n", name)
	if n == 0 {
		fmt.Fprintf(&b, "func %s[T any](f func(T), s [0]T) {}\n", name)
		return symbol{name: name, source: b.String()}, nil
	}
	stmts, err := Synthesize(Sequencing, n, func(i int) string { return fmt.Sprintf("f(s[%d])", i) })
	if err != nil {
		return symbol{}, err
	}
	fmt.Fprintf(&b, "func %s[T any](f func(T), s [%d]T) {\n%s}\n", name, n, stmtBody(strings.Split(stmts, "\n")))
	return symbol{name: name, source: b.String()}, nil
}

func renderEachZip(n int) (symbol, error) {
	name := fmt.Sprintf("EachZip%d", n)
	var b strings.Builder
	fmt.Fprintf(&b, "// %s calls f once per index-paired element of a and b, in index order.\n", name)
	if n == 0 {
		fmt.Fprintf(&b, "func %s[A, B any](f func(A, B), a [0]A, b [0]B) {}\n", name)
		return symbol{name: name, source: b.String()}, nil
	}
	stmts, err := Synthesize(Sequencing, n, func(i int) string { return fmt.Sprintf("f(a[%d], b[%d])", i, i) })
	if err != nil {
		return symbol{}, err
	}
	fmt.Fprintf(&b, "func %s[A, B any](f func(A, B), a [%d]A, b [%d]B) {\n%s}\n", name, n, n, stmtBody(strings.Split(stmts, "\n")))
	return symbol{name: name, source: b.String()}, nil
}

func renderMap(n int) (symbol, error) {
	name := fmt.Sprintf("Map%d", n)
	lit := literal(fmt.Sprintf("[%d]R", n), n, func(i int) string { return fmt.Sprintf("f(s[%d])", i) })
	var b strings.Builder
	fmt.Fprintf(&b, "// %s applies f to each element of s in index order and collects the\n", name)
	fmt.Fprintf(&b, "// results into a new array of the same length.\n")
	fmt.Fprintf(&b, "func %s[T, R any](f func(T) R, s [%d]T) [%d]R {\n\treturn %s\n}\n", name, n, n, lit)
	return symbol{name: name, source: b.String()}, nil
}

func renderZipWith(n, m int) (symbol, error) {
	if n == m {
		name := fmt.Sprintf("ZipWith%d", n)
		lit := literal(fmt.Sprintf("[%d]R", n), n, func(i int) string { return fmt.Sprintf("f(a[%d], b[%d])", i, i) })
		var b strings.Builder
		fmt.Fprintf(&b, "// %s applies f to index-paired elements of a and b and collects the\n", name)
		fmt.Fprintf(&b, "// results into a new array of the same length.\n")
		fmt.Fprintf(&b, "func %s[A, B, R any](f func(A, B) R, a [%d]A, b [%d]B) [%d]R {\n\treturn %s\n}\n", name, n, n, n, lit)
		return symbol{name: name, source: b.String()}, nil
	}
	k, err := MinLen("zipwith", Arity(n), Arity(m))
	if err != nil {
		return symbol{}, err
	}
	name := fmt.Sprintf("ZipWith%dx%d", n, m)
	var b strings.Builder
	fmt.Fprintf(&b, "// %s applies f to index-paired elements of a and b, truncating to\n", name)
	fmt.Fprintf(&b, "// the shorter length.\n")
	fmt.Fprintf(&b, "func %s[A, B, R any](f func(A, B) R, a [%d]A, b [%d]B) [%d]R {\n", name, n, m, k)
	if n < m {
		fmt.Fprintf(&b, "\treturn ZipWith%d(f, a, Take%dOf%d(b))\n}\n", k, k, m)
	} else {
		fmt.Fprintf(&b, "\treturn ZipWith%d(f, Take%dOf%d(a), b)\n}\n", k, k, n)
	}
	return symbol{name: name, source: b.String()}, nil
}

func renderZip(n, m int) (symbol, error) {
	k, err := MinLen("zip", Arity(n), Arity(m))
	if err != nil {
		return symbol{}, err
	}
	var name, inner string
	if n == m {
		name = fmt.Sprintf("Zip%d", n)
		inner = fmt.Sprintf("ZipWith%d", n)
	} else {
		name = fmt.Sprintf("Zip%dx%d", n, m)
		inner = fmt.Sprintf("ZipWith%dx%d", n, m)
	}
	var b strings.Builder
	if n == m {
		fmt.Fprintf(&b, "// %s pairs the elements of a and b index-wise.\n", name)
	} else {
		fmt.Fprintf(&b, "// %s pairs the elements of a and b index-wise, truncating to the\n", name)
		fmt.Fprintf(&b, "// shorter length.\n")
	}
	fmt.Fprintf(&b, "func %s[A, B any](a [%d]A, b [%d]B) [%d]tuple.Pair[A, B] {\n", name, n, m, k)
	fmt.Fprintf(&b, "\treturn %s(tuple.MakePair[A, B], a, b)\n}\n", inner)
	return symbol{name: name, source: b.String()}, nil
}

func renderReduce(n int) (symbol, error) {
	stmts, err := SynthesizeFold("reduce", n, "",
		func(i int) string { return fmt.Sprintf("s[%d]", i) },
		func(acc, t string) string { return fmt.Sprintf("op(%s, %s)", acc, t) })
	if err != nil {
		return symbol{}, err
	}
	name := fmt.Sprintf("Reduce%d", n)
	var b strings.Builder
	fmt.Fprintf(&b, "// %s folds s with op, strictly left-associative, using the first\n", name)
	fmt.Fprintf(&b, "// element as the initial accumulator.\n")
	fmt.Fprintf(&b, "func %s[T any](op func(T, T) T, s [%d]T) T {\n%s\treturn acc\n}\n", name, n, stmtBody(stmts))
	return symbol{name: name, source: b.String()}, nil
}

func renderFold(n int) (symbol, error) {
	stmts, err := SynthesizeFold("fold", n, "init",
		func(i int) string { return fmt.Sprintf("s[%d]", i) },
		func(acc, t string) string { return fmt.Sprintf("op(%s, %s)", acc, t) })
	if err != nil {
		return symbol{}, err
	}
	name := fmt.Sprintf("Fold%d", n)
	var b strings.Builder
	fmt.Fprintf(&b, "// %s folds s with op, strictly left-associative, seeded with init.\n", name)
	fmt.Fprintf(&b, "// The accumulator type is independent of the element type.\n")
	fmt.Fprintf(&b, "func %s[A, T any](op func(A, T) A, init A, s [%d]T) A {\n%s\treturn acc\n}\n", name, n, stmtBody(stmts))
	return symbol{name: name, source: b.String()}, nil
}

func renderMapReduce(n int) (symbol, error) {
	if n == 0 {
		return symbol{}, &EmptyInputError{Op: "mapreduce"}
	}
	name := fmt.Sprintf("MapReduce%d", n)
	var b strings.Builder
	fmt.Fprintf(&b, "// %s applies f to each element of s, then folds the mapped results\n", name)
	fmt.Fprintf(&b, "// with op, strictly left-associative.\n")
	fmt.Fprintf(&b, "func %s[T, R any](f func(T) R, op func(R, R) R, s [%d]T) R {\n", name, n)
	fmt.Fprintf(&b, "\treturn Reduce%d(op, Map%d(f, s))\n}\n", n, n)
	return symbol{name: name, source: b.String()}, nil
}

func renderMapFold(n int) (symbol, error) {
	name := fmt.Sprintf("MapFold%d", n)
	var b strings.Builder
	fmt.Fprintf(&b, "// %s applies f to each element of s, then folds the mapped results\n", name)
	fmt.Fprintf(&b, "// with op, seeded with init.\n")
	fmt.Fprintf(&b, "func %s[A, T, R any](f func(T) R, op func(A, R) A, init A, s [%d]T) A {\n", name, n)
	fmt.Fprintf(&b, "\treturn Fold%d(op, init, Map%d(f, s))\n}\n", n, n)
	return symbol{name: name, source: b.String()}, nil
}

func renderTake(k, n int) (symbol, error) {
	if k > n {
		return symbol{}, &BoundsError{Op: "take", Count: k, Len: n}
	}
	name := fmt.Sprintf("Take%dOf%d", k, n)
	lit := literal(fmt.Sprintf("[%d]T", k), k, func(i int) string { return fmt.Sprintf("s[%d]", i) })
	var b strings.Builder
	fmt.Fprintf(&b, "// %s returns the first %d elements of s.\n", name, k)
	fmt.Fprintf(&b, "func %s[T any](s [%d]T) [%d]T {\n\treturn %s\n}\n", name, n, k, lit)
	return symbol{name: name, source: b.String()}, nil
}

func renderDrop(k, n int) (symbol, error) {
	if k > n {
		return symbol{}, &BoundsError{Op: "drop", Count: k, Len: n}
	}
	name := fmt.Sprintf("Drop%dOf%d", k, n)
	lit := literal(fmt.Sprintf("[%d]T", n-k), n-k, func(i int) string { return fmt.Sprintf("s[%d]", k+i) })
	var b strings.Builder
	fmt.Fprintf(&b, "// %s returns the elements of s after the first %d.\n", name, k)
	fmt.Fprintf(&b, "func %s[T any](s [%d]T) [%d]T {\n\treturn %s\n}\n", name, n, n-k, lit)
	return symbol{name: name, source: b.String()}, nil
}

func renderConcat(n, m int) (symbol, error) {
	name := fmt.Sprintf("Concat%dx%d", n, m)
	lit := literal(fmt.Sprintf("[%d]T", n+m), n+m, func(i int) string {
		if i < n {
			return fmt.Sprintf("a[%d]", i)
		}
		return fmt.Sprintf("b[%d]", i-n)
	})
	var b strings.Builder
	fmt.Fprintf(&b, "// %s concatenates a and b in order.\n", name)
	fmt.Fprintf(&b, "func %s[T any](a [%d]T, b [%d]T) [%d]T {\n\treturn %s\n}\n", name, n, m, n+m, lit)
	return symbol{name: name, source: b.String()}, nil
}

func renderFlatten(n, m int) (symbol, error) {
	name := fmt.Sprintf("Flatten%dx%d", n, m)
	lit := literal(fmt.Sprintf("[%d]T", n*m), n*m, func(i int) string {
		return fmt.Sprintf("s[%d][%d]", i/m, i%m)
	})
	var b strings.Builder
	fmt.Fprintf(&b, "// %s concatenates the rows of s left to right, preserving the\n", name)
	fmt.Fprintf(&b, "// nested element order.\n")
	fmt.Fprintf(&b, "func %s[T any](s [%d][%d]T) [%d]T {\n\treturn %s\n}\n", name, n, m, n*m, lit)
	return symbol{name: name, source: b.String()}, nil
}

func renderFlatMap(n, m int) (symbol, error) {
	name := fmt.Sprintf("FlatMap%dx%d", n, m)
	var b strings.Builder
	fmt.Fprintf(&b, "// %s applies f to each element of s and concatenates the resulting\n", name)
	fmt.Fprintf(&b, "// rows in order.\n")
	fmt.Fprintf(&b, "func %s[T, R any](f func(T) [%d]R, s [%d]T) [%d]R {\n", name, m, n, n*m)
	fmt.Fprintf(&b, "\treturn Flatten%dx%d(Map%d(f, s))\n}\n", n, m, n)
	return symbol{name: name, source: b.String()}, nil
}

func renderFilter(n int) (symbol, error) {
	name := fmt.Sprintf("Filter%d", n)
	var b strings.Builder
	fmt.Fprintf(&b, "// %s returns the elements of s satisfying f, preserving order. The\n", name)
	fmt.Fprintf(&b, "// result is a slice because its length depends on the element values.\n")
	fmt.Fprintf(&b, "func %s[T any](f func(T) bool, s [%d]T) []T {\n", name, n)
	fmt.Fprintf(&b, "\treturn Fold%d(func(acc []T, x T) []T {\n", n)
	fmt.Fprintf(&b, "\t\tif f(x) {\n\t\t\treturn append(acc, x)\n\t\t}\n\t\treturn acc\n")
	fmt.Fprintf(&b, "\t}, make([]T, 0, %d), s)\n}\n", n)
	return symbol{name: name, source: b.String()}, nil
}

func renderPartition(n int) (symbol, error) {
	name := fmt.Sprintf("Partition%d", n)
	var b strings.Builder
	fmt.Fprintf(&b, "// %s splits s into the elements satisfying f and the rest, in a\n", name)
	fmt.Fprintf(&b, "// single pass with one predicate evaluation per element. Both results\n")
	fmt.Fprintf(&b, "// preserve the original order.\n")
	fmt.Fprintf(&b, "func %s[T any](f func(T) bool, s [%d]T) (match, rest []T) {\n", name, n)
	fmt.Fprintf(&b, "\tacc := Fold%d(func(acc tuple.Pair[[]T, []T], x T) tuple.Pair[[]T, []T] {\n", n)
	fmt.Fprintf(&b, "\t\tif f(x) {\n\t\t\tacc.V1 = append(acc.V1, x)\n\t\t} else {\n\t\t\tacc.V2 = append(acc.V2, x)\n\t\t}\n\t\treturn acc\n")
	fmt.Fprintf(&b, "\t}, tuple.Pair[[]T, []T]{}, s)\n")
	fmt.Fprintf(&b, "\treturn acc.V1, acc.V2\n}\n")
	return symbol{name: name, source: b.String()}, nil
}

func renderUnique(n int) (symbol, error) {
	name := fmt.Sprintf("Unique%d", n)
	var b strings.Builder
	fmt.Fprintf(&b, "// %s returns the distinct elements of s in first-occurrence order.\n", name)
	fmt.Fprintf(&b, "// Distinctness uses ==, with the same equality semantics as Contains.\n")
	fmt.Fprintf(&b, "func %s[T comparable](s [%d]T) []T {\n", name, n)
	fmt.Fprintf(&b, "\treturn Fold%d(func(acc []T, x T) []T {\n", n)
	fmt.Fprintf(&b, "\t\tif slices.Contains(acc, x) {\n\t\t\treturn acc\n\t\t}\n\t\treturn append(acc, x)\n")
	fmt.Fprintf(&b, "\t}, make([]T, 0, %d), s)\n}\n", n)
	return symbol{name: name, source: b.String()}, nil
}

func renderProduct(n, m int) (symbol, error) {
	name := fmt.Sprintf("Product%dx%d", n, m)
	typ := fmt.Sprintf("[%d]tuple.Pair[A, B]", n*m)
	var lit string
	if n*m == 0 {
		lit = typ + "{}"
	} else {
		var lb strings.Builder
		lb.WriteString(typ)
		lb.WriteString("{\n")
		for i := 0; i < n*m; i++ {
			fmt.Fprintf(&lb, "\t\t{a[%d], b[%d]},\n", i%n, i/n)
		}
		lb.WriteString("\t}")
		lit = lb.String()
	}
	var b strings.Builder
	fmt.Fprintf(&b, "// %s returns every pairing of an element of a with an element of b.\n", name)
	fmt.Fprintf(&b, "// The emission order is fixed: the second operand varies slowest and\n")
	fmt.Fprintf(&b, "// the first fastest, matching the fold the operation derives from.\n")
	fmt.Fprintf(&b, "func %s[A, B any](a [%d]A, b [%d]B) [%d]tuple.Pair[A, B] {\n\treturn %s\n}\n", name, n, m, n*m, lit)
	return symbol{name: name, source: b.String()}, nil
}
