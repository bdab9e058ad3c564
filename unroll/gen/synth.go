package gen

import (
	"fmt"
	"strings"
)

// Kind selects how the per-index applications of an unrolled operation are
// joined into one expression or statement list.
type Kind int

const (
	// ShortCircuitOr joins terms with ||, identity false.
	ShortCircuitOr Kind = iota
	// ShortCircuitAnd joins terms with &&, identity true.
	ShortCircuitAnd
	// Sequencing evaluates terms as consecutive statements.
	Sequencing
	// TupleConstruction collects terms as elements of a composite literal.
	TupleConstruction
	// LeftFold combines adjacent results left-associatively; rendered by
	// SynthesizeFold, which also handles the seed.
	LeftFold
)

func (k Kind) String() string {
	switch k {
	case ShortCircuitOr:
		return "ShortCircuitOr"
	case ShortCircuitAnd:
		return "ShortCircuitAnd"
	case Sequencing:
		return "Sequencing"
	case TupleConstruction:
		return "TupleConstruction"
	case LeftFold:
		return "LeftFold"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Term renders the source text of the i-th per-index application.
type Term func(i int) string

// Synthesize renders the combination of n per-index terms for the
// expression-shaped kinds. ShortCircuitOr and ShortCircuitAnd produce a
// short-circuiting chain in index order, with "false" and "true" as the
// zero-term identities. Sequencing produces one statement per line.
// TupleConstruction produces a comma-separated element list (empty at n=0).
// LeftFold is not expression-shaped; use SynthesizeFold.
func Synthesize(kind Kind, n int, term Term) (string, error) {
	if n < 0 {
		return "", fmt.Errorf("unrollgen: negative term count %d", n)
	}
	switch kind {
	case ShortCircuitOr:
		if n == 0 {
			return "false", nil
		}
		return joinTerms(n, term, " || "), nil
	case ShortCircuitAnd:
		if n == 0 {
			return "true", nil
		}
		return joinTerms(n, term, " && "), nil
	case Sequencing:
		return joinTerms(n, term, "\n"), nil
	case TupleConstruction:
		return joinTerms(n, term, ", "), nil
	case LeftFold:
		return "", fmt.Errorf("unrollgen: %v requires SynthesizeFold", kind)
	}
	return "", fmt.Errorf("unrollgen: unknown combinator %v", kind)
}

// SynthesizeFold renders a strictly left-associative fold of n terms as a
// straight-line accumulator chain. combine renders one application of the
// binary operation to an accumulator and a term. A non-empty seed becomes
// the initial accumulator; with an empty seed the first term seeds the
// accumulator and n must be at least 1, otherwise an *EmptyInputError is
// returned. op names the operation for error reporting.
func SynthesizeFold(op string, n int, seed string, term Term, combine func(acc, term string) string) ([]string, error) {
	if n < 0 {
		return nil, fmt.Errorf("unrollgen: negative term count %d", n)
	}
	var stmts []string
	start := 0
	switch {
	case seed != "":
		if n == 0 {
			return []string{"acc := " + seed}, nil
		}
		stmts = append(stmts, "acc := "+combine(seed, term(0)))
		start = 1
	default:
		if n == 0 {
			return nil, &EmptyInputError{Op: op}
		}
		stmts = append(stmts, "acc := "+term(0))
		start = 1
	}
	for i := start; i < n; i++ {
		stmts = append(stmts, "acc = "+combine("acc", term(i)))
	}
	return stmts, nil
}

func joinTerms(n int, term Term, sep string) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(term(i))
	}
	return b.String()
}
