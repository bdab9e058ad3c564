// Package tuple provides the pair type used by zip and product results.
//
// Pairs carry one value per position with independent element types, so a
// zipped sequence keeps full type information for both operands.
package tuple

import "fmt"

// Pair holds two values of independent types.
type Pair[T1, T2 any] struct {
	V1 T1
	V2 T2
}

// MakePair constructs a Pair from its two components.
func MakePair[T1, T2 any](v1 T1, v2 T2) Pair[T1, T2] {
	return Pair[T1, T2]{V1: v1, V2: v2}
}

// Values returns both components of the pair.
func (p Pair[T1, T2]) Values() (T1, T2) {
	return p.V1, p.V2
}

// Swap returns the pair with its components exchanged.
func (p Pair[T1, T2]) Swap() Pair[T2, T1] {
	return Pair[T2, T1]{V1: p.V2, V2: p.V1}
}

// String implements fmt.Stringer.
func (p Pair[T1, T2]) String() string {
	return fmt.Sprintf("(%v, %v)", p.V1, p.V2)
}
