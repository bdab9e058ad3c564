// Package unroll provides iteration primitives over fixed-length sequences
// as straight-line generated code: no runtime loop and no runtime branch on
// length anywhere in the operation surface.
//
// A sequence is a Go array, the one Go type whose length is part of its
// static shape. Every operation is a per-arity specialization (Any4, Map3,
// Fold50, Take2Of4, ...) produced by cmd/unrollgen from the request list in
// unrollgen.yaml; generics provide per-element-type monomorphization on top
// of the per-length expansion.
//
// # Operations
//
//   - Predicates: [Any4], [All4], [Contains4] and siblings per arity, with
//     short-circuit evaluation in index order.
//   - Traversal: [Each4], [EachZip4] for side effects, index order.
//   - Transformation: [Map4], [ZipWith4], [Zip4], with multi-sequence
//     variants truncating to the shorter operand (ZipWith3x5).
//   - Folds: [Reduce4] (no initial value, at least one element required),
//     [Fold4] (seeded, any accumulator type), [MapReduce4], [MapFold4].
//   - Selection: [Filter4], [Partition4], [Unique4]; these return slices
//     because their result lengths depend on element values.
//   - Shape: [Take2Of4], [Drop2Of4], [Concat2x3], [Flatten3x2],
//     [FlatMap3x2], [Product2x3].
//
// The multi-sequence operations take two operands. Three or more sequences
// compose through nested pairs: Zip3(Zip3(a, b), c) pairs three sequences
// of length 3 (yielding Pair[Pair[A, B], C] elements), and nested Product
// calls enumerate higher cross products the same way.
//
// # Errors
//
// Everything detectable from static shape fails before run time: an
// operation over an unsupported or empty shape simply has no generated
// symbol (there is no Reduce0 and no Take5Of3), and requesting one from the
// generator fails with a typed error from the gen package.
//
// # Equality
//
// Contains and Unique compare with ==. For pointer and interface elements
// this is identity; for value types it is value equality, so distinct but
// equal values are treated as the same element.
package unroll

import "github.com/lguimbarda/unrolled/unroll/tuple"

// Pair is the element type of zipped and product sequences,
// re-exported from the tuple package.
type Pair[T1, T2 any] = tuple.Pair[T1, T2]

// MakePair constructs a Pair from its two components.
func MakePair[T1, T2 any](v1 T1, v2 T2) Pair[T1, T2] {
	return tuple.MakePair(v1, v2)
}
