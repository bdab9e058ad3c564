package benchmarks

import (
	"testing"

	"github.com/ahmetb/go-linq/v3"
	"github.com/lguimbarda/unrolled/unroll"
	"github.com/samber/lo"
)

// =============================================================================
// Memory Allocation Benchmarks
// These benchmarks are designed to highlight allocation differences: the
// unrolled operations return arrays by value and should not heap-allocate.
// Run with: go test -bench=BenchmarkAlloc -benchmem
// =============================================================================

func BenchmarkAlloc_Map_Unroll(b *testing.B) {
	data := seq50()
	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_ = unroll.Map50(square, data)
	}
}

func BenchmarkAlloc_Map_Lo(b *testing.B) {
	data := generateInts(DeepLen)
	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_ = lo.Map(data, func(x int, _ int) int {
			return square(x)
		})
	}
}

func BenchmarkAlloc_Map_GoLinq(b *testing.B) {
	data := generateInts(DeepLen)
	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		var result []int
		linq.From(data).SelectT(func(x int) int {
			return square(x)
		}).ToSlice(&result)
	}
}

// =============================================================================
// Chained Operations - intermediate collections per step
// =============================================================================

func BenchmarkAlloc_Chain_Unroll(b *testing.B) {
	data := seq50()
	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		step1 := unroll.Map50(square, data)
		step2 := unroll.Map50(square, step1)
		_ = unroll.Reduce50(add, step2)
	}
}

func BenchmarkAlloc_Chain_Lo(b *testing.B) {
	data := generateInts(DeepLen)
	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		step1 := lo.Map(data, func(x int, _ int) int {
			return square(x)
		})
		step2 := lo.Map(step1, func(x int, _ int) int {
			return square(x)
		})
		_ = lo.Reduce(step2, func(acc int, x int, _ int) int {
			return add(acc, x)
		}, 0)
	}
}

func BenchmarkAlloc_Chain_GoLinq(b *testing.B) {
	data := generateInts(DeepLen)
	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_ = linq.From(data).
			SelectT(func(x int) int { return square(x) }).
			SelectT(func(x int) int { return square(x) }).
			AggregateT(func(acc, x int) int { return add(acc, x) })
	}
}

// =============================================================================
// Unique - deduplication over strings
// =============================================================================

func BenchmarkAlloc_Unique_Unroll(b *testing.B) {
	var data [16]string
	copy(data[:], generateStrings(8))
	copy(data[8:], generateStrings(8))
	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_ = unroll.Unique16(data)
	}
}

func BenchmarkAlloc_Unique_Lo(b *testing.B) {
	data := append(generateStrings(8), generateStrings(8)...)
	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_ = lo.Uniq(data)
	}
}

func BenchmarkAlloc_Unique_GoLinq(b *testing.B) {
	data := append(generateStrings(8), generateStrings(8)...)
	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		var result []string
		linq.From(data).Distinct().ToSlice(&result)
	}
}
