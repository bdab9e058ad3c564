package benchmarks

import (
	"testing"

	"github.com/ahmetb/go-linq/v3"
	"github.com/destel/rill"
	"github.com/lguimbarda/unrolled/unroll"
	"github.com/samber/lo"
)

// =============================================================================
// Reduce Benchmarks
// =============================================================================

func BenchmarkReduce_Unroll_Short(b *testing.B) {
	data := seq8()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = unroll.Reduce8(add, data)
	}
}

func BenchmarkReduce_Unroll_Mid(b *testing.B) {
	data := seq16()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = unroll.Reduce16(add, data)
	}
}

func BenchmarkReduce_Unroll_Deep(b *testing.B) {
	data := seq50()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = unroll.Reduce50(add, data)
	}
}

func BenchmarkReduce_Lo_Short(b *testing.B) {
	benchmarkReduceLo(b, ShortLen)
}

func BenchmarkReduce_Lo_Mid(b *testing.B) {
	benchmarkReduceLo(b, MidLen)
}

func BenchmarkReduce_Lo_Deep(b *testing.B) {
	benchmarkReduceLo(b, DeepLen)
}

func benchmarkReduceLo(b *testing.B, size int) {
	data := generateInts(size)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = lo.Reduce(data, func(acc int, x int, _ int) int {
			return add(acc, x)
		}, 0)
	}
}

func BenchmarkReduce_Rill_Short(b *testing.B) {
	benchmarkReduceRill(b, ShortLen)
}

func BenchmarkReduce_Rill_Mid(b *testing.B) {
	benchmarkReduceRill(b, MidLen)
}

func BenchmarkReduce_Rill_Deep(b *testing.B) {
	benchmarkReduceRill(b, DeepLen)
}

func benchmarkReduceRill(b *testing.B, size int) {
	data := generateInts(size)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		stream := rill.FromSlice(data, nil)
		_, _, _ = rill.Reduce(stream, 1, func(a, b int) (int, error) {
			return add(a, b), nil
		})
	}
}

func BenchmarkReduce_GoLinq_Short(b *testing.B) {
	benchmarkReduceGoLinq(b, ShortLen)
}

func BenchmarkReduce_GoLinq_Mid(b *testing.B) {
	benchmarkReduceGoLinq(b, MidLen)
}

func BenchmarkReduce_GoLinq_Deep(b *testing.B) {
	benchmarkReduceGoLinq(b, DeepLen)
}

func benchmarkReduceGoLinq(b *testing.B, size int) {
	data := generateInts(size)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = linq.From(data).AggregateT(func(acc, x int) int {
			return add(acc, x)
		})
	}
}

func BenchmarkReduce_RawLoop_Short(b *testing.B) {
	benchmarkReduceRawLoop(b, ShortLen)
}

func BenchmarkReduce_RawLoop_Mid(b *testing.B) {
	benchmarkReduceRawLoop(b, MidLen)
}

func BenchmarkReduce_RawLoop_Deep(b *testing.B) {
	benchmarkReduceRawLoop(b, DeepLen)
}

func benchmarkReduceRawLoop(b *testing.B, size int) {
	data := generateInts(size)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		acc := 0
		for _, x := range data {
			acc = add(acc, x)
		}
		_ = acc
	}
}

// =============================================================================
// MapReduce Benchmarks - fused transform and combine
// =============================================================================

func BenchmarkMapReduce_Unroll_Mid(b *testing.B) {
	data := seq16()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = unroll.MapReduce16(square, add, data)
	}
}

func BenchmarkMapReduce_Lo_Mid(b *testing.B) {
	data := generateInts(MidLen)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		mapped := lo.Map(data, func(x int, _ int) int {
			return square(x)
		})
		_ = lo.Reduce(mapped, func(acc int, x int, _ int) int {
			return add(acc, x)
		}, 0)
	}
}

func BenchmarkMapReduce_GoLinq_Mid(b *testing.B) {
	data := generateInts(MidLen)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = linq.From(data).SelectT(func(x int) int {
			return square(x)
		}).AggregateT(func(acc, x int) int {
			return add(acc, x)
		})
	}
}

// =============================================================================
// Any Benchmarks - short-circuit behavior
// =============================================================================

func BenchmarkAny_Unroll_Mid(b *testing.B) {
	data := seq16()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = unroll.Any16(isEven, data)
	}
}

func BenchmarkAny_Lo_Mid(b *testing.B) {
	data := generateInts(MidLen)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = lo.SomeBy(data, isEven)
	}
}

func BenchmarkAny_GoLinq_Mid(b *testing.B) {
	data := generateInts(MidLen)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = linq.From(data).AnyWithT(isEven)
	}
}
