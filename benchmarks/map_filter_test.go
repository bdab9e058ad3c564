package benchmarks

import (
	"testing"

	"github.com/ahmetb/go-linq/v3"
	"github.com/destel/rill"
	"github.com/lguimbarda/unrolled/unroll"
	"github.com/samber/lo"
)

// =============================================================================
// Map Benchmarks
// =============================================================================

func BenchmarkMap_Unroll_Short(b *testing.B) {
	data := seq8()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = unroll.Map8(square, data)
	}
}

func BenchmarkMap_Unroll_Mid(b *testing.B) {
	data := seq16()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = unroll.Map16(square, data)
	}
}

func BenchmarkMap_Unroll_Deep(b *testing.B) {
	data := seq50()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = unroll.Map50(square, data)
	}
}

func BenchmarkMap_Lo_Short(b *testing.B) {
	benchmarkMapLo(b, ShortLen)
}

func BenchmarkMap_Lo_Mid(b *testing.B) {
	benchmarkMapLo(b, MidLen)
}

func BenchmarkMap_Lo_Deep(b *testing.B) {
	benchmarkMapLo(b, DeepLen)
}

func benchmarkMapLo(b *testing.B, size int) {
	data := generateInts(size)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = lo.Map(data, func(x int, _ int) int {
			return square(x)
		})
	}
}

func BenchmarkMap_Rill_Short(b *testing.B) {
	benchmarkMapRill(b, ShortLen)
}

func BenchmarkMap_Rill_Mid(b *testing.B) {
	benchmarkMapRill(b, MidLen)
}

func BenchmarkMap_Rill_Deep(b *testing.B) {
	benchmarkMapRill(b, DeepLen)
}

func benchmarkMapRill(b *testing.B, size int) {
	data := generateInts(size)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		stream := rill.FromSlice(data, nil)
		mapped := rill.Map(stream, 1, func(x int) (int, error) {
			return square(x), nil
		})
		_, _ = rill.ToSlice(mapped)
	}
}

func BenchmarkMap_GoLinq_Short(b *testing.B) {
	benchmarkMapGoLinq(b, ShortLen)
}

func BenchmarkMap_GoLinq_Mid(b *testing.B) {
	benchmarkMapGoLinq(b, MidLen)
}

func BenchmarkMap_GoLinq_Deep(b *testing.B) {
	benchmarkMapGoLinq(b, DeepLen)
}

func benchmarkMapGoLinq(b *testing.B, size int) {
	data := generateInts(size)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		var result []int
		linq.From(data).SelectT(func(x int) int {
			return square(x)
		}).ToSlice(&result)
	}
}

// Baseline: raw for loop over a slice
func BenchmarkMap_RawLoop_Short(b *testing.B) {
	benchmarkMapRawLoop(b, ShortLen)
}

func BenchmarkMap_RawLoop_Mid(b *testing.B) {
	benchmarkMapRawLoop(b, MidLen)
}

func BenchmarkMap_RawLoop_Deep(b *testing.B) {
	benchmarkMapRawLoop(b, DeepLen)
}

func benchmarkMapRawLoop(b *testing.B, size int) {
	data := generateInts(size)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		result := make([]int, len(data))
		for j, x := range data {
			result[j] = square(x)
		}
		_ = result
	}
}

// =============================================================================
// Filter Benchmarks
// =============================================================================

func BenchmarkFilter_Unroll_Short(b *testing.B) {
	data := seq8()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = unroll.Filter8(isEven, data)
	}
}

func BenchmarkFilter_Unroll_Mid(b *testing.B) {
	data := seq16()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = unroll.Filter16(isEven, data)
	}
}

func BenchmarkFilter_Unroll_Deep(b *testing.B) {
	data := seq50()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = unroll.Filter50(isEven, data)
	}
}

func BenchmarkFilter_Lo_Short(b *testing.B) {
	benchmarkFilterLo(b, ShortLen)
}

func BenchmarkFilter_Lo_Mid(b *testing.B) {
	benchmarkFilterLo(b, MidLen)
}

func BenchmarkFilter_Lo_Deep(b *testing.B) {
	benchmarkFilterLo(b, DeepLen)
}

func benchmarkFilterLo(b *testing.B, size int) {
	data := generateInts(size)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = lo.Filter(data, func(x int, _ int) bool {
			return isEven(x)
		})
	}
}

func BenchmarkFilter_Rill_Short(b *testing.B) {
	benchmarkFilterRill(b, ShortLen)
}

func BenchmarkFilter_Rill_Mid(b *testing.B) {
	benchmarkFilterRill(b, MidLen)
}

func BenchmarkFilter_Rill_Deep(b *testing.B) {
	benchmarkFilterRill(b, DeepLen)
}

func benchmarkFilterRill(b *testing.B, size int) {
	data := generateInts(size)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		stream := rill.FromSlice(data, nil)
		filtered := rill.Filter(stream, 1, func(x int) (bool, error) {
			return isEven(x), nil
		})
		_, _ = rill.ToSlice(filtered)
	}
}

func BenchmarkFilter_GoLinq_Short(b *testing.B) {
	benchmarkFilterGoLinq(b, ShortLen)
}

func BenchmarkFilter_GoLinq_Mid(b *testing.B) {
	benchmarkFilterGoLinq(b, MidLen)
}

func BenchmarkFilter_GoLinq_Deep(b *testing.B) {
	benchmarkFilterGoLinq(b, DeepLen)
}

func benchmarkFilterGoLinq(b *testing.B, size int) {
	data := generateInts(size)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		var result []int
		linq.From(data).WhereT(func(x int) bool {
			return isEven(x)
		}).ToSlice(&result)
	}
}

func BenchmarkFilter_RawLoop_Short(b *testing.B) {
	benchmarkFilterRawLoop(b, ShortLen)
}

func BenchmarkFilter_RawLoop_Mid(b *testing.B) {
	benchmarkFilterRawLoop(b, MidLen)
}

func BenchmarkFilter_RawLoop_Deep(b *testing.B) {
	benchmarkFilterRawLoop(b, DeepLen)
}

func benchmarkFilterRawLoop(b *testing.B, size int) {
	data := generateInts(size)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		result := make([]int, 0, len(data)/2)
		for _, x := range data {
			if isEven(x) {
				result = append(result, x)
			}
		}
		_ = result
	}
}
