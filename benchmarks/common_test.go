// Package benchmarks provides comparative benchmarks of the unrolled
// fixed-length operations against popular Go collection libraries.
//
// The unrolled operations work on arrays whose length is part of the type,
// so every benchmark fixes its size at one of the generated arities. The
// slice and stream libraries get the same data as a slice.
package benchmarks

import "strconv"

// Fixed sequence lengths matching generated arities.
const (
	ShortLen = 8
	MidLen   = 16
	DeepLen  = 50
)

// seq8 returns an 8-element array of ascending integers.
func seq8() [8]int {
	var s [8]int
	for i := range s {
		s[i] = i
	}
	return s
}

// seq16 returns a 16-element array of ascending integers.
func seq16() [16]int {
	var s [16]int
	for i := range s {
		s[i] = i
	}
	return s
}

// seq50 returns a 50-element array of ascending integers.
func seq50() [50]int {
	var s [50]int
	for i := range s {
		s[i] = i
	}
	return s
}

// generateInts creates a slice of integers for the slice-based libraries.
func generateInts(n int) []int {
	data := make([]int, n)
	for i := range data {
		data[i] = i
	}
	return data
}

// generateStrings creates a slice of strings for the slice-based libraries.
func generateStrings(n int) []string {
	data := make([]string, n)
	for i := range data {
		data[i] = strconv.Itoa(i)
	}
	return data
}

// Common transformation functions used across benchmarks

// square returns the square of an integer.
func square(x int) int {
	return x * x
}

// isEven returns true if the number is even.
func isEven(x int) bool {
	return x%2 == 0
}

// add returns the sum of two integers.
func add(a, b int) int {
	return a + b
}
