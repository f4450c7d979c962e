// Package conv provides safe integer conversion helpers for the automaton
// builder.
//
// These functions perform bounds checking before narrowing integer
// conversions to prevent silent overflow. They panic on overflow since this
// indicates a programming error (the builder validates pattern-set scale
// before converting).
package conv

import "math"

// IntToUint32 safely converts an int to uint32.
// Panics if n < 0 or n > math.MaxUint32.
//
//go:inline
func IntToUint32(n int) uint32 {
	// Use uint for comparison to avoid overflow on 32-bit platforms
	// where int cannot represent math.MaxUint32
	if n < 0 || uint(n) > math.MaxUint32 {
		panic("integer overflow: int value out of uint32 range")
	}
	return uint32(n)
}

// IntToUint31 safely converts an int to a uint32 restricted to 31 bits.
// Pattern lengths are stored in 31 bits beside the run-begin flag.
// Panics if n < 0 or n > math.MaxInt32.
//
//go:inline
func IntToUint31(n int) uint32 {
	if n < 0 || n > math.MaxInt32 {
		panic("integer overflow: int value out of 31-bit range")
	}
	return uint32(n)
}
