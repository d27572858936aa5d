// Package mathx holds the integer helpers the tick arithmetic needs.
package mathx

import "golang.org/x/exp/constraints"

// RoundDiv is a/b rounded half up. b == 0 yields 0.
func RoundDiv[T constraints.Unsigned](a, b T) T {
	if b == 0 {
		return 0
	}
	return (a + b/2) / b
}

// CeilDiv is a/b rounded up. b == 0 yields 0.
func CeilDiv[T constraints.Unsigned](a, b T) T {
	if b == 0 {
		return 0
	}
	return a/b + min(a%b, 1)
}

// SatU32 narrows v, saturating at the uint32 maximum.
func SatU32(v uint64) uint32 {
	if v > 0xFFFF_FFFF {
		return 0xFFFF_FFFF
	}
	return uint32(v)
}
