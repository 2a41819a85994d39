// Package floatbits extracts the IEEE-754 components of float values.
package floatbits

import "math"

const (
	expBits64  = 11
	mantBits64 = 52
	bias64     = 1023
	expMask64  = 1<<expBits64 - 1
	fracMask64 = 1<<mantBits64 - 1

	expBits32  = 8
	mantBits32 = 23
	bias32     = 127
	expMask32  = 1<<expBits32 - 1
	fracMask32 = 1<<mantBits32 - 1
)

// IsFinite64 reports whether f is neither an infinity nor a NaN.
func IsFinite64(f float64) bool {
	return math.Float64bits(f)>>mantBits64&expMask64 != expMask64
}

// IsFinite32 reports whether f is neither an infinity nor a NaN.
func IsFinite32(f float32) bool {
	return math.Float32bits(f)>>mantBits32&expMask32 != expMask32
}

// Decompose64 splits a finite f into a significand scaled to the top
// of a uint64, an unbiased exponent, and a sign flag, so that
//	f = ±sig/2^63 * 2^exp.
// Normal numbers get the implicit leading bit at bit 63; subnormals
// and zeros do not, and their exponent is pinned to 1-bias.
func Decompose64(f float64) (sig uint64, exp int, neg bool) {
	raw := math.Float64bits(f)
	neg = raw>>63 != 0
	e := int(raw >> mantBits64 & expMask64)
	frac := raw & fracMask64
	if e == 0 {
		return frac << expBits64, 1 - bias64, neg
	}
	return 1<<63 | frac<<expBits64, e - bias64, neg
}

// Decompose32 is the float32 counterpart of Decompose64:
//	f = ±sig/2^31 * 2^exp.
func Decompose32(f float32) (sig uint32, exp int, neg bool) {
	raw := math.Float32bits(f)
	neg = raw>>31 != 0
	e := int(raw >> mantBits32 & expMask32)
	frac := raw & fracMask32
	if e == 0 {
		return frac << expBits32, 1 - bias32, neg
	}
	return 1<<31 | frac<<expBits32, e - bias32, neg
}

// Rsh128 shifts the 128-bit value hi:lo right by n bits,
// discarding the shifted-out bits. Shifts of 128 or more return zero.
func Rsh128(hi, lo uint64, n uint) (uint64, uint64) {
	switch {
	case n >= 128:
		return 0, 0
	case n >= 64:
		return 0, hi >> (n - 64)
	default:
		return hi >> n, lo>>n | hi<<(64-n)
	}
}
