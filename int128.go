// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fmul

import (
	"math/bits"

	num "github.com/shabbyrobe/go-num"

	"github.com/avdva/fmul/internal/floatbits"
)

// A float64 significand is scaled to bit 63, so the 128-bit significand
// product carries its binary point at bit 126. A combined exponent e
// leaves the integer part at prod >> (pointPos128 - e).
const pointPos128 = 126

// ToInt128 returns the integer part of a*b as a signed 128-bit integer.
// The product is computed exactly from the operands' bits, never in
// floating point, and the fractional part is truncated toward zero.
// Returns ErrNotFinite if an operand is an infinity or a NaN, and
// ErrOverflow if the integer part does not fit an I128.
func ToInt128(a, b float64) (num.I128, error) {
	if !floatbits.IsFinite64(a) || !floatbits.IsFinite64(b) {
		return num.I128{}, ErrNotFinite
	}
	sa, ea, nega := floatbits.Decompose64(a)
	sb, eb, negb := floatbits.Decompose64(b)
	if sa == 0 || sb == 0 {
		return num.I128{}, nil
	}
	neg := nega != negb
	e := ea + eb
	if e > pointPos128+1 {
		return num.I128{}, ErrOverflow
	}
	hi, lo := bits.Mul64(sa, sb)
	if e == pointPos128+1 {
		// A left shift by one: only -2^127 still fits.
		if neg && hi == 1<<62 && lo == 0 {
			return num.MinI128, nil
		}
		return num.I128{}, ErrOverflow
	}
	hi, lo = floatbits.Rsh128(hi, lo, uint(pointPos128-e))
	if hi>>63 != 0 {
		if neg && hi == 1<<63 && lo == 0 {
			return num.MinI128, nil
		}
		return num.I128{}, ErrOverflow
	}
	res := num.U128FromRaw(hi, lo).AsI128()
	if neg {
		res = res.Neg()
	}
	return res, nil
}
