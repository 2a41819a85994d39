// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fmul

import (
	"math"

	"github.com/avdva/fmul/internal/floatbits"
)

// Same layout as the float64 variant, one word narrower: significands
// are scaled to bit 31, the 64-bit product has its point at bit 62.
const pointPos64 = 62

// ToInt64 returns the integer part of a*b as an int64.
// See ToInt128 for the semantics; int64 is wide enough for every
// in-range float32 product, since a combined exponent above 63 always
// overflows and everything below only shifts the product right.
func ToInt64(a, b float32) (int64, error) {
	if !floatbits.IsFinite32(a) || !floatbits.IsFinite32(b) {
		return 0, ErrNotFinite
	}
	sa, ea, nega := floatbits.Decompose32(a)
	sb, eb, negb := floatbits.Decompose32(b)
	if sa == 0 || sb == 0 {
		return 0, nil
	}
	neg := nega != negb
	e := ea + eb
	if e > pointPos64+1 {
		return 0, ErrOverflow
	}
	prod := uint64(sa) * uint64(sb)
	if e == pointPos64+1 {
		// A left shift by one: only -2^63 still fits.
		if neg && prod == 1<<62 {
			return math.MinInt64, nil
		}
		return 0, ErrOverflow
	}
	if shift := uint(pointPos64 - e); shift >= 64 {
		prod = 0
	} else {
		prod >>= shift
	}
	if prod>>63 != 0 {
		if neg && prod == 1<<63 {
			return math.MinInt64, nil
		}
		return 0, ErrOverflow
	}
	if neg {
		return -int64(prod), nil
	}
	return int64(prod), nil
}
