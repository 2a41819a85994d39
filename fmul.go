// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package fmul multiplies two floating-point numbers and returns the
// integer part of the result without loss of precision.
//
// A float product computed in floating point may not fit the mantissa
// and gets rounded before any truncation can happen. fmul instead
// decomposes both operands into sign, exponent, and significand,
// multiplies the significands at full width, and applies the combined
// exponent as a bit shift, so the integer part is always exact.
// The fractional part is truncated toward zero.
//
//	i, err := fmul.ToInt128(11.0, 1_000_000_000.0) // exactly 11000000000
//
// Both functions are pure and safe for concurrent use.
package fmul

import "errors"

var (
	// ErrNotFinite is returned if either operand is an infinity or a NaN.
	ErrNotFinite = errors.New("operand is not finite")
	// ErrOverflow is returned if the integer part of the product
	// does not fit the result type.
	ErrOverflow = errors.New("integer overflow")
)
