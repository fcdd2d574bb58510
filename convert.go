// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fixed

import (
	"golang.org/x/exp/constraints"

	"github.com/Certora/fixed/internal/fixmath"
	"github.com/Certora/fixed/internal/int128"
)

// Value is the read side shared by every fixed-point layout.
// It is implemented by Fix and Fix128 and cannot be implemented
// outside this package.
type Value interface {
	// Q returns the value as a universal exchange value, exactly.
	Q() Q

	spec() fixmath.Spec
	raw() int128.Int
}

// Setter is a pointer to a fixed-point value of any layout. Pass
// *Fix or *Fix128 values where a Setter is expected.
type Setter interface {
	Value
	setRaw(int128.Int)
}

// Convert converts src into dst, rounding extra fractional bits to
// nearest with ties to even. It returns ErrOverflow if the rounded
// value does not fit dst, leaving dst unchanged.
func Convert(dst Setter, src Value) error { return FromQ(dst, src.Q()) }

// ConvertLossless converts src into dst only if the exact value is
// representable. It returns ErrPrecision if any fractional bit would
// be discarded and ErrOverflow if the value is out of range, leaving
// dst unchanged in both cases.
func ConvertLossless(dst Setter, src Value) error {
	q := src.Q()
	r, exact := fixmath.Rescale(dst.spec(), q.neg, q.mag, q.frac, fixmath.RoundTrunc)
	if !exact {
		return ErrPrecision
	}
	if r.Overflow {
		return ErrOverflow
	}
	dst.setRaw(r.Wrapped)
	return nil
}

// ConvertLossy converts src into dst, discarding extra fractional bits
// toward zero without rounding and wrapping out-of-range values.
func ConvertLossy(dst Setter, src Value) {
	q := src.Q()
	r, _ := fixmath.Rescale(dst.spec(), q.neg, q.mag, q.frac, fixmath.RoundTrunc)
	dst.setRaw(r.Wrapped)
}

// ConvertSaturating converts src into dst, rounding to nearest with
// ties to even and clamping out-of-range values to dst's bounds.
func ConvertSaturating(dst Setter, src Value) {
	q := src.Q()
	r, _ := fixmath.Rescale(dst.spec(), q.neg, q.mag, q.frac, fixmath.RoundEven)
	dst.setRaw(r.Sat)
}

// ConvertWrapping converts src into dst, rounding to nearest with
// ties to even and wrapping out-of-range values.
func ConvertWrapping(dst Setter, src Value) {
	q := src.Q()
	r, _ := fixmath.Rescale(dst.spec(), q.neg, q.mag, q.frac, fixmath.RoundEven)
	dst.setRaw(r.Wrapped)
}

// ConvertUnwrapped converts src into dst, rounding to nearest with
// ties to even. It panics with ErrOverflow if the value is out of range.
func ConvertUnwrapped(dst Setter, src Value) {
	q := src.Q()
	r, _ := fixmath.Rescale(dst.spec(), q.neg, q.mag, q.frac, fixmath.RoundEven)
	dst.setRaw(unwrap(r))
}

// ConvertOverflowing converts src into dst, rounding to nearest with
// ties to even, wrapping on overflow, and reports whether overflow
// occurred.
func ConvertOverflowing(dst Setter, src Value) bool {
	q := src.Q()
	r, _ := fixmath.Rescale(dst.spec(), q.neg, q.mag, q.frac, fixmath.RoundEven)
	dst.setRaw(r.Wrapped)
	return r.Overflow
}

// FromQ stores q into dst, rounding to nearest with ties to even.
// It returns ErrOverflow if the rounded value does not fit dst,
// leaving dst unchanged.
func FromQ(dst Setter, q Q) error {
	r, _ := fixmath.Rescale(dst.spec(), q.neg, q.mag, q.frac, fixmath.RoundEven)
	if r.Overflow {
		return ErrOverflow
	}
	dst.setRaw(r.Wrapped)
	return nil
}

// FromInt stores the integer v into dst exactly. It returns
// ErrOverflow if v is out of range and ErrPrecision if dst's
// fractional size cannot hold v exactly, leaving dst unchanged.
func FromInt[T constraints.Integer](dst Setter, v T) error {
	q := QFromInt(v)
	r, exact := fixmath.Rescale(dst.spec(), q.neg, q.mag, q.frac, fixmath.RoundTrunc)
	if !exact {
		return ErrPrecision
	}
	if r.Overflow {
		return ErrOverflow
	}
	dst.setRaw(r.Wrapped)
	return nil
}

// FromFloat64 stores f into dst, rounding to nearest with ties to even.
// It returns ErrNotFinite for NaN and infinities and ErrOverflow if the
// rounded value does not fit dst, leaving dst unchanged.
func FromFloat64(dst Setter, f float64) error {
	r, ok := fixmath.FromFloat(dst.spec(), f)
	if !ok {
		return ErrNotFinite
	}
	if r.Overflow {
		return ErrOverflow
	}
	dst.setRaw(r.Wrapped)
	return nil
}
