// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fixed

import (
	"github.com/Certora/fixed/internal/fixmath"
	"github.com/Certora/fixed/internal/int128"
)

// SignSpec is implemented by the signedness marker types for 128-bit
// layouts, Signed and Unsigned.
type SignSpec interface{ IsSigned() bool }

// Signed marks a two's-complement signed 128-bit layout.
type Signed struct{}

func (Signed) IsSigned() bool { return true }

// Unsigned marks an unsigned 128-bit layout.
type Unsigned struct{}

func (Unsigned) IsSigned() bool { return false }

// Fix128 is a fixed-point number stored in 128 bits as a hi/lo word pair,
// with F fractional bits and signedness G. It offers the same operation set
// as Fix; the double-width intermediates are 256 bits wide.
//
// Use the aliases (I64F64, U32F96, ...) rather than spelling out the
// parameters.
type Fix128[F FracSpec, G SignSpec] struct {
	hi, lo uint64
}

func (x Fix128[F, G]) spec() fixmath.Spec {
	var f F
	var g G
	return fixmath.Spec{Bits: 128, Frac: f.FracBits(), Signed: g.IsSigned()}
}

func (x Fix128[F, G]) raw() int128.Int {
	return int128.Int{Hi: x.hi, Lo: x.lo}
}

func (x Fix128[F, G]) with(r int128.Int) Fix128[F, G] {
	return Fix128[F, G]{hi: r.Hi, lo: r.Lo}
}

func (x *Fix128[F, G]) setRaw(r int128.Int) { x.hi, x.lo = r.Hi, r.Lo }

// Bits returns the raw 128-bit storage pattern as a hi/lo word pair. On
// signed layouts hi carries the sign in its top bit.
func (x Fix128[F, G]) Bits() (hi, lo uint64) { return x.hi, x.lo }

// Min returns the smallest representable value of x's layout.
func (x Fix128[F, G]) Min() Fix128[F, G] { return x.with(fixmath.MinRaw(x.spec())) }

// Max returns the largest representable value of x's layout.
func (x Fix128[F, G]) Max() Fix128[F, G] { return x.with(fixmath.MaxRaw(x.spec())) }

// Delta returns the step between adjacent values, 2^-FracBits.
func (x Fix128[F, G]) Delta() Fix128[F, G] { return x.with(int128.Int{Lo: 1}) }

func (x Fix128[F, G]) IsZero() bool { return x.hi == 0 && x.lo == 0 }

// Sign returns -1 if x < 0, 0 if x == 0, 1 if x > 0.
func (x Fix128[F, G]) Sign() int {
	if x.IsZero() {
		return 0
	}
	if neg, _ := fixmath.Split(x.spec(), x.raw()); neg {
		return -1
	}
	return 1
}

// Cmp compares two values.
// Returns -1 if x < y, 0 if x == y, 1 if x > y.
func (x Fix128[F, G]) Cmp(y Fix128[F, G]) int {
	return fixmath.Cmp(x.spec(), x.raw(), y.raw())
}

// Q returns the value as a universal exchange value, exactly.
func (x Fix128[F, G]) Q() Q {
	s := x.spec()
	neg, mag := fixmath.Split(s, x.raw())
	return Q{neg: neg, mag: mag, frac: s.Frac}
}

// Float64 returns the nearest float64.
func (x Fix128[F, G]) Float64() float64 { return fixmath.Float64(x.spec(), x.raw()) }

// Float32 returns the nearest float32.
func (x Fix128[F, G]) Float32() float32 { return float32(x.Float64()) }

// Int returns x with the fractional bits zeroed, rounding toward
// negative infinity. It cannot overflow.
func (x Fix128[F, G]) Int() Fix128[F, G] {
	return x.with(fixmath.RoundInt(x.spec(), x.raw(), fixmath.Floor).Wrapped)
}

// Frac returns the fractional part, x - x.Int(), as a bit pattern of the
// same layout.
func (x Fix128[F, G]) Frac() Fix128[F, G] {
	return x.with(fixmath.FracPart(x.spec(), x.raw()))
}

// Add.

func (x Fix128[F, G]) CheckedAdd(y Fix128[F, G]) (Fix128[F, G], bool) {
	r := fixmath.Add(x.spec(), x.raw(), y.raw())
	if r.Overflow {
		return Fix128[F, G]{}, false
	}
	return x.with(r.Wrapped), true
}

func (x Fix128[F, G]) SaturatingAdd(y Fix128[F, G]) Fix128[F, G] {
	return x.with(fixmath.Add(x.spec(), x.raw(), y.raw()).Sat)
}

func (x Fix128[F, G]) WrappingAdd(y Fix128[F, G]) Fix128[F, G] {
	return x.with(fixmath.Add(x.spec(), x.raw(), y.raw()).Wrapped)
}

func (x Fix128[F, G]) UnwrappedAdd(y Fix128[F, G]) Fix128[F, G] {
	return x.with(unwrap(fixmath.Add(x.spec(), x.raw(), y.raw())))
}

func (x Fix128[F, G]) OverflowingAdd(y Fix128[F, G]) (Fix128[F, G], bool) {
	r := fixmath.Add(x.spec(), x.raw(), y.raw())
	return x.with(r.Wrapped), r.Overflow
}

// Sub.

func (x Fix128[F, G]) CheckedSub(y Fix128[F, G]) (Fix128[F, G], bool) {
	r := fixmath.Sub(x.spec(), x.raw(), y.raw())
	if r.Overflow {
		return Fix128[F, G]{}, false
	}
	return x.with(r.Wrapped), true
}

func (x Fix128[F, G]) SaturatingSub(y Fix128[F, G]) Fix128[F, G] {
	return x.with(fixmath.Sub(x.spec(), x.raw(), y.raw()).Sat)
}

func (x Fix128[F, G]) WrappingSub(y Fix128[F, G]) Fix128[F, G] {
	return x.with(fixmath.Sub(x.spec(), x.raw(), y.raw()).Wrapped)
}

func (x Fix128[F, G]) UnwrappedSub(y Fix128[F, G]) Fix128[F, G] {
	return x.with(unwrap(fixmath.Sub(x.spec(), x.raw(), y.raw())))
}

func (x Fix128[F, G]) OverflowingSub(y Fix128[F, G]) (Fix128[F, G], bool) {
	r := fixmath.Sub(x.spec(), x.raw(), y.raw())
	return x.with(r.Wrapped), r.Overflow
}

// Mul. The product is computed in a double-width intermediate, rescaled by
// FracBits with round-to-nearest ties-to-even, and only then range-checked.

func (x Fix128[F, G]) CheckedMul(y Fix128[F, G]) (Fix128[F, G], bool) {
	r := fixmath.Mul(x.spec(), x.raw(), y.raw())
	if r.Overflow {
		return Fix128[F, G]{}, false
	}
	return x.with(r.Wrapped), true
}

func (x Fix128[F, G]) SaturatingMul(y Fix128[F, G]) Fix128[F, G] {
	return x.with(fixmath.Mul(x.spec(), x.raw(), y.raw()).Sat)
}

func (x Fix128[F, G]) WrappingMul(y Fix128[F, G]) Fix128[F, G] {
	return x.with(fixmath.Mul(x.spec(), x.raw(), y.raw()).Wrapped)
}

func (x Fix128[F, G]) UnwrappedMul(y Fix128[F, G]) Fix128[F, G] {
	return x.with(unwrap(fixmath.Mul(x.spec(), x.raw(), y.raw())))
}

func (x Fix128[F, G]) OverflowingMul(y Fix128[F, G]) (Fix128[F, G], bool) {
	r := fixmath.Mul(x.spec(), x.raw(), y.raw())
	return x.with(r.Wrapped), r.Overflow
}

// Div. The dividend is pre-scaled into the double-width intermediate so the
// quotient keeps its fractional bits, then rounded to nearest, ties to even.
// Division by zero panics in every family except Checked.

func (x Fix128[F, G]) CheckedDiv(y Fix128[F, G]) (Fix128[F, G], bool) {
	r, ok := fixmath.Div(x.spec(), x.raw(), y.raw())
	if !ok || r.Overflow {
		return Fix128[F, G]{}, false
	}
	return x.with(r.Wrapped), true
}

func (x Fix128[F, G]) SaturatingDiv(y Fix128[F, G]) Fix128[F, G] {
	return x.with(mustDiv(fixmath.Div(x.spec(), x.raw(), y.raw())).Sat)
}

func (x Fix128[F, G]) WrappingDiv(y Fix128[F, G]) Fix128[F, G] {
	return x.with(mustDiv(fixmath.Div(x.spec(), x.raw(), y.raw())).Wrapped)
}

func (x Fix128[F, G]) UnwrappedDiv(y Fix128[F, G]) Fix128[F, G] {
	return x.with(unwrap(mustDiv(fixmath.Div(x.spec(), x.raw(), y.raw()))))
}

func (x Fix128[F, G]) OverflowingDiv(y Fix128[F, G]) (Fix128[F, G], bool) {
	r := mustDiv(fixmath.Div(x.spec(), x.raw(), y.raw()))
	return x.with(r.Wrapped), r.Overflow
}

// Rem. The remainder of truncated division; the result has the sign of x.

func (x Fix128[F, G]) CheckedRem(y Fix128[F, G]) (Fix128[F, G], bool) {
	r, ok := fixmath.Rem(x.spec(), x.raw(), y.raw())
	if !ok || r.Overflow {
		return Fix128[F, G]{}, false
	}
	return x.with(r.Wrapped), true
}

func (x Fix128[F, G]) SaturatingRem(y Fix128[F, G]) Fix128[F, G] {
	return x.with(mustDiv(fixmath.Rem(x.spec(), x.raw(), y.raw())).Sat)
}

func (x Fix128[F, G]) WrappingRem(y Fix128[F, G]) Fix128[F, G] {
	return x.with(mustDiv(fixmath.Rem(x.spec(), x.raw(), y.raw())).Wrapped)
}

func (x Fix128[F, G]) UnwrappedRem(y Fix128[F, G]) Fix128[F, G] {
	return x.with(unwrap(mustDiv(fixmath.Rem(x.spec(), x.raw(), y.raw()))))
}

func (x Fix128[F, G]) OverflowingRem(y Fix128[F, G]) (Fix128[F, G], bool) {
	r := mustDiv(fixmath.Rem(x.spec(), x.raw(), y.raw()))
	return x.with(r.Wrapped), r.Overflow
}

// MulInt multiplies by an integer; no rescaling is involved.

func (x Fix128[F, G]) CheckedMulInt(v int64) (Fix128[F, G], bool) {
	r := fixmath.MulInt(x.spec(), x.raw(), v)
	if r.Overflow {
		return Fix128[F, G]{}, false
	}
	return x.with(r.Wrapped), true
}

func (x Fix128[F, G]) SaturatingMulInt(v int64) Fix128[F, G] {
	return x.with(fixmath.MulInt(x.spec(), x.raw(), v).Sat)
}

func (x Fix128[F, G]) WrappingMulInt(v int64) Fix128[F, G] {
	return x.with(fixmath.MulInt(x.spec(), x.raw(), v).Wrapped)
}

func (x Fix128[F, G]) UnwrappedMulInt(v int64) Fix128[F, G] {
	return x.with(unwrap(fixmath.MulInt(x.spec(), x.raw(), v)))
}

func (x Fix128[F, G]) OverflowingMulInt(v int64) (Fix128[F, G], bool) {
	r := fixmath.MulInt(x.spec(), x.raw(), v)
	return x.with(r.Wrapped), r.Overflow
}

// DivInt divides by an integer at the same scale, rounding the quotient to
// nearest, ties to even.

func (x Fix128[F, G]) CheckedDivInt(v int64) (Fix128[F, G], bool) {
	r, ok := fixmath.DivInt(x.spec(), x.raw(), v)
	if !ok || r.Overflow {
		return Fix128[F, G]{}, false
	}
	return x.with(r.Wrapped), true
}

func (x Fix128[F, G]) SaturatingDivInt(v int64) Fix128[F, G] {
	return x.with(mustDiv(fixmath.DivInt(x.spec(), x.raw(), v)).Sat)
}

func (x Fix128[F, G]) WrappingDivInt(v int64) Fix128[F, G] {
	return x.with(mustDiv(fixmath.DivInt(x.spec(), x.raw(), v)).Wrapped)
}

func (x Fix128[F, G]) UnwrappedDivInt(v int64) Fix128[F, G] {
	return x.with(unwrap(mustDiv(fixmath.DivInt(x.spec(), x.raw(), v))))
}

func (x Fix128[F, G]) OverflowingDivInt(v int64) (Fix128[F, G], bool) {
	r := mustDiv(fixmath.DivInt(x.spec(), x.raw(), v))
	return x.with(r.Wrapped), r.Overflow
}

// Neg.

func (x Fix128[F, G]) CheckedNeg() (Fix128[F, G], bool) {
	r := fixmath.Neg(x.spec(), x.raw())
	if r.Overflow {
		return Fix128[F, G]{}, false
	}
	return x.with(r.Wrapped), true
}

func (x Fix128[F, G]) SaturatingNeg() Fix128[F, G] {
	return x.with(fixmath.Neg(x.spec(), x.raw()).Sat)
}

func (x Fix128[F, G]) WrappingNeg() Fix128[F, G] {
	return x.with(fixmath.Neg(x.spec(), x.raw()).Wrapped)
}

func (x Fix128[F, G]) UnwrappedNeg() Fix128[F, G] {
	return x.with(unwrap(fixmath.Neg(x.spec(), x.raw())))
}

func (x Fix128[F, G]) OverflowingNeg() (Fix128[F, G], bool) {
	r := fixmath.Neg(x.spec(), x.raw())
	return x.with(r.Wrapped), r.Overflow
}

// Abs. Overflows only for the minimum value of a signed layout.

func (x Fix128[F, G]) CheckedAbs() (Fix128[F, G], bool) {
	r := fixmath.Abs(x.spec(), x.raw())
	if r.Overflow {
		return Fix128[F, G]{}, false
	}
	return x.with(r.Wrapped), true
}

func (x Fix128[F, G]) SaturatingAbs() Fix128[F, G] {
	return x.with(fixmath.Abs(x.spec(), x.raw()).Sat)
}

func (x Fix128[F, G]) WrappingAbs() Fix128[F, G] {
	return x.with(fixmath.Abs(x.spec(), x.raw()).Wrapped)
}

func (x Fix128[F, G]) UnwrappedAbs() Fix128[F, G] {
	return x.with(unwrap(fixmath.Abs(x.spec(), x.raw())))
}

func (x Fix128[F, G]) OverflowingAbs() (Fix128[F, G], bool) {
	r := fixmath.Abs(x.spec(), x.raw())
	return x.with(r.Wrapped), r.Overflow
}

// MulAdd returns x*y + z with a single rounding step: the product is kept at
// full double-width precision and only the final sum is rescaled. This is
// not equivalent to composing Mul and Add, which would round twice.

func (x Fix128[F, G]) CheckedMulAdd(y, z Fix128[F, G]) (Fix128[F, G], bool) {
	r := fixmath.MulAdd(x.spec(), x.raw(), y.raw(), z.raw())
	if r.Overflow {
		return Fix128[F, G]{}, false
	}
	return x.with(r.Wrapped), true
}

func (x Fix128[F, G]) SaturatingMulAdd(y, z Fix128[F, G]) Fix128[F, G] {
	return x.with(fixmath.MulAdd(x.spec(), x.raw(), y.raw(), z.raw()).Sat)
}

func (x Fix128[F, G]) WrappingMulAdd(y, z Fix128[F, G]) Fix128[F, G] {
	return x.with(fixmath.MulAdd(x.spec(), x.raw(), y.raw(), z.raw()).Wrapped)
}

func (x Fix128[F, G]) UnwrappedMulAdd(y, z Fix128[F, G]) Fix128[F, G] {
	return x.with(unwrap(fixmath.MulAdd(x.spec(), x.raw(), y.raw(), z.raw())))
}

func (x Fix128[F, G]) OverflowingMulAdd(y, z Fix128[F, G]) (Fix128[F, G], bool) {
	r := fixmath.MulAdd(x.spec(), x.raw(), y.raw(), z.raw())
	return x.with(r.Wrapped), r.Overflow
}

// AddProd returns x + a*b, the multiply-accumulate form of MulAdd.

func (x Fix128[F, G]) CheckedAddProd(a, b Fix128[F, G]) (Fix128[F, G], bool) {
	r := fixmath.MulAdd(x.spec(), a.raw(), b.raw(), x.raw())
	if r.Overflow {
		return Fix128[F, G]{}, false
	}
	return x.with(r.Wrapped), true
}

func (x Fix128[F, G]) SaturatingAddProd(a, b Fix128[F, G]) Fix128[F, G] {
	return x.with(fixmath.MulAdd(x.spec(), a.raw(), b.raw(), x.raw()).Sat)
}

func (x Fix128[F, G]) WrappingAddProd(a, b Fix128[F, G]) Fix128[F, G] {
	return x.with(fixmath.MulAdd(x.spec(), a.raw(), b.raw(), x.raw()).Wrapped)
}

func (x Fix128[F, G]) UnwrappedAddProd(a, b Fix128[F, G]) Fix128[F, G] {
	return x.with(unwrap(fixmath.MulAdd(x.spec(), a.raw(), b.raw(), x.raw())))
}

func (x Fix128[F, G]) OverflowingAddProd(a, b Fix128[F, G]) (Fix128[F, G], bool) {
	r := fixmath.MulAdd(x.spec(), a.raw(), b.raw(), x.raw())
	return x.with(r.Wrapped), r.Overflow
}

// Shl shifts the value left by sh bits; bits shifted beyond the layout's
// range overflow.

func (x Fix128[F, G]) CheckedShl(sh uint) (Fix128[F, G], bool) {
	r := fixmath.Shl(x.spec(), x.raw(), sh)
	if r.Overflow {
		return Fix128[F, G]{}, false
	}
	return x.with(r.Wrapped), true
}

func (x Fix128[F, G]) SaturatingShl(sh uint) Fix128[F, G] {
	return x.with(fixmath.Shl(x.spec(), x.raw(), sh).Sat)
}

func (x Fix128[F, G]) WrappingShl(sh uint) Fix128[F, G] {
	return x.with(fixmath.Shl(x.spec(), x.raw(), sh).Wrapped)
}

func (x Fix128[F, G]) UnwrappedShl(sh uint) Fix128[F, G] {
	return x.with(unwrap(fixmath.Shl(x.spec(), x.raw(), sh)))
}

func (x Fix128[F, G]) OverflowingShl(sh uint) (Fix128[F, G], bool) {
	r := fixmath.Shl(x.spec(), x.raw(), sh)
	return x.with(r.Wrapped), r.Overflow
}

// Shr shifts the value right by sh bits, arithmetic for signed layouts.
// Discarded bits are dropped without rounding; Shr cannot overflow.
func (x Fix128[F, G]) Shr(sh uint) Fix128[F, G] {
	return x.with(fixmath.Shr(x.spec(), x.raw(), sh).Wrapped)
}

// Floor rounds toward negative infinity to an integer multiple.
// It cannot overflow.
func (x Fix128[F, G]) Floor() Fix128[F, G] {
	return x.with(fixmath.RoundInt(x.spec(), x.raw(), fixmath.Floor).Wrapped)
}

// Trunc rounds toward zero to an integer multiple. It cannot overflow.
func (x Fix128[F, G]) Trunc() Fix128[F, G] {
	return x.with(fixmath.RoundInt(x.spec(), x.raw(), fixmath.Trunc).Wrapped)
}

// Ceil rounds toward positive infinity to an integer multiple.

func (x Fix128[F, G]) CheckedCeil() (Fix128[F, G], bool) {
	r := fixmath.RoundInt(x.spec(), x.raw(), fixmath.Ceil)
	if r.Overflow {
		return Fix128[F, G]{}, false
	}
	return x.with(r.Wrapped), true
}

func (x Fix128[F, G]) SaturatingCeil() Fix128[F, G] {
	return x.with(fixmath.RoundInt(x.spec(), x.raw(), fixmath.Ceil).Sat)
}

func (x Fix128[F, G]) WrappingCeil() Fix128[F, G] {
	return x.with(fixmath.RoundInt(x.spec(), x.raw(), fixmath.Ceil).Wrapped)
}

func (x Fix128[F, G]) UnwrappedCeil() Fix128[F, G] {
	return x.with(unwrap(fixmath.RoundInt(x.spec(), x.raw(), fixmath.Ceil)))
}

func (x Fix128[F, G]) OverflowingCeil() (Fix128[F, G], bool) {
	r := fixmath.RoundInt(x.spec(), x.raw(), fixmath.Ceil)
	return x.with(r.Wrapped), r.Overflow
}

// Round rounds to the nearest integer multiple, ties away from zero.

func (x Fix128[F, G]) CheckedRound() (Fix128[F, G], bool) {
	r := fixmath.RoundInt(x.spec(), x.raw(), fixmath.RoundHalfAway)
	if r.Overflow {
		return Fix128[F, G]{}, false
	}
	return x.with(r.Wrapped), true
}

func (x Fix128[F, G]) SaturatingRound() Fix128[F, G] {
	return x.with(fixmath.RoundInt(x.spec(), x.raw(), fixmath.RoundHalfAway).Sat)
}

func (x Fix128[F, G]) WrappingRound() Fix128[F, G] {
	return x.with(fixmath.RoundInt(x.spec(), x.raw(), fixmath.RoundHalfAway).Wrapped)
}

func (x Fix128[F, G]) UnwrappedRound() Fix128[F, G] {
	return x.with(unwrap(fixmath.RoundInt(x.spec(), x.raw(), fixmath.RoundHalfAway)))
}

func (x Fix128[F, G]) OverflowingRound() (Fix128[F, G], bool) {
	r := fixmath.RoundInt(x.spec(), x.raw(), fixmath.RoundHalfAway)
	return x.with(r.Wrapped), r.Overflow
}

// RoundTiesEven rounds to the nearest integer multiple, ties to even.

func (x Fix128[F, G]) CheckedRoundTiesEven() (Fix128[F, G], bool) {
	r := fixmath.RoundInt(x.spec(), x.raw(), fixmath.RoundHalfEven)
	if r.Overflow {
		return Fix128[F, G]{}, false
	}
	return x.with(r.Wrapped), true
}

func (x Fix128[F, G]) SaturatingRoundTiesEven() Fix128[F, G] {
	return x.with(fixmath.RoundInt(x.spec(), x.raw(), fixmath.RoundHalfEven).Sat)
}

func (x Fix128[F, G]) WrappingRoundTiesEven() Fix128[F, G] {
	return x.with(fixmath.RoundInt(x.spec(), x.raw(), fixmath.RoundHalfEven).Wrapped)
}

func (x Fix128[F, G]) UnwrappedRoundTiesEven() Fix128[F, G] {
	return x.with(unwrap(fixmath.RoundInt(x.spec(), x.raw(), fixmath.RoundHalfEven)))
}

func (x Fix128[F, G]) OverflowingRoundTiesEven() (Fix128[F, G], bool) {
	r := fixmath.RoundInt(x.spec(), x.raw(), fixmath.RoundHalfEven)
	return x.with(r.Wrapped), r.Overflow
}
