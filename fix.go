// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package fixed implements binary fixed-point numbers: a storage integer of
// 8, 16, 32, 64 or 128 bits holding a value scaled by a compile-time number
// of fractional bits. Every arithmetic operation is available under five
// overflow policies (checked, saturating, wrapping, unwrapped, overflowing),
// all sharing one exact double-width algorithm per operation.
package fixed

import (
	"unsafe"

	"github.com/Certora/fixed/internal/fixmath"
	"github.com/Certora/fixed/internal/int128"
)

// Storage is the set of integer types usable as fixed-point storage up to 64
// bits. 128-bit layouts use Fix128.
type Storage interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// FracSpec is implemented by the fractional-bit marker types (F0..F128,
// FM1...). The marker fixes the binary point position at compile time.
type FracSpec interface{ FracBits() int32 }

// Fix is a fixed-point number with storage S and F fractional bits.
// The represented value is Bits() / 2^FracBits. Values are immutable:
// every operation returns a new value.
//
// Use the aliases (I4F4, U16F16, ...) rather than spelling out the
// parameters; the set in alias.go is produced by gen/mkfix.go and can be
// regenerated with more layouts.
type Fix[S Storage, F FracSpec] struct {
	bits S
}

func (x Fix[S, F]) spec() fixmath.Spec {
	var f F
	return fixmath.Spec{
		Bits:   uint32(unsafe.Sizeof(x.bits) * 8),
		Frac:   f.FracBits(),
		Signed: ^S(0) < S(0),
	}
}

func (x Fix[S, F]) raw() int128.Int {
	u := uint64(x.bits) // sign-extends signed storages
	if x.spec().Signed {
		return int128.FromInt64(int64(u))
	}
	return int128.FromUint64(u)
}

func (x Fix[S, F]) with(r int128.Int) Fix[S, F] {
	return Fix[S, F]{bits: S(r.Lo)}
}

func (x *Fix[S, F]) setRaw(r int128.Int) { x.bits = S(r.Lo) }

// unwrap escalates overflow to a panic, for the Unwrapped operation family.
func unwrap(r fixmath.Result) int128.Int {
	if r.Overflow {
		panic(ErrOverflow)
	}
	return r.Wrapped
}

// mustDiv escalates division by zero to a panic.
func mustDiv(r fixmath.Result, ok bool) fixmath.Result {
	if !ok {
		panic(ErrDivisionByZero)
	}
	return r
}

// Bits returns the raw storage integer. The bit pattern is returned exactly
// as stored; no scaling is applied.
func (x Fix[S, F]) Bits() S { return x.bits }

// Min returns the smallest representable value of x's layout.
func (x Fix[S, F]) Min() Fix[S, F] { return x.with(fixmath.MinRaw(x.spec())) }

// Max returns the largest representable value of x's layout.
func (x Fix[S, F]) Max() Fix[S, F] { return x.with(fixmath.MaxRaw(x.spec())) }

// Delta returns the step between adjacent values, 2^-FracBits.
func (x Fix[S, F]) Delta() Fix[S, F] { return x.with(int128.Int{Lo: 1}) }

func (x Fix[S, F]) IsZero() bool { return x.bits == 0 }

// Sign returns -1 if x < 0, 0 if x == 0, 1 if x > 0.
func (x Fix[S, F]) Sign() int {
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
func (x Fix[S, F]) Cmp(y Fix[S, F]) int {
	return fixmath.Cmp(x.spec(), x.raw(), y.raw())
}

// Q returns the value as a universal exchange value, exactly.
func (x Fix[S, F]) Q() Q {
	s := x.spec()
	neg, mag := fixmath.Split(s, x.raw())
	return Q{neg: neg, mag: mag, frac: s.Frac}
}

// Float64 returns the nearest float64.
func (x Fix[S, F]) Float64() float64 { return fixmath.Float64(x.spec(), x.raw()) }

// Float32 returns the nearest float32.
func (x Fix[S, F]) Float32() float32 { return float32(x.Float64()) }

// Int returns x with the fractional bits zeroed, rounding toward
// negative infinity. It cannot overflow.
func (x Fix[S, F]) Int() Fix[S, F] {
	return x.with(fixmath.RoundInt(x.spec(), x.raw(), fixmath.Floor).Wrapped)
}

// Frac returns the fractional part, x - x.Int(), as a bit pattern of the
// same layout.
func (x Fix[S, F]) Frac() Fix[S, F] {
	return x.with(fixmath.FracPart(x.spec(), x.raw()))
}

// Add.

func (x Fix[S, F]) CheckedAdd(y Fix[S, F]) (Fix[S, F], bool) {
	r := fixmath.Add(x.spec(), x.raw(), y.raw())
	if r.Overflow {
		return Fix[S, F]{}, false
	}
	return x.with(r.Wrapped), true
}

func (x Fix[S, F]) SaturatingAdd(y Fix[S, F]) Fix[S, F] {
	return x.with(fixmath.Add(x.spec(), x.raw(), y.raw()).Sat)
}

func (x Fix[S, F]) WrappingAdd(y Fix[S, F]) Fix[S, F] {
	return x.with(fixmath.Add(x.spec(), x.raw(), y.raw()).Wrapped)
}

func (x Fix[S, F]) UnwrappedAdd(y Fix[S, F]) Fix[S, F] {
	return x.with(unwrap(fixmath.Add(x.spec(), x.raw(), y.raw())))
}

func (x Fix[S, F]) OverflowingAdd(y Fix[S, F]) (Fix[S, F], bool) {
	r := fixmath.Add(x.spec(), x.raw(), y.raw())
	return x.with(r.Wrapped), r.Overflow
}

// Sub.

func (x Fix[S, F]) CheckedSub(y Fix[S, F]) (Fix[S, F], bool) {
	r := fixmath.Sub(x.spec(), x.raw(), y.raw())
	if r.Overflow {
		return Fix[S, F]{}, false
	}
	return x.with(r.Wrapped), true
}

func (x Fix[S, F]) SaturatingSub(y Fix[S, F]) Fix[S, F] {
	return x.with(fixmath.Sub(x.spec(), x.raw(), y.raw()).Sat)
}

func (x Fix[S, F]) WrappingSub(y Fix[S, F]) Fix[S, F] {
	return x.with(fixmath.Sub(x.spec(), x.raw(), y.raw()).Wrapped)
}

func (x Fix[S, F]) UnwrappedSub(y Fix[S, F]) Fix[S, F] {
	return x.with(unwrap(fixmath.Sub(x.spec(), x.raw(), y.raw())))
}

func (x Fix[S, F]) OverflowingSub(y Fix[S, F]) (Fix[S, F], bool) {
	r := fixmath.Sub(x.spec(), x.raw(), y.raw())
	return x.with(r.Wrapped), r.Overflow
}

// Mul. The product is computed in a double-width intermediate, rescaled by
// FracBits with round-to-nearest ties-to-even, and only then range-checked.

func (x Fix[S, F]) CheckedMul(y Fix[S, F]) (Fix[S, F], bool) {
	r := fixmath.Mul(x.spec(), x.raw(), y.raw())
	if r.Overflow {
		return Fix[S, F]{}, false
	}
	return x.with(r.Wrapped), true
}

func (x Fix[S, F]) SaturatingMul(y Fix[S, F]) Fix[S, F] {
	return x.with(fixmath.Mul(x.spec(), x.raw(), y.raw()).Sat)
}

func (x Fix[S, F]) WrappingMul(y Fix[S, F]) Fix[S, F] {
	return x.with(fixmath.Mul(x.spec(), x.raw(), y.raw()).Wrapped)
}

func (x Fix[S, F]) UnwrappedMul(y Fix[S, F]) Fix[S, F] {
	return x.with(unwrap(fixmath.Mul(x.spec(), x.raw(), y.raw())))
}

func (x Fix[S, F]) OverflowingMul(y Fix[S, F]) (Fix[S, F], bool) {
	r := fixmath.Mul(x.spec(), x.raw(), y.raw())
	return x.with(r.Wrapped), r.Overflow
}

// Div. The dividend is pre-scaled into the double-width intermediate so the
// quotient keeps its fractional bits, then rounded to nearest, ties to even.
// Division by zero panics in every family except Checked.

func (x Fix[S, F]) CheckedDiv(y Fix[S, F]) (Fix[S, F], bool) {
	r, ok := fixmath.Div(x.spec(), x.raw(), y.raw())
	if !ok || r.Overflow {
		return Fix[S, F]{}, false
	}
	return x.with(r.Wrapped), true
}

func (x Fix[S, F]) SaturatingDiv(y Fix[S, F]) Fix[S, F] {
	return x.with(mustDiv(fixmath.Div(x.spec(), x.raw(), y.raw())).Sat)
}

func (x Fix[S, F]) WrappingDiv(y Fix[S, F]) Fix[S, F] {
	return x.with(mustDiv(fixmath.Div(x.spec(), x.raw(), y.raw())).Wrapped)
}

func (x Fix[S, F]) UnwrappedDiv(y Fix[S, F]) Fix[S, F] {
	return x.with(unwrap(mustDiv(fixmath.Div(x.spec(), x.raw(), y.raw()))))
}

func (x Fix[S, F]) OverflowingDiv(y Fix[S, F]) (Fix[S, F], bool) {
	r := mustDiv(fixmath.Div(x.spec(), x.raw(), y.raw()))
	return x.with(r.Wrapped), r.Overflow
}

// Rem. The remainder of truncated division; the result has the sign of x.

func (x Fix[S, F]) CheckedRem(y Fix[S, F]) (Fix[S, F], bool) {
	r, ok := fixmath.Rem(x.spec(), x.raw(), y.raw())
	if !ok || r.Overflow {
		return Fix[S, F]{}, false
	}
	return x.with(r.Wrapped), true
}

func (x Fix[S, F]) SaturatingRem(y Fix[S, F]) Fix[S, F] {
	return x.with(mustDiv(fixmath.Rem(x.spec(), x.raw(), y.raw())).Sat)
}

func (x Fix[S, F]) WrappingRem(y Fix[S, F]) Fix[S, F] {
	return x.with(mustDiv(fixmath.Rem(x.spec(), x.raw(), y.raw())).Wrapped)
}

func (x Fix[S, F]) UnwrappedRem(y Fix[S, F]) Fix[S, F] {
	return x.with(unwrap(mustDiv(fixmath.Rem(x.spec(), x.raw(), y.raw()))))
}

func (x Fix[S, F]) OverflowingRem(y Fix[S, F]) (Fix[S, F], bool) {
	r := mustDiv(fixmath.Rem(x.spec(), x.raw(), y.raw()))
	return x.with(r.Wrapped), r.Overflow
}

// MulInt multiplies by an integer; no rescaling is involved.

func (x Fix[S, F]) CheckedMulInt(v int64) (Fix[S, F], bool) {
	r := fixmath.MulInt(x.spec(), x.raw(), v)
	if r.Overflow {
		return Fix[S, F]{}, false
	}
	return x.with(r.Wrapped), true
}

func (x Fix[S, F]) SaturatingMulInt(v int64) Fix[S, F] {
	return x.with(fixmath.MulInt(x.spec(), x.raw(), v).Sat)
}

func (x Fix[S, F]) WrappingMulInt(v int64) Fix[S, F] {
	return x.with(fixmath.MulInt(x.spec(), x.raw(), v).Wrapped)
}

func (x Fix[S, F]) UnwrappedMulInt(v int64) Fix[S, F] {
	return x.with(unwrap(fixmath.MulInt(x.spec(), x.raw(), v)))
}

func (x Fix[S, F]) OverflowingMulInt(v int64) (Fix[S, F], bool) {
	r := fixmath.MulInt(x.spec(), x.raw(), v)
	return x.with(r.Wrapped), r.Overflow
}

// DivInt divides by an integer at the same scale, rounding the quotient to
// nearest, ties to even.

func (x Fix[S, F]) CheckedDivInt(v int64) (Fix[S, F], bool) {
	r, ok := fixmath.DivInt(x.spec(), x.raw(), v)
	if !ok || r.Overflow {
		return Fix[S, F]{}, false
	}
	return x.with(r.Wrapped), true
}

func (x Fix[S, F]) SaturatingDivInt(v int64) Fix[S, F] {
	return x.with(mustDiv(fixmath.DivInt(x.spec(), x.raw(), v)).Sat)
}

func (x Fix[S, F]) WrappingDivInt(v int64) Fix[S, F] {
	return x.with(mustDiv(fixmath.DivInt(x.spec(), x.raw(), v)).Wrapped)
}

func (x Fix[S, F]) UnwrappedDivInt(v int64) Fix[S, F] {
	return x.with(unwrap(mustDiv(fixmath.DivInt(x.spec(), x.raw(), v))))
}

func (x Fix[S, F]) OverflowingDivInt(v int64) (Fix[S, F], bool) {
	r := mustDiv(fixmath.DivInt(x.spec(), x.raw(), v))
	return x.with(r.Wrapped), r.Overflow
}

// Neg.

func (x Fix[S, F]) CheckedNeg() (Fix[S, F], bool) {
	r := fixmath.Neg(x.spec(), x.raw())
	if r.Overflow {
		return Fix[S, F]{}, false
	}
	return x.with(r.Wrapped), true
}

func (x Fix[S, F]) SaturatingNeg() Fix[S, F] {
	return x.with(fixmath.Neg(x.spec(), x.raw()).Sat)
}

func (x Fix[S, F]) WrappingNeg() Fix[S, F] {
	return x.with(fixmath.Neg(x.spec(), x.raw()).Wrapped)
}

func (x Fix[S, F]) UnwrappedNeg() Fix[S, F] {
	return x.with(unwrap(fixmath.Neg(x.spec(), x.raw())))
}

func (x Fix[S, F]) OverflowingNeg() (Fix[S, F], bool) {
	r := fixmath.Neg(x.spec(), x.raw())
	return x.with(r.Wrapped), r.Overflow
}

// Abs. Overflows only for the minimum value of a signed layout.

func (x Fix[S, F]) CheckedAbs() (Fix[S, F], bool) {
	r := fixmath.Abs(x.spec(), x.raw())
	if r.Overflow {
		return Fix[S, F]{}, false
	}
	return x.with(r.Wrapped), true
}

func (x Fix[S, F]) SaturatingAbs() Fix[S, F] {
	return x.with(fixmath.Abs(x.spec(), x.raw()).Sat)
}

func (x Fix[S, F]) WrappingAbs() Fix[S, F] {
	return x.with(fixmath.Abs(x.spec(), x.raw()).Wrapped)
}

func (x Fix[S, F]) UnwrappedAbs() Fix[S, F] {
	return x.with(unwrap(fixmath.Abs(x.spec(), x.raw())))
}

func (x Fix[S, F]) OverflowingAbs() (Fix[S, F], bool) {
	r := fixmath.Abs(x.spec(), x.raw())
	return x.with(r.Wrapped), r.Overflow
}

// MulAdd returns x*y + z with a single rounding step: the product is kept at
// full double-width precision and only the final sum is rescaled. This is
// not equivalent to composing Mul and Add, which would round twice.

func (x Fix[S, F]) CheckedMulAdd(y, z Fix[S, F]) (Fix[S, F], bool) {
	r := fixmath.MulAdd(x.spec(), x.raw(), y.raw(), z.raw())
	if r.Overflow {
		return Fix[S, F]{}, false
	}
	return x.with(r.Wrapped), true
}

func (x Fix[S, F]) SaturatingMulAdd(y, z Fix[S, F]) Fix[S, F] {
	return x.with(fixmath.MulAdd(x.spec(), x.raw(), y.raw(), z.raw()).Sat)
}

func (x Fix[S, F]) WrappingMulAdd(y, z Fix[S, F]) Fix[S, F] {
	return x.with(fixmath.MulAdd(x.spec(), x.raw(), y.raw(), z.raw()).Wrapped)
}

func (x Fix[S, F]) UnwrappedMulAdd(y, z Fix[S, F]) Fix[S, F] {
	return x.with(unwrap(fixmath.MulAdd(x.spec(), x.raw(), y.raw(), z.raw())))
}

func (x Fix[S, F]) OverflowingMulAdd(y, z Fix[S, F]) (Fix[S, F], bool) {
	r := fixmath.MulAdd(x.spec(), x.raw(), y.raw(), z.raw())
	return x.with(r.Wrapped), r.Overflow
}

// AddProd returns x + a*b, the multiply-accumulate form of MulAdd.

func (x Fix[S, F]) CheckedAddProd(a, b Fix[S, F]) (Fix[S, F], bool) {
	r := fixmath.MulAdd(x.spec(), a.raw(), b.raw(), x.raw())
	if r.Overflow {
		return Fix[S, F]{}, false
	}
	return x.with(r.Wrapped), true
}

func (x Fix[S, F]) SaturatingAddProd(a, b Fix[S, F]) Fix[S, F] {
	return x.with(fixmath.MulAdd(x.spec(), a.raw(), b.raw(), x.raw()).Sat)
}

func (x Fix[S, F]) WrappingAddProd(a, b Fix[S, F]) Fix[S, F] {
	return x.with(fixmath.MulAdd(x.spec(), a.raw(), b.raw(), x.raw()).Wrapped)
}

func (x Fix[S, F]) UnwrappedAddProd(a, b Fix[S, F]) Fix[S, F] {
	return x.with(unwrap(fixmath.MulAdd(x.spec(), a.raw(), b.raw(), x.raw())))
}

func (x Fix[S, F]) OverflowingAddProd(a, b Fix[S, F]) (Fix[S, F], bool) {
	r := fixmath.MulAdd(x.spec(), a.raw(), b.raw(), x.raw())
	return x.with(r.Wrapped), r.Overflow
}

// Shl shifts the value left by sh bits; bits shifted beyond the layout's
// range overflow.

func (x Fix[S, F]) CheckedShl(sh uint) (Fix[S, F], bool) {
	r := fixmath.Shl(x.spec(), x.raw(), sh)
	if r.Overflow {
		return Fix[S, F]{}, false
	}
	return x.with(r.Wrapped), true
}

func (x Fix[S, F]) SaturatingShl(sh uint) Fix[S, F] {
	return x.with(fixmath.Shl(x.spec(), x.raw(), sh).Sat)
}

func (x Fix[S, F]) WrappingShl(sh uint) Fix[S, F] {
	return x.with(fixmath.Shl(x.spec(), x.raw(), sh).Wrapped)
}

func (x Fix[S, F]) UnwrappedShl(sh uint) Fix[S, F] {
	return x.with(unwrap(fixmath.Shl(x.spec(), x.raw(), sh)))
}

func (x Fix[S, F]) OverflowingShl(sh uint) (Fix[S, F], bool) {
	r := fixmath.Shl(x.spec(), x.raw(), sh)
	return x.with(r.Wrapped), r.Overflow
}

// Shr shifts the value right by sh bits, arithmetic for signed layouts.
// Discarded bits are dropped without rounding; Shr cannot overflow.
func (x Fix[S, F]) Shr(sh uint) Fix[S, F] {
	return x.with(fixmath.Shr(x.spec(), x.raw(), sh).Wrapped)
}

// Floor rounds toward negative infinity to an integer multiple.
// It cannot overflow.
func (x Fix[S, F]) Floor() Fix[S, F] {
	return x.with(fixmath.RoundInt(x.spec(), x.raw(), fixmath.Floor).Wrapped)
}

// Trunc rounds toward zero to an integer multiple. It cannot overflow.
func (x Fix[S, F]) Trunc() Fix[S, F] {
	return x.with(fixmath.RoundInt(x.spec(), x.raw(), fixmath.Trunc).Wrapped)
}

// Ceil rounds toward positive infinity to an integer multiple.

func (x Fix[S, F]) CheckedCeil() (Fix[S, F], bool) {
	r := fixmath.RoundInt(x.spec(), x.raw(), fixmath.Ceil)
	if r.Overflow {
		return Fix[S, F]{}, false
	}
	return x.with(r.Wrapped), true
}

func (x Fix[S, F]) SaturatingCeil() Fix[S, F] {
	return x.with(fixmath.RoundInt(x.spec(), x.raw(), fixmath.Ceil).Sat)
}

func (x Fix[S, F]) WrappingCeil() Fix[S, F] {
	return x.with(fixmath.RoundInt(x.spec(), x.raw(), fixmath.Ceil).Wrapped)
}

func (x Fix[S, F]) UnwrappedCeil() Fix[S, F] {
	return x.with(unwrap(fixmath.RoundInt(x.spec(), x.raw(), fixmath.Ceil)))
}

func (x Fix[S, F]) OverflowingCeil() (Fix[S, F], bool) {
	r := fixmath.RoundInt(x.spec(), x.raw(), fixmath.Ceil)
	return x.with(r.Wrapped), r.Overflow
}

// Round rounds to the nearest integer multiple, ties away from zero.

func (x Fix[S, F]) CheckedRound() (Fix[S, F], bool) {
	r := fixmath.RoundInt(x.spec(), x.raw(), fixmath.RoundHalfAway)
	if r.Overflow {
		return Fix[S, F]{}, false
	}
	return x.with(r.Wrapped), true
}

func (x Fix[S, F]) SaturatingRound() Fix[S, F] {
	return x.with(fixmath.RoundInt(x.spec(), x.raw(), fixmath.RoundHalfAway).Sat)
}

func (x Fix[S, F]) WrappingRound() Fix[S, F] {
	return x.with(fixmath.RoundInt(x.spec(), x.raw(), fixmath.RoundHalfAway).Wrapped)
}

func (x Fix[S, F]) UnwrappedRound() Fix[S, F] {
	return x.with(unwrap(fixmath.RoundInt(x.spec(), x.raw(), fixmath.RoundHalfAway)))
}

func (x Fix[S, F]) OverflowingRound() (Fix[S, F], bool) {
	r := fixmath.RoundInt(x.spec(), x.raw(), fixmath.RoundHalfAway)
	return x.with(r.Wrapped), r.Overflow
}

// RoundTiesEven rounds to the nearest integer multiple, ties to even.

func (x Fix[S, F]) CheckedRoundTiesEven() (Fix[S, F], bool) {
	r := fixmath.RoundInt(x.spec(), x.raw(), fixmath.RoundHalfEven)
	if r.Overflow {
		return Fix[S, F]{}, false
	}
	return x.with(r.Wrapped), true
}

func (x Fix[S, F]) SaturatingRoundTiesEven() Fix[S, F] {
	return x.with(fixmath.RoundInt(x.spec(), x.raw(), fixmath.RoundHalfEven).Sat)
}

func (x Fix[S, F]) WrappingRoundTiesEven() Fix[S, F] {
	return x.with(fixmath.RoundInt(x.spec(), x.raw(), fixmath.RoundHalfEven).Wrapped)
}

func (x Fix[S, F]) UnwrappedRoundTiesEven() Fix[S, F] {
	return x.with(unwrap(fixmath.RoundInt(x.spec(), x.raw(), fixmath.RoundHalfEven)))
}

func (x Fix[S, F]) OverflowingRoundTiesEven() (Fix[S, F], bool) {
	r := fixmath.RoundInt(x.spec(), x.raw(), fixmath.RoundHalfEven)
	return x.with(r.Wrapped), r.Overflow
}
