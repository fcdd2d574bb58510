// Package fixmath implements every fixed-point operation exactly once,
// independent of overflow policy. Operands and results travel as canonical
// 128-bit patterns: sign-extended for signed layouts, zero-extended for
// unsigned ones. Each operation computes the mathematically exact outcome in a
// double-width intermediate, rescales with round-to-nearest ties-to-even where
// the layout requires it, and reports the wrapped value, the saturated value
// and an overflow flag. Callers pick one of the five policies from that.
package fixmath

import (
	"math"

	"github.com/Certora/fixed/internal/int128"
)

// Spec describes a fixed-point layout: total storage width in bits, the
// number of fractional bits (possibly negative or larger than Bits), and
// signedness.
type Spec struct {
	Bits   uint32
	Frac   int32
	Signed bool
}

// IntBits returns Bits-Frac, which may be negative.
func (s Spec) IntBits() int32 { return int32(s.Bits) - s.Frac }

// Result carries one operation outcome under all overflow policies at once.
type Result struct {
	Wrapped  int128.Int // exact result modulo 2^Bits, canonical
	Sat      int128.Int // exact result clamped to the layout's range
	Overflow bool
}

// Rounding selects how Rescale treats discarded fractional bits.
type Rounding int

const (
	// RoundEven rounds to nearest, ties to even.
	RoundEven Rounding = iota
	// RoundTrunc discards fractional bits toward zero, never rounding.
	RoundTrunc
)

// MaxRaw returns the canonical pattern of the layout's maximum value.
func MaxRaw(s Spec) int128.Int {
	if s.Signed {
		return maxMag(s)
	}
	return canon(s, maxMag(s))
}

// MinRaw returns the canonical pattern of the layout's minimum value.
func MinRaw(s Spec) int128.Int {
	if !s.Signed {
		return int128.Int{}
	}
	return canon(s, negMag(s).Neg())
}

// maxMag is the largest representable magnitude: 2^(Bits-1)-1 signed,
// 2^Bits-1 unsigned.
func maxMag(s Spec) int128.Int {
	one := int128.Int{Lo: 1}
	if s.Signed {
		return one.Shl(uint(s.Bits - 1)).Sub(one)
	}
	if s.Bits >= 128 {
		return int128.Int{Hi: ^uint64(0), Lo: ^uint64(0)}
	}
	return one.Shl(uint(s.Bits)).Sub(one)
}

// negMag is the largest magnitude representable on the negative side.
func negMag(s Spec) int128.Int {
	if !s.Signed {
		return int128.Int{}
	}
	return int128.Int{Lo: 1}.Shl(uint(s.Bits - 1))
}

// canon truncates a pattern to the layout width and extends it back to 128
// bits: sign-extension for signed layouts, zero-extension otherwise.
func canon(s Spec, v int128.Int) int128.Int {
	if s.Bits >= 128 {
		return v
	}
	sh := uint(128 - s.Bits)
	if s.Signed {
		return v.Shl(sh).Sar(sh)
	}
	return v.Shl(sh).Shr(sh)
}

// split decomposes a canonical pattern into sign and unsigned magnitude.
func split(s Spec, raw int128.Int) (neg bool, mag int128.Int) {
	if s.Signed && raw.SignBit() {
		return true, raw.Neg()
	}
	return false, raw
}

func wide(v int128.Int) int128.U256 { return int128.U256{Lo: v} }

// fit checks an exact signed magnitude against the layout's range and builds
// the Result. force marks outcomes already known to be out of range (bits
// were lost while widening).
func fit(s Spec, neg bool, mag int128.U256, force bool) Result {
	if mag.IsZero() {
		neg = false
	}
	limit := maxMag(s)
	if neg {
		limit = negMag(s)
	}
	over := force || !mag.Hi.IsZero() || mag.Lo.Cmp(limit) > 0
	pattern := mag.Lo
	if neg {
		pattern = pattern.Neg()
	}
	r := Result{Wrapped: canon(s, pattern), Overflow: over}
	r.Sat = r.Wrapped
	if over {
		if neg {
			r.Sat = MinRaw(s)
		} else {
			r.Sat = MaxRaw(s)
		}
	}
	return r
}

func addMag(an bool, am int128.U256, bn bool, bm int128.U256) (bool, int128.U256) {
	if an == bn {
		return an, am.Add(bm)
	}
	if am.Cmp(bm) >= 0 {
		return an, am.Sub(bm)
	}
	return bn, bm.Sub(am)
}

// Add returns a+b.
func Add(s Spec, a, b int128.Int) Result {
	an, am := split(s, a)
	bn, bm := split(s, b)
	neg, mag := addMag(an, wide(am), bn, wide(bm))
	return fit(s, neg, mag, false)
}

// Sub returns a-b.
func Sub(s Spec, a, b int128.Int) Result {
	an, am := split(s, a)
	bn, bm := split(s, b)
	neg, mag := addMag(an, wide(am), !bn, wide(bm))
	return fit(s, neg, mag, false)
}

// Neg returns -a.
func Neg(s Spec, a int128.Int) Result {
	an, am := split(s, a)
	return fit(s, !an, wide(am), false)
}

// Abs returns |a|.
func Abs(s Spec, a int128.Int) Result {
	_, am := split(s, a)
	return fit(s, false, wide(am), false)
}

// rescaleMag moves a double-width magnitude from scale extra+Frac down to
// Frac, rounding to nearest ties to even. A negative extra shifts left.
func rescaleMag(mag int128.U256, extra int32) (out int128.U256, force bool) {
	if extra >= 0 {
		out, _ = mag.RoundShrEven(uint(extra))
		return out, false
	}
	out, lost := mag.ShlCheck(uint(-extra))
	return out, lost
}

// Mul returns a*b. The product is formed in a 256-bit intermediate and
// rescaled by Frac bits with ties-to-even rounding before the range check.
func Mul(s Spec, a, b int128.Int) Result {
	an, am := split(s, a)
	bn, bm := split(s, b)
	mag, force := rescaleMag(am.Mul(bm), s.Frac)
	return fit(s, an != bn, mag, force)
}

// MulInt returns a*v for an integer v, no rescaling.
func MulInt(s Spec, a int128.Int, v int64) Result {
	an, am := split(s, a)
	bn, bm := false, int128.FromInt64(v)
	if v < 0 {
		bn, bm = true, bm.Neg()
	}
	return fit(s, an != bn, am.Mul(bm), false)
}

// quotEven divides n by d rounding the quotient to nearest, ties to even.
// d must be nonzero.
func quotEven(n, d int128.U256) int128.U256 {
	q, r := n.QuoRem(d)
	if r.IsZero() {
		return q
	}
	r2, lost := r.ShlCheck(1)
	c := 1
	if !lost {
		c = r2.Cmp(d)
	}
	if c > 0 || (c == 0 && q.Lo.Lo&1 == 1) {
		q = q.Add(int128.U256{Lo: int128.Int{Lo: 1}})
	}
	return q
}

// Div returns a/b. The dividend is pre-scaled by Frac bits into the
// double-width intermediate so the quotient keeps its fractional bits, then
// rounded to nearest ties to even. ok is false when b is zero.
func Div(s Spec, a, b int128.Int) (Result, bool) {
	if b.IsZero() {
		return Result{}, false
	}
	an, am := split(s, a)
	bn, bm := split(s, b)
	num, den := wide(am), wide(bm)
	force := false
	if s.Frac >= 0 {
		num, force = num.ShlCheck(uint(s.Frac))
	} else {
		var lost bool
		den, lost = den.ShlCheck(uint(-s.Frac))
		if lost { // divisor beyond the intermediate: quotient underflows to zero
			return fit(s, an != bn, int128.U256{}, false), true
		}
	}
	if force {
		return fit(s, an != bn, num, true), true
	}
	return fit(s, an != bn, quotEven(num, den), false), true
}

// DivInt returns a/v at the same scale, rounded to nearest ties to even.
// ok is false when v is zero.
func DivInt(s Spec, a int128.Int, v int64) (Result, bool) {
	if v == 0 {
		return Result{}, false
	}
	an, am := split(s, a)
	bn, bm := false, int128.FromInt64(v)
	if v < 0 {
		bn, bm = true, bm.Neg()
	}
	return fit(s, an != bn, quotEven(wide(am), wide(bm)), false), true
}

// Rem returns a%b under truncated division; the result takes the sign of a.
// ok is false when b is zero.
func Rem(s Spec, a, b int128.Int) (Result, bool) {
	if b.IsZero() {
		return Result{}, false
	}
	an, am := split(s, a)
	_, bm := split(s, b)
	_, r := wide(am).QuoRem(wide(bm))
	return fit(s, an, r, false), true
}

// MulAdd returns a*b+c with a single rounding step: the product is kept at
// double precision and only the final sum is rescaled.
func MulAdd(s Spec, a, b, c int128.Int) Result {
	an, am := split(s, a)
	bn, bm := split(s, b)
	cn, cm := split(s, c)
	prod := am.Mul(bm)
	pn := an != bn
	if s.Frac >= 0 {
		// align the addend to the product's 2*Frac scale
		cw, lost := wide(cm).ShlCheck(uint(s.Frac))
		if lost {
			return fit(s, cn, int128.U256{}, true)
		}
		neg, mag := addMag(pn, prod, cn, cw)
		mag, _ = mag.RoundShrEven(uint(s.Frac))
		return fit(s, neg, mag, false)
	}
	// negative Frac: the addend's scale is the finer one. A lost shift keeps
	// the low 256 bits of the product so the wrapped sum stays exact modulo
	// 2^Bits, same as rescaleMag in Mul.
	pw, lost := prod.ShlCheck(uint(-s.Frac))
	neg, mag := addMag(pn, pw, cn, wide(cm))
	r := fit(s, neg, mag, lost)
	if lost {
		// the exact product dwarfs the addend, so it decides the clamp side
		if pn {
			r.Sat = MinRaw(s)
		} else {
			r.Sat = MaxRaw(s)
		}
	}
	return r
}

// Shl shifts the value left by sh bits.
func Shl(s Spec, a int128.Int, sh uint) Result {
	an, am := split(s, a)
	mag, force := wide(am).ShlCheck(sh)
	return fit(s, an, mag, force)
}

// Shr shifts the value right by sh bits; arithmetic for signed layouts.
// Discarded bits are dropped, not rounded. Never overflows.
func Shr(s Spec, a int128.Int, sh uint) Result {
	var out int128.Int
	if s.Signed {
		out = a.Sar(sh)
	} else {
		out = a.Shr(sh)
	}
	out = canon(s, out)
	return Result{Wrapped: out, Sat: out}
}

// RoundOp selects one of the integer-rounding operations.
type RoundOp int

const (
	Floor RoundOp = iota
	Ceil
	Trunc
	RoundHalfAway
	RoundHalfEven
)

// RoundInt rounds a to an integer multiple, keeping the layout.
// Floor and Trunc can never overflow; the others can.
func RoundInt(s Spec, a int128.Int, op RoundOp) Result {
	if s.Frac <= 0 {
		out := canon(s, a)
		return Result{Wrapped: out, Sat: out}
	}
	f := uint(s.Frac)
	if op == Floor {
		var out int128.Int
		if s.Signed {
			out = a.Sar(f).Shl(f)
		} else {
			out = a.Shr(f).Shl(f)
		}
		out = canon(s, out)
		return Result{Wrapped: out, Sat: out}
	}
	an, am := split(s, a)
	w := wide(am)
	var mag int128.U256
	switch op {
	case Trunc:
		mag = w.Shr(f).Shl(f)
	case Ceil:
		if an {
			mag = w.Shr(f).Shl(f)
		} else {
			mask := int128.Int{Lo: 1}.Shl(f).Sub(int128.Int{Lo: 1})
			mag = w.Add(wide(mask)).Shr(f).Shl(f)
		}
	case RoundHalfAway:
		half := int128.U256{Lo: int128.Int{Lo: 1}.Shl(f - 1)}
		mag = w.Add(half).Shr(f).Shl(f)
	case RoundHalfEven:
		mag, _ = w.RoundShrEven(f)
		mag = mag.Shl(f)
	}
	return fit(s, an, mag, false)
}

// Split decomposes a canonical pattern into sign and unsigned magnitude.
func Split(s Spec, raw int128.Int) (neg bool, mag int128.Int) {
	return split(s, raw)
}

// FracPart returns a minus its integer part (a - floor(a)), wrapped to the
// layout. The result keeps exactly the fractional bits of the pattern.
func FracPart(s Spec, a int128.Int) int128.Int {
	return canon(s, a.Sub(RoundInt(s, a, Floor).Wrapped))
}

// Rescale converts a signed magnitude at fromFrac to the layout's scale.
// exact reports whether no fractional bits were discarded.
func Rescale(s Spec, neg bool, mag int128.Int, fromFrac int32, rule Rounding) (Result, bool) {
	diff := s.Frac - fromFrac
	if diff >= 0 {
		w, force := wide(mag).ShlCheck(uint(diff))
		return fit(s, neg, w, force), !force
	}
	sh := uint(-diff)
	if rule == RoundTrunc {
		w := wide(mag)
		out := w.Shr(sh)
		return fit(s, neg, out, false), out.Shl(sh) == w
	}
	out, exact := wide(mag).RoundShrEven(sh)
	return fit(s, neg, out, false), exact
}

// Cmp compares two canonical patterns under the layout's signedness.
func Cmp(s Spec, a, b int128.Int) int {
	if s.Signed {
		return a.CmpS(b)
	}
	return a.Cmp(b)
}

// FromFloat converts a finite float64 to the layout with ties-to-even
// rounding. ok is false for NaN and infinities.
func FromFloat(s Spec, f float64) (Result, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Result{}, false
	}
	if f == 0 {
		return Result{}, true
	}
	fr, exp := math.Frexp(math.Abs(f))
	m := uint64(fr * (1 << 53)) // 53-bit mantissa, value = m * 2^(exp-53)
	shift := exp - 53 + int(s.Frac)
	var mag int128.U256
	force := false
	if shift >= 0 {
		mag, force = wide(int128.FromUint64(m)).ShlCheck(uint(shift))
	} else {
		mag, _ = wide(int128.FromUint64(m)).RoundShrEven(uint(-shift))
	}
	return fit(s, math.Signbit(f), mag, force), true
}

// Float64 converts a canonical pattern to the nearest float64.
func Float64(s Spec, a int128.Int) float64 {
	neg, mag := split(s, a)
	f := math.Ldexp(mag.MagFloat64(), -int(s.Frac))
	if neg {
		return -f
	}
	return f
}
