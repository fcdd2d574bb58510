// Package int128 implements 128-bit patterns and the 256-bit intermediates
// needed by fixed-point multiplication and division.
//
// An Int is a plain bit pattern: whether it is interpreted as two's-complement
// signed or as unsigned is decided per call site. All operations are
// allocation-free except the math/big bridges used by text conversion.
package int128

import (
	"math/big"
	"math/bits"
)

// Int is a 128-bit pattern stored as two 64-bit words.
type Int struct {
	Hi, Lo uint64
}

// U256 is a 256-bit unsigned value used as a double-width intermediate.
type U256 struct {
	Hi, Lo Int
}

var (
	zero    Int
	zero256 U256
)

// FromInt64 sign-extends v to 128 bits.
func FromInt64(v int64) Int {
	if v < 0 {
		return Int{Hi: ^uint64(0), Lo: uint64(v)}
	}
	return Int{Lo: uint64(v)}
}

// FromUint64 zero-extends v to 128 bits.
func FromUint64(v uint64) Int {
	return Int{Lo: v}
}

func (v Int) IsZero() bool { return v == zero }

// SignBit reports the top bit, the sign under two's-complement interpretation.
func (v Int) SignBit() bool { return v.Hi>>63 != 0 }

// Neg returns the two's complement of v. Negating the minimum signed pattern
// returns the same pattern, which is its magnitude under unsigned
// interpretation.
func (v Int) Neg() (out Int) {
	out.Lo, out.Hi = bits.Add64(^v.Lo, 1, 0)
	out.Hi += ^v.Hi
	return out
}

func (v Int) Add(n Int) (out Int) {
	var c uint64
	out.Lo, c = bits.Add64(v.Lo, n.Lo, 0)
	out.Hi, _ = bits.Add64(v.Hi, n.Hi, c)
	return out
}

func (v Int) Sub(n Int) (out Int) {
	var b uint64
	out.Lo, b = bits.Sub64(v.Lo, n.Lo, 0)
	out.Hi, _ = bits.Sub64(v.Hi, n.Hi, b)
	return out
}

// Cmp compares two patterns as unsigned values.
func (v Int) Cmp(n Int) int {
	switch {
	case v.Hi > n.Hi:
		return 1
	case v.Hi < n.Hi:
		return -1
	case v.Lo > n.Lo:
		return 1
	case v.Lo < n.Lo:
		return -1
	}
	return 0
}

// CmpS compares two patterns as two's-complement signed values.
func (v Int) CmpS(n Int) int {
	if vs, ns := v.SignBit(), n.SignBit(); vs != ns {
		if vs {
			return -1
		}
		return 1
	}
	return v.Cmp(n)
}

func (v Int) Shl(sh uint) (out Int) {
	switch {
	case sh >= 128:
		return zero
	case sh >= 64:
		return Int{Hi: v.Lo << (sh - 64)}
	case sh == 0:
		return v
	}
	return Int{Hi: v.Hi<<sh | v.Lo>>(64-sh), Lo: v.Lo << sh}
}

// Shr is a logical right shift.
func (v Int) Shr(sh uint) (out Int) {
	switch {
	case sh >= 128:
		return zero
	case sh >= 64:
		return Int{Lo: v.Hi >> (sh - 64)}
	case sh == 0:
		return v
	}
	return Int{Hi: v.Hi >> sh, Lo: v.Lo>>sh | v.Hi<<(64-sh)}
}

// Sar is an arithmetic right shift.
func (v Int) Sar(sh uint) (out Int) {
	fill := uint64(0)
	if v.SignBit() {
		fill = ^uint64(0)
	}
	switch {
	case sh >= 128:
		return Int{Hi: fill, Lo: fill}
	case sh >= 64:
		return Int{Hi: fill, Lo: uint64(int64(v.Hi) >> (sh - 64))}
	case sh == 0:
		return v
	}
	return Int{Hi: uint64(int64(v.Hi) >> sh), Lo: v.Lo>>sh | v.Hi<<(64-sh)}
}

func (v Int) LeadingZeros() uint {
	if v.Hi != 0 {
		return uint(bits.LeadingZeros64(v.Hi))
	}
	return 64 + uint(bits.LeadingZeros64(v.Lo))
}

// Mul multiplies two patterns as unsigned values into a 256-bit product.
func (v Int) Mul(n Int) (out U256) {
	h00, l00 := bits.Mul64(v.Lo, n.Lo)
	h01, l01 := bits.Mul64(v.Lo, n.Hi)
	h10, l10 := bits.Mul64(v.Hi, n.Lo)
	h11, l11 := bits.Mul64(v.Hi, n.Hi)

	r1, c1 := bits.Add64(h00, l01, 0)
	r1, c2 := bits.Add64(r1, l10, 0)
	r2, c3 := bits.Add64(h01, h10, c1)
	r2, c4 := bits.Add64(r2, l11, c2)
	r3 := h11 + c3 + c4

	out.Lo = Int{Hi: r1, Lo: l00}
	out.Hi = Int{Hi: r3, Lo: r2}
	return out
}

// MagFloat64 converts the unsigned magnitude to the nearest float64.
func (v Int) MagFloat64() float64 {
	if v.Hi == 0 {
		return float64(v.Lo)
	}
	return float64(v.Hi)*0x1p64 + float64(v.Lo)
}

// BigMag returns the unsigned magnitude as a big.Int.
func (v Int) BigMag() *big.Int {
	b := new(big.Int).SetUint64(v.Hi)
	b.Lsh(b, 64)
	return b.Or(b, new(big.Int).SetUint64(v.Lo))
}

// FromBigMag converts a non-negative big.Int into a pattern.
// ok is false if b does not fit 128 bits.
func FromBigMag(b *big.Int) (out Int, ok bool) {
	if b.Sign() < 0 || b.BitLen() > 128 {
		return out, false
	}
	words := b.Bits()
	for i, w := range words { // 64-bit words on all supported platforms
		if i == 0 {
			out.Lo = uint64(w)
		} else {
			out.Hi = uint64(w)
		}
	}
	return out, true
}

func (n U256) IsZero() bool { return n == zero256 }

func (n U256) Cmp(m U256) int {
	if c := n.Hi.Cmp(m.Hi); c != 0 {
		return c
	}
	return n.Lo.Cmp(m.Lo)
}

func (n U256) Add(m U256) (out U256) {
	var c uint64
	out.Lo.Lo, c = bits.Add64(n.Lo.Lo, m.Lo.Lo, 0)
	out.Lo.Hi, c = bits.Add64(n.Lo.Hi, m.Lo.Hi, c)
	out.Hi.Lo, c = bits.Add64(n.Hi.Lo, m.Hi.Lo, c)
	out.Hi.Hi, _ = bits.Add64(n.Hi.Hi, m.Hi.Hi, c)
	return out
}

func (n U256) Sub(m U256) (out U256) {
	var b uint64
	out.Lo.Lo, b = bits.Sub64(n.Lo.Lo, m.Lo.Lo, 0)
	out.Lo.Hi, b = bits.Sub64(n.Lo.Hi, m.Lo.Hi, b)
	out.Hi.Lo, b = bits.Sub64(n.Hi.Lo, m.Hi.Lo, b)
	out.Hi.Hi, _ = bits.Sub64(n.Hi.Hi, m.Hi.Hi, b)
	return out
}

func (n U256) Shl(sh uint) (out U256) {
	switch {
	case sh >= 256:
		return zero256
	case sh >= 128:
		return U256{Hi: n.Lo.Shl(sh - 128)}
	case sh == 0:
		return n
	}
	out.Hi = n.Hi.Shl(sh)
	out.Hi = out.Hi.Add(n.Lo.Shr(128 - sh))
	out.Lo = n.Lo.Shl(sh)
	return out
}

func (n U256) Shr(sh uint) (out U256) {
	switch {
	case sh >= 256:
		return zero256
	case sh >= 128:
		return U256{Lo: n.Hi.Shr(sh - 128)}
	case sh == 0:
		return n
	}
	out.Lo = n.Lo.Shr(sh)
	out.Lo = out.Lo.Add(n.Hi.Shl(128 - sh))
	out.Hi = n.Hi.Shr(sh)
	return out
}

// ShlCheck shifts left and reports whether any set bit was shifted out.
func (n U256) ShlCheck(sh uint) (out U256, lost bool) {
	if sh == 0 {
		return n, false
	}
	if sh >= 256 {
		return zero256, !n.IsZero()
	}
	out = n.Shl(sh)
	return out, !n.Shr(256-sh).IsZero()
}

func (n U256) LeadingZeros() uint {
	if !n.Hi.IsZero() {
		return n.Hi.LeadingZeros()
	}
	return 128 + n.Lo.LeadingZeros()
}

func (n U256) bit(i uint) U256 {
	if i >= 128 {
		return U256{Hi: Int{}.setBit(i - 128)}
	}
	return U256{Lo: Int{}.setBit(i)}
}

func (v Int) setBit(i uint) Int {
	if i >= 64 {
		v.Hi |= 1 << (i - 64)
	} else {
		v.Lo |= 1 << i
	}
	return v
}

// QuoRem divides n by d with a binary shift-subtract loop. d must be nonzero.
func (n U256) QuoRem(d U256) (q, r U256) {
	if n.Cmp(d) < 0 {
		return zero256, n
	}
	shift := int(d.LeadingZeros() - n.LeadingZeros())
	d = d.Shl(uint(shift))
	for ; shift >= 0; shift-- {
		q = q.Shl(1)
		if n.Cmp(d) >= 0 {
			n = n.Sub(d)
			q.Lo.Lo |= 1
		}
		d = d.Shr(1)
	}
	return q, n
}

// RoundShrEven shifts right rounding to nearest, ties to even.
// exact reports whether no set bit was discarded.
func (n U256) RoundShrEven(sh uint) (out U256, exact bool) {
	if sh == 0 {
		return n, true
	}
	out = n.Shr(sh)
	rem := n.Sub(out.Shl(sh))
	if rem.IsZero() {
		return out, true
	}
	if sh <= 256 { // otherwise rem is always below the halfway point
		half := U256{}.bit(sh - 1)
		switch rem.Cmp(half) {
		case 1:
			out = out.Add(U256{Lo: Int{Lo: 1}})
		case 0:
			if out.Lo.Lo&1 == 1 {
				out = out.Add(U256{Lo: Int{Lo: 1}})
			}
		}
	}
	return out, false
}
