// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fixed

import (
	"math"
	"math/big"
	"math/bits"

	"golang.org/x/exp/constraints"

	"github.com/Certora/fixed/internal/int128"
)

// Q is a universal exchange value, a sign-magnitude number of the form
// mag * 2^-frac with a 128-bit magnitude. Every Fix and Fix128 value
// converts to a Q exactly, and a Q converts to any layout through the
// Convert family, so Q is the lossless bridge between layouts of
// different width, fractional size and signedness.
//
// The zero Q is the number zero.
type Q struct {
	neg  bool
	mag  int128.Int
	frac int32
}

// QFromInt returns a Q holding the exact value of v.
func QFromInt[T constraints.Integer](v T) Q {
	if v < 0 {
		return Q{neg: true, mag: int128.FromUint64(uint64(-int64(v)))}
	}
	return Q{mag: int128.FromUint64(uint64(v))}
}

// QFromFloat returns a Q holding the exact value of v.
// It returns ErrNotFinite if v is a NaN or an infinity.
func QFromFloat[T constraints.Float](v T) (Q, error) {
	f := float64(v)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Q{}, ErrNotFinite
	}
	if f == 0 {
		return Q{}, nil
	}
	neg := math.Signbit(f)
	mant, exp := math.Frexp(math.Abs(f))
	// mant is in [0.5, 1), so m below has at most 53 significant bits.
	m := uint64(mant * (1 << 53))
	exp -= 53
	for m&1 == 0 && exp < 0 {
		m >>= 1
		exp++
	}
	mag := int128.FromUint64(m)
	if exp > 0 {
		if exp > 128-bits.Len64(m) {
			return Q{}, ErrOverflow
		}
		mag = mag.Shl(uint(exp))
		exp = 0
	}
	return Q{neg: neg, mag: mag, frac: int32(-exp)}, nil
}

// IsZero reports whether q is zero.
func (q Q) IsZero() bool { return q.mag.IsZero() }

// Sign returns -1 if q < 0, 0 if q == 0, 1 if q > 0.
func (q Q) Sign() int {
	if q.mag.IsZero() {
		return 0
	}
	if q.neg {
		return -1
	}
	return 1
}

// Neg returns -q.
func (q Q) Neg() Q {
	if q.mag.IsZero() {
		return q
	}
	return Q{neg: !q.neg, mag: q.mag, frac: q.frac}
}

// Cmp compares q and other numerically and returns -1, 0 or 1.
func (q Q) Cmp(other Q) int {
	qs, os := q.Sign(), other.Sign()
	if qs != os {
		if qs < os {
			return -1
		}
		return 1
	}
	if qs == 0 {
		return 0
	}
	c := cmpScaled(q.mag, q.frac, other.mag, other.frac)
	if qs < 0 {
		c = -c
	}
	return c
}

// cmpScaled compares a*2^-af with b*2^-bf, both nonzero magnitudes.
func cmpScaled(a int128.Int, af int32, b int128.Int, bf int32) int {
	if af == bf {
		return a.Cmp(b)
	}
	// Align on the larger frac; a shift that loses bits decides by itself.
	if af < bf {
		sh := uint(bf - af)
		if sh >= 128 || int32(sh) > int32(a.LeadingZeros()) {
			return 1
		}
		return a.Shl(sh).Cmp(b)
	}
	sh := uint(af - bf)
	if sh >= 128 || int32(sh) > int32(b.LeadingZeros()) {
		return -1
	}
	return a.Cmp(b.Shl(sh))
}

// Float64 returns the nearest float64.
func (q Q) Float64() float64 {
	f := q.mag.MagFloat64() * math.Exp2(-float64(q.frac))
	if q.neg {
		f = -f
	}
	return f
}

// Rat returns the value as an exact big rational.
func (q Q) Rat() *big.Rat {
	num := q.mag.BigMag()
	if q.neg {
		num.Neg(num)
	}
	den := big.NewInt(1)
	if q.frac > 0 {
		den.Lsh(den, uint(q.frac))
	} else if q.frac < 0 {
		num.Lsh(num, uint(-q.frac))
	}
	return new(big.Rat).SetFrac(num, den)
}

// String formats the value in decimal with enough digits to be exact.
func (q Q) String() string {
	var buf []byte
	return string(appendDecimal(buf, q.neg, q.mag, q.frac, -1, false))
}
