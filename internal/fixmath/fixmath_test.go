// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fixmath

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Certora/fixed/internal/int128"
)

var (
	i8f4   = Spec{Bits: 8, Frac: 4, Signed: true}
	u8f4   = Spec{Bits: 8, Frac: 4, Signed: false}
	i16f8  = Spec{Bits: 16, Frac: 8, Signed: true}
	i16f12 = Spec{Bits: 16, Frac: 12, Signed: true}
	i8m2   = Spec{Bits: 8, Frac: -2, Signed: true}
	i8f12  = Spec{Bits: 8, Frac: 12, Signed: true}
)

func raw(v int64) int128.Int { return int128.FromInt64(v) }

func TestRawBounds(t *testing.T) {
	a := assert.New(t)
	a.Equal(raw(127), MaxRaw(i8f4))
	a.Equal(raw(-128), MinRaw(i8f4))
	a.Equal(raw(255), MaxRaw(u8f4))
	a.Equal(raw(0), MinRaw(u8f4))
	a.Equal(int32(4), i8f4.IntBits())
	a.Equal(int32(-4), i8f12.IntBits())
	a.Equal(int32(10), i8m2.IntBits())
}

func TestAdd(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		s        Spec
		x, y     int64
		wrapped  int64
		sat      int64
		overflow bool
	}{
		{i8f4, 16, 16, 32, 32, false}, // 1 + 1 = 2
		{i8f4, 127, 1, -128, 127, true},
		{i8f4, -128, -1, 127, -128, true},
		{i8f4, -64, -64, -128, -128, false},
		{u8f4, 255, 1, 0, 255, true},
		{u8f4, 200, 55, 255, 255, false},
		{i8m2, 3, 3, 6, 6, false}, // 12 + 12 = 24
		{i8m2, 127, 1, -128, 127, true},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			r := Add(test.s, canon(test.s, raw(test.x)), canon(test.s, raw(test.y)))
			a.Equal(raw(test.wrapped), r.Wrapped)
			a.Equal(raw(test.sat), r.Sat)
			a.Equal(test.overflow, r.Overflow)
		})
	}
}

func TestSubNeg(t *testing.T) {
	a := assert.New(t)
	r := Sub(i8f4, raw(16), raw(24)) // 1 - 1.5 = -0.5
	a.Equal(raw(-8), r.Wrapped)
	a.False(r.Overflow)

	r = Sub(u8f4, raw(16), raw(24)) // unsigned underflow
	a.True(r.Overflow)
	a.Equal(raw(0), r.Sat)

	r = Neg(i8f4, raw(-128))
	a.True(r.Overflow)
	a.Equal(raw(127), r.Sat)
	a.Equal(raw(-128), r.Wrapped)

	r = Abs(i8f4, raw(-128))
	a.True(r.Overflow)

	r = Neg(i8f4, raw(40))
	a.Equal(raw(-40), r.Wrapped)
	a.False(r.Overflow)
}

func TestMul(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		s        Spec
		x, y     int64
		wrapped  int64
		overflow bool
	}{
		{i8f4, 24, 40, 60, false},  // 1.5 * 2.5 = 3.75
		{i8f4, 1, 1, 0, false},     // delta*delta rounds to zero
		{i8f4, 24, 1, 2, false},    // 1.5 * delta = 1.5 deltas, ties to 2
		{i8f4, 40, 1, 2, false},    // 2.5 deltas, ties to 2
		{i8f4, -24, 40, -60, false},
		{i8f4, 64, 64, 0, true}, // 4 * 4 = 16, out of range
		{i16f8, 384, 640, 960, false},
		{i8m2, 4, 4, 64, false}, // 16 * 16 = 256, raw 256/4
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			r := Mul(test.s, canon(test.s, raw(test.x)), canon(test.s, raw(test.y)))
			a.Equal(raw(test.wrapped), r.Wrapped)
			a.Equal(test.overflow, r.Overflow)
		})
	}
}

func TestDiv(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		s        Spec
		x, y     int64
		wrapped  int64
		overflow bool
	}{
		{i8f4, 16, 80, 3, false},   // 1/5 rounds to 3 deltas
		{i8f4, 16, 32, 8, false},   // 1/2 = 0.5
		{i8f4, -16, 80, -3, false}, // -1/5
		{i8f4, 120, 16, 120, false},
		{i8f4, 120, 8, 0, true}, // 7.5/0.5 = 15, out of range
		{i16f12, 4096, 20480, 819, false},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			r, ok := Div(test.s, canon(test.s, raw(test.x)), canon(test.s, raw(test.y)))
			a.True(ok)
			a.Equal(raw(test.wrapped), r.Wrapped)
			a.Equal(test.overflow, r.Overflow)
		})
	}
	_, ok := Div(i8f4, raw(16), raw(0))
	a.False(ok)
	_, ok = DivInt(i8f4, raw(16), 0)
	a.False(ok)
	_, ok = Rem(i8f4, raw(16), raw(0))
	a.False(ok)
}

func TestIntOps(t *testing.T) {
	a := assert.New(t)
	r := MulInt(i8f4, raw(3), 17)
	a.Equal(raw(51), r.Wrapped)
	a.False(r.Overflow)

	r = MulInt(i8f4, raw(16), -2)
	a.Equal(raw(-32), r.Wrapped)

	r, ok := DivInt(i8f4, raw(16), 5)
	a.True(ok)
	a.Equal(raw(3), r.Wrapped) // 16/5 = 3.2 deltas

	r, ok = DivInt(i16f12, raw(4096), 5)
	a.True(ok)
	a.Equal(raw(819), r.Wrapped) // 4096/5 = 819.2 deltas

	r, ok = DivInt(i8f4, raw(40), 4) // 2.5 deltas... 40/4 = 10 exactly
	a.True(ok)
	a.Equal(raw(10), r.Wrapped)

	r, ok = DivInt(i8f4, raw(-16), 5)
	a.True(ok)
	a.Equal(raw(-3), r.Wrapped)
}

func TestRem(t *testing.T) {
	a := assert.New(t)
	r, ok := Rem(i8f4, raw(120), raw(32)) // 7.5 % 2 = 1.5
	a.True(ok)
	a.Equal(raw(24), r.Wrapped)

	r, ok = Rem(i8f4, raw(-120), raw(32)) // sign follows the dividend
	a.True(ok)
	a.Equal(raw(-24), r.Wrapped)

	r, ok = Rem(i8f4, raw(120), raw(-32))
	a.True(ok)
	a.Equal(raw(24), r.Wrapped)
}

func TestMulAddSingleRounding(t *testing.T) {
	a := assert.New(t)
	// 0.0625*0.5 + 0.0625: the product alone would round its half-delta
	// away, the fused form rounds only once at the end.
	sep := Add(i8f4, Mul(i8f4, raw(1), raw(8)).Wrapped, raw(1))
	a.Equal(raw(1), sep.Wrapped)
	fused := MulAdd(i8f4, raw(1), raw(8), raw(1))
	a.Equal(raw(2), fused.Wrapped)

	r := MulAdd(i8f4, raw(24), raw(40), raw(-32)) // 1.5*2.5 - 2 = 1.75
	a.Equal(raw(28), r.Wrapped)
	a.False(r.Overflow)

	r = MulAdd(i8f4, raw(64), raw(64), raw(16))
	a.True(r.Overflow)
}

func TestMulAddLostShift(t *testing.T) {
	a := assert.New(t)
	s := Spec{Bits: 128, Frac: -4, Signed: true}
	max := MaxRaw(s)

	// the shifted product exceeds the 256-bit intermediate; with a zero
	// addend the wrapped sum must still match the wrapped product
	r := MulAdd(s, max, max, raw(0))
	a.True(r.Overflow)
	a.Equal(Mul(s, max, max).Wrapped, r.Wrapped)
	a.Equal(raw(16), r.Wrapped)
	a.Equal(max, r.Sat)

	// the low bits of the shifted product vanish entirely here; a tiny
	// opposite-sign addend must not steer saturation away from the product
	p := int128.Int{Hi: 1 << 62} // 2^126, squared and shifted left by 4: 2^256
	r = MulAdd(s, p, p, raw(-1))
	a.True(r.Overflow)
	a.Equal(raw(-1), r.Wrapped)
	a.Equal(max, r.Sat)
}

func TestShifts(t *testing.T) {
	a := assert.New(t)
	r := Shl(i8f4, raw(16), 2)
	a.Equal(raw(64), r.Wrapped)
	a.False(r.Overflow)

	r = Shl(i8f4, raw(64), 1)
	a.True(r.Overflow)
	a.Equal(raw(127), r.Sat)

	r = Shl(i8f4, raw(-64), 1)
	a.Equal(raw(-128), r.Wrapped)
	a.False(r.Overflow)

	r = Shr(i8f4, raw(-64), 2)
	a.Equal(raw(-16), r.Wrapped)
	a.False(r.Overflow)

	r = Shr(u8f4, canon(u8f4, raw(128)), 1)
	a.Equal(raw(64), r.Wrapped)
}

func TestRoundInt(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		s        Spec
		x        int64
		op       RoundOp
		wrapped  int64
		overflow bool
	}{
		{i8f4, -40, Floor, -48, false}, // -2.5
		{i8f4, -40, Ceil, -32, false},
		{i8f4, -40, Trunc, -32, false},
		{i8f4, -40, RoundHalfAway, -48, false},
		{i8f4, -40, RoundHalfEven, -32, false},
		{i8f4, 40, Floor, 32, false}, // 2.5
		{i8f4, 40, Ceil, 48, false},
		{i8f4, 40, Trunc, 32, false},
		{i8f4, 40, RoundHalfAway, 48, false},
		{i8f4, 40, RoundHalfEven, 32, false},
		{i8f4, 56, RoundHalfEven, 64, false}, // 3.5 ties to 4
		{i8f4, 124, Ceil, -128, true},        // 7.75 up to 8
		{i8f4, 124, Floor, 112, false},
		{i8f4, 48, Ceil, 48, false}, // already integral
		{i8m2, 3, Floor, 3, false},  // no fractional bits to clear
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			r := RoundInt(test.s, canon(test.s, raw(test.x)), test.op)
			a.Equal(raw(test.wrapped), r.Wrapped)
			a.Equal(test.overflow, r.Overflow)
		})
	}
}

func TestFracPart(t *testing.T) {
	a := assert.New(t)
	a.Equal(raw(8), FracPart(i8f4, raw(40)))  // 2.5 -> 0.5
	a.Equal(raw(8), FracPart(i8f4, raw(-40))) // -2.5 -> 0.5 (floor leaves +0.5)
	a.Equal(raw(0), FracPart(i8f4, raw(48)))
}

func TestRescale(t *testing.T) {
	a := assert.New(t)
	// widening is always exact
	r, exact := Rescale(i16f12, false, raw(16), 4, RoundEven)
	a.True(exact)
	a.Equal(raw(4096), r.Wrapped)

	// narrowing rounds ties to even
	r, exact = Rescale(i8f4, false, raw(13923), 12, RoundEven)
	a.False(exact)
	a.Equal(raw(54), r.Wrapped) // 3.399 -> 3.375

	// truncation never rounds
	r, exact = Rescale(i8f4, false, raw(13923), 12, RoundTrunc)
	a.False(exact)
	a.Equal(raw(54), r.Wrapped)
	r, exact = Rescale(i8f4, false, raw(13952), 12, RoundTrunc)
	a.False(exact)
	a.Equal(raw(54), r.Wrapped) // 3.40625 truncates down
	r, exact = Rescale(i8f4, false, raw(13952), 12, RoundEven)
	a.False(exact)
	a.Equal(raw(55), r.Wrapped) // and rounds up

	// negative frac scales by integer steps
	r, exact = Rescale(i8m2, false, raw(12), 0, RoundEven)
	a.True(exact)
	a.Equal(raw(3), r.Wrapped)
	r, exact = Rescale(i8m2, false, raw(13), 0, RoundEven)
	a.False(exact)
	a.Equal(raw(3), r.Wrapped)

	// frac beyond the storage width
	r, exact = Rescale(i8f12, false, raw(1), 0, RoundEven)
	a.True(exact)
	a.True(r.Overflow)
	r, _ = Rescale(i8f12, false, raw(100), 12, RoundEven)
	a.False(r.Overflow)
	a.Equal(raw(100), r.Wrapped)
}

func TestFloat(t *testing.T) {
	a := assert.New(t)
	r, ok := FromFloat(i16f8, 1.5)
	a.True(ok)
	a.Equal(raw(384), r.Wrapped)
	a.False(r.Overflow)

	r, ok = FromFloat(i16f8, -1.5)
	a.True(ok)
	a.Equal(raw(-384), r.Wrapped)

	// half a delta ties to even
	r, ok = FromFloat(i16f8, 1.0/512)
	a.True(ok)
	a.Equal(raw(0), r.Wrapped)
	r, ok = FromFloat(i16f8, 3.0/1024)
	a.True(ok)
	a.Equal(raw(1), r.Wrapped)

	r, ok = FromFloat(i16f8, 1e10)
	a.True(ok)
	a.True(r.Overflow)

	_, ok = FromFloat(i16f8, math.NaN())
	a.False(ok)
	_, ok = FromFloat(i16f8, math.Inf(1))
	a.False(ok)

	a.Equal(1.5, Float64(i16f8, raw(384)))
	a.Equal(-1.5, Float64(i16f8, raw(-384)))
	a.Equal(12.0, Float64(i8m2, raw(3)))
}

func TestCmpSplit(t *testing.T) {
	a := assert.New(t)
	a.Equal(-1, Cmp(i8f4, raw(-16), raw(16)))
	a.Equal(1, Cmp(u8f4, canon(u8f4, raw(-16)), raw(16))) // 0xF0 as unsigned

	neg, mag := Split(i8f4, raw(-40))
	a.True(neg)
	a.Equal(raw(40), mag)
	neg, mag = Split(u8f4, canon(u8f4, raw(240)))
	a.False(neg)
	a.Equal(raw(240), mag)
}
