// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fixed

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvertLossless(t *testing.T) {
	a := assert.New(t)
	src := I4F4FromBits(40) // 2.5

	var wide I16F16
	a.NoError(ConvertLossless(&wide, src))
	a.Equal(int32(40<<12), wide.Bits())
	a.Equal(2.5, wide.Float64())

	// narrowing an inexact value must fail, even if it would round cleanly
	var narrow I8F0
	a.ErrorIs(ConvertLossless(&narrow, src), ErrPrecision)

	// exact narrowing is fine
	a.NoError(ConvertLossless(&narrow, I4F4FromBits(48)))
	a.Equal(int8(3), narrow.Bits())

	// in-range value, fractional bits preserved, but integer bits too few
	var tiny I0F8
	a.ErrorIs(ConvertLossless(&tiny, src), ErrOverflow)
}

func TestConvertLossy(t *testing.T) {
	a := assert.New(t)

	// 3.399.. at twelve fractional bits truncates at four, no rounding
	src := I4F12FromBits(13923)
	var dst I4F4
	ConvertLossy(&dst, src)
	a.Equal(int8(54), dst.Bits())
	ConvertLossy(&dst, I4F12FromBits(13952)) // 3.40625 would round up
	a.Equal(int8(54), dst.Bits())

	// while Convert rounds
	a.NoError(Convert(&dst, I4F12FromBits(13952)))
	a.Equal(int8(55), dst.Bits())

	// truncation is toward zero for negatives
	ConvertLossy(&dst, I4F12FromBits(-13952))
	a.Equal(int8(-54), dst.Bits())

	// out of the lossy contract's range the truncated value wraps
	ConvertLossy(&dst, I8F8FromBits(100<<8))
	a.Equal(int8(0x40), dst.Bits())
}

func TestConvertChecked(t *testing.T) {
	a := assert.New(t)

	var dst I4F4
	a.NoError(Convert(&dst, I16F16FromBits(3<<15))) // 1.5
	a.Equal(int8(24), dst.Bits())

	a.ErrorIs(Convert(&dst, I16F16FromBits(100<<16)), ErrOverflow)
	// rounding itself can push the value out of range: 7.96875 rounds to 8
	dst = I4F4FromBits(1)
	a.ErrorIs(Convert(&dst, I16F16FromBits(522240)), ErrOverflow)
	a.Equal(int8(1), dst.Bits(), "dst is untouched on error")
	a.NoError(Convert(&dst, I16F16FromBits(522239)))
	a.Equal(int8(127), dst.Bits())

	// signedness changes are by value, not by pattern
	var u U4F4
	a.NoError(Convert(&u, I4F4FromBits(40)))
	a.Equal(uint8(40), u.Bits())
	a.ErrorIs(Convert(&u, I4F4FromBits(-40)), ErrOverflow)
}

func TestConvertPolicies(t *testing.T) {
	a := assert.New(t)
	huge := I16F16FromBits(100 << 16)
	var dst I4F4

	ConvertSaturating(&dst, huge)
	a.Equal(dst.Max(), dst)
	ConvertSaturating(&dst, I16F16FromBits(-100<<16))
	a.Equal(dst.Min(), dst)

	ConvertWrapping(&dst, huge) // 100 -> 0x640 deltas, keeps the low byte
	a.Equal(int8(0x40), dst.Bits())

	over := ConvertOverflowing(&dst, huge)
	a.True(over)
	over = ConvertOverflowing(&dst, I16F16FromBits(3<<15))
	a.False(over)
	a.Equal(int8(24), dst.Bits())

	a.Panics(func() { ConvertUnwrapped(&dst, huge) })
	a.NotPanics(func() { ConvertUnwrapped(&dst, I16F16FromBits(3<<15)) })
}

func TestConvertAcrossWidths(t *testing.T) {
	a := assert.New(t)

	// 64-bit down to 128-bit and back
	x := I32F32FromBits(3 << 31) // 1.5
	var w I64F64
	a.NoError(ConvertLossless(&w, x))
	hi, lo := w.Bits()
	a.Equal(uint64(1), hi)
	a.Equal(uint64(1)<<63, lo)

	var back I32F32
	a.NoError(ConvertLossless(&back, w))
	a.Equal(x, back)

	// negative values keep their sign across widths
	var nw I64F64
	a.NoError(Convert(&nw, I32F32FromBits(-(3 << 31))))
	a.Equal(-1.5, nw.Float64())
}

func TestFromInt(t *testing.T) {
	a := assert.New(t)
	var dst I4F4
	a.NoError(FromInt(&dst, 3))
	a.Equal(int8(48), dst.Bits())
	a.NoError(FromInt(&dst, -8))
	a.Equal(int8(-128), dst.Bits())
	a.ErrorIs(FromInt(&dst, 8), ErrOverflow)
	a.ErrorIs(FromInt(&dst, 100), ErrOverflow)

	var u U4F4
	a.ErrorIs(FromInt(&u, -1), ErrOverflow)

	// a negative fractional count cannot hold integers between its steps
	var coarse Fix[int8, FM4]
	a.NoError(FromInt(&coarse, 32))
	a.Equal(int8(2), coarse.Bits())
	a.ErrorIs(FromInt(&coarse, 33), ErrPrecision)
}

func TestFromFloat64(t *testing.T) {
	a := assert.New(t)
	var dst I8F8
	a.NoError(FromFloat64(&dst, 1.5))
	a.Equal(int16(384), dst.Bits())
	a.NoError(FromFloat64(&dst, -1.5))
	a.Equal(int16(-384), dst.Bits())

	a.ErrorIs(FromFloat64(&dst, math.NaN()), ErrNotFinite)
	a.ErrorIs(FromFloat64(&dst, math.Inf(-1)), ErrNotFinite)
	a.ErrorIs(FromFloat64(&dst, 1e9), ErrOverflow)

	// half a delta ties to even
	a.NoError(FromFloat64(&dst, 1.0/512))
	a.Equal(int16(0), dst.Bits())
	a.NoError(FromFloat64(&dst, 3.0/1024))
	a.Equal(int16(1), dst.Bits())
}

func TestQRoundTrip(t *testing.T) {
	a := assert.New(t)
	x := I4F4FromBits(-40)
	q := x.Q()
	a.Equal(-1, q.Sign())
	a.Equal(-2.5, q.Float64())
	a.Equal("-2.5", q.String())

	var back I4F4
	a.NoError(FromQ(&back, q))
	a.Equal(x, back)

	a.Equal(0, QFromInt(5).Cmp(QFromInt(5)))
	a.Equal(-1, QFromInt(-5).Cmp(QFromInt(5)))
	a.Equal(1, QFromInt(7).Cmp(QFromInt(5)))

	// Q compares across scales exactly
	half := I4F4FromBits(8).Q()
	alsoHalf := I16F16FromBits(1 << 15).Q()
	a.Equal(0, half.Cmp(alsoHalf))
	a.Equal(-1, half.Cmp(I16F16FromBits(1<<15 + 1).Q()))

	qf, err := QFromFloat(0.25)
	a.NoError(err)
	a.Equal(0.25, qf.Float64())
	_, err = QFromFloat(math.NaN())
	a.ErrorIs(err, ErrNotFinite)

	a.Equal("0.25", qf.String())
	a.Equal("-5", QFromInt(-5).String())
	a.Equal(1, qf.Rat().Cmp(QFromInt(0).Rat()))
}
