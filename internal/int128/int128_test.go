// Copyright 2020 Aleksandr Demakin. All rights reserved.

package int128

import (
	"fmt"
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromInt64(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		v   int64
		res Int
	}{
		{0, Int{}},
		{1, Int{Lo: 1}},
		{-1, Int{Hi: ^uint64(0), Lo: ^uint64(0)}},
		{math.MaxInt64, Int{Lo: math.MaxInt64}},
		{math.MinInt64, Int{Hi: ^uint64(0), Lo: 1 << 63}},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.res, FromInt64(test.v))
			a.Equal(test.v < 0, FromInt64(test.v).SignBit())
		})
	}
}

func TestAddSub(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		x, y, sum Int
	}{
		{Int{}, Int{}, Int{}},
		{Int{Lo: ^uint64(0)}, Int{Lo: 1}, Int{Hi: 1}},
		{Int{Hi: 1}, Int{Hi: 2, Lo: 5}, Int{Hi: 3, Lo: 5}},
		{FromInt64(-1), Int{Lo: 1}, Int{}},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.sum, test.x.Add(test.y))
			a.Equal(test.sum, test.y.Add(test.x))
			a.Equal(test.x, test.sum.Sub(test.y))
			a.Equal(test.y, test.sum.Sub(test.x))
		})
	}
}

func TestNeg(t *testing.T) {
	a := assert.New(t)
	a.Equal(Int{}, Int{}.Neg())
	a.Equal(FromInt64(-5), FromInt64(5).Neg())
	a.Equal(FromInt64(5), FromInt64(-5).Neg())
	a.Equal(Int{Hi: ^uint64(0), Lo: 0}, Int{Hi: 1}.Neg())
}

func TestShifts(t *testing.T) {
	a := assert.New(t)
	one := Int{Lo: 1}
	a.Equal(Int{Hi: 1}, one.Shl(64))
	a.Equal(Int{Hi: 1 << 63}, one.Shl(127))
	a.Equal(Int{}, one.Shl(128))
	a.Equal(one, Int{Hi: 1}.Shr(64))
	a.Equal(Int{}, Int{Hi: 1 << 63}.Shr(128))
	a.Equal(FromInt64(-1), FromInt64(-2).Sar(1))
	a.Equal(FromInt64(-1), FromInt64(-1).Sar(200))
	a.Equal(Int{}, FromInt64(1).Sar(200))
	a.Equal(FromInt64(-4), FromInt64(-16).Sar(2))
}

func TestCmp(t *testing.T) {
	a := assert.New(t)
	a.Equal(0, Int{Hi: 1, Lo: 2}.Cmp(Int{Hi: 1, Lo: 2}))
	a.Equal(-1, Int{Hi: 1}.Cmp(Int{Hi: 2}))
	a.Equal(1, Int{Hi: 1, Lo: 1}.Cmp(Int{Hi: 1}))
	// unsigned compare sees -1 as the largest pattern
	a.Equal(1, FromInt64(-1).Cmp(Int{Lo: 1}))
	a.Equal(-1, FromInt64(-1).CmpS(Int{Lo: 1}))
	a.Equal(-1, FromInt64(-2).CmpS(FromInt64(-1)))
	a.Equal(1, FromInt64(100).CmpS(FromInt64(-100)))
}

func TestLeadingZeros(t *testing.T) {
	a := assert.New(t)
	a.Equal(uint(128), Int{}.LeadingZeros())
	a.Equal(uint(127), Int{Lo: 1}.LeadingZeros())
	a.Equal(uint(63), Int{Hi: 1}.LeadingZeros())
	a.Equal(uint(0), FromInt64(-1).LeadingZeros())
}

func TestMul(t *testing.T) {
	a := assert.New(t)
	maxU64 := ^uint64(0)
	tests := []struct {
		x, y Int
		res  U256
	}{
		{Int{Lo: 3}, Int{Lo: 5}, U256{Lo: Int{Lo: 15}}},
		{Int{Hi: 1}, Int{Hi: 1}, U256{Hi: Int{Lo: 1}}},
		{Int{Lo: maxU64}, Int{Lo: maxU64}, U256{Lo: Int{Hi: maxU64 - 1, Lo: 1}}},
		{Int{Hi: maxU64, Lo: maxU64}, Int{Lo: 2}, U256{Hi: Int{Lo: 1}, Lo: Int{Hi: maxU64, Lo: maxU64 - 1}}},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.res, test.x.Mul(test.y))
			a.Equal(test.res, test.y.Mul(test.x))
		})
	}
}

func TestQuoRem(t *testing.T) {
	a := assert.New(t)
	u := func(v uint64) U256 { return U256{Lo: Int{Lo: v}} }
	fives := uint64(0x5555555555555555)
	tests := []struct {
		n, d, q, r U256
	}{
		{u(100), u(7), u(14), u(2)},
		{u(0), u(3), u(0), u(0)},
		{u(5), u(10), u(0), u(5)},
		// (2^130-1)/3 = 0b0101...01 over 129 bits
		{U256{Hi: Int{Lo: 3}, Lo: Int{Hi: ^uint64(0), Lo: ^uint64(0)}},
			u(3),
			U256{Hi: Int{Lo: 1}, Lo: Int{Hi: fives, Lo: fives}},
			u(0)},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			q, r := test.n.QuoRem(test.d)
			a.Equal(test.q, q)
			a.Equal(test.r, r)
		})
	}
}

func TestRoundShrEven(t *testing.T) {
	a := assert.New(t)
	u := func(v uint64) U256 { return U256{Lo: Int{Lo: v}} }
	tests := []struct {
		n     U256
		sh    uint
		res   U256
		exact bool
	}{
		{u(4), 1, u(2), true},
		{u(5), 1, u(2), false},  // 2.5 ties to 2
		{u(7), 1, u(4), false},  // 3.5 ties to 4
		{u(6), 2, u(2), false},  // 1.5 ties to 2
		{u(9), 2, u(2), false},  // 2.25 down
		{u(11), 2, u(3), false}, // 2.75 up
		{u(1), 300, u(0), false},
		{U256{Hi: Int{Lo: 1}}, 128, u(1), true},
		{U256{Hi: Int{Lo: 1}}, 129, u(0), false}, // 0.5 ties to 0
		{U256{Hi: Int{Lo: 3}}, 129, u(2), false}, // 1.5 ties to 2
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			res, exact := test.n.RoundShrEven(test.sh)
			a.Equal(test.res, res)
			a.Equal(test.exact, exact)
		})
	}
}

func TestShlCheck(t *testing.T) {
	a := assert.New(t)
	out, lost := U256{Lo: Int{Lo: 1}}.ShlCheck(255)
	a.False(lost)
	a.Equal(U256{Hi: Int{Hi: 1 << 63}}, out)
	_, lost = U256{Lo: Int{Lo: 2}}.ShlCheck(255)
	a.True(lost)
	_, lost = U256{Lo: Int{Lo: 1}}.ShlCheck(256)
	a.True(lost)
	out, lost = U256{Lo: Int{Lo: 1}}.ShlCheck(0)
	a.False(lost)
	a.Equal(U256{Lo: Int{Lo: 1}}, out)
}

func TestBigMag(t *testing.T) {
	a := assert.New(t)
	tests := []Int{
		{},
		{Lo: 1},
		{Lo: ^uint64(0)},
		{Hi: 1},
		{Hi: 0x0123456789abcdef, Lo: 0xfedcba9876543210},
		{Hi: ^uint64(0), Lo: ^uint64(0)},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			back, ok := FromBigMag(test.BigMag())
			a.True(ok)
			a.Equal(test, back)
		})
	}
	_, ok := FromBigMag(big.NewInt(-1))
	a.False(ok)
	tooBig := new(big.Int).Lsh(big.NewInt(1), 128)
	_, ok = FromBigMag(tooBig)
	a.False(ok)
}

func TestMagFloat64(t *testing.T) {
	a := assert.New(t)
	a.Equal(0.0, Int{}.MagFloat64())
	a.Equal(1.0, Int{Lo: 1}.MagFloat64())
	a.Equal(math.Ldexp(1, 64), Int{Hi: 1}.MagFloat64())
	a.InEpsilon(math.Ldexp(1, 128), Int{Hi: ^uint64(0), Lo: ^uint64(0)}.MagFloat64(), 1e-15)
}
