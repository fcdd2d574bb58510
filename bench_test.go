// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fixed

import (
	"testing"

	of "github.com/robaho/fixed"
	"github.com/shopspring/decimal"
)

func BenchmarkMul(b *testing.B) {
	x := I16F16FromBits(809500) // 12.35..
	y := I16F16FromBits(80950)
	for i := 0; i < b.N; i++ {
		x.WrappingMul(y)
	}
}

func BenchmarkMul128(b *testing.B) {
	x := I64F64FromBits(12, 1<<63)
	y := I64F64FromBits(1, 1<<62)
	for i := 0; i < b.N; i++ {
		x.WrappingMul(y)
	}
}

func BenchmarkMulOtherFixed(b *testing.B) {
	f0 := of.NewF(12.35)
	f1 := of.NewF(1.235)
	for i := 0; i < b.N; i++ {
		f0.Mul(f1)
	}
}

func BenchmarkMulDecimal(b *testing.B) {
	f0 := decimal.NewFromFloat(12.35)
	f1 := decimal.NewFromFloat(1.235)
	for i := 0; i < b.N; i++ {
		f0.Mul(f1)
	}
}

func BenchmarkDiv(b *testing.B) {
	x := I16F16FromBits(809500)
	y := I16F16FromBits(80950)
	for i := 0; i < b.N; i++ {
		x.WrappingDiv(y)
	}
}

func BenchmarkDivOtherFixed(b *testing.B) {
	f0 := of.NewF(12.35)
	f1 := of.NewF(1.235)
	for i := 0; i < b.N; i++ {
		f0.Div(f1)
	}
}

func BenchmarkDivDecimal(b *testing.B) {
	f0 := decimal.NewFromFloat(12.35)
	f1 := decimal.NewFromFloat(1.235)
	for i := 0; i < b.N; i++ {
		f0.Div(f1)
	}
}

func BenchmarkAdd(b *testing.B) {
	x := I16F16FromBits(809500)
	y := I16F16FromBits(80950)
	for i := 0; i < b.N; i++ {
		x.WrappingAdd(y)
	}
}

func BenchmarkParse(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := ParseI16F16("123.456"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParseDecimal(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := decimal.NewFromString("123.456"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkString(b *testing.B) {
	x := I16F16FromBits(809500)
	for i := 0; i < b.N; i++ {
		_ = x.String()
	}
}

func BenchmarkStringOtherFixed(b *testing.B) {
	f0 := of.NewF(12.35)
	for i := 0; i < b.N; i++ {
		_ = f0.String()
	}
}
