// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fixed

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/Certora/fixed/internal/int128"
)

var (
	bigOne = big.NewInt(1)
	bigTen = big.NewInt(10)
)

// valueString renders v in decimal with all significant fractional
// digits. A binary fraction is always finite in decimal, so the result
// is exact and parses back to the same value.
func valueString(v Value) string {
	q := v.Q()
	return string(appendDecimal(nil, q.neg, q.mag, q.frac, -1, false))
}

// formatValue implements fmt.Formatter for all layouts.
//
//	v, s, f  decimal, exact unless a precision is given
//	e, E     exponential form with an integer mantissa, e.g. 31875e-4
//	b, o, x, X  binary, octal, hexadecimal digits, exact
//
// The '+' flag forces a sign, '#' adds the radix prefix to b/o/x/X, and
// a precision on f/v/s rounds the decimal digits to nearest, ties to even.
func formatValue(st fmt.State, verb rune, v Value) {
	q := v.Q()
	plus := st.Flag('+')
	var out []byte
	switch verb {
	case 'v', 's', 'f', 'F':
		prec, ok := st.Precision()
		if !ok {
			prec = -1
		}
		out = appendDecimal(nil, q.neg, q.mag, q.frac, prec, plus)
	case 'e', 'E':
		out = appendSci(nil, q.neg, q.mag, q.frac, verb == 'E', plus)
	case 'b', 'o', 'x', 'X':
		out = appendRadix(nil, q.neg, q.mag, q.frac, verb, st.Flag('#'), plus)
	default:
		fmt.Fprintf(st, "%%!%c(fixed=%s)", verb, valueString(v))
		return
	}
	writePadded(st, out)
}

func writePadded(st fmt.State, out []byte) {
	width, ok := st.Width()
	if !ok || width <= len(out) {
		st.Write(out)
		return
	}
	pad := make([]byte, width-len(out))
	for i := range pad {
		pad[i] = ' '
	}
	if st.Flag('-') {
		st.Write(out)
		st.Write(pad)
		return
	}
	st.Write(pad)
	st.Write(out)
}

func appendSign(buf []byte, neg, plus bool) []byte {
	if neg {
		return append(buf, '-')
	}
	if plus {
		return append(buf, '+')
	}
	return buf
}

// intFrac splits mag*2^-frac into its integer part and the fractional
// remainder scaled by 2^frac. For frac <= 0 the value is an integer and
// fp is nil.
func intFrac(mag int128.Int, frac int32) (ip, fp *big.Int) {
	b := mag.BigMag()
	if frac <= 0 {
		return b.Lsh(b, uint(-frac)), nil
	}
	ip = new(big.Int).Rsh(b, uint(frac))
	fp = b.Sub(b, new(big.Int).Lsh(ip, uint(frac)))
	return ip, fp
}

// appendDecimal renders mag*2^-frac in decimal. prec < 0 emits the exact
// fractional digits with trailing zeros removed; otherwise exactly prec
// digits are produced, rounding to nearest with ties to even.
func appendDecimal(buf []byte, neg bool, mag int128.Int, frac int32, prec int, plus bool) []byte {
	buf = appendSign(buf, neg && !mag.IsZero(), plus)
	ip, fp := intFrac(mag, frac)
	if fp == nil || prec == 0 {
		if fp != nil {
			// round the whole value to an integer
			ip = roundQuoEven(mag.BigMag(), new(big.Int).Lsh(bigOne, uint(frac)))
		}
		buf = append(buf, ip.String()...)
		if prec > 0 {
			buf = append(buf, '.')
			for i := 0; i < prec; i++ {
				buf = append(buf, '0')
			}
		}
		return buf
	}
	var digits string
	if prec < 0 {
		// fp/2^frac has exactly frac decimal digits: fp*5^frac, zero padded
		d := new(big.Int).Exp(big.NewInt(5), big.NewInt(int64(frac)), nil)
		digits = padLeft(d.Mul(d, fp).String(), int(frac))
		digits = strings.TrimRight(digits, "0")
	} else {
		pow := new(big.Int).Exp(bigTen, big.NewInt(int64(prec)), nil)
		scaled := roundQuoEven(new(big.Int).Mul(fp, pow), new(big.Int).Lsh(bigOne, uint(frac)))
		if scaled.Cmp(pow) == 0 { // rounded up into the integer part
			ip.Add(ip, bigOne)
			scaled.SetInt64(0)
		}
		digits = padLeft(scaled.String(), prec)
	}
	buf = append(buf, ip.String()...)
	if len(digits) > 0 {
		buf = append(buf, '.')
		buf = append(buf, digits...)
	}
	return buf
}

// appendSci renders mag*2^-frac as an integer mantissa and a power of
// ten, e.g. 31875e-4. The mantissa carries no trailing zeros.
func appendSci(buf []byte, neg bool, mag int128.Int, frac int32, upper, plus bool) []byte {
	buf = appendSign(buf, neg && !mag.IsZero(), plus)
	m := mag.BigMag()
	exp := int64(0)
	if frac > 0 {
		// v = mag/2^frac = mag*5^frac * 10^-frac
		m.Mul(m, new(big.Int).Exp(big.NewInt(5), big.NewInt(int64(frac)), nil))
		exp = -int64(frac)
	} else {
		m.Lsh(m, uint(-frac))
	}
	if m.Sign() != 0 {
		var q, r big.Int
		for {
			q.QuoRem(m, bigTen, &r)
			if r.Sign() != 0 {
				break
			}
			m.Set(&q)
			exp++
		}
	} else {
		exp = 0
	}
	buf = append(buf, m.String()...)
	if upper {
		buf = append(buf, 'E')
	} else {
		buf = append(buf, 'e')
	}
	return append(buf, fmt.Sprintf("%d", exp)...)
}

// appendRadix renders mag*2^-frac with base-2, 8 or 16 digits, selected
// by the verb. The rendering is exact; fractional digits carry no
// trailing zeros.
func appendRadix(buf []byte, neg bool, mag int128.Int, frac int32, verb rune, prefix, plus bool) []byte {
	var base int
	var bits uint
	switch verb {
	case 'b':
		base, bits = 2, 1
	case 'o':
		base, bits = 8, 3
	default:
		base, bits = 16, 4
	}
	buf = appendSign(buf, neg && !mag.IsZero(), plus)
	if prefix {
		switch base {
		case 2:
			buf = append(buf, "0b"...)
		case 8:
			buf = append(buf, "0o"...)
		default:
			buf = append(buf, "0x"...)
		}
	}
	ip, fp := intFrac(mag, frac)
	s := ip.Text(base)
	if fp != nil && fp.Sign() != 0 {
		n := (uint(frac) + bits - 1) / bits
		fp.Lsh(fp, n*bits-uint(frac))
		s += "." + strings.TrimRight(padLeft(fp.Text(base), int(n)), "0")
	}
	if verb == 'X' {
		s = strings.ToUpper(s)
	}
	return append(buf, s...)
}

func padLeft(s string, n int) string {
	if len(s) >= n {
		return s
	}
	return strings.Repeat("0", n-len(s)) + s
}

// String formats the value in decimal, exactly.
func (x Fix[S, F]) String() string { return valueString(x) }

// Format implements fmt.Formatter. See formatValue for the verb set.
func (x Fix[S, F]) Format(st fmt.State, verb rune) { formatValue(st, verb, x) }

// String formats the value in decimal, exactly.
func (x Fix128[F, G]) String() string { return valueString(x) }

// Format implements fmt.Formatter. See formatValue for the verb set.
func (x Fix128[F, G]) Format(st fmt.State, verb rune) { formatValue(st, verb, x) }
