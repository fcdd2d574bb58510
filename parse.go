// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fixed

import (
	"math/big"

	"github.com/Certora/fixed/internal/fixmath"
	"github.com/Certora/fixed/internal/int128"
)

// maxExp bounds the magnitude of a literal's exponent. Anything larger
// cannot produce a representable nonzero value in any layout and would
// only make the exact arithmetic below arbitrarily expensive.
const maxExp = 1 << 16

// literal is the scanned form of a fixed-point literal, before any
// arithmetic. Digits hold digit values, not characters.
type literal struct {
	neg     bool
	radix   int
	digits  []byte // integer then fractional digits, in order
	fracLen int    // count of trailing fractional digits
	exp10   int64  // power of ten, from e/E
	expRad  int64  // power of the radix, from @
}

// scanLiteral validates the grammar and splits s into its parts.
//
//	[sign] ['0' ('b'|'o'|'x')] digits ['.' digits] [exp]
//
// where exp is ('e'|'E'|'@') [sign] digits. The markers e and E denote a
// power of ten and are not accepted in hexadecimal, where e is a digit;
// @ denotes a power of the radix and is accepted everywhere. Underscores
// may separate digits of the integer and fractional parts.
func scanLiteral(s string) (lit literal, pos int, err error) {
	lit.radix = 10
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		lit.neg = s[i] == '-'
		i++
	}
	if i+1 < len(s) && s[i] == '0' {
		switch s[i+1] {
		case 'b', 'B':
			lit.radix, i = 2, i+2
		case 'o', 'O':
			lit.radix, i = 8, i+2
		case 'x', 'X':
			lit.radix, i = 16, i+2
		}
	}
	seen := false
	inFrac := false
	for ; i < len(s); i++ {
		c := s[i]
		if c == '_' {
			continue
		}
		if c == '.' {
			if inFrac {
				return lit, i + 1, ErrInvalidDigit
			}
			inFrac = true
			continue
		}
		d, ok := digitVal(c, lit.radix)
		if !ok {
			break
		}
		lit.digits = append(lit.digits, d)
		if inFrac {
			lit.fracLen++
		}
		seen = true
	}
	if !seen {
		if i < len(s) {
			return lit, i + 1, ErrInvalidDigit
		}
		return lit, 0, ErrEmpty
	}
	if i == len(s) {
		return lit, 0, nil
	}
	var decimal bool
	switch s[i] {
	case 'e', 'E':
		decimal = true
	case '@':
	default:
		return lit, i + 1, ErrInvalidDigit
	}
	e, epos, err := scanExponent(s, i+1)
	if err != nil {
		return lit, epos, err
	}
	if decimal {
		lit.exp10 = e
	} else {
		lit.expRad = e
	}
	return lit, 0, nil
}

func scanExponent(s string, i int) (int64, int, error) {
	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}
	if i == len(s) {
		return 0, len(s), ErrInvalidExponent
	}
	var e int64
	for ; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, i + 1, ErrInvalidExponent
		}
		e = e*10 + int64(c-'0')
		if e > maxExp {
			return 0, i + 1, ErrInvalidExponent
		}
	}
	if neg {
		e = -e
	}
	return e, 0, nil
}

func digitVal(c byte, radix int) (byte, bool) {
	var d byte
	switch {
	case c >= '0' && c <= '9':
		d = c - '0'
	case c >= 'a' && c <= 'f':
		d = c - 'a' + 10
	case c >= 'A' && c <= 'F':
		d = c - 'A' + 10
	default:
		return 0, false
	}
	if int(d) >= radix {
		return 0, false
	}
	return d, true
}

// Parse parses s as a fixed-point literal and stores the result into dst,
// rounding to nearest with ties to even. Errors are reported as a
// *ParseError wrapping ErrEmpty, ErrInvalidDigit, ErrInvalidExponent or
// ErrOverflow; dst is left unchanged on error.
func Parse(dst Setter, s string) error {
	lit, pos, err := scanLiteral(s)
	if err != nil {
		return newParseError(s, pos, err)
	}
	spec := dst.spec()
	raw, ok := litRaw(lit, spec)
	if !ok {
		return newParseError(s, 0, ErrOverflow)
	}
	dst.setRaw(raw)
	return nil
}

// litRaw evaluates the exact rational value of lit and rounds it to the
// layout's scale, ties to even. ok is false when the rounded value is out
// of the layout's range.
func litRaw(lit literal, spec fixmath.Spec) (int128.Int, bool) {
	r := big.NewInt(int64(lit.radix))
	num := new(big.Int)
	for _, d := range lit.digits {
		num.Mul(num, r)
		num.Add(num, big.NewInt(int64(d)))
	}
	den := big.NewInt(1)
	mulPow(den, r, int64(lit.fracLen))
	applyExp(num, den, big.NewInt(10), lit.exp10)
	applyExp(num, den, r, lit.expRad)
	if spec.Frac > 0 {
		num.Lsh(num, uint(spec.Frac))
	} else if spec.Frac < 0 {
		den.Lsh(den, uint(-spec.Frac))
	}
	mag := roundQuoEven(num, den)
	limit := fixmath.MaxRaw(spec).BigMag()
	if lit.neg && spec.Signed {
		limit.Add(limit, big.NewInt(1))
	} else if lit.neg {
		limit.SetInt64(0)
	}
	if mag.Cmp(limit) > 0 {
		return int128.Int{}, false
	}
	m, _ := int128.FromBigMag(mag)
	if lit.neg {
		m = m.Neg()
	}
	return m, true
}

func mulPow(dst, base *big.Int, e int64) {
	if e > 0 {
		dst.Mul(dst, new(big.Int).Exp(base, big.NewInt(e), nil))
	}
}

// applyExp folds base^e into the fraction num/den.
func applyExp(num, den, base *big.Int, e int64) {
	if e > 0 {
		mulPow(num, base, e)
	} else if e < 0 {
		mulPow(den, base, -e)
	}
}

// roundQuoEven returns num/den rounded to nearest, ties to even.
// Both arguments must be non-negative and den must be nonzero.
func roundQuoEven(num, den *big.Int) *big.Int {
	q, rem := new(big.Int).QuoRem(num, den, new(big.Int))
	rem.Lsh(rem, 1)
	switch rem.Cmp(den) {
	case 1:
		q.Add(q, big.NewInt(1))
	case 0:
		if q.Bit(0) == 1 {
			q.Add(q, big.NewInt(1))
		}
	}
	return q
}
