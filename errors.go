// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fixed

import (
	"errors"
	"fmt"
)

var (
	// ErrOverflow is reported when a value's magnitude does not fit the
	// destination layout's range.
	ErrOverflow = errors.New("value out of range")
	// ErrDivisionByZero is reported, or thrown by the panicking operation
	// families, on division or remainder with a zero divisor.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrPrecision is reported by lossless conversions that would have to
	// discard fractional bits.
	ErrPrecision = errors.New("precision loss")
	// ErrNotFinite is reported when converting an infinity or a NaN.
	ErrNotFinite = errors.New("not a finite number")

	// ErrEmpty is reported when no digits are present where required.
	ErrEmpty = errors.New("empty input")
	// ErrInvalidDigit is reported for a character outside the radix's digit set.
	ErrInvalidDigit = errors.New("invalid digit")
	// ErrInvalidExponent is reported for a malformed or out-of-range exponent.
	ErrInvalidExponent = errors.New("invalid exponent")
)

// ParseError describes a failure to parse a fixed-point literal.
// Pos is the 1-based position of the offending character, or 0 when the
// failure has no single position.
type ParseError struct {
	Input string
	Pos   int
	Err   error
}

func newParseError(input string, pos int, err error) *ParseError {
	return &ParseError{Input: input, Pos: pos, Err: err}
}

func (pe *ParseError) Error() string {
	if pe.Pos > 0 {
		return fmt.Sprintf("parsing %q failed: %v at pos %d", pe.Input, pe.Err, pe.Pos)
	}
	return fmt.Sprintf("parsing %q failed: %v", pe.Input, pe.Err)
}

func (pe *ParseError) Unwrap() error { return pe.Err }
