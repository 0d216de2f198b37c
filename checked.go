package intdiv

import (
	"errors"
	"fmt"
)

var (
	// ErrDivideByZero is returned by the Checked functions if the divisor is 0.
	ErrDivideByZero = errors.New("intdiv: division by zero")

	// ErrOverflow is returned by the Checked functions if the quotient cannot
	// be represented, which only happens when the minimum value of a signed
	// type is divided by -1.
	ErrOverflow = errors.New("intdiv: quotient overflows")

	// ErrUnknownMode is returned by ParseMode and the Checked functions for a
	// Mode that is not valid.
	ErrUnknownMode = errors.New("intdiv: unknown rounding mode")
)

// Check reports whether x/y is a valid division. It returns ErrDivideByZero
// or ErrOverflow wrapped with the operands, or nil.
func Check[T Integer](x, y T) error {
	if y == 0 {
		return fmt.Errorf("intdiv: %d / %d: %w", x, y, ErrDivideByZero)
	}

	// For signed types, ^T(0) is -1, and the minimum value is the only
	// negative value that is its own negation.
	if signed[T]() && y == ^T(0) && x < 0 && x == -x {
		return fmt.Errorf("intdiv: %d / %d: %w", x, y, ErrOverflow)
	}
	return nil
}

// CheckedQuoRem is like QuoRem, but returns an error instead of an unspecified
// result if the division is invalid, and instead of panicking if m is not a
// valid Mode.
func CheckedQuoRem[T Integer](m Mode, x, y T) (q, r T, err error) {
	if !m.Valid() {
		return 0, 0, fmt.Errorf("intdiv: rounding mode %d: %w", uint8(m), ErrUnknownMode)
	}
	if err := Check(x, y); err != nil {
		return 0, 0, err
	}
	q, r = QuoRem(m, x, y)
	return q, r, nil
}

// CheckedDivRem is like DivRem, but returns an error instead of an unspecified
// result if the division is invalid or m is not a valid Mode.
func CheckedDivRem[T Integer](m Mode, x, y T) (Result[T], error) {
	q, r, err := CheckedQuoRem(m, x, y)
	if err != nil {
		return Result[T]{}, err
	}
	return Result[T]{Quo: q, Rem: r}, nil
}
