package intdiv

import (
	"fmt"
)

// The QuoRem* methods on I128 and U128 implement the same rounding policies
// as the generic functions of the same name, with the same remainder
// guarantees. Each starts from one truncating QuoRem and moves the quotient
// at most one step away from zero.

// offsetI128 moves a truncated quotient quo by d, which is -1, 0 or 1, and
// returns the remainder that goes with it, rem - d*by. The remainder is
// calculated in U128, which wraps, so it is exact even where the I128
// subtraction would overflow.
func offsetI128(quo, rem, by, d I128) (q, r I128) {
	if d.IsZero() {
		return quo, rem
	}
	return quo.Add(d), rem.AsU128().Sub(d.AsU128().Mul(by.AsU128())).AsI128()
}

// stepI128 returns one step away from zero for a quotient whose sign is
// negative if neg is set, or 0 if inc is not set.
func stepI128(inc, neg bool) I128 {
	if !inc {
		return zeroI128
	} else if neg {
		return minusOneI128
	}
	return oneI128
}

// quoNegative reports whether the exact quotient i/by is negative. Zero
// counts as positive.
func (i I128) quoNegative(by I128) bool {
	return (i.hi^by.hi)&signBit != 0
}

// pastHalf reports whether a truncated remainder is far enough from zero for
// a nearest policy to round away: beyond |by|/2, or exactly at it if tieAway
// is set. An odd divisor has no exact half, so tieAway is ignored.
func pastHalf(absRem, absBy U128, tieAway bool) bool {
	absHalfY := absBy.Rsh(1)
	if absBy.lo&1 != 0 || !tieAway {
		return absRem.GreaterThan(absHalfY)
	}
	return absRem.GreaterOrEqualTo(absHalfY)
}

func pastHalfI128(rem, by I128, tieAway bool) bool {
	// Abs wraps only for MinI128, whose bits are still the right magnitude
	// as a U128. A remainder is always smaller than the divisor, so it never
	// wraps.
	return pastHalf(rem.Abs().AsU128(), by.Abs().AsU128(), tieAway)
}

// QuoRemToZero is the same as QuoRem.
func (i I128) QuoRemToZero(by I128) (q, r I128) {
	return i.QuoRem(by)
}

func (i I128) QuoToZero(by I128) I128 {
	return i.Quo(by)
}

// QuoRemAwayZero returns the quotient i/by rounded away from zero and the
// remainder i-by*q.
func (i I128) QuoRemAwayZero(by I128) (q, r I128) {
	quo, rem := i.QuoRem(by)
	return offsetI128(quo, rem, by, stepI128(!rem.IsZero(), i.quoNegative(by)))
}

func (i I128) QuoAwayZero(by I128) I128 {
	q, _ := i.QuoRemAwayZero(by)
	return q
}

// QuoRemToPosInf returns the quotient i/by rounded towards positive infinity
// and the remainder i-by*q.
func (i I128) QuoRemToPosInf(by I128) (q, r I128) {
	quo, rem := i.QuoRem(by)
	neg := i.quoNegative(by)
	return offsetI128(quo, rem, by, stepI128(!rem.IsZero() && !neg, neg))
}

func (i I128) QuoToPosInf(by I128) I128 {
	q, _ := i.QuoRemToPosInf(by)
	return q
}

// QuoRemToNegInf returns the quotient i/by rounded towards negative infinity
// and the remainder i-by*q, which is the same value returned by Mod.
func (i I128) QuoRemToNegInf(by I128) (q, r I128) {
	quo, rem := i.QuoRem(by)
	neg := i.quoNegative(by)
	return offsetI128(quo, rem, by, stepI128(!rem.IsZero() && neg, neg))
}

func (i I128) QuoToNegInf(by I128) I128 {
	q, _ := i.QuoRemToNegInf(by)
	return q
}

// QuoRemToOdd returns the quotient i/by rounded to whichever neighbouring
// integer is odd, and the remainder i-by*q.
func (i I128) QuoRemToOdd(by I128) (q, r I128) {
	quo, rem := i.QuoRem(by)
	inc := !rem.IsZero() && quo.lo&1 == 0
	return offsetI128(quo, rem, by, stepI128(inc, i.quoNegative(by)))
}

func (i I128) QuoToOdd(by I128) I128 {
	q, _ := i.QuoRemToOdd(by)
	return q
}

// QuoRemToEven returns the quotient i/by rounded to whichever neighbouring
// integer is even, and the remainder i-by*q.
func (i I128) QuoRemToEven(by I128) (q, r I128) {
	quo, rem := i.QuoRem(by)
	inc := !rem.IsZero() && quo.lo&1 != 0
	return offsetI128(quo, rem, by, stepI128(inc, i.quoNegative(by)))
}

func (i I128) QuoToEven(by I128) I128 {
	q, _ := i.QuoRemToEven(by)
	return q
}

// QuoRemTiesToZero returns the quotient i/by rounded to the nearest integer,
// with exact halves rounded towards zero, and the remainder i-by*q.
func (i I128) QuoRemTiesToZero(by I128) (q, r I128) {
	quo, rem := i.QuoRem(by)
	inc := pastHalfI128(rem, by, false)
	return offsetI128(quo, rem, by, stepI128(inc, i.quoNegative(by)))
}

func (i I128) QuoTiesToZero(by I128) I128 {
	q, _ := i.QuoRemTiesToZero(by)
	return q
}

// QuoRemTiesAwayZero returns the quotient i/by rounded to the nearest
// integer, with exact halves rounded away from zero, and the remainder
// i-by*q.
func (i I128) QuoRemTiesAwayZero(by I128) (q, r I128) {
	quo, rem := i.QuoRem(by)
	inc := pastHalfI128(rem, by, true)
	return offsetI128(quo, rem, by, stepI128(inc, i.quoNegative(by)))
}

func (i I128) QuoTiesAwayZero(by I128) I128 {
	q, _ := i.QuoRemTiesAwayZero(by)
	return q
}

// QuoRemTiesToPosInf returns the quotient i/by rounded to the nearest
// integer, with exact halves rounded towards positive infinity, and the
// remainder i-by*q.
func (i I128) QuoRemTiesToPosInf(by I128) (q, r I128) {
	quo, rem := i.QuoRem(by)
	neg := i.quoNegative(by)
	inc := pastHalfI128(rem, by, !neg)
	return offsetI128(quo, rem, by, stepI128(inc, neg))
}

func (i I128) QuoTiesToPosInf(by I128) I128 {
	q, _ := i.QuoRemTiesToPosInf(by)
	return q
}

// QuoRemTiesToNegInf returns the quotient i/by rounded to the nearest
// integer, with exact halves rounded towards negative infinity, and the
// remainder i-by*q.
func (i I128) QuoRemTiesToNegInf(by I128) (q, r I128) {
	quo, rem := i.QuoRem(by)
	neg := i.quoNegative(by)
	inc := pastHalfI128(rem, by, neg)
	return offsetI128(quo, rem, by, stepI128(inc, neg))
}

func (i I128) QuoTiesToNegInf(by I128) I128 {
	q, _ := i.QuoRemTiesToNegInf(by)
	return q
}

// QuoRemTiesToOdd returns the quotient i/by rounded to the nearest integer,
// with exact halves rounded to the odd neighbour, and the remainder i-by*q.
func (i I128) QuoRemTiesToOdd(by I128) (q, r I128) {
	quo, rem := i.QuoRem(by)
	inc := pastHalfI128(rem, by, quo.lo&1 == 0)
	return offsetI128(quo, rem, by, stepI128(inc, i.quoNegative(by)))
}

func (i I128) QuoTiesToOdd(by I128) I128 {
	q, _ := i.QuoRemTiesToOdd(by)
	return q
}

// QuoRemTiesToEven returns the quotient i/by rounded to the nearest integer,
// with exact halves rounded to the even neighbour, and the remainder i-by*q.
func (i I128) QuoRemTiesToEven(by I128) (q, r I128) {
	quo, rem := i.QuoRem(by)
	inc := pastHalfI128(rem, by, quo.lo&1 != 0)
	return offsetI128(quo, rem, by, stepI128(inc, i.quoNegative(by)))
}

func (i I128) QuoTiesToEven(by I128) I128 {
	q, _ := i.QuoRemTiesToEven(by)
	return q
}

// Mod returns the floored remainder of i/by: zero, or a value with the sign
// of by.
func (i I128) Mod(by I128) I128 {
	rem := i.Rem(by)
	if !rem.IsZero() && i.quoNegative(by) {
		return rem.Add(by)
	}
	return rem
}

// QuoRemMode returns the quotient and remainder of i/by rounded according to
// m. It panics if m is not a valid Mode.
func (i I128) QuoRemMode(m Mode, by I128) (q, r I128) {
	switch m {
	case RoundToZero:
		return i.QuoRemToZero(by)
	case RoundAwayZero:
		return i.QuoRemAwayZero(by)
	case RoundToPosInf:
		return i.QuoRemToPosInf(by)
	case RoundToNegInf:
		return i.QuoRemToNegInf(by)
	case RoundToOdd:
		return i.QuoRemToOdd(by)
	case RoundToEven:
		return i.QuoRemToEven(by)
	case RoundTiesToZero:
		return i.QuoRemTiesToZero(by)
	case RoundTiesAwayZero:
		return i.QuoRemTiesAwayZero(by)
	case RoundTiesToPosInf:
		return i.QuoRemTiesToPosInf(by)
	case RoundTiesToNegInf:
		return i.QuoRemTiesToNegInf(by)
	case RoundTiesToOdd:
		return i.QuoRemTiesToOdd(by)
	case RoundTiesToEven:
		return i.QuoRemTiesToEven(by)
	default:
		panic(fmt.Errorf("intdiv: unknown rounding mode %d", uint8(m)))
	}
}

func (i I128) QuoMode(m Mode, by I128) I128 {
	q, _ := i.QuoRemMode(m, by)
	return q
}

// CheckQuo reports whether i/by is a valid division, in the same way as
// Check.
func (i I128) CheckQuo(by I128) error {
	if by.IsZero() {
		return fmt.Errorf("intdiv: %d / %d: %w", i, by, ErrDivideByZero)
	}
	if i == MinI128 && by == minusOneI128 {
		return fmt.Errorf("intdiv: %d / %d: %w", i, by, ErrOverflow)
	}
	return nil
}

// CheckedQuoRem is like QuoRemMode, but returns an error instead of an
// unspecified result if the division is invalid, and instead of panicking
// if m is not a valid Mode.
func (i I128) CheckedQuoRem(m Mode, by I128) (q, r I128, err error) {
	if !m.Valid() {
		return q, r, fmt.Errorf("intdiv: rounding mode %d: %w", uint8(m), ErrUnknownMode)
	}
	if err := i.CheckQuo(by); err != nil {
		return q, r, err
	}
	q, r = i.QuoRemMode(m, by)
	return q, r, nil
}

// offsetU128 moves a truncated quotient one step up if inc is set, and
// returns the remainder that goes with it, which wraps below zero.
func offsetU128(quo, rem, by U128, inc bool) (q, r U128) {
	if !inc {
		return quo, rem
	}
	return quo.Inc(), rem.Sub(by)
}

// QuoRemToZero is the same as QuoRem.
func (u U128) QuoRemToZero(by U128) (q, r U128) {
	return u.QuoRem(by)
}

func (u U128) QuoToZero(by U128) U128 {
	return u.Quo(by)
}

// QuoRemAwayZero returns the quotient u/by rounded away from zero and the
// remainder u-by*q. The remainder wraps whenever u is not a multiple of by.
func (u U128) QuoRemAwayZero(by U128) (q, r U128) {
	quo, rem := u.QuoRem(by)
	return offsetU128(quo, rem, by, !rem.IsZero())
}

func (u U128) QuoAwayZero(by U128) U128 {
	q, _ := u.QuoRemAwayZero(by)
	return q
}

// QuoRemToPosInf is the same as QuoRemAwayZero, as an unsigned quotient is
// never negative.
func (u U128) QuoRemToPosInf(by U128) (q, r U128) {
	return u.QuoRemAwayZero(by)
}

func (u U128) QuoToPosInf(by U128) U128 {
	q, _ := u.QuoRemToPosInf(by)
	return q
}

// QuoRemToNegInf is the same as QuoRem, as an unsigned quotient is never
// negative.
func (u U128) QuoRemToNegInf(by U128) (q, r U128) {
	return u.QuoRem(by)
}

func (u U128) QuoToNegInf(by U128) U128 {
	return u.Quo(by)
}

func (u U128) QuoRemToOdd(by U128) (q, r U128) {
	quo, rem := u.QuoRem(by)
	return offsetU128(quo, rem, by, !rem.IsZero() && quo.lo&1 == 0)
}

func (u U128) QuoToOdd(by U128) U128 {
	q, _ := u.QuoRemToOdd(by)
	return q
}

func (u U128) QuoRemToEven(by U128) (q, r U128) {
	quo, rem := u.QuoRem(by)
	return offsetU128(quo, rem, by, !rem.IsZero() && quo.lo&1 != 0)
}

func (u U128) QuoToEven(by U128) U128 {
	q, _ := u.QuoRemToEven(by)
	return q
}

func (u U128) QuoRemTiesToZero(by U128) (q, r U128) {
	quo, rem := u.QuoRem(by)
	return offsetU128(quo, rem, by, pastHalf(rem, by, false))
}

func (u U128) QuoTiesToZero(by U128) U128 {
	q, _ := u.QuoRemTiesToZero(by)
	return q
}

func (u U128) QuoRemTiesAwayZero(by U128) (q, r U128) {
	quo, rem := u.QuoRem(by)
	return offsetU128(quo, rem, by, pastHalf(rem, by, true))
}

func (u U128) QuoTiesAwayZero(by U128) U128 {
	q, _ := u.QuoRemTiesAwayZero(by)
	return q
}

func (u U128) QuoRemTiesToPosInf(by U128) (q, r U128) {
	return u.QuoRemTiesAwayZero(by)
}

func (u U128) QuoTiesToPosInf(by U128) U128 {
	q, _ := u.QuoRemTiesToPosInf(by)
	return q
}

func (u U128) QuoRemTiesToNegInf(by U128) (q, r U128) {
	return u.QuoRemTiesToZero(by)
}

func (u U128) QuoTiesToNegInf(by U128) U128 {
	q, _ := u.QuoRemTiesToNegInf(by)
	return q
}

func (u U128) QuoRemTiesToOdd(by U128) (q, r U128) {
	quo, rem := u.QuoRem(by)
	return offsetU128(quo, rem, by, pastHalf(rem, by, quo.lo&1 == 0))
}

func (u U128) QuoTiesToOdd(by U128) U128 {
	q, _ := u.QuoRemTiesToOdd(by)
	return q
}

func (u U128) QuoRemTiesToEven(by U128) (q, r U128) {
	quo, rem := u.QuoRem(by)
	return offsetU128(quo, rem, by, pastHalf(rem, by, quo.lo&1 != 0))
}

func (u U128) QuoTiesToEven(by U128) U128 {
	q, _ := u.QuoRemTiesToEven(by)
	return q
}

// Mod returns the floored remainder of u/by, which for unsigned operands is
// always the same as Rem.
func (u U128) Mod(by U128) U128 {
	return u.Rem(by)
}

// QuoRemMode returns the quotient and remainder of u/by rounded according to
// m. It panics if m is not a valid Mode.
func (u U128) QuoRemMode(m Mode, by U128) (q, r U128) {
	switch m {
	case RoundToZero:
		return u.QuoRemToZero(by)
	case RoundAwayZero:
		return u.QuoRemAwayZero(by)
	case RoundToPosInf:
		return u.QuoRemToPosInf(by)
	case RoundToNegInf:
		return u.QuoRemToNegInf(by)
	case RoundToOdd:
		return u.QuoRemToOdd(by)
	case RoundToEven:
		return u.QuoRemToEven(by)
	case RoundTiesToZero:
		return u.QuoRemTiesToZero(by)
	case RoundTiesAwayZero:
		return u.QuoRemTiesAwayZero(by)
	case RoundTiesToPosInf:
		return u.QuoRemTiesToPosInf(by)
	case RoundTiesToNegInf:
		return u.QuoRemTiesToNegInf(by)
	case RoundTiesToOdd:
		return u.QuoRemTiesToOdd(by)
	case RoundTiesToEven:
		return u.QuoRemTiesToEven(by)
	default:
		panic(fmt.Errorf("intdiv: unknown rounding mode %d", uint8(m)))
	}
}

func (u U128) QuoMode(m Mode, by U128) U128 {
	q, _ := u.QuoRemMode(m, by)
	return q
}

// CheckQuo reports whether u/by is a valid division, in the same way as
// Check. The only invalid unsigned division is by zero.
func (u U128) CheckQuo(by U128) error {
	if by.IsZero() {
		return fmt.Errorf("intdiv: %d / %d: %w", u, by, ErrDivideByZero)
	}
	return nil
}

// CheckedQuoRem is like QuoRemMode, but returns an error instead of
// panicking if the division is invalid or m is not a valid Mode.
func (u U128) CheckedQuoRem(m Mode, by U128) (q, r U128, err error) {
	if !m.Valid() {
		return q, r, fmt.Errorf("intdiv: rounding mode %d: %w", uint8(m), ErrUnknownMode)
	}
	if err := u.CheckQuo(by); err != nil {
		return q, r, err
	}
	q, r = u.QuoRemMode(m, by)
	return q, r, nil
}
