/*
Package intdiv provides integer division and remainder operations for every
common rounding convention, generic over all of Go's fixed-width signed and
unsigned integer types.

Go's own '/' and '%' operators truncate towards zero. When you need a different
rounding convention (flooring for time bucketing, ceiling for page counts,
round-half-to-even for fixed-point arithmetic), the functions in this package
give you the quotient and a remainder that always satisfies:

	x == y*q + r

without any intermediate step overflowing, even at the very edges of the
type's range.

Simple example:

	q, r := intdiv.QuoRemToNegInf(-7, 2)
	fmt.Println(q, r)
	// Output: -4 1

Every rounding policy comes in two forms, one returning (quotient, remainder)
and one returning just the quotient:

	QuoRemToZero        QuoToZero        truncate (same as '/' and '%')
	QuoRemAwayZero      QuoAwayZero      away from zero
	QuoRemToPosInf      QuoToPosInf      towards +Inf (ceiling)
	QuoRemToNegInf      QuoToNegInf      towards -Inf (floor)
	QuoRemToOdd         QuoToOdd         to the odd neighbour
	QuoRemToEven        QuoToEven        to the even neighbour
	QuoRemTiesToZero    QuoTiesToZero    nearest, ties towards zero
	QuoRemTiesAwayZero  QuoTiesAwayZero  nearest, ties away from zero
	QuoRemTiesToPosInf  QuoTiesToPosInf  nearest, ties towards +Inf
	QuoRemTiesToNegInf  QuoTiesToNegInf  nearest, ties towards -Inf
	QuoRemTiesToOdd     QuoTiesToOdd     nearest, ties to odd
	QuoRemTiesToEven    QuoTiesToEven    nearest, ties to even

Mod returns the floored remainder alone.

If the policy is only known at runtime, use a Mode with QuoRem, Quo, Rem or
DivRem. Mode implements encoding.TextMarshaler and encoding.TextUnmarshaler.

The division functions do not check their inputs. The divisor must not be zero,
and for signed types the dividend must not be the minimum value when the
divisor is -1. Go panics on the former and silently wraps on the latter. If
you need these reported as errors, use Check, CheckedQuoRem or CheckedDivRem.

U128 and I128 are unsigned and signed 128-bit integers. They have a method
for every policy above, named the same way, plus Mod, QuoRemMode and
CheckedQuoRem:

	x := intdiv.I128From64(-7)
	q, r := x.QuoRemToNegInf(intdiv.I128From64(2))

All functions are pure and safe for concurrent use.
*/
package intdiv
