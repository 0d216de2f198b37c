package intdiv

// QuoRemToZero returns the quotient x/y rounded towards zero and the
// remainder x%y. This is Go's native truncating division; the remainder is
// zero or has the sign of x.
func QuoRemToZero[T Integer](x, y T) (q, r T) {
	return x / y, x % y
}

// QuoToZero returns the quotient x/y rounded towards zero.
func QuoToZero[T Integer](x, y T) T {
	return x / y
}

// QuoRemAwayZero returns the quotient x/y rounded away from zero and the
// remainder x-y*q. The remainder is zero or has the opposite sign to x.
func QuoRemAwayZero[T Integer](x, y T) (q, r T) {
	quoSign := sgn2(x) * sgn2(y)
	inc := x%y != 0
	return quoRemOffset(x, y, b2i[T](inc)*quoSign)
}

// QuoAwayZero returns the quotient x/y rounded away from zero.
func QuoAwayZero[T Integer](x, y T) T {
	q, _ := QuoRemAwayZero(x, y)
	return q
}

// QuoRemToPosInf returns the quotient x/y rounded towards positive infinity
// (the ceiling) and the remainder x-y*q. The remainder is zero or has the
// opposite sign to y.
func QuoRemToPosInf[T Integer](x, y T) (q, r T) {
	// Truncation only ever rounds a positive quotient down, so a positive
	// inexact quotient is the only one that needs to move.
	quoPositive := (x ^ y) >= 0
	inc := x%y != 0 && quoPositive
	return quoRemOffset(x, y, b2i[T](inc))
}

// QuoToPosInf returns the quotient x/y rounded towards positive infinity.
func QuoToPosInf[T Integer](x, y T) T {
	q, _ := QuoRemToPosInf(x, y)
	return q
}

// QuoRemToNegInf returns the quotient x/y rounded towards negative infinity
// (the floor) and the remainder x-y*q. The remainder is zero or has the sign
// of y; it is the same value returned by Mod.
func QuoRemToNegInf[T Integer](x, y T) (q, r T) {
	quoNegative := (x ^ y) < 0
	dec := x%y != 0 && quoNegative
	return quoRemOffset(x, y, -b2i[T](dec))
}

// QuoToNegInf returns the quotient x/y rounded towards negative infinity.
func QuoToNegInf[T Integer](x, y T) T {
	q, _ := QuoRemToNegInf(x, y)
	return q
}

// QuoRemToOdd returns the quotient x/y rounded to whichever neighbouring
// integer is odd, and the remainder x-y*q. If y divides x exactly, the exact
// quotient is returned whatever its parity.
func QuoRemToOdd[T Integer](x, y T) (q, r T) {
	quoSign := sgn2(x) * sgn2(y)
	inc := x%y != 0 && (x/y)%2 == 0
	return quoRemOffset(x, y, b2i[T](inc)*quoSign)
}

// QuoToOdd returns the quotient x/y rounded to the odd neighbour.
func QuoToOdd[T Integer](x, y T) T {
	q, _ := QuoRemToOdd(x, y)
	return q
}

// QuoRemToEven returns the quotient x/y rounded to whichever neighbouring
// integer is even, and the remainder x-y*q. If y divides x exactly, the exact
// quotient is returned whatever its parity.
func QuoRemToEven[T Integer](x, y T) (q, r T) {
	quoSign := sgn2(x) * sgn2(y)
	inc := x%y != 0 && (x/y)%2 != 0
	return quoRemOffset(x, y, b2i[T](inc)*quoSign)
}

// QuoToEven returns the quotient x/y rounded to the even neighbour.
func QuoToEven[T Integer](x, y T) T {
	q, _ := QuoRemToEven(x, y)
	return q
}

// The "Ties" functions below round to the nearest integer and differ only in
// how they treat an exact half.
//
// They compare |x%y| against |y/2|. Halving truncates, so for odd y the real
// half-way point is |y/2|+0.5 and a remainder equal to |y/2| is below it;
// for odd y, only |x%y| > |y/2| rounds away. Each function expresses this by
// raising the threshold by one whenever y is odd or the tie should not be
// broken away from zero.

// QuoRemTiesToZero returns the quotient x/y rounded to the nearest integer,
// with exact halves rounded towards zero, and the remainder x-y*q.
func QuoRemTiesToZero[T Integer](x, y T) (q, r T) {
	quoSign := sgn2(x) * sgn2(y)
	absRem := x % y * sgn2(x)
	absHalfY := y / 2 * sgn2(y)
	inc := absRem > absHalfY
	return quoRemOffset(x, y, b2i[T](inc)*quoSign)
}

// QuoTiesToZero returns the quotient x/y rounded to the nearest integer,
// with exact halves rounded towards zero.
func QuoTiesToZero[T Integer](x, y T) T {
	q, _ := QuoRemTiesToZero(x, y)
	return q
}

// QuoRemTiesAwayZero returns the quotient x/y rounded to the nearest integer,
// with exact halves rounded away from zero, and the remainder x-y*q. This is
// the "round half up" taught in school.
func QuoRemTiesAwayZero[T Integer](x, y T) (q, r T) {
	quoSign := sgn2(x) * sgn2(y)
	absRem := x % y * sgn2(x)
	absHalfY := y / 2 * sgn2(y)
	inc := absRem >= absHalfY+b2i[T](y%2 != 0)
	return quoRemOffset(x, y, b2i[T](inc)*quoSign)
}

// QuoTiesAwayZero returns the quotient x/y rounded to the nearest integer,
// with exact halves rounded away from zero.
func QuoTiesAwayZero[T Integer](x, y T) T {
	q, _ := QuoRemTiesAwayZero(x, y)
	return q
}

// QuoRemTiesToPosInf returns the quotient x/y rounded to the nearest integer,
// with exact halves rounded towards positive infinity, and the remainder
// x-y*q.
func QuoRemTiesToPosInf[T Integer](x, y T) (q, r T) {
	quoSign := sgn2(x) * sgn2(y)
	absRem := x % y * sgn2(x)
	absHalfY := y / 2 * sgn2(y)
	inc := absRem >= absHalfY+b2i[T](y%2 != 0 || quoSign < 0)
	return quoRemOffset(x, y, b2i[T](inc)*quoSign)
}

// QuoTiesToPosInf returns the quotient x/y rounded to the nearest integer,
// with exact halves rounded towards positive infinity.
func QuoTiesToPosInf[T Integer](x, y T) T {
	q, _ := QuoRemTiesToPosInf(x, y)
	return q
}

// QuoRemTiesToNegInf returns the quotient x/y rounded to the nearest integer,
// with exact halves rounded towards negative infinity, and the remainder
// x-y*q.
func QuoRemTiesToNegInf[T Integer](x, y T) (q, r T) {
	quoSign := sgn2(x) * sgn2(y)
	absRem := x % y * sgn2(x)
	absHalfY := y / 2 * sgn2(y)
	inc := absRem >= absHalfY+b2i[T](y%2 != 0 || quoSign > 0)
	return quoRemOffset(x, y, b2i[T](inc)*quoSign)
}

// QuoTiesToNegInf returns the quotient x/y rounded to the nearest integer,
// with exact halves rounded towards negative infinity.
func QuoTiesToNegInf[T Integer](x, y T) T {
	q, _ := QuoRemTiesToNegInf(x, y)
	return q
}

// QuoRemTiesToOdd returns the quotient x/y rounded to the nearest integer,
// with exact halves rounded to the odd neighbour, and the remainder x-y*q.
func QuoRemTiesToOdd[T Integer](x, y T) (q, r T) {
	quoSign := sgn2(x) * sgn2(y)
	absRem := x % y * sgn2(x)
	absHalfY := y / 2 * sgn2(y)
	quo := x / y
	inc := absRem >= absHalfY+b2i[T](y%2 != 0 || quo%2 != 0)
	return quoRemOffset(x, y, b2i[T](inc)*quoSign)
}

// QuoTiesToOdd returns the quotient x/y rounded to the nearest integer,
// with exact halves rounded to the odd neighbour.
func QuoTiesToOdd[T Integer](x, y T) T {
	q, _ := QuoRemTiesToOdd(x, y)
	return q
}

// QuoRemTiesToEven returns the quotient x/y rounded to the nearest integer,
// with exact halves rounded to the even neighbour, and the remainder x-y*q.
// This is "banker's rounding".
func QuoRemTiesToEven[T Integer](x, y T) (q, r T) {
	quoSign := sgn2(x) * sgn2(y)
	absRem := x % y * sgn2(x)
	absHalfY := y / 2 * sgn2(y)
	quo := x / y
	inc := absRem >= absHalfY+b2i[T](y%2 != 0 || quo%2 == 0)
	return quoRemOffset(x, y, b2i[T](inc)*quoSign)
}

// QuoTiesToEven returns the quotient x/y rounded to the nearest integer,
// with exact halves rounded to the even neighbour.
func QuoTiesToEven[T Integer](x, y T) T {
	q, _ := QuoRemTiesToEven(x, y)
	return q
}

// Mod returns the floored remainder of x/y: zero, or a value with the sign of
// y. This differs from Go's '%' operator when x and y have different signs.
func Mod[T Integer](x, y T) T {
	rem := x % y
	return rem + y*b2i[T](rem != 0 && (x^y) < 0)
}
