package intdiv

import (
	"golang.org/x/exp/constraints"
)

// Integer is satisfied by every fixed-width signed and unsigned integer type.
type Integer interface {
	constraints.Integer
}

// signed reports whether T is a signed type.
func signed[T Integer]() bool {
	var zero T
	return zero-1 < 0
}

// sgn2 returns -1 if x is negative, otherwise 1. Unlike a three-way sign,
// zero counts as positive.
func sgn2[T Integer](x T) T {
	if x < 0 {
		return ^T(0) // -1; unreachable for unsigned types
	}
	return 1
}

func b2i[T Integer](b bool) T {
	if b {
		return 1
	}
	return 0
}

// quoRemOffset returns trunc(x/y)+d and the remainder that goes with it,
// x%y - d*y, where d is -1, 0 or 1.
//
// The remainder is calculated in uint64, which wraps. Conversion to uint64
// sign-extends signed operands, so truncating the result back to T gives the
// exact remainder for every width even where the signed subtraction would
// overflow.
func quoRemOffset[T Integer](x, y, d T) (q, r T) {
	return x/y + d, T(uint64(x%y) - uint64(d)*uint64(y))
}
