package intdiv

import (
	"fmt"
)

// Result holds the quotient and remainder of a division. For every valid
// division, x == y*Quo + Rem.
type Result[T Integer] struct {
	Quo T
	Rem T
}

// DivRem returns the quotient and remainder of x/y rounded according to m.
func DivRem[T Integer](m Mode, x, y T) Result[T] {
	q, r := QuoRem(m, x, y)
	return Result[T]{Quo: q, Rem: r}
}

// Cmp compares res and n, quotient first, then remainder, and returns:
//
//	-1 if res <  n
//	 0 if res == n
//	+1 if res >  n
func (res Result[T]) Cmp(n Result[T]) int {
	if res.Quo < n.Quo {
		return -1
	} else if res.Quo > n.Quo {
		return 1
	} else if res.Rem < n.Rem {
		return -1
	} else if res.Rem > n.Rem {
		return 1
	}
	return 0
}

func (res Result[T]) String() string {
	return fmt.Sprintf("%d rem %d", res.Quo, res.Rem)
}
