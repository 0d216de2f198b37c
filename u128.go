package intdiv

import (
	"fmt"
	"math/big"
	"math/bits"
	"strconv"
)

// U128 is an unsigned 128-bit integer. Arithmetic wraps, as it does for
// Go's built-in unsigned types.
type U128 struct {
	hi, lo uint64
}

func U128FromRaw(hi, lo uint64) U128 { return U128{hi: hi, lo: lo} }
func U128From64(v uint64) U128       { return U128{lo: v} }
func U128From32(v uint32) U128       { return U128{lo: uint64(v)} }
func U128From16(v uint16) U128       { return U128{lo: uint64(v)} }
func U128From8(v uint8) U128         { return U128{lo: uint64(v)} }

// U128FromString creates a U128 from a decimal string. Overflow truncates to
// MaxU128 and sets accurate to 'false'.
func U128FromString(s string) (out U128, accurate bool, err error) {
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return out, false, fmt.Errorf("intdiv: u128 string %q invalid", s)
	}
	out, accurate = U128FromBigInt(b)
	return out, accurate, nil
}

// U128FromBigInt creates a U128 from a big.Int. Overflow truncates to MaxU128
// and sets accurate to 'false'. Negative values return 0 and 'false'.
func U128FromBigInt(v *big.Int) (out U128, accurate bool) {
	if v.Sign() < 0 {
		return out, false
	}
	if v.BitLen() > 128 {
		return MaxU128, false
	}

	var word big.Int
	out.lo = word.And(v, maxBigUint64).Uint64()
	out.hi = word.Rsh(v, 64).Uint64()
	return out, true
}

func (u U128) IsZero() bool { return u == zeroU128 }

// Raw returns access to the U128 as a pair of uint64s. See U128FromRaw() for
// the counterpart.
func (u U128) Raw() (hi, lo uint64) { return u.hi, u.lo }

func (u U128) String() string {
	if u.hi == 0 {
		return strconv.FormatUint(u.lo, 10)
	}
	return u.AsBigInt().String()
}

func (u U128) Format(s fmt.State, c rune) {
	u.AsBigInt().Format(s, c)
}

// IntoBigInt copies this U128 into a big.Int, allowing you to retain and
// recycle memory.
func (u U128) IntoBigInt(b *big.Int) {
	var lo big.Int
	lo.SetUint64(u.lo)
	b.SetUint64(u.hi)
	b.Lsh(b, 64)
	b.Or(b, &lo)
}

// AsBigInt allocates a new big.Int and copies this U128 into it.
func (u U128) AsBigInt() *big.Int {
	var v big.Int
	u.IntoBigInt(&v)
	return &v
}

// AsI128 performs a direct cast of a U128 to an I128, which will interpret it
// as a two's complement value.
func (u U128) AsI128() I128 {
	return I128{hi: u.hi, lo: u.lo}
}

// IsI128 reports whether u can be represented in an I128.
func (u U128) IsI128() bool {
	return u.hi&signBit == 0
}

// AsUint64 truncates the U128 to fit in a uint64. Values outside the range
// will over/underflow. See IsUint64() if you want to check before you convert.
func (u U128) AsUint64() uint64 {
	return u.lo
}

// IsUint64 reports whether u can be represented as a uint64.
func (u U128) IsUint64() bool {
	return u.hi == 0
}

func (u U128) Inc() U128 { return u.Add(U128{lo: 1}) }
func (u U128) Dec() U128 { return u.Sub(U128{lo: 1}) }

func (u U128) Add(n U128) (v U128) {
	var carry uint64
	v.lo, carry = bits.Add64(u.lo, n.lo, 0)
	v.hi, _ = bits.Add64(u.hi, n.hi, carry)
	return v
}

func (u U128) Sub(n U128) (v U128) {
	var borrow uint64
	v.lo, borrow = bits.Sub64(u.lo, n.lo, 0)
	v.hi, _ = bits.Sub64(u.hi, n.hi, borrow)
	return v
}

// Cmp compares u to n and returns:
//
//	-1 if u <  n
//	 0 if u == n
//	+1 if u >  n
func (u U128) Cmp(n U128) int {
	if u.hi > n.hi {
		return 1
	} else if u.hi < n.hi {
		return -1
	} else if u.lo > n.lo {
		return 1
	} else if u.lo < n.lo {
		return -1
	}
	return 0
}

func (u U128) Equal(n U128) bool {
	return u.hi == n.hi && u.lo == n.lo
}

func (u U128) GreaterThan(n U128) bool {
	return u.hi > n.hi || (u.hi == n.hi && u.lo > n.lo)
}

func (u U128) GreaterOrEqualTo(n U128) bool {
	return !u.LessThan(n)
}

func (u U128) LessThan(n U128) bool {
	return u.hi < n.hi || (u.hi == n.hi && u.lo < n.lo)
}

func (u U128) Lsh(n uint) U128 {
	switch {
	case n == 0:
		return u
	case n >= 128:
		return U128{}
	case n >= 64:
		return U128{hi: u.lo << (n - 64)}
	default:
		return U128{hi: u.hi<<n | u.lo>>(64-n), lo: u.lo << n}
	}
}

func (u U128) Rsh(n uint) U128 {
	switch {
	case n == 0:
		return u
	case n >= 128:
		return U128{}
	case n >= 64:
		return U128{lo: u.hi >> (n - 64)}
	default:
		return U128{hi: u.hi >> n, lo: u.lo>>n | u.hi<<(64-n)}
	}
}

// Mul returns the product of two U128s. Overflow wraps around, as it does for
// Go's built-in unsigned types.
func (u U128) Mul(n U128) (dest U128) {
	dest.hi, dest.lo = bits.Mul64(u.lo, n.lo)
	dest.hi += u.hi*n.lo + u.lo*n.hi
	return dest
}

// Quo returns the quotient u/by for by != 0. If by == 0, a division-by-zero
// panic occurs. Quo implements truncated division (like Go).
func (u U128) Quo(by U128) (q U128) {
	q, _ = u.QuoRem(by)
	return q
}

// QuoRem returns the quotient q and remainder r for by != 0. If by == 0, a
// division-by-zero panic occurs.
//
// QuoRem implements T-division and modulus (like Go):
//
//	q = u/by      with the result truncated to zero
//	r = u - by*q
//
// See the QuoRem* methods for the other rounding policies.
func (u U128) QuoRem(by U128) (q, r U128) {
	if by.IsZero() {
		panic("intdiv: u128 division by zero")
	}

	if u.hi|by.hi == 0 {
		q.lo, r.lo = u.lo/by.lo, u.lo%by.lo
		return q, r
	}

	if by.hi == 0 {
		// Divide the high word first so the second step cannot overflow:
		if u.hi < by.lo {
			q.lo, r.lo = bits.Div64(u.hi, u.lo, by.lo)
			return q, r
		}
		var rhi uint64
		q.hi, rhi = u.hi/by.lo, u.hi%by.lo
		q.lo, r.lo = bits.Div64(rhi, u.lo, by.lo)
		return q, r
	}

	if u.LessThan(by) {
		return q, u
	}

	// Hacker's Delight 9-5, divlu: estimate the quotient from the normalised
	// top word of the divisor. The estimate is at most one too small once it
	// has been decremented.
	sh := uint(bits.LeadingZeros64(by.hi))
	v1 := by.Lsh(sh)
	u1 := u.Rsh(1)

	q.lo, _ = bits.Div64(u1.hi, u1.lo, v1.hi)
	q = q.Rsh(63 - sh)
	if !q.IsZero() {
		q = q.Dec()
	}

	r = u.Sub(q.Mul(by))
	if r.GreaterOrEqualTo(by) {
		q = q.Inc()
		r = r.Sub(by)
	}
	return q, r
}

// Rem returns the remainder of u%by for by != 0. If by == 0, a
// division-by-zero panic occurs. Rem implements truncated modulus (like Go);
// see QuoRem for more details.
func (u U128) Rem(by U128) (r U128) {
	_, r = u.QuoRem(by)
	return r
}

func (u U128) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

func (u *U128) UnmarshalText(bts []byte) (err error) {
	v, _, err := U128FromString(string(bts))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

func (u U128) MarshalJSON() ([]byte, error) {
	return []byte(`"` + u.String() + `"`), nil
}

func (u *U128) UnmarshalJSON(bts []byte) (err error) {
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return fmt.Errorf("intdiv: u128 invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}
	return u.UnmarshalText(bts)
}
