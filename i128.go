package intdiv

import (
	"fmt"
	"math/big"
	"strconv"
)

// I128 is a signed 128-bit integer in two's complement form. Arithmetic
// wraps, as it does for Go's built-in signed types.
type I128 struct {
	hi uint64
	lo uint64
}

// I128FromString creates an I128 from a decimal string. Overflow truncates to
// MaxI128/MinI128 and sets accurate to 'false'.
func I128FromString(s string) (out I128, accurate bool, err error) {
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return out, false, fmt.Errorf("intdiv: i128 string %q invalid", s)
	}
	out, accurate = I128FromBigInt(b)
	return out, accurate, nil
}

// I128FromRaw is the complement to I128.Raw(); it creates an I128 from two
// uint64s representing the hi and lo bits.
func I128FromRaw(hi, lo uint64) I128 {
	return I128{hi: hi, lo: lo}
}

func I128From64(v int64) I128 {
	var hi uint64
	if v < 0 {
		hi = maxUint64
	}
	return I128{hi: hi, lo: uint64(v)}
}

func I128From32(v int32) I128   { return I128From64(int64(v)) }
func I128From16(v int16) I128   { return I128From64(int64(v)) }
func I128From8(v int8) I128     { return I128From64(int64(v)) }
func I128FromU64(v uint64) I128 { return I128{lo: v} }

var (
	minI128AsAbsU128 = U128{hi: 0x8000000000000000, lo: 0}
	maxI128AsU128    = U128{hi: 0x7FFFFFFFFFFFFFFF, lo: 0xFFFFFFFFFFFFFFFF}
)

// I128FromBigInt creates an I128 from a big.Int. Overflow truncates to
// MaxI128/MinI128 and sets accurate to 'false'.
func I128FromBigInt(v *big.Int) (out I128, accurate bool) {
	neg := v.Sign() < 0
	u, accurate := U128FromBigInt(new(big.Int).Abs(v))

	if !neg {
		if !accurate || u.GreaterThan(maxI128AsU128) {
			return MaxI128, false
		}
		return u.AsI128(), true
	}

	if !accurate || u.GreaterThan(minI128AsAbsU128) {
		return MinI128, false
	}
	return u.AsI128().Neg(), true
}

func (i I128) IsZero() bool { return i == zeroI128 }

// Raw returns access to the I128 as a pair of uint64s. See I128FromRaw() for
// the counterpart.
func (i I128) Raw() (hi uint64, lo uint64) { return i.hi, i.lo }

func (i I128) String() string {
	if i.IsInt64() {
		return strconv.FormatInt(i.AsInt64(), 10)
	}
	return i.AsBigInt().String()
}

func (i I128) Format(s fmt.State, c rune) {
	i.AsBigInt().Format(s, c)
}

// AsBigInt allocates a new big.Int and copies this I128 into it.
func (i I128) AsBigInt() *big.Int {
	if i.hi&signBit == 0 {
		return i.AsU128().AsBigInt()
	}
	// Neg(MinI128) is MinI128, which is still the right magnitude as a U128:
	b := i.Neg().AsU128().AsBigInt()
	return b.Neg(b)
}

// AsU128 performs a direct cast of an I128 to a U128. Negative numbers
// become values > MaxI128.
func (i I128) AsU128() U128 {
	return U128{hi: i.hi, lo: i.lo}
}

// IsU128 reports whether i can be represented in a U128.
func (i I128) IsU128() bool {
	return i.hi&signBit == 0
}

// AsInt64 truncates the I128 to fit in a int64. Values outside the range will
// over/underflow. See IsInt64() if you want to check before you convert.
func (i I128) AsInt64() int64 {
	return int64(i.lo)
}

// IsInt64 reports whether i can be represented as a int64.
func (i I128) IsInt64() bool {
	if i.hi&signBit != 0 {
		return i.hi == maxUint64 && i.lo >= signBit
	}
	return i.hi == 0 && i.lo <= maxInt64
}

func (i I128) Sign() int {
	if i == zeroI128 {
		return 0
	} else if i.hi&signBit == 0 {
		return 1
	}
	return -1
}

func (i I128) Inc() I128            { return i.AsU128().Inc().AsI128() }
func (i I128) Dec() I128            { return i.AsU128().Dec().AsI128() }
func (i I128) Add(n I128) I128      { return i.AsU128().Add(n.AsU128()).AsI128() }
func (i I128) Sub(n I128) I128      { return i.AsU128().Sub(n.AsU128()).AsI128() }
func (i I128) Mul(n I128) I128      { return i.AsU128().Mul(n.AsU128()).AsI128() }
func (i I128) Equal(n I128) bool    { return i == n }
func (i I128) IsNegative() bool     { return i.hi&signBit != 0 }
func (i I128) LessThan(n I128) bool { return i.Cmp(n) < 0 }

// Neg returns -i. Overflow wraps, so -MinI128 == MinI128.
func (i I128) Neg() I128 {
	return zeroI128.Sub(i)
}

// Abs returns |i|. Overflow wraps, so |MinI128| == MinI128; use
// i.Abs().AsU128() for the exact magnitude.
func (i I128) Abs() I128 {
	if i.hi&signBit != 0 {
		return i.Neg()
	}
	return i
}

// Cmp compares i to n and returns:
//
//	-1 if i <  n
//	 0 if i == n
//	+1 if i >  n
func (i I128) Cmp(n I128) int {
	// Flipping the sign bit maps two's complement order onto unsigned order:
	return U128{hi: i.hi ^ signBit, lo: i.lo}.Cmp(U128{hi: n.hi ^ signBit, lo: n.lo})
}

func (i I128) GreaterThan(n I128) bool {
	return i.Cmp(n) > 0
}

// QuoRem returns the quotient q and remainder r for by != 0. If by == 0, a
// division-by-zero panic occurs.
//
// QuoRem implements T-division and modulus (like Go):
//
//	q = i/by      with the result truncated to zero
//	r = i - by*q
//
// MinI128.QuoRem(-1) wraps to MinI128, as it does for Go's built-in types.
// See the QuoRem* methods for the other rounding policies.
func (i I128) QuoRem(by I128) (q, r I128) {
	qNeg, rNeg := i.IsNegative(), i.IsNegative()
	if by.IsNegative() {
		qNeg = !qNeg
	}

	qu, ru := i.Abs().AsU128().QuoRem(by.Abs().AsU128())
	q, r = qu.AsI128(), ru.AsI128()
	if qNeg {
		q = q.Neg()
	}
	if rNeg {
		r = r.Neg()
	}
	return q, r
}

// Quo returns the quotient i/by for by != 0. If by == 0, a division-by-zero
// panic occurs. Quo implements truncated division (like Go); see QuoRem for
// more details.
func (i I128) Quo(by I128) (q I128) {
	q, _ = i.QuoRem(by)
	return q
}

// Rem returns the remainder of i%by for by != 0. If by == 0, a
// division-by-zero panic occurs. Rem implements truncated modulus (like Go);
// see QuoRem for more details.
func (i I128) Rem(by I128) (r I128) {
	_, r = i.QuoRem(by)
	return r
}

func (i I128) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

func (i *I128) UnmarshalText(bts []byte) (err error) {
	v, _, err := I128FromString(string(bts))
	if err != nil {
		return err
	}
	*i = v
	return nil
}

func (i I128) MarshalJSON() ([]byte, error) {
	return []byte(`"` + i.String() + `"`), nil
}

func (i *I128) UnmarshalJSON(bts []byte) (err error) {
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return fmt.Errorf("intdiv: i128 invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}
	return i.UnmarshalText(bts)
}
