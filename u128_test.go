package intdiv

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"math/rand"
	"strings"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

var u64 = U128From64

func bigU64(u uint64) *big.Int { return new(big.Int).SetUint64(u) }

func bigs(s string) *big.Int {
	v, _ := new(big.Int).SetString(strings.Replace(s, " ", "", -1), 0)
	return v
}

func u128s(s string) U128 {
	s = strings.Replace(s, " ", "", -1)
	b, ok := new(big.Int).SetString(s, 0)
	if !ok {
		panic(fmt.Errorf("intdiv: u128 string %q invalid", s))
	}
	out, acc := U128FromBigInt(b)
	if !acc {
		panic(fmt.Errorf("intdiv: inaccurate u128 %s", s))
	}
	return out
}

func randU128(scratch []byte) U128 {
	rand.Read(scratch)
	u := U128{}
	u.lo = binary.LittleEndian.Uint64(scratch)

	if scratch[0]%2 == 1 {
		// if we always generate hi bits, the universe will die before we
		// test a number < maxInt64
		u.hi = binary.LittleEndian.Uint64(scratch[8:])
	}
	return u
}

func TestU128AsBigInt(t *testing.T) {
	for idx, tc := range []struct {
		a U128
		b *big.Int
	}{
		{U128{0, 2}, bigU64(2)},
		{U128{0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFE}, bigs("0xFFFFFFFFFFFFFFFF FFFFFFFFFFFFFFFE")},
		{U128{0x1, 0x0}, bigs("18446744073709551616")},
		{U128{0x1, 0xFFFFFFFFFFFFFFFF}, bigs("36893488147419103231")}, // (1<<65) - 1
		{U128{0x7FFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF}, bigs("170141183460469231731687303715884105727")},
		{U128{0x8000000000000000, 0}, bigs("0x 8000000000000000 0000000000000000")},
	} {
		t.Run(fmt.Sprintf("%d/%d,%d=%s", idx, tc.a.hi, tc.a.lo, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			v := tc.a.AsBigInt()
			tt.MustAssert(tc.b.Cmp(v) == 0, "found: %s", v)
		})
	}
}

func TestU128Add(t *testing.T) {
	for _, tc := range []struct {
		a, b, c U128
	}{
		{u64(1), u64(2), u64(3)},
		{MaxU128, u64(1), u64(0)},                               // Overflow wraps
		{u64(maxUint64), u64(1), u128s("18446744073709551616")}, // lo carries to hi
		{u128s("18446744073709551615"), u128s("18446744073709551615"), u128s("36893488147419103230")},
	} {
		t.Run(fmt.Sprintf("%s+%s=%s", tc.a, tc.b, tc.c), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustAssert(tc.c.Equal(tc.a.Add(tc.b)))
		})
	}
}

func TestU128Sub(t *testing.T) {
	for _, tc := range []struct {
		a, b, c U128
	}{
		{u64(3), u64(2), u64(1)},
		{u64(0), u64(1), MaxU128},                               // Underflow wraps
		{u128s("18446744073709551616"), u64(1), u64(maxUint64)}, // hi borrows from lo
	} {
		t.Run(fmt.Sprintf("%s-%s=%s", tc.a, tc.b, tc.c), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustAssert(tc.c.Equal(tc.a.Sub(tc.b)))
		})
	}
}

func TestU128Format(t *testing.T) {
	for idx, tc := range []struct {
		v   U128
		fmt string
		out string
	}{
		{u64(1), "%d", "1"},
		{u64(1), "%s", "1"},
		{u64(1), "%v", "1"},
		{MaxU128, "%d", "340282366920938463463374607431768211455"},
		{MaxU128, "%b", strings.Repeat("1", 128)},
		{MaxU128, "%#x", "0xffffffffffffffffffffffffffffffff"},
	} {
		t.Run(fmt.Sprintf("%d/%s/%s", idx, tc.fmt, tc.v), func(t *testing.T) {
			tt := assert.WrapTB(t)
			result := fmt.Sprintf(tc.fmt, tc.v)
			tt.MustEqual(tc.out, result)
		})
	}
}

func TestU128FromBigInt(t *testing.T) {
	for idx, tc := range []struct {
		a   *big.Int
		b   U128
		acc bool
	}{
		{bigU64(2), u64(2), true},
		{bigs("18446744073709551616"), U128{hi: 0x1, lo: 0x0}, true},                // 1 << 64
		{bigs("36893488147419103231"), U128{hi: 0x1, lo: 0xFFFFFFFFFFFFFFFF}, true}, // (1<<65) - 1
		{bigs("0x FFFFFFFFFFFFFFFF FFFFFFFFFFFFFFFF"), MaxU128, true},
		{bigs("0x 1 0000000000000000 0000000000000000"), MaxU128, false},
		{bigs("-1"), u64(0), false},
	} {
		t.Run(fmt.Sprintf("%d/%s=%d,%d", idx, tc.a, tc.b.lo, tc.b.hi), func(t *testing.T) {
			tt := assert.WrapTB(t)
			v, acc := U128FromBigInt(tc.a)
			tt.MustEqual(acc, tc.acc)
			tt.MustAssert(tc.b.Cmp(v) == 0, "found: (%d, %d), expected (%d, %d)", v.hi, v.lo, tc.b.hi, tc.b.lo)
		})
	}
}

func TestU128Lsh(t *testing.T) {
	for idx, tc := range []struct {
		u  U128
		by uint
		r  U128
	}{
		{u: u64(2), by: 1, r: u64(4)},
		{u: u128s("18446744073709551615"), by: 1, r: u128s("36893488147419103230")}, // (1<<64) - 1
		{u: u128s("213"), by: 65, r: u128s("7858312975400268988416")},
		{u: u128s("0x4ff0d215cf8c26f26344"), by: 58, r: u128s("0xc348573e309bc98d1000000000000000")},
		{u: u64(1), by: 128, r: u64(0)},
	} {
		t.Run(fmt.Sprintf("%d/%s<<%d=%s", idx, tc.u, tc.by, tc.r), func(t *testing.T) {
			tt := assert.WrapTB(t)

			ub := tc.u.AsBigInt()
			ub.Lsh(ub, tc.by).And(ub, maxBigU128)

			ru := tc.u.Lsh(tc.by)
			tt.MustEqual(tc.r.String(), ru.String(), "%s != %s; big: %s", tc.r, ru, ub)
			tt.MustEqual(ub.String(), ru.String())
		})
	}
}

func TestU128Rsh(t *testing.T) {
	for _, tc := range []struct {
		u  U128
		by uint
		r  U128
	}{
		{u: u64(2), by: 1, r: u64(1)},
		{u: u128s("36893488147419103232"), by: 1, r: u128s("18446744073709551616")},
		{u: u128s("377509308958315595850564"), by: 58, r: u64(1309748)},
		{u: u128s("3731491383344351937489898072501894878"), by: 112, r: u64(718)},
		{u: MaxU128, by: 128, r: u64(0)},
	} {
		t.Run(fmt.Sprintf("%s>>%d=%s", tc.u, tc.by, tc.r), func(t *testing.T) {
			tt := assert.WrapTB(t)

			ub := tc.u.AsBigInt()
			ub.Rsh(ub, tc.by)

			ru := tc.u.Rsh(tc.by)
			tt.MustEqual(tc.r.String(), ru.String(), "%s != %s; big: %s", tc.r, ru, ub)
			tt.MustEqual(ub.String(), ru.String())
		})
	}
}

func TestU128Mul(t *testing.T) {
	tt := assert.WrapTB(t)

	u := U128From64(maxUint64)
	v := u.Mul(U128From64(maxUint64))

	var v1, v2 big.Int
	v1.SetUint64(maxUint64)
	v2.SetUint64(maxUint64)
	tt.MustEqual(v.String(), v1.Mul(&v1, &v2).String())

	// Overflow wraps:
	tt.MustAssert(MaxU128.Mul(u64(2)).Equal(MaxU128.Dec()))
}

func TestU128QuoRem(t *testing.T) {
	for idx, tc := range []struct {
		u, by, q, r U128
	}{
		{u: u64(1), by: u64(2), q: u64(0), r: u64(1)},
		{u: u64(10), by: u64(3), q: u64(3), r: u64(1)},

		// Divisor with a zero lo word:
		{u: U128{hi: 0, lo: 1}, by: U128{hi: 1, lo: 0}, q: u64(0), r: u64(1)},

		// 64-bit divisor, hi word of the dividend both below and above it:
		{u: u128s("0x1 0000000000000000"), by: u64(3), q: u128s("6148914691236517205"), r: u64(1)},
		{u: MaxU128, by: u64(10), q: u128s("34028236692093846346337460743176821145"), r: u64(5)},

		// Equal operands and a dividend smaller than the divisor:
		{u128s("0x123456789012345678901234"), u128s("0x123456789012345678901234"), u64(1), u64(0)},
		{u128s("0x123456789012345678901234"), u128s("0x222222229012345678901234"), u64(0), u128s("0x123456789012345678901234")},

		// 128-bit divisors, where the quotient estimate needs correcting:
		{u: MaxU128, by: U128{hi: 1, lo: 0}, q: u64(maxUint64), r: u64(maxUint64)},
		{u: MaxU128, by: MaxU128.Dec(), q: u64(1), r: u64(1)},
	} {
		t.Run(fmt.Sprintf("%d/%s÷%s=%s,%s", idx, tc.u, tc.by, tc.q, tc.r), func(t *testing.T) {
			tt := assert.WrapTB(t)
			q, r := tc.u.QuoRem(tc.by)
			tt.MustEqual(tc.q.String(), q.String())
			tt.MustEqual(tc.r.String(), r.String())

			uBig := tc.u.AsBigInt()
			byBig := tc.by.AsBigInt()

			qBig, rBig := new(big.Int).QuoRem(uBig, byBig, new(big.Int))
			tt.MustEqual(tc.q.String(), qBig.String())
			tt.MustEqual(tc.r.String(), rBig.String())
		})
	}
}

// These operands were found to break a previous 128-bit divisor branch;
// they have no hand-checked answer, so they are checked against big.Int.
func TestU128QuoRemRegressions(t *testing.T) {
	for _, tc := range []struct {
		u, by U128
	}{
		{u128s("3289699161974853443944280720275488"), u128s("9261249991223143249760")},
		{u128s("51044189592896282646990963682604803"), u128s("15356086376658915618524")},
		{u128s("555579170280843546177"), u128s("21475569273528505412")},
	} {
		t.Run(fmt.Sprintf("%s÷%s", tc.u, tc.by), func(t *testing.T) {
			tt := assert.WrapTB(t)
			q, r := tc.u.QuoRem(tc.by)
			qBig, rBig := new(big.Int).QuoRem(tc.u.AsBigInt(), tc.by.AsBigInt(), new(big.Int))
			tt.MustEqual(qBig.String(), q.String())
			tt.MustEqual(rBig.String(), r.String())
		})
	}
}

func TestU128QuoRemModes(t *testing.T) {
	// 2^64+1 / 2 is 2^63 + 0.5; the two candidates are 2^63 (even) and
	// 2^63+1 (odd).
	tie, two := u128s("18446744073709551617"), u64(2)
	lo, hi := u128s("9223372036854775808"), u128s("9223372036854775809")

	// Rounding up leaves a remainder of -1, which wraps:
	for _, tc := range []struct {
		m    Mode
		u    U128
		by   U128
		q, r U128
	}{
		{RoundToZero, tie, two, lo, u64(1)},
		{RoundAwayZero, tie, two, hi, MaxU128},
		{RoundToPosInf, tie, two, hi, MaxU128},
		{RoundToNegInf, tie, two, lo, u64(1)},
		{RoundToOdd, tie, two, hi, MaxU128},
		{RoundToEven, tie, two, lo, u64(1)},
		{RoundTiesToZero, tie, two, lo, u64(1)},
		{RoundTiesAwayZero, tie, two, hi, MaxU128},
		{RoundTiesToPosInf, tie, two, hi, MaxU128},
		{RoundTiesToNegInf, tie, two, lo, u64(1)},
		{RoundTiesToOdd, tie, two, hi, MaxU128},
		{RoundTiesToEven, tie, two, lo, u64(1)},

		// Not a tie: 2^64+1 / 3 is 6148914691236517205.666...
		{RoundTiesToZero, tie, u64(3), u128s("6148914691236517206"), MaxU128},
		{RoundTiesToEven, tie, u64(3), u128s("6148914691236517206"), MaxU128},
		{RoundToEven, tie, u64(3), u128s("6148914691236517206"), MaxU128},
		{RoundToOdd, tie, u64(3), u128s("6148914691236517205"), u64(2)},

		// The largest quotient that can round up without overflowing:
		{RoundAwayZero, MaxU128, two, U128FromRaw(signBit, 0), MaxU128},
		{RoundTiesToEven, MaxU128, two, U128FromRaw(signBit, 0), MaxU128},
		{RoundToNegInf, MaxU128, two, MaxU128.Rsh(1), u64(1)},
	} {
		t.Run(fmt.Sprintf("%s/%s÷%s=%s,%s", tc.m, tc.u, tc.by, tc.q, tc.r), func(t *testing.T) {
			tt := assert.WrapTB(t)
			q, r := tc.u.QuoRemMode(tc.m, tc.by)
			tt.MustEqual(tc.q.String(), q.String())
			tt.MustEqual(tc.r.String(), r.String())
			tt.MustAssert(tc.by.Mul(q).Add(r).Equal(tc.u))
		})
	}
}

func TestU128Mod(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual("1", u128s("18446744073709551617").Mod(u64(2)).String())
	tt.MustEqual("0", MaxU128.Mod(MaxU128).String())
	tt.MustEqual("5", MaxU128.Mod(u64(10)).String())
}

func TestU128CheckedQuoRem(t *testing.T) {
	tt := assert.WrapTB(t)

	q, r, err := MaxU128.CheckedQuoRem(RoundTiesToEven, u64(2))
	tt.MustOK(err)
	tt.MustEqual(U128FromRaw(signBit, 0), q)
	tt.MustEqual(MaxU128, r)

	_, _, err = MaxU128.CheckedQuoRem(RoundTiesToEven, u64(0))
	tt.MustAssert(errors.Is(err, ErrDivideByZero))
	tt.MustEqual("intdiv: 340282366920938463463374607431768211455 / 0: intdiv: division by zero", err.Error())

	_, _, err = MaxU128.CheckedQuoRem(Mode(99), u64(2))
	tt.MustAssert(errors.Is(err, ErrUnknownMode))
}

func TestU128QuoRemModeInvalidPanics(t *testing.T) {
	tt := assert.WrapTB(t)
	defer func() {
		rec := recover()
		tt.MustAssert(rec != nil)
		tt.MustEqual("intdiv: unknown rounding mode 12", fmt.Sprint(rec))
	}()
	u64(1).QuoRemMode(Mode(12), u64(1))
}

func TestU128MarshalJSON(t *testing.T) {
	tt := assert.WrapTB(t)
	bts := make([]byte, 16)

	for i := 0; i < 5000; i++ {
		u := randU128(bts)

		bts, err := json.Marshal(u)
		tt.MustOK(err)

		var result U128
		tt.MustOK(json.Unmarshal(bts, &result))
		tt.MustAssert(result.Equal(u))
	}
}
