package intdiv

import (
	"fmt"
	"strconv"
	"strings"
)

// Mode selects a rounding policy at runtime. The zero value is RoundToZero,
// which matches Go's '/' and '%' operators.
type Mode uint8

const (
	RoundToZero Mode = iota
	RoundAwayZero
	RoundToPosInf
	RoundToNegInf
	RoundToOdd
	RoundToEven
	RoundTiesToZero
	RoundTiesAwayZero
	RoundTiesToPosInf
	RoundTiesToNegInf
	RoundTiesToOdd
	RoundTiesToEven

	modeCount
)

var modeNames = [modeCount]string{
	RoundToZero:       "to-zero",
	RoundAwayZero:     "away-zero",
	RoundToPosInf:     "to-pos-inf",
	RoundToNegInf:     "to-neg-inf",
	RoundToOdd:        "to-odd",
	RoundToEven:       "to-even",
	RoundTiesToZero:   "ties-to-zero",
	RoundTiesAwayZero: "ties-away-zero",
	RoundTiesToPosInf: "ties-to-pos-inf",
	RoundTiesToNegInf: "ties-to-neg-inf",
	RoundTiesToOdd:    "ties-to-odd",
	RoundTiesToEven:   "ties-to-even",
}

// modeAliases are accepted by ParseMode in addition to the canonical names.
var modeAliases = map[string]Mode{
	"trunc":     RoundToZero,
	"ceil":      RoundToPosInf,
	"floor":     RoundToNegInf,
	"half-up":   RoundTiesAwayZero,
	"half-even": RoundTiesToEven,
}

// Modes returns every valid Mode, in declaration order.
func Modes() []Mode {
	out := make([]Mode, modeCount)
	for i := range out {
		out[i] = Mode(i)
	}
	return out
}

// ParseMode parses the canonical name of a Mode, as returned by Mode.String,
// or one of the aliases "trunc", "ceil", "floor", "half-up" and "half-even".
// Matching ignores case and surrounding whitespace.
func ParseMode(s string) (Mode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for m, n := range modeNames {
		if n == name {
			return Mode(m), nil
		}
	}
	if m, ok := modeAliases[name]; ok {
		return m, nil
	}
	return 0, fmt.Errorf("intdiv: rounding mode %q: %w", s, ErrUnknownMode)
}

func (m Mode) Valid() bool { return m < modeCount }

func (m Mode) String() string {
	if !m.Valid() {
		return "Mode(" + strconv.Itoa(int(m)) + ")"
	}
	return modeNames[m]
}

func (m Mode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("intdiv: cannot marshal rounding mode %d: %w", uint8(m), ErrUnknownMode)
	}
	return []byte(modeNames[m]), nil
}

func (m *Mode) UnmarshalText(bts []byte) error {
	v, err := ParseMode(string(bts))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// QuoRem returns the quotient and remainder of x/y rounded according to m.
// It panics if m is not a valid Mode; see CheckedQuoRem for a version that
// returns an error instead.
func QuoRem[T Integer](m Mode, x, y T) (q, r T) {
	switch m {
	case RoundToZero:
		return QuoRemToZero(x, y)
	case RoundAwayZero:
		return QuoRemAwayZero(x, y)
	case RoundToPosInf:
		return QuoRemToPosInf(x, y)
	case RoundToNegInf:
		return QuoRemToNegInf(x, y)
	case RoundToOdd:
		return QuoRemToOdd(x, y)
	case RoundToEven:
		return QuoRemToEven(x, y)
	case RoundTiesToZero:
		return QuoRemTiesToZero(x, y)
	case RoundTiesAwayZero:
		return QuoRemTiesAwayZero(x, y)
	case RoundTiesToPosInf:
		return QuoRemTiesToPosInf(x, y)
	case RoundTiesToNegInf:
		return QuoRemTiesToNegInf(x, y)
	case RoundTiesToOdd:
		return QuoRemTiesToOdd(x, y)
	case RoundTiesToEven:
		return QuoRemTiesToEven(x, y)
	default:
		panic(fmt.Errorf("intdiv: unknown rounding mode %d", uint8(m)))
	}
}

// Quo returns the quotient of x/y rounded according to m.
func Quo[T Integer](m Mode, x, y T) T {
	q, _ := QuoRem(m, x, y)
	return q
}

// Rem returns the remainder x-y*q, where q is the quotient of x/y rounded
// according to m. Rem(RoundToNegInf, x, y) is equivalent to Mod(x, y).
func Rem[T Integer](m Mode, x, y T) T {
	_, r := QuoRem(m, x, y)
	return r
}
