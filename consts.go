package intdiv

import (
	"math/big"
)

const (
	maxUint64 = 1<<64 - 1
	maxInt64  = 1<<63 - 1

	signBit = 0x8000000000000000
)

var (
	MaxI128 = I128{hi: 0x7FFFFFFFFFFFFFFF, lo: 0xFFFFFFFFFFFFFFFF}
	MinI128 = I128{hi: 0x8000000000000000, lo: 0}
	MaxU128 = U128{hi: maxUint64, lo: maxUint64}

	zeroI128 I128
	zeroU128 U128

	oneI128      = I128{lo: 1}
	minusOneI128 = I128{hi: maxUint64, lo: maxUint64}

	maxBigUint64 = new(big.Int).SetUint64(maxUint64)
)
