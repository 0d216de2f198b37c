package intdiv

import (
	"math/big"
	"testing"
)

var (
	BenchBigIntResult *big.Int
	BenchInt64Result  int64
	BenchInt32Result  int32
	BenchUint64Result uint64
	BenchI128Result   I128
	BenchU128Result   U128

	BenchInt641, BenchInt642   int64  = -12093749018, 18927
	BenchInt321, BenchInt322   int32  = -1209374901, 18927
	BenchUint641, BenchUint642 uint64 = 12093749018, 18927

	BenchI1281, BenchI1282 = I128FromRaw(maxUint64-12, 12093749018), I128From64(18927)
	BenchU1281, BenchU1282 = U128FromRaw(12, 12093749018), U128FromRaw(1, 18927)
)

func BenchmarkInt64Div(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchInt64Result = BenchInt641 / BenchInt642
	}
}

func BenchmarkQuoRem(b *testing.B) {
	for _, m := range Modes() {
		b.Run(m.String(), func(b *testing.B) {
			b.Run("i64", func(b *testing.B) {
				for i := 0; i < b.N; i++ {
					BenchInt64Result, _ = QuoRem(m, BenchInt641, BenchInt642)
				}
			})
			b.Run("i32", func(b *testing.B) {
				for i := 0; i < b.N; i++ {
					BenchInt32Result, _ = QuoRem(m, BenchInt321, BenchInt322)
				}
			})
			b.Run("u64", func(b *testing.B) {
				for i := 0; i < b.N; i++ {
					BenchUint64Result, _ = QuoRem(m, BenchUint641, BenchUint642)
				}
			})
		})
	}
}

func BenchmarkQuoRem128(b *testing.B) {
	for _, m := range Modes() {
		b.Run(m.String(), func(b *testing.B) {
			b.Run("i128", func(b *testing.B) {
				for i := 0; i < b.N; i++ {
					BenchI128Result, _ = BenchI1281.QuoRemMode(m, BenchI1282)
				}
			})
			b.Run("u128", func(b *testing.B) {
				for i := 0; i < b.N; i++ {
					BenchU128Result, _ = BenchU1281.QuoRemMode(m, BenchU1282)
				}
			})
		})
	}
}

func BenchmarkQuoRemTiesToEven(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchInt64Result, _ = QuoRemTiesToEven(BenchInt641, BenchInt642)
	}
}

func BenchmarkQuoToNegInf(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchInt64Result = QuoToNegInf(BenchInt641, BenchInt642)
	}
}

func BenchmarkMod(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchInt64Result = Mod(BenchInt641, BenchInt642)
	}
}

func BenchmarkBigIntDivMod(b *testing.B) {
	x := new(big.Int).SetInt64(BenchInt641)
	y := new(big.Int).SetInt64(BenchInt642)
	for i := 0; i < b.N; i++ {
		var q, m big.Int
		q.DivMod(x, y, &m)
		BenchBigIntResult = &q
	}
}
