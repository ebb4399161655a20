package algorithms

import (
	"math/bits"

	"rsabackend/src/bigint"
)

// ModPower computes base^exp mod n by left-to-right binary exponentiation:
// square the accumulator for every exponent bit, multiply by base when the
// bit is set, Barrett-reduce after each step. m must be BarrettM(n) and base
// must already be reduced below n.
func ModPower(base, exp, m, n bigint.BigInt) bigint.BigInt {
	res := bigint.One()
	if exp.IsZero() {
		return BarrettMod(res, m, n)
	}

	limbs := exp.Limbs()
	for i := len(limbs) - 1; i >= 0; i-- {
		maxBit := bigint.LimbBits - 1
		if i == len(limbs)-1 {
			maxBit = bits.Len64(limbs[i]) - 1
		}
		for j := maxBit; j >= 0; j-- {
			res = BarrettMod(res.Mul(res), m, n)
			if limbs[i]&(uint64(1)<<uint(j)) != 0 {
				res = BarrettMod(res.Mul(base), m, n)
			}
		}
	}
	return res
}
