package algorithms

import (
	"math/bits"

	"rsabackend/src/bigint"
)

const (
	// mrRounds is the number of independent witness rounds; 64 rounds bound
	// the false-positive probability by 4^-64.
	mrRounds = 64

	// smallPrimeBound / smallPrimeCount: there are exactly 1229 primes below
	// 10000, used for trial division before the witness rounds.
	smallPrimeBound = 10000
	smallPrimeCount = 1229
)

// smallPrimes is built once at startup and never written again.
var smallPrimes = sieveSmallPrimes()

func isSmallPrime(n uint64) bool {
	if n < 2 {
		return false
	}
	for i := uint64(2); i <= n/2; i++ {
		if n%i == 0 {
			return false
		}
	}
	return true
}

func sieveSmallPrimes() [smallPrimeCount]uint64 {
	var primes [smallPrimeCount]uint64
	i := 0
	for n := uint64(2); n < smallPrimeBound; n++ {
		if isSmallPrime(n) {
			primes[i] = n
			i++
		}
	}
	return primes
}

// divisibleBySmallPrime computes n mod p directly from the limb
// representation: sum value[i] * 2^(32i) folded limb by limb with all
// partial terms kept below p^2, which fits comfortably in 64 bits.
func divisibleBySmallPrime(limbs []uint64, p uint64) bool {
	base := uint64(1)
	sum := uint64(0)
	for _, v := range limbs {
		sum = (sum + base*(v%p)) % p
		base = (base * ((bigint.LimbMask + 1) % p)) % p
	}
	return sum == 0
}

// MillerRabin reports whether n is probably prime: trial division by every
// prime below 10000, then 64 Miller–Rabin witness rounds. Composites below
// 10^8 are always caught; larger composites survive with probability at
// most 4^-64.
func MillerRabin(n bigint.BigInt) bool {
	if n.Cmp(bigint.Three()) <= 0 {
		return n.Cmp(bigint.Two()) == 0 || n.Cmp(bigint.Three()) == 0
	}

	limbs := n.Limbs()
	for _, p := range smallPrimes {
		if divisibleBySmallPrime(limbs, p) {
			// n divisible by p is composite unless n is p itself.
			return n.Cmp(bigint.FromUint64(p)) == 0
		}
	}

	// Decompose n - 1 = 2^s * d with d odd; s counts trailing zero bits.
	nSub1 := n.Sub(bigint.One())
	s := 0
	for _, v := range nSub1.Limbs() {
		if v == 0 {
			s += bigint.LimbBits
			continue
		}
		s += bits.TrailingZeros64(v)
		break
	}
	d := nSub1.Shr(uint(s))

	m := BarrettM(n)
	one := bigint.One()
	for round := 0; round < mrRounds; round++ {
		// Random base in [2, n-1): draw at n's width, reduce, and redraw
		// while the result falls outside that range.
		var a bigint.BigInt
		for {
			a = BarrettMod(bigint.Rand(n.Len()), m, n)
			if a.Cmp(one) > 0 && a.Cmp(nSub1) < 0 {
				break
			}
		}

		x := ModPower(a, d, m, n)
		if x.Cmp(one) == 0 || x.Cmp(nSub1) == 0 {
			continue
		}

		witness := true
		for i := 1; i < s; i++ {
			x = BarrettMod(x.Mul(x), m, n)
			if x.Cmp(nSub1) == 0 {
				witness = false
				break
			}
		}
		if witness {
			return false
		}
	}
	return true
}
