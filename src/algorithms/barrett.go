// Package algorithms provides the number-theoretic routines behind the RSA
// key schedule: Barrett modular reduction, modular exponentiation, an
// extended Euclidean inverse and a Miller–Rabin primality test. All of them
// operate on bigint values and none of them mutate their inputs.
package algorithms

import "rsabackend/src/bigint"

// BarrettM precomputes the Barrett constant floor(2^(2k) / n) for modulus n,
// where k is the bit length of n. Computed once per modulus and passed into
// every reducing operation so the hot path never divides.
func BarrettM(n bigint.BigInt) bigint.BigInt {
	k := uint(2 * n.BitLen())
	q, _ := bigint.DivMod(bigint.One().Shl(k), n)
	return q
}

// BarrettMod reduces x modulo n using the precomputed constant m. The caller
// must keep x < n^2; modular-multiply chains preserve that bound as long as
// both operands are reduced before multiplication.
func BarrettMod(x, m, n bigint.BigInt) bigint.BigInt {
	if n.IsZero() || x.Cmp(n) < 0 {
		return x.Clone()
	}

	k := uint(2 * n.BitLen())
	t := x.Mul(m).Shr(k)
	r := x.Sub(t.Mul(n))
	for r.Cmp(n) >= 0 {
		r = r.Sub(n)
	}
	return r
}
