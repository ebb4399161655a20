package algorithms

import "rsabackend/src/bigint"

// ExtendedEuclid computes (g, u, v) with u*a + v*b ≡ g (mod n), where g is
// gcd(a, b). The pair (a, b) must fit in 32 bits each; the coefficients are
// kept reduced modulo n so they stay representable as unsigned values below
// n. Recursion depth is O(log a), around 17 levels for the public exponent.
func ExtendedEuclid(a, b uint64, m, n bigint.BigInt) (uint64, bigint.BigInt, bigint.BigInt) {
	if b == 0 {
		return a, bigint.One(), bigint.Zero()
	}

	q := a / b
	r := a % b
	g, u, v := ExtendedEuclid(b, r, m, n)

	// u' - q*v' can go negative; lift by n first since values are unsigned.
	qv := BarrettMod(v.MulLimb(q), m, n)
	if u.Cmp(qv) < 0 {
		u = u.Add(n)
	}
	return g, v, BarrettMod(u.Sub(qv), m, n)
}
