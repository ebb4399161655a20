package algorithms

import (
	"math/big"
	"testing"

	"rsabackend/src/bigint"
)

func gcd64(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func TestExtendedEuclidBezoutIdentity(t *testing.T) {
	n := bigint.Rand(4)
	m := BarrettM(n)
	nBig := toBig(t, n)

	pairs := [][2]uint64{
		{114493, 1},
		{114493, 2},
		{114493, 35422},
		{114493, 114492},
		{17, 5},
		{5, 17},
		{48, 18},
		{100, 0},
	}
	for _, pair := range pairs {
		a, b := pair[0], pair[1]
		g, u, v := ExtendedEuclid(a, b, m, n)

		if want := gcd64(a, b); g != want {
			t.Fatalf("gcd(%d, %d) = %d, want %d", a, b, g, want)
		}
		if u.Cmp(n) >= 0 || v.Cmp(n) >= 0 {
			t.Fatalf("coefficients not reduced: u=%s v=%s", u.FmtHex(), v.FmtHex())
		}

		// u*a + v*b ≡ g (mod n)
		lhs := new(big.Int).Mul(toBig(t, u), new(big.Int).SetUint64(a))
		lhs.Add(lhs, new(big.Int).Mul(toBig(t, v), new(big.Int).SetUint64(b)))
		lhs.Mod(lhs, nBig)

		rhs := new(big.Int).SetUint64(g)
		rhs.Mod(rhs, nBig)
		if lhs.Cmp(rhs) != 0 {
			t.Fatalf("u*%d + v*%d != gcd (mod n): u=%s v=%s", a, b, u.FmtHex(), v.FmtHex())
		}
	}
}

func TestExtendedEuclidBaseCase(t *testing.T) {
	n := bigint.Rand(2)
	m := BarrettM(n)

	g, u, v := ExtendedEuclid(42, 0, m, n)
	if g != 42 {
		t.Fatalf("gcd(42, 0) = %d, want 42", g)
	}
	if u.Cmp(bigint.One()) != 0 || !v.IsZero() {
		t.Fatalf("base case coefficients = (%s, %s), want (1, 0)", u.FmtHex(), v.FmtHex())
	}
}
