package algorithms

import (
	"testing"

	"rsabackend/src/bigint"
)

// mustHex parses a hex string or fails the test.
func mustHex(t *testing.T, s string) bigint.BigInt {
	t.Helper()
	x, err := bigint.FromHex(s)
	if err != nil {
		t.Fatalf("FromHex(%q) failed: %v", s, err)
	}
	return x
}

func TestBarrettModSmall(t *testing.T) {
	n := mustHex(t, "0000000d") // 13
	x := mustHex(t, "00000064") // 100
	m := BarrettM(n)

	got := BarrettMod(x, m, n)
	if v, _ := got.ToUint64(); v != 9 {
		t.Fatalf("100 mod 13 = %d, want 9", v)
	}

	// The plain division remainder must agree.
	_, r := bigint.DivMod(x, n)
	if got.Cmp(r) != 0 {
		t.Fatalf("Barrett disagrees with division: %s vs %s", got.FmtHex(), r.FmtHex())
	}
}

func TestBarrettModBelowModulus(t *testing.T) {
	n := bigint.Rand(3)
	m := BarrettM(n)
	x := bigint.Two()
	if got := BarrettMod(x, m, n); got.Cmp(x) != 0 {
		t.Fatalf("x < n must return x unchanged, got %s", got.FmtHex())
	}
}

func TestBarrettModAgainstDivision(t *testing.T) {
	for i := 0; i < 100; i++ {
		n := bigint.Rand(1 + i%4)
		m := BarrettM(n)

		// Any product of two reduced operands stays below n^2.
		_, a := bigint.DivMod(bigint.Rand(n.Len()+1), n)
		_, b := bigint.DivMod(bigint.Rand(n.Len()+1), n)
		x := a.Mul(b)

		_, want := bigint.DivMod(x, n)
		got := BarrettMod(x, m, n)
		if got.Cmp(want) != 0 {
			t.Fatalf("Barrett mismatch: x=%s n=%s got=%s want=%s",
				x.FmtHex(), n.FmtHex(), got.FmtHex(), want.FmtHex())
		}
	}
}
