// Package rsa implements the key schedule and the block operations: prime
// generation, derivation of the key pair (n, d), the byte-stream ↔ bigint
// block codec, and encrypt/decrypt/sign/verify over hex-encoded blocks.
package rsa

import (
	"golang.org/x/sync/errgroup"

	"rsabackend/src/algorithms"
	"rsabackend/src/bigint"
)

// E is the fixed public exponent shared by every key pair: the largest prime
// below 114514. Real-world RSA deployments usually pick 65537; this one is a
// deliberate constant of the system and is never transmitted.
const E = 114493

var eBig = bigint.FromUint64(E)

// GenPrime searches for a probable prime of the given bit length: draw a
// random candidate of bitLen/32 limbs, force it odd, skip multiples of E,
// and keep going until Miller–Rabin accepts.
func GenPrime(bitLen int) bigint.BigInt {
	limbs := bitLen / bigint.LimbBits
	for {
		num := bigint.Rand(limbs)
		if num.Limbs()[0]%2 == 0 {
			num = num.Add(bigint.One())
		}

		if _, r := bigint.DivMod(num, eBig); r.IsZero() {
			continue
		}
		if algorithms.MillerRabin(num) {
			return num
		}
	}
}

// GenKeys generates an RSA key pair for a modulus of the given total bit
// length. The two primes are searched concurrently; they share nothing, so
// the only synchronization is the final join.
//
// The private exponent is E^-1 mod φ. φ is far larger than E, so one
// division reduces the problem to an extended-Euclid run over the
// 64-bit pair (E, φ mod E):
//
//	u*E + v*(φ - div*E) ≡ 1 (mod φ)  =>  d = (u - v*div) mod φ
func GenKeys(length int) (bigint.BigInt, bigint.BigInt) {
	pqLen := length / 2
	for {
		var p, q bigint.BigInt
		g := new(errgroup.Group)
		g.Go(func() error { p = GenPrime(pqLen); return nil })
		g.Go(func() error { q = GenPrime(pqLen); return nil })
		_ = g.Wait()

		n := p.Mul(q)
		phi := p.Sub(bigint.One()).Mul(q.Sub(bigint.One()))
		m := algorithms.BarrettM(phi)

		div, r := bigint.DivMod(phi, eBig)
		rInt, _ := r.ToUint64() // r < E, always fits

		gcd, u, v := algorithms.ExtendedEuclid(E, rInt, m, phi)
		if gcd != 1 {
			// E divides φ; no inverse exists for this pair, draw again.
			continue
		}

		divV := algorithms.BarrettMod(v.Mul(div), m, phi)
		if u.Cmp(divV) < 0 {
			u = u.Add(phi)
		}
		d := algorithms.BarrettMod(u.Sub(divV), m, phi)
		return n, d
	}
}
