package rsa

import (
	"strings"
	"testing"

	"rsabackend/src/algorithms"
	"rsabackend/src/bigint"
)

// testKeys generates a fresh key pair for one round-trip test.
func testKeys(t *testing.T) (n, m, d bigint.BigInt) {
	t.Helper()
	nVal, dVal := GenKeys(128)
	return nVal, algorithms.BarrettM(nVal), dVal
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	n, m, d := testKeys(t)

	messages := []string{
		"hello",
		"a",
		"The quick brown fox jumps over the lazy dog",
		"日本語 and ümlauts",
		strings.Repeat("block spanning input ", 20),
	}
	for _, msg := range messages {
		ct := Encrypt(msg, n, m)
		got, err := Decrypt(ct, n, m, d)
		if err != nil {
			t.Fatalf("Decrypt(%q) failed: %v", msg, err)
		}
		if got != msg {
			t.Fatalf("round trip of %q = %q", msg, got)
		}
	}
}

func TestEmptyMessageRoundTrip(t *testing.T) {
	n, m, d := testKeys(t)

	ct := Encrypt("", n, m)
	if ct != "" {
		t.Fatalf("Encrypt(\"\") = %q, want empty ciphertext", ct)
	}
	got, err := Decrypt(ct, n, m, d)
	if err != nil {
		t.Fatalf("Decrypt of empty ciphertext failed: %v", err)
	}
	if got != "" {
		t.Fatalf("round trip of empty message = %q", got)
	}

	sig := Sign("", n, m, d)
	ok, recovered, err := VerSign("", sig, n, m)
	if err != nil {
		t.Fatalf("VerSign of empty signature failed: %v", err)
	}
	if !ok {
		t.Fatalf("empty message did not verify; recovered %q", recovered)
	}
}

func TestCiphertextFormat(t *testing.T) {
	n, m, _ := testKeys(t)

	ct := Encrypt(strings.Repeat("x", 64), n, m)
	for _, block := range strings.Split(ct, ",") {
		if len(block)%8 != 0 {
			t.Fatalf("ciphertext block %q has length %d, want multiple of 8", block, len(block))
		}
		if _, err := bigint.FromHex(block); err != nil {
			t.Fatalf("ciphertext block %q is not valid hex: %v", block, err)
		}
	}
}

func TestDecryptRejectsBadHex(t *testing.T) {
	n, m, d := testKeys(t)
	if _, err := Decrypt("not-hex!", n, m, d); err == nil {
		t.Fatal("Decrypt of malformed hex must fail")
	}
}

func TestSignVerify(t *testing.T) {
	n, m, d := testKeys(t)
	msg := "attack at dawn"

	sig := Sign(msg, n, m, d)
	ok, recovered, err := VerSign(msg, sig, n, m)
	if err != nil {
		t.Fatalf("VerSign failed: %v", err)
	}
	if !ok {
		t.Fatalf("valid signature rejected; recovered %q", recovered)
	}
}

func TestVerifyRejectsTamperedMessage(t *testing.T) {
	n, m, d := testKeys(t)

	sig := Sign("attack at dawn", n, m, d)
	ok, _, err := VerSign("attack at dusk", sig, n, m)
	if err != nil {
		t.Fatalf("VerSign failed: %v", err)
	}
	if ok {
		t.Fatal("tampered message verified")
	}
}

func TestVerifyRejectsTamperedSignature(t *testing.T) {
	n, m, d := testKeys(t)
	msg := "attack at dawn"

	sig := Sign(msg, n, m, d)
	// Flip one hex digit while keeping the string parseable.
	tampered := []byte(sig)
	for i, c := range tampered {
		if c != ',' {
			if c == '0' {
				tampered[i] = '1'
			} else {
				tampered[i] = '0'
			}
			break
		}
	}

	ok, _, err := VerSign(msg, string(tampered), n, m)
	if err != nil {
		t.Fatalf("VerSign failed: %v", err)
	}
	if ok {
		t.Fatal("tampered signature verified")
	}
}

func TestVerifyGarbageSignatureIsFalse(t *testing.T) {
	n, m, _ := testKeys(t)

	// A random block almost surely opens to invalid UTF-8; that is a
	// verification failure, not an error.
	ok, _, err := VerSign("hello", bigint.Rand(3).FmtHex(), n, m)
	if err != nil {
		t.Fatalf("VerSign failed: %v", err)
	}
	if ok {
		t.Fatal("garbage signature verified")
	}
}
