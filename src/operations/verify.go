package operations

import (
	"fmt"
	"time"

	"rsabackend/src/algorithms"
	"rsabackend/src/rsa"
)

// VerifyResult reports whether the signature opened back to the message,
// plus the wall-clock duration of the check.
type VerifyResult struct {
	Verified bool
	Duration time.Duration
}

// Verify opens the signature with the public exponent and compares the
// recovered plaintext against the expected message.
func Verify(message, messageSigned, publicKey string) (*VerifyResult, error) {
	start := time.Now()

	n, err := parseKey(publicKey)
	if err != nil {
		return nil, fmt.Errorf("parsing public key: %w", err)
	}
	m := algorithms.BarrettM(n)

	verified, _, err := rsa.VerSign(message, messageSigned, n, m)
	if err != nil {
		return nil, err
	}
	return &VerifyResult{
		Verified: verified,
		Duration: time.Since(start),
	}, nil
}
