package operations

import (
	"fmt"
	"time"

	"rsabackend/src/algorithms"
	"rsabackend/src/bigint"
	"rsabackend/src/rsa"
)

// EncryptResult contains the comma-joined ciphertext blocks and the
// wall-clock duration of the operation.
type EncryptResult struct {
	Ciphertext string
	Duration   time.Duration
}

// Encrypt parses the hex public key and encrypts the message block by
// block.
func Encrypt(message, publicKey string) (*EncryptResult, error) {
	start := time.Now()

	n, err := parseKey(publicKey)
	if err != nil {
		return nil, fmt.Errorf("parsing public key: %w", err)
	}
	m := algorithms.BarrettM(n)

	return &EncryptResult{
		Ciphertext: rsa.Encrypt(message, n, m),
		Duration:   time.Since(start),
	}, nil
}

// parseKey parses a hex-encoded key and rejects moduli too small to hold
// even a single message limb per block.
func parseKey(hex string) (bigint.BigInt, error) {
	n, err := bigint.FromHex(hex)
	if err != nil {
		return bigint.BigInt{}, err
	}
	if n.Len() < 2 {
		return bigint.BigInt{}, fmt.Errorf("%w: key must be at least two limbs (64 bits)", ErrInvalid)
	}
	return n, nil
}
