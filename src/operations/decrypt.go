package operations

import (
	"fmt"
	"time"

	"rsabackend/src/algorithms"
	"rsabackend/src/bigint"
	"rsabackend/src/rsa"
)

// DecryptResult contains the recovered plaintext and the wall-clock
// duration of the operation.
type DecryptResult struct {
	Message  string
	Duration time.Duration
}

// Decrypt parses the keys and decrypts the comma-joined ciphertext blocks.
func Decrypt(ciphertext, publicKey, privateKey string) (*DecryptResult, error) {
	start := time.Now()

	n, err := parseKey(publicKey)
	if err != nil {
		return nil, fmt.Errorf("parsing public key: %w", err)
	}
	d, err := bigint.FromHex(privateKey)
	if err != nil {
		return nil, fmt.Errorf("parsing private key: %w", err)
	}
	m := algorithms.BarrettM(n)

	message, err := rsa.Decrypt(ciphertext, n, m, d)
	if err != nil {
		return nil, err
	}
	return &DecryptResult{
		Message:  message,
		Duration: time.Since(start),
	}, nil
}
