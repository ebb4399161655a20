package operations

import (
	"fmt"
	"time"

	"rsabackend/src/algorithms"
	"rsabackend/src/bigint"
	"rsabackend/src/rsa"
)

// SignResult contains the comma-joined signature blocks and the wall-clock
// duration of the operation.
type SignResult struct {
	MessageSigned string
	Duration      time.Duration
}

// Sign parses the keys and signs the message with the private exponent.
func Sign(message, publicKey, privateKey string) (*SignResult, error) {
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

	return &SignResult{
		MessageSigned: rsa.Sign(message, n, m, d),
		Duration:      time.Since(start),
	}, nil
}
