package rsa

import (
	"fmt"
	"log/slog"
	"strings"

	"rsabackend/src/algorithms"
	"rsabackend/src/bigint"
)

// Encrypt blocks the message so every block stays below n (one limb of
// headroom), raises each block to E mod n, and joins the hex-encoded
// ciphertext blocks with commas. m must be BarrettM(n).
func Encrypt(message string, n, m bigint.BigInt) string {
	blocks := StrToBigInts(message, n.Len()-1)
	parts := make([]string, 0, len(blocks))
	for _, blk := range blocks {
		parts = append(parts, algorithms.ModPower(blk, eBig, m, n).FmtHex())
	}
	return strings.Join(parts, ",")
}

// Decrypt splits the comma-separated ciphertext, applies d to every block
// and reassembles the plaintext bytes. An empty ciphertext is the encoding
// of the empty message and carries zero blocks.
func Decrypt(ciphertext string, n, m, d bigint.BigInt) (string, error) {
	if ciphertext == "" {
		return "", nil
	}
	parts := strings.Split(ciphertext, ",")
	blocks := make([]bigint.BigInt, 0, len(parts))
	for _, part := range parts {
		c, err := bigint.FromHex(part)
		if err != nil {
			return "", fmt.Errorf("parsing ciphertext block: %w", err)
		}
		blocks = append(blocks, algorithms.ModPower(c, d, m, n))
	}
	return BigIntsToStr(blocks)
}

// Sign is Decrypt's exponentiation applied to a fresh message: each
// plaintext block is raised to the private exponent, producing the
// comma-joined signature.
func Sign(message string, n, m, d bigint.BigInt) string {
	blocks := StrToBigInts(message, n.Len()-1)
	parts := make([]string, 0, len(blocks))
	for _, blk := range blocks {
		parts = append(parts, algorithms.ModPower(blk, d, m, n).FmtHex())
	}
	return strings.Join(parts, ",")
}

// VerSign recovers the message from a signature with the public exponent
// and compares it, ignoring trailing NUL padding, against the expected
// message. A signature that opens to invalid UTF-8 cannot match any
// message, so it verifies false rather than failing.
func VerSign(message, signature string, n, m bigint.BigInt) (bool, string, error) {
	var blocks []bigint.BigInt
	if signature != "" {
		parts := strings.Split(signature, ",")
		blocks = make([]bigint.BigInt, 0, len(parts))
		for _, part := range parts {
			c, err := bigint.FromHex(part)
			if err != nil {
				return false, "", fmt.Errorf("parsing signature block: %w", err)
			}
			blocks = append(blocks, algorithms.ModPower(c, eBig, m, n))
		}
	}

	recovered, err := BigIntsToStr(blocks)
	if err != nil {
		return false, "", nil
	}

	slog.Debug("signature opened", "message", message, "recovered", recovered)
	return strings.TrimRight(recovered, "\x00") == message, recovered, nil
}
