package rsa

import (
	"bytes"
	"errors"
	"unicode/utf8"

	"rsabackend/src/bigint"
)

// ErrDecode reports that recovered plaintext bytes are not valid UTF-8.
var ErrDecode = errors.New("rsa: recovered bytes are not valid UTF-8")

// bytesPerLimb is how many message bytes one limb carries.
const bytesPerLimb = 4

// StrToBigInts splits the UTF-8 bytes of s into blocks of maxLimbs*4 bytes
// (the last block may be short) and packs each block into one bigint: limb i
// holds bytes [4i, 4i+4) little-endian, with a short tail zero-padded.
func StrToBigInts(s string, maxLimbs int) []bigint.BigInt {
	data := []byte(s)
	blockBytes := maxLimbs * bytesPerLimb

	var blocks []bigint.BigInt
	for start := 0; start < len(data); start += blockBytes {
		end := start + blockBytes
		if end > len(data) {
			end = len(data)
		}
		block := data[start:end]

		limbs := make([]uint64, 0, (len(block)+bytesPerLimb-1)/bytesPerLimb)
		for off := 0; off < len(block); off += bytesPerLimb {
			var limb uint64
			for k := 0; k < bytesPerLimb && off+k < len(block); k++ {
				limb |= uint64(block[off+k]) << (8 * k)
			}
			limbs = append(limbs, limb)
		}
		blocks = append(blocks, bigint.FromLimbs(limbs))
	}
	return blocks
}

// BigIntsToStr reassembles the byte stream: every significant limb of every
// block emits 4 little-endian bytes, then trailing NULs are stripped. The
// final limb pads short tails with up to three NUL bytes, so stripping is
// what makes Decrypt(Encrypt(msg)) == msg; the price is that a message
// legitimately ending in NUL comes back without that tail.
func BigIntsToStr(xs []bigint.BigInt) (string, error) {
	var buf []byte
	for _, x := range xs {
		for _, limb := range x.Limbs() {
			buf = append(buf,
				byte(limb),
				byte(limb>>8),
				byte(limb>>16),
				byte(limb>>24))
		}
	}
	buf = bytes.TrimRight(buf, "\x00")

	if !utf8.Valid(buf) {
		return "", ErrDecode
	}
	return string(buf), nil
}
