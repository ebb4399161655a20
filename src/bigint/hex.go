package bigint

import (
	"fmt"
	"strings"
)

// hexDigitsPerLimb is the width of one limb rendered in hex.
const hexDigitsPerLimb = 8

// FromHex parses a big-endian lowercase hex string whose length is a
// multiple of 8 (one limb per 8 digits). Leading zero limbs are dropped so
// the result is canonical; the empty string is the zero-length encoding of
// zero.
func FromHex(hex string) (BigInt, error) {
	if len(hex) == 0 {
		return Zero(), nil
	}
	if len(hex)%hexDigitsPerLimb != 0 {
		return BigInt{}, fmt.Errorf("%w: length %d is not a multiple of %d", ErrParse, len(hex), hexDigitsPerLimb)
	}
	length := len(hex) / hexDigitsPerLimb
	if length > MaxLen {
		return BigInt{}, fmt.Errorf("%w: %d limbs exceeds the %d limb cap", ErrParse, length, MaxLen)
	}

	res := withCapacity(length)
	res.length = length
	for i := 0; i < len(hex); i++ {
		c := hex[i]
		var digit uint64
		switch {
		case c >= '0' && c <= '9':
			digit = uint64(c - '0')
		case c >= 'a' && c <= 'f':
			digit = uint64(c-'a') + 10
		default:
			return BigInt{}, fmt.Errorf("%w: invalid character %q", ErrParse, c)
		}
		idx := length - 1 - i/hexDigitsPerLimb
		res.value[idx] = res.value[idx]*16 + digit
	}
	res.trim()
	return res, nil
}

// FmtHex renders the value as lowercase hex, most significant limb first,
// each limb zero-padded to exactly 8 digits.
func (x BigInt) FmtHex() string {
	var sb strings.Builder
	sb.Grow(x.length * hexDigitsPerLimb)
	for i := x.length - 1; i >= 0; i-- {
		fmt.Fprintf(&sb, "%08x", x.value[i])
	}
	return sb.String()
}
