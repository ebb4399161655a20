package bigint

import "math/rand"

// Rand returns a uniformly random value occupying exactly length limbs: each
// limb is a uniform 32-bit draw, and a zero top limb is bumped to 1 so the
// result really spans the requested width.
func Rand(length int) BigInt {
	if length < 1 {
		length = 1
	}
	res := withCapacity(length)
	res.length = length
	for i := 0; i < length; i++ {
		v := uint64(rand.Uint32())
		if i == length-1 && v == 0 {
			v = 1
		}
		res.value[i] = v
	}
	return res
}
