package stack

import (
	"math/bits"
)

// bitsInChunk is the amount of booleans that are packed into a single chunk.
const bitsInChunk = bits.UintSize

// chunk is a machine word that stores one boolean per bit, the lowest bit holding the lowest position.
type chunk uint

// SetBit sets the bit at the given position.
func (c chunk) SetBit(pos uint) chunk {
	return c.SetBits(1 << pos)
}

// SetBits sets the bits in the given mask.
func (c chunk) SetBits(mask chunk) chunk {
	return c | mask
}

// ClearBit clears the bit at the given position.
func (c chunk) ClearBit(pos uint) chunk {
	return c.ClearBits(1 << pos)
}

// ClearBits clears the bits in the given mask.
func (c chunk) ClearBits(mask chunk) chunk {
	return c &^ mask
}

// HasBit checks whether the bit at the given position is set.
func (c chunk) HasBit(pos uint) bool {
	return c&(1<<pos) != 0
}

// ModifyBit sets or clears the bit at the given position, given the supplied state bool.
func (c chunk) ModifyBit(pos uint, state bool) chunk {
	if state {
		return c.SetBit(pos)
	}

	return c.ClearBit(pos)
}

// Masked returns only the bits of the chunk that are set in the given mask.
func (c chunk) Masked(mask chunk) chunk {
	return c & mask
}

// lowBitsMask returns a mask with the count lowest bits set.
func lowBitsMask(count int) chunk {
	if count >= bitsInChunk {
		return ^chunk(0)
	}

	return chunk(1)<<count - 1
}
