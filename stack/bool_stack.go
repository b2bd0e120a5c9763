package stack

import (
	"strings"

	"github.com/iotaledger/hive.go/constraints"
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/lo"
	"github.com/iotaledger/hive.go/runtime/options"
	"github.com/iotaledger/hive.go/stringify"
)

// BoolStack is a non-thread safe Stack of booleans that packs every element into a single bit. The element at
// position i is stored in bit i % bitsInChunk of chunk i / bitsInChunk.
type BoolStack struct {
	// chunks holds the live bits in [0, size); len(chunks) is the chunk count.
	chunks []chunk
	size   int

	growthFactor float32
	growthHook   func(oldChunkCount, newChunkCount int)
}

// NewBoolStack returns a new empty BoolStack with DefaultCapacity chunks.
func NewBoolStack(opts ...options.Option[Options]) *BoolStack {
	o := newOptions(opts...)

	return &BoolStack{
		chunks:       make([]chunk, o.InitialCapacity),
		growthFactor: o.GrowthFactor,
		growthHook:   o.GrowthHook,
	}
}

// Clone returns a deep copy of this BoolStack with the same chunk count.
func (b *BoolStack) Clone() *BoolStack {
	chunks := make([]chunk, len(b.chunks))
	copy(chunks, b.chunks[:b.usedChunks()])

	return &BoolStack{
		chunks:       chunks,
		size:         b.size,
		growthFactor: b.growthFactor,
		growthHook:   b.growthHook,
	}
}

// CopyFrom replaces the content of this BoolStack with a copy of the live bits of source. The existing chunks are
// reused if there are at least as many as in source, otherwise they are replaced by the same amount as in source.
func (b *BoolStack) CopyFrom(source *BoolStack) *BoolStack {
	if b == source {
		return b
	}

	if len(b.chunks) < len(source.chunks) {
		b.chunks = make([]chunk, len(source.chunks))
	}

	copy(b.chunks, source.chunks[:source.usedChunks()])
	b.size = source.size
	b.growthFactor = source.growthFactor

	return b
}

// Move returns a new BoolStack that takes over the chunks of this one. This BoolStack is left empty and without any
// chunks but keeps its growth factor.
func (b *BoolStack) Move() *BoolStack {
	moved := &BoolStack{
		chunks:       b.chunks,
		size:         b.size,
		growthFactor: b.growthFactor,
		growthHook:   b.growthHook,
	}

	b.chunks, b.size = nil, 0

	return moved
}

// MoveFrom releases the chunks of this BoolStack and takes over the ones of source, which is left empty and without
// any chunks.
func (b *BoolStack) MoveFrom(source *BoolStack) *BoolStack {
	if b == source {
		return b
	}

	b.chunks, b.size = source.chunks, source.size
	b.growthFactor = source.growthFactor

	source.chunks, source.size = nil, 0

	return b
}

// Swap exchanges the chunks of both stacks. The growth factors stay with their stacks.
func (b *BoolStack) Swap(other *BoolStack) {
	b.chunks, other.chunks = other.chunks, b.chunks
	b.size, other.size = other.size, b.size
}

// Push pushes a boolean onto the top of this BoolStack.
func (b *BoolStack) Push(value bool) {
	if b.filledChunks() >= len(b.chunks) {
		b.grow()
	}

	b.size++
	b.writeTop(value)
}

// Pop removes the top boolean of this BoolStack. The bit itself is left untouched.
func (b *BoolStack) Pop() {
	b.panicIfEmpty("pop")

	b.size--
}

// Top returns the top boolean of this BoolStack.
func (b *BoolStack) Top() bool {
	b.panicIfEmpty("read top of")

	return b.readTop()
}

// SetTop overwrites the top boolean of this BoolStack.
func (b *BoolStack) SetTop(value bool) {
	b.panicIfEmpty("write top of")

	b.writeTop(value)
}

// Peek returns the top boolean of this BoolStack without removing it.
func (b *BoolStack) Peek() (value bool, exists bool) {
	if b.IsEmpty() {
		return false, false
	}

	return b.readTop(), true
}

// Clear removes all booleans from this BoolStack.
func (b *BoolStack) Clear() {
	b.size = 0
}

// Size returns the amount of booleans in this BoolStack.
func (b *BoolStack) Size() int {
	return b.size
}

// IsEmpty checks if this BoolStack is empty.
func (b *BoolStack) IsEmpty() bool {
	return b.size == 0
}

// ChunkCount returns the amount of allocated chunks.
func (b *BoolStack) ChunkCount() int {
	return len(b.chunks)
}

// GrowthFactor returns the factor the chunk count is multiplied with when the stack grows.
func (b *BoolStack) GrowthFactor() float32 {
	return b.growthFactor
}

// Bits returns the live booleans, from bottom to top.
func (b *BoolStack) Bits() []bool {
	result := make([]bool, b.size)
	for i := range result {
		result[i] = b.chunks[i/bitsInChunk].HasBit(uint(i % bitsInChunk))
	}

	return result
}

// Equal checks if both stacks hold the same booleans in the same order.
func (b *BoolStack) Equal(other *BoolStack) bool {
	if b.size != other.size {
		return false
	}

	for i := range b.filledChunks() {
		if b.chunks[i] != other.chunks[i] {
			return false
		}
	}

	if b.bitsInLastChunk() != other.bitsInLastChunk() {
		return false
	}

	mask := lowBitsMask(b.bitsInLastChunk())

	return b.chunkAt(b.filledChunks()).Masked(mask) == other.chunkAt(other.filledChunks()).Masked(mask)
}

// NotEqual is the negation of Equal.
func (b *BoolStack) NotEqual(other *BoolStack) bool {
	return !b.Equal(other)
}

// Less reports whether this BoolStack is dominated by other. Every full chunk of this stack has to be smaller than the
// chunk of other at the same position, the bits of the first partial chunk (up to the length of the partial chunk of
// the stack with fewer full chunks) have to be smaller as well and this stack must not be longer than other.
//
// An empty comparison window in the partial chunk never counts as smaller.
func (b *BoolStack) Less(other *BoolStack) bool {
	filled, otherFilled := b.filledChunks(), other.filledChunks()

	minFilled := lo.Min(filled, otherFilled)
	for i := range minFilled {
		if b.chunks[i] >= other.chunks[i] {
			return false
		}
	}

	var windowBits int
	if filled != otherFilled {
		windowBits = lo.Cond(minFilled == filled, b.bitsInLastChunk(), other.bitsInLastChunk())
	} else {
		windowBits = lo.Min(b.bitsInLastChunk(), other.bitsInLastChunk())
	}

	mask := lowBitsMask(windowBits)
	if b.chunkAt(minFilled).Masked(mask) >= other.chunkAt(minFilled).Masked(mask) {
		return false
	}

	if filled != otherFilled {
		return filled < otherFilled
	}

	return b.bitsInLastChunk() <= other.bitsInLastChunk()
}

// Greater reports whether other is Less than this BoolStack.
func (b *BoolStack) Greater(other *BoolStack) bool {
	return other.Less(b)
}

// LessOrEqual reports whether this BoolStack is not Greater than other.
func (b *BoolStack) LessOrEqual(other *BoolStack) bool {
	return !other.Less(b)
}

// GreaterOrEqual reports whether this BoolStack is not Less than other.
func (b *BoolStack) GreaterOrEqual(other *BoolStack) bool {
	return !b.Less(other)
}

func (b *BoolStack) String() string {
	return stringify.Struct("BoolStack",
		stringify.NewStructField("size", b.size),
		stringify.NewStructField("chunkCount", len(b.chunks)),
		stringify.NewStructField("growthFactor", stringify.Float32(b.growthFactor)),
		stringify.NewStructField("bits", b.bitString()),
	)
}

// bitString renders the live booleans as '0' and '1' characters, from bottom to top.
func (b *BoolStack) bitString() string {
	var builder strings.Builder
	for _, bit := range b.Bits() {
		builder.WriteByte(lo.Cond[byte](bit, '1', '0'))
	}

	return builder.String()
}

// filledChunks returns the amount of chunks whose bits are all live.
func (b *BoolStack) filledChunks() int {
	return b.size / bitsInChunk
}

// bitsInLastChunk returns the amount of live bits in the partially filled chunk.
func (b *BoolStack) bitsInLastChunk() int {
	return b.size % bitsInChunk
}

// usedChunks returns the amount of chunks that contain at least one live bit.
func (b *BoolStack) usedChunks() int {
	return (b.size + bitsInChunk - 1) / bitsInChunk
}

// chunkAt returns the chunk at the given index or an empty chunk if it was never allocated.
func (b *BoolStack) chunkAt(index int) chunk {
	if index >= len(b.chunks) {
		return 0
	}

	return b.chunks[index]
}

// topPosition returns the chunk index and the bit position of the top boolean.
func (b *BoolStack) topPosition() (index int, pos uint) {
	return (b.size - 1) / bitsInChunk, uint((b.size - 1) % bitsInChunk)
}

func (b *BoolStack) readTop() bool {
	index, pos := b.topPosition()

	return b.chunks[index].HasBit(pos)
}

func (b *BoolStack) writeTop(value bool) {
	index, pos := b.topPosition()

	b.chunks[index] = b.chunks[index].ModifyBit(pos, value)
}

// grow moves the chunks that contain live bits into a larger chunk slice.
func (b *BoolStack) grow() {
	oldChunkCount := len(b.chunks)

	chunks := make([]chunk, grownCapacity(oldChunkCount, b.growthFactor))
	copy(chunks, b.chunks[:b.usedChunks()])
	b.chunks = chunks

	if b.growthHook != nil {
		b.growthHook(oldChunkCount, len(chunks))
	}
}

func (b *BoolStack) panicIfEmpty(operation string) {
	if b.IsEmpty() {
		panic(ierrors.Wrapf(ErrEmptyStack, "failed to %s BoolStack", operation))
	}
}

// code contract - make sure the type implements the interfaces.
var (
	_ Stack[bool]                       = &BoolStack{}
	_ constraints.Cloneable[*BoolStack] = &BoolStack{}
	_ constraints.Equalable[*BoolStack] = &BoolStack{}
)
