package stack

import (
	"fmt"

	"github.com/iotaledger/hive.go/constraints"
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/lo"
	"github.com/iotaledger/hive.go/runtime/options"
	"github.com/iotaledger/hive.go/stringify"
)

// GrowableStack is a non-thread safe Stack that manages its own buffer. The buffer is only ever replaced when it is
// full, in which case it grows to floor(capacity * growthFactor) + 1 slots.
type GrowableStack[T any] struct {
	// buffer holds the live elements in [0, size); len(buffer) is the capacity.
	buffer []T
	size   int

	growthFactor float32
	growthHook   func(oldCapacity, newCapacity int)
}

// New returns a new empty GrowableStack with DefaultCapacity slots.
func New[T any](opts ...options.Option[Options]) *GrowableStack[T] {
	o := newOptions(opts...)

	return &GrowableStack[T]{
		buffer:       make([]T, o.InitialCapacity),
		growthFactor: o.GrowthFactor,
		growthHook:   o.GrowthHook,
	}
}

// NewFromSlice returns a new GrowableStack that contains a copy of the given elements (the last one being the top).
// The capacity equals the amount of elements, WithInitialCapacity is ignored.
func NewFromSlice[T any](source []T, opts ...options.Option[Options]) *GrowableStack[T] {
	o := newOptions(opts...)

	return &GrowableStack[T]{
		buffer:       lo.CopySlice(source),
		size:         len(source),
		growthFactor: o.GrowthFactor,
		growthHook:   o.GrowthHook,
	}
}

// Clone returns a deep copy of this GrowableStack whose capacity equals its size.
func (s *GrowableStack[T]) Clone() *GrowableStack[T] {
	return &GrowableStack[T]{
		buffer:       lo.CopySlice(s.buffer[:s.size]),
		size:         s.size,
		growthFactor: s.growthFactor,
		growthHook:   s.growthHook,
	}
}

// CopyFrom replaces the content of this GrowableStack with a copy of the live elements of source. The existing buffer
// is reused if it is at least as large as the one of source, otherwise it is replaced by one of the same capacity as
// the one of source.
func (s *GrowableStack[T]) CopyFrom(source *GrowableStack[T]) *GrowableStack[T] {
	if s == source {
		return s
	}

	if len(s.buffer) < len(source.buffer) {
		s.buffer = make([]T, len(source.buffer))
	}

	copy(s.buffer, source.buffer[:source.size])
	s.size = source.size
	s.growthFactor = source.growthFactor

	return s
}

// Move returns a new GrowableStack that takes over the storage of this one. This GrowableStack is left empty and
// without any storage but keeps its growth factor.
func (s *GrowableStack[T]) Move() *GrowableStack[T] {
	moved := &GrowableStack[T]{
		buffer:       s.buffer,
		size:         s.size,
		growthFactor: s.growthFactor,
		growthHook:   s.growthHook,
	}

	s.buffer, s.size = nil, 0

	return moved
}

// MoveFrom releases the storage of this GrowableStack and takes over the one of source, which is left empty and
// without any storage.
func (s *GrowableStack[T]) MoveFrom(source *GrowableStack[T]) *GrowableStack[T] {
	if s == source {
		return s
	}

	s.buffer, s.size = source.buffer, source.size
	s.growthFactor = source.growthFactor

	source.buffer, source.size = nil, 0

	return s
}

// Swap exchanges the storage of both stacks. The growth factors stay with their stacks.
func (s *GrowableStack[T]) Swap(other *GrowableStack[T]) {
	s.buffer, other.buffer = other.buffer, s.buffer
	s.size, other.size = other.size, s.size
}

// Push pushes an element onto the top of this GrowableStack.
func (s *GrowableStack[T]) Push(element T) {
	if s.size == len(s.buffer) {
		s.grow()
	}

	s.buffer[s.size] = element
	s.size++
}

// Pop removes the top element of this GrowableStack. The capacity is retained.
func (s *GrowableStack[T]) Pop() {
	s.panicIfEmpty("pop")

	s.size--
}

// Top returns the top element of this GrowableStack.
func (s *GrowableStack[T]) Top() T {
	s.panicIfEmpty("read top of")

	return s.buffer[s.size-1]
}

// SetTop overwrites the top element of this GrowableStack.
func (s *GrowableStack[T]) SetTop(element T) {
	s.panicIfEmpty("write top of")

	s.buffer[s.size-1] = element
}

// Peek returns the top element of this GrowableStack without removing it.
func (s *GrowableStack[T]) Peek() (value T, exists bool) {
	if s.IsEmpty() {
		return value, false
	}

	return s.buffer[s.size-1], true
}

// Clear removes all elements from this GrowableStack.
func (s *GrowableStack[T]) Clear() {
	s.size = 0
}

// Size returns the amount of elements in this GrowableStack.
func (s *GrowableStack[T]) Size() int {
	return s.size
}

// IsEmpty checks if this GrowableStack is empty.
func (s *GrowableStack[T]) IsEmpty() bool {
	return s.size == 0
}

// Capacity returns the amount of allocated slots.
func (s *GrowableStack[T]) Capacity() int {
	return len(s.buffer)
}

// GrowthFactor returns the factor the capacity is multiplied with when the stack grows.
func (s *GrowableStack[T]) GrowthFactor() float32 {
	return s.growthFactor
}

// Values returns a copy of the live elements, from bottom to top.
func (s *GrowableStack[T]) Values() []T {
	return lo.CopySlice(s.buffer[:s.size])
}

func (s *GrowableStack[T]) String() string {
	return stringify.Struct("GrowableStack",
		stringify.NewStructField("size", s.size),
		stringify.NewStructField("capacity", len(s.buffer)),
		stringify.NewStructField("growthFactor", stringify.Float32(s.growthFactor)),
		stringify.NewStructField("values", fmt.Sprint(s.Values())),
	)
}

// grow moves the live elements into a larger buffer.
func (s *GrowableStack[T]) grow() {
	oldCapacity := len(s.buffer)

	buffer := make([]T, grownCapacity(oldCapacity, s.growthFactor))
	copy(buffer, s.buffer[:s.size])
	s.buffer = buffer

	if s.growthHook != nil {
		s.growthHook(oldCapacity, len(buffer))
	}
}

func (s *GrowableStack[T]) panicIfEmpty(operation string) {
	if s.IsEmpty() {
		panic(ierrors.Wrapf(ErrEmptyStack, "failed to %s GrowableStack", operation))
	}
}

// code contract - make sure the type implements the interfaces.
var (
	_ Stack[int]                                 = &GrowableStack[int]{}
	_ constraints.Cloneable[*GrowableStack[int]] = &GrowableStack[int]{}
)
