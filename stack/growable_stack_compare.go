package stack

import (
	"github.com/iotaledger/hive.go/constraints"
	"github.com/iotaledger/hive.go/lo"
)

// Equal checks if both stacks hold the same elements in the same order.
func Equal[T comparable](a, b *GrowableStack[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool {
		return x == y
	})
}

// NotEqual is the negation of Equal.
func NotEqual[T comparable](a, b *GrowableStack[T]) bool {
	return !Equal(a, b)
}

// EqualFunc checks if both stacks have the same size and if the elements at every position are equal according to
// the given function.
func EqualFunc[T any](a, b *GrowableStack[T], equal func(x, y T) bool) bool {
	if a.size != b.size {
		return false
	}

	for i := range a.size {
		if !equal(a.buffer[i], b.buffer[i]) {
			return false
		}
	}

	return true
}

// Less reports whether a is dominated by b: every element of a is smaller than the element of b at the same position
// (compared from the bottom up to the size of the smaller stack) and a is not larger than b.
//
// This is not a lexicographic order: [1 2] is not less than [1 2 3] and [2] is not less than [1 9].
func Less[T constraints.Ordered](a, b *GrowableStack[T]) bool {
	return dominated(a, b, func(x, y T) bool {
		return x >= y
	})
}

// Greater reports whether b is Less than a.
func Greater[T constraints.Ordered](a, b *GrowableStack[T]) bool {
	return Less(b, a)
}

// LessOrEqual reports whether b is not Greater than a.
func LessOrEqual[T constraints.Ordered](a, b *GrowableStack[T]) bool {
	return !Less(b, a)
}

// GreaterOrEqual reports whether a is not Less than b.
func GreaterOrEqual[T constraints.Ordered](a, b *GrowableStack[T]) bool {
	return !Less(a, b)
}

// LessFunc is the Less relation for element types that are ordered by the given function.
func LessFunc[T any](a, b *GrowableStack[T], less func(x, y T) bool) bool {
	return dominated(a, b, func(x, y T) bool {
		return !less(x, y)
	})
}

// dominated returns false as soon as notLess holds for a pair of elements and otherwise compares the sizes.
func dominated[T any](a, b *GrowableStack[T], notLess func(x, y T) bool) bool {
	for i := range lo.Min(a.size, b.size) {
		if notLess(a.buffer[i], b.buffer[i]) {
			return false
		}
	}

	return a.size <= b.size
}
