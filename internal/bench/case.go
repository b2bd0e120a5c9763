package bench

import (
	"container/list"
	"fmt"

	"github.com/emirpasic/gods/stacks/arraystack"

	"github.com/iotaledger/growstack/stack"
)

const (
	// CaseGrowableStack pushes integers onto a stack.GrowableStack.
	CaseGrowableStack = "GrowableStack"
	// CaseBoolStack pushes alternating booleans onto a stack.BoolStack.
	CaseBoolStack = "BoolStack"
	// CaseArrayStack pushes integers onto the array stack of gods.
	CaseArrayStack = "gods/arraystack"
	// CaseList pushes integers onto a container/list.
	CaseList = "container/list"
)

// Case is a single benchmark case.
type Case struct {
	// Name is the name of the benchmarked container.
	Name string
	// GrowthFactor is the growth factor of the container or 0 for the baselines that do not have one.
	GrowthFactor float32

	// fill pushes the given amount of elements and returns the final capacity. Every reallocation is reported to
	// onGrowth.
	fill func(pushes int, onGrowth func(oldCapacity, newCapacity int)) (finalCapacity int)
}

// NewGrowableStackCase returns the Case of a GrowableStack with the given growth factor.
func NewGrowableStackCase(growthFactor float32) *Case {
	return &Case{
		Name:         CaseGrowableStack,
		GrowthFactor: growthFactor,
		fill: func(pushes int, onGrowth func(oldCapacity, newCapacity int)) int {
			s := stack.New[uint64](stack.WithGrowthFactor(growthFactor), stack.WithGrowthHook(onGrowth))
			for i := range pushes {
				s.Push(uint64(i))
			}

			return s.Capacity()
		},
	}
}

// NewBoolStackCase returns the Case of a BoolStack with the given growth factor.
func NewBoolStackCase(growthFactor float32) *Case {
	return &Case{
		Name:         CaseBoolStack,
		GrowthFactor: growthFactor,
		fill: func(pushes int, onGrowth func(oldCapacity, newCapacity int)) int {
			s := stack.NewBoolStack(stack.WithGrowthFactor(growthFactor), stack.WithGrowthHook(onGrowth))
			for i := range pushes {
				s.Push(i%2 == 0)
			}

			return s.ChunkCount()
		},
	}
}

// NewArrayStackCase returns the baseline Case of the gods array stack. Its reallocations are not observable.
func NewArrayStackCase() *Case {
	return &Case{
		Name: CaseArrayStack,
		fill: func(pushes int, _ func(oldCapacity, newCapacity int)) int {
			s := arraystack.New()
			for i := range pushes {
				s.Push(uint64(i))
			}

			return s.Size()
		},
	}
}

// NewListCase returns the baseline Case of a container/list, which allocates once per element.
func NewListCase() *Case {
	return &Case{
		Name: CaseList,
		fill: func(pushes int, _ func(oldCapacity, newCapacity int)) int {
			l := list.New()
			for i := range pushes {
				l.PushBack(uint64(i))
			}

			return l.Len()
		},
	}
}

// ID returns a unique identifier of the Case.
func (c *Case) ID() string {
	if c.GrowthFactor == 0 {
		return c.Name
	}

	return fmt.Sprintf("%s/%.2f", c.Name, c.GrowthFactor)
}
