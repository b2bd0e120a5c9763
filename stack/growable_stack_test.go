package stack

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requirePanicsWithErr(t *testing.T, target error, f func()) {
	t.Helper()

	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")

		err, ok := r.(error)
		require.True(t, ok, "panic value should be an error")
		require.ErrorIs(t, err, target)
	}()

	f()
}

func TestGrowableStack_New(t *testing.T) {
	stack := New[int](WithGrowthFactor(2))

	assert.Equal(t, 0, stack.Size(), "stack should initially be empty")
	assert.True(t, stack.IsEmpty(), "stack should initially be empty")
	assert.Equal(t, DefaultCapacity, stack.Capacity(), "wrong default capacity")
	assert.Equal(t, float32(2), stack.GrowthFactor(), "wrong growth factor")
	assert.Equal(t, DefaultGrowthFactor, New[int]().GrowthFactor(), "wrong default growth factor")
}

func TestGrowableStack_NewFromSlice(t *testing.T) {
	source := []int{1, 2, 3}
	stack := NewFromSlice(source)

	require.Equal(t, 3, stack.Size())
	require.Equal(t, 3, stack.Capacity())
	require.False(t, stack.IsEmpty())
	require.Equal(t, 3, stack.Top())

	source[2] = 42
	require.Equal(t, 3, stack.Top(), "stack must not share the source slice")

	for i := len(source) - 1; i >= 0; i-- {
		require.Equal(t, []int{1, 2, 3}[i], stack.Top())
		stack.Pop()
	}
	require.True(t, stack.IsEmpty())

	empty := NewFromSlice[int](nil)
	require.Equal(t, 0, empty.Capacity())
	empty.Push(7)
	require.Equal(t, 7, empty.Top())
	require.Equal(t, 1, empty.Capacity())
}

func TestGrowableStack_InvalidOptions(t *testing.T) {
	requirePanicsWithErr(t, ErrInvalidGrowthFactor, func() { New[int](WithGrowthFactor(0.5)) })
	requirePanicsWithErr(t, ErrInvalidGrowthFactor, func() { New[int](WithGrowthFactor(0)) })
	requirePanicsWithErr(t, ErrInvalidGrowthFactor, func() { New[int](WithGrowthFactor(float32(math.NaN()))) })
	requirePanicsWithErr(t, ErrInvalidGrowthFactor, func() { New[int](WithGrowthFactor(float32(math.Inf(1)))) })
	requirePanicsWithErr(t, ErrInvalidCapacity, func() { New[int](WithInitialCapacity(-1)) })
}

func TestGrowableStack_Push(t *testing.T) {
	stack := New[int](WithGrowthFactor(2))

	assert.Equal(t, stack.Size(), 0, "stack should initially be empty")
	for value := 0; value < 3; value++ {
		stack.Push(value)
		assert.Equal(t, value+1, stack.Size(), "wrong stack size")
		assert.Equal(t, value, stack.Top(), "wrong element at top of stack")
	}
}

func TestGrowableStack_Growth(t *testing.T) {
	var growths [][2]int
	stack := New[int](WithInitialCapacity(1), WithGrowthFactor(1.5), WithGrowthHook(func(oldCapacity, newCapacity int) {
		growths = append(growths, [2]int{oldCapacity, newCapacity})
	}))

	for value := 1; value <= 8; value++ {
		stack.Push(value)
	}

	require.Equal(t, [][2]int{{1, 2}, {2, 4}, {4, 7}, {7, 11}}, growths)
	require.Equal(t, 8, stack.Size())
	require.Equal(t, 11, stack.Capacity())
	require.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, stack.Values())

	for value := 8; value > 1; value-- {
		require.Equal(t, value, stack.Top())
		stack.Pop()
	}
	require.Equal(t, 1, stack.Top(), "bottom element should survive all reallocations")
	require.Equal(t, 11, stack.Capacity(), "pop must not shrink the stack")
}

func TestGrowableStack_GrowthFormula(t *testing.T) {
	for _, test := range []struct {
		capacity     int
		growthFactor float32
		expected     int
	}{
		{capacity: 0, growthFactor: 1.5, expected: 1},
		{capacity: 1, growthFactor: 1, expected: 2},
		{capacity: 32, growthFactor: 1.5, expected: 49},
		{capacity: 32, growthFactor: 1.1, expected: 36},
		{capacity: 10, growthFactor: 2, expected: 21},
		// 45 * 1.4 is 63 in single precision but 62.99... in double precision
		{capacity: 45, growthFactor: 1.4, expected: 64},
		{capacity: 1 << 24, growthFactor: 1, expected: 1<<24 + 1},
		{capacity: 1<<24 + 1, growthFactor: 1, expected: 1<<24 + 2},
	} {
		require.Equal(t, test.expected, grownCapacity(test.capacity, test.growthFactor), "capacity %d, factor %v", test.capacity, test.growthFactor)
	}

	stack := New[int]()
	for value := range DefaultCapacity + 1 {
		stack.Push(value)
	}
	require.Equal(t, 49, stack.Capacity())

	stack = New[int](WithInitialCapacity(0))
	stack.Push(1)
	require.Equal(t, 1, stack.Capacity())

	var growths [][2]int
	stack = New[int](WithGrowthFactor(1.4), WithGrowthHook(func(oldCapacity, newCapacity int) {
		growths = append(growths, [2]int{oldCapacity, newCapacity})
	}))
	for value := range 64 {
		stack.Push(value)
	}
	require.Equal(t, [][2]int{{32, 45}, {45, 64}}, growths)
}

func TestGrowableStack_Pop(t *testing.T) {
	stack := NewFromSlice([]int{1, 2, 3})

	stack.Pop()
	assert.Equal(t, 2, stack.Size(), "wrong stack size")
	assert.Equal(t, 2, stack.Top(), "wrong element at top of stack")
	assert.Equal(t, 3, stack.buffer[2], "pop must not clear the vacated slot")

	stack.Pop()
	stack.Pop()
	assert.True(t, stack.IsEmpty(), "stack should be empty")

	requirePanicsWithErr(t, ErrEmptyStack, stack.Pop)
}

func TestGrowableStack_PushPopRoundTrip(t *testing.T) {
	stack := New[int](WithInitialCapacity(3))
	stack.Push(-1)

	for count := 0; count < 200; count += 17 {
		for value := range count {
			stack.Push(value)
		}
		for value := count - 1; value >= 0; value-- {
			require.Equal(t, value, stack.Top())
			stack.Pop()
		}

		require.Equal(t, 1, stack.Size())
		require.Equal(t, -1, stack.Top())
	}

	stack.Pop()
	require.True(t, stack.IsEmpty())
}

func TestGrowableStack_Top(t *testing.T) {
	stack := NewFromSlice([]int{1, 2, 3})

	require.Equal(t, 3, stack.Top())
	stack.SetTop(4)
	require.Equal(t, 4, stack.Top())
	require.Equal(t, 3, stack.Size())

	empty := New[int]()
	requirePanicsWithErr(t, ErrEmptyStack, func() { empty.Top() })
	requirePanicsWithErr(t, ErrEmptyStack, func() { empty.SetTop(1) })
}

func TestGrowableStack_Peek(t *testing.T) {
	stack := New[int]()

	_, exists := stack.Peek()
	assert.False(t, exists, "stack should return false when its empty")
	stack.Push(1)
	value, exists := stack.Peek()
	assert.True(t, exists, "stack should return true if its not empty")
	assert.Equal(t, 1, value, "wrong element at top of stack")
	assert.Equal(t, 1, stack.Size(), "wrong stack size")
}

func TestGrowableStack_Clear(t *testing.T) {
	stack := NewFromSlice([]int{1, 2, 3})

	stack.Clear()
	assert.Equal(t, 0, stack.Size(), "wrong stack size")
	assert.Equal(t, 3, stack.Capacity(), "clear must keep the storage")
	_, exists := stack.Peek()
	assert.False(t, exists, "stack should return false when its empty")
}

func TestGrowableStack_Size(t *testing.T) {
	for size := 1; size <= 3; size++ {
		stack := NewFromSlice(make([]int, size))
		assert.Equal(t, size, stack.Size(), "wrong stack size")
	}

	stack := New[int]()
	for i := 0; i < 10000; i++ {
		stack.Push(i)
	}
	assert.Equal(t, 10000, stack.Size(), "wrong stack size")
}

func TestGrowableStack_IsEmpty(t *testing.T) {
	stack := New[int](WithGrowthFactor(2))
	assert.True(t, stack.IsEmpty(), "stack should be empty")

	stack.CopyFrom(New[int](WithGrowthFactor(2)))
	assert.True(t, stack.IsEmpty(), "stack should be empty")

	stack.MoveFrom(New[int]())
	assert.True(t, stack.IsEmpty(), "stack should be empty")
}

func TestGrowableStack_Clone(t *testing.T) {
	source := New[int](WithGrowthFactor(2))
	for value := 1; value <= 3; value++ {
		source.Push(value)
	}

	clone := source.Clone()
	require.Equal(t, source.Size(), clone.Size())
	require.True(t, Equal(source, clone))
	require.Equal(t, 3, clone.Capacity(), "clone should be sized to the live elements")
	require.Equal(t, float32(2), clone.GrowthFactor())

	clone.SetTop(42)
	clone.Push(4)
	require.Equal(t, 3, source.Top(), "mutating the clone must not affect the source")
	require.Equal(t, 3, source.Size())

	source.Pop()
	require.Equal(t, 4, clone.Size(), "mutating the source must not affect the clone")
}

func TestGrowableStack_CopyFrom(t *testing.T) {
	source := NewFromSlice([]int{1, 2, 3}, WithGrowthFactor(3))

	large := New[int]()
	require.Same(t, large, large.CopyFrom(source))
	require.True(t, Equal(large, source))
	require.Equal(t, DefaultCapacity, large.Capacity(), "large enough buffers are reused")
	require.Equal(t, float32(3), large.GrowthFactor())

	small := New[int](WithInitialCapacity(1))
	small.CopyFrom(source)
	require.True(t, Equal(small, source))
	require.Equal(t, 3, small.Capacity())

	headroom := New[int](WithInitialCapacity(10))
	headroom.Push(5)
	small = New[int](WithInitialCapacity(2))
	small.CopyFrom(headroom)
	require.Equal(t, 10, small.Capacity(), "reallocation mirrors the capacity of the source")
	require.Equal(t, []int{5}, small.Values())

	large.SetTop(0)
	require.Equal(t, 3, source.Top(), "copies must be independent")

	self := source.CopyFrom(source)
	require.Same(t, source, self)
	require.Equal(t, []int{1, 2, 3}, source.Values())
}

func TestGrowableStack_Move(t *testing.T) {
	source := NewFromSlice([]int{1, 2, 3}, WithGrowthFactor(2))
	expected := source.Clone()

	moved := source.Move()
	require.True(t, Equal(moved, expected))
	require.Equal(t, 3, moved.Capacity())
	require.Equal(t, float32(2), moved.GrowthFactor())

	require.True(t, source.IsEmpty())
	require.Equal(t, 0, source.Capacity())
	require.Nil(t, source.buffer)
	require.Equal(t, float32(2), source.GrowthFactor(), "growth factor is preserved in the moved-from stack")

	source.Push(9)
	require.Equal(t, 9, source.Top(), "moved-from stack must stay usable")
	require.Equal(t, 3, moved.Top())
}

func TestGrowableStack_MoveFrom(t *testing.T) {
	source := NewFromSlice([]int{1, 2, 3}, WithGrowthFactor(3))
	expected := source.Clone()

	target := New[int]()
	require.Same(t, target, target.MoveFrom(source))
	require.True(t, Equal(target, expected))
	require.Equal(t, float32(3), target.GrowthFactor())
	require.True(t, source.IsEmpty())
	require.Equal(t, 0, source.Capacity())

	self := target.MoveFrom(target)
	require.Same(t, target, self)
	require.True(t, Equal(target, expected), "self move must be a no-op")
}

func TestGrowableStack_Swap(t *testing.T) {
	a := NewFromSlice([]int{1, 2, 3}, WithGrowthFactor(2))
	b := a.Clone()
	c := NewFromSlice([]int{4, 5, 6, 7}, WithGrowthFactor(3))
	d := c.Clone()

	require.True(t, NotEqual(a, d))
	require.True(t, NotEqual(c, b))

	a.Swap(c)
	require.True(t, Equal(a, d))
	require.True(t, Equal(c, b))
	require.Equal(t, 4, a.Capacity())
	require.Equal(t, float32(2), a.GrowthFactor(), "growth factors are not swapped")
	require.Equal(t, float32(3), c.GrowthFactor(), "growth factors are not swapped")

	a.Swap(c)
	require.True(t, Equal(a, b))
	require.True(t, Equal(c, d))
}

func TestGrowableStack_Equal(t *testing.T) {
	x := NewFromSlice([]int{1, 2, 3})
	y := NewFromSlice([]int{1, 2, 3})
	z := NewFromSlice([]int{4, 5, 6})

	require.True(t, Equal(x, y))
	require.True(t, Equal(x, x))
	require.False(t, NotEqual(x, y))
	require.True(t, NotEqual(x, z))
	require.False(t, Equal(x, NewFromSlice([]int{1, 2})))

	// stale elements above the top are ignored
	y.Push(4)
	y.Pop()
	x.Push(5)
	x.Pop()
	require.True(t, Equal(x, y))

	require.True(t, Equal(New[int](), NewFromSlice[int](nil)))

	require.True(t, EqualFunc(NewFromSlice([]string{"a", "B"}), NewFromSlice([]string{"A", "b"}), strings.EqualFold))
}

func TestGrowableStack_Ordering(t *testing.T) {
	x := NewFromSlice([]int{1, 2, 3})
	y := NewFromSlice([]int{4, 5, 6})

	require.True(t, Less(x, y))
	require.True(t, Greater(y, x))
	require.True(t, LessOrEqual(x, y))
	require.True(t, GreaterOrEqual(y, x))
	require.False(t, Less(y, x))
	require.False(t, Greater(x, y))

	same := x.Clone()
	require.True(t, LessOrEqual(x, same))
	require.True(t, GreaterOrEqual(same, x))
	require.False(t, Less(x, x), "strict ordering is irreflexive")
	require.False(t, Greater(x, x), "strict ordering is irreflexive")
}

func TestGrowableStack_OrderingIsElementwiseDominance(t *testing.T) {
	for _, test := range []struct {
		a, b []int
		less bool
	}{
		{a: []int{1, 2}, b: []int{2, 3, 4}, less: true},
		{a: []int{1, 2}, b: []int{1, 2, 3}, less: false},
		{a: []int{2}, b: []int{1, 9}, less: false},
		{a: []int{1, 2, 3}, b: []int{2, 3}, less: false},
		{a: []int{1, 9}, b: []int{2, 3}, less: false},
		{a: []int{}, b: []int{1}, less: true},
		{a: []int{1}, b: []int{}, less: false},
		// the empty stack is dominated by every stack, including itself
		{a: []int{}, b: []int{}, less: true},
	} {
		a, b := NewFromSlice(test.a), NewFromSlice(test.b)
		require.Equal(t, test.less, Less(a, b), "%v < %v", test.a, test.b)
		require.Equal(t, test.less, Greater(b, a), "%v > %v", test.b, test.a)
		require.Equal(t, !test.less, GreaterOrEqual(a, b), "%v >= %v", test.a, test.b)
		require.Equal(t, !test.less, LessOrEqual(b, a), "%v <= %v", test.b, test.a)
	}

	require.True(t, Less(NewFromSlice([]string{"a", "b"}), NewFromSlice([]string{"b", "c"})))

	type version struct{ major int }
	byMajor := func(a, b version) bool { return a.major < b.major }
	require.True(t, LessFunc(NewFromSlice([]version{{1}}), NewFromSlice([]version{{2}, {0}}), byMajor))
	require.False(t, LessFunc(NewFromSlice([]version{{2}}), NewFromSlice([]version{{1}, {9}}), byMajor))
}

func TestGrowableStack_String(t *testing.T) {
	stack := NewFromSlice([]int{1, 2, 3})

	require.Contains(t, stack.String(), "GrowableStack")
	require.Contains(t, stack.String(), "size: 3")
}
