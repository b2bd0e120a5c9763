package stack

// Stack is the operation set shared by the GrowableStack and the BoolStack.
type Stack[T any] interface {
	// Push pushes an element onto the top of this Stack.
	Push(element T)

	// Pop removes the top element of this Stack. It panics if the Stack is empty.
	Pop()

	// Top returns the top element of this Stack. It panics if the Stack is empty.
	Top() T

	// SetTop overwrites the top element of this Stack. It panics if the Stack is empty.
	SetTop(element T)

	// Peek returns the top element of this Stack and whether the element exists.
	Peek() (T, bool)

	// Clear removes all elements from this Stack without releasing its storage.
	Clear()

	// Size returns the amount of elements in this Stack.
	Size() int

	// IsEmpty checks if this Stack is empty.
	IsEmpty() bool
}
