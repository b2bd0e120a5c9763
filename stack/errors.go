package stack

import (
	"github.com/iotaledger/hive.go/ierrors"
)

var (
	// ErrEmptyStack is raised when the top of an empty stack is accessed or removed.
	ErrEmptyStack = ierrors.New("stack is empty")
	// ErrInvalidGrowthFactor is raised when a stack is configured with a growth factor that cannot grow the storage.
	ErrInvalidGrowthFactor = ierrors.New("invalid growth factor")
	// ErrInvalidCapacity is raised when a stack is configured with a negative initial capacity.
	ErrInvalidCapacity = ierrors.New("invalid capacity")
)
