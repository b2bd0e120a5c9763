package stack

import (
	"math"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/runtime/options"
)

const (
	// DefaultGrowthFactor is the growth factor used if no WithGrowthFactor option is given.
	DefaultGrowthFactor float32 = 1.5

	// DefaultCapacity is the amount of slots (or chunks for a BoolStack) allocated by the constructors.
	DefaultCapacity = 32
)

// Options contains the configuration options of a GrowableStack or a BoolStack.
type Options struct {
	// GrowthFactor is the multiplier applied to the capacity when a full stack grows.
	GrowthFactor float32

	// InitialCapacity is the amount of slots (or chunks for a BoolStack) allocated on construction.
	InitialCapacity int

	// GrowthHook is called after every reallocation with the old and the new capacity.
	GrowthHook func(oldCapacity, newCapacity int)
}

// WithGrowthFactor is an option to set the growth factor of a stack. The factor must be finite and at least 1.
func WithGrowthFactor(growthFactor float32) options.Option[Options] {
	return func(opts *Options) {
		opts.GrowthFactor = growthFactor
	}
}

// WithInitialCapacity is an option to set the amount of storage that is allocated on construction.
func WithInitialCapacity(capacity int) options.Option[Options] {
	return func(opts *Options) {
		opts.InitialCapacity = capacity
	}
}

// WithGrowthHook is an option to register a callback that is triggered whenever the storage of a stack is reallocated.
func WithGrowthHook(hook func(oldCapacity, newCapacity int)) options.Option[Options] {
	return func(opts *Options) {
		opts.GrowthHook = hook
	}
}

// newOptions applies the given options on top of the defaults and panics if the result is unusable.
func newOptions(opts ...options.Option[Options]) *Options {
	return options.Apply(&Options{
		GrowthFactor:    DefaultGrowthFactor,
		InitialCapacity: DefaultCapacity,
	}, opts, func(o *Options) {
		if err := o.validate(); err != nil {
			panic(err)
		}
	})
}

func (o *Options) validate() error {
	if math.IsNaN(float64(o.GrowthFactor)) || math.IsInf(float64(o.GrowthFactor), 0) || o.GrowthFactor < 1 {
		return ierrors.Wrapf(ErrInvalidGrowthFactor, "growth factor %v must be a finite number >= 1", o.GrowthFactor)
	}

	if o.InitialCapacity < 0 {
		return ierrors.Wrapf(ErrInvalidCapacity, "initial capacity %d must not be negative", o.InitialCapacity)
	}

	return nil
}

// grownCapacity returns the capacity that follows the given one: floor(capacity * growthFactor) + 1, evaluated in
// single precision. Capacities beyond the float32 mantissa still grow by at least one slot.
func grownCapacity(capacity int, growthFactor float32) int {
	// the conversions round every step to float32 and prevent a fused multiply-add
	grown := int(float32(float32(capacity)*growthFactor) + 1)
	if grown <= capacity {
		return capacity + 1
	}

	return grown
}
