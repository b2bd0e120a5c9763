package stack

import (
	"container/list"
	"fmt"
	"testing"

	"github.com/emirpasic/gods/stacks/arraystack"
)

const benchmarkPushes = 100_000

// growthFactorRange mirrors the factors 1.1, 1.2, ..., 2.0 of the growth factor benchmark.
func growthFactorRange() []float32 {
	factors := make([]float32, 0, 10)
	for step := 1; step <= 10; step++ {
		factors = append(factors, 1+float32(step)/10)
	}

	return factors
}

func BenchmarkList(b *testing.B) {
	for i := 0; i < b.N; i++ {
		stack := list.New()
		for range benchmarkPushes {
			stack.PushBack(1)
		}
	}
}

func BenchmarkArrayStack(b *testing.B) {
	for i := 0; i < b.N; i++ {
		stack := arraystack.New()
		for range benchmarkPushes {
			stack.Push(1)
		}
	}
}

func BenchmarkGrowableStack_Push(b *testing.B) {
	for _, growthFactor := range growthFactorRange() {
		b.Run(fmt.Sprintf("factor=%.1f", growthFactor), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				stack := New[uint](WithGrowthFactor(growthFactor))
				for range benchmarkPushes {
					stack.Push(1)
				}
			}
		})
	}
}

func BenchmarkBoolStack_Push(b *testing.B) {
	for _, growthFactor := range growthFactorRange() {
		b.Run(fmt.Sprintf("factor=%.1f", growthFactor), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				stack := NewBoolStack(WithGrowthFactor(growthFactor))
				for range benchmarkPushes {
					stack.Push(true)
				}
			}
		})
	}
}
