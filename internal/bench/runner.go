// Package bench measures how the growth factor of the containers of package stack affects the time and the amount
// of reallocations needed to push a fixed amount of elements.
package bench

import (
	"context"
	"time"

	"github.com/iotaledger/growstack/stack"
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/log"
	"github.com/iotaledger/hive.go/runtime/options"
)

// Result is the outcome of all rounds of a Case.
type Result struct {
	Case         string  `json:"case" yaml:"case" toml:"case"`
	GrowthFactor float32 `json:"growthFactor,omitempty" yaml:"growthFactor,omitempty" toml:"growthFactor,omitempty"`
	Pushes       int     `json:"pushes" yaml:"pushes" toml:"pushes"`
	Rounds       int     `json:"rounds" yaml:"rounds" toml:"rounds"`
	// Reallocations is the amount of reallocations of a single round.
	Reallocations int64 `json:"reallocations" yaml:"reallocations" toml:"reallocations"`
	FinalCapacity int   `json:"finalCapacity" yaml:"finalCapacity" toml:"finalCapacity"`
	// TotalNanoseconds is the time spent in all rounds.
	TotalNanoseconds int64 `json:"totalNs" yaml:"totalNs" toml:"totalNs"`
	// NanosecondsPerRound is the average time of a single round.
	NanosecondsPerRound int64 `json:"nsPerRound" yaml:"nsPerRound" toml:"nsPerRound"`
}

// Runner executes the benchmark cases on a worker pool.
type Runner struct {
	// GrowthFactors are the growth factors every container of package stack is benchmarked with.
	GrowthFactors []float32
	// Pushes is the amount of elements pushed in every round.
	Pushes int
	// Rounds is the amount of repetitions of every case.
	Rounds int
	// Workers is the amount of cases that run in parallel.
	Workers int
	// Baselines adds the cases of containers from outside of package stack.
	Baselines bool

	logger log.Logger
}

// NewRunner creates a new Runner.
func NewRunner(logger log.Logger, opts ...options.Option[Runner]) *Runner {
	return options.Apply(&Runner{
		GrowthFactors: []float32{stack.DefaultGrowthFactor},
		Pushes:        100_000,
		Rounds:        1,
		Workers:       1,
		Baselines:     true,
		logger:        logger,
	}, opts)
}

// Cases returns the cases of this Runner in the order their results are reported.
func (r *Runner) Cases() []*Case {
	cases := make([]*Case, 0, 2*len(r.GrowthFactors)+2)
	for _, growthFactor := range r.GrowthFactors {
		cases = append(cases, NewGrowableStackCase(growthFactor))
	}
	for _, growthFactor := range r.GrowthFactors {
		cases = append(cases, NewBoolStackCase(growthFactor))
	}

	if r.Baselines {
		cases = append(cases, NewArrayStackCase(), NewListCase())
	}

	return cases
}

// Run executes all cases and returns their results in the order of Cases. Once the context is canceled, running cases
// stop after their current round, the remaining ones are skipped and the context error is returned.
func (r *Runner) Run(ctx context.Context) ([]*Result, error) {
	if r.Pushes <= 0 || r.Rounds <= 0 {
		return nil, ierrors.Errorf("pushes (%d) and rounds (%d) must be positive", r.Pushes, r.Rounds)
	}

	workerPool, err := NewWorkerPool(r.Workers)
	if err != nil {
		return nil, err
	}
	defer workerPool.Shutdown()

	cases := r.Cases()
	results := make([]*Result, len(cases))

	for i, benchCase := range cases {
		if ctx.Err() != nil {
			break
		}

		if err := workerPool.Submit(func() {
			result, err := r.runCase(ctx, benchCase)
			if err != nil {
				r.logger.LogDebug("case interrupted", "case", benchCase.ID())

				return
			}

			results[i] = result

			r.logger.LogDebug("case done", "case", benchCase.ID(), "reallocations", result.Reallocations, "nsPerRound", result.NanosecondsPerRound)
		}); err != nil {
			return nil, err
		}
	}

	if err := workerPool.Wait(); err != nil {
		return nil, ierrors.Wrap(err, "benchmark case failed")
	}

	if err := ctx.Err(); err != nil {
		return nil, ierrors.Wrap(err, "benchmark interrupted")
	}

	return results, nil
}

// runCase executes all rounds of the given Case. The growth hook runs on the goroutine of the case, so the counter
// needs no synchronization.
func (r *Runner) runCase(ctx context.Context, benchCase *Case) (*Result, error) {
	var reallocations int64
	onGrowth := func(_, _ int) {
		reallocations++
	}

	var finalCapacity int
	start := time.Now()
	for range r.Rounds {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		finalCapacity = benchCase.fill(r.Pushes, onGrowth)
	}
	elapsed := time.Since(start)

	return &Result{
		Case:                benchCase.Name,
		GrowthFactor:        benchCase.GrowthFactor,
		Pushes:              r.Pushes,
		Rounds:              r.Rounds,
		Reallocations:       reallocations / int64(r.Rounds),
		FinalCapacity:       finalCapacity,
		TotalNanoseconds:    elapsed.Nanoseconds(),
		NanosecondsPerRound: elapsed.Nanoseconds() / int64(r.Rounds),
	}, nil
}

// WithGrowthFactors sets the growth factors the containers of package stack are benchmarked with.
func WithGrowthFactors(growthFactors ...float32) options.Option[Runner] {
	return func(r *Runner) {
		r.GrowthFactors = growthFactors
	}
}

// WithPushes sets the amount of elements pushed in every round.
func WithPushes(pushes int) options.Option[Runner] {
	return func(r *Runner) {
		r.Pushes = pushes
	}
}

// WithRounds sets the amount of repetitions of every case.
func WithRounds(rounds int) options.Option[Runner] {
	return func(r *Runner) {
		r.Rounds = rounds
	}
}

// WithWorkers sets the amount of cases that run in parallel.
func WithWorkers(workers int) options.Option[Runner] {
	return func(r *Runner) {
		r.Workers = workers
	}
}

// WithBaselines enables or disables the baseline cases.
func WithBaselines(baselines bool) options.Option[Runner] {
	return func(r *Runner) {
		r.Baselines = baselines
	}
}
