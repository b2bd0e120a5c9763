// Command growthbench measures how the growth factor of the stacks of package stack affects the time and the amount
// of reallocations needed to push a fixed amount of elements.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	flag "github.com/spf13/pflag"

	"github.com/iotaledger/growstack/internal/bench"
	"github.com/iotaledger/growstack/internal/config"
	"github.com/iotaledger/growstack/internal/report"
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/log"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		if ierrors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}

		_, _ = fmt.Fprintf(os.Stderr, "growthbench: %s\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.Load(args)
	if err != nil {
		return err
	}

	level, err := log.LevelFromString(cfg.Log.Level)
	if err != nil {
		return ierrors.Wrap(err, "invalid log level")
	}

	logger := log.NewLogger(log.WithName("growthbench"), log.WithLevel(level))

	factors, err := cfg.Factors()
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	runner := bench.NewRunner(logger,
		bench.WithGrowthFactors(factors...),
		bench.WithPushes(cfg.Pushes),
		bench.WithRounds(cfg.Rounds),
		bench.WithWorkers(cfg.Workers),
		bench.WithBaselines(cfg.Baselines),
	)

	logger.LogInfo("running benchmark", "cases", len(runner.Cases()), "pushes", cfg.Pushes, "rounds", cfg.Rounds, "workers", cfg.Workers)

	results, err := runner.Run(ctx)
	if err != nil {
		return err
	}

	if err := report.Print(os.Stdout, results); err != nil {
		return err
	}

	if cfg.Report.Path == "" {
		return nil
	}

	var format report.Format
	if cfg.Report.Format != "" {
		if format, err = report.ParseFormat(cfg.Report.Format); err != nil {
			return err
		}
	}

	if err := report.WriteFile(cfg.Report.Path, format, results); err != nil {
		return err
	}

	logger.LogInfo("report written", "path", cfg.Report.Path)

	return nil
}
