package main

import (
	"context"
	"fmt"
	"os"

	"github.com/bmharper/aabbgrid-go/internal/bench"
	"github.com/bmharper/aabbgrid-go/internal/config"
	"github.com/bmharper/aabbgrid-go/internal/logging"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Default()
	if p := os.Getenv("AABBGRID_CONFIG"); p != "" {
		loaded, err := config.Load(p)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	log, err := logging.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	strategies, err := bench.ParseStrategies(cfg.Bench.Strategies)
	if err != nil {
		return fmt.Errorf("bench.strategies: %w", err)
	}

	population := bench.Lattice(cfg.Bench.MinEntities, float32(cfg.Bench.Radius), float32(cfg.Bench.Spacing))
	opts := bench.OptionsFrom(cfg.Bench)
	log.Info("population ready",
		zap.Int("entities", len(population)),
		zap.Float64("radius", cfg.Bench.Radius),
		zap.Float64("spacing", cfg.Bench.Spacing),
		zap.Float32("cell_size", opts.CellSize),
		zap.Bool("resolve", opts.Resolve),
	)

	reporter := bench.Reporters{
		bench.TextReporter{W: os.Stdout},
		bench.LogReporter{Log: log},
	}
	ctx := context.Background()
	for _, s := range strategies {
		log.Debug("run start", zap.Stringer("strategy", s))
		res, err := bench.Run(ctx, s, population, opts)
		if err != nil {
			return err
		}
		if err := reporter.Report(res); err != nil {
			return fmt.Errorf("report %v: %w", s, err)
		}
	}
	return nil
}
