package bench

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"
)

// Reporter receives the counters of a finished run
type Reporter interface {
	Report(Result) error
}

// TextReporter writes one "name = value" line per counter, followed by a blank line
type TextReporter struct {
	W io.Writer
}

func (r TextReporter) Report(res Result) error {
	_, err := fmt.Fprintf(r.W, "strategy = %v\nframe_time = %g\nfps = %g\nsize = %d\ncollisions = %d\npair_tests = %d\n",
		res.Strategy, res.FrameTime().Seconds(), res.FPS(), res.Entities, res.Collisions, res.PairTests)
	if err != nil {
		return err
	}
	if res.Strategy == Grid {
		_, err = fmt.Fprintf(r.W, "cells = %d\ncells_occupied = %d\nnodes = %d\nmax_occupancy = %d\n",
			res.Grid.Cells, res.Grid.CellsOccupied, res.Grid.Nodes, res.Grid.MaxOccupancy)
		if err != nil {
			return err
		}
	}
	_, err = fmt.Fprintln(r.W)
	return err
}

// LogReporter logs the counters as one structured entry
type LogReporter struct {
	Log *zap.Logger
}

func (r LogReporter) Report(res Result) error {
	fields := []zap.Field{
		zap.Stringer("strategy", res.Strategy),
		zap.Int("entities", res.Entities),
		zap.Int("ticks", res.Ticks),
		zap.Int("collisions", res.Collisions),
		zap.Int("pair_tests", res.PairTests),
		zap.Duration("frame_time", res.FrameTime()),
		zap.Float64("fps", res.FPS()),
	}
	if res.Strategy == Grid {
		fields = append(fields,
			zap.Int("cells", res.Grid.Cells),
			zap.Int("nodes", res.Grid.Nodes),
			zap.Int("max_occupancy", res.Grid.MaxOccupancy),
		)
	}
	r.Log.Info("run complete", fields...)
	return nil
}

// Reporters fans a result out to several reporters
type Reporters []Reporter

func (rs Reporters) Report(res Result) error {
	var errs []error
	for _, r := range rs {
		if err := r.Report(res); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
