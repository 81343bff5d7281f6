package bench

import (
	"context"
	"fmt"
	"slices"
	"time"

	aabbgrid "github.com/bmharper/aabbgrid-go"
	"github.com/bmharper/aabbgrid-go/circle"
	"github.com/bmharper/aabbgrid-go/internal/config"
)

type Options struct {
	CellSize float32
	Ticks    int  // Minimum 1
	Resolve  bool // Push overlapping circles apart as they are found, instead of only counting
}

func OptionsFrom(cfg config.BenchConfig) Options {
	return Options{
		CellSize: float32(cfg.CellSize),
		Ticks:    cfg.Ticks,
		Resolve:  cfg.Resolve,
	}
}

// Result holds the counters of one run. Collisions and PairTests are summed over all ticks.
type Result struct {
	Strategy   Strategy
	Entities   int
	Ticks      int
	Collisions int
	PairTests  int // Circle tests performed by the narrow phase
	Elapsed    time.Duration
	Grid       aabbgrid.Stats // Occupancy after the last tick. Zero unless Strategy is Grid.
}

// FrameTime is the average time per tick
func (r Result) FrameTime() time.Duration {
	if r.Ticks <= 0 {
		return r.Elapsed
	}
	return r.Elapsed / time.Duration(r.Ticks)
}

func (r Result) FPS() float64 {
	s := r.FrameTime().Seconds()
	if s == 0 {
		return 0
	}
	return 1 / s
}

// Run drives one broad phase over a private copy of population, so runs never affect each other.
// Each unordered pair of circles reaches the narrow phase at most once per tick.
// ctx is checked once per outer iteration.
func Run(ctx context.Context, strategy Strategy, population []Circle, opts Options) (Result, error) {
	if opts.Ticks < 1 {
		opts.Ticks = 1
	}
	entities := slices.Clone(population)
	np := narrowPhase{resolve: opts.Resolve}
	res := Result{
		Strategy: strategy,
		Entities: len(entities),
		Ticks:    opts.Ticks,
	}

	var tick func(context.Context) error
	switch strategy {
	case AllPairs:
		tick = func(ctx context.Context) error { return allPairs(ctx, entities, &np) }
	case CellNeighbours:
		cellSize := opts.CellSize
		if !(cellSize > 0) {
			cellSize = aabbgrid.DefaultCellSize
		}
		tick = func(ctx context.Context) error { return cellNeighbours(ctx, entities, cellSize, &np) }
	case Grid:
		grid := aabbgrid.NewGrid[float32, int](opts.CellSize)
		tick = func(ctx context.Context) error {
			err := gridPhase(ctx, grid, entities, &np)
			res.Grid = grid.Stats()
			return err
		}
	default:
		return Result{}, fmt.Errorf("run: unknown strategy %v", strategy)
	}

	start := time.Now()
	for i := 0; i < opts.Ticks; i++ {
		if err := tick(ctx); err != nil {
			return Result{}, fmt.Errorf("run %v tick %d: %w", strategy, i, err)
		}
	}
	res.Elapsed = time.Since(start)
	res.Collisions = np.collisions
	res.PairTests = np.tests
	return res, nil
}

type narrowPhase struct {
	resolve    bool
	collisions int
	tests      int
}

func (np *narrowPhase) pair(a, b *Circle) {
	np.tests++
	if np.resolve {
		if circle.Resolve(a, b) {
			np.collisions++
		}
		return
	}
	if _, ok := circle.Overlap(*a, *b); ok {
		np.collisions++
	}
}

func allPairs(ctx context.Context, entities []Circle, np *narrowPhase) error {
	for i := range entities {
		if err := ctx.Err(); err != nil {
			return err
		}
		for j := i + 1; j < len(entities); j++ {
			np.pair(&entities[i], &entities[j])
		}
	}
	return nil
}

func cellNeighbours(ctx context.Context, entities []Circle, cellSize float32, np *narrowPhase) error {
	for i := range entities {
		if err := ctx.Err(); err != nil {
			return err
		}
		ac := aabbgrid.CellOf(entities[i].Center, cellSize)
		for j := i + 1; j < len(entities); j++ {
			bc := aabbgrid.CellOf(entities[j].Center, cellSize)
			if absDiff(ac.X, bc.X) <= 1 && absDiff(ac.Y, bc.Y) <= 1 {
				np.pair(&entities[i], &entities[j])
			}
		}
	}
	return nil
}

func absDiff(a, b int32) int64 {
	d := int64(a) - int64(b)
	if d < 0 {
		return -d
	}
	return d
}

// gridPhase runs one tick: clear, insert everything, then query everything.
// Payloads are indices into entities. A candidate is only tested against
// the querying circle when its index is larger, so each pair is tested once.
func gridPhase(ctx context.Context, grid *aabbgrid.Grid[float32, int], entities []Circle, np *narrowPhase) error {
	grid.Clear()
	for i := range entities {
		grid.Insert(entities[i].Aabb(), i)
	}

	test := func(self, other int) bool {
		if other > self {
			np.pair(&entities[self], &entities[other])
		}
		return true
	}
	for i := range entities {
		if err := ctx.Err(); err != nil {
			return err
		}
		grid.Query(entities[i].Aabb(), test, i)
	}
	return nil
}
