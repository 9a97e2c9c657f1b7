package gridmap

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/rayannott/flipmap/internal/integrators"
	"github.com/rayannott/flipmap/internal/pendulum"
)

// DefaultWorkers is the worker-pool size used when none is configured.
const DefaultWorkers = 4

// Parameter errors reported before any work starts.
var (
	ErrResolution = errors.New("gridmap: resolution must be at least 2")
	ErrWorkers    = errors.New("gridmap: worker count must be positive")
)

// Builder computes flip-count maps. The zero value is not usable; call
// NewBuilder. A Builder may be reused, but each Build call creates and
// tears down its own worker pool.
type Builder struct {
	// Workers is the pool size for the parallel Build.
	Workers int

	// Tol is the solver tolerance passed to the cell evaluator.
	Tol float64

	// Cell evaluates one grid cell. Defaults to EvaluateWith; tests
	// substitute stubs here.
	Cell CellFunc

	// Progress, when set, is called with the row index after each
	// completed row. During parallel builds it is invoked from worker
	// goroutines and must be safe for concurrent use.
	Progress func(row int)
}

func NewBuilder() *Builder {
	b := &Builder{
		Workers: DefaultWorkers,
		Tol:     integrators.DefaultTolerance,
	}
	b.Cell = func(t1, t2 float64, cnst pendulum.Constants) (int, error) {
		return EvaluateWith(t1, t2, cnst, b.Tol)
	}
	return b
}

func (b *Builder) validate(n int, cnst pendulum.Constants) error {
	if n < 2 {
		return ErrResolution
	}
	if b.Workers < 1 {
		return ErrWorkers
	}
	return cnst.Validate()
}

func (b *Builder) fillRow(ctx context.Context, theta1 float64, theta2s []float64, cnst pendulum.Constants) ([]int, error) {
	row := make([]int, len(theta2s))
	for j, theta2 := range theta2s {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		count, err := b.Cell(theta1, theta2, cnst)
		if err != nil {
			return nil, err
		}
		row[j] = count
	}
	return row, nil
}

// BuildSequential fills the map row by row in index order.
func (b *Builder) BuildSequential(ctx context.Context, n int, cnst pendulum.Constants) (*Map, error) {
	if err := b.validate(n, cnst); err != nil {
		return nil, err
	}

	theta1s := Theta1s(n)
	theta2s := Theta2s(n)

	m := newMap(n)
	for i, theta1 := range theta1s {
		row, err := b.fillRow(ctx, theta1, theta2s, cnst)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		copy(m.Row(i), row)
		if b.Progress != nil {
			b.Progress(i)
		}
	}
	return m, nil
}

type rowResult struct {
	index  int
	counts []int
}

// Build fills the map using a pool of Workers goroutines, one row per
// dispatch. Rows are collected in completion order and reassembled by row
// index, so the result is identical to BuildSequential cell for cell. Any
// row failure aborts the whole build; no partial map is ever returned.
func (b *Builder) Build(ctx context.Context, n int, cnst pendulum.Constants) (*Map, error) {
	if err := b.validate(n, cnst); err != nil {
		return nil, err
	}

	workers := b.Workers
	if workers > n {
		workers = n
	}

	theta1s := Theta1s(n)
	theta2s := Theta2s(n)

	jobs := make(chan int)
	results := make(chan rowResult, n)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(jobs)
		for i := 0; i < n; i++ {
			select {
			case jobs <- i:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})

	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for i := range jobs {
				row, err := b.fillRow(gctx, theta1s[i], theta2s, cnst)
				if err != nil {
					return fmt.Errorf("row %d: %w", i, err)
				}
				results <- rowResult{index: i, counts: row}
				if b.Progress != nil {
					b.Progress(i)
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	close(results)

	collected := make([]rowResult, 0, n)
	for r := range results {
		collected = append(collected, r)
	}
	sort.Slice(collected, func(a, c int) bool {
		return collected[a].index < collected[c].index
	})

	m := newMap(n)
	for _, r := range collected {
		copy(m.Row(r.index), r.counts)
	}
	return m, nil
}
