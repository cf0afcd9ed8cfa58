// Package engine advances a board for a fixed number of generations on a
// pool of workers that meet twice per generation on a cyclic barrier.
package engine

import (
	"fmt"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"golpt/internal/barrier"
	"golpt/internal/core"
	"golpt/internal/grid"
	"golpt/internal/partition"
)

// DefaultGenerations is the number of generations a run performs unless
// configured otherwise.
const DefaultGenerations = 100

// Options configures a run.
type Options struct {
	Workers     int
	Generations int
	Interval    time.Duration

	// Gate is consulted once, after the initial frame. Nil starts at once.
	Gate core.Gate
	// Logger receives pool lifecycle messages. Nil disables logging.
	Logger *log.Logger
}

// Result summarises a completed run.
type Result struct {
	Generations int
	Frames      int
	Elapsed     time.Duration
	Population  int
}

// Engine holds everything shared by the workers of one run.
type Engine struct {
	store   *grid.Store
	sink    core.Sink
	gate    core.Gate
	pacer   *core.Pacer
	barrier *barrier.Barrier
	logger  *log.Logger

	generations int
	workers     []*worker

	// Written by the publisher only, between barrier phases.
	frames  int
	applied int
}

// New partitions the board and prepares a run. The store must already hold
// the initial state; New copies its border into the next board.
func New(store *grid.Store, sink core.Sink, opts Options) (*Engine, error) {
	if sink == nil {
		return nil, fmt.Errorf("%w: no frame sink", core.ErrConfig)
	}
	if opts.Generations < 0 {
		return nil, fmt.Errorf("%w: generations must not be negative, got %d", core.ErrConfig, opts.Generations)
	}
	size := store.Size()
	if size.W < 3 {
		return nil, fmt.Errorf("%w: width %d leaves no interior columns", core.ErrConfig, size.W)
	}
	ranges, err := partition.Partition(size.H, opts.Workers)
	if err != nil {
		return nil, err
	}
	b, err := barrier.New(opts.Workers)
	if err != nil {
		return nil, err
	}
	gate := opts.Gate
	if gate == nil {
		gate = core.GateFunc(func() error { return nil })
	}

	store.CopyBorder()
	e := &Engine{
		store:       store,
		sink:        sink,
		gate:        gate,
		pacer:       core.NewPacer(opts.Interval),
		barrier:     b,
		logger:      opts.Logger,
		generations: opts.Generations,
		workers:     make([]*worker, len(ranges)),
	}
	for i, r := range ranges {
		e.workers[i] = &worker{id: i, rows: r, engine: e}
	}
	return e, nil
}

// Pacer exposes the publisher's pacer so callers can replace its sleep.
func (e *Engine) Pacer() *core.Pacer { return e.pacer }

// Ranges returns the rows assigned to each worker.
func (e *Engine) Ranges() []partition.Range {
	out := make([]partition.Range, len(e.workers))
	for i, w := range e.workers {
		out[i] = w.rows
	}
	return out
}

// States returns a snapshot of every worker's state. It is safe to call
// while the run is in progress.
func (e *Engine) States() []State {
	out := make([]State, len(e.workers))
	for i, w := range e.workers {
		out[i] = w.State()
	}
	return out
}

// Run starts one goroutine per worker and blocks until all of them finish.
// The first worker error breaks the barrier, which releases every other
// worker, and is returned.
func (e *Engine) Run() (Result, error) {
	start := time.Now()
	e.logf("starting %d workers for %d generations on %dx%d", len(e.workers), e.generations, e.store.Size().W, e.store.Size().H)

	var g errgroup.Group
	for _, w := range e.workers {
		g.Go(func() error {
			if err := w.run(); err != nil {
				e.barrier.Break(err)
				return err
			}
			return nil
		})
	}
	err := g.Wait()

	res := Result{
		Generations: e.applied,
		Frames:      e.frames,
		Elapsed:     time.Since(start),
		Population:  e.store.Current().Population(),
	}
	if err != nil {
		e.logf("run stopped after %d generations: %v", e.applied, err)
		return res, err
	}
	return res, nil
}

func (e *Engine) logf(format string, args ...any) {
	if e.logger != nil {
		e.logger.Printf(format, args...)
	}
}
