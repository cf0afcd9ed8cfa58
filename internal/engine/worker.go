package engine

import (
	"fmt"
	"sync/atomic"

	"golpt/internal/partition"
	"golpt/internal/rule"
)

type worker struct {
	id     int
	rows   partition.Range
	engine *Engine
	state  atomic.Int32
}

// State returns the worker's current state.
func (w *worker) State() State { return State(w.state.Load()) }

func (w *worker) set(s State) { w.state.Store(int32(s)) }

func (w *worker) run() error {
	e := w.engine
	for gen := 0; gen < e.generations; gen++ {
		w.set(Computing)
		w.compute()

		w.set(AwaitingSwapBarrier)
		leader, err := e.barrier.Wait()
		if err != nil {
			return fmt.Errorf("worker %d, generation %d: %w", w.id, gen, err)
		}
		if leader {
			if err := e.publish(gen); err != nil {
				return err
			}
		}

		w.set(AwaitingResumeBarrier)
		if _, err := e.barrier.Wait(); err != nil {
			return fmt.Errorf("worker %d, generation %d: %w", w.id, gen, err)
		}
	}
	w.set(Done)
	return nil
}

// compute writes the next state of every interior cell in the worker's rows.
func (w *worker) compute() {
	cur := w.engine.store.Current()
	nxt := w.engine.store.Next()
	last := cur.W - 1
	for row := w.rows.Start; row < w.rows.End; row++ {
		out := nxt.Row(row)
		for col := 1; col < last; col++ {
			out[col] = rule.StepCell(cur, row, col)
		}
	}
}
