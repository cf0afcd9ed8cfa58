package engine

import (
	"fmt"

	"golpt/internal/core"
)

// publish runs on the barrier leader while every other worker waits in the
// second barrier phase. On the first generation it shows the initial board
// and waits for the gate before the swap.
func (e *Engine) publish(gen int) error {
	if gen == 0 {
		if err := e.emit(0); err != nil {
			return err
		}
		if err := e.gate.WaitContinue(); err != nil {
			return fmt.Errorf("start gate: %w", err)
		}
	}

	e.store.Swap()
	e.applied++
	if err := e.emit(gen + 1); err != nil {
		return err
	}
	e.pacer.Wait()
	return nil
}

func (e *Engine) emit(gen int) error {
	f := core.Frame{
		Generation: gen,
		Board:      e.store.Current(),
		Interval:   e.pacer.Interval(),
	}
	if err := e.sink.Frame(f); err != nil {
		return fmt.Errorf("frame %d: %w", gen, err)
	}
	e.frames++
	return nil
}
