// Package barrier provides a reusable rendezvous point for a fixed number of
// goroutines that elects one leader per round.
package barrier

import (
	"fmt"
	"sync"

	"golpt/internal/core"
)

// Barrier blocks callers of Wait until parties of them have arrived, then
// releases them all and starts a new round. The last caller to arrive in a
// round is its leader.
type Barrier struct {
	mu      sync.Mutex
	cond    *sync.Cond
	parties int
	waiting int
	round   uint64
	broken  error
}

// New returns a barrier for the given number of parties.
func New(parties int) (*Barrier, error) {
	if parties < 1 {
		return nil, fmt.Errorf("%w: barrier needs at least one party, got %d", core.ErrConfig, parties)
	}
	b := &Barrier{parties: parties}
	b.cond = sync.NewCond(&b.mu)
	return b, nil
}

// Parties returns the number of goroutines each round waits for.
func (b *Barrier) Parties() int { return b.parties }

// Wait blocks until every party has called Wait for the current round.
// Exactly one caller per round gets leader == true. Once the barrier is
// broken every pending and future call returns an error wrapping
// core.ErrSynchronization.
func (b *Barrier) Wait() (leader bool, err error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.broken != nil {
		return false, b.broken
	}
	round := b.round
	b.waiting++
	if b.waiting == b.parties {
		b.waiting = 0
		b.round++
		b.cond.Broadcast()
		return true, nil
	}
	for round == b.round && b.broken == nil {
		b.cond.Wait()
	}
	if round == b.round {
		return false, b.broken
	}
	return false, nil
}

// Break marks the barrier unusable and wakes every waiter. Only the first
// cause is kept.
func (b *Barrier) Break(cause error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.broken != nil {
		return
	}
	if cause == nil {
		b.broken = core.ErrSynchronization
	} else {
		b.broken = fmt.Errorf("%w: %w", core.ErrSynchronization, cause)
	}
	b.cond.Broadcast()
}

// Broken reports whether Break has been called.
func (b *Barrier) Broken() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.broken != nil
}
