package core

import "time"

// DefaultInterval is the pause between two published rounds.
const DefaultInterval = 500 * time.Millisecond

// Pacer holds the publisher back for a fixed interval after each frame.
type Pacer struct {
	interval time.Duration
	sleep    func(time.Duration)
	waits    int
}

// NewPacer constructs a Pacer sleeping for interval. A non-positive interval
// disables pacing.
func NewPacer(interval time.Duration) *Pacer {
	if interval < 0 {
		interval = 0
	}
	return &Pacer{interval: interval, sleep: time.Sleep}
}

// SetSleep replaces the sleep function, mainly for tests.
func (p *Pacer) SetSleep(fn func(time.Duration)) {
	if fn == nil {
		fn = time.Sleep
	}
	p.sleep = fn
}

// Interval returns the configured pause.
func (p *Pacer) Interval() time.Duration { return p.interval }

// Waits reports how many times Wait has been called.
func (p *Pacer) Waits() int { return p.waits }

// Wait blocks for the configured interval. It is called by one goroutine at a
// time, between barrier phases.
func (p *Pacer) Wait() {
	p.waits++
	if p.interval > 0 {
		p.sleep(p.interval)
	}
}
