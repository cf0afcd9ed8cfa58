package core

import "time"

// Size describes the dimensions of a board.
type Size struct {
	W int
	H int
}

// Frame is a snapshot handed to a Sink by the publishing worker.
//
// Board is the current buffer of the run and is only valid for the duration
// of the Sink call. Generation 0 is the initial state; generation N >= 1 is
// the board after N rule applications.
type Frame struct {
	Generation int
	Board      *Board
	Interval   time.Duration
}

// Initial reports whether the frame shows the board before any round ran.
func (f Frame) Initial() bool { return f.Generation == 0 }

// Sink renders frames. It is only ever called from one goroutine at a time.
type Sink interface {
	Frame(f Frame) error
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(f Frame) error

// Frame calls fn(f).
func (fn SinkFunc) Frame(f Frame) error { return fn(f) }

// Gate blocks until the user asks the run to start.
type Gate interface {
	WaitContinue() error
}

// GateFunc adapts a function to the Gate interface.
type GateFunc func() error

// WaitContinue calls fn().
func (fn GateFunc) WaitContinue() error { return fn() }
