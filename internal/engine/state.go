package engine

import "fmt"

// State is the position of a worker in its per-generation cycle.
type State int32

const (
	Idle State = iota
	Computing
	AwaitingSwapBarrier
	AwaitingResumeBarrier
	Done
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Computing:
		return "computing"
	case AwaitingSwapBarrier:
		return "awaiting-swap"
	case AwaitingResumeBarrier:
		return "awaiting-resume"
	case Done:
		return "done"
	default:
		return fmt.Sprintf("State(%d)", int32(s))
	}
}
