package core

import "errors"

var (
	// ErrConfig reports invalid dimensions, thread counts or generation
	// counts detected before the run starts.
	ErrConfig = errors.New("config error")
	// ErrAllocation reports a board that cannot be reserved.
	ErrAllocation = errors.New("allocation error")
	// ErrMalformedInput reports an unreadable or short initial-state source.
	ErrMalformedInput = errors.New("malformed input")
	// ErrSynchronization reports a broken barrier during the run.
	ErrSynchronization = errors.New("synchronization error")
	// ErrAborted reports that the user stopped the run.
	ErrAborted = errors.New("aborted")
)
