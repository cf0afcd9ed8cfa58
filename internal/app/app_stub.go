//go:build !ebiten

package app

import (
	"errors"

	"golpt/internal/core"
)

// ErrNoWindow reports a headless build.
var ErrNoWindow = errors.New("the window sink requires building with the 'ebiten' tag")

// Window is a placeholder that satisfies the API expected by the GUI build.
type Window struct{}

// NewWindow always fails in the headless build.
func NewWindow(core.Size, int) (*Window, error) { return nil, ErrNoWindow }

// Frame always reports that the GUI build tag is missing.
func (w *Window) Frame(core.Frame) error { return ErrNoWindow }

// WaitContinue always reports that the GUI build tag is missing.
func (w *Window) WaitContinue() error { return ErrNoWindow }

// Close is a no-op placeholder.
func (w *Window) Close() {}

// Run always reports that the GUI build tag is missing.
func (w *Window) Run(string, func() error) error { return ErrNoWindow }
