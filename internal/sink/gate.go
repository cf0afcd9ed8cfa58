package sink

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"golpt/internal/core"
)

// LineGate waits for one line of input, typically ENTER on stdin.
type LineGate struct {
	r *bufio.Reader
}

// NewLineGate returns a gate reading from r.
func NewLineGate(r io.Reader) *LineGate {
	return &LineGate{r: bufio.NewReader(r)}
}

// WaitContinue implements core.Gate. A closed input counts as a go-ahead so
// runs with redirected stdin do not hang.
func (g *LineGate) WaitContinue() error {
	_, err := g.r.ReadString('\n')
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	return fmt.Errorf("%w: reading start signal: %v", core.ErrAborted, err)
}

// NoGate starts the run without waiting.
var NoGate core.Gate = core.GateFunc(func() error { return nil })
