package sink

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"golpt/internal/core"
	"golpt/internal/render"
)

// Screen draws frames on a full-screen terminal through tcell and doubles as
// the start gate.
type Screen struct {
	screen tcell.Screen
	alive  tcell.Style
	dead   tcell.Style
	text   tcell.Style
}

// NewScreen opens the terminal. Callers must Close it.
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating screen: %w", err)
	}
	return NewScreenFrom(s)
}

// NewScreenFrom initialises s and wraps it.
func NewScreenFrom(s tcell.Screen) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("initializing screen: %w", err)
	}
	s.Clear()
	return &Screen{
		screen: s,
		alive:  tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorGreen),
		dead:   tcell.StyleDefault,
		text:   tcell.StyleDefault.Foreground(tcell.ColorYellow),
	}, nil
}

// Close restores the terminal.
func (s *Screen) Close() { s.screen.Fini() }

// Frame implements core.Sink.
func (s *Screen) Frame(f core.Frame) error {
	s.screen.Clear()
	b := f.Board
	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			if b.At(x, y) != core.Dead {
				s.screen.SetContent(x, y, 'x', nil, s.alive)
			} else {
				s.screen.SetContent(x, y, ' ', nil, s.dead)
			}
		}
	}
	for i, line := range render.Banner(f) {
		col := 0
		for _, r := range line {
			if r == '\t' {
				col += 8 - col%8
				continue
			}
			s.screen.SetContent(col, b.H+i, r, nil, s.text)
			col++
		}
	}
	s.screen.Show()
	return nil
}

// WaitContinue implements core.Gate. Enter starts the run; Escape, q or
// Ctrl-C aborts it.
func (s *Screen) WaitContinue() error {
	for {
		switch ev := s.screen.PollEvent().(type) {
		case nil:
			return fmt.Errorf("%w: screen closed", core.ErrAborted)
		case *tcell.EventResize:
			s.screen.Sync()
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEnter:
				return nil
			case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC, ev.Rune() == 'q':
				return core.ErrAborted
			}
		}
	}
}
