//go:build ebiten

package app

import (
	"errors"
	"fmt"
	"image/color"
	"sync"

	"golpt/internal/core"
	"golpt/internal/render"
	"golpt/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// bannerLines reserves room under the board for the banner text.
const bannerLines = 3

// Window shows frames in an ebiten window and acts as the start gate.
// Frame and WaitContinue are called from the publishing worker while
// Update and Draw run on the ebiten loop.
type Window struct {
	size    core.Size
	scale   int
	painter *render.GridPainter
	banner  *ui.Banner

	mu     sync.Mutex
	cells  []uint8
	lines  []string
	closed bool

	start     chan struct{}
	startOnce sync.Once
	quit      chan struct{}
	quitOnce  sync.Once
}

// NewWindow constructs a Window for a board of the given size.
func NewWindow(size core.Size, scale int) (*Window, error) {
	if scale < 1 {
		scale = 1
	}
	return &Window{
		size:    size,
		scale:   scale,
		painter: render.NewGridPainter(size.W, size.H, render.NewPalette(color.White, color.Black)),
		banner:  ui.NewBanner(),
		cells:   make([]uint8, size.W*size.H),
		start:   make(chan struct{}),
		quit:    make(chan struct{}),
	}, nil
}

// Frame implements core.Sink. Once the window has been closed every frame
// fails with core.ErrAborted.
func (w *Window) Frame(f core.Frame) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return fmt.Errorf("%w: window closed", core.ErrAborted)
	}
	copy(w.cells, f.Board.Cells())
	w.lines = render.Banner(f)
	return nil
}

// WaitContinue implements core.Gate.
func (w *Window) WaitContinue() error {
	select {
	case <-w.start:
		return nil
	case <-w.quit:
		return fmt.Errorf("%w: window closed", core.ErrAborted)
	}
}

// Close stops the ebiten loop.
func (w *Window) Close() {
	w.quitOnce.Do(func() { close(w.quit) })
}

// Run executes job in the background and drives the window on the calling
// goroutine until the user closes it or job returns. The job error wins over
// window errors.
func (w *Window) Run(title string, job func() error) error {
	done := make(chan error, 1)
	go func() {
		err := job()
		w.Close()
		done <- err
	}()

	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(w.size.W*w.scale, w.size.H*w.scale+bannerLines*ui.LineHeight)
	runErr := ebiten.RunGame(w)

	w.mu.Lock()
	w.closed = true
	w.mu.Unlock()
	w.Close()

	if err := <-done; err != nil {
		return err
	}
	if runErr != nil && !errors.Is(runErr, ebiten.Termination) {
		return runErr
	}
	return nil
}

// Update handles per-frame input.
func (w *Window) Update() error {
	select {
	case <-w.quit:
		return ebiten.Termination
	default:
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		w.startOnce.Do(func() { close(w.start) })
	}
	return nil
}

// Draw renders the latest frame.
func (w *Window) Draw(screen *ebiten.Image) {
	w.mu.Lock()
	w.painter.Blit(screen, w.cells, w.scale)
	w.banner.SetLines(w.lines)
	w.mu.Unlock()
	w.banner.Draw(screen, w.size.H*w.scale)
}

// Layout returns the logical screen size.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return w.size.W * w.scale, w.size.H*w.scale + bannerLines*ui.LineHeight
}
