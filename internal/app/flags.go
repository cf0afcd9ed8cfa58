package app

import (
	"flag"
	"fmt"
	"io"
	"time"

	"golpt/internal/core"
	"golpt/internal/engine"
	"golpt/internal/grid"
)

// Dimensions used when no -h/-w pair is given.
const (
	DefaultWidth  = 80
	DefaultHeight = 25
)

// Largest custom board that still fits a console.
const (
	MaxWidth  = 100
	MaxHeight = 50
)

// Sink kinds accepted by -sink.
const (
	SinkText   = "text"
	SinkScreen = "tcell"
	SinkWindow = "window"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Threads     int
	Height      int
	Width       int
	File        string
	Help        bool
	Generations int
	Interval    time.Duration
	Seed        int64
	Sink        string
	Clear       bool
	NoWait      bool
	Scale       int

	// Resolved by Validate.
	Mode        grid.FillMode
	FileIgnored bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Threads:     1,
		Generations: engine.DefaultGenerations,
		Interval:    core.DefaultInterval,
		Seed:        42,
		Sink:        SinkText,
		Clear:       true,
		Scale:       8,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Threads, "n", c.Threads, "number of worker threads")
	fs.IntVar(&c.Height, "h", c.Height, "board height (rows)")
	fs.IntVar(&c.Width, "w", c.Width, "board width (columns)")
	fs.StringVar(&c.File, "f", c.File, "initial state file")
	fs.BoolVar(&c.Help, "b", c.Help, "print usage")
	fs.IntVar(&c.Generations, "g", c.Generations, "number of generations")
	fs.DurationVar(&c.Interval, "i", c.Interval, "pause between rounds")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random boards")
	fs.StringVar(&c.Sink, "sink", c.Sink, "frame output: text, tcell or window")
	fs.BoolVar(&c.Clear, "clear", c.Clear, "clear the terminal between text frames")
	fs.BoolVar(&c.NoWait, "y", c.NoWait, "start without waiting for ENTER")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale of the window sink")
}

// Size returns the board dimensions after Validate.
func (c *Config) Size() core.Size { return core.Size{W: c.Width, H: c.Height} }

// Validate checks the flag combination and resolves the board dimensions
// and fill mode. Without -h/-w the default board is loaded from -f; with
// both, a random board of at most MaxWidth x MaxHeight is used and -f is
// ignored.
func (c *Config) Validate() error {
	switch {
	case c.Height != 0 && c.Width == 0:
		return fmt.Errorf("%w: give width dimension too, or leave default", core.ErrConfig)
	case c.Width != 0 && c.Height == 0:
		return fmt.Errorf("%w: give height dimension too, or leave default", core.ErrConfig)
	case c.Width != 0 && c.Height != 0:
		if c.Width < 3 || c.Height < 3 {
			return fmt.Errorf("%w: board %dx%d must be at least 3x3", core.ErrConfig, c.Width, c.Height)
		}
		if c.Width > MaxWidth || c.Height > MaxHeight {
			return fmt.Errorf("%w: board %dx%d too large to print, maximum is %dx%d", core.ErrConfig, c.Width, c.Height, MaxWidth, MaxHeight)
		}
		c.Mode = grid.RandomFill
		c.FileIgnored = c.File != ""
	default:
		if c.File == "" {
			return fmt.Errorf("%w: default mode needs an input file (-f)", core.ErrConfig)
		}
		c.Width, c.Height = DefaultWidth, DefaultHeight
		c.Mode = grid.ZeroFill
	}

	if c.Threads < 1 || c.Threads > c.Height {
		return fmt.Errorf("%w: thread count %d must be between 1 and %d", core.ErrConfig, c.Threads, c.Height)
	}
	if c.Generations < 1 {
		return fmt.Errorf("%w: generations must be positive, got %d", core.ErrConfig, c.Generations)
	}
	if c.Interval < 0 {
		return fmt.Errorf("%w: interval must not be negative", core.ErrConfig)
	}
	switch c.Sink {
	case SinkText, SinkScreen, SinkWindow:
	default:
		return fmt.Errorf("%w: unknown sink %q", core.ErrConfig, c.Sink)
	}
	if c.Scale < 1 {
		return fmt.Errorf("%w: scale must be positive", core.ErrConfig)
	}
	return nil
}

// Usage prints the option summary.
func Usage(w io.Writer) {
	fmt.Fprintln(w, "\nUsage:\t golpt OPTIONS")
	fmt.Fprintln(w, "\tOPTIONS:")
	fmt.Fprintln(w, "\t\t-n  Number Of Threads")
	fmt.Fprintln(w, "\t\t-h  Set Board Height(Rows)")
	fmt.Fprintln(w, "\t\t-w  Set Board Width(Columns)")
	fmt.Fprintln(w, "\t\t-f  Input File")
	fmt.Fprintln(w, "\t\t-g  Number Of Generations")
	fmt.Fprintln(w, "\t\t-i  Pause Between Rounds (e.g. 500ms)")
	fmt.Fprintln(w, "\t\t-seed  Seed For Random Boards")
	fmt.Fprintln(w, "\t\t-sink  text, tcell or window")
	fmt.Fprintln(w, "\t\t-clear  Clear Terminal Between Text Frames")
	fmt.Fprintln(w, "\t\t-y  Start Without Waiting For ENTER")
	fmt.Fprintln(w, "\t\t-scale  Window Pixel Scale")
	fmt.Fprintln(w, "\t\t-b  Print This Help")
}
