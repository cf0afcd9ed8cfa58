package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"golpt/internal/app"
	"golpt/internal/core"
	"golpt/internal/engine"
	"golpt/internal/grid"
	"golpt/internal/sink"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("golpt: ")

	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Usage = func() { app.Usage(os.Stderr) }
	if len(os.Args) == 1 {
		flag.Usage()
		os.Exit(1)
	}
	flag.Parse()
	if cfg.Help {
		app.Usage(os.Stdout)
		return
	}

	if err := cfg.Validate(); err != nil {
		log.Print(err)
		flag.Usage()
		os.Exit(1)
	}
	if err := run(cfg); err != nil {
		log.Fatal(err)
	}
}

func run(cfg *app.Config) error {
	if cfg.FileIgnored {
		log.Printf("warning: dimensions %dx%d override input file %s, using a random board", cfg.Width, cfg.Height, cfg.File)
	}

	store, err := grid.New(cfg.Size(), cfg.Mode, cfg.Seed)
	if err != nil {
		return err
	}
	if cfg.Mode == grid.ZeroFill {
		if err := loadFile(store, cfg.File); err != nil {
			return err
		}
	}

	opts := engine.Options{
		Workers:     cfg.Threads,
		Generations: cfg.Generations,
		Interval:    cfg.Interval,
	}

	var (
		out    core.Sink
		window *app.Window
	)
	switch cfg.Sink {
	case app.SinkScreen:
		screen, err := sink.NewScreen()
		if err != nil {
			return err
		}
		defer screen.Close()
		out, opts.Gate = screen, screen
	case app.SinkWindow:
		window, err = app.NewWindow(cfg.Size(), cfg.Scale)
		if err != nil {
			return err
		}
		out, opts.Gate = window, window
	default:
		out, opts.Gate = sink.NewText(os.Stdout, cfg.Clear), sink.NewLineGate(os.Stdin)
		opts.Logger = log.Default()
	}
	if cfg.NoWait {
		opts.Gate = sink.NoGate
	}

	e, err := engine.New(store, out, opts)
	if err != nil {
		return err
	}

	var res engine.Result
	job := func() error {
		var err error
		res, err = e.Run()
		return err
	}
	if window != nil {
		err = window.Run("golpt", job)
	} else {
		err = job()
	}
	if err != nil {
		if errors.Is(err, core.ErrAborted) {
			return fmt.Errorf("run aborted after %d generations: %w", res.Generations, err)
		}
		return err
	}
	log.Printf("%d generations on %d threads, %d frames in %v, %d cells alive",
		res.Generations, cfg.Threads, res.Frames, res.Elapsed, res.Population)
	return nil
}

func loadFile(store *grid.Store, name string) error {
	f, err := os.Open(name)
	if err != nil {
		return fmt.Errorf("%w: %v", core.ErrMalformedInput, err)
	}
	defer f.Close()
	return store.LoadInitialState(f)
}
