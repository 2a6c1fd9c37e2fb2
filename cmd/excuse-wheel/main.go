package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/excuse-wheel/audio"
	"github.com/lixenwraith/excuse-wheel/config"
	"github.com/lixenwraith/excuse-wheel/constant"
	"github.com/lixenwraith/excuse-wheel/content"
	"github.com/lixenwraith/excuse-wheel/core"
	"github.com/lixenwraith/excuse-wheel/engine"
	"github.com/lixenwraith/excuse-wheel/status"
	"github.com/lixenwraith/excuse-wheel/wheel"
)

var (
	catalogFlag = flag.String("catalog", "", "YAML excuse catalog (default: built-in)")
	configFlag  = flag.String("config", "", "YAML config file")
	seedFlag    = flag.Int64("seed", 0, "Random seed, 0 seeds from the clock")
	muteFlag    = flag.Bool("mute", false, "Start muted")
	volumeFlag  = flag.Int("volume", 100, "Master volume 0-100")
	debugFlag   = flag.Bool("debug", false, "Log to logs/ and show the status line")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the wheel crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "excuse-wheel: %v\n", err)
		os.Exit(1)
	}
}

// overrides collects only the flags given on the command line
func overrides() config.Overrides {
	var o config.Overrides
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "catalog":
			o.Catalog = catalogFlag
		case "seed":
			o.Seed = seedFlag
		case "mute":
			o.Mute = muteFlag
		case "volume":
			o.Volume = volumeFlag
		case "debug":
			o.Debug = debugFlag
		}
	})
	return o
}

func run() error {
	cfg, err := config.Load(*configFlag, overrides())
	if err != nil {
		return err
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	catalog, err := content.Load(cfg.Catalog)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	// Crash handler restores the terminal from any goroutine
	core.SetTerminalReset(screen.Fini)
	defer screen.Fini()

	screen.EnableMouse()
	screen.HideCursor()

	metrics := status.NewRegistry()
	clock := engine.NewTimeProvider()
	scheduler := engine.NewRealScheduler()

	// Speaker opens lazily on the first cue
	sounds := audio.NewSoundManager(cfg.Audio)
	defer sounds.Cleanup()

	w := wheel.New(wheel.Options{
		Catalog:   catalog,
		Rand:      wheel.NewRand(cfg.Seed),
		Scheduler: scheduler,
		Clock:     clock,
		Player:    sounds,
		Metrics:   metrics,
	})
	defer w.Close()

	log.Printf("catalog: %d excuses, seed %d", catalog.Len(), cfg.Seed)

	a := newApp(screen, w, sounds, clock, metrics, cfg.Debug)
	a.draw()

	eventChan := make(chan tcell.Event, constant.EventChannelSize)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			// Nil after Fini
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	})

	frameTicker := time.NewTicker(constant.FrameUpdateInterval)
	defer frameTicker.Stop()

	for {
		select {
		case ev := <-eventChan:
			if !a.handleEvent(ev) {
				log.Printf("quit after %d spins", w.Snapshot().Spins)
				return nil
			}
		case <-frameTicker.C:
			a.draw()
		}
	}
}
