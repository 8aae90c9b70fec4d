//go:build !ebiten && !sdl2

package main

import (
	"log"
	"os"

	"github.com/ushitora-anqou/mcboy/window"
)

func runHeadless(cfg *config, rom []uint8, opts Options) error {
	var recorder *window.WAVRecorder
	if cfg.wavPath != "" {
		recorder = window.NewWAVRecorder(cfg.wavPath)
	}
	wind := window.NewHeadlessWindow(recorder)

	gb, err := NewGameBoy(wind, rom, opts)
	if err != nil {
		return err
	}
	log.Printf("running %q for %d frames", gb.Title(), cfg.frames)

	event := &window.WindowEvent{}
	for gb.Frames() < cfg.frames {
		if err := gb.Update(event); err != nil {
			return err
		}
	}
	cfg.finish(gb)

	return wind.Close()
}

func terminalLoop(wind *window.TerminalWindow, gb *GameBoy, frames int) error {
	synchronizer := window.NewTimeSynchronizer(frameRate)
	for frames == 0 || gb.Frames() < frames {
		escape, event := wind.HandleEvents()
		if escape {
			return nil
		}
		if err := gb.Update(event); err != nil {
			return err
		}
		if err := wind.UpdateScreen(); err != nil {
			return err
		}
		synchronizer.MaySleep()
	}
	return nil
}

func runTerminal(cfg *config, rom []uint8, opts Options) error {
	wind, err := window.NewTerminalWindow()
	if err != nil {
		return err
	}

	gb, err := NewGameBoy(wind, rom, opts)
	if err != nil {
		wind.Close()
		return err
	}

	err = terminalLoop(wind, gb, cfg.frames)
	wind.Close() // Restore the terminal before printing anything
	cfg.finish(gb)
	return err
}

func run() error {
	cfg, err := parseFlags(os.Args)
	if err != nil {
		return err
	}
	stop, err := cfg.setup()
	if err != nil {
		return err
	}
	defer stop()

	rom, opts, err := cfg.load()
	if err != nil {
		return err
	}
	if cfg.headless {
		return runHeadless(cfg, rom, opts)
	}
	return runTerminal(cfg, rom, opts)
}

func main() {
	err := run()
	if err != nil {
		log.Fatal(err)
	}
}
