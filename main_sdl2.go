//go:build sdl2 && !ebiten

package main

import (
	"log"
	"os"

	"github.com/ushitora-anqou/mcboy/window"
)

func runSDL2() error {
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

	if err := window.SDLInitialize(); err != nil {
		return err
	}
	wind, err := window.NewSDLWindow()
	if err != nil {
		return err
	}
	defer wind.Close()

	gb, err := NewGameBoy(wind, rom, opts)
	if err != nil {
		return err
	}
	defer cfg.finish(gb)

	synchronizer := window.NewTimeSynchronizer(frameRate)
	for cfg.frames == 0 || gb.Frames() < cfg.frames {
		escape, event := wind.HandleEvents()
		if escape {
			break
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

func main() {
	err := runSDL2()
	if err != nil {
		log.Fatal(err)
	}
}
