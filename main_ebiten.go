//go:build ebiten

package main

import (
	"errors"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ushitora-anqou/mcboy/constant"
	"github.com/ushitora-anqou/mcboy/window"
)

var errQuit = errors.New("quit")

type Game struct {
	gb     *GameBoy
	wind   *window.EbitenWindow
	frames int
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return constant.LCD_WIDTH, constant.LCD_HEIGHT
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return errQuit
	}
	if g.frames != 0 && g.gb.Frames() >= g.frames {
		return errQuit
	}
	return g.gb.Update(g.wind.Event())
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.wind.Render(screen)
}

func runEbiten() error {
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

	wind, err := window.NewEbitenWindow(window.EbitenInitialize())
	if err != nil {
		return err
	}
	defer wind.Close()

	gb, err := NewGameBoy(wind, rom, opts)
	if err != nil {
		return err
	}
	defer cfg.finish(gb)

	err = ebiten.RunGame(&Game{gb: gb, wind: wind, frames: cfg.frames})
	if errors.Is(err, errQuit) {
		return nil
	}
	return err
}

func main() {
	err := runEbiten()
	if err != nil {
		log.Fatal(err)
	}
}
