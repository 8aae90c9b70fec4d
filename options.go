package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"

	"github.com/ushitora-anqou/mcboy/constant"
	"github.com/ushitora-anqou/mcboy/statsview"
	"github.com/ushitora-anqou/mcboy/util"
)

// Frames per second of the real hardware.
const frameRate = float64(constant.CPU_FREQ) / constant.FRAME_TICKS

type config struct {
	romPath   string
	bootPath  string
	wavPath   string
	color     bool
	headless  bool
	frames    int
	serial    bool
	trace     bool
	dump      bool
	statsview bool
}

func parseFlags(args []string) (*config, error) {
	cfg := &config{}
	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.StringVar(&cfg.bootPath, "boot", "", "boot ROM image (0x100 bytes, or 0x900 for the color model)")
	fs.BoolVar(&cfg.color, "cgb", false, "emulate the color model")
	fs.IntVar(&cfg.frames, "frames", 0, "stop after this many frames (headless default: 600)")
	fs.BoolVar(&cfg.headless, "headless", false, "run without a screen")
	fs.StringVar(&cfg.wavPath, "wav", "", "record the audio output to a WAV file (headless)")
	fs.BoolVar(&cfg.serial, "serial", false, "echo link port output to stdout")
	fs.BoolVar(&cfg.trace, "trace", false, "enable trace logging")
	fs.BoolVar(&cfg.dump, "dump", false, "print the processor state on exit")
	fs.BoolVar(&cfg.statsview, "statsview", false, "serve runtime statistics over HTTP")
	if err := fs.Parse(args[1:]); err != nil {
		return nil, err
	}
	if fs.NArg() < 1 {
		return nil, fmt.Errorf("Usage: %s [OPTIONS] PATH", args[0])
	}
	cfg.romPath = fs.Arg(0)
	if cfg.frames < 0 {
		return nil, fmt.Errorf("invalid number of frames: %d", cfg.frames)
	}
	if cfg.headless && cfg.frames == 0 {
		cfg.frames = 600
	}
	return cfg, nil
}

// setup applies the process-wide settings. The returned function undoes
// them and must be called before exiting.
func (cfg *config) setup() (func(), error) {
	if cfg.trace || os.Getenv("MCBOY_TRACE") == "1" {
		util.EnableTrace()
	}

	if cfg.statsview {
		if !statsview.Available() {
			log.Printf("statsview is not available in this build")
		}
		statsview.Launch(os.Stderr)
	}

	filename := os.Getenv("MCBOY_CPUPROFILE")
	if filename == "" {
		return func() {}, nil
	}
	file, err := os.Create(filename)
	if err != nil {
		return nil, err
	}
	if err := pprof.StartCPUProfile(file); err != nil {
		file.Close()
		return nil, err
	}
	return func() {
		pprof.StopCPUProfile()
		file.Close()
	}, nil
}

func (cfg *config) load() ([]uint8, Options, error) {
	opts := Options{Color: cfg.color}
	rom, err := os.ReadFile(cfg.romPath)
	if err != nil {
		return nil, opts, err
	}
	if cfg.bootPath != "" {
		opts.BootROM, err = os.ReadFile(cfg.bootPath)
		if err != nil {
			return nil, opts, err
		}
	}
	if cfg.serial {
		opts.Serial = os.Stdout
	}
	return rom, opts, nil
}

// finish reports the final state the way the options ask for.
func (cfg *config) finish(gb *GameBoy) {
	if cfg.dump {
		fmt.Fprint(os.Stderr, gb.Dump())
	}
}
