package main

import (
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/ushitora-anqou/mcboy/apu"
	"github.com/ushitora-anqou/mcboy/bus"
	"github.com/ushitora-anqou/mcboy/clock"
	"github.com/ushitora-anqou/mcboy/cpu"
	"github.com/ushitora-anqou/mcboy/dma"
	"github.com/ushitora-anqou/mcboy/joypad"
	"github.com/ushitora-anqou/mcboy/mmu"
	"github.com/ushitora-anqou/mcboy/ppu"
	"github.com/ushitora-anqou/mcboy/serial"
	"github.com/ushitora-anqou/mcboy/timer"
	"github.com/ushitora-anqou/mcboy/window"
)

const highRAMSize = 0x7f

type Options struct {
	// BootROM is mapped over the cartridge until the program writes FF50.
	// Without it the machine starts in the post-boot state.
	BootROM []uint8
	// Color selects the color model. A 0x900 byte boot ROM implies it.
	Color bool
	// Serial receives every byte sent over the link port.
	Serial io.Writer
}

type GameBoy struct {
	mmu        *mmu.MMU
	clock      clock.Clock
	cpu        *cpu.CPU
	ppu        *ppu.PPU
	timer      *timer.Timer
	oamDMA     *dma.OAMDMA
	hdma       *dma.HDMA
	serial     *serial.Serial
	apu        *apu.APU
	joypad     *joypad.Joypad
	interrupts *cpu.InterruptRegisters
	cart       mmu.Cartridge
	color      bool
	frames     int

	tickers     []clock.Ticker // in scheduling order
	doubleSpeed []clock.Ticker // stepped again while double speed is on
}

func NewGameBoy(wind window.Window, rom []uint8, opts Options) (*GameBoy, error) {
	cart, err := mmu.NewCartridge(rom)
	if err != nil {
		return nil, fmt.Errorf("cartridge: %w", err)
	}

	var boot *mmu.BootROM
	if opts.BootROM != nil {
		boot, err = mmu.NewBootROM(opts.BootROM)
		if err != nil {
			return nil, fmt.Errorf("boot rom: %w", err)
		}
	}
	color := opts.Color || (boot != nil && boot.Color())

	gb := &GameBoy{
		cpu:        cpu.NewCPU(),
		ppu:        ppu.NewPPU(wind, color),
		timer:      timer.NewTimer(),
		oamDMA:     dma.NewOAMDMA(),
		serial:     serial.NewSerial(opts.Serial),
		apu:        apu.NewAPU(wind),
		joypad:     joypad.NewJoypad(),
		interrupts: cpu.NewInterruptRegisters(),
		cart:       cart,
		color:      color,
	}
	wram := mmu.NewWorkingRAM(color)
	ioregs := &mmu.IORegisters{
		Joypad:    gb.joypad,
		Serial:    gb.serial,
		Timer:     gb.timer,
		Interrupt: gb.interrupts,
		Sound:     gb.apu,
		Lcd:       gb.ppu,
		OamDma:    gb.oamDMA,
	}
	gb.mmu = mmu.NewMMU(mmu.Devices{
		Rom:     cart,
		Vram:    gb.ppu,
		ExtRam:  cart,
		Ram:     wram,
		Oam:     gb.ppu,
		IoReg:   ioregs,
		HighRam: mmu.NewRAM(highRAMSize),
		IEReg:   gb.interrupts,
	})
	ioregs.BootRom = gb.mmu.BootRegister()

	gb.tickers = []clock.Ticker{gb.timer, gb.cpu, gb.ppu, gb.oamDMA}
	gb.doubleSpeed = []clock.Ticker{gb.timer, gb.cpu, gb.oamDMA}
	if color {
		gb.hdma = dma.NewHDMA()
		ioregs.Speed = gb.cpu.Speed()
		ioregs.Hdma = gb.hdma
		ioregs.WramBank = wram
		gb.tickers = append(gb.tickers, gb.hdma)
		gb.doubleSpeed = append(gb.doubleSpeed, gb.hdma)
	}
	gb.tickers = append(gb.tickers, gb.serial, gb.apu)
	gb.doubleSpeed = append(gb.doubleSpeed, gb.serial)

	if boot != nil {
		if err := gb.mmu.InstallOverlay(boot, boot.Color()); err != nil {
			return nil, err
		}
	} else {
		gb.cpu.Registers().PostBoot(color)
		gb.ppu.PostBoot()
		gb.apu.PostBoot()
	}

	return gb, nil
}

// Update feeds the buttons held for this frame and emulates one frame.
func (gb *GameBoy) Update(event *window.WindowEvent) error {
	if gb.joypad.Update(event.Direction, event.Action) {
		if err := bus.RequestInterrupt(gb.mmu, bus.InterruptJoypad); err != nil {
			return err
		}
	}

	for {
		open := gb.clock.Cycle(gb.mmu, gb.tickers...)
		if gb.cpu.DoubleSpeed() {
			gb.clock.NotCountedCycle(gb.mmu, gb.doubleSpeed...)
		}
		if !open {
			break
		}
	}
	gb.frames++

	return nil
}

func (gb *GameBoy) Frames() int {
	return gb.frames
}

func (gb *GameBoy) Title() string {
	return gb.cart.Title()
}

// Dump returns a readable snapshot of the processor state.
func (gb *GameBoy) Dump() string {
	ctl := gb.cpu.Controller()
	instr, ok := ctl.Instr()
	state := struct {
		Registers  cpu.Registers
		IME        bool
		Executing  bool
		Instr      string
		Pending    []cpu.Action
		Fetched    uint64
		IE, IF     uint8
		Double     bool
		Frame      int
		FrameCycle int
		PPUMode    ppu.Mode
		LY         uint8
	}{
		Registers:  *gb.cpu.Registers(),
		IME:        ctl.IME(),
		Executing:  ok,
		Instr:      instr.String(),
		Pending:    ctl.Pending(),
		Fetched:    ctl.Fetched(),
		IE:         gb.interrupts.IE(),
		IF:         gb.interrupts.IF(),
		Double:     gb.cpu.DoubleSpeed(),
		Frame:      gb.frames,
		FrameCycle: gb.clock.FrameCycle(),
		PPUMode:    gb.ppu.Mode(),
		LY:         gb.ppu.LY(),
	}
	return spew.Sdump(state)
}
