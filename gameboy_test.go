package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ushitora-anqou/mcboy/bus"
	"github.com/ushitora-anqou/mcboy/constant"
	"github.com/ushitora-anqou/mcboy/window"
)

// newROM returns a 32 KiB ROM-only image with program placed at 0x100.
func newROM(program ...uint8) []uint8 {
	rom := make([]uint8, 0x8000)
	copy(rom[0x134:], "TEST")
	copy(rom[0x100:], program)
	return rom
}

func newTestGameBoy(t *testing.T, opts Options, program ...uint8) (*GameBoy, *window.HeadlessWindow) {
	t.Helper()
	wind := window.NewHeadlessWindow(nil)
	gb, err := NewGameBoy(wind, newROM(program...), opts)
	if err != nil {
		t.Fatalf("NewGameBoy: %v", err)
	}
	return gb, wind
}

func update(t *testing.T, gb *GameBoy, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		if err := gb.Update(&window.WindowEvent{}); err != nil {
			t.Fatalf("Update: %v", err)
		}
	}
}

func TestFrame(t *testing.T) {
	gb, wind := newTestGameBoy(t, Options{}, 0x18, 0xfe) // JR -2
	if got := gb.Title(); got != "TEST" {
		t.Fatalf("title: expected %q, got %q", "TEST", got)
	}

	update(t, gb, 2)
	if got := gb.Frames(); got != 2 {
		t.Fatalf("frames: expected 2, got %d", got)
	}
	if got := gb.clock.FrameCycle(); got != 0 {
		t.Fatalf("frame cycle: expected 0, got %d", got)
	}
	if wind.Frames() < 1 {
		t.Fatalf("no frame reached the window")
	}
	if gb.interrupts.IF()&bus.InterruptVBlank == 0 {
		t.Fatalf("VBlank was not requested: IF=%02x", gb.interrupts.IF())
	}
	if pc := gb.cpu.Registers().PC(); pc < 0x100 || pc > 0x102 {
		t.Fatalf("pc left the loop: %04x", pc)
	}
	if wind.AudioBuffers() == 0 {
		t.Fatalf("no audio buffer was produced")
	}
}

func TestSerialOutput(t *testing.T) {
	var out bytes.Buffer
	send := func(c uint8) []uint8 {
		return []uint8{
			0x3e, c, // LD A,c
			0xe0, 0x01, // LDH (SB),A
			0x3e, 0x81, // LD A,0x81
			0xe0, 0x02, // LDH (SC),A
			0xf0, 0x02, // LDH A,(SC)
			0xcb, 0x7f, // BIT 7,A
			0x20, 0xfa, // JR NZ,-6
		}
	}
	program := append(send('O'), send('K')...)
	program = append(program, 0x18, 0xfe)

	gb, _ := newTestGameBoy(t, Options{Serial: &out}, program...)
	update(t, gb, 1)
	if got := out.String(); got != "OK" {
		t.Fatalf("serial output: expected %q, got %q", "OK", got)
	}
	if gb.interrupts.IF()&bus.InterruptSerial == 0 {
		t.Fatalf("serial interrupt was not requested: IF=%02x", gb.interrupts.IF())
	}
}

func TestJoypadInterrupt(t *testing.T) {
	gb, _ := newTestGameBoy(t, Options{}, 0x18, 0xfe)
	if err := gb.Update(&window.WindowEvent{Action: 1 << constant.ACT_A}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if gb.interrupts.IF()&bus.InterruptJoypad == 0 {
		t.Fatalf("joypad interrupt was not requested: IF=%02x", gb.interrupts.IF())
	}

	// Holding the button does not raise it again.
	if err := gb.mmu.Write(bus.AddrIF, 0, bus.NoLock); err != nil {
		t.Fatal(err)
	}
	if err := gb.Update(&window.WindowEvent{Action: 1 << constant.ACT_A}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if gb.interrupts.IF()&bus.InterruptJoypad != 0 {
		t.Fatalf("joypad interrupt requested for a held button")
	}
}

// fetchedPerFrame measures the instructions started during one frame.
func fetchedPerFrame(t *testing.T, gb *GameBoy) uint64 {
	before := gb.cpu.Controller().Fetched()
	update(t, gb, 1)
	return gb.cpu.Controller().Fetched() - before
}

func TestDoubleSpeed(t *testing.T) {
	single, _ := newTestGameBoy(t, Options{}, 0x18, 0xfe)
	update(t, single, 1)
	normal := fetchedPerFrame(t, single)

	double, _ := newTestGameBoy(t, Options{Color: true},
		0x3e, 0x01, // LD A,1
		0xe0, 0x4d, // LDH (KEY1),A
		0x10, 0x00, // STOP
		0x18, 0xfe, // JR -2
	)
	update(t, double, 1)
	if !double.cpu.DoubleSpeed() {
		t.Fatalf("speed switch did not happen")
	}
	if v, err := double.mmu.Read(0xff4d, bus.NoLock); err != nil || v != 0xfe {
		t.Fatalf("KEY1: expected 0xfe, got 0x%02x (%v)", v, err)
	}
	fast := fetchedPerFrame(t, double)
	if fast < 2*normal-2 || fast > 2*normal+2 {
		t.Fatalf("instructions per frame: expected about %d, got %d", 2*normal, fast)
	}
}

func TestColorOnlyRegisters(t *testing.T) {
	gb, _ := newTestGameBoy(t, Options{}, 0x18, 0xfe)
	for _, addr := range []uint16{0xff4d, 0xff55, 0xff70} {
		if _, err := gb.mmu.Read(addr, bus.NoLock); !bus.IsRegionError(err) {
			t.Errorf("0x%04x: expected a region error, got %v", addr, err)
		}
	}

	gb, _ = newTestGameBoy(t, Options{Color: true}, 0x18, 0xfe)
	if err := gb.mmu.Write(0xff70, 3, bus.NoLock); err != nil {
		t.Fatalf("SVBK: %v", err)
	}
	if v, _ := gb.mmu.Read(0xff70, bus.NoLock); v != 0xfb {
		t.Fatalf("SVBK: expected 0xfb, got 0x%02x", v)
	}
}

func TestBootOverlay(t *testing.T) {
	boot := make([]uint8, 0x100)
	copy(boot, []uint8{
		0x3e, 0x01, // LD A,1
		0xe0, 0x50, // LDH (BOOT),A
	})
	wind := window.NewHeadlessWindow(nil)
	rom := newROM(0x18, 0xfe)
	rom[0x0004] = 0xc3 // JP 0x0100
	rom[0x0005] = 0x00
	rom[0x0006] = 0x01

	gb, err := NewGameBoy(wind, rom, Options{BootROM: boot})
	if err != nil {
		t.Fatalf("NewGameBoy: %v", err)
	}
	if !gb.mmu.OverlayInstalled() {
		t.Fatalf("overlay is not installed")
	}
	if pc := gb.cpu.Registers().PC(); pc != 0 {
		t.Fatalf("pc: expected 0, got %04x", pc)
	}

	update(t, gb, 1)
	if gb.mmu.OverlayInstalled() {
		t.Fatalf("overlay was not removed")
	}
	if pc := gb.cpu.Registers().PC(); pc < 0x100 || pc > 0x102 {
		t.Fatalf("pc: expected the loop at 0x100, got %04x", pc)
	}
}

func TestConstructionErrors(t *testing.T) {
	wind := window.NewHeadlessWindow(nil)
	if _, err := NewGameBoy(wind, make([]uint8, 0x100), Options{}); err == nil {
		t.Errorf("short rom accepted")
	}
	rom := newROM()
	rom[0x147] = 0x05
	if _, err := NewGameBoy(wind, rom, Options{}); err == nil {
		t.Errorf("unsupported cartridge accepted")
	}
	if _, err := NewGameBoy(wind, newROM(), Options{BootROM: make([]uint8, 0x200)}); err == nil {
		t.Errorf("bad boot rom accepted")
	}
}

func TestDump(t *testing.T) {
	gb, _ := newTestGameBoy(t, Options{}, 0x18, 0xfe)
	update(t, gb, 1)
	dump := gb.Dump()
	for _, field := range []string{"Registers", "Fetched", "FrameCycle"} {
		if !strings.Contains(dump, field) {
			t.Errorf("dump lacks %s:\n%s", field, dump)
		}
	}
}

func TestParseFlags(t *testing.T) {
	cfg, err := parseFlags([]string{"mcboy", "-headless", "-cgb", "rom.gb"})
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	if cfg.romPath != "rom.gb" || !cfg.color || cfg.frames != 600 {
		t.Fatalf("config: got %+v", cfg)
	}

	cfg, err = parseFlags([]string{"mcboy", "-frames", "3", "rom.gb"})
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	if cfg.headless || cfg.frames != 3 {
		t.Fatalf("config: got %+v", cfg)
	}

	if _, err := parseFlags([]string{"mcboy"}); err == nil {
		t.Errorf("missing rom path accepted")
	}
	if _, err := parseFlags([]string{"mcboy", "-frames", "-1", "rom.gb"}); err == nil {
		t.Errorf("negative frame count accepted")
	}
}
