package mmu

import (
	"fmt"

	"github.com/ushitora-anqou/mcboy/bus"
)

// Cartridge serves both the ROM and the external RAM regions.
type Cartridge interface {
	bus.Device
	Title() string
}

func NewCartridge(src []uint8) (Cartridge, error) {
	if len(src) < 0x8000 {
		return nil, fmt.Errorf("rom too small: %d bytes", len(src))
	}

	// Catridge Type
	switch catType := src[0x147]; catType {
	case 0x00, 0x08, 0x09: // ROM ONLY (+RAM)
		return newROMOnly(src), nil
	case 0x01, 0x02, 0x03: // MBC1 (+RAM+BATTERY)
		return newMBC1(src)
	default:
		return nil, fmt.Errorf("unsupported cartridge type: 0x%02x", catType)
	}
}

func title(src []uint8) string {
	name := src[0x134:0x144]
	for i, c := range name {
		if c == 0 {
			return string(name[:i])
		}
	}
	return string(name)
}

type romOnly struct {
	rom, ram []uint8
}

func newROMOnly(src []uint8) *romOnly {
	cat := &romOnly{rom: src}
	if src[0x147] != 0x00 {
		cat.ram = make([]uint8, 0x2000)
	}
	return cat
}

func (cat *romOnly) Title() string {
	return title(cat.rom)
}

func (cat *romOnly) Read(addr bus.Address) (uint8, error) {
	switch addr.Area {
	case bus.AreaRom:
		if int(addr.Relative) < len(cat.rom) {
			return cat.rom[addr.Relative], nil
		}
	case bus.AreaExtRam:
		if int(addr.Relative) < len(cat.ram) {
			return cat.ram[addr.Relative], nil
		}
	}
	return bus.OpenBus, bus.Unmapped(addr)
}

func (cat *romOnly) Write(v uint8, addr bus.Address) error {
	switch addr.Area {
	case bus.AreaRom:
		// No controller to talk to.
		return nil
	case bus.AreaExtRam:
		if int(addr.Relative) < len(cat.ram) {
			cat.ram[addr.Relative] = v
			return nil
		}
	}
	return bus.Unmapped(addr)
}
