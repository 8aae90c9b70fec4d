package mmu

import (
	"fmt"

	"github.com/ushitora-anqou/mcboy/bus"
)

type mbc1 struct {
	rom, ram                                    []uint8
	romBankBits, romBank, bankingMode, secondary int
	ramEnabled, largeROM                        bool
}

func newMBC1(src []uint8) (*mbc1, error) {
	//  ROM Size
	romBankBits := int(src[0x148] + 1)
	if romBankBits > 7 {
		return nil, fmt.Errorf("unsupported rom size: %d", src[0x148])
	}

	// RAM Size
	ramSize := 0
	switch src[0x149] {
	case 0:
		// Do nothing
	case 2:
		ramSize = 8 * 1024
	case 3:
		ramSize = 32 * 1024
	case 4:
		ramSize = 128 * 1024
	case 5:
		ramSize = 64 * 1024
	default:
		return nil, fmt.Errorf("unsupported ram size: %d", src[0x149])
	}

	return &mbc1{
		rom:         src,
		ram:         make([]uint8, ramSize),
		romBankBits: romBankBits,
		romBank:     1,
		largeROM:    romBankBits > 5,
	}, nil
}

func (cat *mbc1) Title() string {
	return title(cat.rom)
}

func (cat *mbc1) setRegister(addr uint16, val uint8) {
	switch {
	case addr <= 0x1fff: // RAM Enable
		cat.ramEnabled = val&0x0f == 0x0a

	case addr <= 0x3fff: // ROM Bank Number (lower 5 bits)
		width := cat.romBankBits
		if width > 5 {
			width = 5
		}
		num := int(val&0x1f) & ((1 << width) - 1)
		if val&0x1f == 0 {
			num = 1
		}
		cat.romBank = num

	case addr <= 0x5fff: // RAM Bank Number or Upper Bits of ROM Bank Number (2 bits)
		cat.secondary = int(val & 0x03)

	default: // Banking Mode Select
		cat.bankingMode = int(val & 0x1)
	}
}

func (cat *mbc1) romIndex(addr uint16) int {
	bank := 0
	off := int(addr)
	if addr < 0x4000 { // ROM Bank X0
		if cat.bankingMode != 0 && cat.largeROM {
			bank = cat.secondary << 5
		}
	} else { // ROM Bank 01-7F
		bank = cat.romBank
		if cat.largeROM {
			bank |= cat.secondary << 5
		}
		off -= 0x4000
	}
	return (bank*0x4000 + off) % len(cat.rom)
}

func (cat *mbc1) ramIndex(rel uint16) int {
	index := int(rel)
	if cat.bankingMode != 0 && !cat.largeROM {
		index += cat.secondary * 0x2000
	}
	return index % len(cat.ram)
}

func (cat *mbc1) Read(addr bus.Address) (uint8, error) {
	switch addr.Area {
	case bus.AreaRom:
		return cat.rom[cat.romIndex(addr.Relative)], nil
	case bus.AreaExtRam:
		if !cat.ramEnabled || len(cat.ram) == 0 {
			return bus.OpenBus, nil
		}
		return cat.ram[cat.ramIndex(addr.Relative)], nil
	}
	return bus.OpenBus, bus.Unmapped(addr)
}

func (cat *mbc1) Write(v uint8, addr bus.Address) error {
	switch addr.Area {
	case bus.AreaRom:
		cat.setRegister(addr.Relative, v)
		return nil
	case bus.AreaExtRam:
		if cat.ramEnabled && len(cat.ram) != 0 {
			cat.ram[cat.ramIndex(addr.Relative)] = v
		}
		return nil
	}
	return bus.Unmapped(addr)
}
