package mmu

import (
	"fmt"

	"github.com/ushitora-anqou/mcboy/bus"
)

// RAM is a plain read/write block addressed by the relative offset.
type RAM struct {
	data []uint8
}

func NewRAM(size int) *RAM {
	return &RAM{data: make([]uint8, size)}
}

func (r *RAM) Read(addr bus.Address) (uint8, error) {
	if int(addr.Relative) >= len(r.data) {
		return bus.OpenBus, bus.Unmapped(addr)
	}
	return r.data[addr.Relative], nil
}

func (r *RAM) Write(v uint8, addr bus.Address) error {
	if int(addr.Relative) >= len(r.data) {
		return bus.Unmapped(addr)
	}
	r.data[addr.Relative] = v
	return nil
}

const (
	wramBankSize = 0x1000
	addrSVBK     = 0xff70
)

// WorkingRAM serves C000-DFFF, its echo at E000-FDFF and, in color mode,
// the SVBK bank select register.
type WorkingRAM struct {
	banks [8][wramBankSize]uint8
	bank  uint8
	color bool
}

func NewWorkingRAM(color bool) *WorkingRAM {
	return &WorkingRAM{bank: 1, color: color}
}

func (w *WorkingRAM) cell(rel uint16) *uint8 {
	if rel < wramBankSize {
		return &w.banks[0][rel]
	}
	return &w.banks[w.bank][(rel-wramBankSize)%wramBankSize]
}

func (w *WorkingRAM) Bank() uint8 {
	return w.bank
}

func (w *WorkingRAM) Read(addr bus.Address) (uint8, error) {
	switch {
	case addr.Area == bus.AreaRam || addr.Area == bus.AreaERam:
		return *w.cell(addr.Relative), nil
	case addr.Area == bus.AreaIoReg && addr.Absolute == addrSVBK && w.color:
		return 0xf8 | w.bank, nil
	}
	return bus.OpenBus, bus.Unmapped(addr)
}

func (w *WorkingRAM) Write(v uint8, addr bus.Address) error {
	switch {
	case addr.Area == bus.AreaRam || addr.Area == bus.AreaERam:
		*w.cell(addr.Relative) = v
		return nil
	case addr.Area == bus.AreaIoReg && addr.Absolute == addrSVBK && w.color:
		w.bank = v & 0x07
		if w.bank == 0 {
			w.bank = 1
		}
		return nil
	}
	return bus.Unmapped(addr)
}

// BootROM is the read-only overlay image.
type BootROM struct {
	data []uint8
}

const (
	BootROMSizeDMG = 0x100
	BootROMSizeCGB = 0x900
)

func NewBootROM(data []uint8) (*BootROM, error) {
	if len(data) != BootROMSizeDMG && len(data) != BootROMSizeCGB {
		return nil, fmt.Errorf("invalid boot rom size: %d", len(data))
	}
	return &BootROM{data: data}, nil
}

// Color reports whether the image is large enough for the color overlay.
func (b *BootROM) Color() bool {
	return len(b.data) == BootROMSizeCGB
}

func (b *BootROM) Read(addr bus.Address) (uint8, error) {
	if int(addr.Relative) >= len(b.data) {
		return bus.OpenBus, bus.Unmapped(addr)
	}
	return b.data[addr.Relative], nil
}

func (b *BootROM) Write(v uint8, addr bus.Address) error {
	return bus.Unmapped(addr)
}
