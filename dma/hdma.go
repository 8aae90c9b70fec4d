package dma

import (
	"github.com/ushitora-anqou/mcboy/bus"
	"github.com/ushitora-anqou/mcboy/clock"
	"github.com/ushitora-anqou/mcboy/util"
)

const (
	AddrHDMA1 uint16 = 0xff51
	AddrHDMA2 uint16 = 0xff52
	AddrHDMA3 uint16 = 0xff53
	AddrHDMA4 uint16 = 0xff54
	AddrHDMA5 uint16 = 0xff55

	addrSTAT  uint16 = 0xff41
	addrLY    uint16 = 0xff44
	blockSize        = 0x10
)

// HDMA copies blocks of 16 bytes into VRAM, either all at once (general
// purpose) or one block per horizontal blank.
type HDMA struct {
	src, dst   uint16
	remaining  int
	copied     int
	hblankMode bool
	active     bool
	inBlock    bool
	wasHBlank  bool
}

func NewHDMA() *HDMA {
	return &HDMA{}
}

func (h *HDMA) Active() bool {
	return h.active
}

func (h *HDMA) Read(addr bus.Address) (uint8, error) {
	switch addr.Absolute {
	case AddrHDMA1, AddrHDMA2, AddrHDMA3, AddrHDMA4:
		return bus.OpenBus, nil
	case AddrHDMA5:
		v := uint8(h.remaining-1) & 0x7f
		if !h.active {
			v |= 0x80
		}
		return v, nil
	}
	return bus.OpenBus, bus.Unmapped(addr)
}

func (h *HDMA) Write(v uint8, addr bus.Address) error {
	switch addr.Absolute {
	case AddrHDMA1:
		h.src = uint16(v)<<8 | h.src&0x00ff
	case AddrHDMA2:
		h.src = h.src&0xff00 | uint16(v&0xf0)
	case AddrHDMA3:
		h.dst = uint16(v&0x1f)<<8 | h.dst&0x00ff
	case AddrHDMA4:
		h.dst = h.dst&0xff00 | uint16(v&0xf0)
	case AddrHDMA5:
		if h.active && h.hblankMode && v&0x80 == 0 {
			util.Trace("hdma: cancelled with %d blocks left", h.remaining)
			h.active = false
			return nil
		}
		h.remaining = int(v&0x7f) + 1
		h.hblankMode = v&0x80 != 0
		h.active = true
		h.copied = 0
		h.inBlock = !h.hblankMode
		util.Trace("hdma: %d blocks 0x%04x -> 0x%04x hblank=%v", h.remaining, h.src, 0x8000|h.dst, h.hblankMode)
	default:
		return bus.Unmapped(addr)
	}
	return nil
}

func (h *HDMA) CycleCount() clock.Tick {
	return clock.MCycle
}

// hblankEntered reports the step the pixel unit enters mode 0 on a
// visible line.
func (h *HDMA) hblankEntered(b bus.Bus) bool {
	stat, err := b.Read(addrSTAT, bus.NoLock)
	if err != nil {
		return false
	}
	ly, err := b.Read(addrLY, bus.NoLock)
	if err != nil {
		return false
	}
	hblank := stat&3 == 0 && ly < 144
	entered := hblank && !h.wasHBlank
	h.wasHBlank = hblank
	return entered
}

func (h *HDMA) Tick(b bus.Bus) {
	if !h.active {
		return
	}
	if h.hblankMode && !h.inBlock {
		if !h.hblankEntered(b) {
			return
		}
		h.inBlock = true
	}
	h.copyByte(b)
	h.copyByte(b)
	if h.copied < blockSize {
		return
	}

	h.copied = 0
	h.remaining--
	if h.remaining == 0 {
		h.active = false
		return
	}
	h.inBlock = !h.hblankMode
}

func (h *HDMA) copyByte(b bus.Bus) {
	v, err := b.Read(h.src, bus.LockDMA)
	if err != nil {
		util.Trace("hdma: read 0x%04x: %v", h.src, err)
		v = bus.OpenBus
	}
	dst := 0x8000 | h.dst&0x1fff
	if err := b.Write(dst, v, bus.LockDMA); err != nil {
		util.Trace("hdma: write 0x%04x: %v", dst, err)
	}
	h.src++
	h.dst = (h.dst + 1) & 0x1fff
	h.copied++
}
