// Package dma implements the memory transfer units: the OAM DMA of every
// model and the VRAM DMA (HDMA) of the color model.
package dma

import (
	"github.com/ushitora-anqou/mcboy/bus"
	"github.com/ushitora-anqou/mcboy/clock"
	"github.com/ushitora-anqou/mcboy/util"
)

const (
	AddrDMA uint16 = 0xff46

	oamBase = 0xfe00
	oamSize = 0xa0
)

// OAMDMA copies 160 bytes from page<<8 into OAM, one byte per macro-step,
// holding the OAM lock while it runs.
type OAMDMA struct {
	page   uint8
	step   int
	active bool
}

func NewOAMDMA() *OAMDMA {
	return &OAMDMA{}
}

func (d *OAMDMA) Active() bool {
	return d.active
}

func (d *OAMDMA) Read(addr bus.Address) (uint8, error) {
	if addr.Absolute != AddrDMA {
		return bus.OpenBus, bus.Unmapped(addr)
	}
	return d.page, nil
}

// Write latches the source page and restarts the transfer.
func (d *OAMDMA) Write(v uint8, addr bus.Address) error {
	if addr.Absolute != AddrDMA {
		return bus.Unmapped(addr)
	}
	util.Trace("dma: oam transfer from 0x%02x00", v)
	d.page = v
	d.step = 0
	d.active = true
	return nil
}

func (d *OAMDMA) CycleCount() clock.Tick {
	return clock.MCycle
}

func (d *OAMDMA) Tick(b bus.Bus) {
	if !d.active {
		return
	}
	if d.step == 0 {
		b.Claim(bus.AreaOam, bus.LockDMA)
	}

	src := uint16(d.page)<<8 + uint16(d.step)
	v, err := b.Read(src, bus.LockDMA)
	if err != nil {
		util.Trace("dma: read 0x%04x: %v", src, err)
		v = bus.OpenBus
	}
	if err := b.Write(oamBase+uint16(d.step), v, bus.LockDMA); err != nil {
		util.Trace("dma: write 0x%04x: %v", oamBase+d.step, err)
	}

	d.step++
	if d.step == oamSize {
		d.active = false
		if b.Holder(bus.AreaOam) == bus.LockDMA {
			b.Release(bus.AreaOam)
		}
	}
}
