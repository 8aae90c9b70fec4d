package ppu

import (
	"github.com/ushitora-anqou/mcboy/bus"
	"github.com/ushitora-anqou/mcboy/clock"
	"github.com/ushitora-anqou/mcboy/util"
)

const (
	AddrLCDC uint16 = 0xff40
	AddrSTAT uint16 = 0xff41
	AddrSCY  uint16 = 0xff42
	AddrSCX  uint16 = 0xff43
	AddrLY   uint16 = 0xff44
	AddrLYC  uint16 = 0xff45
	AddrBGP  uint16 = 0xff47
	AddrOBP0 uint16 = 0xff48
	AddrOBP1 uint16 = 0xff49
	AddrWY   uint16 = 0xff4a
	AddrWX   uint16 = 0xff4b
	AddrVBK  uint16 = 0xff4f
	AddrBCPS uint16 = 0xff68
	AddrBCPD uint16 = 0xff69
	AddrOCPS uint16 = 0xff6a
	AddrOCPD uint16 = 0xff6b
	AddrOPRI uint16 = 0xff6c
)

// Mode is the value of STAT bits 0-1.
type Mode uint8

const (
	ModeHBlank Mode = iota
	ModeVBlank
	ModeOAMScan
	ModeTransfer
)

func (m Mode) String() string {
	switch m {
	case ModeHBlank:
		return "hblank"
	case ModeVBlank:
		return "vblank"
	case ModeOAMScan:
		return "oam scan"
	}
	return "transfer"
}

const (
	dotsPerLine   = 456
	linesPerFrame = 154
	visibleLines  = 144
	transferStart = 80
	transferEnd   = 252
)

// palette is a block of color palette memory with its index register.
type palette struct {
	index uint8
	data  [64]uint8
}

func (p *palette) readIndex() uint8 {
	return 0x40 | p.index
}

func (p *palette) writeIndex(v uint8) {
	p.index = v & 0xbf
}

func (p *palette) readData() uint8 {
	return p.data[p.index&0x3f]
}

func (p *palette) writeData(v uint8) {
	p.data[p.index&0x3f] = v
	if p.index&0x80 != 0 {
		p.index = 0x80 | (p.index+1)&0x3f
	}
}

// PPU is the pixel unit. It serves VRAM, OAM and the LCD registers and
// pushes finished scanlines to an LCD.
type PPU struct {
	lcd   bus.LCD
	color bool

	vram     [2][0x2000]uint8
	vramBank uint8
	oam      [0xa0]uint8

	lcdc, stat, scy, scx, ly, lyc uint8
	bgp, obp0, obp1, wy, wx       uint8
	opri                          uint8
	bgPalette, objPalette         palette

	mode       Mode
	dot        int
	windowLine int
	statLine   bool
	off        bool

	scanline [160]uint8
	bgIndex  [160]uint8
	bgPrio   [160]bool
}

func NewPPU(lcd bus.LCD, color bool) *PPU {
	return &PPU{
		lcd:   lcd,
		color: color,
		off:   true,
	}
}

// PostBoot loads the register values the boot ROM leaves behind.
func (ppu *PPU) PostBoot() {
	ppu.lcdc = 0x91
	ppu.bgp = 0xfc
	ppu.obp0 = 0xff
	ppu.obp1 = 0xff
}

func (ppu *PPU) LCDC() uint8 {
	return ppu.lcdc
}

func (ppu *PPU) LY() uint8 {
	return ppu.ly
}

func (ppu *PPU) SCX() uint8 {
	return ppu.scx
}

func (ppu *PPU) SCY() uint8 {
	return ppu.scy
}

func (ppu *PPU) BGP() uint8 {
	return ppu.bgp
}

func (ppu *PPU) Mode() Mode {
	return ppu.mode
}

func (ppu *PPU) enabled() bool {
	return ppu.lcdc&0x80 != 0
}

func (ppu *PPU) CycleCount() clock.Tick {
	return clock.TCycle
}

func (ppu *PPU) Tick(b bus.Bus) {
	if !ppu.enabled() {
		if !ppu.off {
			ppu.turnOff(b)
		}
		return
	}
	if ppu.off {
		ppu.off = false
		ppu.dot = 0
		ppu.ly = 0
		ppu.windowLine = 0
	}

	if int(ppu.ly) < visibleLines {
		switch ppu.dot {
		case 0:
			ppu.setMode(b, ModeOAMScan)
		case transferStart:
			ppu.setMode(b, ModeTransfer)
		case transferEnd:
			ppu.drawLine()
			ppu.setMode(b, ModeHBlank)
		}
	}

	ppu.dot++
	if ppu.dot == dotsPerLine {
		ppu.dot = 0
		ppu.ly++
		switch int(ppu.ly) {
		case visibleLines:
			ppu.setMode(b, ModeVBlank)
			ppu.request(b, bus.InterruptVBlank)
		case linesPerFrame:
			ppu.ly = 0
			ppu.windowLine = 0
		}
	}
	ppu.updateStatLine(b)
}

func (ppu *PPU) turnOff(b bus.Bus) {
	ppu.off = true
	ppu.ly = 0
	ppu.dot = 0
	ppu.mode = ModeHBlank
	ppu.statLine = false
	ppu.release(b, bus.AreaOam)
	ppu.release(b, bus.AreaVram)
}

func (ppu *PPU) setMode(b bus.Bus, mode Mode) {
	ppu.mode = mode
	switch mode {
	case ModeOAMScan:
		b.Claim(bus.AreaOam, bus.LockPPU)
	case ModeTransfer:
		b.Claim(bus.AreaOam, bus.LockPPU)
		b.Claim(bus.AreaVram, bus.LockPPU)
	default:
		ppu.release(b, bus.AreaOam)
		ppu.release(b, bus.AreaVram)
	}
}

// release gives area back unless someone else took it over.
func (ppu *PPU) release(b bus.Bus, area bus.Area) {
	if b.Holder(area) == bus.LockPPU {
		b.Release(area)
	}
}

func (ppu *PPU) request(b bus.Bus, mask uint8) {
	if err := bus.RequestInterrupt(b, mask); err != nil {
		util.Trace("ppu: request interrupt: %v", err)
	}
}

// updateStatLine raises the STAT interrupt on a rising edge of the
// combined STAT sources.
func (ppu *PPU) updateStatLine(b bus.Bus) {
	line := ppu.stat&0x40 != 0 && ppu.ly == ppu.lyc
	switch ppu.mode {
	case ModeHBlank:
		line = line || ppu.stat&0x08 != 0
	case ModeVBlank:
		line = line || ppu.stat&0x10 != 0
	case ModeOAMScan:
		line = line || ppu.stat&0x20 != 0
	}
	if line && !ppu.statLine {
		ppu.request(b, bus.InterruptSTAT)
	}
	ppu.statLine = line
}

func (ppu *PPU) readSTAT() uint8 {
	v := 0x80 | ppu.stat&0x78 | uint8(ppu.mode)
	if ppu.ly == ppu.lyc {
		v |= 0x04
	}
	return v
}

func (ppu *PPU) Read(addr bus.Address) (uint8, error) {
	switch addr.Area {
	case bus.AreaVram:
		return ppu.vram[ppu.vramBank][addr.Relative], nil
	case bus.AreaOam:
		return ppu.oam[addr.Relative], nil
	}

	switch addr.Absolute {
	case AddrLCDC:
		return ppu.lcdc, nil
	case AddrSTAT:
		return ppu.readSTAT(), nil
	case AddrSCY:
		return ppu.scy, nil
	case AddrSCX:
		return ppu.scx, nil
	case AddrLY:
		return ppu.ly, nil
	case AddrLYC:
		return ppu.lyc, nil
	case AddrBGP:
		return ppu.bgp, nil
	case AddrOBP0:
		return ppu.obp0, nil
	case AddrOBP1:
		return ppu.obp1, nil
	case AddrWY:
		return ppu.wy, nil
	case AddrWX:
		return ppu.wx, nil
	}
	if !ppu.color {
		return bus.OpenBus, bus.Unmapped(addr)
	}
	switch addr.Absolute {
	case AddrVBK:
		return 0xfe | ppu.vramBank, nil
	case AddrBCPS:
		return ppu.bgPalette.readIndex(), nil
	case AddrBCPD:
		return ppu.bgPalette.readData(), nil
	case AddrOCPS:
		return ppu.objPalette.readIndex(), nil
	case AddrOCPD:
		return ppu.objPalette.readData(), nil
	case AddrOPRI:
		return 0xfe | ppu.opri, nil
	}
	return bus.OpenBus, bus.Unmapped(addr)
}

func (ppu *PPU) Write(v uint8, addr bus.Address) error {
	switch addr.Area {
	case bus.AreaVram:
		ppu.vram[ppu.vramBank][addr.Relative] = v
		return nil
	case bus.AreaOam:
		ppu.oam[addr.Relative] = v
		return nil
	}

	switch addr.Absolute {
	case AddrLCDC:
		util.Trace("\t<<<WRITE: LCDC %08b>>>", v)
		ppu.lcdc = v
		if !ppu.enabled() {
			ppu.ly = 0
			ppu.mode = ModeHBlank
		}
		return nil
	case AddrSTAT:
		ppu.stat = v & 0x78
		return nil
	case AddrSCY:
		ppu.scy = v
		return nil
	case AddrSCX:
		ppu.scx = v
		return nil
	case AddrLY:
		return nil
	case AddrLYC:
		ppu.lyc = v
		return nil
	case AddrBGP:
		ppu.bgp = v
		return nil
	case AddrOBP0:
		ppu.obp0 = v
		return nil
	case AddrOBP1:
		ppu.obp1 = v
		return nil
	case AddrWY:
		ppu.wy = v
		return nil
	case AddrWX:
		ppu.wx = v
		return nil
	}
	if !ppu.color {
		return bus.Unmapped(addr)
	}
	switch addr.Absolute {
	case AddrVBK:
		ppu.vramBank = v & 1
	case AddrBCPS:
		ppu.bgPalette.writeIndex(v)
	case AddrBCPD:
		ppu.bgPalette.writeData(v)
	case AddrOCPS:
		ppu.objPalette.writeIndex(v)
	case AddrOCPD:
		ppu.objPalette.writeData(v)
	case AddrOPRI:
		ppu.opri = v & 1
	default:
		return bus.Unmapped(addr)
	}
	return nil
}
