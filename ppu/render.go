package ppu

import (
	"sort"

	"github.com/ushitora-anqou/mcboy/constant"
	"github.com/ushitora-anqou/mcboy/util"
)

// tileRow returns the two bitplanes of row y of a tile. Addresses are
// relative to 0x8000.
func (ppu *PPU) tileRow(bank int, tileNo uint8, y int, signed bool) (uint8, uint8) {
	var off int
	if signed {
		off = 0x1000 + int(int8(tileNo))*16
	} else {
		off = int(tileNo) * 16
	}
	off += 2 * y
	return ppu.vram[bank][off], ppu.vram[bank][off+1]
}

func pixelOf(lsb, msb uint8, x int) uint8 {
	return (lsb>>(7-x))&1 | ((msb>>(7-x))&1)<<1
}

func shade(palette, idx uint8) uint8 {
	return (palette >> (2 * idx)) & 3
}

// fetchBG returns the color index and priority bit of pixel (x, y) of the
// 32x32 tile map at mapBase.
func (ppu *PPU) fetchBG(mapBase int, x, y int) (uint8, bool) {
	tileX, tileY := x/8, y/8
	pixX, pixY := x%8, y%8
	mapOff := mapBase + 32*tileY + tileX
	tileNo := ppu.vram[0][mapOff]

	bank, prio := 0, false
	if ppu.color {
		attr := ppu.vram[1][mapOff]
		bank = int((attr >> 3) & 1)
		if attr&0x20 != 0 {
			pixX = 7 - pixX
		}
		if attr&0x40 != 0 {
			pixY = 7 - pixY
		}
		prio = attr&0x80 != 0
	}
	lsb, msb := ppu.tileRow(bank, tileNo, pixY, ppu.lcdc&0x10 == 0)
	return pixelOf(lsb, msb, pixX), prio
}

func (ppu *PPU) drawLine() {
	ly := int(ppu.ly)
	ppu.drawBackground(ly)
	if ppu.lcdc&0x02 != 0 {
		ppu.drawObjects(ly)
	}
	if err := ppu.lcd.DrawLine(ly, ppu.scanline[:]); err != nil {
		util.Trace("ppu: draw line %d: %v", ly, err)
	}
}

func (ppu *PPU) drawBackground(ly int) {
	// Outside the color model, LCDC bit 0 blanks both layers.
	if !ppu.color && ppu.lcdc&0x01 == 0 {
		for x := range ppu.scanline {
			ppu.scanline[x] = shade(ppu.bgp, 0)
			ppu.bgIndex[x] = 0
			ppu.bgPrio[x] = false
		}
		return
	}

	bgMap := 0x1800
	if ppu.lcdc&0x08 != 0 {
		bgMap = 0x1c00
	}
	winMap := 0x1800
	if ppu.lcdc&0x40 != 0 {
		winMap = 0x1c00
	}
	winX := int(ppu.wx) - 7
	window := ppu.lcdc&0x20 != 0 && ly >= int(ppu.wy) && winX < constant.LCD_WIDTH

	y := int(uint8(ly) + ppu.scy) // NOTE: wrap around
	for ax := 0; ax < constant.LCD_WIDTH; ax++ {
		var idx uint8
		var prio bool
		if window && ax >= winX {
			idx, prio = ppu.fetchBG(winMap, ax-winX, ppu.windowLine)
		} else {
			x := int(uint8(ax) + ppu.scx) // NOTE: wrap around
			idx, prio = ppu.fetchBG(bgMap, x, y)
		}
		ppu.bgIndex[ax] = idx
		ppu.bgPrio[ax] = prio
		ppu.scanline[ax] = ppu.bgShade(idx)
	}
	if window {
		ppu.windowLine++
	}
}

// bgShade maps a background color index. The color model keeps the raw
// index since its palette memory is not rendered.
func (ppu *PPU) bgShade(idx uint8) uint8 {
	if ppu.color {
		return idx
	}
	return shade(ppu.bgp, idx)
}

func (ppu *PPU) objectHeight() int {
	if ppu.lcdc&0x04 != 0 {
		return 16
	}
	return 8
}

// scanObjects returns the first ten objects of OAM on line ly, in drawing
// priority order.
func (ppu *PPU) scanObjects(ly int) []*object {
	height := ppu.objectHeight()
	objs := make([]*object, 0, maxObjectsPerLine)
	for i := 0; i < 40 && len(objs) < maxObjectsPerLine; i++ {
		obj := newObject(ppu.oam[:], i)
		if obj.covers(ly, height) {
			objs = append(objs, obj)
		}
	}
	if ppu.color && ppu.opri&1 == 0 {
		sort.Sort(byOAMIndex(objs))
	} else {
		sort.Sort(byXAndOAMIndex(objs))
	}
	return objs
}

func (ppu *PPU) drawObjects(ly int) {
	objs := ppu.scanObjects(ly)
	height := ppu.objectHeight()
	drawn := [constant.LCD_WIDTH]bool{}
	for _, obj := range objs {
		row := ly - obj.screenY()
		if obj.yFlip() {
			row = height - 1 - row
		}
		tileNo := obj.tileIndex
		if height == 16 {
			tileNo &^= 1
		}
		bank := 0
		if ppu.color {
			bank = obj.vramBank()
		}
		lsb, msb := ppu.tileRow(bank, tileNo, row, false)

		for px := 0; px < 8; px++ {
			x := obj.screenX() + px
			if x < 0 || x >= constant.LCD_WIDTH || drawn[x] {
				continue
			}
			col := px
			if obj.xFlip() {
				col = 7 - px
			}
			idx := pixelOf(lsb, msb, col)
			if idx == 0 {
				continue
			}
			drawn[x] = true
			if ppu.bgIndex[x] != 0 && (obj.behindBG() || ppu.bgPrio[x]) {
				continue
			}
			if ppu.color {
				ppu.scanline[x] = idx
				continue
			}
			pal := ppu.obp0
			if obj.paletteNumber() {
				pal = ppu.obp1
			}
			ppu.scanline[x] = shade(pal, idx)
		}
	}
}
