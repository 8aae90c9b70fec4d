package ppu

import (
	"testing"

	"github.com/ushitora-anqou/mcboy/bus"
	"github.com/ushitora-anqou/mcboy/bus/bustest"
	"github.com/ushitora-anqou/mcboy/constant"
)

type recorder struct {
	lines [constant.LCD_HEIGHT][]uint8
	count int
}

func (r *recorder) DrawLine(ly int, scanline []uint8) error {
	r.lines[ly] = append([]uint8(nil), scanline...)
	r.count++
	return nil
}

func newTestPPU(color bool) (*PPU, *recorder, *bustest.Mock) {
	lcd := &recorder{}
	ppu := NewPPU(lcd, color)
	ppu.PostBoot()
	return ppu, lcd, bustest.NewMock()
}

func write(t *testing.T, ppu *PPU, addr uint16, v uint8) {
	t.Helper()
	var a bus.Address
	switch {
	case addr < 0xa000:
		a = bus.NewAddress(bus.AreaVram, addr)
	case addr < 0xff00:
		a = bus.NewAddress(bus.AreaOam, addr)
	default:
		a = bus.NewAddress(bus.AreaIoReg, addr)
	}
	if err := ppu.Write(v, a); err != nil {
		t.Fatalf("write 0x%04x: %v", addr, err)
	}
}

func read(t *testing.T, ppu *PPU, addr uint16) uint8 {
	t.Helper()
	v, err := ppu.Read(bus.NewAddress(bus.AreaIoReg, addr))
	if err != nil {
		t.Fatalf("read 0x%04x: %v", addr, err)
	}
	return v
}

func TestFrameTiming(t *testing.T) {
	ppu, lcd, b := newTestPPU(false)
	for frame := 0; frame < 3; frame++ {
		vblanks := 0
		for i := 0; i < constant.FRAME_TICKS; i++ {
			ppu.Tick(b)
			if b.Memory[bus.AddrIF]&bus.InterruptVBlank != 0 {
				b.Memory[bus.AddrIF] = 0
				vblanks++
				if ppu.LY() != 144 || ppu.Mode() != ModeVBlank {
					t.Fatalf("vblank at ly %d mode %v", ppu.LY(), ppu.Mode())
				}
			}
		}
		if vblanks != 1 {
			t.Fatalf("frame %d: %d vblank interrupts, expected 1", frame, vblanks)
		}
	}
	if lcd.count != 3*constant.LCD_HEIGHT {
		t.Fatalf("lines drawn: got %d, expected %d", lcd.count, 3*constant.LCD_HEIGHT)
	}
	if ppu.LY() != 0 {
		t.Fatalf("ly after whole frames: got %d", ppu.LY())
	}
}

func TestModeLocks(t *testing.T) {
	ppu, _, b := newTestPPU(false)
	tests := []struct {
		ticks     int
		mode      Mode
		oam, vram bus.Lock
	}{
		{1, ModeOAMScan, bus.LockPPU, bus.NoLock},
		{80, ModeOAMScan, bus.LockPPU, bus.NoLock},
		{81, ModeTransfer, bus.LockPPU, bus.LockPPU},
		{252, ModeTransfer, bus.LockPPU, bus.LockPPU},
		{253, ModeHBlank, bus.NoLock, bus.NoLock},
		{457, ModeOAMScan, bus.LockPPU, bus.NoLock},
	}
	done := 0
	for _, test := range tests {
		for ; done < test.ticks; done++ {
			ppu.Tick(b)
		}
		if ppu.Mode() != test.mode {
			t.Fatalf("after %d ticks: mode %v, expected %v", test.ticks, ppu.Mode(), test.mode)
		}
		if got := b.Holder(bus.AreaOam); got != test.oam {
			t.Fatalf("after %d ticks: oam held by %v, expected %v", test.ticks, got, test.oam)
		}
		if got := b.Holder(bus.AreaVram); got != test.vram {
			t.Fatalf("after %d ticks: vram held by %v, expected %v", test.ticks, got, test.vram)
		}
	}
}

func TestDMAKeepsOAM(t *testing.T) {
	ppu, _, b := newTestPPU(false)
	if !b.Claim(bus.AreaOam, bus.LockDMA) {
		t.Fatalf("dma claim failed")
	}
	for i := 0; i < 300; i++ {
		ppu.Tick(b)
	}
	if got := b.Holder(bus.AreaOam); got != bus.LockDMA {
		t.Fatalf("oam holder: got %v, expected dma", got)
	}
}

func TestLYCInterrupt(t *testing.T) {
	ppu, _, b := newTestPPU(false)
	write(t, ppu, AddrLYC, 2)
	write(t, ppu, AddrSTAT, 0x40)
	for i := 0; i < 2*dotsPerLine-1; i++ {
		ppu.Tick(b)
	}
	if b.Memory[bus.AddrIF]&bus.InterruptSTAT != 0 {
		t.Fatalf("stat interrupt before ly reached lyc")
	}
	ppu.Tick(b)
	if b.Memory[bus.AddrIF]&bus.InterruptSTAT == 0 {
		t.Fatalf("no stat interrupt on ly == lyc")
	}
	if read(t, ppu, AddrSTAT)&0x04 == 0 {
		t.Fatalf("coincidence flag not set")
	}

	// The line stays high for the whole line, so no second request.
	b.Memory[bus.AddrIF] = 0
	for i := 0; i < dotsPerLine-1; i++ {
		ppu.Tick(b)
	}
	if b.Memory[bus.AddrIF] != 0 {
		t.Fatalf("stat interrupt requested twice")
	}
}

func TestHBlankInterrupt(t *testing.T) {
	ppu, _, b := newTestPPU(false)
	write(t, ppu, AddrSTAT, 0x08)
	for i := 0; i < transferEnd; i++ {
		ppu.Tick(b)
	}
	if b.Memory[bus.AddrIF] != 0 {
		t.Fatalf("stat interrupt before hblank")
	}
	ppu.Tick(b)
	if b.Memory[bus.AddrIF] != bus.InterruptSTAT {
		t.Fatalf("IF: got %02x, expected stat", b.Memory[bus.AddrIF])
	}
}

func TestLCDOff(t *testing.T) {
	ppu, lcd, b := newTestPPU(false)
	for i := 0; i < 1000; i++ {
		ppu.Tick(b)
	}
	write(t, ppu, AddrLCDC, 0x11)
	if v := read(t, ppu, AddrLY); v != 0 {
		t.Fatalf("ly: got %d, expected 0", v)
	}
	drawn := lcd.count
	b.Memory[bus.AddrIF] = 0
	for i := 0; i < constant.FRAME_TICKS; i++ {
		ppu.Tick(b)
	}
	if b.Memory[bus.AddrIF] != 0 || lcd.count != drawn {
		t.Fatalf("lcd off still active: IF %02x lines %d", b.Memory[bus.AddrIF], lcd.count-drawn)
	}
	if b.Holder(bus.AreaOam) != bus.NoLock || b.Holder(bus.AreaVram) != bus.NoLock {
		t.Fatalf("locks held while lcd off")
	}
	if v := read(t, ppu, AddrSTAT); v&3 != 0 {
		t.Fatalf("mode while off: %d", v&3)
	}

	write(t, ppu, AddrLCDC, 0x91)
	ppu.Tick(b)
	if ppu.Mode() != ModeOAMScan || ppu.LY() != 0 {
		t.Fatalf("restart: mode %v ly %d", ppu.Mode(), ppu.LY())
	}
}

func TestRegisterMasks(t *testing.T) {
	ppu, _, _ := newTestPPU(false)
	write(t, ppu, AddrSTAT, 0xff)
	if v := read(t, ppu, AddrSTAT); v != 0xfc {
		t.Fatalf("stat: got %02x, expected fc", v)
	}
	write(t, ppu, AddrLY, 0x55)
	if v := read(t, ppu, AddrLY); v != 0 {
		t.Fatalf("ly is writable: %02x", v)
	}
	if _, err := ppu.Read(bus.NewAddress(bus.AreaIoReg, AddrVBK)); !bus.IsRegionError(err) {
		t.Fatalf("vbk on monochrome model: %v", err)
	}
}

func TestColorRegisters(t *testing.T) {
	ppu, _, _ := newTestPPU(true)
	write(t, ppu, AddrVBK, 0x01)
	write(t, ppu, 0x8000, 0xaa)
	write(t, ppu, AddrVBK, 0x00)
	write(t, ppu, 0x8000, 0x55)
	if ppu.vram[1][0] != 0xaa || ppu.vram[0][0] != 0x55 {
		t.Fatalf("vram banks: %02x %02x", ppu.vram[0][0], ppu.vram[1][0])
	}
	if v := read(t, ppu, AddrVBK); v != 0xfe {
		t.Fatalf("vbk: got %02x", v)
	}

	write(t, ppu, AddrBCPS, 0x80|0x3f)
	write(t, ppu, AddrBCPD, 0x12)
	write(t, ppu, AddrBCPD, 0x34)
	if ppu.bgPalette.data[0x3f] != 0x12 || ppu.bgPalette.data[0] != 0x34 {
		t.Fatalf("palette auto increment did not wrap")
	}
	if v := read(t, ppu, AddrBCPS); v != 0xc1 {
		t.Fatalf("bcps: got %02x, expected c1", v)
	}
}

func TestRenderBackgroundAndObject(t *testing.T) {
	ppu, lcd, b := newTestPPU(false)
	write(t, ppu, AddrBGP, 0xe4)
	write(t, ppu, AddrOBP0, 0xe4)
	write(t, ppu, AddrLCDC, 0x93)
	// Tile 0: color 1 everywhere. Tile 1: color 3 in the leftmost column.
	for row := 0; row < 8; row++ {
		write(t, ppu, uint16(0x8000+2*row), 0xff)
		write(t, ppu, uint16(0x8010+2*row), 0x80)
		write(t, ppu, uint16(0x8011+2*row), 0x80)
	}
	// Object 0 at the top left corner using tile 1.
	write(t, ppu, 0xfe00, 16)
	write(t, ppu, 0xfe01, 8)
	write(t, ppu, 0xfe02, 1)

	for i := 0; i <= transferEnd; i++ {
		ppu.Tick(b)
	}
	line := lcd.lines[0]
	if line == nil {
		t.Fatalf("line 0 not drawn")
	}
	if line[0] != 3 {
		t.Fatalf("object pixel: got %d, expected 3", line[0])
	}
	for x := 1; x < constant.LCD_WIDTH; x++ {
		if line[x] != 1 {
			t.Fatalf("background pixel %d: got %d, expected 1", x, line[x])
		}
	}
}

func TestObjectBehindBackground(t *testing.T) {
	ppu, lcd, b := newTestPPU(false)
	write(t, ppu, AddrBGP, 0xe4)
	write(t, ppu, AddrOBP1, 0x00)
	write(t, ppu, AddrLCDC, 0x93)
	write(t, ppu, 0x8000, 0x0f) // right half of tile 0 is color 1
	write(t, ppu, 0x8010, 0xff)
	write(t, ppu, 0xfe00, 16)
	write(t, ppu, 0xfe01, 8)
	write(t, ppu, 0xfe02, 1)
	write(t, ppu, 0xfe03, 0x90) // behind background, OBP1

	for i := 0; i <= transferEnd; i++ {
		ppu.Tick(b)
	}
	line := lcd.lines[0]
	for x := 0; x < 4; x++ {
		if line[x] != 0 {
			t.Fatalf("pixel %d: got %d, expected object through color 0", x, line[x])
		}
	}
	for x := 4; x < 8; x++ {
		if line[x] != 1 {
			t.Fatalf("pixel %d: got %d, expected background", x, line[x])
		}
	}
}

func TestTenObjectsPerLine(t *testing.T) {
	ppu, _, _ := newTestPPU(false)
	for i := 0; i < 12; i++ {
		ppu.oam[4*i] = 16
		ppu.oam[4*i+1] = uint8(160 - 8*i)
	}
	objs := ppu.scanObjects(0)
	if len(objs) != maxObjectsPerLine {
		t.Fatalf("objects: got %d, expected %d", len(objs), maxObjectsPerLine)
	}
	for i := 1; i < len(objs); i++ {
		if objs[i-1].x > objs[i].x {
			t.Fatalf("objects not ordered by x")
		}
	}
	if objs[0].oamIndex != 9 {
		t.Fatalf("leftmost object: got %d, expected 9", objs[0].oamIndex)
	}
}
