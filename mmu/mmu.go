package mmu

import (
	"errors"

	"github.com/ushitora-anqou/mcboy/bus"
)

/*
	GENERAL MEMORY MAP
	Thanks to: https://gbdev.gg8.se/wiki/articles/Memory_Map

	0000-3FFF  16KB ROM bank 00     From cartridge
	4000-7FFF  16KB ROM Bank 01-NN  From cartridge
	8000-9FFF  8KB Video RAM (VRAM)
	A000-BFFF  8KB External RAM     In cartridge
	C000-CFFF  4KB Work RAM (WRAM)
	D000-DFFF  4KB Work RAM (WRAM)  Switchable bank 1-7 on CGB
	E000-FDFF  Mirror of C000-DDFF (ECHO RAM)
	FE00-FE9F  Sprite attribute table (OAM)
	FEA0-FEFF  Not Usable
	FF00-FF7F  I/O Registers
	FF80-FFFE  High RAM (HRAM)
	FFFF-FFFF  Interrupts Enable Register (IE)
*/
type region struct {
	area       bus.Area
	start, end uint16
}

var memoryMap = [...]region{
	{bus.AreaRom, 0x0000, 0x7fff},
	{bus.AreaVram, 0x8000, 0x9fff},
	{bus.AreaExtRam, 0xa000, 0xbfff},
	{bus.AreaRam, 0xc000, 0xdfff},
	{bus.AreaERam, 0xe000, 0xfdff},
	{bus.AreaOam, 0xfe00, 0xfe9f},
	{bus.AreaUnbound, 0xfea0, 0xfeff},
	{bus.AreaIoReg, 0xff00, 0xff7f},
	{bus.AreaHighRam, 0xff80, 0xfffe},
	{bus.AreaIEReg, 0xffff, 0xffff},
}

// Devices lists what the router delegates to. Ram also serves the echo
// region.
type Devices struct {
	Rom, Vram, ExtRam, Ram, Oam, IoReg, HighRam, IEReg bus.Device
}

// MMU routes every access of the 16-bit address space to one device.
type MMU struct {
	devs           Devices
	overlay        bus.Device
	overlayColor   bool
	overlayRemoved bool
	locks          bus.Locks
}

var ErrOverlayRemoved = errors.New("boot overlay was already removed")

func NewMMU(devs Devices) *MMU {
	return &MMU{devs: devs}
}

// InstallOverlay maps dev over the bottom of the cartridge ROM. In color
// mode the overlay also covers 0x0200-0x08ff, leaving the cartridge header
// visible.
func (m *MMU) InstallOverlay(dev bus.Device, color bool) error {
	if m.overlayRemoved {
		return ErrOverlayRemoved
	}
	m.overlay = dev
	m.overlayColor = color
	return nil
}

// RemoveOverlay hands the low range back to the cartridge for good.
func (m *MMU) RemoveOverlay() {
	if m.overlay != nil {
		m.overlay = nil
		m.overlayRemoved = true
	}
}

func (m *MMU) OverlayInstalled() bool {
	return m.overlay != nil
}

func (m *MMU) inOverlay(addr uint16) bool {
	if m.overlay == nil {
		return false
	}
	return addr <= 0x00ff || (m.overlayColor && 0x0200 <= addr && addr <= 0x08ff)
}

// Resolve maps addr to its region. Addresses in the unusable gap resolve to
// AreaUnbound together with a routing error.
func (m *MMU) Resolve(addr uint16) (bus.Address, error) {
	if m.inOverlay(addr) {
		return bus.NewAddress(bus.AreaBios, addr), nil
	}
	for _, r := range memoryMap {
		if r.start <= addr && addr <= r.end {
			a := bus.NewAddress(r.area, addr)
			if r.area == bus.AreaUnbound {
				return a, &bus.RoutingError{Addr: addr, Area: r.area}
			}
			return a, nil
		}
	}
	panic("unreachable: memory map is exhaustive")
}

func (m *MMU) device(area bus.Area) bus.Device {
	switch area {
	case bus.AreaBios:
		return m.overlay
	case bus.AreaRom:
		return m.devs.Rom
	case bus.AreaVram:
		return m.devs.Vram
	case bus.AreaExtRam:
		return m.devs.ExtRam
	case bus.AreaRam, bus.AreaERam:
		return m.devs.Ram
	case bus.AreaOam:
		return m.devs.Oam
	case bus.AreaIoReg:
		return m.devs.IoReg
	case bus.AreaHighRam:
		return m.devs.HighRam
	case bus.AreaIEReg:
		return m.devs.IEReg
	}
	return nil
}

func (m *MMU) route(addr uint16, lock bus.Lock) (bus.Address, bus.Device, error) {
	a, err := m.Resolve(addr)
	if err != nil {
		return a, nil, err
	}
	dev := m.device(a.Area)
	if dev == nil {
		return a, nil, &bus.RoutingError{Addr: addr, Area: a.Area}
	}
	if !m.locks.Permitted(a.Area, lock) {
		return a, nil, &bus.RoutingError{Addr: addr, Area: a.Area, Holder: m.locks.Holder(a.Area)}
	}
	return a, dev, nil
}

func (m *MMU) Read(addr uint16, lock bus.Lock) (uint8, error) {
	a, dev, err := m.route(addr, lock)
	if err != nil {
		return bus.OpenBus, err
	}
	return dev.Read(a)
}

func (m *MMU) Write(addr uint16, v uint8, lock bus.Lock) error {
	a, dev, err := m.route(addr, lock)
	if err != nil {
		return err
	}
	return dev.Write(v, a)
}

func (m *MMU) Claim(area bus.Area, claimant bus.Lock) bool {
	return m.locks.Claim(area, claimant)
}

func (m *MMU) Release(area bus.Area) {
	m.locks.Release(area)
}

func (m *MMU) Holder(area bus.Area) bus.Lock {
	return m.locks.Holder(area)
}

// Walk reads the whole address space with debugger rights, skipping the
// unusable gap at 0xfea0-0xfeff. It stops early when fn returns false.
func (m *MMU) Walk(fn func(addr uint16, v uint8, err error) bool) {
	for addr := 0; addr <= 0xffff; addr++ {
		if addr == 0xfea0 {
			addr = 0xff00
		}
		v, err := m.Read(uint16(addr), bus.LockDebugger)
		if !fn(uint16(addr), v, err) {
			return
		}
	}
}

// BootRegister returns the FF50 device. Writing a non-zero value to it
// removes the boot overlay.
func (m *MMU) BootRegister() bus.Device {
	return &bootRegister{m}
}

type bootRegister struct {
	mmu *MMU
}

func (r *bootRegister) Read(addr bus.Address) (uint8, error) {
	if r.mmu.OverlayInstalled() {
		return 0xfe, nil
	}
	return 0xff, nil
}

func (r *bootRegister) Write(v uint8, addr bus.Address) error {
	if v != 0 {
		r.mmu.RemoveOverlay()
	}
	return nil
}
