// Package bustest provides a flat memory bus for device tests.
package bustest

import "github.com/ushitora-anqou/mcboy/bus"

// Mock backs the whole address space with a byte array. Claims go to a real
// lock table and are enforced like the router does: a denied access is a
// routing error, reads yield open bus and writes are dropped.
type Mock struct {
	Memory [0x10000]uint8
	locks  bus.Locks
}

func NewMock() *Mock {
	return &Mock{}
}

// areaOf maps addr to its region, without a boot overlay.
func areaOf(addr uint16) bus.Area {
	switch {
	case addr < 0x8000:
		return bus.AreaRom
	case addr < 0xa000:
		return bus.AreaVram
	case addr < 0xc000:
		return bus.AreaExtRam
	case addr < 0xe000:
		return bus.AreaRam
	case addr < 0xfe00:
		return bus.AreaERam
	case addr < 0xfea0:
		return bus.AreaOam
	case addr < 0xff00:
		return bus.AreaUnbound
	case addr < 0xff80:
		return bus.AreaIoReg
	case addr < 0xffff:
		return bus.AreaHighRam
	}
	return bus.AreaIEReg
}

func (m *Mock) check(addr uint16, lock bus.Lock) error {
	area := areaOf(addr)
	if !m.locks.Permitted(area, lock) {
		return &bus.RoutingError{Addr: addr, Area: area, Holder: m.locks.Holder(area)}
	}
	return nil
}

func (m *Mock) Read(addr uint16, lock bus.Lock) (uint8, error) {
	if err := m.check(addr, lock); err != nil {
		return bus.OpenBus, err
	}
	return m.Memory[addr], nil
}

func (m *Mock) Write(addr uint16, v uint8, lock bus.Lock) error {
	if err := m.check(addr, lock); err != nil {
		return err
	}
	m.Memory[addr] = v
	return nil
}

func (m *Mock) Claim(area bus.Area, claimant bus.Lock) bool {
	return m.locks.Claim(area, claimant)
}

func (m *Mock) Release(area bus.Area) {
	m.locks.Release(area)
}

func (m *Mock) Holder(area bus.Area) bus.Lock {
	return m.locks.Holder(area)
}

// Load copies data into memory starting at addr.
func (m *Mock) Load(addr uint16, data ...uint8) {
	copy(m.Memory[addr:], data)
}
