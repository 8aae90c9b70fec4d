package cpu

import (
	"github.com/ushitora-anqou/mcboy/bus"
	"github.com/ushitora-anqou/mcboy/util"
)

// InterruptRegisters serves IE at 0xffff and IF at 0xff0f.
type InterruptRegisters struct {
	enable, flag uint8
}

func NewInterruptRegisters() *InterruptRegisters {
	return &InterruptRegisters{}
}

func (ir *InterruptRegisters) IE() uint8 {
	return ir.enable
}

func (ir *InterruptRegisters) IF() uint8 {
	return ir.flag
}

func (ir *InterruptRegisters) Read(addr bus.Address) (uint8, error) {
	switch {
	case addr.Area == bus.AreaIEReg:
		return ir.enable, nil
	case addr.Absolute == bus.AddrIF:
		return ir.flag | ^bus.InterruptMask, nil
	}
	return bus.OpenBus, bus.Unmapped(addr)
}

func (ir *InterruptRegisters) Write(v uint8, addr bus.Address) error {
	switch {
	case addr.Area == bus.AreaIEReg:
		util.Trace("\t<<<WRITE: IE Interrupt Enable: %08b>>>", v)
		ir.enable = v
		return nil
	case addr.Absolute == bus.AddrIF:
		ir.flag = v & bus.InterruptMask
		return nil
	}
	return bus.Unmapped(addr)
}
