package mmu

import "github.com/ushitora-anqou/mcboy/bus"

// IORegisters decodes the 0xff00-0xff7f region into register blocks, each
// served by its own device. Empty slots behave as undecoded offsets.
type IORegisters struct {
	Joypad    bus.Device // FF00
	Serial    bus.Device // FF01-FF02
	Timer     bus.Device // FF04-FF07
	Interrupt bus.Device // FF0F
	Sound     bus.Device // FF10-FF26, FF30-FF3F
	Lcd       bus.Device // FF40-FF45, FF47-FF4B, FF4F, FF68-FF6C
	OamDma    bus.Device // FF46
	Speed     bus.Device // FF4D
	BootRom   bus.Device // FF50
	Hdma      bus.Device // FF51-FF55
	WramBank  bus.Device // FF70
}

type ioBlock struct {
	start, end uint16
	dev        func(r *IORegisters) bus.Device
}

var ioBlocks = [...]ioBlock{
	{0xff00, 0xff00, func(r *IORegisters) bus.Device { return r.Joypad }},
	{0xff01, 0xff02, func(r *IORegisters) bus.Device { return r.Serial }},
	{0xff04, 0xff07, func(r *IORegisters) bus.Device { return r.Timer }},
	{0xff0f, 0xff0f, func(r *IORegisters) bus.Device { return r.Interrupt }},
	{0xff10, 0xff26, func(r *IORegisters) bus.Device { return r.Sound }},
	{0xff30, 0xff3f, func(r *IORegisters) bus.Device { return r.Sound }},
	{0xff40, 0xff45, func(r *IORegisters) bus.Device { return r.Lcd }},
	{0xff46, 0xff46, func(r *IORegisters) bus.Device { return r.OamDma }},
	{0xff47, 0xff4b, func(r *IORegisters) bus.Device { return r.Lcd }},
	{0xff4d, 0xff4d, func(r *IORegisters) bus.Device { return r.Speed }},
	{0xff4f, 0xff4f, func(r *IORegisters) bus.Device { return r.Lcd }},
	{0xff50, 0xff50, func(r *IORegisters) bus.Device { return r.BootRom }},
	{0xff51, 0xff55, func(r *IORegisters) bus.Device { return r.Hdma }},
	{0xff68, 0xff6c, func(r *IORegisters) bus.Device { return r.Lcd }},
	{0xff70, 0xff70, func(r *IORegisters) bus.Device { return r.WramBank }},
}

func (r *IORegisters) decode(addr bus.Address) (bus.Address, bus.Device) {
	for _, b := range ioBlocks {
		if b.start <= addr.Absolute && addr.Absolute <= b.end {
			return bus.NewIOAddress(addr.Absolute, b.start), b.dev(r)
		}
	}
	return addr, nil
}

func (r *IORegisters) Read(addr bus.Address) (uint8, error) {
	sub, dev := r.decode(addr)
	if dev == nil {
		return bus.OpenBus, bus.Unmapped(addr)
	}
	return dev.Read(sub)
}

func (r *IORegisters) Write(v uint8, addr bus.Address) error {
	sub, dev := r.decode(addr)
	if dev == nil {
		return bus.Unmapped(addr)
	}
	return dev.Write(v, sub)
}
