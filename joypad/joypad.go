package joypad

import (
	"github.com/ushitora-anqou/mcboy/bus"
	"github.com/ushitora-anqou/mcboy/util"
)

const AddrJOYP uint16 = 0xff00

// Joypad serves JOYP. Button states are kept active low, as the register
// reports them.
type Joypad struct {
	selectAction, selectDirection bool
	action, direction             uint8
}

func NewJoypad() *Joypad {
	return &Joypad{
		action:    0x0f,
		direction: 0x0f,
	}
}

func (j *Joypad) Set(val uint8) {
	j.selectAction = ((val >> 5) & 1) == 0
	j.selectDirection = ((val >> 4) & 1) == 0
}

func (j *Joypad) Get() uint8 {
	v := uint8(0xc0)
	nibble := uint8(0x0f)
	if j.selectAction {
		nibble &= j.action
	} else {
		v |= 1 << 5
	}
	if j.selectDirection {
		nibble &= j.direction
	} else {
		v |= 1 << 4
	}
	return v | nibble
}

// Update takes the pressed buttons as bit sets, bit n for DIR_* and ACT_*
// value n, and reports whether any button went down.
func (j *Joypad) Update(direction, action uint8) bool {
	newDirection := 0x0f &^ direction
	newAction := 0x0f &^ action
	pressed := (j.direction&^newDirection)|(j.action&^newAction) != 0
	if pressed {
		util.Trace("joypad: pressed direction=%04b action=%04b", direction, action)
	}
	j.direction = newDirection
	j.action = newAction
	return pressed
}

func (j *Joypad) Read(addr bus.Address) (uint8, error) {
	if addr.Absolute != AddrJOYP {
		return bus.OpenBus, bus.Unmapped(addr)
	}
	return j.Get(), nil
}

func (j *Joypad) Write(v uint8, addr bus.Address) error {
	if addr.Absolute != AddrJOYP {
		return bus.Unmapped(addr)
	}
	j.Set(v)
	return nil
}
