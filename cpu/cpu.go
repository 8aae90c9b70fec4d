package cpu

import (
	"github.com/ushitora-anqou/mcboy/bus"
	"github.com/ushitora-anqou/mcboy/clock"
)

// CPU is the processor as seen by the clock.
type CPU struct {
	regs  Registers
	ctl   *Controller
	speed SpeedSwitch
	state State
}

func NewCPU() *CPU {
	cpu := &CPU{ctl: NewController()}
	cpu.state = State{Regs: &cpu.regs, Speed: &cpu.speed}
	return cpu
}

func (cpu *CPU) Registers() *Registers {
	return &cpu.regs
}

func (cpu *CPU) Controller() *Controller {
	return cpu.ctl
}

// Speed returns the KEY1 device.
func (cpu *CPU) Speed() *SpeedSwitch {
	return &cpu.speed
}

func (cpu *CPU) DoubleSpeed() bool {
	return cpu.speed.double
}

func (cpu *CPU) CycleCount() clock.Tick {
	return clock.MCycle
}

func (cpu *CPU) Tick(b bus.Bus) {
	cpu.state.Bus = b
	cpu.ctl.Step(&cpu.state)
}
