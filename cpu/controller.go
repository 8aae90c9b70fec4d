package cpu

import (
	"fmt"
	"math/bits"

	"github.com/ushitora-anqou/mcboy/bus"
	"github.com/ushitora-anqou/mcboy/util"
)

// Flow tells the controller what to do after a step ran.
type Flow uint8

const (
	// Chain runs the next queued step within the same call.
	Chain Flow = iota
	// Consume ends the call; one macro-step has been spent.
	Consume
	// Retire completes the instruction and ends the call.
	Retire
	// RetireChain completes the instruction and fetches the next one
	// within the same call.
	RetireChain
)

// Instr identifies the instruction being executed.
type Instr struct {
	Prefixed bool
	Opcode   Opcode
	OpcodeCB OpcodeCB
}

func (i Instr) String() string {
	if i.Prefixed {
		return i.OpcodeCB.String()
	}
	return i.Opcode.String()
}

// State is what a step may touch besides the controller.
type State struct {
	Regs  *Registers
	Bus   bus.Bus
	Speed *SpeedSwitch
}

func (s *State) read(addr uint16) uint8 {
	v, err := s.Bus.Read(addr, bus.NoLock)
	if err != nil {
		util.Trace("cpu: read 0x%04x: %v", addr, err)
		return bus.OpenBus
	}
	return v
}

func (s *State) write(addr uint16, v uint8) {
	if err := s.Bus.Write(addr, v, bus.NoLock); err != nil {
		util.Trace("cpu: write 0x%02x to 0x%04x: %v", v, addr, err)
	}
}

func (s *State) readPC() uint8 {
	pc := s.Regs.PC()
	s.Regs.SetPC(pc + 1)
	return s.read(pc)
}

// pendingInterrupts returns the sources both requested and enabled.
func (s *State) pendingInterrupts() uint8 {
	return s.read(bus.AddrIE) & s.read(bus.AddrIF) & bus.InterruptMask
}

// Controller executes instructions as queues of micro-steps. Both the step
// queue and the operand cache are last in, first out.
type Controller struct {
	instr      Instr
	hasInstr   bool
	actions    []Action
	cache      []uint8
	ime        bool
	imePending bool
	lockedUp   bool
	fetched    uint64
}

func NewController() *Controller {
	return &Controller{
		actions: make([]Action, 0, 16),
		cache:   make([]uint8, 0, 8),
	}
}

// Instr returns the instruction in flight, if any.
func (ctl *Controller) Instr() (Instr, bool) {
	return ctl.instr, ctl.hasInstr
}

func (ctl *Controller) IME() bool {
	return ctl.ime
}

func (ctl *Controller) SetIME(flag bool) {
	ctl.ime = flag
	ctl.imePending = false
}

// Fetched counts instruction boundaries, interrupt dispatches included.
func (ctl *Controller) Fetched() uint64 {
	return ctl.fetched
}

func (ctl *Controller) Push(v uint8) {
	ctl.cache = append(ctl.cache, v)
}

func (ctl *Controller) Pop() uint8 {
	n := len(ctl.cache)
	if n == 0 {
		panic(fmt.Sprintf("cpu: operand cache underflow in %v", ctl.instr))
	}
	v := ctl.cache[n-1]
	ctl.cache = ctl.cache[:n-1]
	return v
}

// PushU16 leaves the high byte on top of the cache.
func (ctl *Controller) PushU16(v uint16) {
	ctl.Push(uint8(v))
	ctl.Push(uint8(v >> 8))
}

func (ctl *Controller) PopU16() uint16 {
	hi := ctl.Pop()
	lo := ctl.Pop()
	return uint16(hi)<<8 | uint16(lo)
}

// PushActions queues steps so that they run in argument order.
func (ctl *Controller) PushActions(actions ...Action) {
	for i := len(actions) - 1; i >= 0; i-- {
		ctl.actions = append(ctl.actions, actions[i])
	}
}

func (ctl *Controller) popAction() (Action, bool) {
	n := len(ctl.actions)
	if n == 0 {
		return 0, false
	}
	act := ctl.actions[n-1]
	ctl.actions = ctl.actions[:n-1]
	return act, true
}

// Clear drops the pending steps and operands.
func (ctl *Controller) Clear() {
	ctl.actions = ctl.actions[:0]
	ctl.cache = ctl.cache[:0]
	ctl.hasInstr = false
}

// Pending returns the queued steps in execution order.
func (ctl *Controller) Pending() []Action {
	pending := make([]Action, len(ctl.actions))
	for i, act := range ctl.actions {
		pending[len(pending)-1-i] = act
	}
	return pending
}

// Step advances execution by one macro-step.
func (ctl *Controller) Step(s *State) {
	for {
		act, ok := ctl.popAction()
		if !ok {
			act = ctl.boundary(s)
		}
		switch steps[act](ctl, s, act) {
		case Chain:
		case Consume:
			return
		case Retire:
			ctl.Clear()
			return
		case RetireChain:
			ctl.Clear()
		}
	}
}

func (ctl *Controller) boundary(s *State) Action {
	if len(ctl.cache) != 0 {
		panic(fmt.Sprintf("cpu: %d bytes left in the operand cache after %v", len(ctl.cache), ctl.instr))
	}
	ctl.Clear()
	ctl.fetched++

	ready := ctl.ime && s.pendingInterrupts() != 0
	if ctl.imePending {
		ctl.ime = true
		ctl.imePending = false
	}
	if ready {
		ctl.dispatchInterrupt(s)
		act, _ := ctl.popAction()
		return act
	}
	return ActFetch
}

// dispatchInterrupt queues the five macro-steps that call the handler of
// the lowest pending source.
func (ctl *Controller) dispatchInterrupt(s *State) {
	ctl.ime = false
	flags := s.read(bus.AddrIF)
	ready := flags & s.read(bus.AddrIE) & bus.InterruptMask
	bit := bits.TrailingZeros8(ready)
	if bit > 4 {
		panic(fmt.Sprintf("cpu: invalid interrupt source bit %d", bit))
	}
	s.write(bus.AddrIF, flags&^(1<<bit))
	util.Trace("cpu: interrupt %d at pc=0x%04x", bit, s.Regs.PC())

	ctl.PushU16(0x0040 | uint16(bit)<<3)
	ctl.PushActions(
		ActSleep,
		ActSleep,
		ActReadPC, ActDecSP, ActReadSP, ActWriteInd,
		ActDecSP, ActReadSP, ActWriteInd,
		ActJump, ActSleep,
	)
}

func fetch(ctl *Controller, s *State, _ Action) Flow {
	op := Opcode(s.readPC())
	ctl.instr = Instr{Opcode: op}
	ctl.hasInstr = true
	if op.Illegal() && !ctl.lockedUp {
		ctl.lockedUp = true
		util.Trace("cpu: illegal opcode 0x%02x at 0x%04x, locking up", uint8(op), s.Regs.PC()-1)
	}
	ctl.PushActions(baseTable[op]...)
	return Consume
}

func fetchCB(ctl *Controller, s *State, _ Action) Flow {
	op := OpcodeCB(s.readPC())
	ctl.instr = Instr{Prefixed: true, OpcodeCB: op}
	ctl.PushActions(cbTable[op]...)
	return Consume
}
