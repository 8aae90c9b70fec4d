package timer

import (
	"github.com/ushitora-anqou/mcboy/bus"
	"github.com/ushitora-anqou/mcboy/clock"
	"github.com/ushitora-anqou/mcboy/util"
)

const (
	AddrDIV  uint16 = 0xff04
	AddrTIMA uint16 = 0xff05
	AddrTMA  uint16 = 0xff06
	AddrTAC  uint16 = 0xff07
)

// Bit of the system counter whose falling edge clocks TIMA, by TAC select.
var selectBits = [4]uint{9, 3, 5, 7}

// Timer serves DIV, TIMA, TMA and TAC.
type Timer struct {
	counter        uint16
	tima, tma, tac uint8
	signal         bool
	overflow       bool
}

func NewTimer() *Timer {
	return &Timer{}
}

func (t *Timer) DIV() uint8 {
	return uint8(t.counter >> 8)
}

func (t *Timer) TIMA() uint8 {
	return t.tima
}

func (t *Timer) TMA() uint8 {
	return t.tma
}

func (t *Timer) TAC() uint8 {
	return t.tac
}

func (t *Timer) timerEnable() bool {
	return ((t.tac >> 2) & 1) != 0
}

func (t *Timer) inputClockSelect() uint8 {
	return t.tac & 3
}

// update recomputes the clock signal and counts its falling edge.
func (t *Timer) update() {
	bit := selectBits[t.inputClockSelect()]
	signal := t.timerEnable() && (t.counter>>bit)&1 != 0
	if t.signal && !signal {
		t.incTIMA()
	}
	t.signal = signal
}

func (t *Timer) incTIMA() {
	if t.tima == 0xff {
		t.tima = t.tma
		t.overflow = true
		return
	}
	t.tima++
}

func (t *Timer) CycleCount() clock.Tick {
	return clock.TCycle
}

func (t *Timer) Tick(b bus.Bus) {
	t.counter++
	t.update()
	if t.overflow {
		t.overflow = false
		if err := bus.RequestInterrupt(b, bus.InterruptTimer); err != nil {
			util.Trace("timer: request interrupt: %v", err)
		}
	}
}

func (t *Timer) Read(addr bus.Address) (uint8, error) {
	switch addr.Absolute {
	case AddrDIV:
		return t.DIV(), nil
	case AddrTIMA:
		return t.tima, nil
	case AddrTMA:
		return t.tma, nil
	case AddrTAC:
		return 0xf8 | t.tac, nil
	}
	return bus.OpenBus, bus.Unmapped(addr)
}

// Writes to DIV or TAC may produce a falling edge and clock TIMA. An
// overflow caused that way is signalled on the next tick.
func (t *Timer) Write(v uint8, addr bus.Address) error {
	switch addr.Absolute {
	case AddrDIV:
		t.counter = 0
		t.update()
	case AddrTIMA:
		t.tima = v
	case AddrTMA:
		t.tma = v
	case AddrTAC:
		util.Trace("\t<<<WRITE: TAC %08b>>>", v)
		t.tac = v & 7
		t.update()
	default:
		return bus.Unmapped(addr)
	}
	return nil
}
