package clock

import "github.com/ushitora-anqou/mcboy/bus"

// CyclesPerFrame is the number of scheduler calls in one display refresh.
const CyclesPerFrame = 17556

// Tick is the granularity a Ticker is stepped at.
type Tick uint8

const (
	// TCycle devices are stepped once per base tick, four times per Cycle.
	TCycle Tick = iota
	// MCycle devices are stepped once per macro-step, once per Cycle.
	MCycle
)

// Steps returns how many times a device of this granularity is stepped per
// scheduler call.
func (t Tick) Steps() int {
	if t == TCycle {
		return 4
	}
	return 1
}

func (t Tick) String() string {
	if t == TCycle {
		return "T-cycle"
	}
	return "M-cycle"
}

// Ticker is implemented by every time-driven device.
type Ticker interface {
	CycleCount() Tick
	Tick(b bus.Bus)
}

// Clock advances the tickers one macro-step at a time and keeps track of
// the position inside the current frame.
type Clock struct {
	frameCycle int
}

// Cycle steps every ticker in argument order and reports whether the frame
// is still open.
func (c *Clock) Cycle(b bus.Bus, tickers ...Ticker) bool {
	c.NotCountedCycle(b, tickers...)
	c.frameCycle = (c.frameCycle + 1) % CyclesPerFrame
	return c.frameCycle != 0
}

// NotCountedCycle steps the tickers without moving the frame counter. It
// drives the extra cycle of double speed devices.
func (c *Clock) NotCountedCycle(b bus.Bus, tickers ...Ticker) {
	for _, t := range tickers {
		for i := t.CycleCount().Steps(); i > 0; i-- {
			t.Tick(b)
		}
	}
}

func (c *Clock) FrameCycle() int {
	return c.frameCycle
}
