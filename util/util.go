package util

func BoolToU8(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

// TickCounter fires once every target ticks.
type TickCounter struct {
	current, target uint
}

func NewTickCounter(target uint) *TickCounter {
	return &TickCounter{target: target}
}

func (tc *TickCounter) Tick(tick uint) bool {
	posedge := false
	tc.current += tick
	if tc.current >= tc.target {
		tc.current -= tc.target
		posedge = true
	}
	return posedge
}

func (tc *TickCounter) Reset() {
	tc.current = 0
}

// RateConverter fires at rate `to` out of a clock running at rate `from`,
// carrying the remainder so the long-run rate is exact.
type RateConverter struct {
	acc, from, to uint
}

func NewRateConverter(from, to uint) *RateConverter {
	return &RateConverter{from: from, to: to}
}

func (rc *RateConverter) Tick() bool {
	rc.acc += rc.to
	if rc.acc >= rc.from {
		rc.acc -= rc.from
		return true
	}
	return false
}
