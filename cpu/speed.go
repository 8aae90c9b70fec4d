package cpu

import (
	"github.com/ushitora-anqou/mcboy/bus"
	"github.com/ushitora-anqou/mcboy/util"
)

// SpeedSwitch is the KEY1 register of the color model. STOP toggles the
// speed when the switch is armed.
type SpeedSwitch struct {
	double, armed bool
}

func (sw *SpeedSwitch) DoubleSpeed() bool {
	return sw.double
}

func (sw *SpeedSwitch) toggle() {
	sw.double = !sw.double
	sw.armed = false
	util.Trace("cpu: double speed %v", sw.double)
}

func (sw *SpeedSwitch) Read(addr bus.Address) (uint8, error) {
	return 0x7e | util.BoolToU8(sw.double)<<7 | util.BoolToU8(sw.armed), nil
}

func (sw *SpeedSwitch) Write(v uint8, addr bus.Address) error {
	sw.armed = v&1 != 0
	return nil
}
