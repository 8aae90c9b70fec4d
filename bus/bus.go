package bus

// OpenBus is the value a read yields when no device answers.
const OpenBus uint8 = 0xff

// Interrupt sources, as laid out in IE and IF.
const (
	InterruptVBlank uint8 = 1 << iota
	InterruptSTAT
	InterruptTimer
	InterruptSerial
	InterruptJoypad
)

// InterruptMask covers the five interrupt sources.
const InterruptMask uint8 = 0x1f

const (
	AddrIF uint16 = 0xff0f
	AddrIE uint16 = 0xffff
)

// Device is implemented by every memory-backed peripheral installed behind
// the router.
type Device interface {
	Read(addr Address) (uint8, error)
	Write(v uint8, addr Address) error
}

// Bus is what time-driven devices see of the memory map.
type Bus interface {
	Read(addr uint16, lock Lock) (uint8, error)
	Write(addr uint16, v uint8, lock Lock) error

	Claim(area Area, claimant Lock) bool
	Release(area Area)
	Holder(area Area) Lock
}

// LCD receives finished scanlines from the pixel unit.
type LCD interface {
	DrawLine(ly int, scanline []uint8) error
}

// RequestInterrupt raises the given sources in IF.
func RequestInterrupt(b Bus, mask uint8) error {
	v, err := b.Read(AddrIF, NoLock)
	if err != nil {
		return err
	}
	return b.Write(AddrIF, v|mask, NoLock)
}
