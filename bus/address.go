package bus

import "fmt"

type Area uint8

const (
	AreaBios Area = iota
	AreaRom
	AreaVram
	AreaExtRam
	AreaRam
	AreaERam
	AreaOam
	AreaIoReg
	AreaHighRam
	AreaIEReg
	AreaUnbound

	numAreas
)

var areaBases = [numAreas]uint16{
	AreaBios:    0x0000,
	AreaRom:     0x0000,
	AreaVram:    0x8000,
	AreaExtRam:  0xa000,
	AreaRam:     0xc000,
	AreaERam:    0xe000,
	AreaOam:     0xfe00,
	AreaIoReg:   0xff00,
	AreaHighRam: 0xff80,
	AreaIEReg:   0xffff,
	AreaUnbound: 0xfea0,
}

var areaNames = [numAreas]string{
	AreaBios:    "bios",
	AreaRom:     "rom",
	AreaVram:    "vram",
	AreaExtRam:  "extram",
	AreaRam:     "ram",
	AreaERam:    "eram",
	AreaOam:     "oam",
	AreaIoReg:   "ioreg",
	AreaHighRam: "hram",
	AreaIEReg:   "ie",
	AreaUnbound: "unbound",
}

// Base returns the first absolute address of the area.
func (a Area) Base() uint16 {
	if a >= numAreas {
		panic(fmt.Sprintf("invalid area: %d", a))
	}
	return areaBases[a]
}

func (a Area) String() string {
	if a >= numAreas {
		return fmt.Sprintf("Area(%d)", uint8(a))
	}
	return areaNames[a]
}

// Address is an access resolved by the router. Relative is always
// Absolute minus the base of the region it was resolved against.
type Address struct {
	Relative uint16
	Absolute uint16
	Area     Area
}

// NewAddress resolves absolute against the base of area.
func NewAddress(area Area, absolute uint16) Address {
	return Address{
		Relative: absolute - area.Base(),
		Absolute: absolute,
		Area:     area,
	}
}

// NewIOAddress resolves absolute against the first register of an IO block.
func NewIOAddress(absolute, blockStart uint16) Address {
	return Address{
		Relative: absolute - blockStart,
		Absolute: absolute,
		Area:     AreaIoReg,
	}
}

func (a Address) String() string {
	return fmt.Sprintf("%s:%04x(+%04x)", a.Area, a.Absolute, a.Relative)
}
