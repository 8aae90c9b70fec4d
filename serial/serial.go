// Package serial implements the link port without a partner on the other
// end: transfers clocked internally complete and shift in 0xff.
package serial

import (
	"io"

	"github.com/ushitora-anqou/mcboy/bus"
	"github.com/ushitora-anqou/mcboy/clock"
	"github.com/ushitora-anqou/mcboy/util"
)

const (
	AddrSB uint16 = 0xff01
	AddrSC uint16 = 0xff02

	stepsPerBit = 128
)

type Serial struct {
	sb, sc uint8
	active bool
	steps  int
	out    io.Writer
	line   []byte
}

// NewSerial echoes every byte sent to out, which may be nil.
func NewSerial(out io.Writer) *Serial {
	return &Serial{out: out}
}

func (s *Serial) Active() bool {
	return s.active
}

func (s *Serial) Read(addr bus.Address) (uint8, error) {
	switch addr.Absolute {
	case AddrSB:
		return s.sb, nil
	case AddrSC:
		return 0x7e | s.sc, nil
	}
	return bus.OpenBus, bus.Unmapped(addr)
}

func (s *Serial) Write(v uint8, addr bus.Address) error {
	switch addr.Absolute {
	case AddrSB:
		s.sb = v
	case AddrSC:
		s.sc = v & 0x81
		s.active = v&0x81 == 0x81
		s.steps = 0
	default:
		return bus.Unmapped(addr)
	}
	return nil
}

func (s *Serial) CycleCount() clock.Tick {
	return clock.MCycle
}

func (s *Serial) Tick(b bus.Bus) {
	if !s.active {
		return
	}
	s.steps++
	if s.steps < 8*stepsPerBit {
		return
	}
	s.complete(b)
}

func (s *Serial) complete(b bus.Bus) {
	s.emit(s.sb)
	s.sb = 0xff
	s.sc &^= 0x80
	s.active = false
	if err := bus.RequestInterrupt(b, bus.InterruptSerial); err != nil {
		util.Trace("serial: request interrupt: %v", err)
	}
}

func (s *Serial) emit(v uint8) {
	if s.out != nil {
		if _, err := s.out.Write([]byte{v}); err != nil {
			util.Trace("serial: %v", err)
		}
	}
	if v == '\n' {
		util.Trace("serial: %s", s.line)
		s.line = s.line[:0]
		return
	}
	s.line = append(s.line, v)
}
