package cpu

import (
	"testing"

	"github.com/ushitora-anqou/mcboy/bus"
	"github.com/ushitora-anqou/mcboy/bus/bustest"
)

// Cycles spent by each base opcode with every flag clear, so NZ and NC
// branches are taken while Z and C branches are not. Zero marks opcodes
// measured elsewhere.
var baseCycles = [256]int{
	1, 3, 2, 2, 1, 1, 2, 1, 5, 2, 2, 2, 1, 1, 2, 1,
	0, 3, 2, 2, 1, 1, 2, 1, 3, 2, 2, 2, 1, 1, 2, 1,
	3, 3, 2, 2, 1, 1, 2, 1, 2, 2, 2, 2, 1, 1, 2, 1,
	3, 3, 2, 2, 3, 3, 3, 1, 2, 2, 2, 2, 1, 1, 2, 1,
	1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1,
	1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1,
	1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1,
	2, 2, 2, 2, 2, 2, 0, 2, 1, 1, 1, 1, 1, 1, 2, 1,
	1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1,
	1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1,
	1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1,
	1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1,
	5, 3, 4, 4, 6, 4, 2, 4, 2, 4, 3, 0, 3, 6, 2, 4,
	5, 3, 4, 0, 6, 4, 2, 4, 2, 4, 3, 0, 3, 0, 2, 4,
	3, 3, 2, 0, 0, 4, 2, 4, 4, 1, 4, 0, 0, 0, 2, 4,
	3, 3, 2, 1, 0, 4, 2, 4, 3, 2, 4, 1, 0, 0, 2, 4,
}

func cycles(m *machine) int {
	m.step()
	n := 0
	for m.ctl.Fetched() < 2 {
		m.step()
		n++
	}
	return n
}

func TestBaseCycles(t *testing.T) {
	for op := 0; op < 256; op++ {
		expected := baseCycles[op]
		if expected == 0 {
			continue
		}
		m := newMachine(uint8(op))
		if got := cycles(m); got != expected {
			t.Fatalf("%v: got %d cycles, expected %d", Opcode(op), got, expected)
		}
	}
}

func TestTakenBranchCycles(t *testing.T) {
	tests := []struct {
		op       Opcode
		f        uint8
		expected int
	}{
		{JrZ8, 0x80, 3},
		{JrC8, 0x10, 3},
		{JrNz8, 0x80, 2},
		{JpZ16, 0x80, 4},
		{JpNc16, 0x10, 3},
		{CallC16, 0x10, 6},
		{CallNz16, 0x80, 3},
		{RetZ, 0x80, 5},
		{RetNc, 0x10, 2},
	}
	for _, test := range tests {
		m := newMachine(uint8(test.op))
		m.regs.SetF(test.f)
		if got := cycles(m); got != test.expected {
			t.Fatalf("%v with f=%02x: got %d cycles, expected %d", test.op, test.f, got, test.expected)
		}
	}
}

func TestPrefixedCycles(t *testing.T) {
	for op := 0; op < 256; op++ {
		expected := 2
		if op&7 == operandHL {
			expected = 4
			if op>>6 == 1 {
				expected = 3
			}
		}
		m := newMachine(uint8(PrefixCB), uint8(op))
		if got := cycles(m); got != expected {
			t.Fatalf("%v: got %d cycles, expected %d", OpcodeCB(op), got, expected)
		}
	}
}

// exec runs n instructions of program and stops right after the next fetch.
func exec(t *testing.T, setup func(m *machine), n int, program ...uint8) *machine {
	t.Helper()
	m := newMachine(program...)
	if setup != nil {
		setup(m)
	}
	m.run(n + 1)
	return m
}

func TestLoads(t *testing.T) {
	// LD B,0x42; LD C,B; LD HL,0xc000; LD (HL),0x99; LD A,(HL+); LD (HL-),A
	m := exec(t, nil, 6, 0x06, 0x42, 0x48, 0x21, 0x00, 0xc0, 0x36, 0x99, 0x2a, 0x32)
	if m.regs.C() != 0x42 {
		t.Fatalf("c: got %02x", m.regs.C())
	}
	if m.regs.A() != 0x99 {
		t.Fatalf("a: got %02x", m.regs.A())
	}
	if m.bus.Memory[0xc001] != 0x99 || m.regs.HL() != 0xc000 {
		t.Fatalf("ld (hl-),a: mem %02x hl %04x", m.bus.Memory[0xc001], m.regs.HL())
	}
}

func TestStoreSP(t *testing.T) {
	m := exec(t, func(m *machine) { m.regs.SetSP(0xabcd) }, 1, 0x08, 0x00, 0xc1)
	if m.bus.Memory[0xc100] != 0xcd || m.bus.Memory[0xc101] != 0xab {
		t.Fatalf("stored sp: got %02x%02x", m.bus.Memory[0xc101], m.bus.Memory[0xc100])
	}
}

func TestHighPageLoads(t *testing.T) {
	// LDH (0x80),A; LD C,0x81; LD A,(C)
	setup := func(m *machine) {
		m.regs.SetA(0x5a)
		m.bus.Memory[0xff81] = 0x33
	}
	m := exec(t, setup, 3, 0xe0, 0x80, 0x0e, 0x81, 0xf2)
	if m.bus.Memory[0xff80] != 0x5a {
		t.Fatalf("ldh: got %02x", m.bus.Memory[0xff80])
	}
	if m.regs.A() != 0x33 {
		t.Fatalf("ld a,(c): got %02x", m.regs.A())
	}
}

func TestArithmetic(t *testing.T) {
	tests := []struct {
		name    string
		a, b    uint8
		f       uint8
		op      uint8
		resultA uint8
		resultF uint8
	}{
		{"add half", 0x01, 0x0f, 0x00, 0x80, 0x10, 0x20},
		{"add carry", 0xff, 0x01, 0x00, 0x80, 0x00, 0xb0},
		{"adc", 0x01, 0x01, 0x10, 0x88, 0x03, 0x00},
		{"sub zero", 0x42, 0x42, 0x00, 0x90, 0x00, 0xc0},
		{"sub borrow", 0x00, 0x01, 0x00, 0x90, 0xff, 0x70},
		{"sbc", 0x05, 0x01, 0x10, 0x98, 0x03, 0x40},
		{"and", 0xf0, 0x0f, 0x00, 0xa0, 0x00, 0xa0},
		{"xor", 0xff, 0x0f, 0x00, 0xa8, 0xf0, 0x00},
		{"or", 0x00, 0x00, 0x00, 0xb0, 0x00, 0x80},
		{"cp", 0x10, 0x20, 0x00, 0xb8, 0x10, 0x50},
	}
	for _, test := range tests {
		setup := func(m *machine) {
			m.regs.SetA(test.a)
			m.regs.SetB(test.b)
			m.regs.SetF(test.f)
		}
		m := exec(t, setup, 1, test.op)
		if m.regs.A() != test.resultA || m.regs.F() != test.resultF {
			t.Fatalf("%s: got a=%02x f=%02x, expected a=%02x f=%02x",
				test.name, m.regs.A(), m.regs.F(), test.resultA, test.resultF)
		}
	}
}

func TestIncDec(t *testing.T) {
	// INC B keeps carry; DEC (HL)
	setup := func(m *machine) {
		m.regs.SetB(0x0f)
		m.regs.SetF(0x10)
		m.regs.SetHL(0xc000)
		m.bus.Memory[0xc000] = 0x01
	}
	m := exec(t, setup, 2, 0x04, 0x35)
	if m.regs.B() != 0x10 {
		t.Fatalf("inc b: got %02x", m.regs.B())
	}
	if m.bus.Memory[0xc000] != 0x00 {
		t.Fatalf("dec (hl): got %02x", m.bus.Memory[0xc000])
	}
	if m.regs.F() != 0xd0 {
		t.Fatalf("flags: got %02x, expected d0", m.regs.F())
	}
}

func TestWideArithmetic(t *testing.T) {
	// ADD HL,BC; INC DE; ADD SP,-2; LD HL,SP+1
	setup := func(m *machine) {
		m.regs.SetHL(0x0fff)
		m.regs.SetBC(0x0001)
		m.regs.SetDE(0xffff)
		m.regs.SetSP(0xd000)
	}
	m := exec(t, setup, 4, 0x09, 0x13, 0xe8, 0xfe, 0xf8, 0x01)
	if m.regs.DE() != 0 {
		t.Fatalf("inc de: got %04x", m.regs.DE())
	}
	if m.regs.SP() != 0xcffe {
		t.Fatalf("add sp: got %04x", m.regs.SP())
	}
	if m.regs.HL() != 0xcfff {
		t.Fatalf("ld hl,sp+1: got %04x", m.regs.HL())
	}
}

func TestAddHLFlags(t *testing.T) {
	setup := func(m *machine) {
		m.regs.SetHL(0x0fff)
		m.regs.SetBC(0x0001)
		m.regs.SetF(0x80)
	}
	m := exec(t, setup, 1, 0x09)
	if m.regs.HL() != 0x1000 {
		t.Fatalf("hl: got %04x", m.regs.HL())
	}
	if m.regs.F() != 0xa0 {
		t.Fatalf("f: got %02x, expected a0", m.regs.F())
	}
}

func TestStack(t *testing.T) {
	// PUSH BC; POP AF
	m := exec(t, func(m *machine) { m.regs.SetBC(0x12ff) }, 2, 0xc5, 0xf1)
	if m.regs.A() != 0x12 || m.regs.F() != 0xf0 {
		t.Fatalf("af: got %04x, expected 12f0", m.regs.AF())
	}
	if m.regs.SP() != 0xfffe {
		t.Fatalf("sp: got %04x", m.regs.SP())
	}
	if m.bus.Memory[0xfffd] != 0x12 || m.bus.Memory[0xfffc] != 0xff {
		t.Fatalf("pushed bytes: %02x %02x", m.bus.Memory[0xfffd], m.bus.Memory[0xfffc])
	}
}

func TestCallReturn(t *testing.T) {
	m := newMachine(0xcd, 0x00, 0x02, 0x3c)
	m.bus.Load(0x0200, 0x3c, 0xc9)
	// CALL, INC A, RET, INC A, then the fetch of the NOP that follows.
	m.run(5)
	if m.regs.PC() != 0x0105 || m.regs.A() != 2 {
		t.Fatalf("pc %04x a %02x", m.regs.PC(), m.regs.A())
	}
	if m.regs.SP() != 0xfffe {
		t.Fatalf("sp: got %04x", m.regs.SP())
	}
}

func TestRst(t *testing.T) {
	m := exec(t, nil, 1, 0xef)
	// The fetch after RST 28h has already advanced pc.
	if m.regs.PC() != 0x0029 {
		t.Fatalf("pc: got %04x", m.regs.PC())
	}
	if m.bus.Memory[0xfffd] != 0x01 || m.bus.Memory[0xfffc] != 0x01 {
		t.Fatalf("return address: %02x%02x", m.bus.Memory[0xfffd], m.bus.Memory[0xfffc])
	}
}

func TestRetiEnablesIME(t *testing.T) {
	m := newMachine(0xd9)
	m.regs.SetSP(0xc000)
	m.bus.Load(0xc000, 0x34, 0x12)
	m.run(2)
	if !m.ctl.IME() {
		t.Fatalf("reti did not set IME")
	}
	if m.regs.PC() != 0x1235 {
		t.Fatalf("pc: got %04x", m.regs.PC())
	}
}

func TestRelativeJump(t *testing.T) {
	// JR +2 skips both INC A; then INC B; INC A.
	m := exec(t, nil, 3, 0x18, 0x02, 0x3c, 0x3c, 0x04, 0x3c)
	if m.regs.A() != 1 || m.regs.B() != 1 {
		t.Fatalf("a %02x b %02x", m.regs.A(), m.regs.B())
	}

	// A backward jump loops onto itself.
	m = newMachine(0x18, 0xfe)
	for i := 0; i < 30; i++ {
		m.step()
	}
	if pc := m.regs.PC(); pc != 0x0100 && pc != 0x0101 && pc != 0x0102 {
		t.Fatalf("backward jump escaped: pc %04x", pc)
	}
}

func TestAccumulatorOps(t *testing.T) {
	tests := []struct {
		name    string
		op      uint8
		a, f    uint8
		resultA uint8
		resultF uint8
	}{
		{"rlca", 0x07, 0x80, 0x80, 0x01, 0x10},
		{"rrca", 0x0f, 0x01, 0x00, 0x80, 0x10},
		{"rla", 0x17, 0x00, 0x10, 0x01, 0x00},
		{"rra", 0x1f, 0x00, 0x00, 0x00, 0x00},
		{"cpl", 0x2f, 0x0f, 0x00, 0xf0, 0x60},
		{"scf", 0x37, 0x00, 0xe0, 0x00, 0x90},
		{"ccf", 0x3f, 0x00, 0x10, 0x00, 0x00},
		{"daa", 0x27, 0x0a, 0x00, 0x10, 0x00},
	}
	for _, test := range tests {
		setup := func(m *machine) {
			m.regs.SetA(test.a)
			m.regs.SetF(test.f)
		}
		m := exec(t, setup, 1, test.op)
		if m.regs.A() != test.resultA || m.regs.F() != test.resultF {
			t.Fatalf("%s: got a=%02x f=%02x, expected a=%02x f=%02x",
				test.name, m.regs.A(), m.regs.F(), test.resultA, test.resultF)
		}
	}
}

func TestPrefixed(t *testing.T) {
	setup := func(m *machine) {
		m.regs.SetA(0xf1)
		m.regs.SetH(0xc0)
		m.regs.SetL(0x10)
		m.bus.Memory[0xc010] = 0x80
	}
	// SWAP A; SET 0,(HL); RES 7,(HL); BIT 7,H
	m := exec(t, setup, 4, 0xcb, 0x37, 0xcb, 0xc6, 0xcb, 0xbe, 0xcb, 0x7c)
	if m.regs.A() != 0x1f {
		t.Fatalf("swap a: got %02x", m.regs.A())
	}
	if m.bus.Memory[0xc010] != 0x01 {
		t.Fatalf("set/res (hl): got %02x", m.bus.Memory[0xc010])
	}
	if m.regs.F() != 0x20 {
		t.Fatalf("bit 7,h: f %02x", m.regs.F())
	}

	m = exec(t, func(m *machine) { m.regs.SetE(0x01) }, 1, 0xcb, 0x3b)
	if m.regs.E() != 0 || m.regs.F() != 0x90 {
		t.Fatalf("srl e: e %02x f %02x", m.regs.E(), m.regs.F())
	}
}

func TestEveryOpcodeBalancesCache(t *testing.T) {
	for op := 0; op < 256; op++ {
		if Opcode(op).Illegal() || Opcode(op) == Halt || Opcode(op) == Stop {
			continue
		}
		for _, f := range []uint8{0x00, 0xf0} {
			m := newMachine(uint8(op), 0x00, 0x00)
			m.regs.SetF(f)
			m.run(2)
			if len(m.ctl.cache) != 0 {
				t.Fatalf("%v: cache %v after the next fetch", Opcode(op), m.ctl.cache)
			}
		}
	}
}

func TestTickUsesOwnRegisters(t *testing.T) {
	b := bustest.NewMock()
	b.Load(0x0100, 0x3e, 0x77) // LD A,0x77
	c := NewCPU()
	c.Registers().PostBoot(false)
	for i := 0; i < 3; i++ {
		c.Tick(b)
	}
	if c.Registers().A() != 0x77 {
		t.Fatalf("a: got %02x", c.Registers().A())
	}
}

func TestTickDoesNotAllocate(t *testing.T) {
	b := bustest.NewMock() // all NOPs
	c := NewCPU()
	c.Registers().PostBoot(false)
	c.Tick(b)
	allocs := testing.AllocsPerRun(1000, func() {
		c.Tick(b)
	})
	if allocs != 0 {
		t.Fatalf("allocations per tick: expected 0, got %v", allocs)
	}
}

func TestDeniedAccess(t *testing.T) {
	// LD A,(0xfe00); LD (0xfe01),A; LD (0x8000),A
	setup := func(m *machine) {
		m.bus.Memory[0xfe00] = 0x12
		m.bus.Memory[0xfe01] = 0x99
		if !m.bus.Claim(bus.AreaOam, bus.LockDMA) {
			t.Fatalf("claim failed")
		}
	}
	m := exec(t, setup, 3, 0xfa, 0x00, 0xfe, 0xea, 0x01, 0xfe, 0xea, 0x00, 0x80)
	if m.regs.A() != bus.OpenBus {
		t.Fatalf("a: expected %02x, got %02x", bus.OpenBus, m.regs.A())
	}
	if m.bus.Memory[0xfe01] != 0x99 {
		t.Fatalf("denied write landed: %02x", m.bus.Memory[0xfe01])
	}
	if m.bus.Memory[0x8000] != bus.OpenBus {
		t.Fatalf("ld (0x8000),a: got %02x", m.bus.Memory[0x8000])
	}
	if m.regs.PC() != 0x010a {
		t.Fatalf("pc: expected 010a, got %04x", m.regs.PC())
	}
}
