package cpu

// Registers holds the processor's register file.
type Registers struct {
	pc, sp                 uint16
	a, f, b, c, d, e, h, l uint8
}

// PostBoot loads the values the boot ROM leaves behind.
func (r *Registers) PostBoot(color bool) {
	if color {
		r.SetAF(0x1180)
		r.SetBC(0x0000)
		r.SetDE(0xff56)
		r.SetHL(0x000d)
	} else {
		r.SetAF(0x01b0)
		r.SetBC(0x0013)
		r.SetDE(0x00d8)
		r.SetHL(0x014d)
	}
	r.sp = 0xfffe
	r.pc = 0x0100
}

func (r *Registers) PC() uint16 {
	return r.pc
}
func (r *Registers) SP() uint16 {
	return r.sp
}
func (r *Registers) A() uint8 {
	return r.a
}
func (r *Registers) F() uint8 {
	return r.f
}
func (r *Registers) B() uint8 {
	return r.b
}
func (r *Registers) C() uint8 {
	return r.c
}
func (r *Registers) D() uint8 {
	return r.d
}
func (r *Registers) E() uint8 {
	return r.e
}
func (r *Registers) H() uint8 {
	return r.h
}
func (r *Registers) L() uint8 {
	return r.l
}
func (r *Registers) AF() uint16 {
	return (uint16(r.a) << 8) | uint16(r.f)
}
func (r *Registers) BC() uint16 {
	return (uint16(r.b) << 8) | uint16(r.c)
}
func (r *Registers) DE() uint16 {
	return (uint16(r.d) << 8) | uint16(r.e)
}
func (r *Registers) HL() uint16 {
	return (uint16(r.h) << 8) | uint16(r.l)
}
func (r *Registers) SetPC(pc uint16) {
	r.pc = pc
}
func (r *Registers) SetSP(sp uint16) {
	r.sp = sp
}
func (r *Registers) SetA(a uint8) {
	r.a = a
}

// SetF drops the low nibble, which always reads as zero.
func (r *Registers) SetF(f uint8) {
	r.f = f & 0xf0
}
func (r *Registers) SetB(b uint8) {
	r.b = b
}
func (r *Registers) SetC(c uint8) {
	r.c = c
}
func (r *Registers) SetD(d uint8) {
	r.d = d
}
func (r *Registers) SetE(e uint8) {
	r.e = e
}
func (r *Registers) SetH(h uint8) {
	r.h = h
}
func (r *Registers) SetL(l uint8) {
	r.l = l
}
func (r *Registers) SetAF(af uint16) {
	r.a = uint8(af >> 8)
	r.SetF(uint8(af))
}
func (r *Registers) SetBC(bc uint16) {
	r.b = uint8(bc >> 8)
	r.c = uint8(bc)
}
func (r *Registers) SetDE(de uint16) {
	r.d = uint8(de >> 8)
	r.e = uint8(de)
}
func (r *Registers) SetHL(hl uint16) {
	r.h = uint8(hl >> 8)
	r.l = uint8(hl)
}
func (r *Registers) FlagZ() bool {
	return (r.f & (1 << 7)) != 0
}
func (r *Registers) FlagN() bool {
	return (r.f & (1 << 6)) != 0
}
func (r *Registers) FlagH() bool {
	return (r.f & (1 << 5)) != 0
}
func (r *Registers) FlagC() bool {
	return (r.f & (1 << 4)) != 0
}
func (r *Registers) SetFlag(flag bool, n uint) {
	if flag {
		r.f |= 1 << n
	} else {
		r.f &^= 1 << n
	}
}
func (r *Registers) SetFlagZ(flag bool) {
	r.SetFlag(flag, 7)
}
func (r *Registers) SetFlagN(flag bool) {
	r.SetFlag(flag, 6)
}
func (r *Registers) SetFlagH(flag bool) {
	r.SetFlag(flag, 5)
}
func (r *Registers) SetFlagC(flag bool) {
	r.SetFlag(flag, 4)
}
func (r *Registers) SetFlagZNHC(z, n, h, c bool) {
	r.SetFlagZ(z)
	r.SetFlagN(n)
	r.SetFlagH(h)
	r.SetFlagC(c)
}
