package cpu

func (r *Registers) reg8(act Action) *uint8 {
	switch act {
	case ActReadB, ActWriteB:
		return &r.b
	case ActReadC, ActWriteC:
		return &r.c
	case ActReadD, ActWriteD:
		return &r.d
	case ActReadE, ActWriteE:
		return &r.e
	case ActReadH, ActWriteH:
		return &r.h
	case ActReadL, ActWriteL:
		return &r.l
	case ActReadA, ActWriteA:
		return &r.a
	}
	panic("not an 8-bit register step: " + act.String())
}

func sleep(ctl *Controller, s *State, _ Action) Flow {
	return Consume
}

// halt spins until a source is both requested and enabled, whatever IME.
func halt(ctl *Controller, s *State, _ Action) Flow {
	if s.pendingInterrupts() != 0 {
		return RetireChain
	}
	ctl.PushActions(ActHalt)
	return Consume
}

func stop(ctl *Controller, s *State, _ Action) Flow {
	s.readPC() // padding byte
	if s.Speed != nil && s.Speed.armed {
		s.Speed.toggle()
		return Retire
	}
	ctl.PushActions(ActHalt)
	return Consume
}

func lockUp(ctl *Controller, s *State, _ Action) Flow {
	ctl.PushActions(ActLockUp)
	return Consume
}

func readReg8(ctl *Controller, s *State, act Action) Flow {
	ctl.Push(*s.Regs.reg8(act))
	return Chain
}

func writeReg8(ctl *Controller, s *State, act Action) Flow {
	*s.Regs.reg8(act) = ctl.Pop()
	return Chain
}

func readReg16(ctl *Controller, s *State, act Action) Flow {
	r := s.Regs
	switch act {
	case ActReadAF:
		ctl.PushU16(r.AF())
	case ActReadBC:
		ctl.PushU16(r.BC())
	case ActReadDE:
		ctl.PushU16(r.DE())
	case ActReadHL:
		ctl.PushU16(r.HL())
	case ActReadSP:
		ctl.PushU16(r.SP())
	case ActReadPC:
		ctl.PushU16(r.PC())
	}
	return Chain
}

func writeReg16(ctl *Controller, s *State, act Action) Flow {
	r := s.Regs
	v := ctl.PopU16()
	switch act {
	case ActWriteAF:
		r.SetAF(v)
	case ActWriteBC:
		r.SetBC(v)
	case ActWriteDE:
		r.SetDE(v)
	case ActWriteHL:
		r.SetHL(v)
	case ActWriteSP:
		r.SetSP(v)
	}
	return Chain
}

func readByte(ctl *Controller, s *State, _ Action) Flow {
	ctl.Push(s.readPC())
	return Consume
}

func readInd(ctl *Controller, s *State, _ Action) Flow {
	addr := ctl.PopU16()
	ctl.Push(s.read(addr))
	return Consume
}

func writeInd(ctl *Controller, s *State, _ Action) Flow {
	addr := ctl.PopU16()
	s.write(addr, ctl.Pop())
	return Consume
}

func readHram(ctl *Controller, s *State, _ Action) Flow {
	offset := ctl.Pop()
	ctl.Push(s.read(0xff00 | uint16(offset)))
	return Consume
}

func writeHram(ctl *Controller, s *State, _ Action) Flow {
	offset := ctl.Pop()
	s.write(0xff00|uint16(offset), ctl.Pop())
	return Consume
}

func storeSPLow(ctl *Controller, s *State, _ Action) Flow {
	addr := ctl.PopU16()
	s.write(addr, uint8(s.Regs.SP()))
	ctl.PushU16(addr + 1)
	return Consume
}

func storeSPHigh(ctl *Controller, s *State, _ Action) Flow {
	addr := ctl.PopU16()
	s.write(addr, uint8(s.Regs.SP()>>8))
	return Consume
}

func adjustPointer(ctl *Controller, s *State, act Action) Flow {
	r := s.Regs
	switch act {
	case ActIncSP:
		r.SetSP(r.SP() + 1)
	case ActDecSP:
		r.SetSP(r.SP() - 1)
	case ActIncHL:
		r.SetHL(r.HL() + 1)
	case ActDecHL:
		r.SetHL(r.HL() - 1)
	}
	return Chain
}

func inc(ctl *Controller, s *State, _ Action) Flow {
	v := ctl.Pop()
	res := v + 1
	s.Regs.SetFlagZ(res == 0)
	s.Regs.SetFlagN(false)
	s.Regs.SetFlagH(v&0x0f == 0x0f)
	ctl.Push(res)
	return Chain
}

func dec(ctl *Controller, s *State, _ Action) Flow {
	v := ctl.Pop()
	res := v - 1
	s.Regs.SetFlagZ(res == 0)
	s.Regs.SetFlagN(true)
	s.Regs.SetFlagH(v&0x0f == 0)
	ctl.Push(res)
	return Chain
}

// alu pops the accumulator first, then the operand.
func alu(ctl *Controller, s *State, act Action) Flow {
	r := s.Regs
	a := ctl.Pop()
	v := ctl.Pop()
	var res uint8
	var half, carry bool
	switch act {
	case ActAdd, ActAdc:
		carryIn := act == ActAdc && r.FlagC()
		res, carry = add8(a, v, carryIn)
		_, half = add4(a, v, carryIn)
		r.SetFlagZNHC(res == 0, false, half, carry)
	case ActSub, ActSbc, ActCp:
		borrowIn := act == ActSbc && r.FlagC()
		res, carry = sub8(a, v, borrowIn)
		_, half = sub4(a, v, borrowIn)
		r.SetFlagZNHC(res == 0, true, half, carry)
	case ActAnd:
		res = a & v
		r.SetFlagZNHC(res == 0, false, true, false)
	case ActXor:
		res = a ^ v
		r.SetFlagZNHC(res == 0, false, false, false)
	case ActOr:
		res = a | v
		r.SetFlagZNHC(res == 0, false, false, false)
	}
	if act != ActCp {
		ctl.Push(res)
	}
	return Chain
}

func inc16(ctl *Controller, s *State, _ Action) Flow {
	ctl.PushU16(ctl.PopU16() + 1)
	return Consume
}

func dec16(ctl *Controller, s *State, _ Action) Flow {
	ctl.PushU16(ctl.PopU16() - 1)
	return Consume
}

func addWide(ctl *Controller, s *State, _ Action) Flow {
	rhs := ctl.PopU16()
	lhs := ctl.PopU16()
	sum, half, carry := add16(lhs, rhs)
	s.Regs.SetFlagN(false)
	s.Regs.SetFlagH(half)
	s.Regs.SetFlagC(carry)
	ctl.PushU16(sum)
	return Consume
}

func addSP(ctl *Controller, s *State, _ Action) Flow {
	e := ctl.Pop()
	sp := ctl.PopU16()
	sum, half, carry := addSigned(sp, e)
	s.Regs.SetFlagZNHC(false, false, half, carry)
	ctl.PushU16(sum)
	return Consume
}

func decimalAdjust(ctl *Controller, s *State, _ Action) Flow {
	r := s.Regs
	a, carry := daa(r.A(), r.FlagN(), r.FlagH(), r.FlagC())
	r.SetA(a)
	r.SetFlagZ(a == 0)
	r.SetFlagH(false)
	r.SetFlagC(carry)
	return Chain
}

func complement(ctl *Controller, s *State, _ Action) Flow {
	s.Regs.SetA(^s.Regs.A())
	s.Regs.SetFlagN(true)
	s.Regs.SetFlagH(true)
	return Chain
}

func setCarry(ctl *Controller, s *State, _ Action) Flow {
	s.Regs.SetFlagN(false)
	s.Regs.SetFlagH(false)
	s.Regs.SetFlagC(true)
	return Chain
}

func complementCarry(ctl *Controller, s *State, _ Action) Flow {
	s.Regs.SetFlagN(false)
	s.Regs.SetFlagH(false)
	s.Regs.SetFlagC(!s.Regs.FlagC())
	return Chain
}

func resetZero(ctl *Controller, s *State, _ Action) Flow {
	s.Regs.SetFlagZ(false)
	return Chain
}

func rotate(ctl *Controller, s *State, act Action) Flow {
	res, carry := shift(shiftKind(act-ActRlc), ctl.Pop(), s.Regs.FlagC())
	s.Regs.SetFlagZNHC(res == 0, false, false, carry)
	ctl.Push(res)
	return Chain
}

func testBit(ctl *Controller, s *State, act Action) Flow {
	v := ctl.Pop()
	s.Regs.SetFlagZ(v&(1<<(act-ActBit0)) == 0)
	s.Regs.SetFlagN(false)
	s.Regs.SetFlagH(true)
	return Chain
}

func resetBit(ctl *Controller, s *State, act Action) Flow {
	ctl.Push(ctl.Pop() &^ (1 << (act - ActRes0)))
	return Chain
}

func setBit(ctl *Controller, s *State, act Action) Flow {
	ctl.Push(ctl.Pop() | 1<<(act-ActSet0))
	return Chain
}

// condition drops the rest of the instruction when the flag test fails.
func condition(ctl *Controller, s *State, act Action) Flow {
	var ok bool
	switch act {
	case ActNotZero:
		ok = !s.Regs.FlagZ()
	case ActZero:
		ok = s.Regs.FlagZ()
	case ActNotCarry:
		ok = !s.Regs.FlagC()
	case ActCarry:
		ok = s.Regs.FlagC()
	}
	if !ok {
		return RetireChain
	}
	return Chain
}

func jump(ctl *Controller, s *State, _ Action) Flow {
	s.Regs.SetPC(ctl.PopU16())
	return Chain
}

func jumpHL(ctl *Controller, s *State, _ Action) Flow {
	s.Regs.SetPC(s.Regs.HL())
	return Chain
}

func jumpRelative(ctl *Controller, s *State, _ Action) Flow {
	e := int8(ctl.Pop())
	s.Regs.SetPC(uint16(int32(s.Regs.PC()) + int32(e)))
	return Consume
}

func rstVector(ctl *Controller, s *State, _ Action) Flow {
	ctl.PushU16(uint16(ctl.instr.Opcode) & 0x38)
	return Chain
}

// enableInterrupts sets IME once the next instruction has been fetched.
func enableInterrupts(ctl *Controller, s *State, _ Action) Flow {
	ctl.imePending = true
	return Chain
}

func disableInterrupts(ctl *Controller, s *State, _ Action) Flow {
	ctl.SetIME(false)
	return Chain
}

func enableIME(ctl *Controller, s *State, _ Action) Flow {
	ctl.SetIME(true)
	return Chain
}
