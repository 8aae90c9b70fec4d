package cpu

// Operand index 6 of the register field is (HL).
const operandHL = 6

var (
	readReg  = [8]Action{ActReadB, ActReadC, ActReadD, ActReadE, ActReadH, ActReadL, 0, ActReadA}
	writeReg = [8]Action{ActWriteB, ActWriteC, ActWriteD, ActWriteE, ActWriteH, ActWriteL, 0, ActWriteA}
	aluOps   = [8]Action{ActAdd, ActAdc, ActSub, ActSbc, ActAnd, ActXor, ActOr, ActCp}
)

func seq(parts ...[]Action) []Action {
	var ret []Action
	for _, p := range parts {
		ret = append(ret, p...)
	}
	return ret
}

// load8 leaves the operand on top of the cache.
func load8(src int) []Action {
	if src == operandHL {
		return []Action{ActReadHL, ActReadInd}
	}
	return []Action{readReg[src]}
}

// store8 moves the top of the cache into the operand.
func store8(dst int) []Action {
	if dst == operandHL {
		return []Action{ActReadHL, ActWriteInd}
	}
	return []Action{writeReg[dst]}
}

var (
	popSequence  = []Action{ActReadSP, ActIncSP, ActReadInd, ActReadSP, ActIncSP, ActReadInd}
	pushSequence = []Action{ActSleep, ActDecSP, ActReadSP, ActWriteInd, ActDecSP, ActReadSP, ActWriteInd}
	retSequence  = seq(popSequence, []Action{ActJump, ActSleep})
	callSequence = seq([]Action{ActReadPC}, pushSequence, []Action{ActJump})
)

func readWord(tail ...Action) []Action {
	return seq([]Action{ActReadByte, ActReadByte}, tail)
}

var baseTable = buildBaseTable()

func buildBaseTable() [256][]Action {
	t := [256][]Action{
		Nop:       nil,
		LdBC16:    readWord(ActWriteBC),
		LdBCIndA:  {ActReadA, ActReadBC, ActWriteInd},
		IncBC:     {ActReadBC, ActInc16, ActWriteBC},
		Rlca:      {ActReadA, ActRlc, ActResetZero, ActWriteA},
		Ld16IndSP: readWord(ActStoreSPLow, ActStoreSPHigh),
		AddHLBC:   {ActReadHL, ActReadBC, ActAdd16, ActWriteHL},
		LdABCInd:  {ActReadBC, ActReadInd, ActWriteA},
		DecBC:     {ActReadBC, ActDec16, ActWriteBC},
		Rrca:      {ActReadA, ActRrc, ActResetZero, ActWriteA},

		Stop:     {ActStop},
		LdDE16:   readWord(ActWriteDE),
		LdDEIndA: {ActReadA, ActReadDE, ActWriteInd},
		IncDE:    {ActReadDE, ActInc16, ActWriteDE},
		Rla:      {ActReadA, ActRl, ActResetZero, ActWriteA},
		Jr8:      {ActReadByte, ActJumpRelative},
		AddHLDE:  {ActReadHL, ActReadDE, ActAdd16, ActWriteHL},
		LdADEInd: {ActReadDE, ActReadInd, ActWriteA},
		DecDE:    {ActReadDE, ActDec16, ActWriteDE},
		Rra:      {ActReadA, ActRr, ActResetZero, ActWriteA},

		JrNz8:     {ActReadByte, ActNotZero, ActJumpRelative},
		LdHL16:    readWord(ActWriteHL),
		LdiHLIndA: {ActReadA, ActReadHL, ActIncHL, ActWriteInd},
		IncHL:     {ActReadHL, ActInc16, ActWriteHL},
		Daa:       {ActDaa},
		JrZ8:      {ActReadByte, ActZero, ActJumpRelative},
		AddHLHL:   {ActReadHL, ActReadHL, ActAdd16, ActWriteHL},
		LdiAHLInd: {ActReadHL, ActIncHL, ActReadInd, ActWriteA},
		DecHL:     {ActReadHL, ActDec16, ActWriteHL},
		Cpl:       {ActCpl},

		JrNc8:     {ActReadByte, ActNotCarry, ActJumpRelative},
		LdSP16:    readWord(ActWriteSP),
		LddHLIndA: {ActReadA, ActReadHL, ActDecHL, ActWriteInd},
		IncSP:     {ActReadSP, ActInc16, ActWriteSP},
		Scf:       {ActScf},
		JrC8:      {ActReadByte, ActCarry, ActJumpRelative},
		AddHLSP:   {ActReadHL, ActReadSP, ActAdd16, ActWriteHL},
		LddAHLInd: {ActReadHL, ActDecHL, ActReadInd, ActWriteA},
		DecSP:     {ActReadSP, ActDec16, ActWriteSP},
		Ccf:       {ActCcf},

		Halt: {ActHalt},

		RetNz:    seq([]Action{ActSleep, ActNotZero}, retSequence),
		PopBC:    seq(popSequence, []Action{ActWriteBC}),
		JpNz16:   readWord(ActNotZero, ActJump, ActSleep),
		Jp16:     readWord(ActJump, ActSleep),
		CallNz16: seq(readWord(ActNotZero), callSequence),
		PushBC:   seq([]Action{ActReadBC}, pushSequence),
		RetZ:     seq([]Action{ActSleep, ActZero}, retSequence),
		Ret:      retSequence,
		JpZ16:    readWord(ActZero, ActJump, ActSleep),
		PrefixCB: {ActFetchCB},
		CallZ16:  seq(readWord(ActZero), callSequence),
		Call16:   seq(readWord(), callSequence),

		RetNc:    seq([]Action{ActSleep, ActNotCarry}, retSequence),
		PopDE:    seq(popSequence, []Action{ActWriteDE}),
		JpNc16:   readWord(ActNotCarry, ActJump, ActSleep),
		CallNc16: seq(readWord(ActNotCarry), callSequence),
		PushDE:   seq([]Action{ActReadDE}, pushSequence),
		RetC:     seq([]Action{ActSleep, ActCarry}, retSequence),
		Reti:     seq(popSequence, []Action{ActJump, ActEnableIME, ActSleep}),
		JpC16:    readWord(ActCarry, ActJump, ActSleep),
		CallC16:  seq(readWord(ActCarry), callSequence),

		Ldh8A:    {ActReadA, ActReadByte, ActWriteHram},
		PopHL:    seq(popSequence, []Action{ActWriteHL}),
		LdhCA:    {ActReadA, ActReadC, ActWriteHram},
		PushHL:   seq([]Action{ActReadHL}, pushSequence),
		AddSP8:   {ActReadSP, ActReadByte, ActAddSigned, ActSleep, ActWriteSP},
		JpHL:     {ActJumpHL},
		Ld16IndA: seq([]Action{ActReadA}, readWord(ActWriteInd)),

		LdhA8:    {ActReadByte, ActReadHram, ActWriteA},
		PopAF:    seq(popSequence, []Action{ActWriteAF}),
		LdhAC:    {ActReadC, ActReadHram, ActWriteA},
		Di:       {ActDI},
		PushAF:   seq([]Action{ActReadAF}, pushSequence),
		LdHLSP8:  {ActReadSP, ActReadByte, ActAddSigned, ActWriteHL},
		LdSPHL:   {ActReadHL, ActWriteSP, ActSleep},
		LdA16Ind: readWord(ActReadInd, ActWriteA),
		Ei:       {ActEI},
	}

	// The register-indexed blocks.
	for r := 0; r < 8; r++ {
		inc := Opcode(0x04 | r<<3)
		t[inc] = seq(load8(r), []Action{ActInc}, store8(r))
		t[inc+1] = seq(load8(r), []Action{ActDec}, store8(r))
		t[inc+2] = seq([]Action{ActReadByte}, store8(r))
	}
	for op := 0x40; op < 0x80; op++ {
		if Opcode(op) == Halt {
			continue
		}
		t[op] = seq(load8(op&7), store8(op>>3&7))
	}
	for op := 0x80; op < 0xc0; op++ {
		t[op] = seq(load8(op&7), []Action{ActReadA, aluOps[op>>3&7]})
		if aluOps[op>>3&7] != ActCp {
			t[op] = append(t[op], ActWriteA)
		}
	}
	for k := 0; k < 8; k++ {
		op := 0xc6 | k<<3
		t[op] = []Action{ActReadByte, ActReadA, aluOps[k]}
		if aluOps[k] != ActCp {
			t[op] = append(t[op], ActWriteA)
		}
		t[0xc7|k<<3] = seq([]Action{ActRstVector}, callSequence)
	}
	for op := range t {
		if Opcode(op).Illegal() {
			t[op] = []Action{ActLockUp}
		}
	}
	return t
}

var cbTable = buildCBTable()

func buildCBTable() [256][]Action {
	var t [256][]Action
	for op := 0; op < 256; op++ {
		x, y, z := op>>6, op>>3&7, op&7
		switch x {
		case 0:
			t[op] = seq(load8(z), []Action{ActRlc + Action(y)}, store8(z))
		case 1:
			t[op] = seq(load8(z), []Action{ActBit0 + Action(y)})
		case 2:
			t[op] = seq(load8(z), []Action{ActRes0 + Action(y)}, store8(z))
		case 3:
			t[op] = seq(load8(z), []Action{ActSet0 + Action(y)}, store8(z))
		}
	}
	return t
}
