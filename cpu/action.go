package cpu

import "fmt"

// Action is one micro-step of an instruction. The set is closed, so a queue
// of actions is plain data.
type Action uint8

const (
	ActFetch Action = iota
	ActFetchCB
	ActSleep
	ActHalt
	ActStop
	ActLockUp

	// 8-bit registers, in B C D E H L A order.
	ActReadB
	ActReadC
	ActReadD
	ActReadE
	ActReadH
	ActReadL
	ActReadA
	ActWriteB
	ActWriteC
	ActWriteD
	ActWriteE
	ActWriteH
	ActWriteL
	ActWriteA

	ActReadAF
	ActReadBC
	ActReadDE
	ActReadHL
	ActReadSP
	ActReadPC
	ActWriteAF
	ActWriteBC
	ActWriteDE
	ActWriteHL
	ActWriteSP

	ActReadByte
	ActReadInd
	ActWriteInd
	ActReadHram
	ActWriteHram
	ActStoreSPLow
	ActStoreSPHigh

	ActIncSP
	ActDecSP
	ActIncHL
	ActDecHL

	ActInc
	ActDec
	ActAdd
	ActAdc
	ActSub
	ActSbc
	ActAnd
	ActXor
	ActOr
	ActCp
	ActInc16
	ActDec16
	ActAdd16
	ActAddSigned

	ActDaa
	ActCpl
	ActScf
	ActCcf
	ActResetZero

	// Same order as shiftKind.
	ActRlc
	ActRrc
	ActRl
	ActRr
	ActSla
	ActSra
	ActSwap
	ActSrl

	ActBit0
	ActBit1
	ActBit2
	ActBit3
	ActBit4
	ActBit5
	ActBit6
	ActBit7
	ActRes0
	ActRes1
	ActRes2
	ActRes3
	ActRes4
	ActRes5
	ActRes6
	ActRes7
	ActSet0
	ActSet1
	ActSet2
	ActSet3
	ActSet4
	ActSet5
	ActSet6
	ActSet7

	ActNotZero
	ActZero
	ActNotCarry
	ActCarry

	ActJump
	ActJumpHL
	ActJumpRelative
	ActRstVector

	ActEI
	ActDI
	ActEnableIME

	numActions
)

var actionNames = [numActions]string{
	"fetch", "fetch_cb", "sleep", "halt", "stop", "lock_up",
	"read::b", "read::c", "read::d", "read::e", "read::h", "read::l", "read::a",
	"write::b", "write::c", "write::d", "write::e", "write::h", "write::l", "write::a",
	"read::af", "read::bc", "read::de", "read::hl", "read::sp", "read::pc",
	"write::af", "write::bc", "write::de", "write::hl", "write::sp",
	"read::byte", "read::ind", "write::ind", "read::hram", "write::hram", "write::sp_low", "write::sp_high",
	"inc::sp", "dec::sp", "inc::hl", "dec::hl",
	"inc", "dec", "add", "adc", "sub", "sbc", "and", "xor", "or", "cp",
	"inc16", "dec16", "add16", "add_signed",
	"daa", "cpl", "scf", "ccf", "reset_zero",
	"rlc", "rrc", "rl", "rr", "sla", "sra", "swap", "srl",
	"bit0", "bit1", "bit2", "bit3", "bit4", "bit5", "bit6", "bit7",
	"res0", "res1", "res2", "res3", "res4", "res5", "res6", "res7",
	"set0", "set1", "set2", "set3", "set4", "set5", "set6", "set7",
	"cond::nz", "cond::z", "cond::nc", "cond::c",
	"jump", "jump::hl", "jump::relative", "rst::vector",
	"ei", "di", "enable_ime",
}

func (a Action) String() string {
	if a >= numActions {
		return fmt.Sprintf("Action(%d)", uint8(a))
	}
	return actionNames[a]
}

type stepFunc func(ctl *Controller, s *State, act Action) Flow

var steps = [numActions]stepFunc{
	ActFetch:   fetch,
	ActFetchCB: fetchCB,
	ActSleep:   sleep,
	ActHalt:    halt,
	ActStop:    stop,
	ActLockUp:  lockUp,

	ActReadB: readReg8, ActReadC: readReg8, ActReadD: readReg8, ActReadE: readReg8,
	ActReadH: readReg8, ActReadL: readReg8, ActReadA: readReg8,
	ActWriteB: writeReg8, ActWriteC: writeReg8, ActWriteD: writeReg8, ActWriteE: writeReg8,
	ActWriteH: writeReg8, ActWriteL: writeReg8, ActWriteA: writeReg8,

	ActReadAF: readReg16, ActReadBC: readReg16, ActReadDE: readReg16,
	ActReadHL: readReg16, ActReadSP: readReg16, ActReadPC: readReg16,
	ActWriteAF: writeReg16, ActWriteBC: writeReg16, ActWriteDE: writeReg16,
	ActWriteHL: writeReg16, ActWriteSP: writeReg16,

	ActReadByte:    readByte,
	ActReadInd:     readInd,
	ActWriteInd:    writeInd,
	ActReadHram:    readHram,
	ActWriteHram:   writeHram,
	ActStoreSPLow:  storeSPLow,
	ActStoreSPHigh: storeSPHigh,

	ActIncSP: adjustPointer, ActDecSP: adjustPointer,
	ActIncHL: adjustPointer, ActDecHL: adjustPointer,

	ActInc: inc, ActDec: dec,
	ActAdd: alu, ActAdc: alu, ActSub: alu, ActSbc: alu,
	ActAnd: alu, ActXor: alu, ActOr: alu, ActCp: alu,
	ActInc16:     inc16,
	ActDec16:     dec16,
	ActAdd16:     addWide,
	ActAddSigned: addSP,

	ActDaa:       decimalAdjust,
	ActCpl:       complement,
	ActScf:       setCarry,
	ActCcf:       complementCarry,
	ActResetZero: resetZero,

	ActRlc: rotate, ActRrc: rotate, ActRl: rotate, ActRr: rotate,
	ActSla: rotate, ActSra: rotate, ActSwap: rotate, ActSrl: rotate,

	ActBit0: testBit, ActBit1: testBit, ActBit2: testBit, ActBit3: testBit,
	ActBit4: testBit, ActBit5: testBit, ActBit6: testBit, ActBit7: testBit,
	ActRes0: resetBit, ActRes1: resetBit, ActRes2: resetBit, ActRes3: resetBit,
	ActRes4: resetBit, ActRes5: resetBit, ActRes6: resetBit, ActRes7: resetBit,
	ActSet0: setBit, ActSet1: setBit, ActSet2: setBit, ActSet3: setBit,
	ActSet4: setBit, ActSet5: setBit, ActSet6: setBit, ActSet7: setBit,

	ActNotZero: condition, ActZero: condition, ActNotCarry: condition, ActCarry: condition,

	ActJump:         jump,
	ActJumpHL:       jumpHL,
	ActJumpRelative: jumpRelative,
	ActRstVector:    rstVector,

	ActEI:        enableInterrupts,
	ActDI:        disableInterrupts,
	ActEnableIME: enableIME,
}
