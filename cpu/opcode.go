package cpu

import "fmt"

// Opcode identifies an unprefixed instruction.
type Opcode uint8

const (
	Nop       Opcode = 0x00 // NOP
	LdBC16    Opcode = 0x01 // LD BC,u16
	LdBCIndA  Opcode = 0x02 // LD (BC),A
	IncBC     Opcode = 0x03 // INC BC
	IncB      Opcode = 0x04 // INC B
	DecB      Opcode = 0x05 // DEC B
	LdB8      Opcode = 0x06 // LD B,u8
	Rlca      Opcode = 0x07 // RLCA
	Ld16IndSP Opcode = 0x08 // LD (u16),SP
	AddHLBC   Opcode = 0x09 // ADD HL,BC
	LdABCInd  Opcode = 0x0A // LD A,(BC)
	DecBC     Opcode = 0x0B // DEC BC
	IncC      Opcode = 0x0C // INC C
	DecC      Opcode = 0x0D // DEC C
	LdC8      Opcode = 0x0E // LD C,u8
	Rrca      Opcode = 0x0F // RRCA
	Stop      Opcode = 0x10 // STOP
	LdDE16    Opcode = 0x11 // LD DE,u16
	LdDEIndA  Opcode = 0x12 // LD (DE),A
	IncDE     Opcode = 0x13 // INC DE
	IncD      Opcode = 0x14 // INC D
	DecD      Opcode = 0x15 // DEC D
	LdD8      Opcode = 0x16 // LD D,u8
	Rla       Opcode = 0x17 // RLA
	Jr8       Opcode = 0x18 // JR i8
	AddHLDE   Opcode = 0x19 // ADD HL,DE
	LdADEInd  Opcode = 0x1A // LD A,(DE)
	DecDE     Opcode = 0x1B // DEC DE
	IncE      Opcode = 0x1C // INC E
	DecE      Opcode = 0x1D // DEC E
	LdE8      Opcode = 0x1E // LD E,u8
	Rra       Opcode = 0x1F // RRA
	JrNz8     Opcode = 0x20 // JR NZ,i8
	LdHL16    Opcode = 0x21 // LD HL,u16
	LdiHLIndA Opcode = 0x22 // LD (HL+),A
	IncHL     Opcode = 0x23 // INC HL
	IncH      Opcode = 0x24 // INC H
	DecH      Opcode = 0x25 // DEC H
	LdH8      Opcode = 0x26 // LD H,u8
	Daa       Opcode = 0x27 // DAA
	JrZ8      Opcode = 0x28 // JR Z,i8
	AddHLHL   Opcode = 0x29 // ADD HL,HL
	LdiAHLInd Opcode = 0x2A // LD A,(HL+)
	DecHL     Opcode = 0x2B // DEC HL
	IncL      Opcode = 0x2C // INC L
	DecL      Opcode = 0x2D // DEC L
	LdL8      Opcode = 0x2E // LD L,u8
	Cpl       Opcode = 0x2F // CPL
	JrNc8     Opcode = 0x30 // JR NC,i8
	LdSP16    Opcode = 0x31 // LD SP,u16
	LddHLIndA Opcode = 0x32 // LD (HL-),A
	IncSP     Opcode = 0x33 // INC SP
	IncHLInd  Opcode = 0x34 // INC (HL)
	DecHLInd  Opcode = 0x35 // DEC (HL)
	LdHLInd8  Opcode = 0x36 // LD (HL),u8
	Scf       Opcode = 0x37 // SCF
	JrC8      Opcode = 0x38 // JR C,i8
	AddHLSP   Opcode = 0x39 // ADD HL,SP
	LddAHLInd Opcode = 0x3A // LD A,(HL-)
	DecSP     Opcode = 0x3B // DEC SP
	IncA      Opcode = 0x3C // INC A
	DecA      Opcode = 0x3D // DEC A
	LdA8      Opcode = 0x3E // LD A,u8
	Ccf       Opcode = 0x3F // CCF
	LdBB      Opcode = 0x40 // LD B,B
	LdBC      Opcode = 0x41 // LD B,C
	LdBD      Opcode = 0x42 // LD B,D
	LdBE      Opcode = 0x43 // LD B,E
	LdBH      Opcode = 0x44 // LD B,H
	LdBL      Opcode = 0x45 // LD B,L
	LdBHLInd  Opcode = 0x46 // LD B,(HL)
	LdBA      Opcode = 0x47 // LD B,A
	LdCB      Opcode = 0x48 // LD C,B
	LdCC      Opcode = 0x49 // LD C,C
	LdCD      Opcode = 0x4A // LD C,D
	LdCE      Opcode = 0x4B // LD C,E
	LdCH      Opcode = 0x4C // LD C,H
	LdCL      Opcode = 0x4D // LD C,L
	LdCHLInd  Opcode = 0x4E // LD C,(HL)
	LdCA      Opcode = 0x4F // LD C,A
	LdDB      Opcode = 0x50 // LD D,B
	LdDC      Opcode = 0x51 // LD D,C
	LdDD      Opcode = 0x52 // LD D,D
	LdDE      Opcode = 0x53 // LD D,E
	LdDH      Opcode = 0x54 // LD D,H
	LdDL      Opcode = 0x55 // LD D,L
	LdDHLInd  Opcode = 0x56 // LD D,(HL)
	LdDA      Opcode = 0x57 // LD D,A
	LdEB      Opcode = 0x58 // LD E,B
	LdEC      Opcode = 0x59 // LD E,C
	LdED      Opcode = 0x5A // LD E,D
	LdEE      Opcode = 0x5B // LD E,E
	LdEH      Opcode = 0x5C // LD E,H
	LdEL      Opcode = 0x5D // LD E,L
	LdEHLInd  Opcode = 0x5E // LD E,(HL)
	LdEA      Opcode = 0x5F // LD E,A
	LdHB      Opcode = 0x60 // LD H,B
	LdHC      Opcode = 0x61 // LD H,C
	LdHD      Opcode = 0x62 // LD H,D
	LdHE      Opcode = 0x63 // LD H,E
	LdHH      Opcode = 0x64 // LD H,H
	LdHL      Opcode = 0x65 // LD H,L
	LdHHLInd  Opcode = 0x66 // LD H,(HL)
	LdHA      Opcode = 0x67 // LD H,A
	LdLB      Opcode = 0x68 // LD L,B
	LdLC      Opcode = 0x69 // LD L,C
	LdLD      Opcode = 0x6A // LD L,D
	LdLE      Opcode = 0x6B // LD L,E
	LdLH      Opcode = 0x6C // LD L,H
	LdLL      Opcode = 0x6D // LD L,L
	LdLHLInd  Opcode = 0x6E // LD L,(HL)
	LdLA      Opcode = 0x6F // LD L,A
	LdHLIndB  Opcode = 0x70 // LD (HL),B
	LdHLIndC  Opcode = 0x71 // LD (HL),C
	LdHLIndD  Opcode = 0x72 // LD (HL),D
	LdHLIndE  Opcode = 0x73 // LD (HL),E
	LdHLIndH  Opcode = 0x74 // LD (HL),H
	LdHLIndL  Opcode = 0x75 // LD (HL),L
	Halt      Opcode = 0x76 // HALT
	LdHLIndA  Opcode = 0x77 // LD (HL),A
	LdAB      Opcode = 0x78 // LD A,B
	LdAC      Opcode = 0x79 // LD A,C
	LdAD      Opcode = 0x7A // LD A,D
	LdAE      Opcode = 0x7B // LD A,E
	LdAH      Opcode = 0x7C // LD A,H
	LdAL      Opcode = 0x7D // LD A,L
	LdAHLInd  Opcode = 0x7E // LD A,(HL)
	LdAA      Opcode = 0x7F // LD A,A
	AddAB     Opcode = 0x80 // ADD A,B
	AddAC     Opcode = 0x81 // ADD A,C
	AddAD     Opcode = 0x82 // ADD A,D
	AddAE     Opcode = 0x83 // ADD A,E
	AddAH     Opcode = 0x84 // ADD A,H
	AddAL     Opcode = 0x85 // ADD A,L
	AddAHLInd Opcode = 0x86 // ADD A,(HL)
	AddAA     Opcode = 0x87 // ADD A,A
	AdcAB     Opcode = 0x88 // ADC A,B
	AdcAC     Opcode = 0x89 // ADC A,C
	AdcAD     Opcode = 0x8A // ADC A,D
	AdcAE     Opcode = 0x8B // ADC A,E
	AdcAH     Opcode = 0x8C // ADC A,H
	AdcAL     Opcode = 0x8D // ADC A,L
	AdcAHLInd Opcode = 0x8E // ADC A,(HL)
	AdcAA     Opcode = 0x8F // ADC A,A
	SubAB     Opcode = 0x90 // SUB A,B
	SubAC     Opcode = 0x91 // SUB A,C
	SubAD     Opcode = 0x92 // SUB A,D
	SubAE     Opcode = 0x93 // SUB A,E
	SubAH     Opcode = 0x94 // SUB A,H
	SubAL     Opcode = 0x95 // SUB A,L
	SubAHLInd Opcode = 0x96 // SUB A,(HL)
	SubAA     Opcode = 0x97 // SUB A,A
	SbcAB     Opcode = 0x98 // SBC A,B
	SbcAC     Opcode = 0x99 // SBC A,C
	SbcAD     Opcode = 0x9A // SBC A,D
	SbcAE     Opcode = 0x9B // SBC A,E
	SbcAH     Opcode = 0x9C // SBC A,H
	SbcAL     Opcode = 0x9D // SBC A,L
	SbcAHLInd Opcode = 0x9E // SBC A,(HL)
	SbcAA     Opcode = 0x9F // SBC A,A
	AndAB     Opcode = 0xA0 // AND A,B
	AndAC     Opcode = 0xA1 // AND A,C
	AndAD     Opcode = 0xA2 // AND A,D
	AndAE     Opcode = 0xA3 // AND A,E
	AndAH     Opcode = 0xA4 // AND A,H
	AndAL     Opcode = 0xA5 // AND A,L
	AndAHLInd Opcode = 0xA6 // AND A,(HL)
	AndAA     Opcode = 0xA7 // AND A,A
	XorAB     Opcode = 0xA8 // XOR A,B
	XorAC     Opcode = 0xA9 // XOR A,C
	XorAD     Opcode = 0xAA // XOR A,D
	XorAE     Opcode = 0xAB // XOR A,E
	XorAH     Opcode = 0xAC // XOR A,H
	XorAL     Opcode = 0xAD // XOR A,L
	XorAHLInd Opcode = 0xAE // XOR A,(HL)
	XorAA     Opcode = 0xAF // XOR A,A
	OrAB      Opcode = 0xB0 // OR A,B
	OrAC      Opcode = 0xB1 // OR A,C
	OrAD      Opcode = 0xB2 // OR A,D
	OrAE      Opcode = 0xB3 // OR A,E
	OrAH      Opcode = 0xB4 // OR A,H
	OrAL      Opcode = 0xB5 // OR A,L
	OrAHLInd  Opcode = 0xB6 // OR A,(HL)
	OrAA      Opcode = 0xB7 // OR A,A
	CpAB      Opcode = 0xB8 // CP A,B
	CpAC      Opcode = 0xB9 // CP A,C
	CpAD      Opcode = 0xBA // CP A,D
	CpAE      Opcode = 0xBB // CP A,E
	CpAH      Opcode = 0xBC // CP A,H
	CpAL      Opcode = 0xBD // CP A,L
	CpAHLInd  Opcode = 0xBE // CP A,(HL)
	CpAA      Opcode = 0xBF // CP A,A
	RetNz     Opcode = 0xC0 // RET NZ
	PopBC     Opcode = 0xC1 // POP BC
	JpNz16    Opcode = 0xC2 // JP NZ,u16
	Jp16      Opcode = 0xC3 // JP u16
	CallNz16  Opcode = 0xC4 // CALL NZ,u16
	PushBC    Opcode = 0xC5 // PUSH BC
	AddA8     Opcode = 0xC6 // ADD A,u8
	Rst00     Opcode = 0xC7 // RST 00h
	RetZ      Opcode = 0xC8 // RET Z
	Ret       Opcode = 0xC9 // RET
	JpZ16     Opcode = 0xCA // JP Z,u16
	PrefixCB  Opcode = 0xCB // PREFIX CB
	CallZ16   Opcode = 0xCC // CALL Z,u16
	Call16    Opcode = 0xCD // CALL u16
	AdcA8     Opcode = 0xCE // ADC A,u8
	Rst08     Opcode = 0xCF // RST 08h
	RetNc     Opcode = 0xD0 // RET NC
	PopDE     Opcode = 0xD1 // POP DE
	JpNc16    Opcode = 0xD2 // JP NC,u16
	IllegalD3 Opcode = 0xD3 // ILLEGAL_D3
	CallNc16  Opcode = 0xD4 // CALL NC,u16
	PushDE    Opcode = 0xD5 // PUSH DE
	SubA8     Opcode = 0xD6 // SUB A,u8
	Rst10     Opcode = 0xD7 // RST 10h
	RetC      Opcode = 0xD8 // RET C
	Reti      Opcode = 0xD9 // RETI
	JpC16     Opcode = 0xDA // JP C,u16
	IllegalDB Opcode = 0xDB // ILLEGAL_DB
	CallC16   Opcode = 0xDC // CALL C,u16
	IllegalDD Opcode = 0xDD // ILLEGAL_DD
	SbcA8     Opcode = 0xDE // SBC A,u8
	Rst18     Opcode = 0xDF // RST 18h
	Ldh8A     Opcode = 0xE0 // LD (FF00+u8),A
	PopHL     Opcode = 0xE1 // POP HL
	LdhCA     Opcode = 0xE2 // LD (FF00+C),A
	IllegalE3 Opcode = 0xE3 // ILLEGAL_E3
	IllegalE4 Opcode = 0xE4 // ILLEGAL_E4
	PushHL    Opcode = 0xE5 // PUSH HL
	AndA8     Opcode = 0xE6 // AND A,u8
	Rst20     Opcode = 0xE7 // RST 20h
	AddSP8    Opcode = 0xE8 // ADD SP,i8
	JpHL      Opcode = 0xE9 // JP HL
	Ld16IndA  Opcode = 0xEA // LD (u16),A
	IllegalEB Opcode = 0xEB // ILLEGAL_EB
	IllegalEC Opcode = 0xEC // ILLEGAL_EC
	IllegalED Opcode = 0xED // ILLEGAL_ED
	XorA8     Opcode = 0xEE // XOR A,u8
	Rst28     Opcode = 0xEF // RST 28h
	LdhA8     Opcode = 0xF0 // LD A,(FF00+u8)
	PopAF     Opcode = 0xF1 // POP AF
	LdhAC     Opcode = 0xF2 // LD A,(FF00+C)
	Di        Opcode = 0xF3 // DI
	IllegalF4 Opcode = 0xF4 // ILLEGAL_F4
	PushAF    Opcode = 0xF5 // PUSH AF
	OrA8      Opcode = 0xF6 // OR A,u8
	Rst30     Opcode = 0xF7 // RST 30h
	LdHLSP8   Opcode = 0xF8 // LD HL,SP+i8
	LdSPHL    Opcode = 0xF9 // LD SP,HL
	LdA16Ind  Opcode = 0xFA // LD A,(u16)
	Ei        Opcode = 0xFB // EI
	IllegalFC Opcode = 0xFC // ILLEGAL_FC
	IllegalFD Opcode = 0xFD // ILLEGAL_FD
	CpA8      Opcode = 0xFE // CP A,u8
	Rst38     Opcode = 0xFF // RST 38h
)

var opcodeNames = [256]string{
	"NOP", "LD BC,u16", "LD (BC),A", "INC BC",
	"INC B", "DEC B", "LD B,u8", "RLCA",
	"LD (u16),SP", "ADD HL,BC", "LD A,(BC)", "DEC BC",
	"INC C", "DEC C", "LD C,u8", "RRCA",
	"STOP", "LD DE,u16", "LD (DE),A", "INC DE",
	"INC D", "DEC D", "LD D,u8", "RLA",
	"JR i8", "ADD HL,DE", "LD A,(DE)", "DEC DE",
	"INC E", "DEC E", "LD E,u8", "RRA",
	"JR NZ,i8", "LD HL,u16", "LD (HL+),A", "INC HL",
	"INC H", "DEC H", "LD H,u8", "DAA",
	"JR Z,i8", "ADD HL,HL", "LD A,(HL+)", "DEC HL",
	"INC L", "DEC L", "LD L,u8", "CPL",
	"JR NC,i8", "LD SP,u16", "LD (HL-),A", "INC SP",
	"INC (HL)", "DEC (HL)", "LD (HL),u8", "SCF",
	"JR C,i8", "ADD HL,SP", "LD A,(HL-)", "DEC SP",
	"INC A", "DEC A", "LD A,u8", "CCF",
	"LD B,B", "LD B,C", "LD B,D", "LD B,E",
	"LD B,H", "LD B,L", "LD B,(HL)", "LD B,A",
	"LD C,B", "LD C,C", "LD C,D", "LD C,E",
	"LD C,H", "LD C,L", "LD C,(HL)", "LD C,A",
	"LD D,B", "LD D,C", "LD D,D", "LD D,E",
	"LD D,H", "LD D,L", "LD D,(HL)", "LD D,A",
	"LD E,B", "LD E,C", "LD E,D", "LD E,E",
	"LD E,H", "LD E,L", "LD E,(HL)", "LD E,A",
	"LD H,B", "LD H,C", "LD H,D", "LD H,E",
	"LD H,H", "LD H,L", "LD H,(HL)", "LD H,A",
	"LD L,B", "LD L,C", "LD L,D", "LD L,E",
	"LD L,H", "LD L,L", "LD L,(HL)", "LD L,A",
	"LD (HL),B", "LD (HL),C", "LD (HL),D", "LD (HL),E",
	"LD (HL),H", "LD (HL),L", "HALT", "LD (HL),A",
	"LD A,B", "LD A,C", "LD A,D", "LD A,E",
	"LD A,H", "LD A,L", "LD A,(HL)", "LD A,A",
	"ADD A,B", "ADD A,C", "ADD A,D", "ADD A,E",
	"ADD A,H", "ADD A,L", "ADD A,(HL)", "ADD A,A",
	"ADC A,B", "ADC A,C", "ADC A,D", "ADC A,E",
	"ADC A,H", "ADC A,L", "ADC A,(HL)", "ADC A,A",
	"SUB A,B", "SUB A,C", "SUB A,D", "SUB A,E",
	"SUB A,H", "SUB A,L", "SUB A,(HL)", "SUB A,A",
	"SBC A,B", "SBC A,C", "SBC A,D", "SBC A,E",
	"SBC A,H", "SBC A,L", "SBC A,(HL)", "SBC A,A",
	"AND A,B", "AND A,C", "AND A,D", "AND A,E",
	"AND A,H", "AND A,L", "AND A,(HL)", "AND A,A",
	"XOR A,B", "XOR A,C", "XOR A,D", "XOR A,E",
	"XOR A,H", "XOR A,L", "XOR A,(HL)", "XOR A,A",
	"OR A,B", "OR A,C", "OR A,D", "OR A,E",
	"OR A,H", "OR A,L", "OR A,(HL)", "OR A,A",
	"CP A,B", "CP A,C", "CP A,D", "CP A,E",
	"CP A,H", "CP A,L", "CP A,(HL)", "CP A,A",
	"RET NZ", "POP BC", "JP NZ,u16", "JP u16",
	"CALL NZ,u16", "PUSH BC", "ADD A,u8", "RST 00h",
	"RET Z", "RET", "JP Z,u16", "PREFIX CB",
	"CALL Z,u16", "CALL u16", "ADC A,u8", "RST 08h",
	"RET NC", "POP DE", "JP NC,u16", "ILLEGAL_D3",
	"CALL NC,u16", "PUSH DE", "SUB A,u8", "RST 10h",
	"RET C", "RETI", "JP C,u16", "ILLEGAL_DB",
	"CALL C,u16", "ILLEGAL_DD", "SBC A,u8", "RST 18h",
	"LD (FF00+u8),A", "POP HL", "LD (FF00+C),A", "ILLEGAL_E3",
	"ILLEGAL_E4", "PUSH HL", "AND A,u8", "RST 20h",
	"ADD SP,i8", "JP HL", "LD (u16),A", "ILLEGAL_EB",
	"ILLEGAL_EC", "ILLEGAL_ED", "XOR A,u8", "RST 28h",
	"LD A,(FF00+u8)", "POP AF", "LD A,(FF00+C)", "DI",
	"ILLEGAL_F4", "PUSH AF", "OR A,u8", "RST 30h",
	"LD HL,SP+i8", "LD SP,HL", "LD A,(u16)", "EI",
	"ILLEGAL_FC", "ILLEGAL_FD", "CP A,u8", "RST 38h",
}

func (o Opcode) String() string {
	return opcodeNames[o]
}

// Illegal reports whether the opcode locks up the processor.
func (o Opcode) Illegal() bool {
	switch o {
	case IllegalD3, IllegalDB, IllegalDD, IllegalE3, IllegalE4, IllegalEB, IllegalEC, IllegalED, IllegalF4, IllegalFC, IllegalFD:
		return true
	}
	return false
}

// GoString prints the opcode with its encoding, for dumps.
func (o Opcode) GoString() string {
	return fmt.Sprintf("0x%02X(%s)", uint8(o), opcodeNames[o])
}
