package cpu

import "fmt"

// OpcodeCB identifies an instruction following the 0xCB prefix.
type OpcodeCB uint8

const (
	RlcB OpcodeCB = iota
	RlcC
	RlcD
	RlcE
	RlcH
	RlcL
	RlcHLInd
	RlcA
	RrcB
	RrcC
	RrcD
	RrcE
	RrcH
	RrcL
	RrcHLInd
	RrcA
	RlB
	RlC
	RlD
	RlE
	RlH
	RlL
	RlHLInd
	RlA
	RrB
	RrC
	RrD
	RrE
	RrH
	RrL
	RrHLInd
	RrA
	SlaB
	SlaC
	SlaD
	SlaE
	SlaH
	SlaL
	SlaHLInd
	SlaA
	SraB
	SraC
	SraD
	SraE
	SraH
	SraL
	SraHLInd
	SraA
	SwapB
	SwapC
	SwapD
	SwapE
	SwapH
	SwapL
	SwapHLInd
	SwapA
	SrlB
	SrlC
	SrlD
	SrlE
	SrlH
	SrlL
	SrlHLInd
	SrlA
	Bit0B
	Bit0C
	Bit0D
	Bit0E
	Bit0H
	Bit0L
	Bit0HLInd
	Bit0A
	Bit1B
	Bit1C
	Bit1D
	Bit1E
	Bit1H
	Bit1L
	Bit1HLInd
	Bit1A
	Bit2B
	Bit2C
	Bit2D
	Bit2E
	Bit2H
	Bit2L
	Bit2HLInd
	Bit2A
	Bit3B
	Bit3C
	Bit3D
	Bit3E
	Bit3H
	Bit3L
	Bit3HLInd
	Bit3A
	Bit4B
	Bit4C
	Bit4D
	Bit4E
	Bit4H
	Bit4L
	Bit4HLInd
	Bit4A
	Bit5B
	Bit5C
	Bit5D
	Bit5E
	Bit5H
	Bit5L
	Bit5HLInd
	Bit5A
	Bit6B
	Bit6C
	Bit6D
	Bit6E
	Bit6H
	Bit6L
	Bit6HLInd
	Bit6A
	Bit7B
	Bit7C
	Bit7D
	Bit7E
	Bit7H
	Bit7L
	Bit7HLInd
	Bit7A
	Res0B
	Res0C
	Res0D
	Res0E
	Res0H
	Res0L
	Res0HLInd
	Res0A
	Res1B
	Res1C
	Res1D
	Res1E
	Res1H
	Res1L
	Res1HLInd
	Res1A
	Res2B
	Res2C
	Res2D
	Res2E
	Res2H
	Res2L
	Res2HLInd
	Res2A
	Res3B
	Res3C
	Res3D
	Res3E
	Res3H
	Res3L
	Res3HLInd
	Res3A
	Res4B
	Res4C
	Res4D
	Res4E
	Res4H
	Res4L
	Res4HLInd
	Res4A
	Res5B
	Res5C
	Res5D
	Res5E
	Res5H
	Res5L
	Res5HLInd
	Res5A
	Res6B
	Res6C
	Res6D
	Res6E
	Res6H
	Res6L
	Res6HLInd
	Res6A
	Res7B
	Res7C
	Res7D
	Res7E
	Res7H
	Res7L
	Res7HLInd
	Res7A
	Set0B
	Set0C
	Set0D
	Set0E
	Set0H
	Set0L
	Set0HLInd
	Set0A
	Set1B
	Set1C
	Set1D
	Set1E
	Set1H
	Set1L
	Set1HLInd
	Set1A
	Set2B
	Set2C
	Set2D
	Set2E
	Set2H
	Set2L
	Set2HLInd
	Set2A
	Set3B
	Set3C
	Set3D
	Set3E
	Set3H
	Set3L
	Set3HLInd
	Set3A
	Set4B
	Set4C
	Set4D
	Set4E
	Set4H
	Set4L
	Set4HLInd
	Set4A
	Set5B
	Set5C
	Set5D
	Set5E
	Set5H
	Set5L
	Set5HLInd
	Set5A
	Set6B
	Set6C
	Set6D
	Set6E
	Set6H
	Set6L
	Set6HLInd
	Set6A
	Set7B
	Set7C
	Set7D
	Set7E
	Set7H
	Set7L
	Set7HLInd
	Set7A
)

var opcodeCBNames = [256]string{
	"RLC B", "RLC C", "RLC D", "RLC E",
	"RLC H", "RLC L", "RLC (HL)", "RLC A",
	"RRC B", "RRC C", "RRC D", "RRC E",
	"RRC H", "RRC L", "RRC (HL)", "RRC A",
	"RL B", "RL C", "RL D", "RL E",
	"RL H", "RL L", "RL (HL)", "RL A",
	"RR B", "RR C", "RR D", "RR E",
	"RR H", "RR L", "RR (HL)", "RR A",
	"SLA B", "SLA C", "SLA D", "SLA E",
	"SLA H", "SLA L", "SLA (HL)", "SLA A",
	"SRA B", "SRA C", "SRA D", "SRA E",
	"SRA H", "SRA L", "SRA (HL)", "SRA A",
	"SWAP B", "SWAP C", "SWAP D", "SWAP E",
	"SWAP H", "SWAP L", "SWAP (HL)", "SWAP A",
	"SRL B", "SRL C", "SRL D", "SRL E",
	"SRL H", "SRL L", "SRL (HL)", "SRL A",
	"BIT 0,B", "BIT 0,C", "BIT 0,D", "BIT 0,E",
	"BIT 0,H", "BIT 0,L", "BIT 0,(HL)", "BIT 0,A",
	"BIT 1,B", "BIT 1,C", "BIT 1,D", "BIT 1,E",
	"BIT 1,H", "BIT 1,L", "BIT 1,(HL)", "BIT 1,A",
	"BIT 2,B", "BIT 2,C", "BIT 2,D", "BIT 2,E",
	"BIT 2,H", "BIT 2,L", "BIT 2,(HL)", "BIT 2,A",
	"BIT 3,B", "BIT 3,C", "BIT 3,D", "BIT 3,E",
	"BIT 3,H", "BIT 3,L", "BIT 3,(HL)", "BIT 3,A",
	"BIT 4,B", "BIT 4,C", "BIT 4,D", "BIT 4,E",
	"BIT 4,H", "BIT 4,L", "BIT 4,(HL)", "BIT 4,A",
	"BIT 5,B", "BIT 5,C", "BIT 5,D", "BIT 5,E",
	"BIT 5,H", "BIT 5,L", "BIT 5,(HL)", "BIT 5,A",
	"BIT 6,B", "BIT 6,C", "BIT 6,D", "BIT 6,E",
	"BIT 6,H", "BIT 6,L", "BIT 6,(HL)", "BIT 6,A",
	"BIT 7,B", "BIT 7,C", "BIT 7,D", "BIT 7,E",
	"BIT 7,H", "BIT 7,L", "BIT 7,(HL)", "BIT 7,A",
	"RES 0,B", "RES 0,C", "RES 0,D", "RES 0,E",
	"RES 0,H", "RES 0,L", "RES 0,(HL)", "RES 0,A",
	"RES 1,B", "RES 1,C", "RES 1,D", "RES 1,E",
	"RES 1,H", "RES 1,L", "RES 1,(HL)", "RES 1,A",
	"RES 2,B", "RES 2,C", "RES 2,D", "RES 2,E",
	"RES 2,H", "RES 2,L", "RES 2,(HL)", "RES 2,A",
	"RES 3,B", "RES 3,C", "RES 3,D", "RES 3,E",
	"RES 3,H", "RES 3,L", "RES 3,(HL)", "RES 3,A",
	"RES 4,B", "RES 4,C", "RES 4,D", "RES 4,E",
	"RES 4,H", "RES 4,L", "RES 4,(HL)", "RES 4,A",
	"RES 5,B", "RES 5,C", "RES 5,D", "RES 5,E",
	"RES 5,H", "RES 5,L", "RES 5,(HL)", "RES 5,A",
	"RES 6,B", "RES 6,C", "RES 6,D", "RES 6,E",
	"RES 6,H", "RES 6,L", "RES 6,(HL)", "RES 6,A",
	"RES 7,B", "RES 7,C", "RES 7,D", "RES 7,E",
	"RES 7,H", "RES 7,L", "RES 7,(HL)", "RES 7,A",
	"SET 0,B", "SET 0,C", "SET 0,D", "SET 0,E",
	"SET 0,H", "SET 0,L", "SET 0,(HL)", "SET 0,A",
	"SET 1,B", "SET 1,C", "SET 1,D", "SET 1,E",
	"SET 1,H", "SET 1,L", "SET 1,(HL)", "SET 1,A",
	"SET 2,B", "SET 2,C", "SET 2,D", "SET 2,E",
	"SET 2,H", "SET 2,L", "SET 2,(HL)", "SET 2,A",
	"SET 3,B", "SET 3,C", "SET 3,D", "SET 3,E",
	"SET 3,H", "SET 3,L", "SET 3,(HL)", "SET 3,A",
	"SET 4,B", "SET 4,C", "SET 4,D", "SET 4,E",
	"SET 4,H", "SET 4,L", "SET 4,(HL)", "SET 4,A",
	"SET 5,B", "SET 5,C", "SET 5,D", "SET 5,E",
	"SET 5,H", "SET 5,L", "SET 5,(HL)", "SET 5,A",
	"SET 6,B", "SET 6,C", "SET 6,D", "SET 6,E",
	"SET 6,H", "SET 6,L", "SET 6,(HL)", "SET 6,A",
	"SET 7,B", "SET 7,C", "SET 7,D", "SET 7,E",
	"SET 7,H", "SET 7,L", "SET 7,(HL)", "SET 7,A",
}

func (o OpcodeCB) String() string {
	return opcodeCBNames[o]
}

func (o OpcodeCB) GoString() string {
	return fmt.Sprintf("0xCB%02X(%s)", uint8(o), opcodeCBNames[o])
}
