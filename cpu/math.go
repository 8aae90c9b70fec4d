package cpu

func b2u8(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

func add8(x, y uint8, carry bool) (uint8, bool) {
	// Thanks to: https://cs.opensource.google/go/go/+/refs/tags/go1.17.6:src/math/bits/bits.go;l=354
	sum := x + y + b2u8(carry)
	carryOut := (((x & y) | ((x | y) &^ sum)) >> 7) != 0
	return sum, carryOut
}

func add4(xu8, yu8 uint8, carry bool) (uint8, bool) {
	// Thanks to: https://cs.opensource.google/go/go/+/refs/tags/go1.17.6:src/math/bits/bits.go;l=354
	x, y := xu8&0x0f, yu8&0x0f
	sum := (x + y + b2u8(carry)) & 0x0f
	carryOut := (((x & y) | ((x | y) &^ sum)) >> 3) != 0
	return sum, carryOut
}

func sub8(x, y uint8, borrow bool) (uint8, bool) {
	// Thanks to: https://cs.opensource.google/go/go/+/refs/tags/go1.17.6:src/math/bits/bits.go;l=380
	diff := x - y - b2u8(borrow)
	borrowOut := (((^x & y) | (^(x ^ y) & diff)) >> 7) != 0
	return diff, borrowOut
}

func sub4(xu8, yu8 uint8, borrow bool) (uint8, bool) {
	// Thanks to: https://cs.opensource.google/go/go/+/refs/tags/go1.17.6:src/math/bits/bits.go;l=380
	x, y := xu8&0x0f, yu8&0x0f
	diff := (x - y - b2u8(borrow)) & 0x0f
	borrowOut := (((^x & y) | (^(x ^ y) & diff)) >> 3) != 0
	return diff, borrowOut
}

// add16 returns the sum with the carries out of bit 11 and bit 15.
func add16(x, y uint16) (sum uint16, half, carry bool) {
	sum = x + y
	half = (x&0x0fff)+(y&0x0fff) > 0x0fff
	carry = sum < x
	return
}

// addSigned adds a signed displacement to x. The flags come from the
// unsigned addition of the low byte.
func addSigned(x uint16, e uint8) (sum uint16, half, carry bool) {
	sum = uint16(int32(x) + int32(int8(e)))
	_, half = add4(uint8(x), e, false)
	_, carry = add8(uint8(x), e, false)
	return
}

// daa adjusts a after a BCD addition or subtraction. It returns the
// corrected value and the new carry.
func daa(a uint8, subtract, half, carry bool) (uint8, bool) {
	if !subtract {
		if carry || a > 0x99 {
			a += 0x60
			carry = true
		}
		if half || a&0x0f > 0x09 {
			a += 0x06
		}
	} else {
		if carry {
			a -= 0x60
		}
		if half {
			a -= 0x06
		}
	}
	return a, carry
}

type shiftKind uint8

const (
	shiftRlc shiftKind = iota
	shiftRrc
	shiftRl
	shiftRr
	shiftSla
	shiftSra
	shiftSwap
	shiftSrl
)

// shift runs one member of the rotate/shift family. The family only differs
// in the bit that leaves into carry and the bit that comes back in.
func shift(kind shiftKind, v uint8, carryIn bool) (uint8, bool) {
	switch kind {
	case shiftRlc:
		return v<<1 | v>>7, v&0x80 != 0
	case shiftRrc:
		return v>>1 | v<<7, v&0x01 != 0
	case shiftRl:
		return v<<1 | b2u8(carryIn), v&0x80 != 0
	case shiftRr:
		return v>>1 | b2u8(carryIn)<<7, v&0x01 != 0
	case shiftSla:
		return v << 1, v&0x80 != 0
	case shiftSra:
		return v>>1 | v&0x80, v&0x01 != 0
	case shiftSwap:
		return v<<4 | v>>4, false
	case shiftSrl:
		return v >> 1, v&0x01 != 0
	}
	panic("invalid shift kind")
}
