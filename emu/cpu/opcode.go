package cpu

// Opcode is a 2-byte instruction word. Its fields are nibble aligned:
//
//	F X Y N
//	F X [NN]
//	F [NNN]
type Opcode uint16

// FetchOpcode combines two consecutive memory bytes, high byte first.
func FetchOpcode(hi, lo uint8) Opcode {
	return Opcode(uint16(hi)<<8 | uint16(lo))
}

// Family returns the first nibble, which selects the instruction family.
func (o Opcode) Family() uint8 {
	return uint8(o >> 12)
}

// X returns the second nibble, usually a register index.
func (o Opcode) X() uint8 {
	return uint8(o>>8) & 0xF
}

// Y returns the third nibble, usually a register index.
func (o Opcode) Y() uint8 {
	return uint8(o>>4) & 0xF
}

// N returns the last nibble.
func (o Opcode) N() uint8 {
	return uint8(o) & 0xF
}

// NN returns the low byte.
func (o Opcode) NN() uint8 {
	return uint8(o)
}

// NNN returns the low 12 bits, usually an address.
func (o Opcode) NNN() uint16 {
	return uint16(o) & 0x0FFF
}
