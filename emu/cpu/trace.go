package cpu

import (
	"fmt"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// Mnemonic returns the instruction name of an opcode, or an empty string
// for words that are not instructions.
func Mnemonic(opcode uint16) string {
	for _, op := range chip8.Opcodes[int(opcode>>12)] {
		if op.Instruction != nil && op.Info.Mask&opcode == op.Info.Value {
			return op.Instruction.Name
		}
	}
	return ""
}

// Disassemble returns an opcode as an assembly line with its operands, as
// executed with the modern quirk set.
func Disassemble(opcode uint16) string {
	return disassemble(opcode, ModernQuirks())
}

// Disassemble returns an opcode as an assembly line with its operands, as
// executed with the machine's active quirk set.
func (emu *EMU) Disassemble(opcode uint16) string {
	return disassemble(opcode, emu.quirks)
}

func disassemble(opcode uint16, quirks Quirks) string {
	name := Mnemonic(opcode)
	if name == "" {
		return fmt.Sprintf(".word $%04X", opcode)
	}
	if params := operands(Opcode(opcode), quirks); params != "" {
		return name + " " + params
	}
	return name
}

func operands(op Opcode, quirks Quirks) string {
	switch op.Family() {
	case 0x0:
		return ""
	case 0x1, 0x2:
		return fmt.Sprintf("$%03X", op.NNN())
	case 0x3, 0x4, 0x6, 0x7, 0xC:
		return fmt.Sprintf("V%X, $%02X", op.X(), op.NN())
	case 0x5, 0x9:
		return fmt.Sprintf("V%X, V%X", op.X(), op.Y())
	case 0x8:
		if n := op.N(); n == 0x6 || n == 0xE {
			return fmt.Sprintf("V%X", op.X())
		}
		return fmt.Sprintf("V%X, V%X", op.X(), op.Y())
	case 0xA:
		return fmt.Sprintf("I, $%03X", op.NNN())
	case 0xB:
		if quirks.JumpUsesV0 {
			return fmt.Sprintf("V0, $%03X", op.NNN())
		}
		return fmt.Sprintf("V%X, $%03X", op.X(), op.NNN())
	case 0xD:
		return fmt.Sprintf("V%X, V%X, $%X", op.X(), op.Y(), op.N())
	case 0xE:
		return fmt.Sprintf("V%X", op.X())
	}

	switch op.NN() {
	case 0x07:
		return fmt.Sprintf("V%X, DT", op.X())
	case 0x0A:
		return fmt.Sprintf("V%X, K", op.X())
	case 0x15:
		return fmt.Sprintf("DT, V%X", op.X())
	case 0x18:
		return fmt.Sprintf("ST, V%X", op.X())
	case 0x1E:
		return fmt.Sprintf("I, V%X", op.X())
	case 0x29:
		return fmt.Sprintf("F, V%X", op.X())
	case 0x33:
		return fmt.Sprintf("B, V%X", op.X())
	case 0x55:
		return fmt.Sprintf("[I], V%X", op.X())
	case 0x65:
		return fmt.Sprintf("V%X, [I]", op.X())
	}
	return ""
}
