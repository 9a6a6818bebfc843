package cpu

import (
	"fmt"

	"github.com/albenik/bcd"
	"github.com/retroenv/retrogolib/log"
)

// EmulateCycle fetches the instruction at PC, advances PC and executes it.
// Any fault halts the machine and is returned as a *HaltError; every later
// call returns the same error.
func (emu *EMU) EmulateCycle() error {
	if emu.halt != nil {
		return emu.halt
	}

	pc := emu.pc
	op := FetchOpcode(emu.read(pc), emu.read(pc+1))
	emu.opcode = uint16(op)
	emu.pc = (pc + 2) & addressMask

	if emu.trace {
		emu.logger.Debug("Executing",
			log.Hex("pc", pc),
			log.Hex("opcode", emu.opcode),
			log.String("instruction", emu.Disassemble(emu.opcode)))
	}

	if err := emu.opCodeParser(op); err != nil {
		emu.halt = &HaltError{PC: pc, Opcode: emu.opcode, Err: err}
		return emu.halt
	}
	return nil
}

func (emu *EMU) opCodeParser(op Opcode) error {
	x := op.X()
	y := op.Y()
	kk := op.NN()
	nnn := op.NNN()

	switch op.Family() {
	case 0x0:
		switch nnn {
		case 0x0E0: // CLS
			emu.display.Clear()
		case 0x0EE: // RET
			addr, err := emu.pop()
			if err != nil {
				return err
			}
			emu.pc = addr
		default: // SYS nnn
			return emu.opCodeError(op, ErrUnknownOpcode)
		}
	case 0x1: // JP nnn
		emu.pc = nnn
	case 0x2: // CALL nnn
		if err := emu.push(emu.pc); err != nil {
			return err
		}
		emu.pc = nnn
	case 0x3: // SE Vx, kk
		if emu.V[x] == kk {
			emu.skip()
		}
	case 0x4: // SNE Vx, kk
		if emu.V[x] != kk {
			emu.skip()
		}
	case 0x5: // SE Vx, Vy
		if op.N() != 0 {
			return emu.opCodeError(op, ErrMalformedOpcode)
		}
		if emu.V[x] == emu.V[y] {
			emu.skip()
		}
	case 0x6: // LD Vx, kk
		emu.V[x] = kk
	case 0x7: // ADD Vx, kk
		emu.V[x] += kk
	case 0x8:
		return emu.arithmetic(op)
	case 0x9: // SNE Vx, Vy
		if op.N() != 0 {
			return emu.opCodeError(op, ErrMalformedOpcode)
		}
		if emu.V[x] != emu.V[y] {
			emu.skip()
		}
	case 0xA: // LD I, nnn
		emu.I = nnn
	case 0xB: // JP V0, nnn
		offset := emu.V[x]
		if emu.quirks.JumpUsesV0 {
			offset = emu.V[0]
		}
		emu.pc = (nnn + uint16(offset)) & addressMask
	case 0xC: // RND Vx, kk
		emu.V[x] = uint8(emu.rng.Intn(256)) & kk
	case 0xD: // DRW Vx, Vy, n
		emu.drawSprite(x, y, op.N())
	case 0xF:
		return emu.miscellaneous(op)
	default: // keypad instructions are not supported
		return emu.opCodeError(op, ErrUnknownOpcode)
	}
	return nil
}

func (emu *EMU) arithmetic(op Opcode) error {
	x := op.X()
	y := op.Y()

	switch op.N() {
	case 0x0: // LD Vx, Vy
		emu.V[x] = emu.V[y]
	case 0x1: // OR Vx, Vy
		emu.V[x] |= emu.V[y]
	case 0x2: // AND Vx, Vy
		emu.V[x] &= emu.V[y]
	case 0x3: // XOR Vx, Vy
		emu.V[x] ^= emu.V[y]
	case 0x4: // ADD Vx, Vy
		sum := uint16(emu.V[x]) + uint16(emu.V[y])
		emu.V[x] = uint8(sum)
		emu.V[flag] = uint8(sum >> 8)
	case 0x5: // SUB Vx, Vy
		borrow := boolToFlag(emu.V[x] > emu.V[y])
		emu.V[x] -= emu.V[y]
		emu.V[flag] = borrow
	case 0x6: // SHR Vx {, Vy}
		if emu.quirks.ShiftCopiesY {
			emu.V[x] = emu.V[y]
		}
		out := emu.V[x] & 0x01
		emu.V[x] >>= 1
		emu.V[flag] = out
	case 0x7: // SUBN Vx, Vy
		borrow := boolToFlag(emu.V[y] > emu.V[x])
		emu.V[x] = emu.V[y] - emu.V[x]
		emu.V[flag] = borrow
	case 0xE: // SHL Vx {, Vy}
		if emu.quirks.ShiftCopiesY {
			emu.V[x] = emu.V[y]
		}
		out := emu.V[x] >> 7
		emu.V[x] <<= 1
		emu.V[flag] = out
	default:
		return emu.opCodeError(op, ErrUnknownOpcode)
	}
	return nil
}

func (emu *EMU) miscellaneous(op Opcode) error {
	x := op.X()

	switch op.NN() {
	case 0x07: // LD Vx, DT
		emu.V[x] = emu.delayTimer
	case 0x15: // LD DT, Vx
		emu.delayTimer = emu.V[x]
	case 0x18: // LD ST, Vx
		emu.soundTimer = emu.V[x]
	case 0x1E: // ADD I, Vx
		emu.I += uint16(emu.V[x])
		if emu.quirks.IndexOverflowFlag && emu.I > addressMask {
			emu.V[flag] = 1
		}
	case 0x29: // LD F, Vx
		emu.I = FontAddress + uint16(emu.V[x]&0xF)*GlyphSize
	case 0x33: // LD B, Vx
		value := emu.V[x]
		tens := bcd.FromUint8(value % 100)
		emu.write(emu.I, value/100)
		emu.write(emu.I+1, tens>>4)
		emu.write(emu.I+2, tens&0xF)
	case 0x55: // LD [I], Vx
		for i := uint16(0); i <= uint16(x); i++ {
			emu.write(emu.I+i, emu.V[i])
		}
		if emu.quirks.LoadStoreIncrementsI {
			emu.I += uint16(x) + 1
		}
	case 0x65: // LD Vx, [I]
		for i := uint16(0); i <= uint16(x); i++ {
			emu.V[i] = emu.read(emu.I + i)
		}
		if emu.quirks.LoadStoreIncrementsI {
			emu.I += uint16(x) + 1
		}
	default:
		return emu.opCodeError(op, ErrUnknownOpcode)
	}
	return nil
}

// drawSprite XORs an n-row sprite read from I onto the framebuffer. VF is
// always written: 1 when a lit pixel was turned off, 0 otherwise.
func (emu *EMU) drawSprite(x, y, n uint8) {
	sprite := make([]uint8, n)
	for i := range sprite {
		sprite[i] = emu.read(emu.I + uint16(i))
	}

	emu.V[flag] = 0
	if emu.display.DrawSprite(emu.V[x], emu.V[y], sprite) {
		emu.V[flag] = 1
	}
}

func (emu *EMU) skip() {
	emu.pc = (emu.pc + 2) & addressMask
}

func (emu *EMU) opCodeError(op Opcode, err error) error {
	return fmt.Errorf("%w: %04X", err, uint16(op))
}

func boolToFlag(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
