package cpu

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownOpcode is returned for instructions outside the supported set,
	// including machine code routine calls (0NNN) and the keypad families.
	ErrUnknownOpcode = errors.New("unknown opcode")
	// ErrMalformedOpcode is returned when a nibble that must be zero is not.
	ErrMalformedOpcode = errors.New("malformed opcode")
	// ErrStackOverflow is returned by a call with a full stack.
	ErrStackOverflow = errors.New("stack overflow")
	// ErrStackUnderflow is returned by a return with an empty stack.
	ErrStackUnderflow = errors.New("stack underflow")
	// ErrROMTooLarge is returned for program images that do not fit above 0x200.
	ErrROMTooLarge = errors.New("ROM too large")
)

// HaltError records the instruction that stopped the machine. A halted
// machine never resumes.
type HaltError struct {
	PC     uint16 // address the opcode was fetched from
	Opcode uint16
	Err    error
}

func (e *HaltError) Error() string {
	return fmt.Sprintf("halted at %04X executing %04X: %v", e.PC, e.Opcode, e.Err)
}

func (e *HaltError) Unwrap() error {
	return e.Err
}
