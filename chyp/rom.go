// Package chyp handles CHIP-8 program images: reading them from disk and
// dumping a machine's memory for inspection.
package chyp

import (
	"fmt"
	"os"

	"chyp8vm/emu/cpu"
)

// ReadROM reads a raw program image. The file has no header; every byte is
// program memory starting at 0x200.
func ReadROM(filename string) ([]byte, error) {
	rom, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading ROM '%s': %w", filename, err)
	}
	if len(rom) > cpu.MaxROMSize {
		return nil, fmt.Errorf("%w: '%s' has %d bytes, maximum is %d",
			cpu.ErrROMTooLarge, filename, len(rom), cpu.MaxROMSize)
	}
	return rom, nil
}

// LoadGame reads a ROM file into a machine.
func LoadGame(emu *cpu.EMU, filename string) (int, error) {
	rom, err := ReadROM(filename)
	if err != nil {
		return 0, err
	}
	if err := emu.LoadROM(rom); err != nil {
		return 0, fmt.Errorf("loading ROM '%s': %w", filename, err)
	}
	return len(rom), nil
}
