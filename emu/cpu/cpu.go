package cpu

import (
	"fmt"
	"math/rand"
	"time"

	"chyp8vm/emu/screen"

	"github.com/retroenv/retrogolib/log"
)

const (
	MemorySize   = 0x1000
	ProgramStart = 0x200
	FontAddress  = 0x050
	GlyphSize    = 5
	StackSize    = 16
	MaxROMSize   = MemorySize - ProgramStart

	addressMask = MemorySize - 1
	flag        = 0xF
)

var FontSet = [16 * GlyphSize]uint8{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// Config controls how a machine behaves.
type Config struct {
	Legacy bool       // use the COSMAC VIP quirk set
	Trace  bool       // log every executed instruction at debug level
	Rand   *rand.Rand // source for CXNN, seeded from the time when nil
}

// EMU is the complete state of one CHIP-8 machine. Nothing is shared between
// instances.
type EMU struct {
	opcode     uint16
	memory     [MemorySize]uint8
	V          [16]uint8
	I          uint16 //address register
	pc         uint16
	display    *screen.Framebuffer
	delayTimer uint8
	soundTimer uint8
	stack      [StackSize]uint16
	sp         uint16

	quirks Quirks
	trace  bool
	rng    *rand.Rand
	logger *log.Logger

	loaded bool
	halt   *HaltError
}

// NewEMU returns a machine with the font loaded and no program.
func NewEMU(logger *log.Logger, cfg Config) *EMU {
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	emu := &EMU{
		pc:      ProgramStart,
		display: &screen.Framebuffer{},
		quirks:  QuirksFor(cfg.Legacy),
		trace:   cfg.Trace,
		rng:     rng,
		logger:  logger,
	}
	emu.loadFont()
	return emu
}

func (emu *EMU) loadFont() {
	copy(emu.memory[FontAddress:], FontSet[:])
}

// LoadROM copies a raw program image to 0x200 and arms the machine.
func (emu *EMU) LoadROM(rom []byte) error {
	if len(rom) > MaxROMSize {
		return fmt.Errorf("%w: %d bytes, maximum is %d", ErrROMTooLarge, len(rom), MaxROMSize)
	}

	copy(emu.memory[ProgramStart:], rom)
	emu.pc = ProgramStart
	emu.loaded = true
	return nil
}

// SetQuirks replaces the quirk set at runtime.
func (emu *EMU) SetQuirks(q Quirks) {
	emu.quirks = q
}

// Quirks returns the active quirk set.
func (emu *EMU) Quirks() Quirks {
	return emu.quirks
}

// Loaded reports whether a program has been loaded.
func (emu *EMU) Loaded() bool {
	return emu.loaded
}

// Halted reports whether the machine stopped on a fault.
func (emu *EMU) Halted() bool {
	return emu.halt != nil
}

// HaltReason returns the fault that stopped the machine, or nil.
func (emu *EMU) HaltReason() *HaltError {
	return emu.halt
}

// PC returns the program counter.
func (emu *EMU) PC() uint16 {
	return emu.pc
}

// Index returns the index register.
func (emu *EMU) Index() uint16 {
	return emu.I
}

// Register returns VX.
func (emu *EMU) Register(x uint8) uint8 {
	return emu.V[x&0xF]
}

// DelayTimer returns the value of DT.
func (emu *EMU) DelayTimer() uint8 {
	return emu.delayTimer
}

// SoundTimer returns the value of ST.
func (emu *EMU) SoundTimer() uint8 {
	return emu.soundTimer
}

// SoundActive reports whether a tone should be playing.
func (emu *EMU) SoundActive() bool {
	return emu.soundTimer > 0
}

// StackDepth returns the number of pending return addresses.
func (emu *EMU) StackDepth() int {
	return int(emu.sp)
}

// Framebuffer returns the display the machine draws into.
func (emu *EMU) Framebuffer() *screen.Framebuffer {
	return emu.display
}

// Memory returns a copy of the machine memory.
func (emu *EMU) Memory() []byte {
	memory := make([]byte, MemorySize)
	copy(memory, emu.memory[:])
	return memory
}

// TickTimers decrements both timers by one, stopping at zero.
func (emu *EMU) TickTimers() {
	emu.delayTimerHandler()
	emu.soundTimerHandler()
}

func (emu *EMU) delayTimerHandler() {
	if emu.delayTimer > 0 {
		emu.delayTimer--
	}
}

func (emu *EMU) soundTimerHandler() {
	if emu.soundTimer == 0 {
		return
	}
	emu.soundTimer--
	if emu.soundTimer == 0 && emu.trace {
		emu.logger.Debug("Sound timer expired", log.Hex("pc", emu.pc))
	}
}

func (emu *EMU) read(addr uint16) uint8 {
	return emu.memory[addr&addressMask]
}

func (emu *EMU) write(addr uint16, value uint8) {
	emu.memory[addr&addressMask] = value
}
