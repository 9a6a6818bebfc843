package cpu

// Quirks selects between the historical behaviours of the instructions that
// CHIP-8 interpreters never agreed on.
type Quirks struct {
	ShiftCopiesY         bool // 8XY6/8XYE shift VY into VX instead of shifting VX in place
	JumpUsesV0           bool // BNNN adds V0, otherwise the register named by X
	LoadStoreIncrementsI bool // FX55/FX65 leave I pointing after the last register
	IndexOverflowFlag    bool // FX1E sets VF when I leaves the 12-bit address space
}

// LegacyQuirks returns the behaviour of the original COSMAC VIP interpreter.
func LegacyQuirks() Quirks {
	return Quirks{
		ShiftCopiesY:         true,
		JumpUsesV0:           true,
		LoadStoreIncrementsI: true,
	}
}

// ModernQuirks returns the behaviour most CHIP-48 and later interpreters share.
func ModernQuirks() Quirks {
	return Quirks{
		IndexOverflowFlag: true,
	}
}

// QuirksFor returns the legacy or the modern quirk set.
func QuirksFor(legacy bool) Quirks {
	if legacy {
		return LegacyQuirks()
	}
	return ModernQuirks()
}
