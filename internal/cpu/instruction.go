package cpu

// Instruction is a single opcode: a mnemonic, the base cost in
// T-cycles, and the function that executes it. Conditional
// instructions add their taken penalty to the cycle counter
// themselves.
type Instruction struct {
	name   string
	cycles uint8
	fn     func(cpu *CPU)
}

// Name returns the mnemonic of the instruction.
func (i Instruction) Name() string {
	return i.name
}

// Cycles returns the base cost of the instruction in T-cycles.
func (i Instruction) Cycles() uint8 {
	return i.cycles
}

// InstructionSet is the base opcode table. Entries with a nil
// function are unused encodings.
var InstructionSet [256]Instruction

// InstructionSetCB is the 0xCB-prefixed opcode table.
var InstructionSetCB [256]Instruction

// DefineInstruction registers an instruction in the base opcode
// table.
func DefineInstruction(opcode uint8, name string, cycles uint8, fn func(cpu *CPU)) {
	InstructionSet[opcode] = Instruction{
		name:   name,
		cycles: cycles,
		fn:     fn,
	}
}

// DefineInstructionCB registers an instruction in the 0xCB-prefixed
// opcode table.
func DefineInstructionCB(opcode uint8, name string, cycles uint8, fn func(cpu *CPU)) {
	InstructionSetCB[opcode] = Instruction{
		name:   name,
		cycles: cycles,
		fn:     fn,
	}
}

func init() {
	// NOP
	DefineInstruction(0x00, "NOP", 4, func(cpu *CPU) {})
	// STOP
	DefineInstruction(0x10, "STOP", 4, func(cpu *CPU) {
		cpu.mode = ModeStop
	})
	// HALT
	DefineInstruction(0x76, "HALT", 4, func(cpu *CPU) {
		cpu.mode = ModeHalt
	})
	// DI disables interrupts after the following instruction has
	// executed.
	DefineInstruction(0xF3, "DI", 4, func(cpu *CPU) {
		cpu.imeDisabling = true
	})
	// EI enables interrupts after the following instruction has
	// executed.
	DefineInstruction(0xFB, "EI", 4, func(cpu *CPU) {
		cpu.imeEnabling = true
	})
	// DAA adjusts A to a valid binary coded decimal result after an
	// addition or subtraction.
	//
	// Flags affected:
	//  Z - Set if result is zero.
	//  H - Reset.
	//  C - Set or unchanged per adjustment.
	DefineInstruction(0x27, "DAA", 4, func(cpu *CPU) {
		if !cpu.isFlagSet(FlagSubtract) {
			if cpu.isFlagSet(FlagCarry) || cpu.A > 0x99 {
				cpu.A += 0x60
				cpu.setFlag(FlagCarry)
			}
			if cpu.isFlagSet(FlagHalfCarry) || cpu.A&0x0F > 0x09 {
				cpu.A += 0x06
			}
		} else {
			if cpu.isFlagSet(FlagCarry) {
				cpu.A -= 0x60
			}
			if cpu.isFlagSet(FlagHalfCarry) {
				cpu.A -= 0x06
			}
		}
		cpu.shouldZeroFlag(cpu.A)
		cpu.clearFlag(FlagHalfCarry)
	})
	// CPL complements the A register.
	//
	// Flags affected:
	//  N - Set.
	//  H - Set.
	DefineInstruction(0x2F, "CPL", 4, func(cpu *CPU) {
		cpu.A = ^cpu.A
		cpu.setFlag(FlagSubtract)
		cpu.setFlag(FlagHalfCarry)
	})
	// SCF sets the carry flag.
	//
	// Flags affected:
	//  N - Reset.
	//  H - Reset.
	//  C - Set.
	DefineInstruction(0x37, "SCF", 4, func(cpu *CPU) {
		cpu.clearFlag(FlagSubtract)
		cpu.clearFlag(FlagHalfCarry)
		cpu.setFlag(FlagCarry)
	})
	// CCF complements the carry flag.
	//
	// Flags affected:
	//  N - Reset.
	//  H - Reset.
	//  C - Complemented.
	DefineInstruction(0x3F, "CCF", 4, func(cpu *CPU) {
		cpu.clearFlag(FlagSubtract)
		cpu.clearFlag(FlagHalfCarry)
		cpu.F ^= 1 << FlagCarry
	})
}
