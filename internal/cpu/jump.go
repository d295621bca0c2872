package cpu

// condition is a flag predicate used by conditional jumps, calls and
// returns.
type condition struct {
	name string
	met  func(cpu *CPU) bool
}

// conditions in opcode encoding order: NZ, Z, NC, C.
var conditions = []condition{
	{"NZ", func(cpu *CPU) bool { return !cpu.isFlagSet(FlagZero) }},
	{"Z", func(cpu *CPU) bool { return cpu.isFlagSet(FlagZero) }},
	{"NC", func(cpu *CPU) bool { return !cpu.isFlagSet(FlagCarry) }},
	{"C", func(cpu *CPU) bool { return cpu.isFlagSet(FlagCarry) }},
}

// jumpRelative reads the signed offset operand and, if taken, applies
// it to PC. The operand is consumed either way.
func (c *CPU) jumpRelative(taken bool) {
	offset := int8(c.readOperand())
	if taken {
		c.PC = uint16(int32(c.PC) + int32(offset))
		c.currentTick += 4
	}
}

// jumpAbsolute reads the 16-bit target operand and, if taken, jumps
// to it. The operand is consumed either way.
func (c *CPU) jumpAbsolute(taken bool) {
	address := c.readOperand16()
	if taken {
		c.PC = address
		c.currentTick += 4
	}
}

// call reads the 16-bit target operand and, if taken, pushes the
// return address and jumps. The operand is consumed either way.
func (c *CPU) call(taken bool) {
	address := c.readOperand16()
	if taken {
		c.pushStack(c.PC)
		c.PC = address
		c.currentTick += 12
	}
}

// ret pops the return address and jumps to it if taken.
func (c *CPU) ret(taken bool) {
	if taken {
		c.PC = c.popStack()
		c.currentTick += 12
	}
}

func init() {
	DefineInstruction(0x18, "JR r8", 8, func(cpu *CPU) { cpu.jumpRelative(true) })
	DefineInstruction(0xC3, "JP a16", 12, func(cpu *CPU) { cpu.jumpAbsolute(true) })
	DefineInstruction(0xCD, "CALL a16", 12, func(cpu *CPU) { cpu.call(true) })
	DefineInstruction(0xE9, "JP (HL)", 4, func(cpu *CPU) { cpu.PC = cpu.HL.Uint16() })

	DefineInstruction(0xC9, "RET", 16, func(cpu *CPU) { cpu.PC = cpu.popStack() })
	// RETI restores the master enable immediately, without the
	// one-instruction delay of EI
	DefineInstruction(0xD9, "RETI", 16, func(cpu *CPU) {
		cpu.PC = cpu.popStack()
		cpu.irq.IME = true
	})

	for i, cond := range conditions {
		cond := cond
		DefineInstruction(0x20+uint8(i)*8, "JR "+cond.name+",r8", 8, func(cpu *CPU) {
			cpu.jumpRelative(cond.met(cpu))
		})
		DefineInstruction(0xC2+uint8(i)*8, "JP "+cond.name+",a16", 12, func(cpu *CPU) {
			cpu.jumpAbsolute(cond.met(cpu))
		})
		DefineInstruction(0xC4+uint8(i)*8, "CALL "+cond.name+",a16", 12, func(cpu *CPU) {
			cpu.call(cond.met(cpu))
		})
		DefineInstruction(0xC0+uint8(i)*8, "RET "+cond.name, 8, func(cpu *CPU) {
			cpu.ret(cond.met(cpu))
		})
	}

	// RST jumps to one of the eight fixed vectors
	for i := uint8(0); i < 8; i++ {
		i := i
		target := uint16(i) * 8
		DefineInstruction(0xC7+i*8, "RST "+rstNames[i], 16, func(cpu *CPU) {
			cpu.pushStack(cpu.PC)
			cpu.PC = target
		})
	}
}

var rstNames = []string{"00H", "08H", "10H", "18H", "20H", "28H", "30H", "38H"}
