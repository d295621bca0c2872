package cpu

// add adds the given value to the A register, optionally including
// the carry flag.
//
// Flags affected:
//  Z - Set if result is zero.
//  N - Reset.
//  H - Set if carry from bit 3.
//  C - Set if carry from bit 7.
func (c *CPU) add(value uint8, withCarry bool) {
	carry := uint8(0)
	if withCarry && c.isFlagSet(FlagCarry) {
		carry = 1
	}
	result := uint16(c.A) + uint16(value) + uint16(carry)
	halfCarry := c.A&0x0F+value&0x0F+carry > 0x0F
	c.A = uint8(result)
	c.setFlags(c.A == 0, false, halfCarry, result > 0xFF)
}

// sub subtracts the given value from the A register, optionally
// including the carry flag.
//
// Flags affected:
//  Z - Set if result is zero.
//  N - Set.
//  H - Set if borrow from bit 4.
//  C - Set if borrow.
func (c *CPU) sub(value uint8, withCarry bool) {
	carry := uint8(0)
	if withCarry && c.isFlagSet(FlagCarry) {
		carry = 1
	}
	result := int16(c.A) - int16(value) - int16(carry)
	halfCarry := int16(c.A&0x0F)-int16(value&0x0F)-int16(carry) < 0
	c.A = uint8(result)
	c.setFlags(c.A == 0, true, halfCarry, result < 0)
}

// compare subtracts the given value from the A register, setting the
// flags but discarding the result.
func (c *CPU) compare(value uint8) {
	a := c.A
	c.sub(value, false)
	c.A = a
}

// increment increments the given value by one. The carry flag is
// unaffected.
//
// Flags affected:
//  Z - Set if result is zero.
//  N - Reset.
//  H - Set if carry from bit 3.
func (c *CPU) increment(value uint8) uint8 {
	result := value + 1
	c.shouldZeroFlag(result)
	c.clearFlag(FlagSubtract)
	if value&0x0F == 0x0F {
		c.setFlag(FlagHalfCarry)
	} else {
		c.clearFlag(FlagHalfCarry)
	}
	return result
}

// decrement decrements the given value by one. The carry flag is
// unaffected.
//
// Flags affected:
//  Z - Set if result is zero.
//  N - Set.
//  H - Set if borrow from bit 4.
func (c *CPU) decrement(value uint8) uint8 {
	result := value - 1
	c.shouldZeroFlag(result)
	c.setFlag(FlagSubtract)
	if value&0x0F == 0 {
		c.setFlag(FlagHalfCarry)
	} else {
		c.clearFlag(FlagHalfCarry)
	}
	return result
}

// addHL adds the given value to the HL register pair. The zero flag
// is unaffected.
//
// Flags affected:
//  N - Reset.
//  H - Set if carry from bit 11.
//  C - Set if carry from bit 15.
func (c *CPU) addHL(value uint16) {
	hl := c.HL.Uint16()
	result := uint32(hl) + uint32(value)
	c.clearFlag(FlagSubtract)
	if hl&0x0FFF+value&0x0FFF > 0x0FFF {
		c.setFlag(FlagHalfCarry)
	} else {
		c.clearFlag(FlagHalfCarry)
	}
	if result > 0xFFFF {
		c.setFlag(FlagCarry)
	} else {
		c.clearFlag(FlagCarry)
	}
	c.HL.SetUint16(uint16(result))
}

// addSPSigned adds a signed 8-bit operand to SP, returning the
// result. The half carry and carry flags come from the low byte
// addition.
//
// Flags affected:
//  Z - Reset.
//  N - Reset.
//  H - Set if carry from bit 3.
//  C - Set if carry from bit 7.
func (c *CPU) addSPSigned() uint16 {
	offset := int8(c.readOperand())
	result := uint16(int32(c.SP) + int32(offset))
	tmp := c.SP ^ uint16(int16(offset)) ^ result
	c.setFlags(false, false, tmp&0x10 == 0x10, tmp&0x100 == 0x100)
	return result
}

func init() {
	// the 0x80-0xBF block packs the eight accumulator operations
	// against the eight sources; the same operations take an
	// immediate operand at 0xC6-0xFE
	type aluOp struct {
		name string
		fn   func(cpu *CPU, value uint8)
	}
	ops := []aluOp{
		{"ADD A,", func(cpu *CPU, value uint8) { cpu.add(value, false) }},
		{"ADC A,", func(cpu *CPU, value uint8) { cpu.add(value, true) }},
		{"SUB ", func(cpu *CPU, value uint8) { cpu.sub(value, false) }},
		{"SBC A,", func(cpu *CPU, value uint8) { cpu.sub(value, true) }},
		{"AND ", func(cpu *CPU, value uint8) { cpu.and(value) }},
		{"XOR ", func(cpu *CPU, value uint8) { cpu.xor(value) }},
		{"OR ", func(cpu *CPU, value uint8) { cpu.or(value) }},
		{"CP ", func(cpu *CPU, value uint8) { cpu.compare(value) }},
	}
	for i, op := range ops {
		op := op
		for src := uint8(0); src < 8; src++ {
			src := src
			cycles := uint8(4)
			if src == 6 {
				cycles = 8
			}
			DefineInstruction(0x80+uint8(i)*8+src, op.name+registerNames[src], cycles, func(cpu *CPU) {
				op.fn(cpu, cpu.readSource(src))
			})
		}
		DefineInstruction(0xC6+uint8(i)*8, op.name+"d8", 8, func(cpu *CPU) {
			op.fn(cpu, cpu.readOperand())
		})
	}

	// INC r / DEC r at xx4 and xx5 of the 0x00-0x3F block
	for idx := uint8(0); idx < 8; idx++ {
		idx := idx
		cycles := uint8(4)
		if idx == 6 {
			cycles = 12
		}
		DefineInstruction(idx*8+4, "INC "+registerNames[idx], cycles, func(cpu *CPU) {
			cpu.writeSource(idx, cpu.increment(cpu.readSource(idx)))
		})
		DefineInstruction(idx*8+5, "DEC "+registerNames[idx], cycles, func(cpu *CPU) {
			cpu.writeSource(idx, cpu.decrement(cpu.readSource(idx)))
		})
	}

	// 16-bit arithmetic over the register pairs
	DefineInstruction(0x03, "INC BC", 8, func(cpu *CPU) { cpu.BC.SetUint16(cpu.BC.Uint16() + 1) })
	DefineInstruction(0x13, "INC DE", 8, func(cpu *CPU) { cpu.DE.SetUint16(cpu.DE.Uint16() + 1) })
	DefineInstruction(0x23, "INC HL", 8, func(cpu *CPU) { cpu.HL.SetUint16(cpu.HL.Uint16() + 1) })
	DefineInstruction(0x33, "INC SP", 8, func(cpu *CPU) { cpu.SP++ })
	DefineInstruction(0x0B, "DEC BC", 8, func(cpu *CPU) { cpu.BC.SetUint16(cpu.BC.Uint16() - 1) })
	DefineInstruction(0x1B, "DEC DE", 8, func(cpu *CPU) { cpu.DE.SetUint16(cpu.DE.Uint16() - 1) })
	DefineInstruction(0x2B, "DEC HL", 8, func(cpu *CPU) { cpu.HL.SetUint16(cpu.HL.Uint16() - 1) })
	DefineInstruction(0x3B, "DEC SP", 8, func(cpu *CPU) { cpu.SP-- })

	DefineInstruction(0x09, "ADD HL,BC", 8, func(cpu *CPU) { cpu.addHL(cpu.BC.Uint16()) })
	DefineInstruction(0x19, "ADD HL,DE", 8, func(cpu *CPU) { cpu.addHL(cpu.DE.Uint16()) })
	DefineInstruction(0x29, "ADD HL,HL", 8, func(cpu *CPU) { cpu.addHL(cpu.HL.Uint16()) })
	DefineInstruction(0x39, "ADD HL,SP", 8, func(cpu *CPU) { cpu.addHL(cpu.SP) })

	DefineInstruction(0xE8, "ADD SP,r8", 16, func(cpu *CPU) { cpu.SP = cpu.addSPSigned() })
	DefineInstruction(0xF8, "LD HL,SP+r8", 12, func(cpu *CPU) { cpu.HL.SetUint16(cpu.addSPSigned()) })
}
