package cpu

// rotateLeftCarry rotates the value left by one bit, copying bit 7
// into both the carry flag and bit 0.
//
// Flags affected:
//  Z - Set if result is zero.
//  N - Reset.
//  H - Reset.
//  C - Contains old bit 7.
func (c *CPU) rotateLeftCarry(value uint8) uint8 {
	result := value<<1 | value>>7
	c.setFlags(result == 0, false, false, value&0x80 != 0)
	return result
}

// rotateRightCarry rotates the value right by one bit, copying bit 0
// into both the carry flag and bit 7.
//
// Flags affected:
//  Z - Set if result is zero.
//  N - Reset.
//  H - Reset.
//  C - Contains old bit 0.
func (c *CPU) rotateRightCarry(value uint8) uint8 {
	result := value>>1 | value<<7
	c.setFlags(result == 0, false, false, value&0x01 != 0)
	return result
}

// rotateLeftThroughCarry rotates the value left by one bit through
// the carry flag.
//
// Flags affected:
//  Z - Set if result is zero.
//  N - Reset.
//  H - Reset.
//  C - Contains old bit 7.
func (c *CPU) rotateLeftThroughCarry(value uint8) uint8 {
	result := value << 1
	if c.isFlagSet(FlagCarry) {
		result |= 0x01
	}
	c.setFlags(result == 0, false, false, value&0x80 != 0)
	return result
}

// rotateRightThroughCarry rotates the value right by one bit through
// the carry flag.
//
// Flags affected:
//  Z - Set if result is zero.
//  N - Reset.
//  H - Reset.
//  C - Contains old bit 0.
func (c *CPU) rotateRightThroughCarry(value uint8) uint8 {
	result := value >> 1
	if c.isFlagSet(FlagCarry) {
		result |= 0x80
	}
	c.setFlags(result == 0, false, false, value&0x01 != 0)
	return result
}

func init() {
	// the accumulator rotates always clear the zero flag, unlike
	// their 0xCB-prefixed counterparts
	DefineInstruction(0x07, "RLCA", 4, func(cpu *CPU) {
		cpu.A = cpu.rotateLeftCarry(cpu.A)
		cpu.clearFlag(FlagZero)
	})
	DefineInstruction(0x0F, "RRCA", 4, func(cpu *CPU) {
		cpu.A = cpu.rotateRightCarry(cpu.A)
		cpu.clearFlag(FlagZero)
	})
	DefineInstruction(0x17, "RLA", 4, func(cpu *CPU) {
		cpu.A = cpu.rotateLeftThroughCarry(cpu.A)
		cpu.clearFlag(FlagZero)
	})
	DefineInstruction(0x1F, "RRA", 4, func(cpu *CPU) {
		cpu.A = cpu.rotateRightThroughCarry(cpu.A)
		cpu.clearFlag(FlagZero)
	})
}
