package cpu

// pushStack pushes a 16-bit value onto the stack, high byte first.
func (c *CPU) pushStack(value uint16) {
	c.SP--
	c.writeByte(c.SP, uint8(value>>8))
	c.SP--
	c.writeByte(c.SP, uint8(value))
}

// popStack pops a 16-bit value from the stack.
func (c *CPU) popStack() uint16 {
	lo := c.readByte(c.SP)
	c.SP++
	hi := c.readByte(c.SP)
	c.SP++
	return uint16(hi)<<8 | uint16(lo)
}

func init() {
	// LD r,r' fills 0x40-0x7F, with HALT taking the (HL),(HL) slot
	for dst := uint8(0); dst < 8; dst++ {
		dst := dst
		for src := uint8(0); src < 8; src++ {
			src := src
			if dst == 6 && src == 6 {
				continue // 0x76 is HALT
			}
			cycles := uint8(4)
			if dst == 6 || src == 6 {
				cycles = 8
			}
			opcode := 0x40 + dst*8 + src
			name := "LD " + registerNames[dst] + "," + registerNames[src]
			if opcode == 0x40 {
				// LD B,B doubles as a software breakpoint
				DefineInstruction(opcode, name, cycles, func(cpu *CPU) {
					if cpu.Debug {
						cpu.DebugBreakpoint = true
					}
				})
				continue
			}
			DefineInstruction(opcode, name, cycles, func(cpu *CPU) {
				cpu.writeSource(dst, cpu.readSource(src))
			})
		}
	}

	// LD r,d8
	for idx := uint8(0); idx < 8; idx++ {
		idx := idx
		cycles := uint8(8)
		if idx == 6 {
			cycles = 12
		}
		DefineInstruction(idx*8+6, "LD "+registerNames[idx]+",d8", cycles, func(cpu *CPU) {
			cpu.writeSource(idx, cpu.readOperand())
		})
	}

	// 16-bit immediate loads
	DefineInstruction(0x01, "LD BC,d16", 12, func(cpu *CPU) { cpu.BC.SetUint16(cpu.readOperand16()) })
	DefineInstruction(0x11, "LD DE,d16", 12, func(cpu *CPU) { cpu.DE.SetUint16(cpu.readOperand16()) })
	DefineInstruction(0x21, "LD HL,d16", 12, func(cpu *CPU) { cpu.HL.SetUint16(cpu.readOperand16()) })
	DefineInstruction(0x31, "LD SP,d16", 12, func(cpu *CPU) { cpu.SP = cpu.readOperand16() })

	// accumulator to and from paired-register addresses
	DefineInstruction(0x02, "LD (BC),A", 8, func(cpu *CPU) { cpu.writeByte(cpu.BC.Uint16(), cpu.A) })
	DefineInstruction(0x12, "LD (DE),A", 8, func(cpu *CPU) { cpu.writeByte(cpu.DE.Uint16(), cpu.A) })
	DefineInstruction(0x0A, "LD A,(BC)", 8, func(cpu *CPU) { cpu.A = cpu.readByte(cpu.BC.Uint16()) })
	DefineInstruction(0x1A, "LD A,(DE)", 8, func(cpu *CPU) { cpu.A = cpu.readByte(cpu.DE.Uint16()) })

	// post-increment and post-decrement HL variants
	DefineInstruction(0x22, "LD (HL+),A", 8, func(cpu *CPU) {
		cpu.writeByte(cpu.HL.Uint16(), cpu.A)
		cpu.HL.SetUint16(cpu.HL.Uint16() + 1)
	})
	DefineInstruction(0x2A, "LD A,(HL+)", 8, func(cpu *CPU) {
		cpu.A = cpu.readByte(cpu.HL.Uint16())
		cpu.HL.SetUint16(cpu.HL.Uint16() + 1)
	})
	DefineInstruction(0x32, "LD (HL-),A", 8, func(cpu *CPU) {
		cpu.writeByte(cpu.HL.Uint16(), cpu.A)
		cpu.HL.SetUint16(cpu.HL.Uint16() - 1)
	})
	DefineInstruction(0x3A, "LD A,(HL-)", 8, func(cpu *CPU) {
		cpu.A = cpu.readByte(cpu.HL.Uint16())
		cpu.HL.SetUint16(cpu.HL.Uint16() - 1)
	})

	// high RAM loads
	DefineInstruction(0xE0, "LDH (a8),A", 12, func(cpu *CPU) {
		cpu.writeByte(0xFF00+uint16(cpu.readOperand()), cpu.A)
	})
	DefineInstruction(0xF0, "LDH A,(a8)", 12, func(cpu *CPU) {
		cpu.A = cpu.readByte(0xFF00 + uint16(cpu.readOperand()))
	})
	DefineInstruction(0xE2, "LD (C),A", 8, func(cpu *CPU) {
		cpu.writeByte(0xFF00+uint16(cpu.C), cpu.A)
	})
	DefineInstruction(0xF2, "LD A,(C)", 8, func(cpu *CPU) {
		cpu.A = cpu.readByte(0xFF00 + uint16(cpu.C))
	})

	// absolute loads
	DefineInstruction(0xEA, "LD (a16),A", 16, func(cpu *CPU) {
		cpu.writeByte(cpu.readOperand16(), cpu.A)
	})
	DefineInstruction(0xFA, "LD A,(a16)", 16, func(cpu *CPU) {
		cpu.A = cpu.readByte(cpu.readOperand16())
	})
	DefineInstruction(0x08, "LD (a16),SP", 20, func(cpu *CPU) {
		address := cpu.readOperand16()
		cpu.writeByte(address, uint8(cpu.SP))
		cpu.writeByte(address+1, uint8(cpu.SP>>8))
	})
	DefineInstruction(0xF9, "LD SP,HL", 8, func(cpu *CPU) { cpu.SP = cpu.HL.Uint16() })

	// stack operations. POP AF masks the unused low nibble of F.
	DefineInstruction(0xC5, "PUSH BC", 16, func(cpu *CPU) { cpu.pushStack(cpu.BC.Uint16()) })
	DefineInstruction(0xD5, "PUSH DE", 16, func(cpu *CPU) { cpu.pushStack(cpu.DE.Uint16()) })
	DefineInstruction(0xE5, "PUSH HL", 16, func(cpu *CPU) { cpu.pushStack(cpu.HL.Uint16()) })
	DefineInstruction(0xF5, "PUSH AF", 16, func(cpu *CPU) { cpu.pushStack(cpu.AF.Uint16()) })
	DefineInstruction(0xC1, "POP BC", 12, func(cpu *CPU) { cpu.BC.SetUint16(cpu.popStack()) })
	DefineInstruction(0xD1, "POP DE", 12, func(cpu *CPU) { cpu.DE.SetUint16(cpu.popStack()) })
	DefineInstruction(0xE1, "POP HL", 12, func(cpu *CPU) { cpu.HL.SetUint16(cpu.popStack()) })
	DefineInstruction(0xF1, "POP AF", 12, func(cpu *CPU) {
		cpu.AF.SetUint16(cpu.popStack() & 0xFFF0)
	})
}
