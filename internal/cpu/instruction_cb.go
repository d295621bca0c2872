package cpu

import "strconv"

func init() {
	// the first quarter of the prefixed table packs the eight
	// rotate/shift operations against the eight sources
	type cbOp struct {
		name string
		fn   func(cpu *CPU, value uint8) uint8
	}
	ops := []cbOp{
		{"RLC", func(cpu *CPU, value uint8) uint8 { return cpu.rotateLeftCarry(value) }},
		{"RRC", func(cpu *CPU, value uint8) uint8 { return cpu.rotateRightCarry(value) }},
		{"RL", func(cpu *CPU, value uint8) uint8 { return cpu.rotateLeftThroughCarry(value) }},
		{"RR", func(cpu *CPU, value uint8) uint8 { return cpu.rotateRightThroughCarry(value) }},
		{"SLA", func(cpu *CPU, value uint8) uint8 { return cpu.shiftLeftArithmetic(value) }},
		{"SRA", func(cpu *CPU, value uint8) uint8 { return cpu.shiftRightArithmetic(value) }},
		{"SWAP", func(cpu *CPU, value uint8) uint8 { return cpu.swap(value) }},
		{"SRL", func(cpu *CPU, value uint8) uint8 { return cpu.shiftRightLogical(value) }},
	}
	for i, op := range ops {
		op := op
		for src := uint8(0); src < 8; src++ {
			src := src
			cycles := uint8(8)
			if src == 6 {
				cycles = 16
			}
			DefineInstructionCB(uint8(i)*8+src, op.name+" "+registerNames[src], cycles, func(cpu *CPU) {
				cpu.writeSource(src, op.fn(cpu, cpu.readSource(src)))
			})
		}
	}

	// BIT, RES and SET fill the remaining three quarters
	for bit := uint8(0); bit < 8; bit++ {
		bit := bit
		bitName := strconv.Itoa(int(bit))
		for src := uint8(0); src < 8; src++ {
			src := src
			cycles := uint8(8)
			if src == 6 {
				cycles = 16
			}
			bitCycles := cycles
			if src == 6 {
				// BIT does not write back, so its memory form is
				// cheaper
				bitCycles = 12
			}
			DefineInstructionCB(0x40+bit*8+src, "BIT "+bitName+","+registerNames[src], bitCycles, func(cpu *CPU) {
				cpu.testBit(cpu.readSource(src), bit)
			})
			DefineInstructionCB(0x80+bit*8+src, "RES "+bitName+","+registerNames[src], cycles, func(cpu *CPU) {
				cpu.writeSource(src, cpu.resetBit(cpu.readSource(src), bit))
			})
			DefineInstructionCB(0xC0+bit*8+src, "SET "+bitName+","+registerNames[src], cycles, func(cpu *CPU) {
				cpu.writeSource(src, cpu.setBit(cpu.readSource(src), bit))
			})
		}
	}
}
