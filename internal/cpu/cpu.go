// Package cpu implements the SM83 processor core: the register file,
// the base and 0xCB-prefixed instruction tables, and the interrupt
// dispatcher.
package cpu

import (
	"github.com/dotmatrix-emu/dotmatrix/internal/interrupts"
	"github.com/dotmatrix-emu/dotmatrix/internal/mmu"
	"github.com/dotmatrix-emu/dotmatrix/pkg/log"
)

// Mode is the execution mode of the CPU.
type Mode uint8

const (
	// ModeNormal is the default fetch/execute mode.
	ModeNormal Mode = iota
	// ModeHalt is entered by HALT, or by an unused opcode. The CPU
	// wakes when an enabled interrupt becomes pending.
	ModeHalt
	// ModeStop is entered by STOP.
	ModeStop
)

// CPU executes instructions against the attached bus. Interrupt
// enable and disable requests take effect one instruction late, as
// the hardware does.
type CPU struct {
	PC uint16
	SP uint16
	Registers

	mmu *mmu.MMU
	irq *interrupts.Service

	mode Mode

	imeEnabling  bool
	imeDisabling bool

	// Debug makes LD B,B raise DebugBreakpoint instead of being a
	// plain load.
	Debug           bool
	DebugBreakpoint bool

	currentTick uint8

	log log.Logger
}

// NewCPU returns a new CPU attached to the given bus, in the
// post-boot state.
func NewCPU(mmu *mmu.MMU, irq *interrupts.Service, logger log.Logger) *CPU {
	c := &CPU{
		mmu: mmu,
		irq: irq,
		log: logger,
	}
	c.AF = &RegisterPair{High: &c.A, Low: &c.F}
	c.BC = &RegisterPair{High: &c.B, Low: &c.C}
	c.DE = &RegisterPair{High: &c.D, Low: &c.E}
	c.HL = &RegisterPair{High: &c.H, Low: &c.L}
	c.Reset()
	return c
}

// Reset restores the CPU to the state the boot ROM leaves it in.
func (c *CPU) Reset() {
	c.A = 0x01
	c.F = 0xB0
	c.B = 0x00
	c.C = 0x13
	c.D = 0x00
	c.E = 0xD8
	c.H = 0x01
	c.L = 0x4D
	c.SP = 0xFFFE
	c.PC = 0x0100
	c.mode = ModeNormal
	c.imeEnabling = false
	c.imeDisabling = false
	c.irq.IME = false
}

// Step fetches, decodes and executes a single instruction, returning
// the number of T-cycles it took. A halted or stopped CPU burns a
// fixed four cycles per step.
func (c *CPU) Step() uint8 {
	if c.mode != ModeNormal {
		return 4
	}

	// pending IME changes from the previous instruction take effect
	// after this one executes
	enabling, disabling := c.imeEnabling, c.imeDisabling
	c.imeEnabling = false
	c.imeDisabling = false

	c.currentTick = 0
	opcode := c.readInstruction()
	var ins Instruction
	if opcode == 0xCB {
		ins = InstructionSetCB[c.readInstruction()]
	} else {
		ins = InstructionSet[opcode]
	}
	if ins.fn == nil {
		c.log.Errorf("cpu: unknown opcode 0x%02X at 0x%04X", opcode, c.PC-1)
		c.mode = ModeHalt
		return 4
	}
	c.currentTick += ins.cycles
	ins.fn(c)

	if enabling {
		c.irq.IME = true
	}
	if disabling {
		c.irq.IME = false
	}

	return c.currentTick
}

// HandleInterrupts wakes a halted CPU and, when the master enable is
// set, services the highest-priority pending interrupt. It returns
// the number of T-cycles consumed, which is zero unless an interrupt
// was dispatched.
func (c *CPU) HandleInterrupts() uint8 {
	if !c.irq.HasInterrupts() {
		return 0
	}
	if c.mode == ModeHalt {
		c.mode = ModeNormal
	}
	if !c.irq.IME {
		return 0
	}
	c.irq.IME = false
	c.imeEnabling = false

	c.SP--
	c.writeByte(c.SP, uint8(c.PC>>8))
	c.SP--
	c.writeByte(c.SP, uint8(c.PC))
	c.PC = c.irq.Vector()
	return 20
}

// Halted returns true while the CPU is in halt mode.
func (c *CPU) Halted() bool {
	return c.mode == ModeHalt
}

// Stopped returns true while the CPU is in stop mode.
func (c *CPU) Stopped() bool {
	return c.mode == ModeStop
}

// readInstruction reads the byte at PC and increments PC.
func (c *CPU) readInstruction() uint8 {
	v := c.mmu.Read(c.PC)
	c.PC++
	return v
}

// readOperand reads the next operand byte from the instruction
// stream.
func (c *CPU) readOperand() uint8 {
	return c.readInstruction()
}

// readOperand16 reads the next two operand bytes from the
// instruction stream, little endian.
func (c *CPU) readOperand16() uint16 {
	lo := c.readInstruction()
	hi := c.readInstruction()
	return uint16(hi)<<8 | uint16(lo)
}

// readByte reads a byte from the bus.
func (c *CPU) readByte(address uint16) uint8 {
	return c.mmu.Read(address)
}

// writeByte writes a byte to the bus.
func (c *CPU) writeByte(address uint16, value uint8) {
	c.mmu.Write(address, value)
}
