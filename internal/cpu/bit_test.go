package cpu

import "testing"

func TestTestBit(t *testing.T) {
	c := newTestCPU(t)

	c.setFlag(FlagCarry)
	c.testBit(0x80, 7)
	if c.isFlagSet(FlagZero) {
		t.Error("a set bit should clear the zero flag")
	}
	if !c.isFlagSet(FlagHalfCarry) {
		t.Error("BIT should set the half carry flag")
	}
	if !c.isFlagSet(FlagCarry) {
		t.Error("BIT must not touch the carry flag")
	}

	c.testBit(0x80, 0)
	if !c.isFlagSet(FlagZero) {
		t.Error("a clear bit should set the zero flag")
	}
}

func TestSetResetBit(t *testing.T) {
	c := newTestCPU(t)
	c.F = 0

	if got, want := c.setBit(0x00, 3), uint8(0x08); got != want {
		t.Errorf("setBit(0x00, 3) = %#02x, want %#02x", got, want)
	}
	if got, want := c.resetBit(0xFF, 3), uint8(0xF7); got != want {
		t.Errorf("resetBit(0xFF, 3) = %#02x, want %#02x", got, want)
	}
	if c.F != 0 {
		t.Errorf("F = %#02x, want 0 (SET and RES affect no flags)", c.F)
	}
}

func TestBitInstructions(t *testing.T) {
	c := newTestCPU(t)
	c.E = 0x00
	c.loadProgram(
		0xCB, 0xDB, // SET 3,E
		0xCB, 0x5B, // BIT 3,E
		0xCB, 0x9B, // RES 3,E
		0xCB, 0x5B, // BIT 3,E
	)

	c.Step()
	if got, want := c.E, uint8(0x08); got != want {
		t.Errorf("E = %#02x, want %#02x after SET 3,E", got, want)
	}
	c.Step()
	if c.isFlagSet(FlagZero) {
		t.Error("BIT 3,E should clear the zero flag")
	}
	c.Step()
	if got, want := c.E, uint8(0x00); got != want {
		t.Errorf("E = %#02x, want %#02x after RES 3,E", got, want)
	}
	c.Step()
	if !c.isFlagSet(FlagZero) {
		t.Error("BIT 3,E should set the zero flag")
	}
}

func TestBitMemoryCycles(t *testing.T) {
	c := newTestCPU(t)
	c.HL.SetUint16(0xD000)
	c.loadProgram(0xCB, 0x46) // BIT 0,(HL)

	if got, want := c.Step(), uint8(12); got != want {
		t.Errorf("Step() = %d cycles, want %d", got, want)
	}
}
