package cpu

import "testing"

func TestAdd(t *testing.T) {
	c := newTestCPU(t)

	// exhaustive check of the result and every flag
	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			c.A = uint8(a)
			c.F = 0
			c.add(uint8(b), false)

			want := uint8(a + b)
			if c.A != want {
				t.Fatalf("add(%#02x + %#02x) = %#02x, want %#02x", a, b, c.A, want)
			}
			if got, want := c.isFlagSet(FlagZero), want == 0; got != want {
				t.Fatalf("add(%#02x + %#02x) zero flag = %t, want %t", a, b, got, want)
			}
			if c.isFlagSet(FlagSubtract) {
				t.Fatalf("add(%#02x + %#02x) set the subtract flag", a, b)
			}
			if got, want := c.isFlagSet(FlagHalfCarry), a&0x0F+b&0x0F > 0x0F; got != want {
				t.Fatalf("add(%#02x + %#02x) half carry = %t, want %t", a, b, got, want)
			}
			if got, want := c.isFlagSet(FlagCarry), a+b > 0xFF; got != want {
				t.Fatalf("add(%#02x + %#02x) carry = %t, want %t", a, b, got, want)
			}
		}
	}
}

func TestAddWithCarry(t *testing.T) {
	c := newTestCPU(t)

	tests := []struct {
		a, b, carry, want uint8
		wantF             uint8
	}{
		{0x00, 0x00, 1, 0x01, 0x00},
		{0x0F, 0x00, 1, 0x10, 1 << FlagHalfCarry},
		{0xFF, 0x00, 1, 0x00, 1<<FlagZero | 1<<FlagHalfCarry | 1<<FlagCarry},
		{0xE1, 0x1E, 1, 0x00, 1<<FlagZero | 1<<FlagHalfCarry | 1<<FlagCarry},
	}
	for _, tt := range tests {
		c.A = tt.a
		c.setFlags(false, false, false, tt.carry == 1)
		c.add(tt.b, true)

		if c.A != tt.want {
			t.Errorf("adc(%#02x + %#02x + %d) = %#02x, want %#02x", tt.a, tt.b, tt.carry, c.A, tt.want)
		}
		if c.F != tt.wantF {
			t.Errorf("adc(%#02x + %#02x + %d) F = %#02x, want %#02x", tt.a, tt.b, tt.carry, c.F, tt.wantF)
		}
	}
}

func TestSub(t *testing.T) {
	c := newTestCPU(t)

	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			c.A = uint8(a)
			c.F = 0
			c.sub(uint8(b), false)

			want := uint8(a - b)
			if c.A != want {
				t.Fatalf("sub(%#02x - %#02x) = %#02x, want %#02x", a, b, c.A, want)
			}
			if got, want := c.isFlagSet(FlagZero), want == 0; got != want {
				t.Fatalf("sub(%#02x - %#02x) zero flag = %t, want %t", a, b, got, want)
			}
			if !c.isFlagSet(FlagSubtract) {
				t.Fatalf("sub(%#02x - %#02x) cleared the subtract flag", a, b)
			}
			if got, want := c.isFlagSet(FlagHalfCarry), a&0x0F < b&0x0F; got != want {
				t.Fatalf("sub(%#02x - %#02x) half carry = %t, want %t", a, b, got, want)
			}
			if got, want := c.isFlagSet(FlagCarry), a < b; got != want {
				t.Fatalf("sub(%#02x - %#02x) carry = %t, want %t", a, b, got, want)
			}
		}
	}
}

func TestSubAddRoundTrip(t *testing.T) {
	c := newTestCPU(t)

	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			c.A = uint8(a)
			c.sub(uint8(b), false)
			c.add(uint8(b), false)
			if c.A != uint8(a) {
				t.Fatalf("(%#02x - %#02x) + %#02x = %#02x, want %#02x", a, b, b, c.A, a)
			}
		}
	}
}

func TestCompare(t *testing.T) {
	c := newTestCPU(t)
	c.A = 0x3C
	c.compare(0x3C)

	if got, want := c.A, uint8(0x3C); got != want {
		t.Errorf("A = %#02x, want %#02x (CP must not modify A)", got, want)
	}
	if !c.isFlagSet(FlagZero) {
		t.Error("CP of equal values should set the zero flag")
	}

	c.compare(0x40)
	if !c.isFlagSet(FlagCarry) {
		t.Error("CP with a larger operand should set the carry flag")
	}
}

func TestIncrement(t *testing.T) {
	c := newTestCPU(t)

	c.setFlag(FlagCarry)
	if got, want := c.increment(0x0F), uint8(0x10); got != want {
		t.Errorf("increment(0x0F) = %#02x, want %#02x", got, want)
	}
	if !c.isFlagSet(FlagHalfCarry) {
		t.Error("increment(0x0F) should set the half carry flag")
	}
	if !c.isFlagSet(FlagCarry) {
		t.Error("increment must not touch the carry flag")
	}

	if got, want := c.increment(0xFF), uint8(0x00); got != want {
		t.Errorf("increment(0xFF) = %#02x, want %#02x", got, want)
	}
	if !c.isFlagSet(FlagZero) {
		t.Error("increment(0xFF) should set the zero flag")
	}
}

func TestDecrement(t *testing.T) {
	c := newTestCPU(t)

	c.setFlag(FlagCarry)
	if got, want := c.decrement(0x10), uint8(0x0F); got != want {
		t.Errorf("decrement(0x10) = %#02x, want %#02x", got, want)
	}
	if !c.isFlagSet(FlagHalfCarry) {
		t.Error("decrement(0x10) should set the half carry flag")
	}
	if !c.isFlagSet(FlagSubtract) {
		t.Error("decrement should set the subtract flag")
	}
	if !c.isFlagSet(FlagCarry) {
		t.Error("decrement must not touch the carry flag")
	}

	if got, want := c.decrement(0x01), uint8(0x00); got != want {
		t.Errorf("decrement(0x01) = %#02x, want %#02x", got, want)
	}
	if !c.isFlagSet(FlagZero) {
		t.Error("decrement(0x01) should set the zero flag")
	}
	if got, want := c.decrement(0x00), uint8(0xFF); got != want {
		t.Errorf("decrement(0x00) = %#02x, want %#02x", got, want)
	}
}

func TestAddHL(t *testing.T) {
	c := newTestCPU(t)

	c.setFlag(FlagZero)
	c.HL.SetUint16(0x0FFF)
	c.addHL(0x0001)
	if got, want := c.HL.Uint16(), uint16(0x1000); got != want {
		t.Errorf("HL = %#04x, want %#04x", got, want)
	}
	if !c.isFlagSet(FlagHalfCarry) {
		t.Error("carry out of bit 11 should set the half carry flag")
	}
	if !c.isFlagSet(FlagZero) {
		t.Error("ADD HL must not touch the zero flag")
	}

	c.HL.SetUint16(0xFFFF)
	c.addHL(0x0001)
	if got, want := c.HL.Uint16(), uint16(0x0000); got != want {
		t.Errorf("HL = %#04x, want %#04x", got, want)
	}
	if !c.isFlagSet(FlagCarry) {
		t.Error("carry out of bit 15 should set the carry flag")
	}
}

func TestAddSPSigned(t *testing.T) {
	c := newTestCPU(t)

	c.SP = 0xFFF8
	c.loadProgram(0xE8, 0x08) // ADD SP,8
	c.Step()
	if got, want := c.SP, uint16(0x0000); got != want {
		t.Errorf("SP = %#04x, want %#04x", got, want)
	}
	if c.isFlagSet(FlagZero) {
		t.Error("ADD SP,r8 should always clear the zero flag")
	}
	if !c.isFlagSet(FlagHalfCarry) || !c.isFlagSet(FlagCarry) {
		t.Errorf("F = %#02x, want half carry and carry from the low byte", c.F)
	}

	c.SP = 0x000A
	c.loadProgram(0xE8, 0xFB) // ADD SP,-5
	c.Step()
	if got, want := c.SP, uint16(0x0005); got != want {
		t.Errorf("SP = %#04x, want %#04x", got, want)
	}
}

func TestLoadHLSPOffset(t *testing.T) {
	c := newTestCPU(t)
	c.SP = 0xDF00
	c.loadProgram(0xF8, 0x02) // LD HL,SP+2
	c.Step()

	if got, want := c.HL.Uint16(), uint16(0xDF02); got != want {
		t.Errorf("HL = %#04x, want %#04x", got, want)
	}
	if got, want := c.SP, uint16(0xDF00); got != want {
		t.Errorf("SP = %#04x, want %#04x (must be unchanged)", got, want)
	}
}

func TestAddImmediateFlags(t *testing.T) {
	c := newTestCPU(t)
	c.A = 0x08
	c.B = 0x08
	c.loadProgram(0x80) // ADD A,B
	c.Step()

	if got, want := c.A, uint8(0x10); got != want {
		t.Errorf("A = %#02x, want %#02x", got, want)
	}
	if got, want := c.F, uint8(1<<FlagHalfCarry); got != want {
		t.Errorf("F = %#02x, want %#02x", got, want)
	}
}

func TestSixteenBitIncDec(t *testing.T) {
	c := newTestCPU(t)
	c.F = 0
	c.BC.SetUint16(0xFFFF)
	c.loadProgram(0x03) // INC BC
	c.Step()

	if got, want := c.BC.Uint16(), uint16(0x0000); got != want {
		t.Errorf("BC = %#04x, want %#04x", got, want)
	}
	if c.F != 0 {
		t.Errorf("F = %#02x, want 0 (INC rr affects no flags)", c.F)
	}

	c.loadProgram(0x0B) // DEC BC
	c.Step()
	if got, want := c.BC.Uint16(), uint16(0xFFFF); got != want {
		t.Errorf("BC = %#04x, want %#04x", got, want)
	}
}

func TestDAA(t *testing.T) {
	c := newTestCPU(t)

	// 0x45 + 0x38 = 0x7D, adjusted to 0x83
	c.A = 0x45
	c.add(0x38, false)
	c.loadProgram(0x27) // DAA
	c.Step()
	if got, want := c.A, uint8(0x83); got != want {
		t.Errorf("DAA after 45+38 = %#02x, want %#02x", got, want)
	}

	// 0x83 - 0x38 = 0x4B, adjusted to 0x45
	c.sub(0x38, false)
	c.loadProgram(0x27)
	c.Step()
	if got, want := c.A, uint8(0x45); got != want {
		t.Errorf("DAA after 83-38 = %#02x, want %#02x", got, want)
	}
	if c.isFlagSet(FlagHalfCarry) {
		t.Error("DAA should clear the half carry flag")
	}
}
