package cpu

// The four condition flags live in the upper nibble of the F
// register. The lower nibble always reads as zero.
const (
	// FlagCarry is set when an operation carries out of bit 7, or
	// borrows, or shifts a bit out.
	FlagCarry = uint8(4)
	// FlagHalfCarry is set when an operation carries out of bit 3.
	FlagHalfCarry = uint8(5)
	// FlagSubtract is set when the last operation was a subtraction.
	FlagSubtract = uint8(6)
	// FlagZero is set when the result of the last operation was zero.
	FlagZero = uint8(7)
)

// setFlag sets the given flag bit in the F register.
func (c *CPU) setFlag(flag uint8) {
	c.F |= 1 << flag
}

// clearFlag clears the given flag bit in the F register.
func (c *CPU) clearFlag(flag uint8) {
	c.F &^= 1 << flag
}

// isFlagSet returns true if the given flag bit is set.
func (c *CPU) isFlagSet(flag uint8) bool {
	return c.F&(1<<flag) != 0
}

// setFlags sets the entire F register from the four flag values. The
// lower nibble is always zero.
func (c *CPU) setFlags(zero, subtract, halfCarry, carry bool) {
	v := uint8(0)
	if zero {
		v |= 1 << FlagZero
	}
	if subtract {
		v |= 1 << FlagSubtract
	}
	if halfCarry {
		v |= 1 << FlagHalfCarry
	}
	if carry {
		v |= 1 << FlagCarry
	}
	c.F = v
}

// shouldZeroFlag sets or clears the zero flag according to the given
// result.
func (c *CPU) shouldZeroFlag(result uint8) {
	if result == 0 {
		c.setFlag(FlagZero)
	} else {
		c.clearFlag(FlagZero)
	}
}
