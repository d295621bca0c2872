package cpu

import "github.com/dotmatrix-emu/dotmatrix/pkg/utils"

// testBit sets the zero flag from the given bit of the value. The
// carry flag is unaffected.
//
// Flags affected:
//  Z - Set if the bit is zero.
//  N - Reset.
//  H - Set.
func (c *CPU) testBit(value uint8, bit uint8) {
	c.shouldZeroFlag(value & (1 << bit))
	c.clearFlag(FlagSubtract)
	c.setFlag(FlagHalfCarry)
}

// setBit returns the value with the given bit set. No flags are
// affected.
func (c *CPU) setBit(value uint8, bit uint8) uint8 {
	return utils.Set(value, bit)
}

// resetBit returns the value with the given bit cleared. No flags
// are affected.
func (c *CPU) resetBit(value uint8, bit uint8) uint8 {
	return utils.Reset(value, bit)
}
