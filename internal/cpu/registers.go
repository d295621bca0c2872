package cpu

// Register is an 8-bit hardware register.
type Register = uint8

// RegisterPair presents two 8-bit registers as a single 16-bit
// value, high byte first.
type RegisterPair struct {
	High *Register
	Low  *Register
}

// Uint16 returns the pair as a 16-bit value.
func (r *RegisterPair) Uint16() uint16 {
	return uint16(*r.High)<<8 | uint16(*r.Low)
}

// SetUint16 sets the pair from a 16-bit value.
func (r *RegisterPair) SetUint16(value uint16) {
	*r.High = uint8(value >> 8)
	*r.Low = uint8(value)
}

// Registers holds the 8-bit registers of the CPU, along with the
// paired 16-bit views over them.
type Registers struct {
	A Register
	B Register
	C Register
	D Register
	E Register
	F Register
	H Register
	L Register

	AF *RegisterPair
	BC *RegisterPair
	DE *RegisterPair
	HL *RegisterPair
}

// registerNames maps a 3-bit source/destination index to its
// mnemonic, in opcode encoding order.
var registerNames = []string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}

// registerPointer returns a pointer to the register encoded by the
// given 3-bit index. Index 6 is the memory operand (HL) and has no
// backing register.
func (c *CPU) registerPointer(index uint8) *Register {
	switch index {
	case 0:
		return &c.B
	case 1:
		return &c.C
	case 2:
		return &c.D
	case 3:
		return &c.E
	case 4:
		return &c.H
	case 5:
		return &c.L
	case 7:
		return &c.A
	}
	return nil
}

// readSource returns the value of the register or memory operand
// encoded by the given 3-bit index.
func (c *CPU) readSource(index uint8) uint8 {
	if index == 6 {
		return c.readByte(c.HL.Uint16())
	}
	return *c.registerPointer(index)
}

// writeSource writes a value to the register or memory operand
// encoded by the given 3-bit index.
func (c *CPU) writeSource(index uint8, value uint8) {
	if index == 6 {
		c.writeByte(c.HL.Uint16(), value)
		return
	}
	*c.registerPointer(index) = value
}
