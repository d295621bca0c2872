package utils

// Set sets the bit at the given position in the given value.
func Set(value uint8, bit uint8) uint8 {
	return value | (1 << bit)
}

// Reset clears the bit at the given position in the given value.
func Reset(value uint8, bit uint8) uint8 {
	return value &^ (1 << bit)
}

// Test returns true if the bit at the given position is set.
func Test(value uint8, bit uint8) bool {
	return value&(1<<bit) != 0
}

// Val returns the value of the bit at the given position.
func Val(value uint8, bit uint8) uint8 {
	return (value >> bit) & 1
}
