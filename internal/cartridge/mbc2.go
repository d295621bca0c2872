package cartridge

// MemoryBankedCartridge2 implements the MBC2 controller: a 4-bit ROM
// bank register and 512 half-bytes of built-in RAM. Bit 8 of the write
// address selects between the RAM-enable and ROM-bank registers.
type MemoryBankedCartridge2 struct {
	rom []byte
	ram []byte

	romBank    uint8
	ramEnabled bool

	header Header
}

// NewMemoryBankedCartridge2 returns a new MemoryBankedCartridge2 for
// the given ROM image.
func NewMemoryBankedCartridge2(rom []byte, header Header) *MemoryBankedCartridge2 {
	return &MemoryBankedCartridge2{
		rom:     rom,
		ram:     make([]byte, 512),
		romBank: 1,
		header:  header,
	}
}

// Read returns the byte at the given address for the currently
// selected bank. The built-in RAM only holds the lower nibble of each
// byte; the upper nibble reads as set.
func (m *MemoryBankedCartridge2) Read(address uint16) uint8 {
	switch {
	case address < 0x4000:
		return readBanked(m.rom, int(address))
	case address < 0x8000:
		return readBanked(m.rom, int(m.romBank)*romBankSize+int(address-0x4000))
	case address >= 0xA000 && address < 0xC000:
		if !m.ramEnabled {
			return 0xFF
		}
		// 512 half-bytes, mirrored across the whole RAM window
		return m.ram[address&0x01FF] | 0xF0
	}
	return 0xFF
}

// Write updates the banking registers, or writes to the built-in RAM.
func (m *MemoryBankedCartridge2) Write(address uint16, value uint8) {
	switch {
	case address < 0x4000:
		if address&0x0100 != 0 {
			m.romBank = value & 0x0F
			if m.romBank == 0 {
				m.romBank = 1
			}
		} else {
			m.ramEnabled = value&0x0F == 0x0A
		}
	case address >= 0xA000 && address < 0xC000:
		if !m.ramEnabled {
			return
		}
		m.ram[address&0x01FF] = value & 0x0F
	}
}

// Header returns the parsed cartridge header.
func (m *MemoryBankedCartridge2) Header() Header {
	return m.header
}

// ROMBank returns the bank mapped at 0x4000-0x7FFF.
func (m *MemoryBankedCartridge2) ROMBank() uint16 {
	return uint16(m.romBank)
}

// RAMBank returns 0: the built-in RAM is not banked.
func (m *MemoryBankedCartridge2) RAMBank() uint8 {
	return 0
}

// RAMEnabled returns true if the built-in RAM is enabled.
func (m *MemoryBankedCartridge2) RAMEnabled() bool {
	return m.ramEnabled
}
