package cartridge

// MemoryBankedCartridge5 implements the MBC5 controller: a 9-bit ROM
// bank register split across two write windows, and up to 16 RAM
// banks. Unlike earlier controllers, bank 0 may be mapped into the
// switchable window.
type MemoryBankedCartridge5 struct {
	rom []byte
	ram []byte

	romBank    uint16
	ramBank    uint8
	ramEnabled bool

	header Header
}

// NewMemoryBankedCartridge5 returns a new MemoryBankedCartridge5 for
// the given ROM image.
func NewMemoryBankedCartridge5(rom []byte, header Header) *MemoryBankedCartridge5 {
	return &MemoryBankedCartridge5{
		rom:     rom,
		ram:     make([]byte, header.RAMSize),
		romBank: 1,
		header:  header,
	}
}

// Read returns the byte at the given address for the currently
// selected bank.
func (m *MemoryBankedCartridge5) Read(address uint16) uint8 {
	switch {
	case address < 0x4000:
		return readBanked(m.rom, int(address))
	case address < 0x8000:
		return readBanked(m.rom, int(m.romBank)*romBankSize+int(address-0x4000))
	case address >= 0xA000 && address < 0xC000:
		if !m.ramEnabled {
			return 0xFF
		}
		return readBanked(m.ram, int(m.ramBank)*ramBankSize+int(address-0xA000))
	}
	return 0xFF
}

// Write updates the banking registers or the selected RAM bank.
func (m *MemoryBankedCartridge5) Write(address uint16, value uint8) {
	switch {
	case address < 0x2000:
		m.ramEnabled = value&0x0F == 0x0A
	case address < 0x3000:
		m.romBank = m.romBank&0x0100 | uint16(value)
	case address < 0x4000:
		m.romBank = m.romBank&0x00FF | uint16(value&0x01)<<8
	case address < 0x6000:
		m.ramBank = value & 0x0F
	case address >= 0xA000 && address < 0xC000:
		if !m.ramEnabled {
			return
		}
		writeBanked(m.ram, int(m.ramBank)*ramBankSize+int(address-0xA000), value)
	}
}

// Header returns the parsed cartridge header.
func (m *MemoryBankedCartridge5) Header() Header {
	return m.header
}

// ROMBank returns the bank mapped at 0x4000-0x7FFF.
func (m *MemoryBankedCartridge5) ROMBank() uint16 {
	return m.romBank
}

// RAMBank returns the RAM bank mapped at 0xA000-0xBFFF.
func (m *MemoryBankedCartridge5) RAMBank() uint8 {
	return m.ramBank
}

// RAMEnabled returns true if external RAM access is enabled.
func (m *MemoryBankedCartridge5) RAMEnabled() bool {
	return m.ramEnabled
}
