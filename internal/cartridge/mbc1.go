package cartridge

const (
	romBankSize = 0x4000
	ramBankSize = 0x2000
)

// MemoryBankedCartridge1 implements the MBC1 controller: a 5-bit ROM
// bank register, a 2-bit register that selects either the RAM bank or
// the upper ROM bank bits, and a mode flag that decides which of the
// two the 2-bit register means.
type MemoryBankedCartridge1 struct {
	rom []byte
	ram []byte

	romBank    uint8 // lower 5 bits of the ROM bank (0 remaps to 1)
	upperBits  uint8 // RAM bank (mode 1) or ROM bank bits 5-6 (mode 0)
	ramEnabled bool
	mode       uint8 // 0 = ROM banking, 1 = RAM banking

	header Header
}

// NewMemoryBankedCartridge1 returns a new MemoryBankedCartridge1 for
// the given ROM image.
func NewMemoryBankedCartridge1(rom []byte, header Header) *MemoryBankedCartridge1 {
	return &MemoryBankedCartridge1{
		rom:     rom,
		ram:     make([]byte, header.RAMSize),
		romBank: 1,
		header:  header,
	}
}

// Read returns the byte at the given address for the currently
// selected banks.
func (m *MemoryBankedCartridge1) Read(address uint16) uint8 {
	switch {
	case address < 0x4000:
		// the lower window is bank 0, except in RAM banking mode
		// where the upper bits still apply
		bank := 0
		if m.mode == 1 {
			bank = int(m.upperBits) << 5
		}
		return readBanked(m.rom, bank*romBankSize+int(address))
	case address < 0x8000:
		return readBanked(m.rom, int(m.ROMBank())*romBankSize+int(address-0x4000))
	case address >= 0xA000 && address < 0xC000:
		if !m.ramEnabled {
			return 0xFF
		}
		return readBanked(m.ram, int(m.RAMBank())*ramBankSize+int(address-0xA000))
	}
	return 0xFF
}

// Write updates the banking registers, or writes to the selected RAM
// bank.
func (m *MemoryBankedCartridge1) Write(address uint16, value uint8) {
	switch {
	case address < 0x2000:
		m.ramEnabled = value&0x0F == 0x0A
	case address < 0x4000:
		m.romBank = value & 0x1F
		if m.romBank == 0 {
			m.romBank = 1
		}
	case address < 0x6000:
		m.upperBits = value & 0x03
	case address < 0x8000:
		m.mode = value & 0x01
	case address >= 0xA000 && address < 0xC000:
		if !m.ramEnabled {
			return
		}
		writeBanked(m.ram, int(m.RAMBank())*ramBankSize+int(address-0xA000), value)
	}
}

// Header returns the parsed cartridge header.
func (m *MemoryBankedCartridge1) Header() Header {
	return m.header
}

// ROMBank returns the composed bank mapped at 0x4000-0x7FFF.
func (m *MemoryBankedCartridge1) ROMBank() uint16 {
	return uint16(m.upperBits)<<5 | uint16(m.romBank)
}

// RAMBank returns the RAM bank mapped at 0xA000-0xBFFF. Outside RAM
// banking mode only bank 0 is reachable.
func (m *MemoryBankedCartridge1) RAMBank() uint8 {
	if m.mode == 1 {
		return m.upperBits
	}
	return 0
}

// RAMEnabled returns true if external RAM access is enabled.
func (m *MemoryBankedCartridge1) RAMEnabled() bool {
	return m.ramEnabled
}

// readBanked returns the byte at the given offset, or 0xFF when the
// offset falls outside the loaded image (open bus).
func readBanked(data []byte, offset int) uint8 {
	if offset < 0 || offset >= len(data) {
		return 0xFF
	}
	return data[offset]
}

// writeBanked stores the byte at the given offset, dropping writes
// that fall outside the image.
func writeBanked(data []byte, offset int, value uint8) {
	if offset < 0 || offset >= len(data) {
		return
	}
	data[offset] = value
}
