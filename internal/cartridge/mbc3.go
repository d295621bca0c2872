package cartridge

// MemoryBankedCartridge3 implements the MBC3 controller: a 7-bit ROM
// bank register, 4 RAM banks, and a bank-selectable real-time-clock
// register block. The clock registers accept reads and writes but do
// not keep time.
type MemoryBankedCartridge3 struct {
	rom []byte
	ram []byte

	romBank    uint8
	ramBank    uint8
	ramEnabled bool

	// rtcSelected is true while 0x4000-0x5FFF last selected a clock
	// register instead of a RAM bank.
	rtcSelected bool
	rtcRegister uint8
	rtc         [5]uint8 // seconds, minutes, hours, days low, days high/control

	header Header
}

// NewMemoryBankedCartridge3 returns a new MemoryBankedCartridge3 for
// the given ROM image.
func NewMemoryBankedCartridge3(rom []byte, header Header) *MemoryBankedCartridge3 {
	return &MemoryBankedCartridge3{
		rom:     rom,
		ram:     make([]byte, header.RAMSize),
		romBank: 1,
		header:  header,
	}
}

// Read returns the byte at the given address for the currently
// selected bank or clock register.
func (m *MemoryBankedCartridge3) Read(address uint16) uint8 {
	switch {
	case address < 0x4000:
		return readBanked(m.rom, int(address))
	case address < 0x8000:
		return readBanked(m.rom, int(m.romBank)*romBankSize+int(address-0x4000))
	case address >= 0xA000 && address < 0xC000:
		if !m.ramEnabled {
			return 0xFF
		}
		if m.rtcSelected {
			if m.rtcRegister >= 0x08 && m.rtcRegister <= 0x0C {
				return m.rtc[m.rtcRegister-0x08]
			}
			return 0xFF
		}
		return readBanked(m.ram, int(m.ramBank)*ramBankSize+int(address-0xA000))
	}
	return 0xFF
}

// Write updates the banking registers, the selected RAM bank, or the
// selected clock register.
func (m *MemoryBankedCartridge3) Write(address uint16, value uint8) {
	switch {
	case address < 0x2000:
		m.ramEnabled = value&0x0F == 0x0A
	case address < 0x4000:
		m.romBank = value & 0x7F
		if m.romBank == 0 {
			m.romBank = 1
		}
	case address < 0x6000:
		if value <= 0x03 {
			m.ramBank = value
			m.rtcSelected = false
		} else if value >= 0x08 && value <= 0x0C {
			m.rtcRegister = value
			m.rtcSelected = true
		}
	case address < 0x8000:
		// clock latch trigger: timekeeping is not modelled, so there
		// is nothing to latch
	case address >= 0xA000 && address < 0xC000:
		if !m.ramEnabled {
			return
		}
		if m.rtcSelected {
			if m.rtcRegister >= 0x08 && m.rtcRegister <= 0x0C {
				m.rtc[m.rtcRegister-0x08] = value
			}
			return
		}
		writeBanked(m.ram, int(m.ramBank)*ramBankSize+int(address-0xA000), value)
	}
}

// Header returns the parsed cartridge header.
func (m *MemoryBankedCartridge3) Header() Header {
	return m.header
}

// ROMBank returns the bank mapped at 0x4000-0x7FFF.
func (m *MemoryBankedCartridge3) ROMBank() uint16 {
	return uint16(m.romBank)
}

// RAMBank returns the RAM bank mapped at 0xA000-0xBFFF.
func (m *MemoryBankedCartridge3) RAMBank() uint8 {
	return m.ramBank
}

// RAMEnabled returns true if external RAM access is enabled.
func (m *MemoryBankedCartridge3) RAMEnabled() bool {
	return m.ramEnabled
}
