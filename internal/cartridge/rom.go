package cartridge

// ROMCartridge represents a cartridge with no banking hardware: the
// ROM image maps directly onto 0x0000-0x7FFF and there is no external
// RAM. It also serves as the fail-safe behaviour for unrecognised
// cartridge types.
type ROMCartridge struct {
	rom    []byte
	header Header
}

// NewROMCartridge returns a new ROMCartridge for the given ROM image.
func NewROMCartridge(rom []byte, header Header) *ROMCartridge {
	return &ROMCartridge{
		rom:    rom,
		header: header,
	}
}

// Read returns the byte at the given address. The mapping is the
// identity for ROM space; everything else is open bus.
func (r *ROMCartridge) Read(address uint16) uint8 {
	if address < 0x8000 && int(address) < len(r.rom) {
		return r.rom[address]
	}
	return 0xFF
}

// Write does nothing: there are no control registers and no RAM.
func (r *ROMCartridge) Write(address uint16, value uint8) {
}

// Header returns the parsed cartridge header.
func (r *ROMCartridge) Header() Header {
	return r.header
}
