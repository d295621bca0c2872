// Package cartridge provides the cartridge side of the memory map: the
// ROM image, the external RAM, and the bank-controller hardware that
// remaps both into the CPU's fixed address windows.
package cartridge

import (
	"github.com/cespare/xxhash"

	"github.com/dotmatrix-emu/dotmatrix/pkg/log"
)

// Cartridge handles the CPU accesses that fall in cartridge address
// space: ROM reads (0x0000-0x7FFF), external RAM (0xA000-0xBFFF), and
// the control-register writes that ROM-space writes are reinterpreted
// as. Reads outside the loaded images return 0xFF; ROM content is
// never modified by a write.
type Cartridge interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)

	Header() Header
}

// Banked is implemented by cartridges with banking hardware, exposing
// the current banking registers for inspection.
type Banked interface {
	// ROMBank returns the bank currently mapped at 0x4000-0x7FFF.
	ROMBank() uint16
	// RAMBank returns the external RAM bank currently mapped at
	// 0xA000-0xBFFF.
	RAMBank() uint8
	// RAMEnabled returns true if external RAM access is enabled.
	RAMEnabled() bool
}

// New parses the header of the given ROM image and returns the
// matching cartridge implementation. Unrecognised cartridge types
// degrade to plain no-banking behaviour rather than failing the load.
func New(rom []byte, logger log.Logger) (Cartridge, error) {
	header, err := parseHeader(rom)
	if err != nil {
		return nil, err
	}

	logger.Infof("cartridge: %s (%016x)", header, xxhash.Sum64(rom))

	switch header.Controller() {
	case ControllerMBC1:
		return NewMemoryBankedCartridge1(rom, header), nil
	case ControllerMBC2:
		return NewMemoryBankedCartridge2(rom, header), nil
	case ControllerMBC3:
		return NewMemoryBankedCartridge3(rom, header), nil
	case ControllerMBC5:
		return NewMemoryBankedCartridge5(rom, header), nil
	case ControllerUnknown:
		logger.Errorf("cartridge: unsupported type %#02x, treating as ROM only", uint8(header.CartridgeType))
		fallthrough
	default:
		return NewROMCartridge(rom, header), nil
	}
}
