package cartridge

import (
	"fmt"
	"strings"
)

// Type is the raw cartridge-type byte found at offset 0x0147 of the
// header.
type Type uint8

const (
	ROM               Type = 0x00
	MBC1              Type = 0x01
	MBC1RAM           Type = 0x02
	MBC1RAMBATT       Type = 0x03
	MBC2              Type = 0x05
	MBC2BATT          Type = 0x06
	ROMRAM            Type = 0x08
	ROMRAMBATT        Type = 0x09
	MBC3TIMERBATT     Type = 0x0F
	MBC3TIMERRAMBATT  Type = 0x10
	MBC3              Type = 0x11
	MBC3RAM           Type = 0x12
	MBC3RAMBATT       Type = 0x13
	MBC5              Type = 0x19
	MBC5RAM           Type = 0x1A
	MBC5RAMBATT       Type = 0x1B
	MBC5RUMBLE        Type = 0x1C
	MBC5RUMBLERAM     Type = 0x1D
	MBC5RUMBLERAMBATT Type = 0x1E
)

// Controller identifies the banking-hardware family a cartridge-type
// byte maps to.
type Controller uint8

const (
	// ControllerNone is a plain 32kB ROM with no banking hardware.
	ControllerNone Controller = iota
	// ControllerMBC1 supports up to 2MB of ROM and 32kB of RAM.
	ControllerMBC1
	// ControllerMBC2 supports up to 256kB of ROM and has 512
	// half-bytes of built-in RAM.
	ControllerMBC2
	// ControllerMBC3 supports up to 2MB of ROM, 32kB of RAM and a
	// real-time clock.
	ControllerMBC3
	// ControllerMBC5 supports up to 8MB of ROM and 128kB of RAM.
	ControllerMBC5
	// ControllerUnknown is any cartridge type this emulator does not
	// model. It degrades to ControllerNone behaviour.
	ControllerUnknown
)

func (c Controller) String() string {
	switch c {
	case ControllerNone:
		return "ROM"
	case ControllerMBC1:
		return "MBC1"
	case ControllerMBC2:
		return "MBC2"
	case ControllerMBC3:
		return "MBC3"
	case ControllerMBC5:
		return "MBC5"
	default:
		return "Unknown"
	}
}

// ramMap translates the RAM-size byte at offset 0x0149 into a size in
// bytes.
var ramMap = map[uint8]uint{
	0x00: 0,
	0x02: 8 * 1024,
	0x03: 32 * 1024,
	0x04: 128 * 1024,
	0x05: 64 * 1024,
}

// headerLength is the number of bytes a ROM must provide before the
// cartridge header (0x0100 - 0x014F) can be parsed.
const headerLength = 0x0150

// Header represents the header of a cartridge, located in the address
// space 0x0100-0x014F. It describes the cartridge hardware and the
// sizes of the ROM and RAM images.
type Header struct {
	// Title of the game, at 0x0134-0x0143.
	Title string

	// CartridgeType is the hardware byte at 0x0147.
	CartridgeType Type

	// ROMSize is the size of the ROM image in bytes, decoded from
	// 0x0148.
	ROMSize uint

	// RAMSize is the size of the external RAM in bytes, decoded from
	// 0x0149.
	RAMSize uint

	// OldLicenseeCode is the licensee byte at 0x014B.
	OldLicenseeCode uint8

	// MaskROMVersion is the version byte at 0x014C.
	MaskROMVersion uint8

	// HeaderChecksum is the checksum byte at 0x014D, covering
	// 0x0134-0x014C.
	HeaderChecksum uint8

	// GlobalChecksum is the 16-bit checksum at 0x014E-0x014F.
	GlobalChecksum uint16
}

// parseHeader parses the cartridge header of the given ROM image. An
// error is returned if the image is too short to contain one.
func parseHeader(rom []byte) (Header, error) {
	if len(rom) < headerLength {
		return Header{}, fmt.Errorf("cartridge: ROM of %d bytes is too short to contain a header", len(rom))
	}

	h := Header{
		Title:           strings.TrimRight(string(rom[0x0134:0x0144]), "\x00"),
		CartridgeType:   Type(rom[0x0147]),
		ROMSize:         (32 * 1024) << rom[0x0148],
		RAMSize:         ramMap[rom[0x0149]],
		OldLicenseeCode: rom[0x014B],
		MaskROMVersion:  rom[0x014C],
		HeaderChecksum:  rom[0x014D],
		GlobalChecksum:  uint16(rom[0x014E])<<8 | uint16(rom[0x014F]),
	}
	return h, nil
}

// Controller returns the banking-hardware family for the cartridge
// type byte.
func (h Header) Controller() Controller {
	switch h.CartridgeType {
	case ROM, ROMRAM, ROMRAMBATT:
		return ControllerNone
	case MBC1, MBC1RAM, MBC1RAMBATT:
		return ControllerMBC1
	case MBC2, MBC2BATT:
		return ControllerMBC2
	case MBC3TIMERBATT, MBC3TIMERRAMBATT, MBC3, MBC3RAM, MBC3RAMBATT:
		return ControllerMBC3
	case MBC5, MBC5RAM, MBC5RAMBATT, MBC5RUMBLE, MBC5RUMBLERAM, MBC5RUMBLERAMBATT:
		return ControllerMBC5
	default:
		return ControllerUnknown
	}
}

func (h Header) String() string {
	return fmt.Sprintf("%s | %s | ROM: %dkB | RAM: %dkB", h.Title, h.Controller(), h.ROMSize/1024, h.RAMSize/1024)
}
