package mmu

import (
	"testing"

	"github.com/dotmatrix-emu/dotmatrix/internal/cartridge"
	"github.com/dotmatrix-emu/dotmatrix/internal/interrupts"
	"github.com/dotmatrix-emu/dotmatrix/pkg/log"
)

func newTestMMU(t *testing.T) *MMU {
	t.Helper()
	rom := make([]byte, 0x8000)
	for i := range rom {
		rom[i] = uint8(i)
	}
	cart, err := cartridge.New(rom, log.NewNullLogger())
	if err != nil {
		t.Fatalf("cartridge.New() error = %v", err)
	}
	return New(cart, interrupts.NewService(), log.NewNullLogger())
}

func TestROMReads(t *testing.T) {
	m := newTestMMU(t)

	if got, want := m.Read(0x4567), uint8(0x4567&0xFF); got != want {
		t.Errorf("Read(0x4567) = %#02x, want %#02x", got, want)
	}
	// ROM writes go to the cartridge controller, not the image
	m.Write(0x4567, 0x00)
	if got, want := m.Read(0x4567), uint8(0x4567&0xFF); got != want {
		t.Errorf("Read(0x4567) after write = %#02x, want %#02x", got, want)
	}
}

func TestWorkRAM(t *testing.T) {
	m := newTestMMU(t)

	m.Write(0xC000, 0x12)
	m.Write(0xDFFF, 0x34)
	if got, want := m.Read(0xC000), uint8(0x12); got != want {
		t.Errorf("Read(0xC000) = %#02x, want %#02x", got, want)
	}
	if got, want := m.Read(0xDFFF), uint8(0x34); got != want {
		t.Errorf("Read(0xDFFF) = %#02x, want %#02x", got, want)
	}
}

func TestEchoRAM(t *testing.T) {
	m := newTestMMU(t)

	// writes to work RAM appear in the echo region
	m.Write(0xC123, 0xAB)
	if got, want := m.Read(0xE123), uint8(0xAB); got != want {
		t.Errorf("Read(0xE123) = %#02x, want %#02x", got, want)
	}
	// and writes to the echo region appear in work RAM
	m.Write(0xF000, 0xCD)
	if got, want := m.Read(0xD000), uint8(0xCD); got != want {
		t.Errorf("Read(0xD000) = %#02x, want %#02x", got, want)
	}
}

func TestVideoRAM(t *testing.T) {
	m := newTestMMU(t)

	m.Write(0x8000, 0x55)
	m.Write(0x9FFF, 0xAA)
	if got, want := m.Read(0x8000), uint8(0x55); got != want {
		t.Errorf("Read(0x8000) = %#02x, want %#02x", got, want)
	}
	if got, want := m.Read(0x9FFF), uint8(0xAA); got != want {
		t.Errorf("Read(0x9FFF) = %#02x, want %#02x", got, want)
	}
}

func TestObjectAttributeMemory(t *testing.T) {
	m := newTestMMU(t)

	m.Write(0xFE00, 0x11)
	m.Write(0xFE9F, 0x22)
	if got, want := m.Read(0xFE00), uint8(0x11); got != want {
		t.Errorf("Read(0xFE00) = %#02x, want %#02x", got, want)
	}
	if got, want := m.Read(0xFE9F), uint8(0x22); got != want {
		t.Errorf("Read(0xFE9F) = %#02x, want %#02x", got, want)
	}
}

func TestUnusableRegion(t *testing.T) {
	m := newTestMMU(t)

	for addr := uint16(0xFEA0); addr < 0xFF00; addr++ {
		m.Write(addr, 0x00)
		if got, want := m.Read(addr), uint8(0xFF); got != want {
			t.Fatalf("Read(%#04x) = %#02x, want %#02x", addr, got, want)
		}
	}
}

func TestHighRAM(t *testing.T) {
	m := newTestMMU(t)

	m.Write(0xFF80, 0x01)
	m.Write(0xFFFE, 0x02)
	if got, want := m.Read(0xFF80), uint8(0x01); got != want {
		t.Errorf("Read(0xFF80) = %#02x, want %#02x", got, want)
	}
	if got, want := m.Read(0xFFFE), uint8(0x02); got != want {
		t.Errorf("Read(0xFFFE) = %#02x, want %#02x", got, want)
	}
}

func TestInterruptRegisters(t *testing.T) {
	m := newTestMMU(t)

	// the upper bits of IF always read as set
	m.Write(0xFF0F, 0x00)
	if got, want := m.Read(0xFF0F), uint8(0xE0); got != want {
		t.Errorf("Read(0xFF0F) = %#02x, want %#02x", got, want)
	}
	m.Write(0xFF0F, 0xFF)
	if got, want := m.Read(0xFF0F), uint8(0xFF); got != want {
		t.Errorf("Read(0xFF0F) = %#02x, want %#02x", got, want)
	}

	m.Write(0xFFFF, 0x15)
	if got, want := m.Read(0xFFFF), uint8(0x15); got != want {
		t.Errorf("Read(0xFFFF) = %#02x, want %#02x", got, want)
	}
}

func TestExternalRAMWithoutCartridgeRAM(t *testing.T) {
	m := newTestMMU(t)

	// no RAM fitted: reads are open bus
	m.Write(0xA000, 0x42)
	if got, want := m.Read(0xA000), uint8(0xFF); got != want {
		t.Errorf("Read(0xA000) = %#02x, want %#02x", got, want)
	}
}

func TestWord(t *testing.T) {
	m := newTestMMU(t)

	m.Write16(0xC100, 0x1234)
	if got, want := m.Read(0xC100), uint8(0x34); got != want {
		t.Errorf("low byte = %#02x, want %#02x", got, want)
	}
	if got, want := m.Read(0xC101), uint8(0x12); got != want {
		t.Errorf("high byte = %#02x, want %#02x", got, want)
	}
	if got, want := m.Read16(0xC100), uint16(0x1234); got != want {
		t.Errorf("Read16 = %#04x, want %#04x", got, want)
	}
}

func TestRegisterOverride(t *testing.T) {
	m := newTestMMU(t)

	var stored uint8
	m.Register(0xFF42,
		func(address uint16) uint8 { return stored },
		func(address uint16, value uint8) { stored = value + 1 },
	)
	m.Write(0xFF42, 0x10)
	if got, want := m.Read(0xFF42), uint8(0x11); got != want {
		t.Errorf("Read(0xFF42) = %#02x, want %#02x", got, want)
	}
}
