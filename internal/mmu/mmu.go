// Package mmu provides the memory management unit, routing every bus
// access to the cartridge, internal RAM, or a hardware register.
package mmu

import (
	"github.com/dotmatrix-emu/dotmatrix/internal/cartridge"
	"github.com/dotmatrix-emu/dotmatrix/internal/interrupts"
	"github.com/dotmatrix-emu/dotmatrix/pkg/log"
)

// memoryRegion is a read and write handler pair for a single bus
// address.
type memoryRegion struct {
	read  func(address uint16) uint8
	write func(address uint16, value uint8)
}

// MMU dispatches bus reads and writes over the 16-bit address space.
// Every address resolves through the raw table, built once at
// construction, so Read and Write are a single indirection.
type MMU struct {
	cart cartridge.Cartridge
	irq  *interrupts.Service

	vram [0x2000]uint8
	wram [0x2000]uint8
	oam  [0xA0]uint8
	io   [0x80]uint8
	hram [0x7F]uint8

	raw [0x10000]*memoryRegion

	log log.Logger
}

// New returns a new MMU with the given cartridge attached.
func New(cart cartridge.Cartridge, irq *interrupts.Service, logger log.Logger) *MMU {
	m := &MMU{
		cart: cart,
		irq:  irq,
		log:  logger,
	}
	m.buildTable()
	return m
}

func (m *MMU) buildTable() {
	cartRegion := &memoryRegion{
		read:  m.cart.Read,
		write: m.cart.Write,
	}
	vramRegion := &memoryRegion{
		read:  func(address uint16) uint8 { return m.vram[address&0x1FFF] },
		write: func(address uint16, value uint8) { m.vram[address&0x1FFF] = value },
	}
	// echo RAM at 0xE000-0xFDFF aliases WRAM through the same mask
	wramRegion := &memoryRegion{
		read:  func(address uint16) uint8 { return m.wram[address&0x1FFF] },
		write: func(address uint16, value uint8) { m.wram[address&0x1FFF] = value },
	}
	oamRegion := &memoryRegion{
		read:  func(address uint16) uint8 { return m.oam[address&0x00FF] },
		write: func(address uint16, value uint8) { m.oam[address&0x00FF] = value },
	}
	unusableRegion := &memoryRegion{
		read:  func(address uint16) uint8 { return 0xFF },
		write: func(address uint16, value uint8) {},
	}
	ioRegion := &memoryRegion{
		read:  func(address uint16) uint8 { return m.io[address&0x007F] },
		write: func(address uint16, value uint8) { m.io[address&0x007F] = value },
	}
	flagRegion := &memoryRegion{
		read:  func(address uint16) uint8 { return m.irq.ReadFlag() },
		write: func(address uint16, value uint8) { m.irq.WriteFlag(value) },
	}
	hramRegion := &memoryRegion{
		read:  func(address uint16) uint8 { return m.hram[address-0xFF80] },
		write: func(address uint16, value uint8) { m.hram[address-0xFF80] = value },
	}
	enableRegion := &memoryRegion{
		read:  func(address uint16) uint8 { return m.irq.ReadEnable() },
		write: func(address uint16, value uint8) { m.irq.WriteEnable(value) },
	}

	for i := 0x0000; i < 0x8000; i++ {
		m.raw[i] = cartRegion
	}
	for i := 0x8000; i < 0xA000; i++ {
		m.raw[i] = vramRegion
	}
	for i := 0xA000; i < 0xC000; i++ {
		m.raw[i] = cartRegion
	}
	for i := 0xC000; i < 0xFE00; i++ {
		m.raw[i] = wramRegion
	}
	for i := 0xFE00; i < 0xFEA0; i++ {
		m.raw[i] = oamRegion
	}
	for i := 0xFEA0; i < 0xFF00; i++ {
		m.raw[i] = unusableRegion
	}
	for i := 0xFF00; i < 0xFF80; i++ {
		m.raw[i] = ioRegion
	}
	m.raw[0xFF0F] = flagRegion
	for i := 0xFF80; i < 0xFFFF; i++ {
		m.raw[i] = hramRegion
	}
	m.raw[0xFFFF] = enableRegion
}

// Register installs a custom handler pair for a single bus address,
// replacing whatever the table mapped there. Hardware components use
// this to claim their registers.
func (m *MMU) Register(address uint16, read func(address uint16) uint8, write func(address uint16, value uint8)) {
	m.raw[address] = &memoryRegion{read: read, write: write}
}

// Read returns the byte at the given bus address.
func (m *MMU) Read(address uint16) uint8 {
	return m.raw[address].read(address)
}

// Write writes the given value to the given bus address.
func (m *MMU) Write(address uint16, value uint8) {
	m.raw[address].write(address, value)
}

// Read16 reads two bytes starting at the given address, little
// endian.
func (m *MMU) Read16(address uint16) uint16 {
	return uint16(m.Read(address)) | uint16(m.Read(address+1))<<8
}

// Write16 writes two bytes starting at the given address, little
// endian.
func (m *MMU) Write16(address uint16, value uint16) {
	m.Write(address, uint8(value))
	m.Write(address+1, uint8(value>>8))
}

// Cartridge returns the attached cartridge.
func (m *MMU) Cartridge() cartridge.Cartridge {
	return m.cart
}
