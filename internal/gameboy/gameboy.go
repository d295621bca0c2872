// Package gameboy wires the emulated components into a runnable
// machine.
package gameboy

import (
	"github.com/dotmatrix-emu/dotmatrix/internal/cartridge"
	"github.com/dotmatrix-emu/dotmatrix/internal/cpu"
	"github.com/dotmatrix-emu/dotmatrix/internal/interrupts"
	"github.com/dotmatrix-emu/dotmatrix/internal/mmu"
	"github.com/dotmatrix-emu/dotmatrix/internal/timer"
	"github.com/dotmatrix-emu/dotmatrix/pkg/log"
)

// GameBoy is a fully wired machine: CPU, bus, cartridge, interrupt
// service and timer.
type GameBoy struct {
	CPU   *cpu.CPU
	MMU   *mmu.MMU
	Cart  cartridge.Cartridge
	IRQ   *interrupts.Service
	Timer *timer.Controller

	log.Logger

	debug bool
}

// New returns a new GameBoy with the given ROM image loaded.
func New(rom []byte, opts ...Opt) (*GameBoy, error) {
	g := &GameBoy{
		Logger: log.New(),
	}
	for _, opt := range opts {
		opt(g)
	}

	cart, err := cartridge.New(rom, g.Logger)
	if err != nil {
		return nil, err
	}
	g.Cart = cart
	g.IRQ = interrupts.NewService()
	g.MMU = mmu.New(cart, g.IRQ, g.Logger)
	g.Timer = timer.NewController(g.MMU, g.IRQ)
	g.CPU = cpu.NewCPU(g.MMU, g.IRQ, g.Logger)
	g.CPU.Debug = g.debug

	return g, nil
}

// Step executes a single instruction, services pending interrupts,
// and advances the timer, returning the total T-cycles consumed.
func (g *GameBoy) Step() uint8 {
	cycles := g.CPU.Step()
	cycles += g.CPU.HandleInterrupts()
	g.Timer.Tick(cycles)
	return cycles
}

// Run steps the machine until it halts with no interrupts enabled,
// hits a debug breakpoint, or reaches the given instruction limit. A
// limit of zero means no limit. It returns the number of
// instructions executed.
func (g *GameBoy) Run(limit uint64) uint64 {
	var executed uint64
	for {
		if limit > 0 && executed >= limit {
			return executed
		}
		g.Step()
		executed++
		if g.CPU.DebugBreakpoint {
			g.Infof("gameboy: debug breakpoint at 0x%04X", g.CPU.PC)
			return executed
		}
		if g.CPU.Halted() && g.IRQ.ReadEnable() == 0 {
			g.Infof("gameboy: halted with interrupts disabled")
			return executed
		}
		if g.CPU.Stopped() {
			g.Infof("gameboy: stopped")
			return executed
		}
	}
}
