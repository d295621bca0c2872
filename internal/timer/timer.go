// Package timer implements the divider and timer registers, driven
// by a single 16-bit internal counter.
package timer

import (
	"github.com/dotmatrix-emu/dotmatrix/internal/interrupts"
	"github.com/dotmatrix-emu/dotmatrix/internal/mmu"
)

// Hardware register addresses.
const (
	DividerRegister = 0xFF04
	CounterRegister = 0xFF05
	ModuloRegister  = 0xFF06
	ControlRegister = 0xFF07
)

// inputBits holds the internal counter bit whose falling edge ticks
// the counter register, indexed by the low two bits of the control
// register.
var inputBits = [4]uint8{9, 3, 5, 7}

// Controller owns the divider and timer registers. The divider is
// the high byte of the internal counter, and the timer ticks on
// falling edges of a counter bit selected by the control register.
type Controller struct {
	irq *interrupts.Service

	internal uint16
	tima     uint8
	tma      uint8
	tac      uint8
}

// NewController returns a new Controller with its registers claimed
// on the given bus.
func NewController(bus *mmu.MMU, irq *interrupts.Service) *Controller {
	t := &Controller{irq: irq}
	bus.Register(DividerRegister,
		func(address uint16) uint8 { return uint8(t.internal >> 8) },
		// writing any value resets the whole internal counter
		func(address uint16, value uint8) { t.internal = 0 },
	)
	bus.Register(CounterRegister,
		func(address uint16) uint8 { return t.tima },
		func(address uint16, value uint8) { t.tima = value },
	)
	bus.Register(ModuloRegister,
		func(address uint16) uint8 { return t.tma },
		func(address uint16, value uint8) { t.tma = value },
	)
	bus.Register(ControlRegister,
		func(address uint16) uint8 { return t.tac | 0xF8 },
		func(address uint16, value uint8) { t.tac = value & 0x07 },
	)
	return t
}

// Tick advances the timer by the given number of T-cycles,
// requesting a timer interrupt on counter overflow.
func (t *Controller) Tick(cycles uint8) {
	for i := uint8(0); i < cycles; i++ {
		old := t.internal
		t.internal++
		if t.tac&0x04 == 0 {
			continue
		}
		bit := inputBits[t.tac&0x03]
		if old&(1<<bit) != 0 && t.internal&(1<<bit) == 0 {
			t.tima++
			if t.tima == 0 {
				t.tima = t.tma
				t.irq.Request(interrupts.TimerFlag)
			}
		}
	}
}

// Divider returns the current value of the divider register.
func (t *Controller) Divider() uint8 {
	return uint8(t.internal >> 8)
}
