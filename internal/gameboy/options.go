package gameboy

import "github.com/dotmatrix-emu/dotmatrix/pkg/log"

// Opt configures a GameBoy before its components are wired.
type Opt func(g *GameBoy)

// WithLogger replaces the default logger.
func WithLogger(logger log.Logger) Opt {
	return func(g *GameBoy) {
		g.Logger = logger
	}
}

// Debug enables the LD B,B software breakpoint.
func Debug() Opt {
	return func(g *GameBoy) {
		g.debug = true
	}
}
