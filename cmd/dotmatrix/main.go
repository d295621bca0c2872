package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dotmatrix-emu/dotmatrix/internal/gameboy"
	"github.com/dotmatrix-emu/dotmatrix/pkg/log"
	"github.com/dotmatrix-emu/dotmatrix/pkg/utils"
)

func main() {
	romPath := flag.String("rom", "", "path to the ROM file (plain, gz, zip or 7z)")
	debug := flag.Bool("debug", false, "treat LD B,B as a breakpoint")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	limit := flag.Uint64("limit", 0, "stop after this many instructions (0 = no limit)")
	flag.Parse()

	if *romPath == "" {
		fmt.Fprintln(os.Stderr, "no ROM file specified")
		flag.Usage()
		os.Exit(1)
	}

	logger := log.New()
	if *verbose {
		logger = log.NewVerbose()
	}

	rom, err := utils.LoadFile(*romPath)
	if err != nil {
		logger.Errorf("failed to load ROM: %v", err)
		os.Exit(1)
	}

	opts := []gameboy.Opt{gameboy.WithLogger(logger)}
	if *debug {
		opts = append(opts, gameboy.Debug())
	}

	gb, err := gameboy.New(rom, opts...)
	if err != nil {
		logger.Errorf("failed to start: %v", err)
		os.Exit(1)
	}

	executed := gb.Run(*limit)

	c := gb.CPU
	logger.Infof("executed %d instructions", executed)
	logger.Infof("AF=%04X BC=%04X DE=%04X HL=%04X SP=%04X PC=%04X",
		c.AF.Uint16(), c.BC.Uint16(), c.DE.Uint16(), c.HL.Uint16(), c.SP, c.PC)
}
