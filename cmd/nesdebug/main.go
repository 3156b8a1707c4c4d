// Command nesdebug opens an interactive terminal debugger over a
// cartridge: register/flag panel, memory page view, and single-step
// control, driven entirely off the core's public Step/read surface.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sixtwofive/nes6502/nes"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: nesdebug <rom.nes>")
		os.Exit(1)
	}

	cart, err := nes.LoadCartridge(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, "nesdebug:", err)
		os.Exit(1)
	}

	ppu := nes.NewPPU()
	bus := nes.NewBus(ppu)
	cpu := nes.NewCPU(bus)
	bus.InsertCartridge(cart)
	cpu.Reset()

	if _, err := tea.NewProgram(nes.NewDebugger(cpu)).Run(); err != nil {
		fmt.Fprintln(os.Stderr, "nesdebug:", err)
		os.Exit(1)
	}
}
