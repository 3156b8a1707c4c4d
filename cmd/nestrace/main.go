// Command nestrace runs a cartridge instruction-by-instruction and
// prints a nestest.log-style trace line per step, optionally diffing
// it against a reference log.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-test/deep"
	"github.com/sixtwofive/nes6502/nes"
	cli "gopkg.in/urfave/cli.v2"
)

const (
	nestestPC     uint16 = 0xC000
	nestestSP     byte   = 0xFD
	nestestStatus byte   = 0x24
)

func main() {
	app := &cli.App{
		Name:  "nestrace",
		Usage: "step a 6502 core through a cartridge and trace or diff its execution",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "compare", Usage: "reference log to compare against"},
			&cli.IntFlag{Name: "max", Usage: "stop after N instructions"},
			&cli.StringFlag{Name: "pc", Usage: "override start PC, as hex"},
			&cli.BoolFlag{Name: "nestest", Usage: "preset start PC=C000 SP=FD STATUS=24"},
			&cli.StringFlag{Name: "output", Usage: "write the trace to a file instead of stdout"},
			&cli.BoolFlag{Name: "quiet", Usage: "suppress per-line trace output"},
			&cli.BoolFlag{Name: "step", Usage: "pause for Enter after each instruction"},
		},
		Action: run,
	}
	sort.Sort(cli.FlagsByName(app.Flags))

	if err := app.Run(os.Args); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	romPath := c.Args().Get(0)
	if c.Bool("nestest") && romPath == "" {
		romPath = "nestest.nes"
	}
	if romPath == "" {
		return cli.Exit("nestrace: a ROM path is required", 1)
	}

	cart, err := nes.LoadCartridge(romPath)
	if err != nil {
		return cli.Exit(fmt.Sprintf("nestrace: %v", err), 1)
	}

	ppu := nes.NewPPU()
	bus := nes.NewBus(ppu)
	cpu := nes.NewCPU(bus)
	bus.InsertCartridge(cart)

	cpu.Reset()
	if c.Bool("nestest") {
		cpu.Pc = nestestPC
		cpu.Sp = nestestSP
		cpu.Status = nestestStatus
	}
	if pcFlag := c.String("pc"); pcFlag != "" {
		v, err := strconv.ParseUint(strings.TrimPrefix(pcFlag, "0x"), 16, 16)
		if err != nil {
			return cli.Exit(fmt.Sprintf("nestrace: bad --pc %q: %v", pcFlag, err), 1)
		}
		cpu.Pc = uint16(v)
	}

	out := os.Stdout
	if outPath := c.String("output"); outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return cli.Exit(fmt.Sprintf("nestrace: %v", err), 1)
		}
		defer f.Close()
		out = f
	}

	var refLines []string
	comparePath := c.String("compare")
	if c.Bool("nestest") && comparePath == "" {
		comparePath = "nestest.log"
	}
	if comparePath != "" {
		refLines, err = readLines(comparePath)
		if err != nil {
			return cli.Exit(fmt.Sprintf("nestrace: %v", err), 1)
		}
	}

	max := c.Int("max")
	quiet := c.Bool("quiet")
	step := c.Bool("step")
	stdin := bufio.NewReader(os.Stdin)

	defer nes.TimeTrack(time.Now())

	i := 0
	for {
		if max > 0 && i >= max {
			break
		}
		if refLines != nil && i >= len(refLines) {
			break
		}

		line := nes.TraceLine(cpu)

		if refLines != nil {
			if diff := deep.Equal(line, refLines[i]); diff != nil {
				fmt.Fprintf(out, "MISMATCH at line %d:\n  got:  %s\n  want: %s\n", i+1, line, refLines[i])
				return cli.Exit("nestrace: trace diverged from reference log", 1)
			}
		}

		if !quiet {
			fmt.Fprintln(out, line)
		}

		result := cpu.Step()
		if result.Halted {
			fmt.Fprintf(out, "halted: %v\n", result.Err)
			return cli.Exit("nestrace: core halted on illegal opcode", 1)
		}

		i++

		if step {
			fmt.Fprint(out, "-- press Enter to continue --")
			stdin.ReadString('\n')
		}
	}

	return nil
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}
