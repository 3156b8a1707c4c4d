package nes

import "fmt"

// CPU implements the MOS 6502 execution engine: registers, status flags,
// and the fetch/address-resolve/execute/cycle-account loop described by
// the instruction table and addressing-mode functions in this package.
type CPU struct {
	A      byte   // Accumulator
	X, Y   byte   // Index registers
	Sp     byte   // Stack pointer; the stack lives at 0x0100+Sp
	Pc     uint16 // Program counter
	Status byte   // Processor status flags

	Cycles uint64 // Monotonic count of elapsed CPU cycles since reset

	bus *Bus

	// Per-instruction scratch. These fields are conceptually local to a
	// single Step call; nothing outside Step/fetch/execute should read
	// them across instructions.
	addrAbs             uint16
	addrRel             int8
	fetched             byte
	pageCrossed         bool
	isAccumulatorTarget bool

	opcode byte

	// Halted is set once an illegal opcode is hit, per the "propagate a
	// halted signal" policy documented in DESIGN.md. Once true, Step is
	// a no-op that returns the same StepResult again.
	Halted bool
	haltOn byte
}

const (
	stackBase  uint16 = 0x0100
	resetVect  uint16 = 0xFFFC
	irqVect    uint16 = 0xFFFE
	nmiVect    uint16 = 0xFFFA
)

// Status flag bits, LSB first: C Z I D B U V N.
type StatusFlag byte

const (
	FlagC StatusFlag = 1 << iota // Carry
	FlagZ                        // Zero
	FlagI                        // Interrupt disable
	FlagD                        // Decimal (settable, never affects arithmetic)
	FlagB                        // Break
	FlagU                        // Unused, always reads 1
	FlagV                        // Overflow
	FlagN                        // Negative
)

func NewCPU(bus *Bus) *CPU {
	cpu := &CPU{bus: bus}
	bus.Cpu = cpu
	return cpu
}

func (cpu *CPU) getFlag(f StatusFlag) bool {
	return cpu.Status&byte(f) != 0
}

func (cpu *CPU) setFlag(f StatusFlag, v bool) {
	if v {
		cpu.Status |= byte(f)
	} else {
		cpu.Status &^= byte(f)
	}
}

func (cpu *CPU) setZN(v byte) {
	cpu.setFlag(FlagZ, v == 0)
	cpu.setFlag(FlagN, v&0x80 != 0)
}

func (cpu *CPU) read(addr uint16) byte     { return cpu.bus.Read(addr) }
func (cpu *CPU) write(addr uint16, v byte) { cpu.bus.Write(addr, v) }
func (cpu *CPU) read16(addr uint16) uint16 { return cpu.bus.Read16(addr) }

// fetch loads the operand an instruction will act on. Accumulator mode
// already placed it in cpu.fetched during Fetch; every other mode reads
// it from the effective address the addressing function computed.
func (cpu *CPU) fetch() byte {
	if !cpu.isAccumulatorTarget {
		cpu.fetched = cpu.read(cpu.addrAbs)
	}
	return cpu.fetched
}

// storeResult writes an RMW instruction's result back to the
// accumulator or to the effective address, matching whichever one
// Fetch resolved to.
func (cpu *CPU) storeResult(v byte) {
	if cpu.isAccumulatorTarget {
		cpu.A = v
	} else {
		cpu.write(cpu.addrAbs, v)
	}
}

func (cpu *CPU) stackPush(v byte) {
	cpu.write(stackBase+uint16(cpu.Sp), v)
	cpu.Sp--
}

func (cpu *CPU) stackPop() byte {
	cpu.Sp++
	return cpu.read(stackBase + uint16(cpu.Sp))
}

func (cpu *CPU) pushAddr(addr uint16) {
	cpu.stackPush(byte(addr >> 8))
	cpu.stackPush(byte(addr))
}

func (cpu *CPU) popAddr() uint16 {
	lo := uint16(cpu.stackPop())
	hi := uint16(cpu.stackPop())
	return hi<<8 | lo
}

// Reset puts the CPU into its documented power-up state and consumes 7
// cycles.
func (cpu *CPU) Reset() {
	cpu.A, cpu.X, cpu.Y = 0, 0, 0
	cpu.Sp = 0xFD
	cpu.Status = byte(FlagU) | byte(FlagI)
	cpu.Pc = cpu.read16(resetVect)
	cpu.Cycles += 7
	cpu.Halted = false
}

// IRQ requests a maskable interrupt; a no-op if the interrupt-disable
// flag is set.
func (cpu *CPU) IRQ() {
	if cpu.getFlag(FlagI) {
		return
	}
	cpu.pushAddr(cpu.Pc)
	cpu.stackPush((cpu.Status | byte(FlagU)) &^ byte(FlagB))
	cpu.setFlag(FlagI, true)
	cpu.Pc = cpu.read16(irqVect)
	cpu.Cycles += 7
}

// NMI requests a non-maskable interrupt; always serviced.
func (cpu *CPU) NMI() {
	cpu.pushAddr(cpu.Pc)
	cpu.stackPush((cpu.Status | byte(FlagU)) &^ byte(FlagB))
	cpu.setFlag(FlagI, true)
	cpu.Pc = cpu.read16(nmiVect)
	cpu.Cycles += 7
}

// StepResult reports what a single Step call did.
type StepResult struct {
	Opcode        byte
	Mnemonic      string
	PC            uint16 // PC before execution (for tracing)
	CyclesBefore  uint64
	CyclesSpent   int
	BranchTaken   bool
	Halted        bool
	Err           error
}

// Step executes exactly one instruction to completion and returns.
func (cpu *CPU) Step() StepResult {
	if cpu.Halted {
		return StepResult{Opcode: cpu.haltOn, PC: cpu.Pc, CyclesBefore: cpu.Cycles, Halted: true, Err: fmt.Errorf("illegal opcode 0x%02X", cpu.haltOn)}
	}

	startPC := cpu.Pc
	cyclesBefore := cpu.Cycles

	cpu.addrAbs = 0
	cpu.addrRel = 0
	cpu.fetched = 0
	cpu.pageCrossed = false
	cpu.isAccumulatorTarget = false

	cpu.opcode = cpu.read(cpu.Pc)
	inst := instructionTable[cpu.opcode]

	if inst.Length == 0 {
		cpu.Halted = true
		cpu.haltOn = cpu.opcode
		return StepResult{Opcode: cpu.opcode, PC: startPC, CyclesBefore: cyclesBefore, Halted: true, Err: fmt.Errorf("illegal opcode 0x%02X", cpu.opcode)}
	}

	cpu.Pc++

	// Every addressing-mode fetch function advances Pc past its own
	// operand bytes, so Pc already points at the fall-through address
	// once Fetch returns; Execute only needs to override it for
	// jumps, branches, RTS/RTI/JSR and BRK.
	inst.Fetch(cpu)
	branchTaken := inst.Execute(cpu)

	cycles := int(inst.BaseCycles)
	if inst.HonorsPenalty && cpu.pageCrossed {
		cycles++
	}
	cpu.Cycles += uint64(cycles)

	if dmaCycles := cpu.bus.ServiceDMA(); dmaCycles > 0 {
		cpu.Cycles += uint64(dmaCycles)
	}

	// The PPU runs three dots per CPU cycle; walk it forward by
	// whatever this Step just spent before checking whether it raised
	// an NMI edge for the next instruction to service.
	for i := uint64(0); i < cpu.Cycles-cyclesBefore; i++ {
		cpu.bus.Ppu.Tick()
		cpu.bus.Ppu.Tick()
		cpu.bus.Ppu.Tick()
	}
	if cpu.bus.Ppu.TakeNMI() {
		cpu.NMI()
	}

	// branchIf (for taken branches) adds its own taken/page-cross
	// cycles straight to cpu.Cycles during Execute, above and beyond
	// BaseCycles; diff against cyclesBefore rather than the local
	// cycles tally so CyclesSpent reflects everything Execute did.
	return StepResult{
		Opcode:       cpu.opcode,
		Mnemonic:     inst.Mnemonic,
		PC:           startPC,
		CyclesBefore: cyclesBefore,
		CyclesSpent:  int(cpu.Cycles - cyclesBefore),
		BranchTaken:  branchTaken,
	}
}

func pageCrossed(a, b uint16) bool {
	return a&0xFF00 != b&0xFF00
}
