package nes

// Addressing-mode fetch functions. Each operand-consuming mode sets
// cpu.addrAbs (or, for REL, cpu.addrRel) and advances cpu.Pc past the
// operand bytes, so Pc always points at the next instruction's opcode
// once Fetch returns control to Step. IMP consumes nothing and sets
// nothing; ACC marks isAccumulatorTarget and copies A into cpu.fetched
// so the opcode body knows not to touch the bus.

func amIMP(cpu *CPU) {}

func amACC(cpu *CPU) {
	cpu.isAccumulatorTarget = true
	cpu.fetched = cpu.A
}

func amIMM(cpu *CPU) {
	cpu.addrAbs = cpu.Pc
	cpu.Pc++
}

func amZP0(cpu *CPU) {
	cpu.addrAbs = uint16(cpu.read(cpu.Pc))
	cpu.Pc++
}

func amZPX(cpu *CPU) {
	cpu.addrAbs = uint16(cpu.read(cpu.Pc)+cpu.X) & 0x00FF
	cpu.Pc++
}

func amZPY(cpu *CPU) {
	cpu.addrAbs = uint16(cpu.read(cpu.Pc)+cpu.Y) & 0x00FF
	cpu.Pc++
}

// amREL computes the signed branch displacement. The target address
// itself isn't known until the opcode decides whether to branch, since
// it's relative to the PC *after* the two-byte branch instruction.
func amREL(cpu *CPU) {
	offset := cpu.read(cpu.Pc)
	cpu.Pc++
	cpu.addrRel = int8(offset)
}

func amABS(cpu *CPU) {
	cpu.addrAbs = cpu.read16(cpu.Pc)
	cpu.Pc += 2
}

// amABX is absolute,X. Store and read-modify-write opcodes never see
// the page-cross penalty this sets (DESIGN.md), but the flag is
// computed unconditionally here since Fetch can't see which opcode
// it's serving.
func amABX(cpu *CPU) {
	base := cpu.read16(cpu.Pc)
	cpu.Pc += 2
	cpu.addrAbs = base + uint16(cpu.X)
	cpu.pageCrossed = pageCrossed(base, cpu.addrAbs)
}

func amABY(cpu *CPU) {
	base := cpu.read16(cpu.Pc)
	cpu.Pc += 2
	cpu.addrAbs = base + uint16(cpu.Y)
	cpu.pageCrossed = pageCrossed(base, cpu.addrAbs)
}

// amIND reproduces the JMP-indirect page-wrap hardware bug: if the
// pointer's low byte is 0xFF, the high byte of the target is fetched
// from the start of the same page rather than the next page.
func amIND(cpu *CPU) {
	ptr := cpu.read16(cpu.Pc)
	cpu.Pc += 2

	lo := cpu.read(ptr)
	var hiAddr uint16
	if ptr&0x00FF == 0x00FF {
		hiAddr = ptr & 0xFF00
	} else {
		hiAddr = ptr + 1
	}
	hi := cpu.read(hiAddr)

	cpu.addrAbs = uint16(hi)<<8 | uint16(lo)
}

// amIZX is (indirect,X): the zero-page pointer is indexed by X before
// the two-byte dereference, which itself always wraps within page zero.
func amIZX(cpu *CPU) {
	zp := (cpu.read(cpu.Pc) + cpu.X) & 0xFF
	cpu.Pc++

	lo := cpu.read(uint16(zp))
	hi := cpu.read(uint16(zp+1) & 0xFF)
	cpu.addrAbs = uint16(hi)<<8 | uint16(lo)
}

// amIZY is (indirect),Y: the zero-page pointer is dereferenced first
// (wrapping within page zero), then Y is added to the 16-bit result.
func amIZY(cpu *CPU) {
	zp := cpu.read(cpu.Pc)
	cpu.Pc++

	lo := cpu.read(uint16(zp))
	hi := cpu.read(uint16(zp+1) & 0xFF)
	base := uint16(hi)<<8 | uint16(lo)

	cpu.addrAbs = base + uint16(cpu.Y)
	cpu.pageCrossed = pageCrossed(base, cpu.addrAbs)
}
