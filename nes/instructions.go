package nes

// Opcode execute functions. Each returns whether it took a branch (the
// only case Step's StepResult cares about); every other opcode just
// returns false. Branch opcodes account for their own extra cycles
// directly against cpu.Cycles, since the taken/page-cross penalty
// isn't expressible through the table's single HonorsPenalty flag.

func opADC(cpu *CPU) bool {
	m := cpu.fetch()
	carry := uint16(0)
	if cpu.getFlag(FlagC) {
		carry = 1
	}
	sum := uint16(cpu.A) + uint16(m) + carry

	cpu.setFlag(FlagC, sum > 0xFF)
	result := byte(sum)
	cpu.setFlag(FlagV, (cpu.A^m)&0x80 == 0 && (cpu.A^result)&0x80 != 0)
	cpu.A = result
	cpu.setZN(cpu.A)

	return false
}

func opSBC(cpu *CPU) bool {
	m := cpu.fetch()
	inv := m ^ 0xFF
	carry := uint16(0)
	if cpu.getFlag(FlagC) {
		carry = 1
	}
	sum := uint16(cpu.A) + uint16(inv) + carry

	cpu.setFlag(FlagC, sum > 0xFF)
	result := byte(sum)
	cpu.setFlag(FlagV, (cpu.A^inv)&0x80 == 0 && (cpu.A^result)&0x80 != 0)
	cpu.A = result
	cpu.setZN(cpu.A)

	return false
}

func opAND(cpu *CPU) bool {
	cpu.A &= cpu.fetch()
	cpu.setZN(cpu.A)
	return false
}

func opEOR(cpu *CPU) bool {
	cpu.A ^= cpu.fetch()
	cpu.setZN(cpu.A)
	return false
}

func opORA(cpu *CPU) bool {
	cpu.A |= cpu.fetch()
	cpu.setZN(cpu.A)
	return false
}

func opASL(cpu *CPU) bool {
	v := cpu.fetch()
	cpu.setFlag(FlagC, v&0x80 != 0)
	result := v << 1
	cpu.storeResult(result)
	cpu.setZN(result)
	return false
}

func opLSR(cpu *CPU) bool {
	v := cpu.fetch()
	cpu.setFlag(FlagC, v&0x01 != 0)
	result := v >> 1
	cpu.storeResult(result)
	cpu.setZN(result)
	return false
}

func opROL(cpu *CPU) bool {
	v := cpu.fetch()
	oldCarry := byte(0)
	if cpu.getFlag(FlagC) {
		oldCarry = 1
	}
	cpu.setFlag(FlagC, v&0x80 != 0)
	result := (v << 1) | oldCarry
	cpu.storeResult(result)
	cpu.setZN(result)
	return false
}

func opROR(cpu *CPU) bool {
	v := cpu.fetch()
	oldCarry := byte(0)
	if cpu.getFlag(FlagC) {
		oldCarry = 0x80
	}
	cpu.setFlag(FlagC, v&0x01 != 0)
	result := (v >> 1) | oldCarry
	cpu.storeResult(result)
	cpu.setZN(result)
	return false
}

func branchIf(cpu *CPU, cond bool) bool {
	if !cond {
		return false
	}
	cpu.Cycles++
	target := uint16(int32(cpu.Pc) + int32(cpu.addrRel))
	if pageCrossed(cpu.Pc, target) {
		cpu.Cycles++
	}
	cpu.Pc = target
	return true
}

func opBCC(cpu *CPU) bool { return branchIf(cpu, !cpu.getFlag(FlagC)) }
func opBCS(cpu *CPU) bool { return branchIf(cpu, cpu.getFlag(FlagC)) }
func opBEQ(cpu *CPU) bool { return branchIf(cpu, cpu.getFlag(FlagZ)) }
func opBNE(cpu *CPU) bool { return branchIf(cpu, !cpu.getFlag(FlagZ)) }
func opBMI(cpu *CPU) bool { return branchIf(cpu, cpu.getFlag(FlagN)) }
func opBPL(cpu *CPU) bool { return branchIf(cpu, !cpu.getFlag(FlagN)) }
func opBVC(cpu *CPU) bool { return branchIf(cpu, !cpu.getFlag(FlagV)) }
func opBVS(cpu *CPU) bool { return branchIf(cpu, cpu.getFlag(FlagV)) }

func opBIT(cpu *CPU) bool {
	m := cpu.fetch()
	cpu.setFlag(FlagZ, cpu.A&m == 0)
	cpu.setFlag(FlagV, m&0x40 != 0)
	cpu.setFlag(FlagN, m&0x80 != 0)
	return false
}

// opBRK accounts for the padding byte the real 6502 always skips over
// after a BRK opcode: the pushed return address is the opcode's own
// address plus 2, one past the padding byte.
func opBRK(cpu *CPU) bool {
	cpu.Pc++
	cpu.pushAddr(cpu.Pc)
	cpu.stackPush(cpu.Status | byte(FlagB) | byte(FlagU))
	cpu.setFlag(FlagI, true)
	cpu.Pc = cpu.read16(irqVect)
	return false
}

func opRTI(cpu *CPU) bool {
	status := cpu.stackPop()
	cpu.Status = (status &^ byte(FlagB)) | byte(FlagU)
	cpu.Pc = cpu.popAddr()
	return false
}

// opJSR pushes the address of the JSR instruction's last operand byte
// (return address - 1); opRTS pops it and adds 1 back, the textbook
// 6502 convention.
func opJSR(cpu *CPU) bool {
	cpu.pushAddr(cpu.Pc - 1)
	cpu.Pc = cpu.addrAbs
	return false
}

func opRTS(cpu *CPU) bool {
	cpu.Pc = cpu.popAddr() + 1
	return false
}

func opJMP(cpu *CPU) bool {
	cpu.Pc = cpu.addrAbs
	return false
}

func opCMP(cpu *CPU) bool { compare(cpu, cpu.A, cpu.fetch()); return false }
func opCPX(cpu *CPU) bool { compare(cpu, cpu.X, cpu.fetch()); return false }
func opCPY(cpu *CPU) bool { compare(cpu, cpu.Y, cpu.fetch()); return false }

func compare(cpu *CPU, reg, m byte) {
	result := reg - m
	cpu.setFlag(FlagC, reg >= m)
	cpu.setZN(result)
}

func opDEC(cpu *CPU) bool {
	v := cpu.fetch() - 1
	cpu.storeResult(v)
	cpu.setZN(v)
	return false
}

func opINC(cpu *CPU) bool {
	v := cpu.fetch() + 1
	cpu.storeResult(v)
	cpu.setZN(v)
	return false
}

func opDEX(cpu *CPU) bool { cpu.X--; cpu.setZN(cpu.X); return false }
func opDEY(cpu *CPU) bool { cpu.Y--; cpu.setZN(cpu.Y); return false }
func opINX(cpu *CPU) bool { cpu.X++; cpu.setZN(cpu.X); return false }
func opINY(cpu *CPU) bool { cpu.Y++; cpu.setZN(cpu.Y); return false }

func opLDA(cpu *CPU) bool { cpu.A = cpu.fetch(); cpu.setZN(cpu.A); return false }
func opLDX(cpu *CPU) bool { cpu.X = cpu.fetch(); cpu.setZN(cpu.X); return false }
func opLDY(cpu *CPU) bool { cpu.Y = cpu.fetch(); cpu.setZN(cpu.Y); return false }

func opSTA(cpu *CPU) bool { cpu.write(cpu.addrAbs, cpu.A); return false }
func opSTX(cpu *CPU) bool { cpu.write(cpu.addrAbs, cpu.X); return false }
func opSTY(cpu *CPU) bool { cpu.write(cpu.addrAbs, cpu.Y); return false }

func opTAX(cpu *CPU) bool { cpu.X = cpu.A; cpu.setZN(cpu.X); return false }
func opTAY(cpu *CPU) bool { cpu.Y = cpu.A; cpu.setZN(cpu.Y); return false }
func opTXA(cpu *CPU) bool { cpu.A = cpu.X; cpu.setZN(cpu.A); return false }
func opTYA(cpu *CPU) bool { cpu.A = cpu.Y; cpu.setZN(cpu.A); return false }
func opTSX(cpu *CPU) bool { cpu.X = cpu.Sp; cpu.setZN(cpu.X); return false }
func opTXS(cpu *CPU) bool { cpu.Sp = cpu.X; return false }

func opPHA(cpu *CPU) bool { cpu.stackPush(cpu.A); return false }
func opPHP(cpu *CPU) bool {
	cpu.stackPush(cpu.Status | byte(FlagB) | byte(FlagU))
	return false
}
func opPLA(cpu *CPU) bool { cpu.A = cpu.stackPop(); cpu.setZN(cpu.A); return false }
func opPLP(cpu *CPU) bool {
	status := cpu.stackPop()
	cpu.Status = (status &^ byte(FlagB)) | byte(FlagU)
	return false
}

func opCLC(cpu *CPU) bool { cpu.setFlag(FlagC, false); return false }
func opCLD(cpu *CPU) bool { cpu.setFlag(FlagD, false); return false }
func opCLI(cpu *CPU) bool { cpu.setFlag(FlagI, false); return false }
func opCLV(cpu *CPU) bool { cpu.setFlag(FlagV, false); return false }
func opSEC(cpu *CPU) bool { cpu.setFlag(FlagC, true); return false }
func opSED(cpu *CPU) bool { cpu.setFlag(FlagD, true); return false }
func opSEI(cpu *CPU) bool { cpu.setFlag(FlagI, true); return false }

func opNOP(cpu *CPU) bool { return false }
