package nes

import "fmt"

// TraceLine renders the current instruction in the nestest.log format:
//
//	C000  4C F5 C5  JMP $C5F5                       A:00 X:00 Y:00 P:24 SP:FD CYC:7
//
// grounded on the column layout nestest_runner.c's format_log_line uses
// and the A:/X:/Y:/P:/SP: field parsing jmchacon-6502's functionality
// test applies to the reference log.
func TraceLine(cpu *CPU) string {
	pc := cpu.Pc
	opcode := cpu.read(pc)
	inst := instructionTable[opcode]

	length := inst.Length
	if length == 0 {
		length = 1
	}

	var byteStr string
	switch length {
	case 1:
		byteStr = fmt.Sprintf("%02X      ", opcode)
	case 2:
		byteStr = fmt.Sprintf("%02X %02X   ", opcode, cpu.read(pc+1))
	case 3:
		byteStr = fmt.Sprintf("%02X %02X %02X", opcode, cpu.read(pc+1), cpu.read(pc+2))
	}

	// Disassemble's text is "$XXXX: MNEMONIC OPERAND"; strip the fixed
	// 7-char address prefix to recover "MNEMONIC OPERAND" for the trace
	// column nestest.log devotes to it.
	disasm, _ := Disassemble(pc, cpu.read)
	instText := disasm[7:]

	return fmt.Sprintf("%04X  %s  %-31s A:%02X X:%02X Y:%02X P:%02X SP:%02X CYC:%d",
		pc, byteStr, instText, cpu.A, cpu.X, cpu.Y, cpu.Status, cpu.Sp, cpu.Cycles)
}
