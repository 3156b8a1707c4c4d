package nes

import "fmt"

// Disassemble renders the single instruction at pc using read to fetch
// its opcode and operand bytes, returning the text and the address of
// the instruction that follows. Illegal opcodes disassemble as "???".
//
// Driven directly off instructionTable rather than a parallel
// addressing-mode switch, so a new opcode only needs a table entry.
func Disassemble(pc uint16, read func(uint16) byte) (string, uint16) {
	opcode := read(pc)
	inst := instructionTable[opcode]

	if inst.Length == 0 {
		return fmt.Sprintf("$%04X: ??? (%02X)", pc, opcode), pc + 1
	}

	operandAddr := pc + 1
	var operand string

	switch inst.Mode {
	case "IMP", "ACC":
		operand = ""
	case "IMM":
		operand = fmt.Sprintf("#$%02X", read(operandAddr))
	case "ZP0":
		operand = fmt.Sprintf("$%02X", read(operandAddr))
	case "ZPX":
		operand = fmt.Sprintf("$%02X,X", read(operandAddr))
	case "ZPY":
		operand = fmt.Sprintf("$%02X,Y", read(operandAddr))
	case "REL":
		offset := int8(read(operandAddr))
		target := uint16(int32(pc) + 2 + int32(offset))
		operand = fmt.Sprintf("$%04X", target)
	case "ABS":
		operand = fmt.Sprintf("$%04X", word(read, operandAddr))
	case "ABX":
		operand = fmt.Sprintf("$%04X,X", word(read, operandAddr))
	case "ABY":
		operand = fmt.Sprintf("$%04X,Y", word(read, operandAddr))
	case "IND":
		operand = fmt.Sprintf("($%04X)", word(read, operandAddr))
	case "IZX":
		operand = fmt.Sprintf("($%02X,X)", read(operandAddr))
	case "IZY":
		operand = fmt.Sprintf("($%02X),Y", read(operandAddr))
	}

	text := inst.Mnemonic
	if operand != "" {
		text += " " + operand
	}

	return fmt.Sprintf("$%04X: %s", pc, text), pc + uint16(inst.Length)
}

func word(read func(uint16) byte, addr uint16) uint16 {
	return uint16(read(addr)) | uint16(read(addr+1))<<8
}
