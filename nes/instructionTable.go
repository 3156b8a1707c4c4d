package nes

// instruction describes one opcode's addressing mode, cycle cost, and
// semantics. Fetch resolves the operand's effective address (and
// advances Pc past it); Execute performs the opcode and reports
// whether it branched. HonorsPenalty marks addressing modes that add a
// cycle on a page cross for *read* access — store and read-modify-write
// opcodes never honor it, matching real hardware (DESIGN.md).
type instruction struct {
	Mnemonic      string
	Fetch         func(*CPU)
	Execute       func(*CPU) bool
	Mode          string // addressing-mode tag, for disassembly/trace output only
	Length        byte
	BaseCycles    byte
	HonorsPenalty bool
}

// instructionTable is built once at package init time; entries are
// placed by opcode byte, left as the zero value (Length 0) for every
// byte the documented 6502 instruction set doesn't define. Step treats
// a zero Length as an illegal opcode.
var instructionTable [256]instruction

func init() {
	set := func(op byte, mnemonic string, fetch func(*CPU), execute func(*CPU) bool, mode string, length, cycles byte, honorsPenalty bool) {
		instructionTable[op] = instruction{
			Mnemonic:      mnemonic,
			Fetch:         fetch,
			Execute:       execute,
			Mode:          mode,
			Length:        length,
			BaseCycles:    cycles,
			HonorsPenalty: honorsPenalty,
		}
	}

	// ADC
	set(0x69, "ADC", amIMM, opADC, "IMM", 2, 2, false)
	set(0x65, "ADC", amZP0, opADC, "ZP0", 2, 3, false)
	set(0x75, "ADC", amZPX, opADC, "ZPX", 2, 4, false)
	set(0x6D, "ADC", amABS, opADC, "ABS", 3, 4, false)
	set(0x7D, "ADC", amABX, opADC, "ABX", 3, 4, true)
	set(0x79, "ADC", amABY, opADC, "ABY", 3, 4, true)
	set(0x61, "ADC", amIZX, opADC, "IZX", 2, 6, false)
	set(0x71, "ADC", amIZY, opADC, "IZY", 2, 5, true)

	// AND
	set(0x29, "AND", amIMM, opAND, "IMM", 2, 2, false)
	set(0x25, "AND", amZP0, opAND, "ZP0", 2, 3, false)
	set(0x35, "AND", amZPX, opAND, "ZPX", 2, 4, false)
	set(0x2D, "AND", amABS, opAND, "ABS", 3, 4, false)
	set(0x3D, "AND", amABX, opAND, "ABX", 3, 4, true)
	set(0x39, "AND", amABY, opAND, "ABY", 3, 4, true)
	set(0x21, "AND", amIZX, opAND, "IZX", 2, 6, false)
	set(0x31, "AND", amIZY, opAND, "IZY", 2, 5, true)

	// ASL
	set(0x0A, "ASL", amACC, opASL, "ACC", 1, 2, false)
	set(0x06, "ASL", amZP0, opASL, "ZP0", 2, 5, false)
	set(0x16, "ASL", amZPX, opASL, "ZPX", 2, 6, false)
	set(0x0E, "ASL", amABS, opASL, "ABS", 3, 6, false)
	set(0x1E, "ASL", amABX, opASL, "ABX", 3, 7, false)

	// Branches
	set(0x90, "BCC", amREL, opBCC, "REL", 2, 2, false)
	set(0xB0, "BCS", amREL, opBCS, "REL", 2, 2, false)
	set(0xF0, "BEQ", amREL, opBEQ, "REL", 2, 2, false)
	set(0x30, "BMI", amREL, opBMI, "REL", 2, 2, false)
	set(0xD0, "BNE", amREL, opBNE, "REL", 2, 2, false)
	set(0x10, "BPL", amREL, opBPL, "REL", 2, 2, false)
	set(0x50, "BVC", amREL, opBVC, "REL", 2, 2, false)
	set(0x70, "BVS", amREL, opBVS, "REL", 2, 2, false)

	// BIT
	set(0x24, "BIT", amZP0, opBIT, "ZP0", 2, 3, false)
	set(0x2C, "BIT", amABS, opBIT, "ABS", 3, 4, false)

	// BRK
	set(0x00, "BRK", amIMP, opBRK, "IMP", 2, 7, false)

	// Clear/set flags
	set(0x18, "CLC", amIMP, opCLC, "IMP", 1, 2, false)
	set(0xD8, "CLD", amIMP, opCLD, "IMP", 1, 2, false)
	set(0x58, "CLI", amIMP, opCLI, "IMP", 1, 2, false)
	set(0xB8, "CLV", amIMP, opCLV, "IMP", 1, 2, false)
	set(0x38, "SEC", amIMP, opSEC, "IMP", 1, 2, false)
	set(0xF8, "SED", amIMP, opSED, "IMP", 1, 2, false)
	set(0x78, "SEI", amIMP, opSEI, "IMP", 1, 2, false)

	// CMP/CPX/CPY
	set(0xC9, "CMP", amIMM, opCMP, "IMM", 2, 2, false)
	set(0xC5, "CMP", amZP0, opCMP, "ZP0", 2, 3, false)
	set(0xD5, "CMP", amZPX, opCMP, "ZPX", 2, 4, false)
	set(0xCD, "CMP", amABS, opCMP, "ABS", 3, 4, false)
	set(0xDD, "CMP", amABX, opCMP, "ABX", 3, 4, true)
	set(0xD9, "CMP", amABY, opCMP, "ABY", 3, 4, true)
	set(0xC1, "CMP", amIZX, opCMP, "IZX", 2, 6, false)
	set(0xD1, "CMP", amIZY, opCMP, "IZY", 2, 5, true)
	set(0xE0, "CPX", amIMM, opCPX, "IMM", 2, 2, false)
	set(0xE4, "CPX", amZP0, opCPX, "ZP0", 2, 3, false)
	set(0xEC, "CPX", amABS, opCPX, "ABS", 3, 4, false)
	set(0xC0, "CPY", amIMM, opCPY, "IMM", 2, 2, false)
	set(0xC4, "CPY", amZP0, opCPY, "ZP0", 2, 3, false)
	set(0xCC, "CPY", amABS, opCPY, "ABS", 3, 4, false)

	// DEC/DEX/DEY
	set(0xC6, "DEC", amZP0, opDEC, "ZP0", 2, 5, false)
	set(0xD6, "DEC", amZPX, opDEC, "ZPX", 2, 6, false)
	set(0xCE, "DEC", amABS, opDEC, "ABS", 3, 6, false)
	set(0xDE, "DEC", amABX, opDEC, "ABX", 3, 7, false)
	set(0xCA, "DEX", amIMP, opDEX, "IMP", 1, 2, false)
	set(0x88, "DEY", amIMP, opDEY, "IMP", 1, 2, false)

	// EOR
	set(0x49, "EOR", amIMM, opEOR, "IMM", 2, 2, false)
	set(0x45, "EOR", amZP0, opEOR, "ZP0", 2, 3, false)
	set(0x55, "EOR", amZPX, opEOR, "ZPX", 2, 4, false)
	set(0x4D, "EOR", amABS, opEOR, "ABS", 3, 4, false)
	set(0x5D, "EOR", amABX, opEOR, "ABX", 3, 4, true)
	set(0x59, "EOR", amABY, opEOR, "ABY", 3, 4, true)
	set(0x41, "EOR", amIZX, opEOR, "IZX", 2, 6, false)
	set(0x51, "EOR", amIZY, opEOR, "IZY", 2, 5, true)

	// INC/INX/INY
	set(0xE6, "INC", amZP0, opINC, "ZP0", 2, 5, false)
	set(0xF6, "INC", amZPX, opINC, "ZPX", 2, 6, false)
	set(0xEE, "INC", amABS, opINC, "ABS", 3, 6, false)
	set(0xFE, "INC", amABX, opINC, "ABX", 3, 7, false)
	set(0xE8, "INX", amIMP, opINX, "IMP", 1, 2, false)
	set(0xC8, "INY", amIMP, opINY, "IMP", 1, 2, false)

	// JMP/JSR
	set(0x4C, "JMP", amABS, opJMP, "ABS", 3, 3, false)
	set(0x6C, "JMP", amIND, opJMP, "IND", 3, 5, false)
	set(0x20, "JSR", amABS, opJSR, "ABS", 3, 6, false)

	// Loads
	set(0xA9, "LDA", amIMM, opLDA, "IMM", 2, 2, false)
	set(0xA5, "LDA", amZP0, opLDA, "ZP0", 2, 3, false)
	set(0xB5, "LDA", amZPX, opLDA, "ZPX", 2, 4, false)
	set(0xAD, "LDA", amABS, opLDA, "ABS", 3, 4, false)
	set(0xBD, "LDA", amABX, opLDA, "ABX", 3, 4, true)
	set(0xB9, "LDA", amABY, opLDA, "ABY", 3, 4, true)
	set(0xA1, "LDA", amIZX, opLDA, "IZX", 2, 6, false)
	set(0xB1, "LDA", amIZY, opLDA, "IZY", 2, 5, true)
	set(0xA2, "LDX", amIMM, opLDX, "IMM", 2, 2, false)
	set(0xA6, "LDX", amZP0, opLDX, "ZP0", 2, 3, false)
	set(0xB6, "LDX", amZPY, opLDX, "ZPY", 2, 4, false)
	set(0xAE, "LDX", amABS, opLDX, "ABS", 3, 4, false)
	set(0xBE, "LDX", amABY, opLDX, "ABY", 3, 4, true)
	set(0xA0, "LDY", amIMM, opLDY, "IMM", 2, 2, false)
	set(0xA4, "LDY", amZP0, opLDY, "ZP0", 2, 3, false)
	set(0xB4, "LDY", amZPX, opLDY, "ZPX", 2, 4, false)
	set(0xAC, "LDY", amABS, opLDY, "ABS", 3, 4, false)
	set(0xBC, "LDY", amABX, opLDY, "ABX", 3, 4, true)

	// LSR
	set(0x4A, "LSR", amACC, opLSR, "ACC", 1, 2, false)
	set(0x46, "LSR", amZP0, opLSR, "ZP0", 2, 5, false)
	set(0x56, "LSR", amZPX, opLSR, "ZPX", 2, 6, false)
	set(0x4E, "LSR", amABS, opLSR, "ABS", 3, 6, false)
	set(0x5E, "LSR", amABX, opLSR, "ABX", 3, 7, false)

	// NOP
	set(0xEA, "NOP", amIMP, opNOP, "IMP", 1, 2, false)

	// ORA
	set(0x09, "ORA", amIMM, opORA, "IMM", 2, 2, false)
	set(0x05, "ORA", amZP0, opORA, "ZP0", 2, 3, false)
	set(0x15, "ORA", amZPX, opORA, "ZPX", 2, 4, false)
	set(0x0D, "ORA", amABS, opORA, "ABS", 3, 4, false)
	set(0x1D, "ORA", amABX, opORA, "ABX", 3, 4, true)
	set(0x19, "ORA", amABY, opORA, "ABY", 3, 4, true)
	set(0x01, "ORA", amIZX, opORA, "IZX", 2, 6, false)
	set(0x11, "ORA", amIZY, opORA, "IZY", 2, 5, true)

	// Stack ops
	set(0x48, "PHA", amIMP, opPHA, "IMP", 1, 3, false)
	set(0x08, "PHP", amIMP, opPHP, "IMP", 1, 3, false)
	set(0x68, "PLA", amIMP, opPLA, "IMP", 1, 4, false)
	set(0x28, "PLP", amIMP, opPLP, "IMP", 1, 4, false)

	// ROL/ROR
	set(0x2A, "ROL", amACC, opROL, "ACC", 1, 2, false)
	set(0x26, "ROL", amZP0, opROL, "ZP0", 2, 5, false)
	set(0x36, "ROL", amZPX, opROL, "ZPX", 2, 6, false)
	set(0x2E, "ROL", amABS, opROL, "ABS", 3, 6, false)
	set(0x3E, "ROL", amABX, opROL, "ABX", 3, 7, false)
	set(0x6A, "ROR", amACC, opROR, "ACC", 1, 2, false)
	set(0x66, "ROR", amZP0, opROR, "ZP0", 2, 5, false)
	set(0x76, "ROR", amZPX, opROR, "ZPX", 2, 6, false)
	set(0x6E, "ROR", amABS, opROR, "ABS", 3, 6, false)
	set(0x7E, "ROR", amABX, opROR, "ABX", 3, 7, false)

	// RTI/RTS
	set(0x40, "RTI", amIMP, opRTI, "IMP", 1, 6, false)
	set(0x60, "RTS", amIMP, opRTS, "IMP", 1, 6, false)

	// SBC
	set(0xE9, "SBC", amIMM, opSBC, "IMM", 2, 2, false)
	set(0xE5, "SBC", amZP0, opSBC, "ZP0", 2, 3, false)
	set(0xF5, "SBC", amZPX, opSBC, "ZPX", 2, 4, false)
	set(0xED, "SBC", amABS, opSBC, "ABS", 3, 4, false)
	set(0xFD, "SBC", amABX, opSBC, "ABX", 3, 4, true)
	set(0xF9, "SBC", amABY, opSBC, "ABY", 3, 4, true)
	set(0xE1, "SBC", amIZX, opSBC, "IZX", 2, 6, false)
	set(0xF1, "SBC", amIZY, opSBC, "IZY", 2, 5, true)

	// Stores
	set(0x85, "STA", amZP0, opSTA, "ZP0", 2, 3, false)
	set(0x95, "STA", amZPX, opSTA, "ZPX", 2, 4, false)
	set(0x8D, "STA", amABS, opSTA, "ABS", 3, 4, false)
	set(0x9D, "STA", amABX, opSTA, "ABX", 3, 5, false)
	set(0x99, "STA", amABY, opSTA, "ABY", 3, 5, false)
	set(0x81, "STA", amIZX, opSTA, "IZX", 2, 6, false)
	set(0x91, "STA", amIZY, opSTA, "IZY", 2, 6, false)
	set(0x86, "STX", amZP0, opSTX, "ZP0", 2, 3, false)
	set(0x96, "STX", amZPY, opSTX, "ZPY", 2, 4, false)
	set(0x8E, "STX", amABS, opSTX, "ABS", 3, 4, false)
	set(0x84, "STY", amZP0, opSTY, "ZP0", 2, 3, false)
	set(0x94, "STY", amZPX, opSTY, "ZPX", 2, 4, false)
	set(0x8C, "STY", amABS, opSTY, "ABS", 3, 4, false)

	// Transfers
	set(0xAA, "TAX", amIMP, opTAX, "IMP", 1, 2, false)
	set(0xA8, "TAY", amIMP, opTAY, "IMP", 1, 2, false)
	set(0xBA, "TSX", amIMP, opTSX, "IMP", 1, 2, false)
	set(0x8A, "TXA", amIMP, opTXA, "IMP", 1, 2, false)
	set(0x9A, "TXS", amIMP, opTXS, "IMP", 1, 2, false)
	set(0x98, "TYA", amIMP, opTYA, "IMP", 1, 2, false)
}
