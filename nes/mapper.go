package nes

// Mapper translates a CPU or PPU address into an offset into the
// cartridge's PRG/CHR memory. Each function reports whether the given
// address was mapped by this cartridge at all.
type Mapper interface {
	cpuMapRead(addr uint16, mapped *uint16) bool
	cpuMapWrite(addr uint16, mapped *uint16) bool
	ppuMapRead(addr uint16, mapped *uint16) bool
	ppuMapWrite(addr uint16, mapped *uint16) bool
}
