package nes

// PPU is a register-level stand-in for the 2C02: it answers the eight
// CPU-visible ports and walks a scanline/dot counter accurately enough
// to raise NMI at the right moment, but it never produces a pixel.
// Rendering, scrolling, and nametable addressing are a real PPU's own
// concern and are out of scope here.
type PPU struct {
	Cart *Cartridge

	ctrl   byte
	mask   byte
	status byte

	oam       objectAttributeMemory
	oamAddr   byte
	vramAddr  addrReg
	vramTmp   addrReg
	readBuf   byte
	scanline  int
	dot       int
	nmiLine   bool // current level of the NMI output line
	NMIEdge   bool // set on a 0->1 transition since the last check
}

// PPUCTRL bit flags (nesdev.org/wiki/PPU_registers).
const (
	ctrlNametableX    = 1 << 0
	ctrlNametableY    = 1 << 1
	ctrlVramIncrement = 1 << 2
	ctrlSpritePattern = 1 << 3
	ctrlBgPattern     = 1 << 4
	ctrlSpriteSize    = 1 << 5
	ctrlMasterSlave   = 1 << 6
	ctrlGenerateNMI   = 1 << 7
)

// PPUSTATUS bit flags.
const (
	statusSpriteOverflow = 1 << 5
	statusSprite0Hit     = 1 << 6
	statusVblank         = 1 << 7
)

const (
	regController = 0x0
	regMask       = 0x1
	regStatus     = 0x2
	regOamAddr    = 0x3
	regOamData    = 0x4
	regScroll     = 0x5
	regAddr       = 0x6
	regData       = 0x7
)

// addrReg models the PPUADDR/PPUSCROLL write-twice latch: the first
// write after a PPUSTATUS read lands in the high byte, the second in
// the low byte, grounded on the same idiom bdwalton-gintendo's ppu
// package uses for its loopy address registers.
type addrReg struct {
	hi, lo byte
	latch  bool // false selects hi (first write), true selects lo
}

func (a *addrReg) get() uint16            { return uint16(a.hi)<<8 | uint16(a.lo) }
func (a *addrReg) set(v uint16)           { a.hi, a.lo = byte(v>>8), byte(v) }
func (a *addrReg) reset()                 { a.latch = false }

func (a *addrReg) write8(v byte) {
	if a.latch {
		a.lo = v
	} else {
		a.hi = v
	}
	a.latch = !a.latch
}

func NewPPU() *PPU {
	return &PPU{oam: make(objectAttributeMemory, 64)}
}

func (p *PPU) ConnectCartridge(c *Cartridge) { p.Cart = c }

// ReadRegister answers a CPU read of one of the eight mirrored ports.
// addr has already been reduced to 0-7 by Bus.
func (p *PPU) ReadRegister(addr uint16) byte {
	switch addr {
	case regStatus:
		data := p.status
		p.status &^= statusVblank
		p.vramTmp.reset()
		return data
	case regOamData:
		return p.oam.read(p.oamAddr)
	case regData:
		data := p.readBuf
		p.readBuf = p.ppuRead(p.vramAddr.get())
		p.vramAddr.set(p.vramAddr.get() + p.vramIncrement())
		return data
	default:
		return 0
	}
}

func (p *PPU) WriteRegister(addr uint16, data byte) {
	switch addr {
	case regController:
		p.ctrl = data
	case regMask:
		p.mask = data
	case regOamAddr:
		p.oamAddr = data
	case regOamData:
		p.oam.write(p.oamAddr, data)
		p.oamAddr++
	case regScroll:
		p.vramTmp.write8(data)
	case regAddr:
		p.vramTmp.write8(data)
		p.vramAddr = p.vramTmp
	case regData:
		p.ppuWrite(p.vramAddr.get(), data)
		p.vramAddr.set(p.vramAddr.get() + p.vramIncrement())
	}
}

func (p *PPU) vramIncrement() uint16 {
	if p.ctrl&ctrlVramIncrement != 0 {
		return 32
	}
	return 1
}

// WriteOAM is the target of bus-driven OAM DMA (a write to $4014).
func (p *PPU) WriteOAM(addr, data byte) { p.oam.write(addr, data) }

func (p *PPU) ppuRead(addr uint16) byte {
	addr &= 0x3FFF
	if p.Cart != nil {
		var data byte
		if p.Cart.ppuRead(addr, &data) {
			return data
		}
	}
	return 0
}

func (p *PPU) ppuWrite(addr uint16, data byte) {
	addr &= 0x3FFF
	if p.Cart != nil {
		p.Cart.ppuWrite(addr, data)
	}
}

// Tick advances the scanline/dot counter by one PPU cycle; the host
// drives this three times per CPU cycle. It exists only to raise NMI
// at the documented moment and clear vblank at the pre-render line -
// no pixel is ever produced.
func (p *PPU) Tick() {
	p.dot++
	if p.dot > 340 {
		p.dot = 0
		p.scanline++
		if p.scanline > 260 {
			p.scanline = -1
		}
	}

	wasNmi := p.nmiLine

	switch {
	case p.scanline == 241 && p.dot == 1:
		p.status |= statusVblank
		p.nmiLine = p.ctrl&ctrlGenerateNMI != 0
	case p.scanline == -1 && p.dot == 1:
		p.status &^= statusVblank | statusSprite0Hit | statusSpriteOverflow
		p.nmiLine = false
	}

	if !wasNmi && p.nmiLine {
		p.NMIEdge = true
	}
}

// TakeNMI reports and clears a pending NMI edge, for the host's
// per-instruction interrupt check.
func (p *PPU) TakeNMI() bool {
	if !p.NMIEdge {
		return false
	}
	p.NMIEdge = false
	return true
}
