package nes

import (
	"bytes"
	"encoding/binary"
	"io"
	"os"

	"github.com/pkg/errors"
)

// Cartridge holds a loaded iNES image's program and character memory,
// connected to both the CPU bus and the PPU bus through its mapper.
type Cartridge struct {
	prgMem []byte
	chrMem []byte

	mapper Mapper
}

// CartridgeHeader is the 16-byte iNES header.
// reference: https://wiki.nesdev.com/w/index.php/INES
type CartridgeHeader struct {
	Name         [4]byte // "NES" followed by MS-DOS end of file
	PrgRomChunks byte    // Program memory size in 16KB chunks
	ChrRomChunks byte    // Character memory size in 8KB chunks
	Mapper1      byte    // Flags 6
	Mapper2      byte    // Flags 7
	PrgRamSize   byte    // Flags 8
	TvSystem1    byte    // Flags 9
	TvSystem2    byte    // Flags 10
	Unused       [5]byte // Unused padding
}

var inesMagic = [4]byte{'N', 'E', 'S', 0x1A}

const trainerSize = 512

// LoadCartridge reads an iNES image from disk and builds a Cartridge
// around it. Any load-time failure - a bad magic, a truncated PRG/CHR
// region, an unsupported mapper - comes back as a wrapped error; the
// CPU is never constructed when this returns a non-nil error.
func LoadCartridge(path string) (*Cartridge, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	return parseCartridge(data)
}

func parseCartridge(data []byte) (*Cartridge, error) {
	if len(data) < 16 {
		return nil, errors.New("ines: file shorter than a header")
	}

	buf := bytes.NewReader(data)

	header := new(CartridgeHeader)
	if err := binary.Read(buf, binary.BigEndian, header); err != nil {
		return nil, errors.Wrap(err, "ines: reading header")
	}
	if header.Name != inesMagic {
		return nil, errors.Errorf("ines: bad magic bytes %v", header.Name)
	}

	if header.Mapper1&0x04 != 0 {
		if _, err := buf.Seek(trainerSize, 1); err != nil {
			return nil, errors.Wrap(err, "ines: skipping trainer")
		}
	}

	mapperLo := header.Mapper1 >> 4
	mapperHi := header.Mapper2 >> 4
	mapperID := (mapperHi << 4) | mapperLo

	cart := &Cartridge{}

	switch mapperID {
	case 0:
		cart.mapper = NewMapper000(header.PrgRomChunks, header.ChrRomChunks)
	default:
		return nil, errors.Errorf("ines: unsupported mapper %d", mapperID)
	}

	cart.prgMem = make([]byte, 16*1024*int(header.PrgRomChunks))
	if _, err := io.ReadFull(buf, cart.prgMem); err != nil {
		return nil, errors.Wrap(err, "ines: reading PRG ROM")
	}

	cart.chrMem = make([]byte, 8*1024*int(header.ChrRomChunks))
	if _, err := io.ReadFull(buf, cart.chrMem); err != nil {
		return nil, errors.Wrap(err, "ines: reading CHR ROM")
	}

	return cart, nil
}

func (c *Cartridge) cpuRead(addr uint16, data *byte) bool {
	var mappedAddr uint16
	if c.mapper.cpuMapRead(addr, &mappedAddr) {
		*data = c.prgMem[mappedAddr]
		return true
	}
	return false
}

func (c *Cartridge) cpuWrite(addr uint16, data byte) bool {
	var mappedAddr uint16
	if c.mapper.cpuMapWrite(addr, &mappedAddr) {
		c.prgMem[mappedAddr] = data
		return true
	}
	return false
}

func (c *Cartridge) ppuRead(addr uint16, data *byte) bool {
	var mappedAddr uint16
	if c.mapper.ppuMapRead(addr, &mappedAddr) {
		*data = c.chrMem[mappedAddr]
		return true
	}
	return false
}

func (c *Cartridge) ppuWrite(addr uint16, data byte) bool {
	var mappedAddr uint16
	if c.mapper.ppuMapWrite(addr, &mappedAddr) {
		c.chrMem[mappedAddr] = data
		return true
	}
	return false
}
