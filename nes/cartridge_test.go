package nes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func buildInesImage(prgChunks, chrChunks byte, mapperHi, mapperLo byte, trainer bool) []byte {
	header := make([]byte, 16)
	copy(header, inesMagic[:])
	header[4] = prgChunks
	header[5] = chrChunks
	header[6] = mapperLo << 4
	if trainer {
		header[6] |= 0x04
	}
	header[7] = mapperHi << 4

	data := header
	if trainer {
		data = append(data, make([]byte, trainerSize)...)
	}
	data = append(data, make([]byte, 16*1024*int(prgChunks))...)
	data = append(data, make([]byte, 8*1024*int(chrChunks))...)
	return data
}

func TestParseCartridgeMapper0(t *testing.T) {
	data := buildInesImage(2, 1, 0, 0, false)

	cart, err := parseCartridge(data)

	assert.NoError(t, err)
	assert.Len(t, cart.prgMem, 32*1024)
	assert.Len(t, cart.chrMem, 8*1024)
	_, ok := cart.mapper.(*Mapper000)
	assert.True(t, ok)
}

func TestParseCartridgeSkipsTrainer(t *testing.T) {
	data := buildInesImage(1, 1, 0, 0, true)

	cart, err := parseCartridge(data)

	assert.NoError(t, err)
	assert.Len(t, cart.prgMem, 16*1024)
}

func TestParseCartridgeBadMagic(t *testing.T) {
	data := buildInesImage(1, 1, 0, 0, false)
	data[0] = 'X'

	_, err := parseCartridge(data)

	assert.Error(t, err)
}

func TestParseCartridgeUnsupportedMapper(t *testing.T) {
	data := buildInesImage(1, 1, 0, 1, false) // mapper 1 (MMC1), unsupported

	_, err := parseCartridge(data)

	assert.Error(t, err)
}

func TestParseCartridgeTruncatedChr(t *testing.T) {
	data := buildInesImage(2, 1, 0, 0, false)
	data = data[:len(data)-100] // chop into the CHR region

	_, err := parseCartridge(data)

	assert.Error(t, err)
}

func TestParseCartridgeShorterThanHeader(t *testing.T) {
	_, err := parseCartridge([]byte{'N', 'E', 'S', 0x1A})

	assert.Error(t, err)
}

func TestCartridgeReadWriteRoundTrip(t *testing.T) {
	data := buildInesImage(2, 1, 0, 0, false)
	cart, err := parseCartridge(data)
	assert.NoError(t, err)

	ok := cart.cpuWrite(0x8000, 0x99)
	assert.True(t, ok)

	var got byte
	ok = cart.cpuRead(0x8000, &got)
	assert.True(t, ok)
	assert.Equal(t, byte(0x99), got)

	ok = cart.cpuRead(0x0000, &got)
	assert.False(t, ok) // below cartridge space, not this mapper's concern
}
