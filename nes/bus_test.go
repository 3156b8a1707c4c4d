package nes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRamMirroring(t *testing.T) {
	cpu := newTestCPU(t)
	bus := cpu.bus

	bus.Write(0x0000, 0x42)

	assert.Equal(t, byte(0x42), bus.Read(0x0800))
	assert.Equal(t, byte(0x42), bus.Read(0x1000))
	assert.Equal(t, byte(0x42), bus.Read(0x1800))
}

func TestPpuRegisterMirroring(t *testing.T) {
	cpu := newTestCPU(t)
	bus := cpu.bus

	bus.Write(0x2000, 0x80) // PPUCTRL
	bus.Write(0x2008, 0x00) // mirrors 0x2000 again

	assert.Equal(t, byte(0x00), bus.Ppu.ctrl)
}

func TestApuWindowReadsZero(t *testing.T) {
	cpu := newTestCPU(t)
	bus := cpu.bus

	bus.Write(0x4005, 0xFF) // accepted and dropped

	assert.Equal(t, byte(0x00), bus.Read(0x4005))
}

func TestOamDmaCopiesPageAndStalls(t *testing.T) {
	cpu := newTestCPU(t)
	bus := cpu.bus

	for i := 0; i < 256; i++ {
		bus.Write(0x0200+uint16(i), byte(i))
	}

	cpu.Cycles = 10 // even, so the stall is 513
	bus.Write(0x4014, 0x02)

	stall := bus.ServiceDMA()

	assert.Equal(t, 513, stall)
	for i := 0; i < 256; i++ {
		assert.Equal(t, byte(i), bus.Ppu.oam.read(byte(i)))
	}
}

func TestOamDmaStallIs514OnOddCycle(t *testing.T) {
	cpu := newTestCPU(t)
	bus := cpu.bus

	cpu.Cycles = 11 // odd
	bus.Write(0x4014, 0x02)

	assert.Equal(t, 514, bus.ServiceDMA())
}

func TestRead16IsLittleEndian(t *testing.T) {
	cpu := newTestCPU(t)
	bus := cpu.bus

	bus.Write(0x0010, 0x34)
	bus.Write(0x0011, 0x12)

	assert.Equal(t, uint16(0x1234), bus.Read16(0x0010))
}
