package nes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAmZpxWrapsWithinPageZero(t *testing.T) {
	cpu := newTestCPU(t)
	cpu.setResetVector(0x8000)
	cpu.Reset()

	cpu.write(0x8000, 0xFF) // operand byte
	cpu.X = 0x02
	cpu.Pc = 0x8000

	amZPX(cpu)

	assert.Equal(t, uint16(0x0001), cpu.addrAbs) // (0xFF+0x02)&0xFF
}

func TestAmIzxWrapsWithinPageZero(t *testing.T) {
	cpu := newTestCPU(t)
	cpu.setResetVector(0x8000)
	cpu.Reset()

	cpu.write(0x8000, 0xFE)
	cpu.X = 0x04 // zp pointer wraps: (0xFE+0x04)&0xFF = 0x02
	cpu.write(0x0002, 0x34)
	cpu.write(0x0003, 0x12)
	cpu.Pc = 0x8000

	amIZX(cpu)

	assert.Equal(t, uint16(0x1234), cpu.addrAbs)
}

func TestAmIzyAddsYAfterDereference(t *testing.T) {
	cpu := newTestCPU(t)
	cpu.setResetVector(0x8000)
	cpu.Reset()

	cpu.write(0x8000, 0x02) // zero-page pointer
	cpu.write(0x0002, 0x00)
	cpu.write(0x0003, 0x20)
	cpu.Y = 0xFF
	cpu.Pc = 0x8000

	amIZY(cpu)

	assert.Equal(t, uint16(0x20FF), cpu.addrAbs)
	assert.False(t, cpu.pageCrossed)
}

func TestAmIzyPageCross(t *testing.T) {
	cpu := newTestCPU(t)
	cpu.setResetVector(0x8000)
	cpu.Reset()

	cpu.write(0x8000, 0x02)
	cpu.write(0x0002, 0xFF)
	cpu.write(0x0003, 0x20)
	cpu.Y = 0x01
	cpu.Pc = 0x8000

	amIZY(cpu)

	assert.Equal(t, uint16(0x2100), cpu.addrAbs)
	assert.True(t, cpu.pageCrossed)
}

func TestAmAccTargetsAccumulator(t *testing.T) {
	cpu := newTestCPU(t)
	cpu.A = 0x5A

	amACC(cpu)

	assert.True(t, cpu.isAccumulatorTarget)
	assert.Equal(t, byte(0x5A), cpu.fetched)
}

func TestAmRelComputesSignedOffset(t *testing.T) {
	cpu := newTestCPU(t)
	cpu.setResetVector(0x8000)
	cpu.Reset()

	cpu.write(0x8000, 0xFE) // -2
	cpu.Pc = 0x8000

	amREL(cpu)

	assert.Equal(t, int8(-2), cpu.addrRel)
	assert.Equal(t, uint16(0x8001), cpu.Pc)
}
