package nes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPpuStatusReadClearsVblankAndLatch(t *testing.T) {
	p := NewPPU()
	p.status = statusVblank
	p.vramTmp.latch = true

	got := p.ReadRegister(regStatus)

	assert.Equal(t, byte(statusVblank), got)
	assert.Equal(t, byte(0), p.status&statusVblank)
	assert.False(t, p.vramTmp.latch)
}

func TestPpuAddrWriteTwiceLatch(t *testing.T) {
	p := NewPPU()

	p.WriteRegister(regAddr, 0x21)
	p.WriteRegister(regAddr, 0x08)

	assert.Equal(t, uint16(0x2108), p.vramAddr.get())
}

func TestPpuDataReadIsBuffered(t *testing.T) {
	cart := &Cartridge{
		chrMem: make([]byte, 0x2000),
		mapper: NewMapper000(1, 1),
	}
	cart.chrMem[0x0010] = 0xAB
	cart.chrMem[0x0011] = 0xCD

	p := NewPPU()
	p.ConnectCartridge(cart)
	p.vramAddr.set(0x0010)

	first := p.ReadRegister(regData)
	second := p.ReadRegister(regData)

	assert.Equal(t, byte(0x00), first) // buffered read lags by one
	assert.Equal(t, byte(0xAB), second)
}

func TestPpuVramIncrementFollowsCtrlBit(t *testing.T) {
	p := NewPPU()
	p.vramAddr.set(0x0000)

	p.WriteRegister(regData, 0x00)
	assert.Equal(t, uint16(1), p.vramAddr.get())

	p.vramAddr.set(0x0000)
	p.ctrl = ctrlVramIncrement
	p.WriteRegister(regData, 0x00)
	assert.Equal(t, uint16(32), p.vramAddr.get())
}

func TestPpuNmiEdgeFiresOnceAtVblankStart(t *testing.T) {
	p := NewPPU()
	p.ctrl = ctrlGenerateNMI
	p.scanline = 241
	p.dot = 0

	p.Tick() // dot becomes 1, scanline 241 - vblank starts

	assert.True(t, p.TakeNMI())
	assert.False(t, p.TakeNMI()) // edge consumed, no re-trigger
}

func TestPpuPreRenderLineClearsStatus(t *testing.T) {
	p := NewPPU()
	p.status = statusVblank | statusSprite0Hit | statusSpriteOverflow
	p.scanline = -1
	p.dot = 0

	p.Tick()

	assert.Equal(t, byte(0), p.status)
}

func TestPpuOamDataAutoIncrementsAddr(t *testing.T) {
	p := NewPPU()
	p.oamAddr = 0x00

	p.WriteRegister(regOamAddr, 0x05)
	p.WriteRegister(regOamData, 0x77)

	assert.Equal(t, byte(0x06), p.oamAddr)
	assert.Equal(t, byte(0x77), p.oam.read(0x05))
}
