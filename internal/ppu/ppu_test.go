package ppu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Santitub/gomeboy/internal/interrupts"
)

func enablePPU(p *PPU) { p.LCDC = 0x91 } // LCD on, BG on, tile data at 0x8000

func TestModeSequenceWithinOneLine(t *testing.T) {
	irq := interrupts.NewService()
	p := New(irq)
	enablePPU(p)
	assert.Equal(t, ModeOAM, p.Mode())
	p.Tick(oamDuration)
	assert.Equal(t, ModeTransfer, p.Mode())
	p.Tick(transferDuration)
	assert.Equal(t, ModeHBlank, p.Mode())
	p.Tick(hblankDuration)
	assert.Equal(t, uint8(1), p.LY)
}

func TestVBlankRaisedAtLine144(t *testing.T) {
	irq := interrupts.NewService()
	p := New(irq)
	enablePPU(p)
	p.Tick(lineDuration * ScreenHeight)
	assert.Equal(t, uint8(ScreenHeight), p.LY)
	assert.Equal(t, ModeVBlank, p.Mode())
	assert.True(t, p.FrameReady)
	assert.NotZero(t, irq.Flag&(1<<interrupts.VBlankFlag))
}

func TestDisabledLCDHoldsLYZero(t *testing.T) {
	irq := interrupts.NewService()
	p := New(irq)
	p.LCDC = 0x00
	p.Tick(100000)
	assert.Equal(t, uint8(0), p.LY)
	assert.Equal(t, ModeHBlank, p.Mode())
}

func TestLCDEnableTransitionStartsAtOAMLineZero(t *testing.T) {
	irq := interrupts.NewService()
	p := New(irq)
	p.WriteLCDC(0x00)
	p.Tick(1000)
	assert.Equal(t, uint8(0), p.LY)

	p.WriteLCDC(0x91)
	assert.Equal(t, ModeOAM, p.Mode())
	assert.Equal(t, uint8(0), p.LY)
}

func TestSpriteTilesIgnoreLCDCAddressingMode(t *testing.T) {
	irq := interrupts.NewService()
	p := New(irq)
	enablePPU(p)
	p.LCDC &^= 0x10   // switch BG/window to the signed 0x8800 method
	p.VRAM[16] = 0xFF // 0x8010: tile index 1, row 0, low byte
	p.VRAM[17] = 0x00

	lo, hi := p.spriteTileRowBytes(1, 0)
	assert.Equal(t, uint8(0xFF), lo)
	assert.Equal(t, uint8(0x00), hi)
}

func TestVRAMLockedDuringTransfer(t *testing.T) {
	irq := interrupts.NewService()
	p := New(irq)
	enablePPU(p)
	p.Tick(oamDuration) // now in ModeTransfer
	p.WriteVRAM(0x8000, 0x42)
	assert.Equal(t, uint8(0xFF), p.ReadVRAM(0x8000))
}

func TestLYCCoincidenceRaisesSTATWhenEnabled(t *testing.T) {
	irq := interrupts.NewService()
	p := New(irq)
	enablePPU(p)
	p.LYC = 1
	p.WriteSTAT(0x40) // enable LYC=LY interrupt source
	p.Tick(lineDuration)
	assert.True(t, p.ReadSTAT()&0x04 != 0)
	assert.NotZero(t, irq.Flag&(1<<interrupts.LCDFlag))
}
