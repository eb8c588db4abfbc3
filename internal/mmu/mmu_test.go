package mmu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Santitub/gomeboy/internal/apu"
	"github.com/Santitub/gomeboy/internal/cartridge"
	"github.com/Santitub/gomeboy/internal/interrupts"
	"github.com/Santitub/gomeboy/internal/joypad"
	"github.com/Santitub/gomeboy/internal/ppu"
	"github.com/Santitub/gomeboy/internal/serial"
	"github.com/Santitub/gomeboy/internal/timer"
)

func newTestMMU(t *testing.T) *MMU {
	t.Helper()
	irq := interrupts.NewService()
	cart := cartridge.New(make([]byte, 0x8000), nil)
	p := ppu.New(irq)
	a := apu.New(44100, apu.NullSink())
	tm := timer.New(irq)
	j := joypad.New(irq)
	s := serial.New()
	m := New(cart, p, a, tm, j, s, irq, nil)
	require.NotNil(t, m)
	return m
}

func TestWorkRAMEchoRegion(t *testing.T) {
	m := newTestMMU(t)
	m.Write(0xC010, 0x42)
	assert.Equal(t, uint8(0x42), m.Read(0xE010))
}

func TestHighRAMRoundTrip(t *testing.T) {
	m := newTestMMU(t)
	m.Write(0xFF90, 0x99)
	assert.Equal(t, uint8(0x99), m.Read(0xFF90))
}

func TestInterruptEnableRegister(t *testing.T) {
	m := newTestMMU(t)
	m.Write(0xFFFF, 0x1F)
	assert.Equal(t, uint8(0x1F), m.Read(0xFFFF))
}

func TestOAMDMACopiesFromSourceRegion(t *testing.T) {
	m := newTestMMU(t)
	for i := uint16(0); i < 160; i++ {
		m.Write(0xC000+i, uint8(i))
	}
	m.Write(0xFF46, 0xC0) // DMA from 0xC000
	for i := uint16(0); i < 160; i++ {
		assert.Equal(t, uint8(i), m.Read(0xFE00+i))
	}
}

func TestLYIsReadOnly(t *testing.T) {
	m := newTestMMU(t)
	before := m.Read(0xFF44)
	m.Write(0xFF44, 0x55)
	assert.Equal(t, before, m.Read(0xFF44))
}
