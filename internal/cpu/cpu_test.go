package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Santitub/gomeboy/internal/apu"
	"github.com/Santitub/gomeboy/internal/cartridge"
	"github.com/Santitub/gomeboy/internal/interrupts"
	"github.com/Santitub/gomeboy/internal/joypad"
	"github.com/Santitub/gomeboy/internal/mmu"
	"github.com/Santitub/gomeboy/internal/ppu"
	"github.com/Santitub/gomeboy/internal/serial"
	"github.com/Santitub/gomeboy/internal/timer"
)

// newTestCPU returns a CPU and the ROM slice backing its cartridge. ROM
// ignores bus writes, so tests place their program bytes in the slice.
func newTestCPU(t *testing.T) (*CPU, []byte) {
	t.Helper()
	rom := make([]byte, 0x8000)
	irq := interrupts.NewService()
	cart := cartridge.New(rom, nil)
	p := ppu.New(irq)
	a := apu.New(44100, apu.NullSink())
	tm := timer.New(irq)
	j := joypad.New(irq)
	s := serial.New()
	bus := mmu.New(cart, p, a, tm, j, s, irq, nil)
	c := New(bus, irq, nil)
	require.NotNil(t, c)
	return c, rom
}

func TestBootRegisterState(t *testing.T) {
	c, _ := newTestCPU(t)
	assert.Equal(t, uint8(0x01), c.A)
	assert.Equal(t, uint16(0x0013), c.BC.Uint16())
	assert.Equal(t, uint16(0x00D8), c.DE.Uint16())
	assert.Equal(t, uint16(0x014D), c.HL.Uint16())
	assert.Equal(t, uint16(0xFFFE), c.SP)
	assert.Equal(t, uint16(0x0100), c.PC)
}

func TestNOPConsumesFourCycles(t *testing.T) {
	c, rom := newTestCPU(t)
	rom[0x0100] = 0x00
	cycles := c.Step()
	assert.Equal(t, uint8(4), cycles)
	assert.Equal(t, uint16(0x0101), c.PC)
}

func TestLDBCImmediate(t *testing.T) {
	c, rom := newTestCPU(t)
	rom[0x0100] = 0x01 // LD BC,nn
	rom[0x0101] = 0x34
	rom[0x0102] = 0x12
	cycles := c.Step()
	assert.Equal(t, uint8(12), cycles)
	assert.Equal(t, uint16(0x1234), c.BC.Uint16())
}

func TestDAAAfterBCDAddition(t *testing.T) {
	c, rom := newTestCPU(t)
	c.A = 0x45
	c.B = 0x38
	rom[0x0100] = 0x80 // ADD A,B -> 0x7D
	rom[0x0101] = 0x27 // DAA -> should correct to 0x83 (45+38 BCD)
	c.Step()
	c.Step()
	assert.Equal(t, uint8(0x83), c.A)
	assert.False(t, c.flag(flagC))
}

func TestHaltBugRereadsSamePC(t *testing.T) {
	c, rom := newTestCPU(t)
	c.irq.Enable = 1 << interrupts.TimerFlag
	c.irq.Flag = 1 << interrupts.TimerFlag
	c.irq.IME = false
	rom[0x0100] = 0x76 // HALT, bug path: IME clear, interrupt pending
	rom[0x0101] = 0x3C // INC A
	c.Step()           // executes HALT, should set haltBug instead of halting
	assert.True(t, c.haltBug)
	assert.False(t, c.halted)
	assert.Equal(t, uint16(0x0101), c.PC)

	startA := c.A
	c.Step() // buggy re-fetch of 0x3C at PC=0x0101: executes INC A, PC not advanced
	assert.False(t, c.haltBug)
	assert.Equal(t, startA+1, c.A)
	assert.Equal(t, uint16(0x0101), c.PC)

	c.Step() // normal fetch of the same byte now that the bug has cleared: advances PC
	assert.Equal(t, startA+2, c.A)
	assert.Equal(t, uint16(0x0102), c.PC)
}

func TestIllegalOpcodeRaisesFaultAndStalls(t *testing.T) {
	c, rom := newTestCPU(t)
	var got *Fault
	c.fault = func(f Fault) { got = &f }
	rom[0x0100] = 0xD3 // illegal
	c.Step()
	require.NotNil(t, got)
	assert.Equal(t, uint8(0xD3), got.Opcode)
	assert.True(t, c.stalled)
	pc := c.PC
	c.Step()
	assert.Equal(t, pc, c.PC) // stalled CPU never advances
}

func TestEIDelaysOneInstruction(t *testing.T) {
	c, rom := newTestCPU(t)
	c.irq.Enable = 1 << interrupts.VBlankFlag
	c.irq.Flag = 1 << interrupts.VBlankFlag
	rom[0x0100] = 0xFB // EI
	rom[0x0101] = 0x00 // NOP
	rom[0x0102] = 0x00 // NOP
	c.Step()           // EI itself: IME not yet active
	assert.False(t, c.irq.IME)
	c.Step() // NOP completes, IME now active but interrupt dispatch happens on next Step
	assert.True(t, c.irq.IME)
	pcBefore := c.PC
	c.Step() // interrupt should now be serviced instead of fetching at pcBefore
	assert.NotEqual(t, pcBefore, c.PC)
	assert.Equal(t, interrupts.VBlank, c.PC)
}
