package gameboy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Santitub/gomeboy/internal/joypad"
)

func blankROM() []byte {
	rom := make([]byte, 0x8000)
	// Tight loop: JR -2 at 0x0100 so the CPU never escapes a known PC
	// while the LCD stays off (Tick never advances PPU, so run_frame's
	// safety bound is what ends the frame).
	rom[0x0100] = 0x18 // JR
	rom[0x0101] = 0xFE // -2
	return rom
}

func TestRunFrameReturnsOnVBlank(t *testing.T) {
	gb := New()
	rom := make([]byte, 0x8000)
	rom[0x0100] = 0x3E // LD A,0x91
	rom[0x0101] = 0x91
	rom[0x0102] = 0xE0 // LDH (0xFF40),A  -- enable LCD
	rom[0x0103] = 0x40
	rom[0x0104] = 0x00 // NOP forever (falls through into zeroed ROM = more NOPs)
	gb.LoadROM(rom, "test.gb")

	fb, err := gb.RunFrame()
	require.NoError(t, err)
	assert.NotNil(t, fb)
}

func TestRunFrameOverrunWhenLCDStaysOff(t *testing.T) {
	gb := New()
	gb.LoadROM(blankROM(), "loop.gb")
	_, err := gb.RunFrame()
	assert.ErrorIs(t, err, ErrFrameOverrun)
}

func TestPressAndReleaseDelegateToJoypad(t *testing.T) {
	gb := New()
	gb.LoadROM(blankROM(), "loop.gb")
	gb.Press(joypad.A)
	gb.Release(joypad.A)
}

func TestCheatPatchesMemoryEveryStep(t *testing.T) {
	gb := New(WithCheats([]Cheat{{Address: 0xC000, Value: 0x7F}}))
	gb.LoadROM(blankROM(), "loop.gb")
	gb.bus.Write(0xC000, 0x00)
	_, _ = gb.RunFrame()
	assert.Equal(t, uint8(0x7F), gb.bus.Read(0xC000))
}
