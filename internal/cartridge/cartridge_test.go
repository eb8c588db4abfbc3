package cartridge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func romWithHeader(cartType Type, romSizeCode, ramSizeCode uint8) []byte {
	size := (32 * 1024) << romSizeCode
	if size < 0x8000 {
		size = 0x8000
	}
	rom := make([]byte, size)
	rom[0x0147] = uint8(cartType)
	rom[0x0148] = romSizeCode
	rom[0x0149] = ramSizeCode
	return rom
}

func TestMBC1BankSwitchSelectsCorrectROMBank(t *testing.T) {
	rom := romWithHeader(MBC1, 0x02, 0x00) // 128KiB, 8 banks
	for bank := 0; bank < 8; bank++ {
		rom[bank*0x4000] = uint8(bank)
	}
	c := New(rom, nil)
	require.Equal(t, MBC1, c.Header.CartridgeType)
	c.Write(0x2000, 0x03) // select ROM bank 3
	assert.Equal(t, uint8(3), c.Read(0x4000))
}

func TestMBC1Bank0RemapsToBank1(t *testing.T) {
	rom := romWithHeader(MBC1, 0x01, 0x00)
	for bank := 0; bank < 4; bank++ {
		rom[bank*0x4000] = uint8(bank)
	}
	c := New(rom, nil)
	c.Write(0x2000, 0x00) // writing 0 selects bank 1, not bank 0
	assert.Equal(t, uint8(1), c.Read(0x4000))
}

func TestUnsupportedCartridgeTypeFallsBackAndIsNotFatal(t *testing.T) {
	rom := romWithHeader(Type(0xFF), 0x00, 0x00)
	c := New(rom, nil)
	assert.False(t, c.Header.Supported)
	// still usable: reads/writes don't panic.
	_ = c.Read(0x0000)
	c.Write(0x2000, 0x01)
}

func TestMalformedHeaderFallsBackToActualROMLength(t *testing.T) {
	rom := romWithHeader(ROM, 0xFF, 0x00) // 0xFF is not a valid ROM size code
	c := New(rom, nil)
	assert.Equal(t, uint(len(rom)), c.Header.ROMSize)
}

func TestSaveRAMRoundTrip(t *testing.T) {
	rom := romWithHeader(MBC1RAMBATT, 0x00, 0x02) // 8KiB RAM, battery
	c := New(rom, nil)
	require.True(t, c.HasBattery())
	c.Write(0x0000, 0x0A) // enable RAM
	c.Write(0xA000, 0x7A)
	saved := c.SaveRAM()
	require.NotNil(t, saved)

	c2 := New(rom, nil)
	c2.Write(0x0000, 0x0A)
	c2.LoadSaveRAM(saved)
	assert.Equal(t, uint8(0x7A), c2.Read(0xA000))
}

func TestLoadSaveRAMNoOpOnEmptyData(t *testing.T) {
	rom := romWithHeader(MBC1RAMBATT, 0x00, 0x02)
	c := New(rom, nil)
	c.Write(0x0000, 0x0A)
	c.Write(0xA000, 0x55)
	c.LoadSaveRAM(nil)
	assert.Equal(t, uint8(0x55), c.Read(0xA000))
}
