package apu

import "github.com/Santitub/gomeboy/internal/types"

// Read returns the value of a sound register at addr (0xFF10-0xFF3F).
func (a *APU) Read(addr uint16) uint8 {
	switch addr {
	case types.NR10:
		return a.ch1.readNR10()
	case types.NR11:
		return a.ch1.readNRx1()
	case types.NR12:
		return a.ch1.env.read()
	case types.NR13:
		return 0xFF
	case types.NR14:
		return readFreqHi(a.ch1.length.enabled)
	case types.NR21:
		return a.ch2.readNRx1()
	case types.NR22:
		return a.ch2.env.read()
	case types.NR23:
		return 0xFF
	case types.NR24:
		return readFreqHi(a.ch2.length.enabled)
	case types.NR30:
		return a.ch3.readNR30()
	case types.NR31:
		return 0xFF
	case types.NR32:
		return a.ch3.readNR32()
	case types.NR33:
		return 0xFF
	case types.NR34:
		return readFreqHi(a.ch3.length.enabled)
	case types.NR41:
		return 0xFF
	case types.NR42:
		return a.ch4.env.read()
	case types.NR43:
		return a.ch4.readNR43()
	case types.NR44:
		return readFreqHi(a.ch4.length.enabled)
	case types.NR50:
		return a.readNR50()
	case types.NR51:
		return a.readNR51()
	case types.NR52:
		return a.readNR52()
	}
	if addr >= types.WaveRAMStart && addr <= types.WaveRAMEnd {
		return a.ch3.readWaveRAM(addr - types.WaveRAMStart)
	}
	return 0xFF
}

// Write stores value into a sound register at addr. Per spec.md §4.5,
// writes while the APU is powered off (NR52 bit 7 clear) are ignored
// except for NR52 itself and wave RAM, matching real hardware.
func (a *APU) Write(addr uint16, value uint8) {
	if addr >= types.WaveRAMStart && addr <= types.WaveRAMEnd {
		a.ch3.writeWaveRAM(addr-types.WaveRAMStart, value)
		return
	}
	if addr == types.NR52 {
		a.writeNR52(value)
		return
	}
	if !a.enabled {
		return
	}
	switch addr {
	case types.NR10:
		a.ch1.writeNR10(value)
	case types.NR11:
		a.ch1.writeNRx1(value)
	case types.NR12:
		a.ch1.writeNRx2(value)
	case types.NR13:
		a.ch1.writeFreqLo(value)
	case types.NR14:
		a.ch1.writeFreqHi(value)
	case types.NR21:
		a.ch2.writeNRx1(value)
	case types.NR22:
		a.ch2.writeNRx2(value)
	case types.NR23:
		a.ch2.writeFreqLo(value)
	case types.NR24:
		a.ch2.writeFreqHi(value)
	case types.NR30:
		a.ch3.writeNR30(value)
	case types.NR31:
		a.ch3.writeNR31(value)
	case types.NR32:
		a.ch3.writeNR32(value)
	case types.NR33:
		a.ch3.writeFreqLo(value)
	case types.NR34:
		a.ch3.writeFreqHi(value)
	case types.NR41:
		a.ch4.writeNR41(value)
	case types.NR42:
		a.ch4.writeNR42(value)
	case types.NR43:
		a.ch4.writeNR43(value)
	case types.NR44:
		a.ch4.writeNR44(value)
	case types.NR50:
		a.writeNR50(value)
	case types.NR51:
		a.writeNR51(value)
	}
}

func readFreqHi(lengthEnabled bool) uint8 {
	v := uint8(0xBF)
	if lengthEnabled {
		v |= 0x40
	}
	return v
}

func (a *APU) readNR50() uint8 {
	v := a.volumeRight | a.volumeLeft<<4
	if a.vinRight {
		v |= 0x08
	}
	if a.vinLeft {
		v |= 0x80
	}
	return v
}

func (a *APU) writeNR50(v uint8) {
	a.volumeRight = v & 0x07
	a.volumeLeft = (v >> 4) & 0x07
	a.vinRight = v&0x08 != 0
	a.vinLeft = v&0x80 != 0
}

func (a *APU) readNR51() uint8 {
	var v uint8
	for c := 0; c < 4; c++ {
		if a.panRight[c] {
			v |= 1 << c
		}
		if a.panLeft[c] {
			v |= 1 << (c + 4)
		}
	}
	return v
}

func (a *APU) writeNR51(v uint8) {
	for c := 0; c < 4; c++ {
		setBit(&a.panRight, c, v&(1<<c) != 0)
		setBit(&a.panLeft, c, v&(1<<(c+4)) != 0)
	}
}

func (a *APU) readNR52() uint8 {
	v := a.channelStatusBits() | 0x70
	if a.enabled {
		v |= 0x80
	}
	return v
}

// writeNR52 toggles the master enable. Clearing it silences and resets
// every channel's register state, per spec.md §4.5.
func (a *APU) writeNR52(v uint8) {
	wasEnabled := a.enabled
	a.enabled = v&0x80 != 0
	if wasEnabled && !a.enabled {
		*a.ch1 = *newPulseChannel(true)
		*a.ch2 = *newPulseChannel(false)
		ram := a.ch3.waveRAM
		*a.ch3 = *newWaveChannel()
		a.ch3.waveRAM = ram
		*a.ch4 = *newNoiseChannel()
		a.volumeLeft, a.volumeRight = 0, 0
		a.vinLeft, a.vinRight = false, false
		a.panLeft = [4]bool{}
		a.panRight = [4]bool{}
	}
}
