package mmu

import "github.com/Santitub/gomeboy/internal/types"

// readIO fans a 0xFF00-0xFF7F access out to the owning component, per
// spec.md §4.2.
func (m *MMU) readIO(addr uint16) uint8 {
	switch addr {
	case types.P1:
		return m.Joypad.Read()
	case types.SB:
		return m.Serial.ReadSB()
	case types.SC:
		return m.Serial.ReadSC()
	case types.DIV:
		return m.Timer.ReadDIV()
	case types.TIMA:
		return m.Timer.ReadTIMA()
	case types.TMA:
		return m.Timer.ReadTMA()
	case types.TAC:
		return m.Timer.ReadTAC()
	case types.IF:
		return m.Interrupts.ReadIF()
	case types.LCDC:
		return m.PPU.LCDC
	case types.STAT:
		return m.PPU.ReadSTAT()
	case types.SCY:
		return m.PPU.SCY
	case types.SCX:
		return m.PPU.SCX
	case types.LY:
		return m.PPU.LY
	case types.LYC:
		return m.PPU.LYC
	case types.DMA:
		return 0xFF // write-only
	case types.BGP:
		return m.PPU.BGP
	case types.OBP0:
		return m.PPU.OBP0
	case types.OBP1:
		return m.PPU.OBP1
	case types.WY:
		return m.PPU.WY
	case types.WX:
		return m.PPU.WX
	}
	if addr >= 0xFF10 && addr <= 0xFF3F {
		return m.APU.Read(addr)
	}
	return 0xFF // unused I/O addresses
}

// writeIO fans a 0xFF00-0xFF7F write out to the owning component.
func (m *MMU) writeIO(addr uint16, value uint8) {
	switch addr {
	case types.P1:
		m.Joypad.Write(value)
	case types.SB:
		m.Serial.WriteSB(value)
	case types.SC:
		m.Serial.WriteSC(value)
	case types.DIV:
		m.Timer.WriteDIV(value)
	case types.TIMA:
		m.Timer.WriteTIMA(value)
	case types.TMA:
		m.Timer.WriteTMA(value)
	case types.TAC:
		m.Timer.WriteTAC(value)
	case types.IF:
		m.Interrupts.WriteIF(value)
	case types.LCDC:
		m.PPU.WriteLCDC(value)
	case types.STAT:
		m.PPU.WriteSTAT(value)
	case types.SCY:
		m.PPU.SCY = value
	case types.SCX:
		m.PPU.SCX = value
	case types.LY:
		// LY is read-only.
	case types.LYC:
		m.PPU.LYC = value
	case types.DMA:
		m.oamDMA(value)
	case types.BGP:
		m.PPU.BGP = value
	case types.OBP0:
		m.PPU.OBP0 = value
	case types.OBP1:
		m.PPU.OBP1 = value
	case types.WY:
		m.PPU.WY = value
	case types.WX:
		m.PPU.WX = value
	default:
		if addr >= 0xFF10 && addr <= 0xFF3F {
			m.APU.Write(addr, value)
		}
	}
}
