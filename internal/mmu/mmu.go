// Package mmu implements the Game Boy's 16-bit address space: region
// decoding, work RAM, high RAM, the OAM DMA transfer, and I/O register
// fan-out to Timer/Joypad/APU/PPU/interrupts. See spec.md §3, §4.2.
//
// MMU.Read/Write are plain, untimed memory accesses; the CPU is
// responsible for ticking Timer/PPU by 4 T-cycles around every access
// it performs (spec.md §4.1), so the MMU itself never drives a clock.
package mmu

import (
	"github.com/Santitub/gomeboy/internal/apu"
	"github.com/Santitub/gomeboy/internal/cartridge"
	"github.com/Santitub/gomeboy/internal/interrupts"
	"github.com/Santitub/gomeboy/internal/joypad"
	"github.com/Santitub/gomeboy/internal/log"
	"github.com/Santitub/gomeboy/internal/ppu"
	"github.com/Santitub/gomeboy/internal/serial"
	"github.com/Santitub/gomeboy/internal/timer"
)

// MMU owns work RAM, high RAM, the cartridge, and back-references to
// every other component it fans I/O out to.
type MMU struct {
	Cartridge  *cartridge.Cartridge
	PPU        *ppu.PPU
	APU        *apu.APU
	Timer      *timer.Timer
	Joypad     *joypad.Joypad
	Serial     *serial.Controller
	Interrupts *interrupts.Service

	wram [0x2000]byte
	hram [0x7F]byte

	log log.Logger
}

// New wires an MMU to its component set. All arguments are required
// except log, which defaults to a discarding logger.
func New(cart *cartridge.Cartridge, p *ppu.PPU, a *apu.APU, t *timer.Timer, j *joypad.Joypad, s *serial.Controller, irq *interrupts.Service, logger log.Logger) *MMU {
	if logger == nil {
		logger = log.NewNull()
	}
	return &MMU{Cartridge: cart, PPU: p, APU: a, Timer: t, Joypad: j, Serial: s, Interrupts: irq, log: logger}
}

// Read decodes addr per the memory map in spec.md §3 and returns the
// mapped byte.
func (m *MMU) Read(addr uint16) uint8 {
	switch {
	case addr < 0x8000:
		return m.Cartridge.Read(addr)
	case addr < 0xA000:
		return m.PPU.ReadVRAM(addr)
	case addr < 0xC000:
		return m.Cartridge.Read(addr)
	case addr < 0xE000:
		return m.wram[addr-0xC000]
	case addr < 0xFE00:
		return m.wram[addr-0xE000] // echo of 0xC000-0xDDFF
	case addr < 0xFEA0:
		return m.PPU.ReadOAM(addr)
	case addr < 0xFF00:
		return 0xFF // unusable
	case addr < 0xFF80:
		return m.readIO(addr)
	case addr < 0xFFFF:
		return m.hram[addr-0xFF80]
	default: // 0xFFFF
		return m.Interrupts.ReadIE()
	}
}

// Write decodes addr and stores value, per spec.md §3, §4.2.
func (m *MMU) Write(addr uint16, value uint8) {
	switch {
	case addr < 0x8000:
		m.Cartridge.Write(addr, value)
	case addr < 0xA000:
		m.PPU.WriteVRAM(addr, value)
	case addr < 0xC000:
		m.Cartridge.Write(addr, value)
	case addr < 0xE000:
		m.wram[addr-0xC000] = value
	case addr < 0xFE00:
		m.wram[addr-0xE000] = value
	case addr < 0xFEA0:
		m.PPU.WriteOAM(addr, value)
	case addr < 0xFF00:
		// unusable, writes ignored
	case addr < 0xFF80:
		m.writeIO(addr, value)
	case addr < 0xFFFF:
		m.hram[addr-0xFF80] = value
	default: // 0xFFFF
		m.Interrupts.WriteIE(value)
	}
}

// TickCartridge drives MBC-internal state (the MBC3 RTC) that runs
// independently of CPU instruction boundaries.
func (m *MMU) TickCartridge(tCycles uint64) {
	m.Cartridge.Tick(tCycles)
}

// oamDMA performs the 160-byte OAM transfer triggered by a write to
// 0xFF46. Modeled as an instantaneous burst per spec.md §4.2: the CPU
// that issued the triggering write pays only its ordinary 4 T-cycles.
func (m *MMU) oamDMA(srcHigh uint8) {
	base := uint16(srcHigh) << 8
	for i := uint16(0); i < 160; i++ {
		m.PPU.WriteOAMDMA(uint8(i), m.Read(base+i))
	}
}
