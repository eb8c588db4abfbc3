// Package cartridge loads a Game Boy ROM image, parses its header, and
// dispatches to the appropriate memory bank controller for address
// decoding, banking and battery-backed save RAM. See spec.md §3, §4.2
// and §6.
package cartridge

import "github.com/Santitub/gomeboy/internal/log"

// Cartridge owns the immutable ROM bytes, the selected MBC, and (for
// battery cartridges) persists save RAM across Flush/hydrate cycles.
type Cartridge struct {
	Header Header
	mbc    MBC
	log    log.Logger
}

// New parses header from rom and constructs the cartridge, falling back
// to MBC1 behaviour for unsupported cartridge types (spec.md §7(a)).
func New(rom []byte, logger log.Logger) *Cartridge {
	if logger == nil {
		logger = log.NewNull()
	}
	h := parseHeader(rom)
	if !h.Supported {
		logger.Warnf("cartridge: unsupported type %#02x, falling back to MBC1 behaviour", h.CartridgeType)
	}
	return &Cartridge{
		Header: h,
		mbc:    newMBC(rom, h),
		log:    logger,
	}
}

// Read dispatches a ROM (0x0000-0x7FFF) or cartridge-RAM (0xA000-0xBFFF)
// read to the MBC.
func (c *Cartridge) Read(addr uint16) uint8 { return c.mbc.Read(addr) }

// Write dispatches a banking-register or cartridge-RAM write to the MBC.
func (c *Cartridge) Write(addr uint16, value uint8) { c.mbc.Write(addr, value) }

// Tick advances MBC-internal state that runs independently of CPU
// instruction boundaries (the MBC3 real-time clock).
func (c *Cartridge) Tick(tCycles uint64) { c.mbc.Tick(tCycles) }

// HasBattery reports whether this cartridge persists save RAM.
func (c *Cartridge) HasBattery() bool { return c.Header.HasBattery }

// SaveRAM returns the current save RAM contents for persistence. Returns
// nil if the cartridge has no save RAM.
func (c *Cartridge) SaveRAM() []byte {
	if !c.Header.HasBattery {
		return nil
	}
	return c.mbc.SaveRAM()
}

// LoadSaveRAM hydrates save RAM from previously persisted bytes. Per
// spec.md §6, data longer than the cartridge's RAM size is truncated;
// data shorter than it leaves the rest of save RAM unchanged. A nil or empty data
// slice is a no-op, matching the "save-RAM load I/O failure: proceed
// with zeroed RAM" policy of spec.md §7(c) — callers that hit a read
// error pass nil here.
func (c *Cartridge) LoadSaveRAM(data []byte) {
	if !c.Header.HasBattery || len(data) == 0 {
		return
	}
	c.mbc.LoadRAM(data)
}
