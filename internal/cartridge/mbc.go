package cartridge

// MBC is the interface every memory bank controller implements. The
// cartridge owns exactly one MBC instance, selected from the header's
// cartridge-type byte.
type MBC interface {
	// Read returns the byte mapped at addr, which is always in
	// 0x0000-0x7FFF (ROM) or 0xA000-0xBFFF (cartridge RAM).
	Read(addr uint16) uint8
	// Write handles a CPU write into the same two ranges: ROM writes
	// reconfigure banking registers, RAM writes store to save RAM.
	Write(addr uint16, value uint8)
	// SaveRAM returns the live cartridge RAM for persistence. The
	// returned slice aliases the MBC's internal storage.
	SaveRAM() []byte
	// LoadRAM restores previously persisted cartridge RAM, copying as
	// many bytes as fit.
	LoadRAM(data []byte)
	// Tick advances any wall-clock-like internal state (the MBC3 RTC);
	// a no-op for every other controller.
	Tick(tCycles uint64)
}

func romBankCount(romSize uint) int {
	n := romSize / 0x4000
	if n == 0 {
		return 1
	}
	return int(n)
}

func ramBankCount(ramSize uint) int {
	n := ramSize / 0x2000
	if n == 0 {
		return 0
	}
	return int(n)
}

// newMBC constructs the MBC implementation named by the header,
// defaulting to MBC1 for any unsupported type per spec.md §7(a).
func newMBC(rom []byte, h Header) MBC {
	switch {
	case h.CartridgeType == ROM:
		return newNoMBC(rom)
	case h.CartridgeType == MBC2 || h.CartridgeType == MBC2BATT:
		return newMBC2(rom)
	case h.CartridgeType == MBC3 || h.CartridgeType == MBC3RAM || h.CartridgeType == MBC3RAMBATT ||
		h.CartridgeType == MBC3TIMERBATT || h.CartridgeType == MBC3TIMERRAMBATT:
		return newMBC3(rom, h)
	case h.CartridgeType == MBC5 || h.CartridgeType == MBC5RAM || h.CartridgeType == MBC5RAMBATT ||
		h.CartridgeType == MBC5RUMBLE || h.CartridgeType == MBC5RUMBLERAM || h.CartridgeType == MBC5RUMBLERAMBATT:
		return newMBC5(rom, h)
	default:
		// MBC1, ROMRAM(BATT), and anything unrecognised: MBC1 behaviour.
		return newMBC1(rom, h)
	}
}

// noMBC is cartridge type 0x00: a fixed 32 KiB ROM, no banking, no RAM.
type noMBC struct {
	rom []byte
}

func newNoMBC(rom []byte) *noMBC { return &noMBC{rom: rom} }

func (m *noMBC) Read(addr uint16) uint8 {
	if int(addr) < len(m.rom) {
		return m.rom[addr]
	}
	return 0xFF
}
func (m *noMBC) Write(uint16, uint8)    {}
func (m *noMBC) SaveRAM() []byte        { return nil }
func (m *noMBC) LoadRAM([]byte)         {}
func (m *noMBC) Tick(tCycles uint64)    {}
