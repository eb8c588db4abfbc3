package cartridge

// mbc2 implements cartridge types 0x05-0x06: a simple 4-bit ROM bank
// register and 512x4-bit built-in RAM. See spec.md §4.2.
type mbc2 struct {
	rom []byte
	ram [512]byte // nibbles, stored one per byte; high nibble always reads 0xF

	ramEnabled bool
	romBank    uint8
	romBanks   int
}

func newMBC2(rom []byte) *mbc2 {
	return &mbc2{rom: rom, romBank: 1, romBanks: romBankCount(uint(len(rom)))}
}

func (m *mbc2) Read(addr uint16) uint8 {
	switch {
	case addr < 0x4000:
		if int(addr) < len(m.rom) {
			return m.rom[addr]
		}
		return 0xFF
	case addr < 0x8000:
		bank := int(m.romBank) % max1(m.romBanks)
		off := bank*0x4000 + int(addr-0x4000)
		if off < len(m.rom) {
			return m.rom[off]
		}
		return 0xFF
	case addr >= 0xA000 && addr < 0xC000:
		if !m.ramEnabled {
			return 0xFF
		}
		return m.ram[addr&0x1FF] | 0xF0
	}
	return 0xFF
}

func (m *mbc2) Write(addr uint16, value uint8) {
	switch {
	case addr < 0x4000:
		// bit 8 of the address distinguishes RAM-enable from ROM-bank writes.
		if addr&0x0100 == 0 {
			m.ramEnabled = value&0x0F == 0x0A
		} else {
			v := value & 0x0F
			if v == 0 {
				v = 1
			}
			m.romBank = v
		}
	case addr >= 0xA000 && addr < 0xC000:
		if m.ramEnabled {
			m.ram[addr&0x1FF] = value & 0x0F
		}
	}
}

func (m *mbc2) SaveRAM() []byte { return m.ram[:] }
func (m *mbc2) LoadRAM(data []byte) {
	copy(m.ram[:], data)
}
func (m *mbc2) Tick(uint64) {}
