package cartridge

// mbc5 implements cartridge types 0x19-0x1E: a 9-bit ROM bank (no 0→1
// remap) and a 4-bit RAM bank. See spec.md §4.2.
type mbc5 struct {
	rom []byte
	ram []byte

	ramEnabled bool
	romBankLo  uint8
	romBankHi  uint8
	ramBank    uint8

	romBanks int
	ramBanks int

	hasRumble bool
}

func newMBC5(rom []byte, h Header) *mbc5 {
	return &mbc5{
		rom:       rom,
		ram:       make([]byte, h.RAMSize),
		romBankLo: 1,
		romBanks:  romBankCount(h.ROMSize),
		ramBanks:  ramBankCount(h.RAMSize),
		hasRumble: h.CartridgeType == MBC5RUMBLE || h.CartridgeType == MBC5RUMBLERAM || h.CartridgeType == MBC5RUMBLERAMBATT,
	}
}

func (m *mbc5) romBank() int {
	return int(m.romBankLo) | int(m.romBankHi)<<8
}

func (m *mbc5) Read(addr uint16) uint8 {
	switch {
	case addr < 0x4000:
		if int(addr) < len(m.rom) {
			return m.rom[addr]
		}
		return 0xFF
	case addr < 0x8000:
		bank := m.romBank() % max1(m.romBanks)
		off := bank*0x4000 + int(addr-0x4000)
		if off < len(m.rom) {
			return m.rom[off]
		}
		return 0xFF
	case addr >= 0xA000 && addr < 0xC000:
		if !m.ramEnabled || len(m.ram) == 0 {
			return 0xFF
		}
		bank := int(m.ramBank&0x0F) % max1(m.ramBanks)
		off := bank*0x2000 + int(addr-0xA000)
		if off < len(m.ram) {
			return m.ram[off]
		}
		return 0xFF
	}
	return 0xFF
}

func (m *mbc5) Write(addr uint16, value uint8) {
	switch {
	case addr < 0x2000:
		m.ramEnabled = value&0x0F == 0x0A
	case addr < 0x3000:
		m.romBankLo = value
	case addr < 0x4000:
		m.romBankHi = value & 0x01
	case addr < 0x6000:
		m.ramBank = value & 0x0F
	case addr >= 0xA000 && addr < 0xC000:
		if !m.ramEnabled || len(m.ram) == 0 {
			return
		}
		bank := int(m.ramBank&0x0F) % max1(m.ramBanks)
		off := bank*0x2000 + int(addr-0xA000)
		if off < len(m.ram) {
			m.ram[off] = value
		}
	}
}

func (m *mbc5) SaveRAM() []byte { return m.ram }
func (m *mbc5) LoadRAM(data []byte) {
	copy(m.ram, data)
}
func (m *mbc5) Tick(uint64) {}
