package types

// HardwareAddress is the address of a memory-mapped I/O register, in
// the 0xFF00-0xFF7F range plus the 0xFFFF interrupt-enable register.
type HardwareAddress = uint16

const (
	// P1 selects the joypad input matrix row and reads its state.
	P1 HardwareAddress = 0xFF00
	// SB is the serial transfer data register.
	SB HardwareAddress = 0xFF01
	// SC is the serial transfer control register.
	SC HardwareAddress = 0xFF02
	// DIV is the upper byte of the timer's internal 16-bit counter.
	// Any write, regardless of value, resets the whole counter to 0.
	DIV HardwareAddress = 0xFF04
	// TIMA is the timer counter; it increments at the rate selected by
	// TAC and raises the timer interrupt on overflow.
	TIMA HardwareAddress = 0xFF05
	// TMA is the value TIMA reloads to after an overflow.
	TMA HardwareAddress = 0xFF06
	// TAC enables the timer and selects its increment rate.
	TAC HardwareAddress = 0xFF07
	// IF is the interrupt-flag register: pending, unserviced interrupts.
	IF HardwareAddress = 0xFF0F

	NR10 HardwareAddress = 0xFF10
	NR11 HardwareAddress = 0xFF11
	NR12 HardwareAddress = 0xFF12
	NR13 HardwareAddress = 0xFF13
	NR14 HardwareAddress = 0xFF14
	NR21 HardwareAddress = 0xFF16
	NR22 HardwareAddress = 0xFF17
	NR23 HardwareAddress = 0xFF18
	NR24 HardwareAddress = 0xFF19
	NR30 HardwareAddress = 0xFF1A
	NR31 HardwareAddress = 0xFF1B
	NR32 HardwareAddress = 0xFF1C
	NR33 HardwareAddress = 0xFF1D
	NR34 HardwareAddress = 0xFF1E
	NR41 HardwareAddress = 0xFF20
	NR42 HardwareAddress = 0xFF21
	NR43 HardwareAddress = 0xFF22
	NR44 HardwareAddress = 0xFF23
	NR50 HardwareAddress = 0xFF24
	NR51 HardwareAddress = 0xFF25
	NR52 HardwareAddress = 0xFF26
	// WaveRAMStart is the first address of channel 3's 16-byte wave
	// pattern RAM (32 nibbles).
	WaveRAMStart HardwareAddress = 0xFF30
	WaveRAMEnd   HardwareAddress = 0xFF3F

	// LCDC is the LCD control register.
	LCDC HardwareAddress = 0xFF40
	// STAT is the LCD status register: mode, LYC=LY flag, IRQ sources.
	STAT HardwareAddress = 0xFF41
	// SCY/SCX scroll the background origin.
	SCY HardwareAddress = 0xFF42
	SCX HardwareAddress = 0xFF43
	// LY is the current scanline, 0-153.
	LY HardwareAddress = 0xFF44
	// LYC is compared against LY every time LY changes.
	LYC HardwareAddress = 0xFF45
	// DMA triggers a 160-byte OAM transfer from (value<<8).
	DMA HardwareAddress = 0xFF46
	// BGP/OBP0/OBP1 map 2-bit colour indices to shades.
	BGP  HardwareAddress = 0xFF47
	OBP0 HardwareAddress = 0xFF48
	OBP1 HardwareAddress = 0xFF49
	// WY/WX position the window layer.
	WY HardwareAddress = 0xFF4A
	WX HardwareAddress = 0xFF4B

	// IE is the interrupt-enable register.
	IE HardwareAddress = 0xFFFF
)
