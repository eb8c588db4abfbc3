package cartridge

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash"
)

// Type identifies the cartridge hardware declared at ROM header byte
// 0x147.
type Type uint8

const (
	ROM               Type = 0x00
	MBC1              Type = 0x01
	MBC1RAM           Type = 0x02
	MBC1RAMBATT       Type = 0x03
	MBC2              Type = 0x05
	MBC2BATT          Type = 0x06
	ROMRAM            Type = 0x08
	ROMRAMBATT        Type = 0x09
	MBC3TIMERBATT     Type = 0x0F
	MBC3TIMERRAMBATT  Type = 0x10
	MBC3              Type = 0x11
	MBC3RAM           Type = 0x12
	MBC3RAMBATT       Type = 0x13
	MBC5              Type = 0x19
	MBC5RAM           Type = 0x1A
	MBC5RAMBATT       Type = 0x1B
	MBC5RUMBLE        Type = 0x1C
	MBC5RUMBLERAM     Type = 0x1D
	MBC5RUMBLERAMBATT Type = 0x1E
)

// batteryTypes is the set of cartridge types that persist save RAM (and,
// for MBC3, the RTC snapshot) across power cycles.
var batteryTypes = map[Type]bool{
	MBC1RAMBATT:       true,
	MBC2BATT:          true,
	ROMRAMBATT:        true,
	MBC3TIMERBATT:     true,
	MBC3TIMERRAMBATT:  true,
	MBC3RAMBATT:       true,
	MBC5RAMBATT:       true,
	MBC5RUMBLERAMBATT: true,
}

// ramSizes maps RAM-size header code (0x149) to a byte count, per
// spec.md §6. An out-of-table code is treated as 0, per §7(b).
var ramSizes = map[uint8]uint{
	0x00: 0,
	0x01: 2 * 1024,
	0x02: 8 * 1024,
	0x03: 32 * 1024,
	0x04: 128 * 1024,
	0x05: 64 * 1024,
}

// Header describes the fields of a cartridge's 0x0100-0x014F header that
// the banking and persistence logic cares about.
type Header struct {
	Title         string
	CartridgeType Type
	ROMSize       uint
	RAMSize       uint
	HasBattery    bool
	HasRTC        bool

	// Supported is false when CartridgeType doesn't map to a known MBC;
	// the cartridge still loads, falling back to MBC1 behaviour, per
	// spec.md §7(a).
	Supported bool

	// ContentHash is a fast, stable digest of the full ROM body,
	// computed once at load time. It has no bearing on emulation
	// correctness; it exists so a host can key save files or cheat
	// tables to ROM content rather than filename.
	ContentHash uint64
}

// parseHeader reads the header fields out of a full ROM image. It never
// fails: malformed or truncated headers fall back to the actual byte
// length for ROM size and 0 for RAM size, per spec.md §7(b).
func parseHeader(rom []byte) Header {
	h := Header{}

	if len(rom) >= 0x144 {
		h.Title = strings.TrimRight(string(rom[0x134:0x144]), "\x00")
	}

	if len(rom) > 0x147 {
		h.CartridgeType = Type(rom[0x147])
	}

	if len(rom) > 0x148 {
		code := rom[0x148]
		if code <= 0x08 {
			h.ROMSize = (32 * 1024) << code
		} else {
			h.ROMSize = uint(len(rom))
		}
	} else {
		h.ROMSize = uint(len(rom))
	}
	if uint(len(rom)) != h.ROMSize {
		// header disagrees with the actual file: trust what we can read.
		h.ROMSize = uint(len(rom))
	}

	if len(rom) > 0x149 {
		if size, ok := ramSizes[rom[0x149]]; ok {
			h.RAMSize = size
		}
	}

	switch h.CartridgeType {
	case ROM, MBC1, MBC1RAM, MBC1RAMBATT, MBC2, MBC2BATT, ROMRAM, ROMRAMBATT,
		MBC3TIMERBATT, MBC3TIMERRAMBATT, MBC3, MBC3RAM, MBC3RAMBATT,
		MBC5, MBC5RAM, MBC5RAMBATT, MBC5RUMBLE, MBC5RUMBLERAM, MBC5RUMBLERAMBATT:
		h.Supported = true
	default:
		h.Supported = false
	}

	h.HasBattery = batteryTypes[h.CartridgeType]
	h.HasRTC = h.CartridgeType == MBC3TIMERBATT || h.CartridgeType == MBC3TIMERRAMBATT

	if h.CartridgeType == MBC2 || h.CartridgeType == MBC2BATT {
		h.RAMSize = 512 // 512 nibbles, packed one per byte
	}

	h.ContentHash = xxhash.Sum64(rom)

	return h
}

func (h Header) String() string {
	return fmt.Sprintf("%s (type=%#02x rom=%dKiB ram=%dB battery=%v)",
		h.Title, h.CartridgeType, h.ROMSize/1024, h.RAMSize, h.HasBattery)
}
