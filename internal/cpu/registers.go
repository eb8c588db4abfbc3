package cpu

import "github.com/Santitub/gomeboy/internal/types"

// Registers holds the LR35902's 8 general registers, viewable as the
// four 16-bit pairs AF/BC/DE/HL. See spec.md §3.
type Registers struct {
	A, B, C, D, E, F, H, L uint8

	BC *types.RegisterPair
	DE *types.RegisterPair
	HL *types.RegisterPair
	AF *types.RegisterPair
}

func newRegisters() Registers {
	r := Registers{}
	r.BC = &types.RegisterPair{High: &r.B, Low: &r.C}
	r.DE = &types.RegisterPair{High: &r.D, Low: &r.E}
	r.HL = &types.RegisterPair{High: &r.H, Low: &r.L}
	r.AF = &types.RegisterPair{High: &r.A, Low: &r.F}
	return r
}

// Flag bit positions within F. Bits 0-3 of F always read as 0.
const (
	flagZ uint8 = 0x80
	flagN uint8 = 0x40
	flagH uint8 = 0x20
	flagC uint8 = 0x10
)

func (c *CPU) setFlag(mask uint8, set bool) {
	if set {
		c.F |= mask
	} else {
		c.F &^= mask
	}
	c.F &= 0xF0
}

func (c *CPU) flag(mask uint8) bool { return c.F&mask != 0 }

// reg8Ptr indexes B,C,D,E,H,L,(HL),A the way every 3-bit opcode field
// does. Index 6 means "the byte at (HL)" and yields nil, so callers must
// special case it since it implies a memory access.
func (c *CPU) reg8Ptr(idx uint8) *uint8 {
	switch idx {
	case 0:
		return &c.B
	case 1:
		return &c.C
	case 2:
		return &c.D
	case 3:
		return &c.E
	case 4:
		return &c.H
	case 5:
		return &c.L
	case 7:
		return &c.A
	}
	return nil
}

// getReg8 reads register/operand idx, ticking a memory access for
// idx==6 ((HL)).
func (c *CPU) getReg8(idx uint8) uint8 {
	if idx == 6 {
		return c.readByte(c.HL.Uint16())
	}
	return *c.reg8Ptr(idx)
}

// setReg8 writes register/operand idx, ticking a memory access for
// idx==6 ((HL)).
func (c *CPU) setReg8(idx uint8, v uint8) {
	if idx == 6 {
		c.writeByte(c.HL.Uint16(), v)
		return
	}
	*c.reg8Ptr(idx) = v
}
