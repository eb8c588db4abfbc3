package cpu

// The primary opcode set decomposes into the classic x/y/z/p/q bit
// fields (opcode = xx yyy zzz, p = yy >> 1, q = yy & 1). Most of the
// 256 primary opcodes fall into a handful of regular families; the
// irregular remainder is handled by explicit cases. See spec.md §4.1,
// §9.
func (c *CPU) execute(opcode uint8) {
	x := opcode >> 6
	y := (opcode >> 3) & 0x7
	z := opcode & 0x7
	p := y >> 1
	q := y & 1

	switch x {
	case 0:
		c.executeX0(y, z, p, q)
	case 1:
		if opcode == 0x76 {
			c.execHALT()
			return
		}
		c.setReg8(y, c.getReg8(z))
	case 2:
		c.executeALU(y, c.getReg8(z))
	case 3:
		c.executeX3(y, z, p, q, opcode)
	}
}

func (c *CPU) executeX0(y, z, p, q uint8) {
	switch z {
	case 0:
		switch y {
		case 0: // NOP
		case 1: // LD (nn),SP
			addr := c.fetch16()
			c.writeByte(addr, uint8(c.SP&0xFF))
			c.writeByte(addr+1, uint8(c.SP>>8))
		case 2:
			c.execSTOP()
		case 3:
			c.jr(true)
		default:
			c.jr(c.condition(y - 4))
		}
	case 1:
		if q == 0 {
			c.setRP(p, c.fetch16())
		} else {
			c.addHL(c.getRP(p))
		}
	case 2:
		hl := c.HL.Uint16()
		switch {
		case q == 0 && p == 0:
			c.writeByte(c.BC.Uint16(), c.A)
		case q == 0 && p == 1:
			c.writeByte(c.DE.Uint16(), c.A)
		case q == 0 && p == 2:
			c.writeByte(hl, c.A)
			c.HL.SetUint16(hl + 1)
		case q == 0 && p == 3:
			c.writeByte(hl, c.A)
			c.HL.SetUint16(hl - 1)
		case q == 1 && p == 0:
			c.A = c.readByte(c.BC.Uint16())
		case q == 1 && p == 1:
			c.A = c.readByte(c.DE.Uint16())
		case q == 1 && p == 2:
			c.A = c.readByte(hl)
			c.HL.SetUint16(hl + 1)
		case q == 1 && p == 3:
			c.A = c.readByte(hl)
			c.HL.SetUint16(hl - 1)
		}
	case 3:
		if q == 0 {
			c.setRP(p, c.getRP(p)+1)
		} else {
			c.setRP(p, c.getRP(p)-1)
		}
		c.delay(4)
	case 4:
		c.setReg8(y, c.inc8(c.getReg8(y)))
	case 5:
		c.setReg8(y, c.dec8(c.getReg8(y)))
	case 6:
		c.setReg8(y, c.fetch8())
	case 7:
		switch y {
		case 0:
			c.A = c.rlc(c.A)
			c.setFlag(flagZ, false)
		case 1:
			c.A = c.rrc(c.A)
			c.setFlag(flagZ, false)
		case 2:
			c.A = c.rl(c.A)
			c.setFlag(flagZ, false)
		case 3:
			c.A = c.rr(c.A)
			c.setFlag(flagZ, false)
		case 4:
			c.daa()
		case 5:
			c.cpl()
		case 6:
			c.scf()
		case 7:
			c.ccf()
		}
	}
}

func (c *CPU) executeX3(y, z, p, q uint8, opcode uint8) {
	switch z {
	case 0:
		switch {
		case y <= 3:
			c.delay(4)
			if c.condition(y) {
				c.PC = c.popWord()
				c.delay(4)
			}
		case y == 4:
			n := c.fetch8()
			c.writeByte(0xFF00+uint16(n), c.A)
		case y == 5:
			e := int8(c.fetch8())
			c.SP = c.addSPSigned(e)
			c.delay(8)
		case y == 6:
			n := c.fetch8()
			c.A = c.readByte(0xFF00 + uint16(n))
		case y == 7:
			e := int8(c.fetch8())
			c.HL.SetUint16(c.addSPSigned(e))
			c.delay(4)
		}
	case 1:
		if q == 0 {
			c.setRP2(p, c.popWord())
			return
		}
		switch p {
		case 0:
			c.PC = c.popWord()
			c.delay(4)
		case 1:
			c.PC = c.popWord()
			c.delay(4)
			c.irq.IME = true
		case 2:
			c.PC = c.HL.Uint16()
		case 3:
			c.SP = c.HL.Uint16()
			c.delay(4)
		}
	case 2:
		switch {
		case y <= 3:
			addr := c.fetch16()
			if c.condition(y) {
				c.PC = addr
				c.delay(4)
			}
		case y == 4:
			c.writeByte(0xFF00+uint16(c.C), c.A)
		case y == 5:
			addr := c.fetch16()
			c.writeByte(addr, c.A)
		case y == 6:
			c.A = c.readByte(0xFF00 + uint16(c.C))
		case y == 7:
			addr := c.fetch16()
			c.A = c.readByte(addr)
		}
	case 3:
		switch y {
		case 0:
			c.PC = c.fetch16()
			c.delay(4)
		case 1:
			c.executeCB(c.fetch8())
		case 6:
			c.irq.DisableImmediately()
		case 7:
			c.irq.RequestEI()
		default:
			c.raiseFault(opcode)
		}
	case 4:
		if y <= 3 {
			addr := c.fetch16()
			if c.condition(y) {
				c.delay(4)
				c.pushWord(c.PC)
				c.PC = addr
			}
			return
		}
		c.raiseFault(opcode)
	case 5:
		switch {
		case q == 0:
			c.delay(4)
			c.pushWord(c.getRP2(p))
		case p == 0:
			addr := c.fetch16()
			c.delay(4)
			c.pushWord(c.PC)
			c.PC = addr
		default:
			c.raiseFault(opcode)
		}
	case 6:
		c.executeALU(y, c.fetch8())
	case 7:
		c.delay(4)
		c.pushWord(c.PC)
		c.PC = uint16(y) * 8
	}
}

func (c *CPU) executeALU(y uint8, v uint8) {
	switch y {
	case 0:
		c.add8(v, false)
	case 1:
		c.add8(v, true)
	case 2:
		c.sub8(v, false, false)
	case 3:
		c.sub8(v, true, false)
	case 4:
		c.and8(v)
	case 5:
		c.xor8(v)
	case 6:
		c.or8(v)
	case 7:
		c.sub8(v, false, true)
	}
}

// jr implements JR d and the conditional JR cc,d forms; the operand is
// always fetched regardless of whether the branch is taken.
func (c *CPU) jr(taken bool) {
	d := int8(c.fetch8())
	if taken {
		c.PC = uint16(int32(c.PC) + int32(d))
		c.delay(4)
	}
}

func (c *CPU) condition(y uint8) bool {
	switch y {
	case 0:
		return !c.flag(flagZ)
	case 1:
		return c.flag(flagZ)
	case 2:
		return !c.flag(flagC)
	case 3:
		return c.flag(flagC)
	}
	return false
}

func (c *CPU) getRP(p uint8) uint16 {
	switch p {
	case 0:
		return c.BC.Uint16()
	case 1:
		return c.DE.Uint16()
	case 2:
		return c.HL.Uint16()
	default:
		return c.SP
	}
}

func (c *CPU) setRP(p uint8, v uint16) {
	switch p {
	case 0:
		c.BC.SetUint16(v)
	case 1:
		c.DE.SetUint16(v)
	case 2:
		c.HL.SetUint16(v)
	default:
		c.SP = v
	}
}

// getRP2/setRP2 substitute AF for SP at p==3, for PUSH/POP.
func (c *CPU) getRP2(p uint8) uint16 {
	if p == 3 {
		return c.AF.Uint16() & 0xFFF0
	}
	return c.getRP(p)
}

func (c *CPU) setRP2(p uint8, v uint16) {
	if p == 3 {
		c.AF.SetUint16(v & 0xFFF0)
		return
	}
	c.setRP(p, v)
}

func (c *CPU) popWord() uint16 {
	lo := c.readByte(c.SP)
	c.SP++
	hi := c.readByte(c.SP)
	c.SP++
	return uint16(hi)<<8 | uint16(lo)
}

func (c *CPU) pushWord(v uint16) {
	c.SP--
	c.writeByte(c.SP, uint8(v>>8))
	c.SP--
	c.writeByte(c.SP, uint8(v&0xFF))
}
