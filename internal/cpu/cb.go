package cpu

// executeCB decodes a CB-prefixed opcode into its own x/y/z fields:
// x=0 rotate/shift family, x=1 BIT, x=2 RES, x=3 SET, each applied to
// register/operand y[z]. See spec.md §4.1.
func (c *CPU) executeCB(opcode uint8) {
	x := opcode >> 6
	y := (opcode >> 3) & 0x7
	z := opcode & 0x7

	switch x {
	case 0:
		v := c.getReg8(z)
		var result uint8
		switch y {
		case 0:
			result = c.rlc(v)
		case 1:
			result = c.rrc(v)
		case 2:
			result = c.rl(v)
		case 3:
			result = c.rr(v)
		case 4:
			result = c.sla(v)
		case 5:
			result = c.sra(v)
		case 6:
			result = c.swap(v)
		case 7:
			result = c.srl(v)
		}
		c.setFlag(flagZ, result == 0)
		c.setReg8(z, result)
	case 1:
		c.bit(y, c.getReg8(z))
	case 2:
		c.setReg8(z, c.getReg8(z)&^(1<<y))
	case 3:
		c.setReg8(z, c.getReg8(z)|(1<<y))
	}
}
