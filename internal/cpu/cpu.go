// Package cpu implements the Sharp LR35902 instruction set: the 8
// registers, flag semantics, per-memory-access T-cycle ticking, HALT
// (including the HALT bug), the EI instruction delay, and interrupt
// dispatch in priority order. See spec.md §3, §4.1.
package cpu

import (
	"github.com/Santitub/gomeboy/internal/interrupts"
	"github.com/Santitub/gomeboy/internal/mmu"
)

// Fault describes an illegal opcode encountered during execution. The
// CPU does not panic across its public boundary; instead it reports a
// Fault through the configured handler and locks up, matching real
// hardware's behaviour on the undefined D3/DB/DD/E3/E4/EB/EC/ED/F4/FC/FD
// opcodes.
type Fault struct {
	PC     uint16
	Opcode uint8
}

// FaultHandler receives a Fault when the CPU executes an illegal
// opcode. It may be nil, in which case the fault is silently ignored
// and the CPU simply stalls.
type FaultHandler func(Fault)

// CPU is the Sharp LR35902 core. It owns no memory itself; all access
// goes through the attached MMU, and the CPU itself ticks Timer, PPU
// and cartridge state via CPU.readByte/writeByte/delay.
type CPU struct {
	Registers
	PC, SP uint16

	bus *mmu.MMU
	irq *interrupts.Service

	halted   bool
	haltBug  bool
	stalled  bool
	fault    FaultHandler
	stepTick uint16
}

// New constructs a CPU wired to bus and irq. The boot register state
// mirrors the DMG boot ROM's post-boot values (spec.md §4.1); callers
// that want a different starting state should overwrite fields after
// construction.
func New(bus *mmu.MMU, irq *interrupts.Service, fault FaultHandler) *CPU {
	c := &CPU{Registers: newRegisters(), bus: bus, irq: irq, fault: fault}
	c.A, c.F = 0x01, 0xB0
	c.BC.SetUint16(0x0013)
	c.DE.SetUint16(0x00D8)
	c.HL.SetUint16(0x014D)
	c.SP = 0xFFFE
	c.PC = 0x0100
	return c
}

// tick advances Timer/PPU/cartridge state by t T-cycles and accumulates
// the total consumed by the in-flight Step call.
func (c *CPU) tick(t uint16) {
	c.bus.Timer.Tick(t)
	c.bus.PPU.Tick(t)
	c.bus.TickCartridge(uint64(t))
	c.stepTick += t
}

// readByte performs a clocked memory read: the datum only becomes
// visible to the CPU after the 4 T-cycle access has been charged to
// Timer/PPU, per spec.md §4.1.
func (c *CPU) readByte(addr uint16) uint8 {
	v := c.bus.Read(addr)
	c.tick(4)
	return v
}

func (c *CPU) writeByte(addr uint16, v uint8) {
	c.bus.Write(addr, v)
	c.tick(4)
}

// delay charges an internal CPU cycle that touches no memory bus, e.g.
// the extra cycle ADD HL,rr spends computing the 16-bit sum.
func (c *CPU) delay(t uint16) { c.tick(t) }

func (c *CPU) fetch8() uint8 {
	v := c.readByte(c.PC)
	c.PC++
	return v
}

func (c *CPU) fetch16() uint16 {
	lo := c.fetch8()
	hi := c.fetch8()
	return uint16(hi)<<8 | uint16(lo)
}

// Step executes exactly one instruction (or one interrupt dispatch, or
// one HALT/stall tick) and returns the number of T-cycles it consumed.
func (c *CPU) Step() uint8 {
	c.stepTick = 0

	if c.stalled {
		c.delay(4)
		return uint8(c.stepTick)
	}

	pending := c.irq.Pending()
	if c.halted {
		if pending == 0 {
			c.delay(4)
			return uint8(c.stepTick)
		}
		c.halted = false
		if c.irq.IME {
			c.serviceInterrupt(pending)
			c.irq.Step()
			return uint8(c.stepTick)
		}
		// IME clear: the CPU simply resumes from PC, no service.
	} else if c.irq.IME && pending != 0 {
		c.serviceInterrupt(pending)
		c.irq.Step()
		return uint8(c.stepTick)
	}

	var opcode uint8
	if c.haltBug {
		// The HALT bug re-reads the same PC without advancing it.
		opcode = c.readByte(c.PC)
		c.haltBug = false
	} else {
		opcode = c.fetch8()
	}

	c.execute(opcode)
	c.irq.Step()
	return uint8(c.stepTick)
}

// serviceInterrupt implements the 20 T-cycle dispatch sequence: 8
// cycles internal delay, IF bit + IME clear, a pushed PC (8 cycles),
// PC set to the vector, and 4 further internal cycles.
func (c *CPU) serviceInterrupt(pending uint8) {
	c.delay(8)
	flag, vector := highestPriority(pending)
	c.irq.Clear(flag)
	c.irq.IME = false
	c.SP--
	c.writeByte(c.SP, uint8(c.PC>>8))
	c.SP--
	c.writeByte(c.SP, uint8(c.PC&0xFF))
	c.PC = vector
	c.delay(4)
}

func highestPriority(pending uint8) (uint8, uint16) {
	for _, v := range interrupts.Vectors {
		if pending&(1<<v.Flag) != 0 {
			return v.Flag, v.Vector
		}
	}
	return 0, 0
}

// raiseFault reports an illegal opcode and locks the CPU up so it
// never fetches again, matching hardware's undefined-opcode lockup.
func (c *CPU) raiseFault(opcode uint8) {
	c.stalled = true
	if c.fault != nil {
		c.fault(Fault{PC: c.PC - 1, Opcode: opcode})
	}
}

// execHALT implements the HALT instruction's three distinct outcomes
// depending on IME and whether an interrupt is already pending,
// including the HALT bug (spec.md §4.1).
func (c *CPU) execHALT() {
	pending := c.irq.Pending()
	switch {
	case c.irq.IME:
		c.halted = true
	case pending != 0:
		c.haltBug = true
	default:
		c.halted = true
	}
}

// execSTOP treats STOP as "fetch and discard the next byte", and
// resets the Timer's internal divider. CGB double-speed switching is a
// non-goal (spec.md §1), so STOP otherwise behaves as a no-op.
func (c *CPU) execSTOP() {
	c.fetch8()
	c.bus.Timer.WriteDIV(0)
}
