// Package serial stubs the Game Boy link-cable port. spec.md places the
// real shift-clock protocol out of scope (Non-goal); SB/SC are modeled
// as plain registers that never complete a transfer or raise the
// serial interrupt, which is enough for software that merely probes
// for a connected link cable and finds none.
package serial

// Controller holds the SB (data) and SC (control) registers.
type Controller struct {
	sb uint8
	sc uint8
}

// New returns a serial controller with no cable attached.
func New() *Controller { return &Controller{} }

func (c *Controller) ReadSB() uint8 { return c.sb }
func (c *Controller) WriteSB(v uint8) { c.sb = v }

// ReadSC returns SC with the always-1 bits set, per hardware.
func (c *Controller) ReadSC() uint8 { return c.sc | 0x7E }

// WriteSC stores the control bits. A transfer-start write is accepted
// but never completes: no data ever shifts in, and the serial interrupt
// is never raised.
func (c *Controller) WriteSC(v uint8) { c.sc = v & 0x81 }
