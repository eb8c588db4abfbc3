// Package joypad models the single P1 (0xFF00) register that exposes
// the 8 logical buttons as two 4-bit rows selected by bits 5:4. See
// spec.md §4.6.
package joypad

import "github.com/Santitub/gomeboy/internal/interrupts"

// Button identifies one of the 8 logical Game Boy inputs.
type Button uint8

const (
	Right Button = iota
	Left
	Up
	Down
	A
	B
	Select
	Start
)

// Joypad tracks button state and answers P1 register reads according to
// which row (direction or action) the game has selected.
type Joypad struct {
	// pressed[b] is true while Button b is held down.
	pressed [8]bool

	selectDirection bool
	selectAction    bool

	irq *interrupts.Service
}

// New returns a joypad with no buttons pressed, wired to raise its
// interrupt on irq.
func New(irq *interrupts.Service) *Joypad {
	return &Joypad{irq: irq}
}

// Read returns the P1 register: bits 7:6 always 1, the selector bits
// echoed back, and the 4 low bits reflecting whichever row(s) are
// selected (active-low: 0 = pressed). When both rows are selected the
// bits are ANDed together, matching real hardware.
func (j *Joypad) Read() uint8 {
	v := uint8(0xC0)
	if !j.selectAction {
		v |= 0x20
	}
	if !j.selectDirection {
		v |= 0x10
	}
	lowBits := uint8(0x0F)
	if j.selectDirection {
		lowBits &= j.directionRow()
	}
	if j.selectAction {
		lowBits &= j.actionRow()
	}
	if !j.selectDirection && !j.selectAction {
		lowBits = 0x0F
	}
	return v | lowBits
}

func (j *Joypad) directionRow() uint8 {
	v := uint8(0x0F)
	if j.pressed[Right] {
		v &^= 0x01
	}
	if j.pressed[Left] {
		v &^= 0x02
	}
	if j.pressed[Up] {
		v &^= 0x04
	}
	if j.pressed[Down] {
		v &^= 0x08
	}
	return v
}

func (j *Joypad) actionRow() uint8 {
	v := uint8(0x0F)
	if j.pressed[A] {
		v &^= 0x01
	}
	if j.pressed[B] {
		v &^= 0x02
	}
	if j.pressed[Select] {
		v &^= 0x04
	}
	if j.pressed[Start] {
		v &^= 0x08
	}
	return v
}

// Write stores the row-selector bits (5:4); bits 3:0 are read-only.
func (j *Joypad) Write(value uint8) {
	j.selectAction = value&0x20 == 0
	j.selectDirection = value&0x10 == 0
}

// Press marks b as held, raising the joypad interrupt on a falling edge
// of any bit in a currently-selected row, per spec.md §4.6.
func (j *Joypad) Press(b Button) {
	before := j.Read()
	j.pressed[b] = true
	after := j.Read()
	if before&0x0F != 0 && after&0x0F != before&0x0F {
		j.irq.Request(interrupts.JoypadFlag)
	}
}

// Release marks b as no longer held.
func (j *Joypad) Release(b Button) {
	j.pressed[b] = false
}
