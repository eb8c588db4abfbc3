package joypad

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Santitub/gomeboy/internal/interrupts"
)

func TestReadReflectsSelectedRow(t *testing.T) {
	irq := interrupts.NewService()
	j := New(irq)
	j.Press(A)
	j.Write(0x10) // select action row (bit5=0 selects action per real hardware polarity)
	v := j.Read()
	assert.Equal(t, uint8(0), v&0x01) // A pressed -> bit0 low
}

func TestPressRaisesJoypadInterruptOnFallingEdge(t *testing.T) {
	irq := interrupts.NewService()
	j := New(irq)
	j.Write(0x20) // select direction row
	j.Press(Down)
	assert.NotZero(t, irq.Flag&(1<<interrupts.JoypadFlag))
}

func TestReleaseClearsBit(t *testing.T) {
	irq := interrupts.NewService()
	j := New(irq)
	j.Write(0x20)
	j.Press(Up)
	j.Release(Up)
	v := j.Read()
	assert.Equal(t, uint8(0x04), v&0x04) // Up is bit2 of the direction row
}
