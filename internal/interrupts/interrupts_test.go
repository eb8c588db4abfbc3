package interrupts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPendingRequiresBothEnableAndFlag(t *testing.T) {
	s := NewService()
	s.Request(TimerFlag)
	assert.Equal(t, uint8(0), s.Pending())
	s.WriteIE(1 << TimerFlag)
	assert.Equal(t, uint8(1<<TimerFlag), s.Pending())
}

func TestVectorsAreInPriorityOrder(t *testing.T) {
	expected := []Flag{VBlankFlag, LCDFlag, TimerFlag, SerialFlag, JoypadFlag}
	for i, v := range Vectors {
		assert.Equal(t, expected[i], v.Flag)
	}
}

func TestStepAppliesDeferredEI(t *testing.T) {
	s := NewService()
	s.RequestEI()
	assert.False(t, s.IME)
	s.Step() // EI's own instruction boundary: still masked
	assert.False(t, s.IME)
	s.Step() // the instruction after EI completes: IME now active
	assert.True(t, s.IME)
}

func TestDisableImmediatelyCancelsPendingEI(t *testing.T) {
	s := NewService()
	s.RequestEI()
	s.DisableImmediately()
	s.Step()
	assert.False(t, s.IME)
}
