// Package timer implements the Game Boy's DIV/TIMA/TMA/TAC system timer.
// See spec.md §4.3.
package timer

import "github.com/Santitub/gomeboy/internal/interrupts"

// timaRates gives the number of T-cycles per TIMA increment for each of
// the 4 TAC rate selections (bits 1:0), i.e. {4096, 262144, 65536,
// 16384} Hz.
var timaRates = [4]uint16{1024, 16, 64, 256}

// Timer is the system timer: a free-running 16-bit counter (DIV is its
// high byte) plus the gated TIMA/TMA/TAC overflow-interrupt machinery.
type Timer struct {
	counter uint16 // internal 16-bit counter; DIV = counter>>8
	tima    uint8
	tma     uint8
	tac     uint8

	irq *interrupts.Service
}

// New returns a timer wired to raise its overflow interrupt on irq.
func New(irq *interrupts.Service) *Timer {
	return &Timer{irq: irq}
}

func (t *Timer) enabled() bool { return t.tac&0x04 != 0 }
func (t *Timer) rate() uint16  { return timaRates[t.tac&0x03] }

// Tick advances the timer by tCycles T-cycles, incrementing TIMA at the
// TAC-selected rate and raising the timer interrupt on overflow.
func (t *Timer) Tick(tCycles uint16) {
	for i := uint16(0); i < tCycles; i++ {
		t.counter++
		if t.enabled() && t.counter%t.rate() == 0 {
			t.tima++
			if t.tima == 0 {
				t.tima = t.tma
				t.irq.Request(interrupts.TimerFlag)
			}
		}
	}
}

// ReadDIV returns the visible (high) byte of the internal counter.
func (t *Timer) ReadDIV() uint8 { return uint8(t.counter >> 8) }

// WriteDIV resets the internal counter to 0 regardless of the written
// value, per spec.md §3 and §4.3.
func (t *Timer) WriteDIV(uint8) { t.counter = 0 }

func (t *Timer) ReadTIMA() uint8      { return t.tima }
func (t *Timer) WriteTIMA(v uint8)    { t.tima = v }
func (t *Timer) ReadTMA() uint8       { return t.tma }
func (t *Timer) WriteTMA(v uint8)     { t.tma = v }
func (t *Timer) ReadTAC() uint8       { return t.tac | 0xF8 }
func (t *Timer) WriteTAC(v uint8)     { t.tac = v & 0x07 }
