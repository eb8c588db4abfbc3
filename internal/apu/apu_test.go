package apu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Santitub/gomeboy/internal/types"
)

type captureSink struct{ frames [][]float32 }

func (s *captureSink) PushSamples(samples []float32) {
	cp := make([]float32, len(samples))
	copy(cp, samples)
	s.frames = append(s.frames, cp)
}

func TestGenerateFrameProducesInterleavedStereoSamples(t *testing.T) {
	sink := &captureSink{}
	a := New(44100, sink)
	a.Write(types.NR52, 0x80) // power on
	a.Write(types.NR50, 0x77)
	a.Write(types.NR51, 0xFF) // all channels to both ears
	a.Write(types.NR12, 0xF0) // ch1 envelope: max volume, no sweep
	a.Write(types.NR14, 0x87) // trigger, freq hi bits
	a.GenerateFrame()

	require.Len(t, sink.frames, 1)
	assert.True(t, len(sink.frames[0])%2 == 0)
	assert.NotEmpty(t, sink.frames[0])
}

func TestPowerOffResetsChannelsButKeepsWaveRAM(t *testing.T) {
	a := New(44100, NullSink())
	a.Write(types.NR52, 0x80)
	a.Write(types.WaveRAMStart, 0xAB)
	a.Write(types.NR52, 0x00) // power off
	assert.Equal(t, uint8(0xAB), a.Read(types.WaveRAMStart))
	assert.Equal(t, uint8(0), a.readNR50())
}

func TestLFSRNoiseChannelIsDeterministic(t *testing.T) {
	c1 := newNoiseChannel()
	c2 := newNoiseChannel()
	c1.trigger()
	c2.trigger()
	for i := 0; i < 100; i++ {
		c1.clockLFSR()
		c2.clockLFSR()
	}
	assert.Equal(t, c1.lfsr, c2.lfsr)
}

// TestLFSRMatchesDocumentedBitSequence pins the literal 15-bit-mode,
// divisor-code-0, clock-shift-0 sequence from spec.md §8 scenario 6:
// the first 16 output bits after trigger are fifteen 1s then a 0. The
// first value is the triggered LFSR's own bit 0 before any clock;
// each subsequent value is bit 0 after one more clockLFSR call.
func TestLFSRMatchesDocumentedBitSequence(t *testing.T) {
	c := newNoiseChannel()
	c.clockShift = 0
	c.divisorCode = 0
	c.widthMode = false
	c.trigger()

	want := []uint8{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0}
	got := make([]uint8, 0, 16)
	got = append(got, uint8(c.lfsr&1))
	for i := 0; i < 15; i++ {
		c.clockLFSR()
		got = append(got, uint8(c.lfsr&1))
	}
	assert.Equal(t, want, got)
}
