// Package apu implements the Game Boy's 4-channel audio processing
// unit. Per spec.md §5, the APU never runs per T-cycle; the
// orchestrator drains it for one frame's worth of samples once the PPU
// reaches VBlank. See spec.md §4.5.
package apu

import "math"

// AudioSink receives a frame's interleaved stereo samples. The APU
// contains no I/O of its own: a sink is injected at construction, per
// spec.md §9's design note (no global device lookup inside the APU).
type AudioSink interface {
	PushSamples(samples []float32)
}

type nullSink struct{}

func (nullSink) PushSamples([]float32) {}

// NullSink discards every sample; used when the host doesn't care about
// audio output, per spec.md §7(f).
func NullSink() AudioSink { return nullSink{} }

const frameRate = 59.73

// APU owns the 4 sound channels and the mixing/master-control
// registers (NR50-NR52).
type APU struct {
	enabled bool

	ch1 *pulseChannel
	ch2 *pulseChannel
	ch3 *waveChannel
	ch4 *noiseChannel

	volumeLeft, volumeRight uint8
	vinLeft, vinRight       bool
	panLeft, panRight       [4]bool

	sampleRate int
	sink       AudioSink

	frameSeqAccum float64
	frameSeqStep  uint8

	sampleCarry float64
}

// New returns an APU sampling at sampleRate Hz (unrelated to the guest
// clock, per spec.md §4.5) and pushing frames to sink.
func New(sampleRate int, sink AudioSink) *APU {
	if sink == nil {
		sink = NullSink()
	}
	return &APU{
		ch1:        newPulseChannel(true),
		ch2:        newPulseChannel(false),
		ch3:        newWaveChannel(),
		ch4:        newNoiseChannel(),
		sampleRate: sampleRate,
		sink:       sink,
	}
}

// SampleRate returns the configured output sample rate.
func (a *APU) SampleRate() int { return a.sampleRate }

// samplesThisFrame returns how many samples to generate for one frame,
// carrying the fractional remainder across frames so the long-run
// average rate matches sampleRate/59.73 exactly.
func (a *APU) samplesThisFrame() int {
	exact := float64(a.sampleRate)/frameRate + a.sampleCarry
	n := int(exact)
	a.sampleCarry = exact - float64(n)
	return n
}

// GenerateFrame synthesizes and pushes one frame of stereo audio to the
// sink, advancing the frame sequencer and every channel's phase as it
// goes.
func (a *APU) GenerateFrame() {
	n := a.samplesThisFrame()
	if n <= 0 {
		return
	}
	out := make([]float32, n*2)

	frameSeqStep := 512.0 / float64(a.sampleRate)
	for i := 0; i < n; i++ {
		if a.enabled {
			a.frameSeqAccum += frameSeqStep
			for a.frameSeqAccum >= 1 {
				a.frameSeqAccum -= 1
				a.stepFrameSequencer()
			}
		}

		var s1, s2, s3, s4 float64
		if a.enabled {
			s1 = a.ch1.sample(a.sampleRate)
			s2 = a.ch2.sample(a.sampleRate)
			s3 = a.ch3.sample(a.sampleRate)
			s4 = a.ch4.sample(a.sampleRate)
		}

		left := 0.0
		right := 0.0
		chans := [4]float64{s1, s2, s3, s4}
		for c := 0; c < 4; c++ {
			if a.panLeft[c] {
				left += chans[c]
			}
			if a.panRight[c] {
				right += chans[c]
			}
		}

		const normalization = 60.0
		left = left / normalization * float64(a.volumeLeft+1) / 8
		right = right / normalization * float64(a.volumeRight+1) / 8

		out[i*2] = float32(clamp(left, -1, 1))
		out[i*2+1] = float32(clamp(right, -1, 1))
	}

	a.sink.PushSamples(out)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// stepFrameSequencer advances one of the 8 frame-sequencer steps, per
// spec.md §4.5.
func (a *APU) stepFrameSequencer() {
	step := a.frameSeqStep
	a.frameSeqStep = (a.frameSeqStep + 1) % 8

	if step%2 == 0 {
		a.ch1.clockLength()
		a.ch2.clockLength()
		a.ch3.clockLength()
		a.ch4.clockLength()
	}
	if step == 2 || step == 6 {
		a.ch1.clockSweep()
	}
	if step == 7 {
		a.ch1.clockEnvelope()
		a.ch2.clockEnvelope()
		a.ch4.clockEnvelope()
	}
}

func (a *APU) channelStatusBits() uint8 {
	var v uint8
	if a.ch1.enabled {
		v |= 0x01
	}
	if a.ch2.enabled {
		v |= 0x02
	}
	if a.ch3.enabled {
		v |= 0x04
	}
	if a.ch4.enabled {
		v |= 0x08
	}
	return v
}

func setBit(b *[4]bool, channel int, v bool) { b[channel] = v }
