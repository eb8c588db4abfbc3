package gameboy

import (
	"github.com/Santitub/gomeboy/internal/apu"
	"github.com/Santitub/gomeboy/internal/cpu"
	"github.com/Santitub/gomeboy/internal/log"
)

// Options configures a GameBoy at construction time. Use the With*
// functions below rather than constructing Options directly.
type Options struct {
	sampleRate int
	sink       apu.AudioSink
	logger     log.Logger
	fault      cpu.FaultHandler
	cheats     []Cheat
}

// Option mutates an in-progress Options value.
type Option func(*Options)

func defaultOptions() Options {
	return Options{
		sampleRate: 44100,
		sink:       apu.NullSink(),
		logger:     log.NewNull(),
		fault:      nil,
	}
}

// WithSampleRate sets the APU's output sample rate in Hz.
func WithSampleRate(hz int) Option {
	return func(o *Options) { o.sampleRate = hz }
}

// WithAudioSink injects the destination for synthesized audio frames.
func WithAudioSink(sink apu.AudioSink) Option {
	return func(o *Options) { o.sink = sink }
}

// WithLogger injects a logger. The zero value keeps the null logger.
func WithLogger(l log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithFaultHandler installs a callback invoked when the CPU executes an
// illegal opcode and stalls.
func WithFaultHandler(h cpu.FaultHandler) Option {
	return func(o *Options) { o.fault = h }
}

// WithCheats installs a fixed list of memory-patch cheats applied after
// every CPU step, e.g. Game Genie/GameShark style codes.
func WithCheats(cheats []Cheat) Option {
	return func(o *Options) { o.cheats = cheats }
}

// Cheat patches a single memory address to a fixed value after every
// CPU step, optionally gated on the address currently holding
// CompareValue (compare-and-patch, matching GameShark/Game Genie codes).
type Cheat struct {
	Address      uint16
	Value        uint8
	CompareValue uint8
	UseCompare   bool
}
