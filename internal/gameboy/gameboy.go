// Package gameboy wires a cartridge, MMU, and every peripheral into a
// runnable DMG-01 system and drives it one frame at a time. See
// spec.md §2, §5.
package gameboy

import (
	"errors"

	"github.com/Santitub/gomeboy/internal/apu"
	"github.com/Santitub/gomeboy/internal/cartridge"
	"github.com/Santitub/gomeboy/internal/cpu"
	"github.com/Santitub/gomeboy/internal/interrupts"
	"github.com/Santitub/gomeboy/internal/joypad"
	"github.com/Santitub/gomeboy/internal/log"
	"github.com/Santitub/gomeboy/internal/mmu"
	"github.com/Santitub/gomeboy/internal/ppu"
	"github.com/Santitub/gomeboy/internal/serial"
	"github.com/Santitub/gomeboy/internal/timer"
)

// cyclesPerFrame is the nominal number of T-cycles a DMG spends
// producing one frame (154 scanlines * 456 T-cycles).
const cyclesPerFrame = 70224

// ErrFrameOverrun is surfaced when a frame runs past its safety bound
// without the PPU ever reaching VBlank, e.g. because software disabled
// the LCD. The returned framebuffer holds whatever was last rendered.
var ErrFrameOverrun = errors.New("gameboy: frame overrun, LCD off with no VBlank")

// GameBoy is a fully wired DMG-01: cartridge, bus, peripherals and CPU.
type GameBoy struct {
	cart *cartridge.Cartridge
	bus  *mmu.MMU
	cpu  *cpu.CPU

	irq    *interrupts.Service
	ppu    *ppu.PPU
	apu    *apu.APU
	timer  *timer.Timer
	joypad *joypad.Joypad
	serial *serial.Controller

	log    log.Logger
	cheats []Cheat
	fault  cpu.FaultHandler
}

// New constructs a GameBoy with no cartridge loaded; call LoadROM
// before the first RunFrame.
func New(opts ...Option) *GameBoy {
	o := defaultOptions()
	for _, apply := range opts {
		apply(&o)
	}

	irq := interrupts.NewService()
	p := ppu.New(irq)
	a := apu.New(o.sampleRate, o.sink)
	t := timer.New(irq)
	j := joypad.New(irq)
	s := serial.New()
	cart := cartridge.New(make([]byte, 0x8000), o.logger)
	bus := mmu.New(cart, p, a, t, j, s, irq, o.logger)
	c := cpu.New(bus, irq, o.fault)

	return &GameBoy{
		cart: cart, bus: bus, cpu: c,
		irq: irq, ppu: p, apu: a, timer: t, joypad: j, serial: s,
		log: o.logger, cheats: o.cheats, fault: o.fault,
	}
}

// LoadROM replaces the cartridge with one parsed from rom and resets
// the CPU to its post-boot-ROM register state. path is used only for
// logging.
func (g *GameBoy) LoadROM(rom []byte, path string) {
	g.cart = cartridge.New(rom, g.log)
	g.bus.Cartridge = g.cart
	g.log.Infof("gameboy: loaded %s (%s)", path, g.cart.Header.String())
	g.cpu = cpu.New(g.bus, g.irq, g.fault)
}

// RunFrame steps the CPU until the PPU reports a completed frame and
// returns the rendered framebuffer. If the LCD is off and no VBlank
// occurs within 2 frames' worth of cycles, it returns early with
// ErrFrameOverrun and whatever the PPU last rendered.
func (g *GameBoy) RunFrame() (*ppu.Framebuffer, error) {
	g.ppu.FrameReady = false
	var consumed uint64
	for !g.ppu.FrameReady {
		consumed += uint64(g.cpu.Step())
		g.applyCheats()
		if consumed > 2*cyclesPerFrame {
			return &g.ppu.Framebuffer, ErrFrameOverrun
		}
	}
	g.apu.GenerateFrame()
	return &g.ppu.Framebuffer, nil
}

// Press registers a button as held.
func (g *GameBoy) Press(b joypad.Button) { g.joypad.Press(b) }

// Release registers a button as no longer held.
func (g *GameBoy) Release(b joypad.Button) { g.joypad.Release(b) }

// Save returns the cartridge's current battery-backed save RAM, or nil
// if the cartridge has none.
func (g *GameBoy) Save() []byte { return g.cart.SaveRAM() }

// LoadSave hydrates battery-backed save RAM from previously persisted
// bytes, e.g. read from disk by the caller.
func (g *GameBoy) LoadSave(data []byte) { g.cart.LoadSaveRAM(data) }

// Close releases resources held by the GameBoy. The engine holds no
// OS handles itself; Close exists so callers have a single symmetric
// lifecycle method regardless of what AudioSink they injected.
func (g *GameBoy) Close() error { return nil }

func (g *GameBoy) applyCheats() {
	for _, ch := range g.cheats {
		if ch.UseCompare && g.bus.Read(ch.Address) != ch.CompareValue {
			continue
		}
		g.bus.Write(ch.Address, ch.Value)
	}
}
