// Package ppu implements the Game Boy's pixel processing unit: the
// mode state machine that drives LY/STAT and raises VBlank/STAT
// interrupts, and the per-scanline background/window/sprite
// rasterizer. See spec.md §4.4.
package ppu

import (
	"sort"

	"github.com/Santitub/gomeboy/internal/interrupts"
	"github.com/Santitub/gomeboy/internal/types"
)

// Mode is one of the 4 PPU states.
type Mode uint8

const (
	ModeHBlank Mode = iota
	ModeVBlank
	ModeOAM
	ModeTransfer
)

const (
	ScreenWidth  = 160
	ScreenHeight = 144

	oamDuration       = 80
	transferDuration  = 172
	hblankDuration    = 204
	lineDuration      = oamDuration + transferDuration + hblankDuration // 456
	lastLine          = 153
)

// Framebuffer is a row-major array of 2-bit palette indices, matching
// spec.md §6's external framebuffer contract exactly.
type Framebuffer [ScreenHeight][ScreenWidth]uint8

// PPU owns VRAM, OAM, the LCD registers, and the current rasterized
// frame.
type PPU struct {
	LCDC, SCY, SCX, LY, LYC, WY, WX, BGP, OBP0, OBP1 uint8

	// statIRQEnable holds STAT bits 3-6 (the user-writable interrupt
	// enable bits); bits 0-2 are derived from mode/coincidence.
	statIRQEnable uint8
	coincidence   bool

	VRAM [0x2000]byte
	OAM  [0xA0]byte

	mode       Mode
	cycles     uint16
	windowLine uint8

	Framebuffer Framebuffer
	FrameReady  bool

	irq *interrupts.Service
}

// New returns a PPU wired to raise VBlank/STAT interrupts on irq.
func New(irq *interrupts.Service) *PPU {
	return &PPU{irq: irq, mode: ModeOAM}
}

func (p *PPU) enabled() bool { return p.LCDC&types.Bit7 != 0 }

// WriteLCDC stores LCDC and, on a disable-to-enable transition, resets
// the PPU to start at mode 2, line 0, per spec.md §4.4.
func (p *PPU) WriteLCDC(value uint8) {
	wasEnabled := p.enabled()
	p.LCDC = value
	if !wasEnabled && p.enabled() {
		p.LY = 0
		p.cycles = 0
		p.windowLine = 0
		p.setMode(ModeOAM)
	}
}

// Tick advances the PPU state machine by tCycles T-cycles. When the LCD
// is disabled, LY and mode are held per spec.md §4.4 and nothing else
// happens.
func (p *PPU) Tick(tCycles uint16) {
	if !p.enabled() {
		p.LY = 0
		p.mode = ModeHBlank
		p.cycles = 0
		return
	}
	for i := uint16(0); i < tCycles; i++ {
		p.tickOne()
	}
}

func (p *PPU) tickOne() {
	p.cycles++

	if p.LY < ScreenHeight {
		switch {
		case p.mode == ModeOAM && p.cycles == oamDuration:
			p.setMode(ModeTransfer)
		case p.mode == ModeTransfer && p.cycles == oamDuration+transferDuration:
			p.renderScanline(p.LY)
			p.setMode(ModeHBlank)
		case p.cycles == lineDuration:
			p.advanceLine()
		}
		return
	}

	// VBlank lines (144-153) have no OAM/transfer sub-phases.
	if p.cycles == lineDuration {
		p.advanceLine()
	}
}

func (p *PPU) advanceLine() {
	p.cycles = 0
	p.LY++

	if p.LY == ScreenHeight {
		p.setMode(ModeVBlank)
		p.irq.Request(interrupts.VBlankFlag)
		p.FrameReady = true
	} else if p.LY > lastLine {
		p.LY = 0
		p.windowLine = 0
		p.setMode(ModeOAM)
	} else if p.LY < ScreenHeight {
		p.setMode(ModeOAM)
	}

	p.updateCoincidence()
}

func (p *PPU) setMode(m Mode) {
	p.mode = m
	switch m {
	case ModeOAM:
		if p.statIRQEnable&types.Bit5 != 0 {
			p.irq.Request(interrupts.LCDFlag)
		}
	case ModeHBlank:
		if p.statIRQEnable&types.Bit3 != 0 {
			p.irq.Request(interrupts.LCDFlag)
		}
	case ModeVBlank:
		if p.statIRQEnable&types.Bit4 != 0 {
			p.irq.Request(interrupts.LCDFlag)
		}
	}
}

func (p *PPU) updateCoincidence() {
	was := p.coincidence
	p.coincidence = p.LY == p.LYC
	if p.coincidence && !was && p.statIRQEnable&types.Bit6 != 0 {
		p.irq.Request(interrupts.LCDFlag)
	}
}

// Mode returns the PPU's current mode, 0-3.
func (p *PPU) Mode() Mode {
	if !p.enabled() {
		return ModeHBlank
	}
	return p.mode
}

// ReadSTAT assembles the STAT register for a CPU read.
func (p *PPU) ReadSTAT() uint8 {
	v := p.statIRQEnable | 0x80
	if p.coincidence {
		v |= types.Bit2
	}
	v |= uint8(p.Mode())
	return v
}

// WriteSTAT stores the writable interrupt-enable bits (3-6).
func (p *PPU) WriteSTAT(value uint8) {
	p.statIRQEnable = value & 0x78
}

// ReadVRAM returns VRAM[addr-0x8000], or 0xFF while mode 3 owns the bus.
func (p *PPU) ReadVRAM(addr uint16) uint8 {
	if p.enabled() && p.mode == ModeTransfer {
		return 0xFF
	}
	return p.VRAM[addr-0x8000]
}

// WriteVRAM stores to VRAM unless mode 3 owns the bus.
func (p *PPU) WriteVRAM(addr uint16, value uint8) {
	if p.enabled() && p.mode == ModeTransfer {
		return
	}
	p.VRAM[addr-0x8000] = value
}

// ReadOAM returns OAM[addr-0xFE00], or 0xFF while OAM search or
// transfer own the bus.
func (p *PPU) ReadOAM(addr uint16) uint8 {
	if p.enabled() && (p.mode == ModeOAM || p.mode == ModeTransfer) {
		return 0xFF
	}
	return p.OAM[addr-0xFE00]
}

// WriteOAM stores to OAM unless OAM search or transfer own the bus.
func (p *PPU) WriteOAM(addr uint16, value uint8) {
	if p.enabled() && (p.mode == ModeOAM || p.mode == ModeTransfer) {
		return
	}
	p.OAM[addr-0xFE00] = value
}

// WriteOAMDMA stores directly to OAM, bypassing the mode-based lock: a
// DMA transfer owns the bus unconditionally for its duration.
func (p *PPU) WriteOAMDMA(index uint8, value uint8) {
	p.OAM[index] = value
}

type spriteHit struct {
	oamIndex int
	y, x     uint8
	tile     uint8
	attr     uint8
}

// renderScanline rasterizes background, window and sprites for line ly
// into the framebuffer, per spec.md §4.4.
func (p *PPU) renderScanline(ly uint8) {
	var bgColorIndex [ScreenWidth]uint8
	var row [ScreenWidth]uint8

	if p.LCDC&types.Bit0 != 0 {
		p.renderBackground(ly, &row, &bgColorIndex)
	}

	windowDrew := false
	if p.LCDC&types.Bit5 != 0 && p.WY <= ly && int(p.WX)-7 < ScreenWidth {
		windowDrew = p.renderWindow(ly, &row, &bgColorIndex)
	}
	if windowDrew {
		p.windowLine++
	}

	if p.LCDC&types.Bit1 != 0 {
		p.renderSprites(ly, &row, &bgColorIndex)
	}

	p.Framebuffer[ly] = row
}

func (p *PPU) bgWindowTile(tileMapBase uint16, tileX, tileY uint8) uint8 {
	mapAddr := tileMapBase + uint16(tileY/8)*32 + uint16(tileX/8)
	return p.VRAM[mapAddr-0x8000]
}

func (p *PPU) tileRowBytes(index uint8, rowInTile uint8) (lo, hi uint8) {
	var tileAddr uint16
	if p.LCDC&types.Bit4 != 0 {
		tileAddr = 0x8000 + uint16(index)*16
	} else {
		tileAddr = uint16(int32(0x9000) + int32(int8(index))*16)
	}
	off := tileAddr - 0x8000 + uint16(rowInTile)*2
	return p.VRAM[off], p.VRAM[off+1]
}

// spriteTileRowBytes reads sprite tile data. Unlike background/window
// tiles, sprites always use the unsigned 0x8000 addressing mode
// regardless of LCDC bit 4.
func (p *PPU) spriteTileRowBytes(index uint8, rowInTile uint8) (lo, hi uint8) {
	off := uint16(index)*16 + uint16(rowInTile)*2
	return p.VRAM[off], p.VRAM[off+1]
}

func pixelColorIndex(lo, hi uint8, bit uint8) uint8 {
	l := (lo >> bit) & 1
	h := (hi >> bit) & 1
	return h<<1 | l
}

func applyPalette(palette uint8, colorIndex uint8) uint8 {
	return (palette >> (colorIndex * 2)) & 0x03
}

func (p *PPU) renderBackground(ly uint8, row *[ScreenWidth]uint8, colorIndex *[ScreenWidth]uint8) {
	tileMapBase := uint16(0x9800)
	if p.LCDC&types.Bit3 != 0 {
		tileMapBase = 0x9C00
	}
	y := (ly + p.SCY) & 0xFF
	for sx := 0; sx < ScreenWidth; sx++ {
		x := (uint8(sx) + p.SCX) & 0xFF
		tile := p.bgWindowTile(tileMapBase, x, y)
		lo, hi := p.tileRowBytes(tile, y%8)
		ci := pixelColorIndex(lo, hi, 7-(x%8))
		colorIndex[sx] = ci
		row[sx] = applyPalette(p.BGP, ci)
	}
}

func (p *PPU) renderWindow(ly uint8, row *[ScreenWidth]uint8, colorIndex *[ScreenWidth]uint8) bool {
	tileMapBase := uint16(0x9800)
	if p.LCDC&types.Bit6 != 0 {
		tileMapBase = 0x9C00
	}
	startX := int(p.WX) - 7
	if startX < 0 {
		startX = 0
	}
	drew := false
	wy := p.windowLine
	for sx := startX; sx < ScreenWidth; sx++ {
		wx := uint8(sx - (int(p.WX) - 7))
		tile := p.bgWindowTile(tileMapBase, wx, wy)
		lo, hi := p.tileRowBytes(tile, wy%8)
		ci := pixelColorIndex(lo, hi, 7-(wx%8))
		colorIndex[sx] = ci
		row[sx] = applyPalette(p.BGP, ci)
		drew = true
	}
	return drew
}

func (p *PPU) renderSprites(ly uint8, row *[ScreenWidth]uint8, bgColorIndex *[ScreenWidth]uint8) {
	height := uint8(8)
	if p.LCDC&types.Bit2 != 0 {
		height = 16
	}

	var hits []spriteHit
	for i := 0; i < 40 && len(hits) < 10; i++ {
		base := i * 4
		oy := p.OAM[base]
		lineInSprite := int(ly) - (int(oy) - 16)
		if lineInSprite < 0 || lineInSprite >= int(height) {
			continue
		}
		hits = append(hits, spriteHit{
			oamIndex: i,
			y:        oy,
			x:        p.OAM[base+1],
			tile:     p.OAM[base+2],
			attr:     p.OAM[base+3],
		})
	}

	// Sort ascending by X (ties keep OAM order, which sort.SliceStable
	// preserves), then draw back-to-front so lower-X / lower-OAM-index
	// sprites land on top, per spec.md §4.4.
	sort.SliceStable(hits, func(a, b int) bool { return hits[a].x < hits[b].x })

	for i := len(hits) - 1; i >= 0; i-- {
		h := hits[i]
		if h.x == 0 || h.x >= ScreenWidth+8 {
			continue
		}
		tile := h.tile
		lineInSprite := int(ly) - (int(h.y) - 16)
		if height == 16 {
			tile &^= 0x01
		}
		if h.attr&types.Bit6 != 0 { // Y flip
			lineInSprite = int(height) - 1 - lineInSprite
		}
		if height == 16 && lineInSprite >= 8 {
			tile |= 0x01
			lineInSprite -= 8
		}
		lo, hi := p.spriteTileRowBytes(tile, uint8(lineInSprite))

		palette := p.OBP0
		if h.attr&types.Bit4 != 0 {
			palette = p.OBP1
		}
		behindBG := h.attr&types.Bit7 != 0
		xFlip := h.attr&types.Bit5 != 0

		for px := 0; px < 8; px++ {
			screenX := int(h.x) - 8 + px
			if screenX < 0 || screenX >= ScreenWidth {
				continue
			}
			bit := uint8(7 - px)
			if xFlip {
				bit = uint8(px)
			}
			ci := pixelColorIndex(lo, hi, bit)
			if ci == 0 {
				continue // transparent
			}
			if behindBG && bgColorIndex[screenX] != 0 {
				continue
			}
			row[screenX] = applyPalette(palette, ci)
		}
	}
}
