// Command gomeboy is a headless frame-runner for the engine: it loads a
// ROM, steps it a fixed number of frames, optionally writes a text
// snapshot of the last frame and flushes battery-backed save RAM.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli"

	"github.com/Santitub/gomeboy/internal/cpu"
	"github.com/Santitub/gomeboy/internal/gameboy"
	"github.com/Santitub/gomeboy/internal/ppu"
)

func main() {
	app := cli.NewApp()
	app.Name = "gomeboy"
	app.Usage = "gomeboy --rom <file> --frames <n> [options]"
	app.Description = "Headless DMG-01 emulation core runner"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "rom", Usage: "path to the ROM image"},
		cli.IntFlag{Name: "frames", Usage: "number of frames to run", Value: 60},
		cli.StringFlag{Name: "sav", Usage: "path to a save-RAM file to load and flush back to"},
		cli.StringFlag{Name: "snapshot", Usage: "write a text snapshot of the final frame to this path"},
		cli.IntFlag{Name: "sample-rate", Usage: "APU output sample rate in Hz", Value: 44100},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		slog.Error("gomeboy: run failed", "error", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	romPath := c.String("rom")
	if romPath == "" {
		cli.ShowAppHelp(c)
		return errors.New("no ROM path provided")
	}
	frames := c.Int("frames")
	if frames <= 0 {
		return errors.New("--frames must be positive")
	}

	rom, err := os.ReadFile(romPath)
	if err != nil {
		return fmt.Errorf("reading ROM: %w", err)
	}

	gb := gameboy.New(
		gameboy.WithSampleRate(c.Int("sample-rate")),
		gameboy.WithFaultHandler(func(f cpu.Fault) {
			slog.Warn("illegal opcode", "pc", fmt.Sprintf("%#04x", f.PC), "opcode", fmt.Sprintf("%#02x", f.Opcode))
		}),
	)
	gb.LoadROM(rom, romPath)

	if savPath := c.String("sav"); savPath != "" {
		if data, err := os.ReadFile(savPath); err == nil {
			gb.LoadSave(data)
		}
	}

	slog.Info("gomeboy: starting", "rom", romPath, "frames", frames)

	var fb *ppu.Framebuffer
	for i := 0; i < frames; i++ {
		var frameErr error
		fb, frameErr = gb.RunFrame()
		if frameErr != nil {
			slog.Warn("frame overrun", "frame", i, "error", frameErr)
		}
		if i%60 == 0 {
			slog.Info("progress", "frame", i, "total", frames)
		}
	}

	if snapshotPath := c.String("snapshot"); snapshotPath != "" && fb != nil {
		if err := writeSnapshot(*fb, snapshotPath); err != nil {
			return fmt.Errorf("writing snapshot: %w", err)
		}
	}

	if savPath := c.String("sav"); savPath != "" {
		if data := gb.Save(); data != nil {
			if err := os.WriteFile(savPath, data, 0644); err != nil {
				return fmt.Errorf("flushing save RAM: %w", err)
			}
		}
	}

	slog.Info("gomeboy: finished", "frames", frames)
	return gb.Close()
}

// writeSnapshot renders the framebuffer as ASCII shading, one character
// per pixel, four shades mapped to " .:#".
func writeSnapshot(fb ppu.Framebuffer, path string) error {
	shades := " .:#"
	var b strings.Builder
	for y := range fb {
		for x := range fb[y] {
			b.WriteByte(shades[fb[y][x]&0x3])
		}
		b.WriteByte('\n')
	}
	return os.WriteFile(path, []byte(b.String()), 0644)
}
