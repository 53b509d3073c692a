//go:build pico || feather_rp2040

package main

import (
	"os"
	"time"

	"github.com/ajanata/textbuf"
	"github.com/picorec/firmware/internal/board"
	"github.com/picorec/firmware/internal/config"
	"github.com/picorec/firmware/internal/display"
	"github.com/picorec/firmware/internal/filter"
	"github.com/picorec/firmware/internal/recorder"
)

func main() {
	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		earlyPanic(err)
	}

	hw, err := board.Setup(cfg)
	if err != nil {
		earlyPanic(err)
	}

	// give the serial console time to attach
	banner(hw)
	time.Sleep(2 * time.Second)
	hw.Display.ClearBuffer()
	hw.Display.ClearDisplay()
	hw.Record.Clear()
	hw.Play.Clear()

	r, err := recorder.New(cfg, recorder.Parts{
		Mic:     hw.Mic,
		Filter:  filter.NewLowPass(cfg.Smoothing),
		Speaker: hw.Speaker,
		Screen:  display.New(hw.Display, cfg.VisualGain),
		LED:     hw.LED,
		Record:  &hw.Record.Flag,
		Play:    &hw.Play.Flag,
		Log:     os.Stdout,
	})
	if err != nil {
		earlyPanic(err)
	}

	r.Run()
}

func banner(hw *board.Hardware) {
	buf, err := textbuf.New(hw.Display, textbuf.FontSize6x8)
	if err != nil {
		println("banner:", err.Error())
		return
	}
	buf.AutoFlush = true
	_ = buf.Println("picorec")
	_ = buf.Println("REC: record")
	_ = buf.Println("PLAY: play back")
}
