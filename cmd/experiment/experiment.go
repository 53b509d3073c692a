//go:build pico || feather_rp2040

// experiment is a bench tool for the capture path: it records short clips in a loop and prints
// their statistics to the serial console and the display. PLAY plays the last clip back.
package main

import (
	"fmt"
	"machine"
	"time"

	"github.com/ajanata/textbuf"
	"github.com/picorec/firmware/internal/board"
	"github.com/picorec/firmware/internal/config"
	"github.com/picorec/firmware/internal/filter"
	"github.com/picorec/firmware/internal/indicator"
)

const clip = 250 * time.Millisecond

func blink() {
	led := machine.LED
	led.Configure(machine.PinConfig{Mode: machine.PinOutput})
	led.High()
	time.Sleep(100 * time.Millisecond)
	led.Low()
	time.Sleep(100 * time.Millisecond)
}

func main() {
	time.Sleep(time.Second)
	println("start")
	blink()

	cfg := config.Default()
	hw, err := board.Setup(cfg)
	if err != nil {
		panic(err)
	}
	blink()

	buf, err := textbuf.New(hw.Display, textbuf.FontSize6x8)
	if err != nil {
		panic(err)
	}
	buf.AutoFlush = true
	_ = buf.Println("capture bench")
	println("boot")

	samples := make([]uint16, config.Samples(cfg.SampleRate, clip))
	lp := filter.NewLowPass(cfg.Smoothing)

	for i := 0; ; i++ {
		indicator.Recording(hw.LED)
		start := time.Now()
		n := hw.Mic.Record(samples, cfg.SampleRate, clip)
		took := time.Since(start)
		raw := filter.Measure(samples[:n])
		lp.Apply(samples[:n])
		smooth := filter.Measure(samples[:n])
		indicator.Off(hw.LED)

		fmt.Printf("clip %d: %d samples in %v\traw %d..%d mean %d\tsmoothed %d..%d mean %d\n",
			i, n, took, raw.Min, raw.Max, int(raw.Mean), smooth.Min, smooth.Max, int(smooth.Mean))
		buf.SetLine(2, fmt.Sprintf("n %d %dms", n, took.Milliseconds()))
		buf.SetLine(3, fmt.Sprintf("raw %d..%d", raw.Min, raw.Max))
		buf.SetLine(4, fmt.Sprintf("lp  %d..%d", smooth.Min, smooth.Max))
		buf.SetLine(5, fmt.Sprintf("p2p %d", smooth.PeakToPeak()))

		if hw.Play.Take() {
			indicator.Playing(hw.LED)
			hw.Speaker.Play(samples[:n], cfg.SampleRate)
			indicator.Off(hw.LED)
		}
		time.Sleep(500 * time.Millisecond)
	}
}
