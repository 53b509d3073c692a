// Package display draws a recorded buffer as a bipolar waveform on a monochrome screen.
package display

import (
	"image/color"

	"github.com/picorec/firmware/internal/mic"
	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

const (
	Title       = "Captured wave"
	titleHeight = 12
	titleX      = 10
	titleY      = 7 // baseline
)

var on = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// Screen is a buffered display such as the ssd1306.
type Screen interface {
	drivers.Displayer
	ClearBuffer()
}

type Waveform struct {
	screen Screen
	gain   float32
}

// New returns a renderer scaling amplitudes by gain before mapping them to pixels.
func New(screen Screen, gain float32) *Waveform {
	return &Waveform{screen: screen, gain: gain}
}

// Draw replaces the frame with the title and one column per sample, downsampled to the screen
// width when there are more samples than columns, and flushes it.
func (w *Waveform) Draw(samples []uint16) error {
	w.screen.ClearBuffer()
	tinyfont.WriteLine(w.screen, &tinyfont.TomThumb, titleX, titleY, Title, on)

	width, height := w.screen.Size()
	top := int16(titleHeight)
	half := float32(height-top) / 2
	center := top + int16(half)

	n := len(samples)
	cols := n
	if cols > int(width) {
		cols = int(width)
	}
	for x := 0; x < cols; x++ {
		amplitude := int32(samples[Column(x, n, int(width))]) - mic.Zero
		y := center - int16(float32(amplitude)/mic.Zero*half*w.gain)
		if y < top {
			y = top
		}
		if y >= height {
			y = height - 1
		}

		from, to := center, y
		if to < from {
			from, to = to, from
		}
		for py := from; py <= to; py++ {
			w.screen.SetPixel(int16(x), py, on)
		}
	}
	return w.screen.Display()
}

// Clear blanks the screen.
func (w *Waveform) Clear() error {
	w.screen.ClearBuffer()
	return w.screen.Display()
}

// Column picks the sample shown in column x when n samples are spread over width columns.
func Column(x, n, width int) int {
	if n > width {
		return x * n / width
	}
	return x
}
