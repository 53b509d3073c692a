// Package indicator shows the recorder state on an RGB LED.
package indicator

import "image/color"

type Indicator interface {
	Set(red, green, blue bool)
}

// Off, Recording and Playing are the states the recorder shows.
func Off(i Indicator)       { i.Set(false, false, false) }
func Recording(i Indicator) { i.Set(true, false, false) }
func Playing(i Indicator)   { i.Set(false, true, false) }

// Pin is a digital output such as machine.Pin.
type Pin interface {
	Set(high bool)
}

// Pins drives a discrete RGB LED, one GPIO per color.
type Pins struct {
	R, G, B Pin
}

func (p Pins) Set(red, green, blue bool) {
	p.R.Set(red)
	p.G.Set(green)
	p.B.Set(blue)
}

// ColorWriter is an addressable LED strip such as ws2812.Device.
type ColorWriter interface {
	WriteColors(buf []color.RGBA) error
}

// Pixel drives the first LED of a strip.
type Pixel struct {
	strip      ColorWriter
	brightness uint8
	buf        [1]color.RGBA
}

func NewPixel(strip ColorWriter, brightness uint8) *Pixel {
	return &Pixel{strip: strip, brightness: brightness}
}

func (p *Pixel) Set(red, green, blue bool) {
	p.buf[0] = color.RGBA{R: p.level(red), G: p.level(green), B: p.level(blue)}
	// best effort: a missed write leaves the previous color until the next state change
	_ = p.strip.WriteColors(p.buf[:])
}

func (p *Pixel) level(on bool) uint8 {
	if on {
		return p.brightness
	}
	return 0
}
