//go:build feather_rp2040

package board

import (
	"machine"

	"github.com/picorec/firmware/internal/indicator"
	"tinygo.org/x/drivers/ws2812"
)

// Adafruit Feather RP2040 with buttons on D5/D6, buzzers on D9/D10, an electret mic on A2 and
// a 128x64 OLED on the STEMMA QT port. The on-board NeoPixel is the indicator.
const (
	RecordButton = machine.D5
	PlayButton   = machine.D6

	BuzzerA = machine.D9
	BuzzerB = machine.D10

	MicPin   = machine.A2
	MicInput = 2

	DisplaySDA     = machine.I2C1_SDA_PIN
	DisplaySCL     = machine.I2C1_SCL_PIN
	DisplayAddress = 0x3D
)

var DisplayBus = machine.I2C1

func newIndicator() indicator.Indicator {
	machine.NEOPIXEL.Configure(machine.PinConfig{Mode: machine.PinOutput})
	strip := ws2812.New(machine.NEOPIXEL)
	return indicator.NewPixel(&strip, 0x20)
}
