//go:build pico

package board

import (
	"machine"

	"github.com/picorec/firmware/internal/indicator"
)

// BitDogLab carrier for the Raspberry Pi Pico.
const (
	RecordButton = machine.GP5
	PlayButton   = machine.GP6

	LEDRed   = machine.GP13
	LEDGreen = machine.GP11
	LEDBlue  = machine.GP12

	BuzzerA = machine.GP21
	BuzzerB = machine.GP10

	MicPin   = machine.GP28
	MicInput = 2

	DisplaySDA     = machine.GP14
	DisplaySCL     = machine.GP15
	DisplayAddress = 0x3C
)

var DisplayBus = machine.I2C1

func newIndicator() indicator.Indicator {
	for _, p := range []machine.Pin{LEDRed, LEDGreen, LEDBlue} {
		p.Configure(machine.PinConfig{Mode: machine.PinOutput})
	}
	return indicator.Pins{R: LEDRed, G: LEDGreen, B: LEDBlue}
}
