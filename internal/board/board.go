//go:build pico || feather_rp2040

// Package board wires the recorder's parts to the pins of a specific board.
package board

import (
	"fmt"
	"machine"

	"github.com/picorec/firmware/internal/button"
	"github.com/picorec/firmware/internal/config"
	"github.com/picorec/firmware/internal/indicator"
	"github.com/picorec/firmware/internal/mic"
	"github.com/picorec/firmware/internal/speaker"
	"tinygo.org/x/drivers/ssd1306"
)

type Hardware struct {
	LED     indicator.Indicator
	Record  *button.Button
	Play    *button.Button
	Mic     *mic.Mic
	Speaker *speaker.Player
	Display *ssd1306.Device
}

// Setup brings up every peripheral the recorder uses. The indicator is off, the buzzers are
// silent and the display is blank when it returns.
func Setup(cfg config.Config) (*Hardware, error) {
	hw := &Hardware{
		LED:    newIndicator(),
		Record: button.New(cfg.Debounce),
		Play:   button.New(cfg.Debounce),
	}
	indicator.Off(hw.LED)

	if err := button.Attach(RecordButton, hw.Record); err != nil {
		return nil, fmt.Errorf("record button: %w", err)
	}
	if err := button.Attach(PlayButton, hw.Play); err != nil {
		return nil, fmt.Errorf("play button: %w", err)
	}

	dma, err := mic.ClaimDMA()
	if err != nil {
		return nil, err
	}
	hw.Mic = mic.New(mic.NewADC(MicPin), dma, MicInput)

	a, err := speaker.NewPWM(BuzzerA, cfg.SampleRate)
	if err != nil {
		return nil, err
	}
	b, err := speaker.NewPWM(BuzzerB, cfg.SampleRate)
	if err != nil {
		return nil, err
	}
	hw.Speaker = speaker.New(a, b, machine.CPUFrequency(), cfg.OutputGain)

	err = DisplayBus.Configure(machine.I2CConfig{
		SDA:       DisplaySDA,
		SCL:       DisplaySCL,
		Frequency: 400 * machine.KHz,
	})
	if err != nil {
		return nil, fmt.Errorf("display i2c: %w", err)
	}
	dev := ssd1306.NewI2C(DisplayBus)
	dev.Configure(ssd1306.Config{Width: 128, Height: 64, Address: DisplayAddress, VccState: ssd1306.SWITCHCAPVCC})
	dev.ClearBuffer()
	dev.ClearDisplay()
	hw.Display = &dev

	return hw, nil
}
