//go:build rp2040

package speaker

import (
	"fmt"
	"machine"
)

type pwmGroup interface {
	Configure(config machine.PWMConfig) error
	Channel(pin machine.Pin) (uint8, error)
	SetTop(top uint32)
	Set(channel uint8, value uint32)
}

// PWM is a buzzer pin on its RP2040 PWM slice.
type PWM struct {
	pwm pwmGroup
	ch  uint8
}

// NewPWM configures pin so that one PWM period lasts one sample at rate, and starts it silent.
func NewPWM(pin machine.Pin, rate uint32) (*PWM, error) {
	slice, err := machine.PWMPeripheral(pin)
	if err != nil {
		return nil, fmt.Errorf("pwm on pin %d: %w", pin, err)
	}
	pwm := pwmSlice(slice)
	if pwm == nil {
		return nil, fmt.Errorf("pwm slice %d not available", slice)
	}
	if err := pwm.Configure(machine.PWMConfig{Period: uint64(1e9 / rate)}); err != nil {
		return nil, fmt.Errorf("configure pwm slice %d: %w", slice, err)
	}
	ch, err := pwm.Channel(pin)
	if err != nil {
		return nil, fmt.Errorf("pwm channel for pin %d: %w", pin, err)
	}
	pwm.SetTop(Wrap(machine.CPUFrequency(), rate))

	p := &PWM{pwm: pwm, ch: ch}
	p.Set(0)
	return p, nil
}

func (p *PWM) Set(level uint32) {
	p.pwm.Set(p.ch, level)
}

func pwmSlice(slice uint8) pwmGroup {
	switch slice {
	case 0:
		return machine.PWM0
	case 1:
		return machine.PWM1
	case 2:
		return machine.PWM2
	case 3:
		return machine.PWM3
	case 4:
		return machine.PWM4
	case 5:
		return machine.PWM5
	case 6:
		return machine.PWM6
	case 7:
		return machine.PWM7
	default:
		return nil
	}
}
