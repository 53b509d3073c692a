//go:build rp2040

package button

import (
	"machine"
	"time"
)

var boot = time.Now()

// Attach configures pin as a pulled-up input and feeds its falling edges to b.
func Attach(pin machine.Pin, b *Button) error {
	pin.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	return pin.SetInterrupt(machine.PinFalling, func(machine.Pin) {
		b.Edge(time.Since(boot))
	})
}
