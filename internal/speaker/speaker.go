// Package speaker plays a recorded buffer back on a pair of PWM-driven buzzers.
package speaker

import (
	"time"

	"github.com/picorec/firmware/internal/mic"
)

// Line is one PWM output. Set takes a duty level between 0 and the configured wrap value.
type Line interface {
	Set(level uint32)
}

type Sleeper interface {
	Sleep(d time.Duration)
}

type sleeper struct{}

func (sleeper) Sleep(d time.Duration) { time.Sleep(d) }

type Player struct {
	a, b    Line
	clockHz uint32
	gain    float32
	clock   Sleeper
}

// New returns a Player driving a and b with the same signal. clockHz is the PWM source clock.
func New(a, b Line, clockHz uint32, gain float32) *Player {
	return &Player{
		a:       a,
		b:       b,
		clockHz: clockHz,
		gain:    gain,
		clock:   sleeper{},
	}
}

// SetSleeper replaces time.Sleep for pacing.
func (p *Player) SetSleeper(s Sleeper) {
	p.clock = s
}

// Play writes every sample to both lines, one per sample period, then silences them.
// It blocks for len(samples)/rate seconds.
func (p *Player) Play(samples []uint16, rate uint32) {
	defer func() {
		p.a.Set(0)
		p.b.Set(0)
	}()
	if rate == 0 {
		return
	}

	top := Wrap(p.clockHz, rate)
	var at time.Duration
	for i, s := range samples {
		level := Level(s, p.gain, top)
		p.a.Set(level)
		p.b.Set(level)

		// sleep to the next sample boundary so the fractional period doesn't drift
		next := SampleTime(i+1, rate)
		p.clock.Sleep(next - at)
		at = next
	}
}

// SampleTime is when sample i starts, counted from the first sample.
func SampleTime(i int, rate uint32) time.Duration {
	return time.Duration(uint64(i) * uint64(time.Second) / uint64(rate))
}

// Wrap is the PWM counter top that makes one period last one sample at rate. Never below 1.
func Wrap(clockHz, rate uint32) uint32 {
	if rate == 0 {
		return 1
	}
	top := clockHz / rate
	if top <= 1 {
		return 1
	}
	return top - 1
}

// Level amplifies s by gain, saturates at the converter full scale and maps it onto 0..top.
func Level(s uint16, gain float32, top uint32) uint32 {
	amplified := uint32(float32(s) * gain)
	if amplified > mic.Max {
		amplified = mic.Max
	}
	return uint32(uint64(amplified) * uint64(top) / mic.Max)
}
