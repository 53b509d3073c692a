package config

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
	"time"
)

var (
	ErrSampleRate = errors.New("sample rate must be positive")
	ErrDuration   = errors.New("duration must be positive")
	ErrSmoothing  = errors.New("smoothing factor must be in (0, 1]")
	ErrGain       = errors.New("gain must be positive")
)

// Config holds the tunables of the recorder. Default returns the values the hardware was built for.
type Config struct {
	SampleRate  uint32
	Duration    time.Duration // requested recording length
	MaxDuration time.Duration // sizes the sample buffer
	Smoothing   float32
	OutputGain  float32
	VisualGain  float32
	Debounce    time.Duration
	Poll        time.Duration
}

func Default() Config {
	return Config{
		SampleRate:  48000,
		Duration:    2 * time.Second,
		MaxDuration: 2 * time.Second,
		Smoothing:   0.2,
		OutputGain:  1.7,
		VisualGain:  4,
		Debounce:    200 * time.Millisecond,
		Poll:        10 * time.Millisecond,
	}
}

// Capacity is the number of samples the buffer must hold.
func (c Config) Capacity() int {
	return Samples(c.SampleRate, c.MaxDuration)
}

func (c Config) Validate() error {
	if c.SampleRate == 0 {
		return ErrSampleRate
	}
	if c.Duration <= 0 {
		return fmt.Errorf("requested %v: %w", c.Duration, ErrDuration)
	}
	if c.MaxDuration <= 0 {
		return fmt.Errorf("max %v: %w", c.MaxDuration, ErrDuration)
	}
	if c.Smoothing <= 0 || c.Smoothing > 1 {
		return fmt.Errorf("%v: %w", c.Smoothing, ErrSmoothing)
	}
	if c.OutputGain <= 0 {
		return fmt.Errorf("output %v: %w", c.OutputGain, ErrGain)
	}
	if c.VisualGain <= 0 {
		return fmt.Errorf("visual %v: %w", c.VisualGain, ErrGain)
	}
	return nil
}

// Samples returns how many samples rate produces in d. Non-positive durations give 0 and counts
// that do not fit in an int saturate at math.MaxInt.
func Samples(rate uint32, d time.Duration) int {
	if d <= 0 {
		return 0
	}
	hi, lo := bits.Mul64(uint64(rate), uint64(d))
	if hi >= uint64(time.Second) {
		return math.MaxInt
	}
	n, _ := bits.Div64(hi, lo, uint64(time.Second))
	if n > math.MaxInt {
		return math.MaxInt
	}
	return int(n)
}
