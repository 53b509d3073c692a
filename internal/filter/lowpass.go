package filter

// LowPass is a single-pole exponential smoother over 12-bit samples.
type LowPass struct {
	gain float32
}

func NewLowPass(gain float32) *LowPass {
	return &LowPass{gain: gain}
}

func (f *LowPass) SetGain(gain float32) {
	f.gain = gain
}

// Step returns gain*value + (1-gain)*prev, truncated.
func (f *LowPass) Step(value, prev uint16) uint16 {
	invGain := 1 - f.gain
	// no fused multiply-add, so every target rounds the same way
	return uint16(float32(f.gain*float32(value)) + float32(invGain*float32(prev)))
}

// Apply smooths samples in place, left to right. Each output feeds the next step, so running it
// twice over the same data smooths it twice.
func (f *LowPass) Apply(samples []uint16) {
	if len(samples) == 0 {
		return
	}
	prev := samples[0]
	for i := 1; i < len(samples); i++ {
		prev = f.Step(samples[i], prev)
		samples[i] = prev
	}
}
