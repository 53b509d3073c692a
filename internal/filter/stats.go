package filter

import "math"

type Stats struct {
	Min  uint16
	Max  uint16
	Mean float32
}

// Measure scans samples once. An empty slice gives zero Stats.
func Measure(samples []uint16) Stats {
	if len(samples) == 0 {
		return Stats{}
	}
	s := Stats{Min: math.MaxUint16}
	var sum uint64
	for _, v := range samples {
		if v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
		sum += uint64(v)
	}
	s.Mean = float32(sum) / float32(len(samples))
	return s
}

// PeakToPeak is the swing between the quietest and loudest sample.
func (s Stats) PeakToPeak() uint16 {
	return s.Max - s.Min
}
