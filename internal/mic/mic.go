package mic

import (
	"time"

	"github.com/picorec/firmware/internal/config"
)

// 12-bit converter range.
const (
	Max  = 1<<12 - 1
	Zero = 1 << 11
)

// Converter is the free-running ADC feeding a FIFO.
type Converter interface {
	SelectInput(input uint8)
	SetClockDiv(div float32)
	DrainFIFO()
	Run(on bool)
	ClockHz() uint32
}

// Transfer is a DMA channel paced by the converter FIFO.
type Transfer interface {
	// Start arms a transfer of len(dst) samples from the FIFO into dst.
	Start(dst []uint16)
	// Wait blocks until the armed transfer has completed.
	Wait()
}

type Mic struct {
	adc Converter
	dma Transfer
}

func New(adc Converter, dma Transfer, input uint8) *Mic {
	adc.SelectInput(input)
	return &Mic{
		adc: adc,
		dma: dma,
	}
}

// Record fills buf from index 0 with d worth of samples at rate and returns how many landed.
// Requests longer than buf are cut to len(buf). Non-positive durations capture nothing.
func (m *Mic) Record(buf []uint16, rate uint32, d time.Duration) int {
	n := config.Samples(rate, d)
	if n > len(buf) {
		n = len(buf)
	}
	if n <= 0 || rate == 0 {
		return 0
	}

	m.adc.SetClockDiv(ClockDiv(m.adc.ClockHz(), rate))
	m.adc.Run(false)
	m.adc.DrainFIFO()

	m.dma.Start(buf[:n])
	m.adc.Run(true)
	m.dma.Wait()
	m.adc.Run(false)

	return n
}

// ClockDiv is the divider for one conversion every clockHz/rate cycles. The ADC counts div+1.
func ClockDiv(clockHz, rate uint32) float32 {
	div := float32(clockHz)/float32(rate) - 1
	if div < 0 {
		return 0
	}
	return div
}
