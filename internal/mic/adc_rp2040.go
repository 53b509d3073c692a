//go:build rp2040

package mic

import (
	"machine"
	"runtime/volatile"
	"unsafe"
)

// clk_adc is fixed to the 48MHz USB PLL by the runtime.
const adcClockHz = 48_000_000

type adcRegs struct {
	CS     volatile.Register32
	RESULT volatile.Register32
	FCS    volatile.Register32
	FIFO   volatile.Register32
	DIV    volatile.Register32
}

var adcHW = (*adcRegs)(unsafe.Pointer(uintptr(0x4004c000)))

const (
	adcCSEn        = 1 << 0
	adcCSStartMany = 1 << 3
	adcCSAInSelPos = 12
	adcCSAInSelMsk = 0x7 << adcCSAInSelPos

	adcFCSEn        = 1 << 0
	adcFCSDReqEn    = 1 << 3
	adcFCSLevelPos  = 16
	adcFCSLevelMsk  = 0xf << adcFCSLevelPos
	adcFCSThreshPos = 24

	adcDivIntPos = 8
)

// ADC drives the RP2040 converter in free-running mode with its FIFO feeding DMA.
type ADC struct{}

// NewADC routes pin to the converter and enables the FIFO with DREQ on every sample.
func NewADC(pin machine.Pin) ADC {
	machine.InitADC()
	adc := machine.ADC{Pin: pin}
	adc.Configure(machine.ADCConfig{})

	adcHW.FCS.Set(adcFCSEn | adcFCSDReqEn | 1<<adcFCSThreshPos)
	return ADC{}
}

func (ADC) SelectInput(input uint8) {
	adcHW.CS.ReplaceBits(uint32(input), 0x7, adcCSAInSelPos)
}

func (ADC) SetClockDiv(div float32) {
	whole := uint32(div)
	frac := uint32((div - float32(whole)) * 256)
	adcHW.DIV.Set(whole<<adcDivIntPos | frac&0xff)
}

func (ADC) DrainFIFO() {
	for adcHW.FCS.Get()&adcFCSLevelMsk != 0 {
		_ = adcHW.FIFO.Get()
	}
}

func (ADC) Run(on bool) {
	if on {
		adcHW.CS.SetBits(adcCSEn | adcCSStartMany)
	} else {
		adcHW.CS.ClearBits(adcCSStartMany)
	}
}

func (ADC) ClockHz() uint32 {
	return adcClockHz
}

func fifoAddr() uint32 {
	return uint32(uintptr(unsafe.Pointer(&adcHW.FIFO)))
}
