//go:build rp2040

package mic

import (
	"errors"
	"runtime/volatile"
	"unsafe"
)

var ErrNoChannel = errors.New("no free DMA channel")

const (
	dmaBase     = 0x50000000
	dmaChannels = 12
	dmaStride   = 0x40

	dreqADC = 36
)

type dmaChannelRegs struct {
	READ_ADDR   volatile.Register32
	WRITE_ADDR  volatile.Register32
	TRANS_COUNT volatile.Register32
	CTRL_TRIG   volatile.Register32
}

const (
	dmaCtrlEn          = 1 << 0
	dmaCtrlDataSizePos = 2
	dmaCtrlIncrRead    = 1 << 4
	dmaCtrlIncrWrite   = 1 << 5
	dmaCtrlChainToPos  = 11
	dmaCtrlTreqSelPos  = 15
	dmaCtrlBusy        = 1 << 24
	dmaSizeHalfWord    = 1
)

var claimed uint16

// DMA is a claimed channel reading 16-bit samples from the ADC FIFO.
type DMA struct {
	ch   *dmaChannelRegs
	ctrl uint32
}

// ClaimDMA takes the lowest free channel and configures it for paced ADC reads: fixed read
// address, incrementing write address, no chaining.
func ClaimDMA() (*DMA, error) {
	for i := uint32(0); i < dmaChannels; i++ {
		if claimed&(1<<i) != 0 {
			continue
		}
		claimed |= 1 << i
		return &DMA{
			ch: (*dmaChannelRegs)(unsafe.Pointer(uintptr(dmaBase + i*dmaStride))),
			ctrl: dmaCtrlEn |
				dmaSizeHalfWord<<dmaCtrlDataSizePos |
				dmaCtrlIncrWrite |
				i<<dmaCtrlChainToPos |
				dreqADC<<dmaCtrlTreqSelPos,
		}, nil
	}
	return nil, ErrNoChannel
}

func (d *DMA) Start(dst []uint16) {
	d.ch.READ_ADDR.Set(fifoAddr())
	d.ch.WRITE_ADDR.Set(uint32(uintptr(unsafe.Pointer(&dst[0]))))
	d.ch.TRANS_COUNT.Set(uint32(len(dst)))
	d.ch.CTRL_TRIG.Set(d.ctrl)
}

func (d *DMA) Wait() {
	for d.ch.CTRL_TRIG.HasBits(dmaCtrlBusy) {
	}
}
